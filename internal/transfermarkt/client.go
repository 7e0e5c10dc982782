package transfermarkt

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tbouchet/squadcheck/internal/metrics"
)

// APIClient fetches rosters from the Transfermarkt-backed roster API, through
// a freshness-checked on-disk cache with bounded retry.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string

	cacheDir string
	maxAge   time.Duration
	retries  int

	// sleep is swapped out in tests so retry pauses don't slow the suite.
	sleep func(time.Duration)

	metrics metrics.Metrics

	// One lock per club id so concurrent requests cannot interleave writes
	// to the same cache file.
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

var _ Client = (*APIClient)(nil)

// NewClient creates a roster client. cacheDir is created lazily on the first
// successful fetch.
func NewClient(baseURL, cacheDir string, maxAge time.Duration, retries int, metricsSvc metrics.Metrics) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
		cacheDir:   cacheDir,
		maxAge:     maxAge,
		retries:    retries,
		sleep:      time.Sleep,
		metrics:    metricsSvc,
		locks:      make(map[int]*sync.Mutex),
	}
}

// FetchRoster resolves a club id to its player names. A fresh cache entry is
// served without touching the network; otherwise the API is tried up to the
// retry budget with an increasing pause between attempts. All attempts
// exhausted yields an empty slice, never an error.
func (c *APIClient) FetchRoster(ctx context.Context, clubID int) []string {
	lock := c.lockFor(clubID)
	lock.Lock()
	defer lock.Unlock()

	if names, ok := c.readCache(clubID); ok {
		log.Debug("Serving roster from cache", "clubID", clubID, "players", len(names))
		c.metrics.IncCacheHits()
		return names
	}

	for attempt := 0; attempt < c.retries; attempt++ {
		names, err := c.fetchLive(ctx, clubID)
		if err == nil {
			c.writeCache(clubID, names)
			return names
		}
		c.metrics.IncProviderFetchFailures()
		log.Warn("Roster fetch attempt failed", "clubID", clubID, "attempt", attempt+1, "error", err)
		// 1.5s, 2.5s, 3.5s between attempts, matching the provider's rate tolerance.
		c.sleep(1500*time.Millisecond + time.Duration(attempt)*time.Second)
	}

	// Deliberately lossy: the club is skipped upstream, so make the loss visible.
	log.Error("Roster fetch exhausted all retries, club will be skipped", "clubID", clubID, "retries", c.retries)
	return nil
}

func (c *APIClient) fetchLive(ctx context.Context, clubID int) ([]string, error) {
	url := fmt.Sprintf("%s/clubs/%d/players", c.BaseURL, clubID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.Debug("Requesting roster from provider", "url", url)
	c.metrics.IncProviderFetches()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	var roster rosterResponse
	if err := json.NewDecoder(resp.Body).Decode(&roster); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	names := make([]string, 0, len(roster.Players))
	for _, p := range roster.Players {
		names = append(names, p.Name)
	}
	log.Info("Fetched roster from provider", "clubID", clubID, "players", len(names))
	return names, nil
}

// readCache returns the cached roster for clubID when the cache file exists
// and is younger than the freshness window. Read failures fall through to a
// live fetch without retrying the cache.
func (c *APIClient) readCache(clubID int) ([]string, bool) {
	path := c.cachePath(clubID)
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) >= c.maxAge {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("Failed to read roster cache, falling through to live fetch", "path", path, "error", err)
		return nil, false
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		log.Warn("Corrupt roster cache, falling through to live fetch", "path", path, "error", err)
		return nil, false
	}
	return names, true
}

// writeCache persists the raw name list, overwriting any prior content so
// subsequent calls within the freshness window skip the network entirely.
func (c *APIClient) writeCache(clubID int, names []string) {
	if err := os.MkdirAll(c.cacheDir, 0o755); err != nil {
		log.Error("Failed to create cache directory", "dir", c.cacheDir, "error", err)
		return
	}
	data, err := json.Marshal(names)
	if err != nil {
		log.Error("Failed to marshal roster cache", "clubID", clubID, "error", err)
		return
	}
	if err := os.WriteFile(c.cachePath(clubID), data, 0o644); err != nil {
		log.Error("Failed to write roster cache", "clubID", clubID, "error", err)
	}
}

func (c *APIClient) cachePath(clubID int) string {
	return filepath.Join(c.cacheDir, fmt.Sprintf("club_%d.json", clubID))
}

func (c *APIClient) lockFor(clubID int) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.locks[clubID]
	if !ok {
		l = &sync.Mutex{}
		c.locks[clubID] = l
	}
	return l
}
