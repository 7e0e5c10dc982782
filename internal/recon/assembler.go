package recon

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tbouchet/squadcheck/internal/catalog"
	"github.com/tbouchet/squadcheck/internal/sheet"
	"github.com/tbouchet/squadcheck/internal/transfermarkt"
)

// Pacing spaces out provider traffic during a report build. The pauses are
// deliberate throttling, not incidental blocking: the provider tolerates only
// a modest request rate.
type Pacing struct {
	// ClubMatchDelay is slept before each club's match pass.
	ClubMatchDelay time.Duration
	// PauseAfter is the number of processed clubs between long pauses.
	PauseAfter int
	// PauseDuration is the length of the long pause.
	PauseDuration time.Duration
}

// Assembler turns parsed upload rows into the flat reconciliation report,
// club by club, in catalog order.
type Assembler struct {
	provider transfermarkt.Client
	pacing   Pacing

	// sleep is swapped out in tests so pacing pauses don't slow the suite.
	sleep func(time.Duration)
}

// NewAssembler creates a report assembler backed by the given roster provider.
func NewAssembler(provider transfermarkt.Client, pacing Pacing) *Assembler {
	return &Assembler{
		provider: provider,
		pacing:   pacing,
		sleep:    time.Sleep,
	}
}

// BuildReport reconciles every club present in the uploaded records and
// returns the report rows plus an aggregate summary. Clubs are processed
// sequentially in catalog order; per club the user rows come first, in their
// original input order, then the unclaimed provider names in provider order.
// Clubs absent from the input, or whose roster fetch came back empty,
// contribute zero rows.
func (a *Assembler) BuildReport(ctx context.Context, records []sheet.PlayerRecord) ([]Row, Summary) {
	rows := make([]Row, 0)
	var summary Summary

	processed := 0
	for _, club := range catalog.Clubs() {
		userNames := namesForClub(records, club.Slug)
		if len(userNames) == 0 {
			continue
		}

		providerNames := a.provider.FetchRoster(ctx, club.ClubID)
		if len(providerNames) == 0 {
			// Best-effort policy: the club is dropped from the report rather
			// than failing the whole analysis. Loud on purpose.
			log.Warn("No provider data for club, skipping its rows", "slug", club.Slug, "clubID", club.ClubID, "userRows", len(userNames))
			continue
		}

		a.sleep(a.pacing.ClubMatchDelay)

		result := Reconcile(userNames, providerNames)
		for _, outcome := range result.Outcomes {
			rows = append(rows, outcomeRow(outcome, club.Slug))
			switch outcome.Confidence {
			case ConfidenceExact:
				summary.Exact++
			case ConfidencePartial:
				summary.Partial++
			default:
				summary.Missing++
			}
		}
		for _, name := range result.Unclaimed {
			rows = append(rows, unclaimedRow(name, club.Slug))
			summary.NewPlayers++
		}

		processed++
		if a.pacing.PauseAfter > 0 && processed%a.pacing.PauseAfter == 0 {
			log.Info("Pacing pause", "processedClubs", processed, "pause", a.pacing.PauseDuration)
			a.sleep(a.pacing.PauseDuration)
		}
	}

	summary.Clubs = processed
	summary.Rows = len(rows)
	return rows, summary
}

func namesForClub(records []sheet.PlayerRecord, slug string) []string {
	var userNames []string
	for _, r := range records {
		if r.ClubSlug == slug {
			userNames = append(userNames, r.DisplayName)
		}
	}
	return userNames
}

func outcomeRow(o MatchOutcome, slug string) Row {
	row := Row{
		PlayerName: o.UserName,
		ClubSlug:   slug,
		Status:     StatusMissing,
		Type:       TypeMissing,
	}
	switch o.Confidence {
	case ConfidenceExact:
		row.Status, row.Type = StatusExact, TypeExact
	case ConfidencePartial:
		row.Status, row.Type = StatusPartial, TypePartial
	}
	if o.BestMatch != "" {
		row.MatchedName = o.BestMatch
		row.Similarity = Similarity{Score: o.Score, Valid: true}
	}
	return row
}

func unclaimedRow(name, slug string) Row {
	return Row{
		ClubSlug:    slug,
		MatchedName: name,
		Status:      StatusNew,
		Type:        TypeNew,
	}
}
