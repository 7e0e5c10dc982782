package history

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbouchet/squadcheck/internal/database"
)

func setupTestStore(t *testing.T) RunStore {
	t.Helper()
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	t.Cleanup(teardown)
	return New(db)
}

func TestRecordAndListRuns(t *testing.T) {
	store := setupTestStore(t)

	first := Run{
		ID:             uuid.NewString(),
		CreatedAt:      time.Now().Add(-time.Hour).Unix(),
		Filename:       "effectifs_v1.csv",
		DurationMillis: 4200,
		InputRows:      120,
		ReportRows:     138,
		ClubsProcessed: 20,
		ExactMatches:   100,
		PartialMatches: 12,
		MissingPlayers: 8,
		NewPlayers:     18,
	}
	second := Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().Unix(),
		Filename:  "effectifs_v2.csv",
	}

	require.NoError(t, store.RecordRun(first))
	require.NoError(t, store.RecordRun(second))

	runs, err := store.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.ID, runs[0].ID, "most recent run first")
	assert.Equal(t, first, runs[1])
}

func TestListRunsEmpty(t *testing.T) {
	store := setupTestStore(t)

	runs, err := store.ListRuns()
	require.NoError(t, err)
	assert.Empty(t, runs)
	assert.NotNil(t, runs, "empty history must serialize as [], not null")
}

func TestClear(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.RecordRun(Run{ID: uuid.NewString(), CreatedAt: time.Now().Unix(), Filename: "x.csv"}))
	require.NoError(t, store.Clear())

	runs, err := store.ListRuns()
	require.NoError(t, err)
	assert.Empty(t, runs)
}
