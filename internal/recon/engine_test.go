package recon

import (
	"testing"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbouchet/squadcheck/internal/names"
)

func TestSelfSimilarityScores100(t *testing.T) {
	inputs := []string{"Lamine Yamal", "Vinícius Júnior", "Iñaki Peña"}
	for _, n := range inputs {
		stripped := names.StripDiacritics(n)
		assert.Equal(t, 100, fuzzy.TokenSortRatio(stripped, stripped), "self-similarity for %q", n)
	}
}

func TestReconcileExactMatch(t *testing.T) {
	result := Reconcile(
		[]string{"Lamine Yamal"},
		[]string{"Lamine Yamal", "Pedri"},
	)

	require.Len(t, result.Outcomes, 1)
	out := result.Outcomes[0]
	assert.Equal(t, "Lamine Yamal", out.BestMatch)
	assert.Equal(t, 100, out.Score)
	assert.Equal(t, ConfidenceExact, out.Confidence)
	assert.Equal(t, []string{"Pedri"}, result.Unclaimed)
}

func TestReconcileAccentAndOrderInsensitive(t *testing.T) {
	// Accents stripped and token order ignored: both should score 100.
	result := Reconcile(
		[]string{"Júnior Vinícius"},
		[]string{"Vinicius Junior"},
	)

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, ConfidenceExact, result.Outcomes[0].Confidence)
	assert.Equal(t, 100, result.Outcomes[0].Score)
	assert.Empty(t, result.Unclaimed)
}

func TestReconcileRejectsLowScores(t *testing.T) {
	result := Reconcile(
		[]string{"Someone Entirely Different"},
		[]string{"Xxxxx Yyyyy"},
	)

	require.Len(t, result.Outcomes, 1)
	out := result.Outcomes[0]
	assert.Equal(t, ConfidenceNone, out.Confidence)
	assert.Empty(t, out.BestMatch, "rejected candidates must not be reported as matches")
	assert.Equal(t, []string{"Xxxxx Yyyyy"}, result.Unclaimed, "rejected candidate stays unclaimed")
}

func TestClassifyThresholdBoundaries(t *testing.T) {
	assert.Equal(t, ConfidenceExact, classify(100))
	assert.Equal(t, ConfidenceExact, classify(90))
	assert.Equal(t, ConfidencePartial, classify(89))
	assert.Equal(t, ConfidencePartial, classify(65))
	assert.Equal(t, ConfidenceNone, classify(64))
	assert.Equal(t, ConfidenceNone, classify(0))
}

func TestUniqueFirstNameBoost(t *testing.T) {
	// "jon" occurs once on each side, so the first-token agreement with
	// "Jon Abcde" earns the boost even though the surnames disagree. The raw
	// score (entirely disjoint surnames of equal length) sits below the
	// acceptance threshold; the boost lifts it into "partial".
	raw := fuzzy.TokenSortRatio("Jon Abcde", "Jon Vwxyz")
	require.Less(t, raw, acceptThreshold)
	require.GreaterOrEqual(t, raw+boost, acceptThreshold)

	result := Reconcile(
		[]string{"Jon Abcde"},
		[]string{"Jon Vwxyz", "Jonathan Perez"},
	)

	require.Len(t, result.Outcomes, 1)
	out := result.Outcomes[0]
	assert.Equal(t, "Jon Vwxyz", out.BestMatch)
	assert.Equal(t, ConfidencePartial, out.Confidence)
	assert.Equal(t, min(raw+boost, 100), out.Score)
}

func TestAmbiguousFirstNameNoBoost(t *testing.T) {
	// Two provider entries share the first token "Carlos": the uniqueness
	// condition fails on the provider side, so neither is boosted.
	userNames := []string{"Carlos Vela"}
	providerNames := []string{"Carlos Soler", "Carlos Romero"}

	result := Reconcile(userNames, providerNames)

	require.Len(t, result.Outcomes, 1)
	out := result.Outcomes[0]
	rawSoler := fuzzy.TokenSortRatio("Carlos Vela", "Carlos Soler")
	rawRomero := fuzzy.TokenSortRatio("Carlos Vela", "Carlos Romero")
	assert.Equal(t, max(rawSoler, rawRomero), out.Score, "no boost may be applied")
}

func TestBoostIsCappedAt100(t *testing.T) {
	result := Reconcile(
		[]string{"Unai Simon"},
		[]string{"Unai Simón"},
	)
	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, 100, result.Outcomes[0].Score)
}

func TestFirstClaimWins(t *testing.T) {
	// Both user rows would pick "Marco Asensio"; the second row must not
	// double-claim it.
	result := Reconcile(
		[]string{"Marco Asensio", "Marco Asensio"},
		[]string{"Marco Asensio"},
	)

	require.Len(t, result.Outcomes, 2)
	assert.Equal(t, "Marco Asensio", result.Outcomes[0].BestMatch)
	assert.Empty(t, result.Outcomes[1].BestMatch, "a claimed provider name is out of play")
	assert.Equal(t, ConfidenceNone, result.Outcomes[1].Confidence)
	assert.Empty(t, result.Unclaimed)
}

func TestTieBreakPrefersProviderOrder(t *testing.T) {
	// Both candidates score identically against the user name; the
	// first-seen maximum in provider-list order must win.
	result := Reconcile(
		[]string{"Alex Garcia"},
		[]string{"Garcia Alex", "Alex Garcia"},
	)

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, "Garcia Alex", result.Outcomes[0].BestMatch)
}

func TestEmptyUserNames(t *testing.T) {
	result := Reconcile(nil, []string{"Pedri", "Gavi"})
	assert.Empty(t, result.Outcomes)
	assert.Equal(t, []string{"Pedri", "Gavi"}, result.Unclaimed)
}

func TestDuplicateProviderNamesReportedOnce(t *testing.T) {
	result := Reconcile(
		[]string{"Pedri"},
		[]string{"Pedri", "Gavi", "Gavi"},
	)

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, "Pedri", result.Outcomes[0].BestMatch)
	assert.Equal(t, []string{"Gavi"}, result.Unclaimed, "duplicates collapse to one unclaimed row")
}

// Every provider name shows up exactly once across the result: as a match
// target or as an unclaimed entry, never both, never twice.
func TestEveryProviderNameReportedExactlyOnce(t *testing.T) {
	userNames := []string{"Lamine Yamal", "Pedri Gonzalez", "Totally Unknown Person"}
	providerNames := []string{"Lamine Yamal", "Pedri", "Gavi", "Ferran Torres"}

	result := Reconcile(userNames, providerNames)

	seen := make(map[string]int)
	for _, out := range result.Outcomes {
		if out.BestMatch != "" {
			seen[out.BestMatch]++
		}
	}
	for _, name := range result.Unclaimed {
		seen[name]++
	}
	for _, name := range providerNames {
		assert.Equal(t, 1, seen[name], "provider name %q", name)
	}
}

func TestReconcileIsDeterministic(t *testing.T) {
	userNames := []string{"Mikel Oyarzabal", "Takefusa Kubo", "Brais Mendez"}
	providerNames := []string{"Brais Méndez", "Mikel Oyarzabal", "Take Kubo", "Martín Zubimendi"}

	first := Reconcile(userNames, providerNames)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Reconcile(userNames, providerNames))
	}
}
