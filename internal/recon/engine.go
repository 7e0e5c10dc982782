// Package recon matches user-supplied player names against an external
// roster, one club at a time. Scoring is tuned for person names within a
// fixed-size squad, not for arbitrary strings.
package recon

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/tbouchet/squadcheck/internal/names"
)

// boost is the score bonus for an unambiguous first-name agreement: when no
// other player shares that first name on either side of the batch, matching
// first tokens are strong independent evidence of identity even when the
// surname is formatted differently.
const boost = 25

// Classification thresholds. A score at the boundary takes the higher class.
const (
	exactThreshold  = 90
	acceptThreshold = 65
)

// Reconcile matches each user-side name against the provider's name list for
// one club and classifies the results. Claim bookkeeping is scoped to this
// call: each provider name can be claimed by at most one user row
// (first-claim wins), and every name claimed by nobody comes back in
// Unclaimed, deduplicated, in provider-list order. It never fails; an empty
// userNames yields zero outcomes and the full provider list unclaimed.
func Reconcile(userNames, providerNames []string) Result {
	providerFirsts := firstTokenCounts(providerNames)
	userFirsts := firstTokenCounts(userNames)

	claimed := make(map[string]bool)
	outcomes := make([]MatchOutcome, 0, len(userNames))

	for _, name := range userNames {
		stripped := names.StripDiacritics(name)
		first := names.FirstToken(name)

		best := ""
		bestScore := 0
		for _, candidate := range providerNames {
			if claimed[candidate] {
				continue
			}
			score := fuzzy.TokenSortRatio(stripped, names.StripDiacritics(candidate))
			if first != "" && names.FirstToken(candidate) == first &&
				providerFirsts[first] == 1 && userFirsts[first] == 1 {
				score = min(score+boost, 100)
			}
			// Strictly greater keeps the first-seen maximum, so ties resolve
			// to provider-list order.
			if score > bestScore {
				best, bestScore = candidate, score
			}
		}

		outcome := MatchOutcome{UserName: name, Score: bestScore, Confidence: classify(bestScore)}
		if outcome.Confidence != ConfidenceNone && best != "" {
			outcome.BestMatch = best
			claimed[best] = true
		}
		outcomes = append(outcomes, outcome)
	}

	seen := make(map[string]bool)
	var unclaimed []string
	for _, candidate := range providerNames {
		if claimed[candidate] || seen[candidate] {
			continue
		}
		seen[candidate] = true
		unclaimed = append(unclaimed, candidate)
	}

	return Result{Outcomes: outcomes, Unclaimed: unclaimed}
}

func classify(score int) Confidence {
	switch {
	case score >= exactThreshold:
		return ConfidenceExact
	case score >= acceptThreshold:
		return ConfidencePartial
	default:
		return ConfidenceNone
	}
}

// firstTokenCounts tallies normalized first names across a batch. The counts
// decide boost eligibility: only a first name occurring exactly once on each
// side is unambiguous enough to reward.
func firstTokenCounts(list []string) map[string]int {
	counts := make(map[string]int, len(list))
	for _, n := range list {
		counts[names.FirstToken(n)]++
	}
	return counts
}
