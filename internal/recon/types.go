package recon

import "encoding/json"

// Confidence grades how strongly a user-side name matched a provider name.
type Confidence string

const (
	ConfidenceExact   Confidence = "exact"   // score >= 90
	ConfidencePartial Confidence = "partial" // 65 <= score < 90
	ConfidenceNone    Confidence = "none"    // score < 65, candidate rejected
)

// Status glyphs and classification labels as they appear in the report.
// These are part of the response contract consumed by the data sheet tooling,
// French labels included.
const (
	StatusExact   = "✅"
	StatusPartial = "⚠️"
	StatusMissing = "❌"
	StatusNew     = "🆕"

	TypeExact   = "match exact"
	TypePartial = "match partiel"
	TypeMissing = "non trouvé transfermarkt (parti du club ?)"
	TypeNew     = "nouveau joueur à ajouter à ta data sheet"
)

// MatchOutcome is the per-user-name result of one club's reconciliation.
type MatchOutcome struct {
	UserName   string
	BestMatch  string // empty when the best candidate was rejected
	Score      int
	Confidence Confidence
}

// Result holds one club's reconciliation: an outcome per user-side row plus
// the provider names no row claimed, in provider-list order.
type Result struct {
	Outcomes  []MatchOutcome
	Unclaimed []string
}

// Row is a single entry of the reconciliation report. The JSON keys are the
// exact column names the downstream sheet expects.
type Row struct {
	PlayerName  string     `json:"Nom du joueur dans ta liste"`
	ClubSlug    string     `json:"Club attribué dans ta liste"`
	MatchedName string     `json:"Nom trouvé dans Transfermarkt"`
	Similarity  Similarity `json:"Similarité (%)"`
	Status      string     `json:"Match validé ?"`
	Type        string     `json:"Type"`
}

// Similarity is a score that serializes as a number when a match was
// accepted and as the empty string otherwise.
type Similarity struct {
	Score int
	Valid bool
}

// MarshalJSON implements json.Marshaler.
func (s Similarity) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte(`""`), nil
	}
	return json.Marshal(s.Score)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Similarity) UnmarshalJSON(data []byte) error {
	if string(data) == `""` {
		*s = Similarity{}
		return nil
	}
	if err := json.Unmarshal(data, &s.Score); err != nil {
		return err
	}
	s.Valid = true
	return nil
}

// Summary aggregates a full report for run history and notifications.
type Summary struct {
	Rows       int `json:"rows"`
	Clubs      int `json:"clubs"`
	Exact      int `json:"exact"`
	Partial    int `json:"partial"`
	Missing    int `json:"missing"`
	NewPlayers int `json:"new_players"`
}
