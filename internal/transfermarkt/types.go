package transfermarkt

// rosterResponse mirrors the provider's wire format for
// GET /clubs/{clubId}/players.
type rosterResponse struct {
	Players []rosterPlayer `json:"players"`
}

type rosterPlayer struct {
	Name string `json:"name"`
}
