package models

// Team kinds: quick teams are assembled ad hoc for a single match, fixed
// teams persist across matches and tournaments.
const (
	TeamTypeQuick = "quick"
	TeamTypeFixed = "fixed"
)

type Team struct {
	ID         string   `json:"_id,omitempty"`
	TeamName   string   `json:"teamName"`
	TeamLeader string   `json:"teamLeader,omitempty"`
	Players    []string `json:"players,omitempty"`
	TeamType   string   `json:"teamType,omitempty"`
	Logo       string   `json:"logo,omitempty"`
	CreatedAt  string   `json:"createdAt,omitempty"`
	UpdatedAt  string   `json:"updatedAt,omitempty"`
}
