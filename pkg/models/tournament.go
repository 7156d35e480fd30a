package models

// Tournament formats supported by the backend bracket generator.
const (
	TournamentSingleElimination = "SingleElimination"
	TournamentDoubleElimination = "DoubleElimination"
	TournamentRoundRobin        = "RoundRobin"
	TournamentLeague            = "League"
	TournamentGroupKnockout     = "GroupKnockout"
)

type TournamentGroup struct {
	ID        string   `json:"_id,omitempty"`
	GroupName string   `json:"groupName"`
	Teams     []string `json:"teams,omitempty"`
	Matches   []string `json:"matches,omitempty"`
}

type TournamentStructure struct {
	Matches []string          `json:"matches,omitempty"`
	Groups  []TournamentGroup `json:"groups,omitempty"`
	Rounds  int               `json:"rounds,omitempty"`
}

type Tournament struct {
	ID             string              `json:"_id,omitempty"`
	Name           string              `json:"name"`
	Organizer      []string            `json:"organizer,omitempty"`
	StartDate      string              `json:"startDate"`
	EndDate        string              `json:"endDate"`
	Location       string              `json:"location"`
	NumberTeam     int                 `json:"numberTeam"`
	Teams          []string            `json:"teams,omitempty"`
	Prize          string              `json:"prize,omitempty"`
	TournamentType string              `json:"tournamentType"`
	JoinRequests   []JoinRequest       `json:"joinRequests,omitempty"`
	Structure      TournamentStructure `json:"structure,omitempty"`
	Photo          string              `json:"photo,omitempty"`
	CreatedAt      string              `json:"createdAt,omitempty"`
	UpdatedAt      string              `json:"updatedAt,omitempty"`
}

// TournamentMatch is one scheduled match inside a tournament bracket.
type TournamentMatch struct {
	ID          string           `json:"_id,omitempty"`
	Tournament  string           `json:"tournament,omitempty"`
	Round       int              `json:"round"`
	MatchNumber int              `json:"matchNumber"`
	GroupName   string           `json:"groupName,omitempty"`
	Team1       *Team            `json:"team1,omitempty"`
	Team2       *Team            `json:"team2,omitempty"`
	Sets        []map[string]int `json:"sets,omitempty"`
	TerrainType string           `json:"terrainType,omitempty"`
	MaxSets     int              `json:"maxSets,omitempty"`
	NextMatch   string           `json:"nextMatch,omitempty"`
}
