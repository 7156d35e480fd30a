package models

// Terrain types a match can be played on.
const (
	TerrainIndoor = "indoor"
	TerrainBeach  = "beach"
)

// Join request states shared by matches and tournaments.
const (
	JoinStatusPending  = "pending"
	JoinStatusAccepted = "accepted"
	JoinStatusRejected = "rejected"
)

type JoinRequest struct {
	User        string `json:"user,omitempty"`
	Team        string `json:"team"`
	Status      string `json:"status"`
	RequestedAt string `json:"requestedAt,omitempty"`
}

type SetScore struct {
	Team1Score int `json:"team1Score"`
	Team2Score int `json:"team2Score"`
}

// Match is an informal "quick match" between two teams.
type Match struct {
	ID           string        `json:"_id,omitempty"`
	IsPublic     bool          `json:"isPublic"`
	Creator      *User         `json:"creator,omitempty"`
	Team1        *Team         `json:"team1,omitempty"`
	Team2        *Team         `json:"team2,omitempty"`
	JoinRequests []JoinRequest `json:"joinRequests,omitempty"`
	Sets         []SetScore    `json:"sets,omitempty"`
	TerrainType  string        `json:"terrainType"`
	MaxSets      int           `json:"maxSets"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	Location     string        `json:"location"`
	Score1       *int          `json:"score1"`
	Score2       *int          `json:"score2"`
	Kind         string        `json:"kind,omitempty"`
	Winner       *Team         `json:"winner"`
}
