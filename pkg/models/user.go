// Package models holds the wire representations of the Spikemate backend
// resources. Field names follow the JSON the API actually emits.
package models

// Role values accepted by the backend for a user account.
const (
	RoleUser      = "user"
	RolePlayer    = "player"
	RoleCoach     = "coach"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

type User struct {
	ID             string `json:"_id,omitempty"`
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	Password       string `json:"password,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`
	Role           string `json:"role,omitempty"`
	BirthDate      string `json:"birthDate,omitempty"`
	Position       string `json:"position,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}
