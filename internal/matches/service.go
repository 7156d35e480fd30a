// Package matches is the typed client for the quick-match endpoints.
package matches

import (
	"context"

	pkgerrors "github.com/spikemate/mobile-core/pkg/errors"
	"github.com/spikemate/mobile-core/pkg/models"
	"github.com/spikemate/mobile-core/pkg/validators"
)

type httpAPI interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

type identity interface {
	IsAuthenticated() bool
}

type Service struct {
	api     httpAPI
	session identity
}

func NewService(api httpAPI, session identity) *Service {
	return &Service{api: api, session: session}
}

// CreateInput is the form for organizing a quick match.
type CreateInput struct {
	IsPublic    bool   `json:"isPublic"`
	Team1       string `json:"team1" validate:"required"`
	Team2       string `json:"team2,omitempty"`
	TerrainType string `json:"terrainType" validate:"required,oneof=indoor beach"`
	MaxSets     int    `json:"maxSets" validate:"required,oneof=3 5"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location" validate:"required"`
}

// Create organizes a new quick match. Fails before the network call when no
// session is active.
func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Match, error) {
	if s.session != nil && !s.session.IsAuthenticated() {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "creating a match requires a signed-in user")
	}
	if err := validators.Struct(input); err != nil {
		return nil, err
	}

	var match models.Match
	if err := s.api.Post(ctx, "/api/matches/quick-matches", input, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// List returns every browsable quick match.
func (s *Service) List(ctx context.Context) ([]models.Match, error) {
	var matches []models.Match
	if err := s.api.Get(ctx, "/api/matches/quick-matches", &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// Join enters a public match directly with the given team.
func (s *Service) Join(ctx context.Context, matchID, teamID string) error {
	body := map[string]string{"teamId": teamID}
	return s.api.Post(ctx, "/api/matches/quick-matches/"+matchID+"/join", body, nil)
}

// RequestJoin asks the organizer of a private match for a spot.
func (s *Service) RequestJoin(ctx context.Context, matchID, teamID string) error {
	body := map[string]string{"teamId": teamID}
	return s.api.Post(ctx, "/api/matches/quick-matches/"+matchID+"/request-join", body, nil)
}

// HandleJoinRequest approves or rejects a pending join request.
func (s *Service) HandleJoinRequest(ctx context.Context, matchID string, approved bool) error {
	body := map[string]bool{"approved": approved}
	return s.api.Put(ctx, "/api/matches/quick-matches/"+matchID+"/handle-join", body, nil)
}

// Update edits a match the caller organizes.
func (s *Service) Update(ctx context.Context, matchID string, match models.Match) (*models.Match, error) {
	var updated models.Match
	if err := s.api.Put(ctx, "/api/matches/quick-matches/"+matchID, match, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete cancels a match the caller organizes.
func (s *Service) Delete(ctx context.Context, matchID string) error {
	return s.api.Delete(ctx, "/api/matches/quick-matches/"+matchID, nil)
}

// InvitePlayer invites a specific player onto a team for the match.
func (s *Service) InvitePlayer(ctx context.Context, matchID, playerID, teamID string) error {
	body := map[string]string{"playerId": playerID, "teamId": teamID}
	return s.api.Post(ctx, "/api/matches/quick-matches/"+matchID+"/invite", body, nil)
}
