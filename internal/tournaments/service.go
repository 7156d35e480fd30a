// Package tournaments is the typed client for the tournament endpoints.
package tournaments

import (
	"context"
	"fmt"

	"github.com/spikemate/mobile-core/pkg/models"
)

type httpAPI interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

type Service struct {
	api httpAPI
}

func NewService(api httpAPI) *Service {
	return &Service{api: api}
}

// Create registers a new tournament.
func (s *Service) Create(ctx context.Context, tournament models.Tournament) (*models.Tournament, error) {
	var created models.Tournament
	if err := s.api.Post(ctx, "/api/tournament/tournaments", tournament, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// List returns every browsable tournament.
func (s *Service) List(ctx context.Context) ([]models.Tournament, error) {
	var tournaments []models.Tournament
	if err := s.api.Get(ctx, "/api/tournament/tournaments", &tournaments); err != nil {
		return nil, err
	}
	return tournaments, nil
}

// GetByID fetches one tournament.
func (s *Service) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	var tournament models.Tournament
	if err := s.api.Get(ctx, "/api/tournament/tournaments/"+id, &tournament); err != nil {
		return nil, err
	}
	return &tournament, nil
}

// Update edits a tournament the caller organizes.
func (s *Service) Update(ctx context.Context, id string, tournament models.Tournament) (*models.Tournament, error) {
	var updated models.Tournament
	if err := s.api.Put(ctx, "/api/tournament/tournaments/"+id, tournament, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete cancels a tournament the caller organizes.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/api/tournament/tournaments/"+id, nil)
}

// CreateJoinRequest asks to enter the tournament with a team.
func (s *Service) CreateJoinRequest(ctx context.Context, id, teamID string) error {
	body := map[string]string{"teamId": teamID}
	return s.api.Post(ctx, "/api/tournament/tournaments/"+id+"/join", body, nil)
}

// HandleJoinRequest accepts or rejects a team's entry request.
func (s *Service) HandleJoinRequest(ctx context.Context, id, teamID, decision string) error {
	body := map[string]string{"teamId": teamID, "status": decision}
	return s.api.Put(ctx, "/api/tournament/tournaments/"+id+"/join", body, nil)
}

// GenerateStructure asks the backend to build the bracket.
func (s *Service) GenerateStructure(ctx context.Context, id, terrainType string, maxSets int) (*models.Tournament, error) {
	body := map[string]any{"terrainType": terrainType, "maxSets": maxSets}
	var tournament models.Tournament
	if err := s.api.Post(ctx, "/api/tournament/tournaments/"+id+"/generate", body, &tournament); err != nil {
		return nil, err
	}
	return &tournament, nil
}

// UpdateMatchResult records the score of one bracket match.
func (s *Service) UpdateMatchResult(ctx context.Context, tournamentID, matchID string, scoreA, scoreB int) error {
	body := map[string]int{"scoreA": scoreA, "scoreB": scoreB}
	path := fmt.Sprintf("/api/tournament/tournaments/%s/matches/%s", tournamentID, matchID)
	return s.api.Put(ctx, path, body, nil)
}

// MatchesByRound returns the bracket grouped by round for display.
func (s *Service) MatchesByRound(ctx context.Context, tournamentID string) (map[string][]models.TournamentMatch, error) {
	var rounds map[string][]models.TournamentMatch
	if err := s.api.Get(ctx, "/api/tournament/tournaments/"+tournamentID+"/matches-by-round", &rounds); err != nil {
		return nil, err
	}
	return rounds, nil
}
