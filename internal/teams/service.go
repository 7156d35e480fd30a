// Package teams is the typed client for the team endpoints.
package teams

import (
	"context"

	"github.com/spikemate/mobile-core/pkg/models"
	"github.com/spikemate/mobile-core/pkg/validators"
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

// CreateInput is the form for registering a team.
type CreateInput struct {
	TeamName string   `json:"teamName" validate:"required"`
	Players  []string `json:"players,omitempty"`
	TeamType string   `json:"teamType" validate:"required,oneof=quick fixed"`
	Logo     string   `json:"logo,omitempty"`
}

// Create registers a new team. Requires an authenticated session.
func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Team, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}

	var team models.Team
	if err := s.api.Post(ctx, "/api/team/create", input, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// List returns every team.
func (s *Service) List(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	if err := s.api.Get(ctx, "/api/team", &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// GetByID fetches one team.
func (s *Service) GetByID(ctx context.Context, id string) (*models.Team, error) {
	var team models.Team
	if err := s.api.Get(ctx, "/api/team/"+id, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// Update edits a team the caller leads.
func (s *Service) Update(ctx context.Context, id string, team models.Team) (*models.Team, error) {
	var updated models.Team
	if err := s.api.Put(ctx, "/api/team/"+id, team, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete disbands a team the caller leads.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/api/team/"+id, nil)
}
