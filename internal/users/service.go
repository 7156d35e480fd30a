// Package users is the typed client for the profile endpoints.
package users

import (
	"context"

	"github.com/spikemate/mobile-core/pkg/logger"
	"github.com/spikemate/mobile-core/pkg/models"
	"github.com/spikemate/mobile-core/pkg/validators"
)

type httpAPI interface {
	Get(ctx context.Context, path string, out any) error
	Put(ctx context.Context, path string, body, out any) error
}

// tokenKeeper persists a rotated token the moment the backend issues one.
type tokenKeeper interface {
	Persist(ctx context.Context, token string) error
}

type Service struct {
	api    httpAPI
	tokens tokenKeeper
	logg   *logger.Logger
}

func NewService(api httpAPI, tokens tokenKeeper, logg *logger.Logger) *Service {
	return &Service{api: api, tokens: tokens, logg: logg}
}

// UpdateInput is the editable slice of a profile.
type UpdateInput struct {
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`
	BirthDate      string `json:"birthDate,omitempty"`
	Position       string `json:"position,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// GetByID fetches a user's profile. Requires an authenticated session.
func (s *Service) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.api.Get(ctx, "/api/users/"+id, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update edits the profile. When the backend rotates the token alongside the
// updated user, the new token is persisted before returning so later
// protected calls use it.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (*models.User, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}

	var resp struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	if err := s.api.Put(ctx, "/api/users/"+id, input, &resp); err != nil {
		return nil, err
	}

	if resp.Token != "" && s.tokens != nil {
		if err := s.tokens.Persist(ctx, resp.Token); err != nil {
			return nil, err
		}
		if s.logg != nil {
			s.logg.Info(ctx, "session token rotated")
		}
	}

	return &resp.User, nil
}
