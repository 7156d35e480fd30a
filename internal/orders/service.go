// Package orders is the typed client for the order endpoints. The backend
// wraps every order response in a data envelope.
package orders

import (
	"context"

	"github.com/spikemate/mobile-core/internal/cart"
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

type orderEnvelope struct {
	Data models.Order `json:"data"`
}

type orderListEnvelope struct {
	Data []models.Order `json:"data"`
}

// Create submits the validated payload to the order endpoint.
func (s *Service) Create(ctx context.Context, payload *cart.OrderPayload) (*models.Order, error) {
	var envelope orderEnvelope
	if err := s.api.Post(ctx, "/api/orders", payload, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// List returns every order visible to the caller.
func (s *Service) List(ctx context.Context) ([]models.Order, error) {
	var envelope orderListEnvelope
	if err := s.api.Get(ctx, "/api/orders", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// GetByID fetches a single order.
func (s *Service) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var envelope orderEnvelope
	if err := s.api.Get(ctx, "/api/orders/"+id, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// ListByUser returns the order history of one user.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var envelope orderListEnvelope
	if err := s.api.Get(ctx, "/api/orders/user/"+userID, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// Update modifies an existing order.
func (s *Service) Update(ctx context.Context, id string, updated models.Order) (*models.Order, error) {
	var envelope orderEnvelope
	if err := s.api.Put(ctx, "/api/orders/"+id, updated, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// Remove deletes an order.
func (s *Service) Remove(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/api/orders/"+id, nil)
}
