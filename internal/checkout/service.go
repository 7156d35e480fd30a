// Package checkout glues the cart to the order endpoint and the session.
package checkout

import (
	"context"

	"github.com/spikemate/mobile-core/internal/cart"
	pkgerrors "github.com/spikemate/mobile-core/pkg/errors"
	"github.com/spikemate/mobile-core/pkg/logger"
	"github.com/spikemate/mobile-core/pkg/models"
)

type identity interface {
	CurrentUserID() string
}

type orderCreator interface {
	Create(ctx context.Context, payload *cart.OrderPayload) (*models.Order, error)
}

type Service struct {
	cart    *cart.Cart
	session identity
	orders  orderCreator
	logg    *logger.Logger
}

func NewService(c *cart.Cart, session identity, orders orderCreator, logg *logger.Logger) *Service {
	return &Service{cart: c, session: session, orders: orders, logg: logg}
}

// SubmitOrder validates locally, submits, and clears the cart only once the
// backend has accepted the order. Any failure leaves the cart exactly as it
// was, so the user can retry without re-adding items. Callers should disable
// the order button while a submission is in flight; duplicate submissions
// are not deduplicated here.
func (s *Service) SubmitOrder(ctx context.Context) (*models.Order, error) {
	userID := s.session.CurrentUserID()
	if userID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "checkout requires a signed-in user")
	}

	payload, err := s.cart.BuildOrderPayload(userID)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.Create(ctx, payload)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(s.logg.WithUserID(ctx, userID), "order submission failed", err)
		}
		return nil, err
	}

	s.cart.Clear()
	if s.logg != nil {
		s.logg.Info(s.logg.WithUserID(ctx, userID), "order placed")
	}
	return order, nil
}
