package checkout

import (
	"context"
	"testing"

	"github.com/spikemate/mobile-core/internal/cart"
	pkgerrors "github.com/spikemate/mobile-core/pkg/errors"
	"github.com/spikemate/mobile-core/pkg/models"
)

const buyerID = "64af1f77bcf86cd799439099"

type stubIdentity struct {
	userID string
}

func (s stubIdentity) CurrentUserID() string { return s.userID }

type stubOrders struct {
	calls   int
	payload *cart.OrderPayload
	create  func(payload *cart.OrderPayload) (*models.Order, error)
}

func (s *stubOrders) Create(ctx context.Context, payload *cart.OrderPayload) (*models.Order, error) {
	s.calls++
	s.payload = payload
	return s.create(payload)
}

func loadedCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.New(nil)
	if err := c.AddItem(models.Product{ID: "507f1f77bcf86cd799439011", Name: "ball", Price: 29.99}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	c.AdjustQuantity("507f1f77bcf86cd799439011", 1)
	return c
}

func TestSubmitOrderRequiresSession(t *testing.T) {
	orders := &stubOrders{create: func(*cart.OrderPayload) (*models.Order, error) { return &models.Order{}, nil }}
	svc := NewService(loadedCart(t), stubIdentity{}, orders, nil)

	_, err := svc.SubmitOrder(context.Background())
	if pkgerrors.CodeOf(err) != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected auth error, got %v", err)
	}
	if orders.calls != 0 {
		t.Fatal("anonymous checkout must not reach the network")
	}
}

func TestSubmitOrderSurfacesValidationWithoutNetwork(t *testing.T) {
	orders := &stubOrders{create: func(*cart.OrderPayload) (*models.Order, error) { return &models.Order{}, nil }}
	svc := NewService(cart.New(nil), stubIdentity{userID: buyerID}, orders, nil)

	_, err := svc.SubmitOrder(context.Background())
	if pkgerrors.CodeOf(err) != pkgerrors.CodeEmptyCart {
		t.Fatalf("expected empty cart error, got %v", err)
	}
	if orders.calls != 0 {
		t.Fatal("validation failures must not reach the network")
	}
}

func TestSubmitOrderPreservesCartOnFailure(t *testing.T) {
	failures := []*pkgerrors.Error{
		pkgerrors.New(pkgerrors.CodeNetwork, "connection reset"),
		pkgerrors.New(pkgerrors.CodeServer, "inventory conflict"),
	}

	for _, failure := range failures {
		c := loadedCart(t)
		before := c.Lines()
		orders := &stubOrders{create: func(*cart.OrderPayload) (*models.Order, error) { return nil, failure }}
		svc := NewService(c, stubIdentity{userID: buyerID}, orders, nil)

		_, err := svc.SubmitOrder(context.Background())
		if pkgerrors.CodeOf(err) != failure.Code() {
			t.Fatalf("expected %s, got %v", failure.Code(), err)
		}

		after := c.Lines()
		if len(after) != len(before) {
			t.Fatalf("%s: cart lines changed across a failed submission", failure.Code())
		}
		for i := range before {
			if after[i].ProductID != before[i].ProductID || after[i].Quantity != before[i].Quantity {
				t.Fatalf("%s: line %d changed across a failed submission", failure.Code(), i)
			}
		}
	}
}

func TestSubmitOrderClearsCartOnSuccess(t *testing.T) {
	c := loadedCart(t)
	orders := &stubOrders{create: func(payload *cart.OrderPayload) (*models.Order, error) {
		return &models.Order{
			ID:       "65af1f77bcf86cd799439001",
			User:     payload.User,
			Products: payload.Products,
			Total:    payload.Total,
		}, nil
	}}
	svc := NewService(c, stubIdentity{userID: buyerID}, orders, nil)

	order, err := svc.SubmitOrder(context.Background())
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}
	if order.User != buyerID {
		t.Fatalf("unexpected purchaser %q", order.User)
	}
	if c.Len() != 0 {
		t.Fatal("cart must be cleared after a successful checkout")
	}

	// The submitted payload carried the validated cart contents.
	if orders.payload == nil || len(orders.payload.Products) != 1 {
		t.Fatalf("unexpected payload %+v", orders.payload)
	}
	if orders.payload.Quantities[0] != 2 {
		t.Fatalf("expected quantity 2 in payload, got %d", orders.payload.Quantities[0])
	}
	if orders.payload.Total != 59.98 {
		t.Fatalf("expected total 59.98, got %v", orders.payload.Total)
	}
}
