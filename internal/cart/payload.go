package cart

import (
	"fmt"
	"strings"

	pkgerrors "github.com/spikemate/mobile-core/pkg/errors"
	"github.com/spikemate/mobile-core/pkg/objectid"
)

// OrderPayload is the submission-ready representation of the cart. Products
// and Quantities are index-aligned and follow the cart's insertion order.
// Quantities is optional backend-side and never trusted for totals; Total is
// always computed client-side from unit price times quantity.
type OrderPayload struct {
	User       string   `json:"user"`
	Products   []string `json:"products"`
	Quantities []int    `json:"quantities,omitempty"`
	Total      float64  `json:"total"`
}

// BuildOrderPayload is the checkout-time validation gate. Every malformed
// state is caught here so nothing invalid can reach the network layer.
// Checks run in a fixed order: empty cart, then identifier format, then the
// purchaser.
func (c *Cart) BuildOrderPayload(userID string) (*OrderPayload, error) {
	if len(c.lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeEmptyCart, "cart is empty")
	}

	for _, line := range c.lines {
		if !objectid.IsValid(line.ProductID) {
			return nil, pkgerrors.New(
				pkgerrors.CodeInvalidIdentifier,
				fmt.Sprintf("product %q has a malformed identifier", line.ProductID),
			).WithDetails(map[string]any{"product_id": line.ProductID})
		}
	}

	if strings.TrimSpace(userID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeMissingUser, "order requires a signed-in user")
	}

	products := make([]string, 0, len(c.lines))
	quantities := make([]int, 0, len(c.lines))
	for _, line := range c.lines {
		products = append(products, line.ProductID)
		quantities = append(quantities, line.Quantity)
	}

	return &OrderPayload{
		User:       userID,
		Products:   products,
		Quantities: quantities,
		Total:      c.TotalAmount().InexactFloat64(),
	}, nil
}
