// Package cart maintains the in-memory shopping cart and builds the
// validated payload sent at checkout. All operations are synchronous data
// transforms; like the rest of the client core the cart is confined to the
// UI event loop and is not safe for concurrent use.
package cart

import (
	"github.com/shopspring/decimal"
	pkgerrors "github.com/spikemate/mobile-core/pkg/errors"
	"github.com/spikemate/mobile-core/pkg/models"
)

// placeholderImage stands in for products listed without a photo.
const placeholderImage = "https://via.placeholder.com/150"

// Notifier receives the user-facing cart events. The toast layer implements
// it; a nil notifier is replaced with a no-op.
type Notifier interface {
	ItemAdded(name string)
	ItemRemoved(name string)
}

type noopNotifier struct{}

func (noopNotifier) ItemAdded(string)   {}
func (noopNotifier) ItemRemoved(string) {}

// Line is one entry in the cart. Name, unit price, and image are snapshots
// taken when the product was added; they are not kept in sync with later
// catalog changes.
type Line struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	ImageRef  string
	Quantity  int
}

// Cart holds at most one line per product id, in insertion order.
type Cart struct {
	lines  []*Line
	index  map[string]*Line
	notify Notifier
}

func New(notify Notifier) *Cart {
	if notify == nil {
		notify = noopNotifier{}
	}
	return &Cart{
		index:  map[string]*Line{},
		notify: notify,
	}
}

// AddItem puts the product in the cart. Adding a product that is already
// present increments its quantity instead of duplicating the line.
func (c *Cart) AddItem(product models.Product) error {
	if product.ID == "" {
		return pkgerrors.New(pkgerrors.CodeInvalidProduct, "product is missing an identifier")
	}

	if line, ok := c.index[product.ID]; ok {
		line.Quantity++
	} else {
		image := product.ImageURL
		if image == "" {
			image = placeholderImage
		}
		line := &Line{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: decimal.NewFromFloat(product.Price),
			ImageRef:  image,
			Quantity:  1,
		}
		c.lines = append(c.lines, line)
		c.index[product.ID] = line
	}

	c.notify.ItemAdded(product.Name)
	return nil
}

// AdjustQuantity shifts the line's quantity by delta, clamping at 1. A
// decrement past the floor is a silent clamp, not an error; the only way to
// reach zero is RemoveItem. Unknown ids are ignored.
func (c *Cart) AdjustQuantity(productID string, delta int) {
	line, ok := c.index[productID]
	if !ok {
		return
	}
	line.Quantity += delta
	if line.Quantity < 1 {
		line.Quantity = 1
	}
}

// RemoveItem deletes the line if present. Removing an absent id is a no-op.
func (c *Cart) RemoveItem(productID string) {
	line, ok := c.index[productID]
	if !ok {
		return
	}
	delete(c.index, productID)
	for i, l := range c.lines {
		if l == line {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
	c.notify.ItemRemoved(line.Name)
}

// Clear empties the cart unconditionally. Used after a successful checkout.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = map[string]*Line{}
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// TotalCount sums the line quantities, for the badge on the cart tab.
func (c *Cart) TotalCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// TotalAmount sums unit price times quantity across all lines, rounded
// half-up to 2 decimal places. Rounding is applied once, on the final sum.
func (c *Cart) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total.Round(2)
}

// Lines returns a read-only copy of the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, *line)
	}
	return out
}
