package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"kioskopos/internal/model"
)

// Line is one cart entry. ProductName and Price are snapshots taken when
// the product is added; Price may be overridden afterwards (ad-hoc
// discounts / negotiation). Subtotal is always recomputed from
// Quantity × Price, never stored out of sync.
type Line struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Cart accumulates lines for the in-progress sale of one operator.
type Cart struct {
	Lines []Line `json:"lines"`
}

func New() *Cart { return &Cart{} }

func (c *Cart) IsEmpty() bool { return len(c.Lines) == 0 }

// Add puts one unit of the product in the cart. If a line for the product
// already exists its quantity is incremented by 1, failing with
// ErrStockExceeded when the increment would exceed the product's currently
// known stock; the cart is left untouched on failure.
func (c *Cart) Add(p *model.Product) error {
	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			if c.Lines[i].Quantity >= p.Stock {
				return ErrStockExceeded
			}
			c.Lines[i].Quantity++
			c.Lines[i].Subtotal = c.Lines[i].Price.Mul(decimal.NewFromInt(int64(c.Lines[i].Quantity)))
			return nil
		}
	}
	c.Lines = append(c.Lines, Line{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    1,
		Price:       p.Price,
		Subtotal:    p.Price,
	})
	return nil
}

// UpdateQuantity sets an absolute quantity for a line. qty <= 0 removes the
// line entirely. The stock bound is enforced here as well, against the
// caller-supplied available quantity.
func (c *Cart) UpdateQuantity(productID uuid.UUID, qty, available int) error {
	if qty <= 0 {
		for i := range c.Lines {
			if c.Lines[i].ProductID == productID {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
				return nil
			}
		}
		return ErrLineNotFound
	}
	if qty > available {
		return ErrStockExceeded
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = qty
			c.Lines[i].Subtotal = c.Lines[i].Price.Mul(decimal.NewFromInt(int64(qty)))
			return nil
		}
	}
	return ErrLineNotFound
}

// UpdatePrice overrides a line's unit price independently of the catalog.
// Negative prices are rejected without touching the line.
func (c *Cart) UpdatePrice(productID uuid.UUID, price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Price = price
			c.Lines[i].Subtotal = price.Mul(decimal.NewFromInt(int64(c.Lines[i].Quantity)))
			return nil
		}
	}
	return ErrLineNotFound
}

// Total is derived from the line subtotals on every call.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal)
	}
	return total
}

// Clear empties the cart (sale settled or abandoned).
func (c *Cart) Clear() { c.Lines = nil }
