package cart

import (
	"time"

	"github.com/google/uuid"
)

// Line is a single product entry in a cart.
type Line struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// Cart is the per-user shopping cart aggregate. Mutations go through the
// methods below; prices are resolved against the catalog at quote time.
type Cart struct {
	Lines     []Line    `json:"lines"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Add merges qty into the existing line for the product, or appends one.
func (c *Cart) Add(productID uuid.UUID, qty int) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity += qty
			return
		}
	}
	c.Lines = append(c.Lines, Line{ProductID: productID, Quantity: qty})
}

// SetQuantity pins the line to qty. A qty of zero or less removes the line.
// It reports whether the product was present.
func (c *Cart) SetQuantity(productID uuid.UUID, qty int) bool {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			if qty <= 0 {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			} else {
				c.Lines[i].Quantity = qty
			}
			return true
		}
	}
	return false
}

// Remove drops the line for the product and reports whether it was present.
func (c *Cart) Remove(productID uuid.UUID) bool {
	return c.SetQuantity(productID, 0)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Quantity returns the quantity held for the product, zero when absent.
func (c *Cart) Quantity(productID uuid.UUID) int {
	for _, line := range c.Lines {
		if line.ProductID == productID {
			return line.Quantity
		}
	}
	return 0
}
