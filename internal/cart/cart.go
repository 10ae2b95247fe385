package cart

import "github.com/mkotelnikov/restaurant-pos/internal/billing"

// Line is one selected menu item in an in-progress order.
type Line struct {
	MenuID        int     `json:"menu_id"`
	Name          string  `json:"name"`
	UnitPrice     float64 `json:"unit_price"`
	Quantity      int     `json:"quantity"`
	Customization string  `json:"customization,omitempty"`
}

// Cart holds the lines of an order being composed. It keeps at most
// one line per menu item and preserves insertion order. All methods
// are synchronous and do no I/O; a Cart belongs to a single order
// session and is not safe for concurrent use.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) find(menuID int) int {
	for i := range c.lines {
		if c.lines[i].MenuID == menuID {
			return i
		}
	}
	return -1
}

// AddItem inserts a line for the item with quantity 1, or bumps the
// quantity when the item is already in the cart.
func (c *Cart) AddItem(menuID int, name string, unitPrice float64) {
	if i := c.find(menuID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, Line{
		MenuID:    menuID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
}

// SetQuantity sets the quantity of the matching line. A quantity of
// zero or less removes the line.
func (c *Cart) SetQuantity(menuID, qty int) {
	i := c.find(menuID)
	if i < 0 {
		return
	}
	if qty <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return
	}
	c.lines[i].Quantity = qty
}

// SetCustomization replaces the free-text note on the matching line.
func (c *Cart) SetCustomization(menuID int, text string) {
	if i := c.find(menuID); i >= 0 {
		c.lines[i].Customization = text
	}
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Totals computes the current bill for the cart. It is recomputed from
// the lines on every call; the cart never caches a total.
func (c *Cart) Totals(calc billing.Calculator, dineIn bool) billing.Totals {
	lines := make([]billing.Line, len(c.lines))
	for i, l := range c.lines {
		lines[i] = billing.Line{UnitPrice: l.UnitPrice, Quantity: l.Quantity}
	}
	return calc.Compute(lines, dineIn)
}
