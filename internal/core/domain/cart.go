package domain

import "math"

// CartLine is a value snapshot of a product taken at the moment it was
// added. Later catalog edits never touch existing lines. Price and
// quantity are independently editable; quantity stays a float at this
// level, integer-only rules live in the entry validation layer.
type CartLine struct {
	ProductID ID
	Name      string
	Price     float64
	Quantity  float64
}

// LineTotal is round(price) * quantity. The stored price is not
// rounded, rounding happens at compute time.
func (l CartLine) LineTotal() float64 {
	return math.Round(l.Price) * l.Quantity
}

// Cart maps product ids to lines while keeping stable insertion order.
// Invariant: no line with quantity < 1 survives any operation.
type Cart struct {
	lines map[ID]*CartLine
	order []ID
}

func NewCart() *Cart {
	return &Cart{lines: make(map[ID]*CartLine)}
}

// AddOrIncrement bumps the quantity of an existing line by one, or
// opens a new line with quantity 1 snapshotting the product.
func (c *Cart) AddOrIncrement(p Product) {
	if line, ok := c.lines[p.ID]; ok {
		line.Quantity++
		return
	}
	c.lines[p.ID] = &CartLine{ProductID: p.ID, Name: p.Name, Price: p.Price, Quantity: 1}
	c.order = append(c.order, p.ID)
}

// Decrement lowers the quantity by one and deletes the line when it
// drops below 1.
func (c *Cart) Decrement(id ID) bool {
	line, ok := c.lines[id]
	if !ok {
		return false
	}
	line.Quantity--
	if line.Quantity < 1 {
		c.Remove(id)
	}
	return true
}

// SetQuantity overwrites the quantity. Zero deletes the line; that is
// the one sanctioned way to reach an empty quantity. Callers validate
// negatives and NaN before getting here.
func (c *Cart) SetQuantity(id ID, qty float64) bool {
	line, ok := c.lines[id]
	if !ok {
		return false
	}
	if qty == 0 {
		c.Remove(id)
		return true
	}
	line.Quantity = qty
	return true
}

// SetPrice overwrites the line price as given, without rounding.
func (c *Cart) SetPrice(id ID, price float64) bool {
	line, ok := c.lines[id]
	if !ok {
		return false
	}
	line.Price = price
	return true
}

func (c *Cart) Remove(id ID) {
	if _, ok := c.lines[id]; !ok {
		return
	}
	delete(c.lines, id)
	for i, lid := range c.order {
		if lid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Cart) Clear() {
	c.lines = make(map[ID]*CartLine)
	c.order = nil
}

func (c *Cart) Get(id ID) (CartLine, bool) {
	line, ok := c.lines[id]
	if !ok {
		return CartLine{}, false
	}
	return *line, true
}

// Lines returns value copies in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Total is recomputed from scratch on every call, never cached.
func (c *Cart) Total() float64 {
	var total float64
	for _, id := range c.order {
		total += c.lines[id].LineTotal()
	}
	return total
}
