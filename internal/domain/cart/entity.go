package cart

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrLineNotFound = errors.New("cart line not found")

type Action string

const (
	ActionIncrease Action = "increase"
	ActionDecrease Action = "decrease"
)

func (a Action) IsValid() bool {
	return a == ActionIncrease || a == ActionDecrease
}

// Line is one (product, ring size) entry. UnitPriceCents is the catalog price
// observed when the line was first added; totals use it, never a live lookup.
type Line struct {
	id             uuid.UUID
	productID      uuid.UUID
	ringSize       RingSize
	quantity       int32
	unitPriceCents int64
}

func NewLine(productID uuid.UUID, ringSize RingSize, quantity int32, unitPriceCents int64) (Line, error) {
	if quantity < 1 {
		return Line{}, ErrInvalidQuantity
	}
	if unitPriceCents < 0 {
		return Line{}, ErrInvalidUnitPrice
	}
	return Line{
		id:             uuid.New(),
		productID:      productID,
		ringSize:       ringSize,
		quantity:       quantity,
		unitPriceCents: unitPriceCents,
	}, nil
}

func ReconstructLine(id, productID uuid.UUID, ringSize RingSize, quantity int32, unitPriceCents int64) Line {
	return Line{
		id:             id,
		productID:      productID,
		ringSize:       ringSize,
		quantity:       quantity,
		unitPriceCents: unitPriceCents,
	}
}

func (l Line) ID() uuid.UUID         { return l.id }
func (l Line) ProductID() uuid.UUID  { return l.productID }
func (l Line) RingSize() RingSize    { return l.ringSize }
func (l Line) Quantity() int32       { return l.quantity }
func (l Line) UnitPriceCents() int64 { return l.unitPriceCents }

func (l Line) SubtotalCents() int64 {
	return l.unitPriceCents * int64(l.quantity)
}

func (l Line) sameVariant(productID uuid.UUID, ringSize RingSize) bool {
	return l.productID == productID && l.ringSize == ringSize
}

// Cart is the mutable per-session line collection feeding checkout. At most
// one line exists per (product, ring size) pair.
type Cart struct {
	id        uuid.UUID
	sessionID SessionID
	lines     []Line
	createdAt time.Time
}

func NewCart(sessionID SessionID) *Cart {
	return &Cart{
		id:        uuid.New(),
		sessionID: sessionID,
	}
}

func ReconstructCart(id uuid.UUID, sessionID SessionID, lines []Line, createdAt time.Time) *Cart {
	return &Cart{
		id:        id,
		sessionID: sessionID,
		lines:     lines,
		createdAt: createdAt,
	}
}

func (c *Cart) ID() uuid.UUID        { return c.id }
func (c *Cart) SessionID() SessionID { return c.sessionID }
func (c *Cart) CreatedAt() time.Time { return c.createdAt }

// Lines returns a copy; callers cannot mutate cart state through it.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddItem merges into an existing (product, ring size) line or appends a new
// one priced at unitPriceCents. Returns the affected line.
func (c *Cart) AddItem(productID uuid.UUID, ringSize RingSize, quantity int32, unitPriceCents int64) (Line, error) {
	if quantity < 1 {
		return Line{}, ErrInvalidQuantity
	}

	for i, l := range c.lines {
		if l.sameVariant(productID, ringSize) {
			c.lines[i].quantity += quantity
			return c.lines[i], nil
		}
	}

	line, err := NewLine(productID, ringSize, quantity, unitPriceCents)
	if err != nil {
		return Line{}, err
	}
	c.lines = append(c.lines, line)
	return line, nil
}

// ChangeQuantity applies increase/decrease to a line. Decreasing at quantity 1
// is a no-op; decrement never removes a line.
func (c *Cart) ChangeQuantity(lineID uuid.UUID, action Action) (Line, error) {
	for i, l := range c.lines {
		if l.id != lineID {
			continue
		}
		switch action {
		case ActionIncrease:
			c.lines[i].quantity++
		case ActionDecrease:
			if c.lines[i].quantity > 1 {
				c.lines[i].quantity--
			}
		}
		return c.lines[i], nil
	}
	return Line{}, ErrLineNotFound
}

func (c *Cart) RemoveLine(lineID uuid.UUID) error {
	for i, l := range c.lines {
		if l.id == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

func (c *Cart) TotalCents() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.SubtotalCents()
	}
	return total
}

func (c *Cart) TotalQuantity() int32 {
	var total int32
	for _, l := range c.lines {
		total += l.quantity
	}
	return total
}
