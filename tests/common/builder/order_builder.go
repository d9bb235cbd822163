//go:build unit || e2e

package builder

import (
	"time"

	"gleamshop/internal/domain/cart"
	"gleamshop/internal/domain/order"
	"gleamshop/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Status    string
	Lines     []CartLineBuilder
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewOrderBuilder() *OrderBuilder {
	now := time.Now()
	return &OrderBuilder{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Status: "pending",
		Lines: []CartLineBuilder{{
			ProductID:      uuid.New(),
			ProductName:    "Solitaire Ring",
			Quantity:       1,
			UnitPriceCents: 149900,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

func (o *OrderBuilder) totalCents() int64 {
	var total int64
	for _, line := range o.Lines {
		total += int64(line.Quantity) * line.UnitPriceCents
	}
	return total
}

// Build methods
func (o *OrderBuilder) BuildDomain() (*order.Order, error) {
	status, err := order.NewStatus(o.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(o.Lines))
	for _, line := range o.Lines {
		ringSize := ""
		if line.RingSize != nil {
			ringSize = *line.RingSize
		}
		items = append(items, order.ReconstructLineItem(
			uuid.New(), line.ProductID, ringSize, line.Quantity, line.UnitPriceCents))
	}

	return order.ReconstructOrder(o.ID, o.UserID, o.totalCents(), status, items, o.CreatedAt, o.UpdatedAt), nil
}

func (o *OrderBuilder) BuildView() *queries.OrderView {
	view := &queries.OrderView{
		ID:         o.ID,
		UserID:     o.UserID,
		TotalCents: o.totalCents(),
		Status:     o.Status,
		LineItems:  []queries.OrderLineItemView{},
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	for _, line := range o.Lines {
		view.LineItems = append(view.LineItems, queries.OrderLineItemView{
			ID:             uuid.New(),
			ProductID:      line.ProductID,
			ProductName:    line.ProductName,
			RingSize:       line.RingSize,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
		})
	}
	return view
}

func (o *OrderBuilder) BuildListItem() *queries.OrderListItem {
	return &queries.OrderListItem{
		ID:         o.ID,
		TotalCents: o.totalCents(),
		Status:     o.Status,
		ItemCount:  int32(len(o.Lines)),
		CreatedAt:  o.CreatedAt,
	}
}

// Fluent builder methods
func (o *OrderBuilder) WithID(id uuid.UUID) *OrderBuilder {
	o.ID = id
	return o
}

func (o *OrderBuilder) WithUserID(userID uuid.UUID) *OrderBuilder {
	o.UserID = userID
	return o
}

func (o *OrderBuilder) WithStatus(status string) *OrderBuilder {
	o.Status = status
	return o
}

func (o *OrderBuilder) AsPaid() *OrderBuilder {
	o.Status = "paid"
	return o
}

func (o *OrderBuilder) AsFailed() *OrderBuilder {
	o.Status = "failed"
	return o
}

// BuildCartSnapshot builds the frozen cart a checkout consumes.
func (o *OrderBuilder) BuildCartSnapshot(sessionID uuid.UUID) (*cart.Cart, error) {
	sid, err := cart.NewSessionID(sessionID)
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(o.Lines))
	for _, line := range o.Lines {
		var ringSize cart.RingSize
		if line.RingSize != nil {
			ringSize, err = cart.NewRingSize(*line.RingSize)
			if err != nil {
				return nil, err
			}
		}
		lines = append(lines, cart.ReconstructLine(
			uuid.New(), line.ProductID, ringSize, line.Quantity, line.UnitPriceCents))
	}

	return cart.ReconstructCart(uuid.New(), sid, lines, o.CreatedAt), nil
}
