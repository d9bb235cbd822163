//go:build unit || e2e

package builder

import (
	"time"

	reqdto "gleamshop/internal/handler/dto/request"
	"gleamshop/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartLineBuilder struct {
	ProductID      uuid.UUID
	ProductName    string
	RingSize       *string
	Quantity       int32
	UnitPriceCents int64
}

type CartBuilder struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Lines     []CartLineBuilder
	CreatedAt time.Time
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{
		ID:        uuid.New(),
		SessionID: uuid.New(),
		CreatedAt: time.Now(),
	}
}

func (c *CartBuilder) With(mutate func(*CartBuilder)) *CartBuilder {
	mutate(c)
	return c
}

func (c *CartBuilder) WithLine(productID uuid.UUID, ringSize *string, quantity int32, unitPriceCents int64) *CartBuilder {
	c.Lines = append(c.Lines, CartLineBuilder{
		ProductID:      productID,
		ProductName:    "Solitaire Ring",
		RingSize:       ringSize,
		Quantity:       quantity,
		UnitPriceCents: unitPriceCents,
	})
	return c
}

func (c *CartBuilder) BuildView() *queries.CartView {
	view := &queries.CartView{
		ID:        c.ID,
		SessionID: c.SessionID,
		Lines:     []queries.CartLineView{},
		CreatedAt: c.CreatedAt,
	}
	for _, line := range c.Lines {
		subtotal := int64(line.Quantity) * line.UnitPriceCents
		view.Lines = append(view.Lines, queries.CartLineView{
			ID:             uuid.New(),
			ProductID:      line.ProductID,
			ProductName:    line.ProductName,
			RingSize:       line.RingSize,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
			SubtotalCents:  subtotal,
		})
		view.TotalCents += subtotal
		view.TotalQuantity += line.Quantity
	}
	return view
}

func (c *CartBuilder) BuildAddItemDTO(productID uuid.UUID, ringSize *string, quantity int32) reqdto.AddCartItemRequest {
	return reqdto.AddCartItemRequest{
		ProductID: productID,
		RingSize:  ringSize,
		Quantity:  &quantity,
	}
}
