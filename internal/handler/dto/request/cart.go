package request

import (
	"strings"

	"github.com/google/uuid"
)

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	RingSize  *string   `json:"ring_size,omitempty"`
	Quantity  *int32    `json:"quantity,omitempty" binding:"omitempty,min=1"`
}

func (r AddCartItemRequest) GetRingSize() string {
	if r.RingSize == nil {
		return ""
	}
	return strings.TrimSpace(*r.RingSize)
}

// GetQuantity defaults an omitted quantity to 1.
func (r AddCartItemRequest) GetQuantity() int32 {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

type UpdateCartItemRequest struct {
	Action string `json:"action" binding:"required,oneof=increase decrease"`
}
