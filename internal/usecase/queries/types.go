package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ProductView struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	CategoryID       uuid.UUID `json:"category_id"`
	CategoryName     string    `json:"category_name"`
	CategorySlug     string    `json:"category_slug"`
	Description      string    `json:"description"`
	PriceCents       int64     `json:"price_cents"`
	Metal            string    `json:"metal"`
	Gender           string    `json:"gender"`
	Stone            string    `json:"stone"`
	Color            string    `json:"color"`
	NecklaceStyle    string    `json:"necklace_style"`
	Brand            string    `json:"brand"`
	Available        bool      `json:"available"`
	RingSizeRequired bool      `json:"ring_size_required"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ProductListItem struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	CategorySlug string    `json:"category_slug"`
	PriceCents   int64     `json:"price_cents"`
	Metal        string    `json:"metal"`
	Brand        string    `json:"brand"`
	Available    bool      `json:"available"`
}

// ProductFilter carries catalog browse predicates. Nil fields are not
// applied; invalid price strings are dropped by the handler before they
// arrive here.
type ProductFilter struct {
	CategorySlug  *string
	MinPriceCents *int64
	MaxPriceCents *int64
	Metal         *string
	Gender        *string
	Stone         *string
	Color         *string
	NecklaceStyle *string
	Brand         *string
}

type CartLineView struct {
	ID             uuid.UUID `json:"id"`
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	RingSize       *string   `json:"ring_size,omitempty"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	SubtotalCents  int64     `json:"subtotal_cents"`
}

type CartView struct {
	ID            uuid.UUID      `json:"id"`
	SessionID     uuid.UUID      `json:"session_id"`
	Lines         []CartLineView `json:"lines"`
	TotalCents    int64          `json:"total_cents"`
	TotalQuantity int32          `json:"total_quantity"`
	CreatedAt     time.Time      `json:"created_at"`
}

type OrderLineItemView struct {
	ID             uuid.UUID `json:"id"`
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	RingSize       *string   `json:"ring_size,omitempty"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

type OrderView struct {
	ID         uuid.UUID           `json:"id"`
	UserID     uuid.UUID           `json:"user_id"`
	TotalCents int64               `json:"total_cents"`
	Status     string              `json:"status"`
	LineItems  []OrderLineItemView `json:"line_items"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

type OrderListItem struct {
	ID         uuid.UUID `json:"id"`
	TotalCents int64     `json:"total_cents"`
	Status     string    `json:"status"`
	ItemCount  int32     `json:"item_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
