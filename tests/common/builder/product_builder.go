//go:build unit || e2e

package builder

import (
	"time"

	"gleamshop/internal/usecase/commands"
	"gleamshop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProductBuilder struct {
	ID               uuid.UUID
	Name             string
	Slug             string
	CategoryID       uuid.UUID
	CategoryName     string
	CategorySlug     string
	Description      string
	PriceCents       int64
	Metal            string
	Gender           string
	Stone            string
	Color            string
	NecklaceStyle    string
	Brand            string
	Available        bool
	RingSizeRequired bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewProductBuilder() *ProductBuilder {
	now := time.Now()
	return &ProductBuilder{
		ID:           uuid.New(),
		Name:         "Solitaire Ring",
		Slug:         "solitaire-ring",
		CategoryID:   uuid.New(),
		CategoryName: "Rings",
		CategorySlug: "rings",
		Description:  "A classic solitaire.",
		PriceCents:   149900,
		Metal:        "gold",
		Gender:       "women",
		Stone:        "diamond",
		Color:        "yellow",
		Brand:        "Aurora",
		Available:    true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

// Build methods. Field names line up with the read models, so copier does
// the mapping.
func (p *ProductBuilder) BuildView() *queries.ProductView {
	var view queries.ProductView
	_ = copier.Copy(&view, p)
	return &view
}

func (p *ProductBuilder) BuildListItem() *queries.ProductListItem {
	var item queries.ProductListItem
	_ = copier.Copy(&item, p)
	return &item
}

func (p *ProductBuilder) BuildSnapshot() *commands.ProductSnapshot {
	return &commands.ProductSnapshot{
		ID:               p.ID,
		Name:             p.Name,
		PriceCents:       p.PriceCents,
		Available:        p.Available,
		RingSizeRequired: p.RingSizeRequired,
	}
}

// Fluent builder methods
func (p *ProductBuilder) WithID(id uuid.UUID) *ProductBuilder {
	p.ID = id
	return p
}

func (p *ProductBuilder) WithName(name string) *ProductBuilder {
	p.Name = name
	return p
}

func (p *ProductBuilder) WithPriceCents(cents int64) *ProductBuilder {
	p.PriceCents = cents
	return p
}

func (p *ProductBuilder) WithCategory(id uuid.UUID, name, slug string) *ProductBuilder {
	p.CategoryID = id
	p.CategoryName = name
	p.CategorySlug = slug
	return p
}

func (p *ProductBuilder) RequiringRingSize() *ProductBuilder {
	p.RingSizeRequired = true
	return p
}

func (p *ProductBuilder) AsUnavailable() *ProductBuilder {
	p.Available = false
	return p
}
