package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPrice = errors.New("price cannot be negative")
	ErrEmptyName    = errors.New("product name cannot be empty")
)

// Product is read-mostly catalog data. The order workflow only consumes its
// id, price and availability; everything else exists for browsing.
type Product struct {
	id               uuid.UUID
	name             string
	slug             string
	categoryID       uuid.UUID
	description      string
	priceCents       int64
	metal            Metal
	gender           Gender
	stone            Stone
	color            Color
	necklaceStyle    string
	brand            string
	available        bool
	ringSizeRequired bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewProduct(name, slug string, categoryID uuid.UUID, priceCents int64) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if priceCents < 0 {
		return nil, ErrInvalidPrice
	}
	return &Product{
		id:         uuid.New(),
		name:       name,
		slug:       slug,
		categoryID: categoryID,
		priceCents: priceCents,
		available:  true,
	}, nil
}

func ReconstructProduct(
	id uuid.UUID,
	name, slug string,
	categoryID uuid.UUID,
	description string,
	priceCents int64,
	metal Metal,
	gender Gender,
	stone Stone,
	color Color,
	necklaceStyle, brand string,
	available, ringSizeRequired bool,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:               id,
		name:             name,
		slug:             slug,
		categoryID:       categoryID,
		description:      description,
		priceCents:       priceCents,
		metal:            metal,
		gender:           gender,
		stone:            stone,
		color:            color,
		necklaceStyle:    necklaceStyle,
		brand:            brand,
		available:        available,
		ringSizeRequired: ringSizeRequired,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (p *Product) ID() uuid.UUID          { return p.id }
func (p *Product) Name() string           { return p.name }
func (p *Product) Slug() string           { return p.slug }
func (p *Product) CategoryID() uuid.UUID  { return p.categoryID }
func (p *Product) Description() string    { return p.description }
func (p *Product) PriceCents() int64      { return p.priceCents }
func (p *Product) Metal() Metal           { return p.metal }
func (p *Product) Gender() Gender         { return p.gender }
func (p *Product) Stone() Stone           { return p.stone }
func (p *Product) Color() Color           { return p.color }
func (p *Product) NecklaceStyle() string  { return p.necklaceStyle }
func (p *Product) Brand() string          { return p.brand }
func (p *Product) Available() bool        { return p.available }
func (p *Product) RingSizeRequired() bool { return p.ringSizeRequired }
func (p *Product) CreatedAt() time.Time   { return p.createdAt }
func (p *Product) UpdatedAt() time.Time   { return p.updatedAt }
