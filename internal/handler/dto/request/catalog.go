package request

import (
	"math"
	"strconv"
	"strings"

	"gleamshop/internal/domain/product"
	"gleamshop/internal/usecase/queries"
)

// ProductListQuery carries the catalog browse filters. Prices arrive as
// decimal strings ("1500" or "1500.50"); anything unparseable is dropped
// rather than rejected so a hand-edited URL still returns results.
type ProductListQuery struct {
	Category      string `form:"category"`
	MinPrice      string `form:"min_price"`
	MaxPrice      string `form:"max_price"`
	Metal         string `form:"metal"`
	Gender        string `form:"gender"`
	Stone         string `form:"stone"`
	Color         string `form:"color"`
	NecklaceStyle string `form:"necklace_style"`
	Brand         string `form:"brand"`
}

func (q ProductListQuery) ToFilter() queries.ProductFilter {
	var filter queries.ProductFilter

	if s := strings.TrimSpace(q.Category); s != "" {
		filter.CategorySlug = &s
	}
	filter.MinPriceCents = parsePriceCents(q.MinPrice)
	filter.MaxPriceCents = parsePriceCents(q.MaxPrice)

	if s := strings.TrimSpace(q.Metal); s != "" && product.Metal(s).IsValid() {
		filter.Metal = &s
	}
	if s := strings.TrimSpace(q.Gender); s != "" && product.Gender(s).IsValid() {
		filter.Gender = &s
	}
	if s := strings.TrimSpace(q.Stone); s != "" && product.Stone(s).IsValid() {
		filter.Stone = &s
	}
	if s := strings.TrimSpace(q.Color); s != "" && product.Color(s).IsValid() {
		filter.Color = &s
	}
	if s := strings.TrimSpace(q.NecklaceStyle); s != "" {
		filter.NecklaceStyle = &s
	}
	if s := strings.TrimSpace(q.Brand); s != "" {
		filter.Brand = &s
	}
	return filter
}

func parsePriceCents(raw string) *int64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || value < 0 || math.IsInf(value, 0) || math.IsNaN(value) {
		return nil
	}
	cents := int64(math.Round(value * 100))
	return &cents
}
