package readstore

import (
	"context"
	"fmt"
	"strings"

	"gleamshop/internal/infra"
	"gleamshop/internal/infra/db"
	"gleamshop/internal/pkg/pgconv"
	"gleamshop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(db db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: db}
}

const productViewColumns = `
	p.id, p.name, p.slug, p.category_id, c.name, c.slug,
	p.description, p.price_cents, p.metal, p.gender, p.stone, p.color,
	p.necklace_style, p.brand, p.available, p.ring_size_required,
	p.created_at, p.updated_at`

const productListColumns = `
	p.id, p.name, p.slug, c.slug, p.price_cents, p.metal, p.brand, p.available`

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	query := `
		SELECT` + productViewColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`

	var v queries.ProductView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Slug, &v.CategoryID, &v.CategoryName, &v.CategorySlug,
		&v.Description, &v.PriceCents, &v.Metal, &v.Gender, &v.Stone, &v.Color,
		&v.NecklaceStyle, &v.Brand, &v.Available, &v.RingSizeRequired,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product view by id", err)
	}
	return &v, nil
}

func (r *ProductReadStore) List(ctx context.Context, filter queries.ProductFilter, limit int32) ([]*queries.ProductListItem, error) {
	where, args := buildProductFilter(filter)
	args = append(args, limit)

	query := `
		SELECT` + productListColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		` + where + `
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $` + fmt.Sprint(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	return scanProductListItems(rows)
}

func (r *ProductReadStore) ListFeatured(ctx context.Context, limit int32) ([]*queries.ProductListItem, error) {
	query := `
		SELECT` + productListColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.featured AND p.available
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list featured products", err)
	}
	return scanProductListItems(rows)
}

func (r *ProductReadStore) ListRelated(ctx context.Context, productID, categoryID uuid.UUID, limit int32) ([]*queries.ProductListItem, error) {
	query := `
		SELECT` + productListColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.category_id = $1 AND p.id <> $2 AND p.available
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $3`

	rows, err := r.db.Query(ctx, query, categoryID, productID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list related products", err)
	}
	return scanProductListItems(rows)
}

// buildProductFilter renders nil-able predicates into a WHERE clause.
// Positional placeholders are numbered in append order, so the caller must
// append any further args after these.
func buildProductFilter(filter queries.ProductFilter) (string, []any) {
	conds := []string{"p.available"}
	args := []any{}

	add := func(cond string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	// A parent category slug matches everything in its child categories too.
	if filter.CategorySlug != nil {
		args = append(args, *filter.CategorySlug)
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(c.slug = $%d OR c.parent_id = (SELECT pc.id FROM categories pc WHERE pc.slug = $%d))", n, n))
	}
	if filter.MinPriceCents != nil {
		add("p.price_cents >= $%d", *filter.MinPriceCents)
	}
	if filter.MaxPriceCents != nil {
		add("p.price_cents <= $%d", *filter.MaxPriceCents)
	}
	if filter.Metal != nil {
		add("p.metal = $%d", *filter.Metal)
	}
	if filter.Gender != nil {
		add("p.gender = $%d", *filter.Gender)
	}
	if filter.Stone != nil {
		add("p.stone = $%d", *filter.Stone)
	}
	if filter.Color != nil {
		add("p.color = $%d", *filter.Color)
	}
	if filter.NecklaceStyle != nil {
		add("p.necklace_style = $%d", *filter.NecklaceStyle)
	}
	if filter.Brand != nil {
		add("p.brand = $%d", *filter.Brand)
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

func scanProductListItems(rows pgx.Rows) ([]*queries.ProductListItem, error) {
	defer rows.Close()

	result := []*queries.ProductListItem{}
	for rows.Next() {
		var item queries.ProductListItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Slug, &item.CategorySlug,
			&item.PriceCents, &item.Metal, &item.Brand, &item.Available,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read product rows", err)
	}
	return result, nil
}
