package queries

import (
	"context"

	"gleamshop/internal/infra"
	"gleamshop/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	defaultListLimit    = 50
	featuredLimit       = 6
	relatedProductLimit = 4
)

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	List(ctx context.Context, filter ProductFilter, limit int32) ([]*ProductListItem, error)
	ListFeatured(ctx context.Context, limit int32) ([]*ProductListItem, error)
	ListRelated(ctx context.Context, productID, categoryID uuid.UUID, limit int32) ([]*ProductListItem, error)
}

type CatalogQueries interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, []*ProductListItem, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]*ProductListItem, error)
	ListFeatured(ctx context.Context) ([]*ProductListItem, error)
}

type catalogQueriesImpl struct {
	store ProductReadStore
}

func NewCatalogQueries(store ProductReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

// GetProduct returns the product plus up to 4 related products from the same
// category.
func (q *catalogQueriesImpl) GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, []*ProductListItem, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.ErrProductNotFound
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	related, err := q.store.ListRelated(ctx, view.ID, view.CategoryID, relatedProductLimit)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return view, related, nil
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context, filter ProductFilter) ([]*ProductListItem, error) {
	items, err := q.store.List(ctx, filter, defaultListLimit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *catalogQueriesImpl) ListFeatured(ctx context.Context) ([]*ProductListItem, error) {
	items, err := q.store.ListFeatured(ctx, featuredLimit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
