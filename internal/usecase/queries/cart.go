package queries

import (
	"context"

	"gleamshop/internal/infra"
	"gleamshop/internal/pkg/errs"

	"github.com/google/uuid"
)

type CartReadStore interface {
	FindViewBySession(ctx context.Context, sessionID uuid.UUID) (*CartView, error)
}

type CartQueries interface {
	GetBySession(ctx context.Context, sessionID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	store CartReadStore
}

func NewCartQueries(store CartReadStore) CartQueries {
	return &cartQueriesImpl{store: store}
}

// GetBySession returns the session's cart. A session that never added
// anything gets an empty view rather than an error; carts are created lazily
// on first add.
func (q *cartQueriesImpl) GetBySession(ctx context.Context, sessionID uuid.UUID) (*CartView, error) {
	view, err := q.store.FindViewBySession(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &CartView{SessionID: sessionID, Lines: []CartLineView{}}, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
