package commands

import (
	"context"

	"gleamshop/internal/domain/cart"
	"gleamshop/internal/domain/order"
	"gleamshop/internal/domain/user"
	"gleamshop/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)

// ProductSnapshot is the slice of catalog data the cart and order workflow
// need: current price and sellability.
type ProductSnapshot struct {
	ID               uuid.UUID
	Name             string
	PriceCents       int64
	Available        bool
	RingSizeRequired bool
}

type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
}

type CartRepository interface {
	// GetOrCreate returns the session's cart, creating an empty one lazily.
	GetOrCreate(ctx context.Context, sessionID cart.SessionID) (*cart.Cart, error)
	// FindBySessionForUpdate loads the cart and its lines under row locks so
	// concurrent checkouts against one cart serialize.
	FindBySessionForUpdate(ctx context.Context, tx db.DBTX, sessionID cart.SessionID) (*cart.Cart, error)
	// UpsertLine inserts the line or, when the (product, ring size) pair
	// already exists, increments its quantity. Returns the stored line id.
	UpsertLine(ctx context.Context, cartID uuid.UUID, line cart.Line) (uuid.UUID, error)
	UpdateLineQuantity(ctx context.Context, cartID, lineID uuid.UUID, quantity int32) error
	DeleteLine(ctx context.Context, cartID, lineID uuid.UUID) error
	Clear(ctx context.Context, tx db.DBTX, cartID uuid.UUID) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	// UpdateStatusIfPending atomically flips pending to the given terminal
	// status. Reports false when the order was not pending (or not found); the
	// caller decides whether that is a replay or an anomaly.
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status order.Status) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
