package commands

import (
	"context"
	"errors"
	"log/slog"

	"gleamshop/internal/domain/cart"
	"gleamshop/internal/domain/order"
	"gleamshop/internal/infra"
	"gleamshop/internal/pkg/errs"
	"gleamshop/internal/pkg/esewa"
	"gleamshop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CheckoutCommands interface {
	// Checkout freezes the session's cart into a new pending order owned by
	// userID. The cart survives unless clear-on-checkout is configured.
	Checkout(ctx context.Context, userID, sessionID uuid.UUID) (*queries.OrderView, error)
	// InitiatePayment builds the signed gateway payload for a pending order.
	// The order itself is untouched; it stays pending until a callback lands.
	InitiatePayment(ctx context.Context, userID, orderID uuid.UUID) (*esewa.PaymentRequest, error)
}

type checkoutCommandsImpl struct {
	cartRepo     CartRepository
	orderRepo    OrderRepository
	orderQueries queries.OrderQueries
	codec        *esewa.Codec
	db           *pgxpool.Pool
	clearCart    bool
}

func NewCheckoutCommands(
	cartRepo CartRepository,
	orderRepo OrderRepository,
	orderQueries queries.OrderQueries,
	codec *esewa.Codec,
	db *pgxpool.Pool,
	clearCart bool,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		cartRepo:     cartRepo,
		orderRepo:    orderRepo,
		orderQueries: orderQueries,
		codec:        codec,
		db:           db,
		clearCart:    clearCart,
	}
}

func (c *checkoutCommandsImpl) Checkout(ctx context.Context, userID, sessionID uuid.UUID) (*queries.OrderView, error) {
	sid, err := cart.NewSessionID(sessionID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback checkout transaction", "error", rollbackErr)
		}
	}()

	// Row locks serialize concurrent checkouts of the same cart.
	snapshot, err := c.cartRepo.FindBySessionForUpdate(ctx, tx, sid)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// A session with no cart has nothing to check out
			return nil, errs.ErrEmptyCart
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if snapshot.IsEmpty() {
		return nil, errs.ErrEmptyCart
	}

	newOrder, err := order.NewOrder(userID, snapshot)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.orderRepo.Create(ctx, tx, newOrder); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// The cart is kept by default, so a double-submitted checkout produces
	// two pending orders; clearing is opt-in via config.
	if c.clearCart {
		if err := c.cartRepo.Clear(ctx, tx, snapshot.ID()); err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.orderQueries.GetByIDSystem(ctx, newOrder.ID())
}

func (c *checkoutCommandsImpl) InitiatePayment(ctx context.Context, userID, orderID uuid.UUID) (*esewa.PaymentRequest, error) {
	existing, err := c.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	// Ownership failures look identical to missing orders
	if existing.UserID() != userID {
		return nil, errs.ErrOrderNotFound
	}
	if !existing.IsPending() {
		return nil, errs.ErrOrderNotPending
	}

	payload := c.codec.BuildPaymentRequest(existing.TotalCents(), existing.TransactionUUID())
	return &payload, nil
}
