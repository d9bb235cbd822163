package repository

import (
	"context"
	"time"

	"gleamshop/internal/domain/order"
	"gleamshop/internal/infra"
	"gleamshop/internal/infra/db"
	"gleamshop/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(db db.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists the order and its frozen line items inside the caller's
// transaction, so a failed insert never leaves a half-written order.
func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) error {
	// created_at/updated_at come from the column defaults; the entity does
	// not carry timestamps until it is read back.
	const orderQuery = `
		INSERT INTO orders (id, user_id, total_cents, status)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, orderQuery,
		o.ID(), o.UserID(), o.TotalCents(), string(o.Status()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}

	const itemQuery = `
		INSERT INTO order_items (id, order_id, product_id, ring_size, quantity, unit_price_cents)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for _, item := range o.LineItems() {
		_, err := tx.Exec(ctx, itemQuery,
			item.ID(), o.ID(), item.ProductID(), item.RingSize(), item.Quantity(), item.UnitPriceCents(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create order item", err)
		}
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	const orderQuery = `
		SELECT id, user_id, total_cents, status, created_at, updated_at
		FROM orders
		WHERE id = $1`

	var (
		orderID, userID      uuid.UUID
		totalCents           int64
		statusRaw            string
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, orderQuery, id).Scan(
		&orderID, &userID, &totalCents, &statusRaw, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order by id", err)
	}

	status, err := order.NewStatus(statusRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored order status is invalid", err)
	}

	const itemsQuery = `
		SELECT id, product_id, ring_size, quantity, unit_price_cents
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, itemsQuery, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	items := []order.LineItem{}
	for rows.Next() {
		var (
			itemID, productID uuid.UUID
			ringSize          string
			quantity          int32
			unitPriceCents    int64
		)
		if err := rows.Scan(&itemID, &productID, &ringSize, &quantity, &unitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item row", err)
		}
		items = append(items, order.ReconstructLineItem(itemID, productID, ringSize, quantity, unitPriceCents))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order item rows", err)
	}

	return order.ReconstructOrder(orderID, userID, totalCents, status, items, createdAt, updatedAt), nil
}

// UpdateStatusIfPending is the single write path for payment reconciliation.
// The WHERE clause makes the pending→terminal transition atomic; a zero row
// count means another callback already settled the order (or it never
// existed) and the caller must not overwrite that outcome.
func (r *OrderRepository) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status order.Status) (bool, error) {
	const query = `
		UPDATE orders
		SET status = $2, updated_at = now()
		WHERE id = $1 AND status = 'pending'`

	tag, err := r.db.Exec(ctx, query, id, string(status))
	if err != nil {
		return false, infra.WrapRepoErr("failed to update order status", err)
	}
	return tag.RowsAffected() == 1, nil
}
