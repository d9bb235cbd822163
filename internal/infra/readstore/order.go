package readstore

import (
	"context"

	"gleamshop/internal/infra"
	"gleamshop/internal/infra/db"
	"gleamshop/internal/pkg/pgconv"
	"gleamshop/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(db db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: db}
}

func (r *OrderReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	const orderQuery = `
		SELECT id, user_id, total_cents, status, created_at, updated_at
		FROM orders
		WHERE id = $1`

	view := queries.OrderView{LineItems: []queries.OrderLineItemView{}}
	err := r.db.QueryRow(ctx, orderQuery, id).Scan(
		&view.ID, &view.UserID, &view.TotalCents, &view.Status,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order view by id", err)
	}

	const itemsQuery = `
		SELECT oi.id, oi.product_id, p.name, oi.ring_size, oi.quantity, oi.unit_price_cents
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id`

	rows, err := r.db.Query(ctx, itemsQuery, view.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item     queries.OrderLineItemView
			ringSize string
		)
		if err := rows.Scan(
			&item.ID, &item.ProductID, &item.ProductName,
			&ringSize, &item.Quantity, &item.UnitPriceCents,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item row", err)
		}
		if ringSize != "" {
			item.RingSize = &ringSize
		}
		view.LineItems = append(view.LineItems, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order item rows", err)
	}
	return &view, nil
}

func (r *OrderReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.OrderListItem, error) {
	const query = `
		SELECT o.id, o.total_cents, o.status, COUNT(oi.id)::int, o.created_at
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.user_id = $1
		GROUP BY o.id
		ORDER BY o.created_at DESC, o.id DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by user", err)
	}
	defer rows.Close()

	result := []*queries.OrderListItem{}
	for rows.Next() {
		var item queries.OrderListItem
		if err := rows.Scan(&item.ID, &item.TotalCents, &item.Status, &item.ItemCount, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order rows", err)
	}
	return result, nil
}
