package readstore

import (
	"context"

	"gleamshop/internal/infra"
	"gleamshop/internal/infra/db"
	"gleamshop/internal/pkg/pgconv"
	"gleamshop/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartReadStore struct {
	db db.DBTX
}

func NewCartReadStore(db db.DBTX) *CartReadStore {
	return &CartReadStore{db: db}
}

func (r *CartReadStore) FindViewBySession(ctx context.Context, sessionID uuid.UUID) (*queries.CartView, error) {
	const cartQuery = `
		SELECT id, session_id, created_at
		FROM carts
		WHERE session_id = $1`

	view := queries.CartView{Lines: []queries.CartLineView{}}
	err := r.db.QueryRow(ctx, cartQuery, sessionID).Scan(&view.ID, &view.SessionID, &view.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get cart by session", err)
	}

	const linesQuery = `
		SELECT ci.id, ci.product_id, p.name, ci.ring_size, ci.quantity, ci.unit_price_cents
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at, ci.id`

	rows, err := r.db.Query(ctx, linesQuery, view.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			line     queries.CartLineView
			ringSize string
		)
		if err := rows.Scan(
			&line.ID, &line.ProductID, &line.ProductName,
			&ringSize, &line.Quantity, &line.UnitPriceCents,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart item row", err)
		}
		if ringSize != "" {
			line.RingSize = &ringSize
		}
		line.SubtotalCents = line.UnitPriceCents * int64(line.Quantity)
		view.Lines = append(view.Lines, line)
		view.TotalCents += line.SubtotalCents
		view.TotalQuantity += line.Quantity
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cart item rows", err)
	}
	return &view, nil
}
