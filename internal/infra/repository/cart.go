package repository

import (
	"context"
	"time"

	"gleamshop/internal/domain/cart"
	"gleamshop/internal/infra"
	"gleamshop/internal/infra/db"
	"gleamshop/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CartRepository struct {
	db db.DBTX
}

func NewCartRepository(db db.DBTX) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) GetOrCreate(ctx context.Context, sessionID cart.SessionID) (*cart.Cart, error) {
	const insertQuery = `
		INSERT INTO carts (session_id)
		VALUES ($1)
		ON CONFLICT (session_id) DO NOTHING`

	if _, err := r.db.Exec(ctx, insertQuery, sessionID.Value()); err != nil {
		return nil, infra.WrapRepoErr("failed to ensure cart exists", err)
	}
	return r.findBySession(ctx, r.db, sessionID, false)
}

func (r *CartRepository) FindBySessionForUpdate(ctx context.Context, tx db.DBTX, sessionID cart.SessionID) (*cart.Cart, error) {
	return r.findBySession(ctx, tx, sessionID, true)
}

// findBySession loads a cart and its lines. With forUpdate the rows are
// locked so concurrent checkouts against the same cart serialize.
func (r *CartRepository) findBySession(ctx context.Context, q db.DBTX, sessionID cart.SessionID, forUpdate bool) (*cart.Cart, error) {
	cartQuery := `
		SELECT id, created_at
		FROM carts
		WHERE session_id = $1`
	linesQuery := `
		SELECT id, product_id, ring_size, quantity, unit_price_cents
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY created_at, id`
	if forUpdate {
		cartQuery += ` FOR UPDATE`
		linesQuery += ` FOR UPDATE`
	}

	var (
		cartID    uuid.UUID
		createdAt time.Time
	)
	if err := q.QueryRow(ctx, cartQuery, sessionID.Value()).Scan(&cartID, &createdAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get cart by session", err)
	}

	rows, err := q.Query(ctx, linesQuery, cartID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}
	defer rows.Close()

	lines := []cart.Line{}
	for rows.Next() {
		var (
			id, productID  uuid.UUID
			ringSizeRaw    string
			quantity       int32
			unitPriceCents int64
		)
		if err := rows.Scan(&id, &productID, &ringSizeRaw, &quantity, &unitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart item row", err)
		}
		ringSize, err := cart.NewRingSize(ringSizeRaw)
		if err != nil {
			return nil, infra.WrapRepoErr("stored ring size is invalid", err)
		}
		lines = append(lines, cart.ReconstructLine(id, productID, ringSize, quantity, unitPriceCents))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cart item rows", err)
	}

	return cart.ReconstructCart(cartID, sessionID, lines, createdAt), nil
}

func (r *CartRepository) UpsertLine(ctx context.Context, cartID uuid.UUID, line cart.Line) (uuid.UUID, error) {
	const query = `
		INSERT INTO cart_items (cart_id, product_id, ring_size, quantity, unit_price_cents)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (cart_id, product_id, ring_size)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		cartID, line.ProductID(), line.RingSize().Value(), line.Quantity(), line.UnitPriceCents(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert cart item", err)
	}
	return id, nil
}

func (r *CartRepository) UpdateLineQuantity(ctx context.Context, cartID, lineID uuid.UUID, quantity int32) error {
	const query = `
		UPDATE cart_items
		SET quantity = $3
		WHERE cart_id = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query, cartID, lineID, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to update cart item quantity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart item not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *CartRepository) DeleteLine(ctx context.Context, cartID, lineID uuid.UUID) error {
	const query = `
		DELETE FROM cart_items
		WHERE cart_id = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query, cartID, lineID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete cart item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart item not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, tx db.DBTX, cartID uuid.UUID) error {
	const query = `
		DELETE FROM cart_items
		WHERE cart_id = $1`

	if _, err := tx.Exec(ctx, query, cartID); err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return nil
}
