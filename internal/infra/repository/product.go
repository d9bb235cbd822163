package repository

import (
	"context"

	"gleamshop/internal/infra"
	"gleamshop/internal/infra/db"
	"gleamshop/internal/pkg/pgconv"
	"gleamshop/internal/usecase/commands"

	"github.com/google/uuid"
)

type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(db db.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ProductSnapshot, error) {
	const query = `
		SELECT id, name, price_cents, available, ring_size_required
		FROM products
		WHERE id = $1`

	var snapshot commands.ProductSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snapshot.ID, &snapshot.Name, &snapshot.PriceCents,
		&snapshot.Available, &snapshot.RingSizeRequired,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product by id", err)
	}
	return &snapshot, nil
}
