package commands

import (
	"context"

	"gleamshop/internal/domain/cart"
	"gleamshop/internal/infra"
	"gleamshop/internal/pkg/errs"
	"gleamshop/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartCommands interface {
	AddItem(ctx context.Context, sessionID uuid.UUID, productID uuid.UUID, ringSize string, quantity int32) (*queries.CartView, error)
	ChangeQuantity(ctx context.Context, sessionID uuid.UUID, lineID uuid.UUID, action cart.Action) (*queries.CartView, error)
	RemoveItem(ctx context.Context, sessionID uuid.UUID, lineID uuid.UUID) (*queries.CartView, error)
}

type cartCommandsImpl struct {
	cartRepo    CartRepository
	productRepo ProductRepository
	cartQueries queries.CartQueries
}

func NewCartCommands(cartRepo CartRepository, productRepo ProductRepository, cartQueries queries.CartQueries) CartCommands {
	return &cartCommandsImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		cartQueries: cartQueries,
	}
}

func (c *cartCommandsImpl) AddItem(
	ctx context.Context,
	sessionID uuid.UUID,
	productID uuid.UUID,
	ringSize string,
	quantity int32,
) (*queries.CartView, error) {
	sid, err := cart.NewSessionID(sessionID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	product, err := c.productRepo.FindByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !product.Available {
		return nil, errs.ErrProductUnavailable
	}

	rs, err := cart.NewRingSize(ringSize)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if product.RingSizeRequired && rs.IsEmpty() {
		return nil, errs.ErrRingSizeRequired
	}

	current, err := c.cartRepo.GetOrCreate(ctx, sid)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// The entity merges in memory; the repository's upsert increments the
	// stored quantity under concurrent adds, so it must receive the added
	// delta, never the merged total.
	line, err := current.AddItem(productID, rs, quantity, product.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	delta := cart.ReconstructLine(line.ID(), line.ProductID(), line.RingSize(), quantity, line.UnitPriceCents())
	if _, err := c.cartRepo.UpsertLine(ctx, current.ID(), delta); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.cartQueries.GetBySession(ctx, sessionID)
}

func (c *cartCommandsImpl) ChangeQuantity(
	ctx context.Context,
	sessionID uuid.UUID,
	lineID uuid.UUID,
	action cart.Action,
) (*queries.CartView, error) {
	sid, err := cart.NewSessionID(sessionID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if !action.IsValid() {
		return nil, errs.Mark(errs.New("unknown cart action"), errs.ErrDomainValidation)
	}

	current, err := c.cartRepo.GetOrCreate(ctx, sid)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	line, err := current.ChangeQuantity(lineID, action)
	if err != nil {
		return nil, errs.ErrCartItemNotFound
	}

	if err := c.cartRepo.UpdateLineQuantity(ctx, current.ID(), lineID, line.Quantity()); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.cartQueries.GetBySession(ctx, sessionID)
}

func (c *cartCommandsImpl) RemoveItem(
	ctx context.Context,
	sessionID uuid.UUID,
	lineID uuid.UUID,
) (*queries.CartView, error) {
	sid, err := cart.NewSessionID(sessionID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	current, err := c.cartRepo.GetOrCreate(ctx, sid)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := current.RemoveLine(lineID); err != nil {
		return nil, errs.ErrCartItemNotFound
	}

	if err := c.cartRepo.DeleteLine(ctx, current.ID(), lineID); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.cartQueries.GetBySession(ctx, sessionID)
}
