package commands

import (
	"context"
	"log/slog"

	"gleamshop/internal/domain/order"
	"gleamshop/internal/infra"
	"gleamshop/internal/pkg/errs"
	"gleamshop/internal/pkg/esewa"

	"github.com/google/uuid"
)

// ReconcileResult reports how a success callback landed. Replayed means the
// order was already terminal and nothing changed.
type ReconcileResult struct {
	OrderID  uuid.UUID
	Status   order.Status
	Replayed bool
}

type PaymentCommands interface {
	// ReconcileSuccess verifies a gateway success callback and flips the
	// order pending→paid. Verification failures leave the order pending;
	// replayed callbacks for terminal orders are no-op successes.
	ReconcileSuccess(ctx context.Context, encodedData string) (*ReconcileResult, error)
	// ReconcileFailure flips pending→failed. Unknown transaction ids are a
	// silent no-op; the gateway notifies failure even for transactions we
	// never saw.
	ReconcileFailure(ctx context.Context, transactionUUID string) error
}

type paymentCommandsImpl struct {
	orderRepo OrderRepository
	codec     *esewa.Codec
}

func NewPaymentCommands(orderRepo OrderRepository, codec *esewa.Codec) PaymentCommands {
	return &paymentCommandsImpl{
		orderRepo: orderRepo,
		codec:     codec,
	}
}

func (p *paymentCommandsImpl) ReconcileSuccess(ctx context.Context, encodedData string) (*ReconcileResult, error) {
	payload, err := p.codec.DecodeCallback(encodedData)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPaymentDecode)
	}

	orderID, err := uuid.Parse(payload.TransactionUUID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPaymentDecode)
	}

	existing, err := p.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Possible replay or forgery; never create an order here
			slog.Warn("success callback for unknown order", "transaction_uuid", payload.TransactionUUID)
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Verify over the callback's own claimed values. Substituting stored
	// order fields would accept a callback signed for different values.
	if !p.codec.Verify(payload.Signature, payload.TotalAmount, payload.TransactionUUID, payload.ProductCode) {
		slog.Warn("payment callback signature mismatch", "order_id", orderID)
		return nil, errs.ErrSignatureMismatch
	}

	if payload.Status != esewa.StatusComplete {
		slog.Warn("payment callback with incomplete status", "order_id", orderID, "status", payload.Status)
		return nil, errs.ErrPaymentIncomplete
	}

	if existing.Status().IsTerminal() {
		return &ReconcileResult{OrderID: orderID, Status: existing.Status(), Replayed: true}, nil
	}

	updated, err := p.orderRepo.UpdateStatusIfPending(ctx, orderID, order.StatusPaid)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !updated {
		// Lost the race against a concurrent callback; report what won.
		current, findErr := p.orderRepo.FindByID(ctx, orderID)
		if findErr != nil {
			return nil, errs.Mark(findErr, errs.ErrDatabaseOperationFailed)
		}
		return &ReconcileResult{OrderID: orderID, Status: current.Status(), Replayed: true}, nil
	}

	return &ReconcileResult{OrderID: orderID, Status: order.StatusPaid, Replayed: false}, nil
}

func (p *paymentCommandsImpl) ReconcileFailure(ctx context.Context, transactionUUID string) error {
	orderID, err := uuid.Parse(transactionUUID)
	if err != nil {
		slog.Warn("failure callback with malformed transaction uuid", "transaction_uuid", transactionUUID)
		return nil
	}

	updated, err := p.orderRepo.UpdateStatusIfPending(ctx, orderID, order.StatusFailed)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !updated {
		slog.Info("failure callback ignored", "order_id", orderID)
	}
	return nil
}
