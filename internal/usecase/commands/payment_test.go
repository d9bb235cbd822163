//go:build unit

package commands_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"gleamshop/internal/domain/order"
	"gleamshop/internal/infra"
	"gleamshop/internal/pkg/config"
	"gleamshop/internal/pkg/errs"
	"gleamshop/internal/pkg/esewa"
	"gleamshop/internal/usecase/commands"
	commandsmock "gleamshop/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockOrderRepo *commandsmock.MockOrderRepository
	codec         *esewa.Codec
	payments      commands.PaymentCommands
}

func (s *PaymentCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrderRepo = commandsmock.NewMockOrderRepository(s.mockCtrl)

	codec, err := esewa.NewCodec(config.NewTestConfig().Esewa)
	s.Require().NoError(err)
	s.codec = codec

	s.payments = commands.NewPaymentCommands(s.mockOrderRepo, s.codec)
}

func (s *PaymentCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsTestSuite))
}

func (s *PaymentCommandsTestSuite) pendingOrder(totalCents int64) *order.Order {
	now := time.Now()
	items := []order.LineItem{
		order.ReconstructLineItem(uuid.New(), uuid.New(), "", 1, totalCents),
	}
	return order.ReconstructOrder(uuid.New(), uuid.New(), totalCents, order.StatusPending, items, now, now)
}

func (s *PaymentCommandsTestSuite) terminalOrder(totalCents int64, status order.Status) *order.Order {
	now := time.Now()
	items := []order.LineItem{
		order.ReconstructLineItem(uuid.New(), uuid.New(), "", 1, totalCents),
	}
	return order.ReconstructOrder(uuid.New(), uuid.New(), totalCents, status, items, now, now)
}

// signedCallback makes a payload signed exactly as the gateway would sign it,
// then lets the test mutate it before encoding.
func (s *PaymentCommandsTestSuite) signedCallback(o *order.Order, mutate func(p *esewa.CallbackPayload)) string {
	total := esewa.FormatAmount(o.TotalCents())
	p := esewa.CallbackPayload{
		TransactionCode: "000AWEO",
		Status:          esewa.StatusComplete,
		TotalAmount:     total,
		TransactionUUID: o.TransactionUUID(),
		ProductCode:     s.codec.ProductCode(),
		SignedFields:    esewa.SignedFieldNames,
	}
	p.Signature = s.codec.Sign(p.TotalAmount, p.TransactionUUID, p.ProductCode)
	if mutate != nil {
		mutate(&p)
	}
	raw, err := json.Marshal(p)
	s.Require().NoError(err)
	return base64.StdEncoding.EncodeToString(raw)
}

func (s *PaymentCommandsTestSuite) TestReconcileSuccess() {
	ctx := context.Background()

	s.Run("success: pending order becomes paid", func() {
		o := s.pendingOrder(150000)
		s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
		s.mockOrderRepo.EXPECT().UpdateStatusIfPending(gomock.Any(), o.ID(), order.StatusPaid).Return(true, nil)

		result, err := s.payments.ReconcileSuccess(ctx, s.signedCallback(o, nil))

		s.NoError(err)
		s.Equal(o.ID(), result.OrderID)
		s.Equal(order.StatusPaid, result.Status)
		s.False(result.Replayed)
	})

	s.Run("success: replayed callback on a paid order is a no-op", func() {
		o := s.terminalOrder(150000, order.StatusPaid)
		s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
		// UpdateStatusIfPending must not be called

		result, err := s.payments.ReconcileSuccess(ctx, s.signedCallback(o, nil))

		s.NoError(err)
		s.Equal(order.StatusPaid, result.Status)
		s.True(result.Replayed)
	})

	s.Run("success: losing the race to a concurrent callback reports the winner", func() {
		pending := s.pendingOrder(9900)
		paid := order.ReconstructOrder(
			pending.ID(), pending.UserID(), pending.TotalCents(),
			order.StatusPaid, pending.LineItems(), pending.CreatedAt(), time.Now(),
		)
		s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), pending.ID()).Return(pending, nil)
		s.mockOrderRepo.EXPECT().UpdateStatusIfPending(gomock.Any(), pending.ID(), order.StatusPaid).Return(false, nil)
		s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), pending.ID()).Return(paid, nil)

		result, err := s.payments.ReconcileSuccess(ctx, s.signedCallback(pending, nil))

		s.NoError(err)
		s.Equal(order.StatusPaid, result.Status)
		s.True(result.Replayed)
	})

	s.Run("error: tampered amount fails verification and leaves the order pending", func() {
		o := s.pendingOrder(150000)
		s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)

		data := s.signedCallback(o, func(p *esewa.CallbackPayload) {
			p.TotalAmount = "1.00"
		})
		_, err := s.payments.ReconcileSuccess(ctx, data)

		s.True(errs.Is(err, errs.ErrSignatureMismatch))
	})

	s.Run("error: corrupted signature is rejected", func() {
		o := s.pendingOrder(150000)
		s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)

		data := s.signedCallback(o, func(p *esewa.CallbackPayload) {
			p.Signature = base64.StdEncoding.EncodeToString([]byte("not a real digest here!!!!!!!!!!"))
		})
		_, err := s.payments.ReconcileSuccess(ctx, data)

		s.True(errs.Is(err, errs.ErrSignatureMismatch))
	})

	s.Run("error: well-signed callback with non-COMPLETE status does not mark paid", func() {
		o := s.pendingOrder(150000)
		s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)

		data := s.signedCallback(o, func(p *esewa.CallbackPayload) {
			p.Status = "PENDING"
		})
		_, err := s.payments.ReconcileSuccess(ctx, data)

		s.True(errs.Is(err, errs.ErrPaymentIncomplete))
	})

	s.Run("error: garbage base64 payload", func() {
		_, err := s.payments.ReconcileSuccess(ctx, "%%%not-base64%%%")
		s.True(errs.Is(err, errs.ErrPaymentDecode))
	})

	s.Run("error: transaction uuid that is not a uuid", func() {
		o := s.pendingOrder(150000)
		data := s.signedCallback(o, func(p *esewa.CallbackPayload) {
			p.TransactionUUID = "order-42"
		})
		_, err := s.payments.ReconcileSuccess(ctx, data)
		s.True(errs.Is(err, errs.ErrPaymentDecode))
	})

	s.Run("error: callback for an order that does not exist", func() {
		o := s.pendingOrder(150000)
		s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), o.ID()).
			Return(nil, infra.WrapRepoErr("order not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := s.payments.ReconcileSuccess(ctx, s.signedCallback(o, nil))

		s.True(errs.Is(err, errs.ErrOrderNotFound))
	})
}

func (s *PaymentCommandsTestSuite) TestReconcileFailure() {
	ctx := context.Background()

	s.Run("success: pending order becomes failed", func() {
		id := uuid.New()
		s.mockOrderRepo.EXPECT().UpdateStatusIfPending(gomock.Any(), id, order.StatusFailed).Return(true, nil)

		s.NoError(s.payments.ReconcileFailure(ctx, id.String()))
	})

	s.Run("success: unknown or already-terminal order is a silent no-op", func() {
		id := uuid.New()
		s.mockOrderRepo.EXPECT().UpdateStatusIfPending(gomock.Any(), id, order.StatusFailed).Return(false, nil)

		s.NoError(s.payments.ReconcileFailure(ctx, id.String()))
	})

	s.Run("success: malformed transaction uuid never touches the repository", func() {
		s.NoError(s.payments.ReconcileFailure(ctx, "definitely-not-a-uuid"))
	})
}
