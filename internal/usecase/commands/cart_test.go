//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gleamshop/internal/domain/cart"
	"gleamshop/internal/infra"
	"gleamshop/internal/pkg/errs"
	"gleamshop/internal/usecase/commands"
	"gleamshop/internal/usecase/queries"
	"gleamshop/tests/common/builder"
	commandsmock "gleamshop/tests/mock/commands"
	queriesmock "gleamshop/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockCartRepo    *commandsmock.MockCartRepository
	mockProductRepo *commandsmock.MockProductRepository
	mockCartQueries *queriesmock.MockCartQueries
	carts           commands.CartCommands
}

func (s *CartCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCartRepo = commandsmock.NewMockCartRepository(s.mockCtrl)
	s.mockProductRepo = commandsmock.NewMockProductRepository(s.mockCtrl)
	s.mockCartQueries = queriesmock.NewMockCartQueries(s.mockCtrl)

	s.carts = commands.NewCartCommands(s.mockCartRepo, s.mockProductRepo, s.mockCartQueries)
}

func (s *CartCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartCommandsSuite(t *testing.T) {
	suite.Run(t, new(CartCommandsTestSuite))
}

func (s *CartCommandsTestSuite) newSessionID() (uuid.UUID, cart.SessionID) {
	raw := uuid.New()
	sid, err := cart.NewSessionID(raw)
	s.Require().NoError(err)
	return raw, sid
}

func (s *CartCommandsTestSuite) emptyCart(sid cart.SessionID) *cart.Cart {
	return cart.ReconstructCart(uuid.New(), sid, nil, time.Now())
}

func (s *CartCommandsTestSuite) cartWithLine(sid cart.SessionID, line cart.Line) *cart.Cart {
	return cart.ReconstructCart(uuid.New(), sid, []cart.Line{line}, time.Now())
}

func (s *CartCommandsTestSuite) ringSize(v string) cart.RingSize {
	rs, err := cart.NewRingSize(v)
	s.Require().NoError(err)
	return rs
}

func (s *CartCommandsTestSuite) TestAddItem() {
	s.Run("adds a new line and returns the refreshed view", func() {
		raw, sid := s.newSessionID()
		snapshot := builder.NewProductBuilder().BuildSnapshot()
		current := s.emptyCart(sid)
		view := &queries.CartView{SessionID: raw}

		s.mockProductRepo.EXPECT().FindByID(gomock.Any(), snapshot.ID).Return(snapshot, nil)
		s.mockCartRepo.EXPECT().GetOrCreate(gomock.Any(), sid).Return(current, nil)
		s.mockCartRepo.EXPECT().
			UpsertLine(gomock.Any(), current.ID(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, line cart.Line) (uuid.UUID, error) {
				s.Equal(snapshot.ID, line.ProductID())
				s.Equal(int32(2), line.Quantity())
				s.Equal(snapshot.PriceCents, line.UnitPriceCents())
				return line.ID(), nil
			})
		s.mockCartQueries.EXPECT().GetBySession(gomock.Any(), raw).Return(view, nil)

		got, err := s.carts.AddItem(context.Background(), raw, snapshot.ID, "", 2)

		s.NoError(err)
		s.Same(view, got)
	})

	s.Run("sends only the added delta to the upsert for an existing variant", func() {
		raw, sid := s.newSessionID()
		snapshot := builder.NewProductBuilder().RequiringRingSize().BuildSnapshot()
		existing := cart.ReconstructLine(uuid.New(), snapshot.ID, s.ringSize("7"), 1, snapshot.PriceCents)
		current := s.cartWithLine(sid, existing)

		s.mockProductRepo.EXPECT().FindByID(gomock.Any(), snapshot.ID).Return(snapshot, nil)
		s.mockCartRepo.EXPECT().GetOrCreate(gomock.Any(), sid).Return(current, nil)
		s.mockCartRepo.EXPECT().
			UpsertLine(gomock.Any(), current.ID(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, line cart.Line) (uuid.UUID, error) {
				// The upsert increments the stored quantity, so the
				// line must carry the added amount, not the merged total.
				s.Equal(existing.ID(), line.ID())
				s.Equal(int32(2), line.Quantity())
				return line.ID(), nil
			})
		s.mockCartQueries.EXPECT().GetBySession(gomock.Any(), raw).Return(&queries.CartView{}, nil)

		_, err := s.carts.AddItem(context.Background(), raw, snapshot.ID, "7", 2)

		s.NoError(err)
	})

	s.Run("adding the same variant twice yields the summed quantity in storage", func() {
		raw, sid := s.newSessionID()
		snapshot := builder.NewProductBuilder().BuildSnapshot()
		cartID := uuid.New()
		var lines []cart.Line
		stored := map[uuid.UUID]int32{}

		s.mockProductRepo.EXPECT().FindByID(gomock.Any(), snapshot.ID).Return(snapshot, nil).Times(2)
		s.mockCartRepo.EXPECT().
			GetOrCreate(gomock.Any(), sid).
			DoAndReturn(func(_ context.Context, _ cart.SessionID) (*cart.Cart, error) {
				return cart.ReconstructCart(cartID, sid, lines, time.Now()), nil
			}).Times(2)
		s.mockCartRepo.EXPECT().
			UpsertLine(gomock.Any(), cartID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, line cart.Line) (uuid.UUID, error) {
				// Mirrors the ON CONFLICT ... quantity + EXCLUDED.quantity
				// semantics of the real upsert.
				stored[line.ProductID()] += line.Quantity()
				merged := cart.ReconstructLine(line.ID(), line.ProductID(), line.RingSize(), stored[line.ProductID()], line.UnitPriceCents())
				lines = []cart.Line{merged}
				return line.ID(), nil
			}).Times(2)
		s.mockCartQueries.EXPECT().GetBySession(gomock.Any(), raw).Return(&queries.CartView{}, nil).Times(2)

		_, err := s.carts.AddItem(context.Background(), raw, snapshot.ID, "", 1)
		s.Require().NoError(err)
		_, err = s.carts.AddItem(context.Background(), raw, snapshot.ID, "", 1)
		s.Require().NoError(err)

		s.Equal(int32(2), stored[snapshot.ID])
	})

	s.Run("returns product not found when the catalog has no such product", func() {
		raw, _ := s.newSessionID()
		productID := uuid.New()

		s.mockProductRepo.EXPECT().
			FindByID(gomock.Any(), productID).
			Return(nil, infra.WrapRepoErr("product not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := s.carts.AddItem(context.Background(), raw, productID, "", 1)

		s.True(errs.Is(err, errs.ErrProductNotFound))
	})

	s.Run("rejects unavailable products", func() {
		raw, _ := s.newSessionID()
		snapshot := builder.NewProductBuilder().AsUnavailable().BuildSnapshot()

		s.mockProductRepo.EXPECT().FindByID(gomock.Any(), snapshot.ID).Return(snapshot, nil)

		_, err := s.carts.AddItem(context.Background(), raw, snapshot.ID, "", 1)

		s.True(errs.Is(err, errs.ErrProductUnavailable))
	})

	s.Run("rejects a ring product without a ring size", func() {
		raw, _ := s.newSessionID()
		snapshot := builder.NewProductBuilder().RequiringRingSize().BuildSnapshot()

		s.mockProductRepo.EXPECT().FindByID(gomock.Any(), snapshot.ID).Return(snapshot, nil)

		_, err := s.carts.AddItem(context.Background(), raw, snapshot.ID, "   ", 1)

		s.True(errs.Is(err, errs.ErrRingSizeRequired))
	})

	s.Run("rejects an overlong ring size as validation failure", func() {
		raw, _ := s.newSessionID()
		snapshot := builder.NewProductBuilder().RequiringRingSize().BuildSnapshot()

		s.mockProductRepo.EXPECT().FindByID(gomock.Any(), snapshot.ID).Return(snapshot, nil)

		_, err := s.carts.AddItem(context.Background(), raw, snapshot.ID, "1234567890X", 1)

		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("rejects a non-positive quantity as validation failure", func() {
		raw, sid := s.newSessionID()
		snapshot := builder.NewProductBuilder().BuildSnapshot()

		s.mockProductRepo.EXPECT().FindByID(gomock.Any(), snapshot.ID).Return(snapshot, nil)
		s.mockCartRepo.EXPECT().GetOrCreate(gomock.Any(), sid).Return(s.emptyCart(sid), nil)

		_, err := s.carts.AddItem(context.Background(), raw, snapshot.ID, "", 0)

		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("rejects the nil session id", func() {
		_, err := s.carts.AddItem(context.Background(), uuid.Nil, uuid.New(), "", 1)

		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("marks storage failures on upsert", func() {
		raw, sid := s.newSessionID()
		snapshot := builder.NewProductBuilder().BuildSnapshot()
		current := s.emptyCart(sid)

		s.mockProductRepo.EXPECT().FindByID(gomock.Any(), snapshot.ID).Return(snapshot, nil)
		s.mockCartRepo.EXPECT().GetOrCreate(gomock.Any(), sid).Return(current, nil)
		s.mockCartRepo.EXPECT().
			UpsertLine(gomock.Any(), current.ID(), gomock.Any()).
			Return(uuid.Nil, errs.New("connection reset"))

		_, err := s.carts.AddItem(context.Background(), raw, snapshot.ID, "", 1)

		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func (s *CartCommandsTestSuite) TestChangeQuantity() {
	s.Run("increase bumps the line and persists the new quantity", func() {
		raw, sid := s.newSessionID()
		line := cart.ReconstructLine(uuid.New(), uuid.New(), cart.RingSize{}, 2, 149900)
		current := s.cartWithLine(sid, line)
		view := &queries.CartView{SessionID: raw}

		s.mockCartRepo.EXPECT().GetOrCreate(gomock.Any(), sid).Return(current, nil)
		s.mockCartRepo.EXPECT().UpdateLineQuantity(gomock.Any(), current.ID(), line.ID(), int32(3)).Return(nil)
		s.mockCartQueries.EXPECT().GetBySession(gomock.Any(), raw).Return(view, nil)

		got, err := s.carts.ChangeQuantity(context.Background(), raw, line.ID(), cart.ActionIncrease)

		s.NoError(err)
		s.Same(view, got)
	})

	s.Run("decrease never drops below one", func() {
		raw, sid := s.newSessionID()
		line := cart.ReconstructLine(uuid.New(), uuid.New(), cart.RingSize{}, 1, 149900)
		current := s.cartWithLine(sid, line)

		s.mockCartRepo.EXPECT().GetOrCreate(gomock.Any(), sid).Return(current, nil)
		s.mockCartRepo.EXPECT().UpdateLineQuantity(gomock.Any(), current.ID(), line.ID(), int32(1)).Return(nil)
		s.mockCartQueries.EXPECT().GetBySession(gomock.Any(), raw).Return(&queries.CartView{}, nil)

		_, err := s.carts.ChangeQuantity(context.Background(), raw, line.ID(), cart.ActionDecrease)

		s.NoError(err)
	})

	s.Run("rejects an unknown action before touching storage", func() {
		raw, _ := s.newSessionID()

		_, err := s.carts.ChangeQuantity(context.Background(), raw, uuid.New(), cart.Action("double"))

		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("returns cart item not found for a line outside the cart", func() {
		raw, sid := s.newSessionID()
		current := s.emptyCart(sid)

		s.mockCartRepo.EXPECT().GetOrCreate(gomock.Any(), sid).Return(current, nil)

		_, err := s.carts.ChangeQuantity(context.Background(), raw, uuid.New(), cart.ActionIncrease)

		s.True(errs.Is(err, errs.ErrCartItemNotFound))
	})
}

func (s *CartCommandsTestSuite) TestRemoveItem() {
	s.Run("removes the line and returns the refreshed view", func() {
		raw, sid := s.newSessionID()
		line := cart.ReconstructLine(uuid.New(), uuid.New(), cart.RingSize{}, 1, 149900)
		current := s.cartWithLine(sid, line)
		view := &queries.CartView{SessionID: raw}

		s.mockCartRepo.EXPECT().GetOrCreate(gomock.Any(), sid).Return(current, nil)
		s.mockCartRepo.EXPECT().DeleteLine(gomock.Any(), current.ID(), line.ID()).Return(nil)
		s.mockCartQueries.EXPECT().GetBySession(gomock.Any(), raw).Return(view, nil)

		got, err := s.carts.RemoveItem(context.Background(), raw, line.ID())

		s.NoError(err)
		s.Same(view, got)
	})

	s.Run("returns cart item not found for a line outside the cart", func() {
		raw, sid := s.newSessionID()
		current := s.emptyCart(sid)

		s.mockCartRepo.EXPECT().GetOrCreate(gomock.Any(), sid).Return(current, nil)

		_, err := s.carts.RemoveItem(context.Background(), raw, uuid.New())

		s.True(errs.Is(err, errs.ErrCartItemNotFound))
	})
}
