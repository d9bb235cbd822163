//go:build unit

package order_test

import (
	"testing"

	"gleamshop/internal/domain/cart"
	"gleamshop/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCart(t *testing.T) *cart.Cart {
	t.Helper()
	sid, err := cart.NewSessionID(uuid.New())
	require.NoError(t, err)
	c := cart.NewCart(sid)

	rs, err := cart.NewRingSize("7")
	require.NoError(t, err)
	_, err = c.AddItem(uuid.New(), rs, 2, 15000)
	require.NoError(t, err)

	none, err := cart.NewRingSize("")
	require.NoError(t, err)
	_, err = c.AddItem(uuid.New(), none, 1, 9900)
	require.NoError(t, err)

	return c
}

func TestNewOrder(t *testing.T) {
	t.Run("freezes lines and total from the cart snapshot", func(t *testing.T) {
		c := buildCart(t)
		userID := uuid.New()

		o, err := order.NewOrder(userID, c)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, o.ID())
		assert.Equal(t, userID, o.UserID())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, c.TotalCents(), o.TotalCents())
		assert.Equal(t, o.ID().String(), o.TransactionUUID())

		items := o.LineItems()
		require.Len(t, items, 2)
		assert.Equal(t, int32(2), items[0].Quantity())
		assert.Equal(t, "7", items[0].RingSize())
		assert.Equal(t, int64(15000), items[0].UnitPriceCents())
		assert.Equal(t, int64(30000), items[0].SubtotalCents())
	})

	t.Run("order is decoupled from later cart mutation", func(t *testing.T) {
		c := buildCart(t)
		o, err := order.NewOrder(uuid.New(), c)
		require.NoError(t, err)

		frozenTotal := o.TotalCents()
		line := c.Lines()[0]
		_, err = c.ChangeQuantity(line.ID(), cart.ActionIncrease)
		require.NoError(t, err)

		assert.Equal(t, frozenTotal, o.TotalCents())
		assert.NotEqual(t, c.TotalCents(), o.TotalCents())
	})

	t.Run("empty cart rejected", func(t *testing.T) {
		sid, err := cart.NewSessionID(uuid.New())
		require.NoError(t, err)

		_, err = order.NewOrder(uuid.New(), cart.NewCart(sid))
		assert.ErrorIs(t, err, order.ErrEmptyCart)
	})

	t.Run("missing owner rejected", func(t *testing.T) {
		_, err := order.NewOrder(uuid.Nil, buildCart(t))
		assert.ErrorIs(t, err, order.ErrNoOwner)
	})

	t.Run("two checkouts of the same cart produce distinct orders", func(t *testing.T) {
		c := buildCart(t)
		userID := uuid.New()

		first, err := order.NewOrder(userID, c)
		require.NoError(t, err)
		second, err := order.NewOrder(userID, c)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID(), second.ID())
		assert.Equal(t, first.TotalCents(), second.TotalCents())
		assert.Equal(t, order.StatusPending, first.Status())
		assert.Equal(t, order.StatusPending, second.Status())
	})
}

func TestStatusTransitions(t *testing.T) {
	t.Run("pending to paid", func(t *testing.T) {
		o, err := order.NewOrder(uuid.New(), buildCart(t))
		require.NoError(t, err)

		require.NoError(t, o.MarkPaid())
		assert.Equal(t, order.StatusPaid, o.Status())
	})

	t.Run("pending to failed", func(t *testing.T) {
		o, err := order.NewOrder(uuid.New(), buildCart(t))
		require.NoError(t, err)

		require.NoError(t, o.MarkFailed())
		assert.Equal(t, order.StatusFailed, o.Status())
	})

	t.Run("no transition leaves a terminal status", func(t *testing.T) {
		o, err := order.NewOrder(uuid.New(), buildCart(t))
		require.NoError(t, err)
		require.NoError(t, o.MarkPaid())

		assert.ErrorIs(t, o.MarkFailed(), order.ErrAlreadyTerminal)
		assert.ErrorIs(t, o.MarkPaid(), order.ErrAlreadyTerminal)
		assert.Equal(t, order.StatusPaid, o.Status())
	})
}

func TestStatus(t *testing.T) {
	assert.True(t, order.StatusPaid.IsTerminal())
	assert.True(t, order.StatusFailed.IsTerminal())
	assert.False(t, order.StatusPending.IsTerminal())

	_, err := order.NewStatus("approved")
	assert.ErrorIs(t, err, order.ErrInvalidStatus)

	s, err := order.NewStatus("paid")
	require.NoError(t, err)
	assert.Equal(t, order.StatusPaid, s)
}
