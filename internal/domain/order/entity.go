package order

import (
	"errors"
	"time"

	"gleamshop/internal/domain/cart"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart       = errors.New("cannot create order from empty cart")
	ErrNoOwner         = errors.New("order requires an owner")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrAlreadyTerminal = errors.New("order is already in a terminal status")
)

// LineItem is a frozen copy of a cart line. UnitPriceCents is the price at
// checkout; later catalog changes never touch it.
type LineItem struct {
	id             uuid.UUID
	productID      uuid.UUID
	ringSize       string
	quantity       int32
	unitPriceCents int64
}

func ReconstructLineItem(id, productID uuid.UUID, ringSize string, quantity int32, unitPriceCents int64) LineItem {
	return LineItem{
		id:             id,
		productID:      productID,
		ringSize:       ringSize,
		quantity:       quantity,
		unitPriceCents: unitPriceCents,
	}
}

func (li LineItem) ID() uuid.UUID         { return li.id }
func (li LineItem) ProductID() uuid.UUID  { return li.productID }
func (li LineItem) RingSize() string      { return li.ringSize }
func (li LineItem) Quantity() int32       { return li.quantity }
func (li LineItem) UnitPriceCents() int64 { return li.unitPriceCents }

func (li LineItem) SubtotalCents() int64 {
	return li.unitPriceCents * int64(li.quantity)
}

// Order is the durable, payment-tracked record a checkout produces. Its id is
// the transaction_uuid correlating it with the payment gateway. Line items
// and total are fixed at creation; only status ever changes.
type Order struct {
	id         uuid.UUID
	userID     uuid.UUID
	totalCents int64
	status     Status
	lineItems  []LineItem
	createdAt  time.Time
	updatedAt  time.Time
}

// NewOrder freezes a cart snapshot into a pending order. The lines are copied
// by value; the source cart is left untouched.
func NewOrder(userID uuid.UUID, snapshot *cart.Cart) (*Order, error) {
	if userID == uuid.Nil {
		return nil, ErrNoOwner
	}
	if snapshot == nil || snapshot.IsEmpty() {
		return nil, ErrEmptyCart
	}

	cartLines := snapshot.Lines()
	items := make([]LineItem, 0, len(cartLines))
	var total int64
	for _, l := range cartLines {
		items = append(items, LineItem{
			id:             uuid.New(),
			productID:      l.ProductID(),
			ringSize:       l.RingSize().Value(),
			quantity:       l.Quantity(),
			unitPriceCents: l.UnitPriceCents(),
		})
		total += l.SubtotalCents()
	}

	return &Order{
		id:         uuid.New(),
		userID:     userID,
		totalCents: total,
		status:     StatusPending,
		lineItems:  items,
	}, nil
}

func ReconstructOrder(
	id, userID uuid.UUID,
	totalCents int64,
	status Status,
	lineItems []LineItem,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:         id,
		userID:     userID,
		totalCents: totalCents,
		status:     status,
		lineItems:  lineItems,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (o *Order) ID() uuid.UUID        { return o.id }
func (o *Order) UserID() uuid.UUID    { return o.userID }
func (o *Order) TotalCents() int64    { return o.totalCents }
func (o *Order) Status() Status       { return o.status }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// TransactionUUID is the order id in the string form the gateway sees.
func (o *Order) TransactionUUID() string {
	return o.id.String()
}

func (o *Order) LineItems() []LineItem {
	out := make([]LineItem, len(o.lineItems))
	copy(out, o.lineItems)
	return out
}

func (o *Order) IsPending() bool {
	return o.status == StatusPending
}

// MarkPaid transitions pending→paid. Terminal orders reject the transition;
// callers decide whether a replay is an error or a no-op.
func (o *Order) MarkPaid() error {
	if o.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	o.status = StatusPaid
	return nil
}

// MarkFailed transitions pending→failed.
func (o *Order) MarkFailed() error {
	if o.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	o.status = StatusFailed
	return nil
}
