package cart

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrRingSizeTooLong  = errors.New("ring size too long")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrInvalidUnitPrice = errors.New("unit price cannot be negative")
)

// SessionID identifies the anonymous browser session owning a cart. It is
// passed in explicitly; nothing in this package reads ambient session state.
type SessionID struct {
	value uuid.UUID
}

func NewSessionID(id uuid.UUID) (SessionID, error) {
	if id == uuid.Nil {
		return SessionID{}, ErrInvalidSessionID
	}
	return SessionID{value: id}, nil
}

func (s SessionID) Value() uuid.UUID {
	return s.value
}

func (s SessionID) String() string {
	return s.value.String()
}

const maxRingSizeLen = 10

// RingSize is the only product variant the shop sells. Empty means the
// product has no variant; two lines with the same product but different ring
// sizes are distinct.
type RingSize struct {
	value string
}

func NewRingSize(s string) (RingSize, error) {
	s = strings.TrimSpace(s)
	if len(s) > maxRingSizeLen {
		return RingSize{}, ErrRingSizeTooLong
	}
	return RingSize{value: s}, nil
}

func (r RingSize) Value() string {
	return r.value
}

func (r RingSize) IsEmpty() bool {
	return r.value == ""
}
