package notification

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage")

// Kind identifies which event a message announces.
type Kind int

const (
	KindUnknown Kind = iota
	KindBranchNewOrder
	KindCustomerStatusUpdate
	KindCustomerActualWeight
)

func (k Kind) String() string {
	switch k {
	case KindBranchNewOrder:
		return "branch_new_order"
	case KindCustomerStatusUpdate:
		return "customer_status_update"
	case KindCustomerActualWeight:
		return "customer_actual_weight"
	default:
		return "unknown"
	}
}

func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{KindBranchNewOrder, KindCustomerStatusUpdate, KindCustomerActualWeight} {
		if k.String() == s {
			return k, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("notification_kind", fmt.Errorf("%q is not a known kind", s))
}

// State is the dispatch state of an outbox message.
type State int

const (
	StateUnknown State = iota
	StatePending
	StateDispatched
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateDispatched:
		return "dispatched"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

func ParseState(s string) (State, error) {
	for _, st := range []State{StatePending, StateDispatched, StateFailed} {
		if st.String() == s {
			return st, nil
		}
	}
	return StateUnknown, errs.NewValueIsInvalidErrorWithCause("notification_state", fmt.Errorf("%q is not a known state", s))
}

// Message is a rendered notification waiting in the outbox.
// It is written in the same transaction as the order change it announces.
type Message struct {
	id           kernel.UUID
	kind         Kind
	orderID      kernel.UUID
	orderNumber  string
	recipient    string
	body         string
	state        State
	lastError    string
	createdAt    time.Time
	dispatchedAt *time.Time
	guard        guard.ConstructorGuard
}

// NewMessage creates a pending message. recipient is a WhatsApp number and may be
// empty when the branch or customer has no phone; such messages are still kept
// and fail at dispatch.
func NewMessage(id kernel.UUID, kind Kind, orderID kernel.UUID, orderNumber, recipient, body string, now time.Time) (*Message, error) {
	var kindErr, bodyErr error
	if kind == KindUnknown || kind > KindCustomerActualWeight {
		kindErr = errs.NewValueIsInvalidError("notification_kind")
	}
	if body == "" {
		bodyErr = errs.NewValueIsRequiredError("notification_body")
	}

	if err := errors.Join(id.Validate(), orderID.Validate(), kindErr, bodyErr); err != nil {
		return nil, err
	}

	return &Message{
		id:          id,
		kind:        kind,
		orderID:     orderID,
		orderNumber: orderNumber,
		recipient:   recipient,
		body:        body,
		state:       StatePending,
		createdAt:   now,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreMessage rebuilds a message from the outbox table.
func RestoreMessage(
	id kernel.UUID,
	kind Kind,
	orderID kernel.UUID,
	orderNumber, recipient, body string,
	state State,
	lastError string,
	createdAt time.Time,
	dispatchedAt *time.Time,
) (*Message, error) {
	m, err := NewMessage(id, kind, orderID, orderNumber, recipient, body, createdAt)
	if err != nil {
		return nil, err
	}
	if state == StateUnknown || state > StateFailed {
		return nil, errs.NewValueIsInvalidError("notification_state")
	}

	m.state = state
	m.lastError = lastError
	m.dispatchedAt = dispatchedAt
	return m, nil
}

func (m *Message) Validate() error {
	if m == nil {
		return ErrMessageIsNotConstructed
	}
	return m.guard.Validate(ErrMessageIsNotConstructed)
}

func (m *Message) ID() kernel.UUID          { return m.id }
func (m *Message) Kind() Kind               { return m.kind }
func (m *Message) OrderID() kernel.UUID     { return m.orderID }
func (m *Message) OrderNumber() string      { return m.orderNumber }
func (m *Message) Recipient() string        { return m.recipient }
func (m *Message) Body() string             { return m.body }
func (m *Message) State() State             { return m.state }
func (m *Message) LastError() string        { return m.lastError }
func (m *Message) CreatedAt() time.Time     { return m.createdAt }
func (m *Message) DispatchedAt() *time.Time { return m.dispatchedAt }

// MarkDispatched records that the message was handed to the senders.
// A message is dispatched at most once.
func (m *Message) MarkDispatched(now time.Time) error {
	if m.state != StatePending {
		return errs.NewInvalidTransitionError(m.state.String(), StateDispatched.String(), "message was already dispatched")
	}
	at := now
	m.state = StateDispatched
	m.dispatchedAt = &at
	return nil
}

// MarkFailed records a delivery failure. Failed messages are not retried.
func (m *Message) MarkFailed(cause error) {
	m.state = StateFailed
	if cause != nil {
		m.lastError = cause.Error()
	}
}
