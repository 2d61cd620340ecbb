package commands

import (
	"errors"
	"net/url"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordActualWeightCommandIsNotConstructed = errors.New(
	"RecordActualWeightCommand must be created via NewRecordActualWeightCommand constructor",
)

// RecordActualWeightCommand carries the branch's weighing of a received order.
type RecordActualWeightCommand struct { //nolint:recvcheck //using for validation
	actor         kernel.UUID
	orderID       kernel.UUID
	items         []order.LineItem
	weight        *decimal.Decimal
	proofVideoURL string
	notes         string

	guard guard.ConstructorGuard
}

func NewRecordActualWeightCommand(
	actor, orderID kernel.UUID,
	items []order.LineItem,
	weight *decimal.Decimal,
	proofVideoURL string,
	notes string,
) (RecordActualWeightCommand, error) {
	cmd := RecordActualWeightCommand{
		items:         append([]order.LineItem(nil), items...),
		weight:        weight,
		proofVideoURL: proofVideoURL,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}

	var errList []error
	if err := actor.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("actor", err))
	}
	if err := orderID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("order_id", err))
	}
	if len(items) == 0 {
		errList = append(errList, errs.NewValueIsRequiredError("actual_weight_items"))
	}
	if proofVideoURL != "" {
		if u, err := url.ParseRequestURI(proofVideoURL); err != nil || u.Host == "" {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("proof_video_url", err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return RecordActualWeightCommand{}, err
	}

	cmd.actor = actor
	cmd.orderID = orderID
	return cmd, nil
}

func (c RecordActualWeightCommand) Validate() error {
	return c.guard.Validate(ErrRecordActualWeightCommandIsNotConstructed)
}

func (c RecordActualWeightCommand) Actor() kernel.UUID       { return c.actor }
func (c RecordActualWeightCommand) OrderID() kernel.UUID     { return c.orderID }
func (c RecordActualWeightCommand) Items() []order.LineItem  { return c.items }
func (c RecordActualWeightCommand) Weight() *decimal.Decimal { return c.weight }
func (c RecordActualWeightCommand) ProofVideoURL() string    { return c.proofVideoURL }
func (c RecordActualWeightCommand) Notes() string            { return c.notes }
