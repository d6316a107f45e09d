package commands

import (
	"errors"
	"fmt"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/core/domain/model/payment"
	"dealersales/internal/pkg/errs"
	"dealersales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents a request to append a payment to an
// order's ledger. Metadata carries gateway context such as the transaction
// id and provider name.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID  kernel.UUID
	documentID kernel.UUID
	method     payment.Method
	amount     decimal.Decimal
	metadata   map[string]string
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment. The amount
// must be strictly positive; whether it fits the remaining balance is
// checked by the handler under the document lock.
func NewRecordPaymentCommand(
	paymentID kernel.UUID,
	documentID kernel.UUID,
	method payment.Method,
	amount decimal.Decimal,
	metadata map[string]string,
	actorID kernel.UUID,
) (RecordPaymentCommand, error) {
	if err := errors.Join(
		paymentID.Validate(),
		documentID.Validate(),
		method.Validate(),
		actorID.Validate(),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	if !amount.IsPositive() {
		return RecordPaymentCommand{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}

	return RecordPaymentCommand{
		paymentID:  paymentID,
		documentID: documentID,
		method:     method,
		amount:     amount,
		metadata:   metadata,
		actorID:    actorID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier for the new ledger entry.
func (c RecordPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// DocumentID returns the order the payment is recorded against.
func (c RecordPaymentCommand) DocumentID() kernel.UUID {
	return c.documentID
}

// Method returns the payment method tag.
func (c RecordPaymentCommand) Method() payment.Method {
	return c.method
}

// Amount returns the payment amount.
func (c RecordPaymentCommand) Amount() decimal.Decimal {
	return c.amount
}

// Metadata returns the free-form gateway context, nil when absent.
func (c RecordPaymentCommand) Metadata() map[string]string {
	return c.metadata
}

// ActorID returns the acting user.
func (c RecordPaymentCommand) ActorID() kernel.UUID {
	return c.actorID
}
