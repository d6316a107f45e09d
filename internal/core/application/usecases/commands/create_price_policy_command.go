package commands

import (
	"errors"
	"time"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/core/domain/model/pricing"
	"dealersales/internal/pkg/errs"
	"dealersales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreatePricePolicyCommandIsNotConstructed = errors.New(
	"CreatePricePolicyCommand must be created via NewCreatePricePolicyCommand constructor",
)

// CreatePricePolicyCommand represents a request to register a price policy
// for a vehicle. The scope decides whether the policy is global or bound to
// one dealer; a nil validTo leaves the window open-ended.
type CreatePricePolicyCommand struct { //nolint:recvcheck //using for validation
	policyID  kernel.UUID
	vehicleID kernel.UUID
	scope     pricing.Scope
	msrp      decimal.Decimal
	wholesale decimal.Decimal
	validFrom time.Time
	validTo   *time.Time
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreatePricePolicyCommand creates a command to register a price policy.
// Price range checks run in the Policy constructor; the command validates
// identifiers and the window start. actorID is the acting user recorded as
// the policy's creator.
func NewCreatePricePolicyCommand(
	policyID kernel.UUID,
	vehicleID kernel.UUID,
	scope pricing.Scope,
	msrp decimal.Decimal,
	wholesale decimal.Decimal,
	validFrom time.Time,
	validTo *time.Time,
	actorID kernel.UUID,
) (CreatePricePolicyCommand, error) {
	if err := errors.Join(
		policyID.Validate(),
		vehicleID.Validate(),
		actorID.Validate(),
	); err != nil {
		return CreatePricePolicyCommand{}, err
	}

	if validFrom.IsZero() {
		return CreatePricePolicyCommand{}, errs.NewValueIsRequiredError("validFrom")
	}

	return CreatePricePolicyCommand{
		policyID:  policyID,
		vehicleID: vehicleID,
		scope:     scope,
		msrp:      msrp,
		wholesale: wholesale,
		validFrom: validFrom,
		validTo:   validTo,
		actorID:   actorID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePricePolicyCommand) Validate() error {
	return c.guard.Validate(ErrCreatePricePolicyCommandIsNotConstructed)
}

func (c CreatePricePolicyCommand) PolicyID() kernel.UUID       { return c.policyID }
func (c CreatePricePolicyCommand) VehicleID() kernel.UUID      { return c.vehicleID }
func (c CreatePricePolicyCommand) Scope() pricing.Scope        { return c.scope }
func (c CreatePricePolicyCommand) MSRP() decimal.Decimal       { return c.msrp }
func (c CreatePricePolicyCommand) Wholesale() decimal.Decimal  { return c.wholesale }
func (c CreatePricePolicyCommand) ValidFrom() time.Time        { return c.validFrom }
func (c CreatePricePolicyCommand) ValidTo() *time.Time         { return c.validTo }
func (c CreatePricePolicyCommand) ActorID() kernel.UUID        { return c.actorID }
