package pricing

import (
	"errors"
	"time"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Policy is the PricePolicy aggregate. Several policies for the same vehicle
// may overlap in time; resolution is the price resolver's job, not the
// policy's.
var ErrPolicyIsNotConstructed = errors.New("Policy must be created via NewPolicy or RestorePolicy")

type Policy struct {
	id        kernel.UUID
	vehicleID kernel.UUID
	scope     Scope

	msrp      decimal.Decimal
	wholesale decimal.Decimal

	validFrom time.Time
	validTo   *time.Time

	createdBy kernel.UUID
	createdAt time.Time

	isConstructed bool
}

// NewPolicy creates a price policy. The suggested retail price must be
// strictly positive and the wholesale price must lie in [0, msrp]. An unset
// validTo means the window is open-ended.
func NewPolicy(
	id kernel.UUID,
	vehicleID kernel.UUID,
	scope Scope,
	msrp decimal.Decimal,
	wholesale decimal.Decimal,
	validFrom time.Time,
	validTo *time.Time,
	createdBy kernel.UUID,
	createdAt time.Time,
) (*Policy, error) {
	if err := errors.Join(id.Validate(), vehicleID.Validate(), createdBy.Validate()); err != nil {
		return nil, err
	}

	if !msrp.IsPositive() {
		return nil, errs.NewValueIsInvalidError("msrp")
	}
	if wholesale.IsNegative() || wholesale.GreaterThan(msrp) {
		return nil, errs.NewValueIsOutOfRangeError("wholesale", wholesale, decimal.Zero, msrp)
	}

	if validFrom.IsZero() {
		return nil, errs.NewValueIsRequiredError("validFrom")
	}
	if validTo != nil && validTo.Before(validFrom) {
		return nil, errs.NewValueIsInvalidError("validTo")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Policy{
		id:        id,
		vehicleID: vehicleID,
		scope:     scope,
		msrp:      msrp,
		wholesale: wholesale,
		validFrom: validFrom,
		validTo:   validTo,
		createdBy: createdBy,
		createdAt: createdAt,

		isConstructed: true,
	}, nil
}

// RestorePolicy reconstructs a policy from persistence.
func RestorePolicy(
	id kernel.UUID,
	vehicleID kernel.UUID,
	scope Scope,
	msrp decimal.Decimal,
	wholesale decimal.Decimal,
	validFrom time.Time,
	validTo *time.Time,
	createdBy kernel.UUID,
	createdAt time.Time,
) (*Policy, error) {
	return NewPolicy(id, vehicleID, scope, msrp, wholesale, validFrom, validTo, createdBy, createdAt)
}

// Validate ensures the policy was created through a constructor.
func (p *Policy) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPolicyIsNotConstructed
	}
	return nil
}

func (p *Policy) ID() kernel.UUID {
	return p.id
}

func (p *Policy) VehicleID() kernel.UUID {
	return p.vehicleID
}

func (p *Policy) Scope() Scope {
	return p.scope
}

func (p *Policy) MSRP() decimal.Decimal {
	return p.msrp
}

func (p *Policy) Wholesale() decimal.Decimal {
	return p.wholesale
}

func (p *Policy) ValidFrom() time.Time {
	return p.validFrom
}

func (p *Policy) ValidTo() *time.Time {
	return p.validTo
}

func (p *Policy) CreatedBy() kernel.UUID {
	return p.createdBy
}

func (p *Policy) CreatedAt() time.Time {
	return p.createdAt
}

// ActiveAt reports whether the validity window covers the given instant.
// Both window edges are inclusive.
func (p *Policy) ActiveAt(asOf time.Time) bool {
	if asOf.Before(p.validFrom) {
		return false
	}
	if p.validTo != nil && asOf.After(*p.validTo) {
		return false
	}
	return true
}
