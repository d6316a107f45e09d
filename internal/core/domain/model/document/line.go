package document

import (
	"errors"
	"fmt"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory function.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one vehicle/color/quantity entry on a sales document. The unit
// price is a snapshot of the price resolved when the line was created, not a
// live reference into the pricing catalog. Lines are immutable once created.
//
// Invariants:
//   - qty > 0
//   - unitPrice >= 0
//   - 0 <= discountValue <= unitPrice * qty
type Line struct {
	id            kernel.UUID
	vehicleID     kernel.UUID
	colorCode     string
	qty           int
	unitPrice     decimal.Decimal
	discountValue decimal.Decimal

	isConstructed bool
}

// NewLine creates a validated line. unitPrice is the snapshot taken from the
// resolved price policy at creation time; discountValue is the total discount
// applied to this line.
func NewLine(
	id kernel.UUID,
	vehicleID kernel.UUID,
	colorCode string,
	qty int,
	unitPrice decimal.Decimal,
	discountValue decimal.Decimal,
) (Line, error) {
	if err := id.Validate(); err != nil {
		return Line{}, err
	}
	if err := vehicleID.Validate(); err != nil {
		return Line{}, err
	}
	if colorCode == "" {
		return Line{}, errs.NewValueIsRequiredError("colorCode")
	}
	if qty <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	if unitPrice.IsNegative() {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", unitPrice))
	}

	subtotal := unitPrice.Mul(decimal.NewFromInt(int64(qty)))
	if discountValue.IsNegative() || discountValue.GreaterThan(subtotal) {
		return Line{}, errs.NewValueIsOutOfRangeError("discountValue", discountValue, decimal.Zero, subtotal)
	}

	return Line{
		id:            id,
		vehicleID:     vehicleID,
		colorCode:     colorCode,
		qty:           qty,
		unitPrice:     unitPrice,
		discountValue: discountValue,
		isConstructed: true,
	}, nil
}

// Validate ensures the line was created through NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l Line) ID() kernel.UUID {
	return l.id
}

// VehicleID returns the referenced vehicle.
func (l Line) VehicleID() kernel.UUID {
	return l.vehicleID
}

// ColorCode returns the vehicle color code for this line.
func (l Line) ColorCode() string {
	return l.colorCode
}

// Qty returns the quantity of vehicles on this line.
func (l Line) Qty() int {
	return l.qty
}

// UnitPrice returns the snapshot unit price taken at line creation.
func (l Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// DiscountValue returns the total discount applied to this line.
func (l Line) DiscountValue() decimal.Decimal {
	return l.discountValue
}

// Subtotal returns unitPrice * qty - discountValue. The line invariants
// guarantee the result is never negative.
func (l Line) Subtotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.qty))).Sub(l.discountValue)
}
