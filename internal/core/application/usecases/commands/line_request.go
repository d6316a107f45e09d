package commands

import (
	"errors"
	"fmt"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineRequest describes one requested document line before price resolution.
// The unit price is not part of the request: the handler resolves it from the
// active price policy and snapshots it into the line.
type LineRequest struct {
	vehicleID     kernel.UUID
	colorCode     string
	qty           int
	discountValue decimal.Decimal
}

// NewLineRequest creates a validated line request.
func NewLineRequest(
	vehicleID kernel.UUID,
	colorCode string,
	qty int,
	discountValue decimal.Decimal,
) (LineRequest, error) {
	if err := vehicleID.Validate(); err != nil {
		return LineRequest{}, err
	}
	if colorCode == "" {
		return LineRequest{}, errs.NewValueIsRequiredError("colorCode")
	}
	if qty <= 0 {
		return LineRequest{}, errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	if discountValue.IsNegative() {
		return LineRequest{}, errs.NewValueIsInvalidErrorWithCause("discountValue",
			fmt.Errorf("%s is negative", discountValue))
	}

	return LineRequest{
		vehicleID:     vehicleID,
		colorCode:     colorCode,
		qty:           qty,
		discountValue: discountValue,
	}, nil
}

// VehicleID returns the requested vehicle reference.
func (l LineRequest) VehicleID() kernel.UUID {
	return l.vehicleID
}

// ColorCode returns the requested color code.
func (l LineRequest) ColorCode() string {
	return l.colorCode
}

// Qty returns the requested quantity.
func (l LineRequest) Qty() int {
	return l.qty
}

// DiscountValue returns the total discount applied to the line.
func (l LineRequest) DiscountValue() decimal.Decimal {
	return l.discountValue
}

func validateLineRequests(lines []LineRequest) error {
	var err error
	for _, line := range lines {
		if line.vehicleID.Validate() != nil {
			err = errors.Join(err, errs.NewValueIsRequiredError("lines"))
		}
	}
	return err
}
