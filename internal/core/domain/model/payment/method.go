package payment

import (
	"fmt"

	"dealersales/internal/pkg/errs"
)

// Method tags how a payment was made. The bank-transfer variants correspond
// to the external gateway providers whose callbacks feed the ledger.
type Method string

const (
	MethodCash         Method = "CASH"
	MethodFinance      Method = "FINANCE"
	MethodBankTransfer Method = "BANK_TRANSFER"
	MethodVNPay        Method = "VNPAY"
	MethodMoMo         Method = "MOMO"
	MethodMoMoATM      Method = "MOMO_ATM"
)

var validMethods = map[Method]bool{
	MethodCash:         true,
	MethodFinance:      true,
	MethodBankTransfer: true,
	MethodVNPay:        true,
	MethodMoMo:         true,
	MethodMoMoATM:      true,
}

// Validate checks that the method is a known payment method tag.
func (m Method) Validate() error {
	if !validMethods[m] {
		return errs.NewValueIsInvalidErrorWithCause("method",
			fmt.Errorf("%q is not a valid payment method", string(m)))
	}
	return nil
}

// String implements fmt.Stringer.
func (m Method) String() string {
	return string(m)
}
