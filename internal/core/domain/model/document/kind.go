package document

import (
	"fmt"

	"dealersales/internal/pkg/errs"
)

// Kind classifies a sales document. The kind is fixed at creation and decides
// which lifecycle the document's status follows and which operations apply:
// only orders accept payments and deliveries.
type Kind string

const (
	// KindQuote is a price proposal sent to a customer. Quotes follow the
	// DRAFT -> SENT -> ACCEPTED/REJECTED lifecycle and are not payable.
	KindQuote Kind = "QUOTE"

	// KindOrder is a confirmed purchase. Orders accept payments and own at
	// most one delivery.
	KindOrder Kind = "ORDER"

	// KindContract is a signed sales contract. Contracts are tracked but are
	// neither payable nor deliverable in this core.
	KindContract Kind = "CONTRACT"
)

// Validate checks that the kind is one of the known document kinds.
func (k Kind) Validate() error {
	switch k {
	case KindQuote, KindOrder, KindContract:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%q is not a valid document kind", string(k)))
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}
