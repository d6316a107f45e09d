package document

import (
	"fmt"

	"dealersales/internal/pkg/errs"
)

// Status represents the lifecycle state of a sales document. Quotes and
// orders use disjoint vocabularies; the transition methods enforce the state
// machines described in the package documentation.
//
// Status values are persisted and exchanged as their string tags.
type Status string

const (
	// Quote lifecycle.

	// StatusDraft is the initial status of a quote under construction.
	StatusDraft Status = "DRAFT"
	// StatusSent means the quote has been sent to the customer.
	StatusSent Status = "SENT"
	// StatusAccepted is a final quote status: the customer accepted.
	StatusAccepted Status = "ACCEPTED"
	// StatusRejected is a final quote status: the customer declined.
	StatusRejected Status = "REJECTED"

	// Order lifecycle.

	// StatusOpen is the initial status of an order awaiting payment.
	StatusOpen Status = "OPEN"
	// StatusPaid means the order's remaining balance reached zero.
	StatusPaid Status = "PAID"
	// StatusDeliveryScheduled means a delivery has been scheduled.
	StatusDeliveryScheduled Status = "DELIVERY_SCHEDULED"
	// StatusInDelivery means the vehicle handover is underway.
	StatusInDelivery Status = "IN_DELIVERY"
	// StatusDelivered is the final order status.
	StatusDelivered Status = "DELIVERED"
)

// orderStatusRank orders the ORDER lifecycle stages. Transitions must move to
// a strictly higher rank; stages may be skipped but never revisited.
var orderStatusRank = map[Status]int{
	StatusOpen:              1,
	StatusPaid:              2,
	StatusDeliveryScheduled: 3,
	StatusInDelivery:        4,
	StatusDelivered:         5,
}

var quoteStatuses = map[Status]bool{
	StatusDraft:    true,
	StatusSent:     true,
	StatusAccepted: true,
	StatusRejected: true,
}

// Validate checks that the status is a known tag of either lifecycle.
func (s Status) Validate() error {
	if _, ok := orderStatusRank[s]; ok {
		return nil
	}
	if quoteStatuses[s] {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid document status", string(s)))
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsQuoteStatus reports whether the status belongs to the quote lifecycle.
func (s Status) IsQuoteStatus() bool {
	return quoteStatuses[s]
}

// IsOrderStatus reports whether the status belongs to the order lifecycle.
func (s Status) IsOrderStatus() bool {
	_, ok := orderStatusRank[s]
	return ok
}

// AtOrBeyond reports whether an order status has reached the given stage.
// It is false when either status belongs to the quote lifecycle.
func (s Status) AtOrBeyond(stage Status) bool {
	currentRank, ok := orderStatusRank[s]
	if !ok {
		return false
	}
	stageRank, ok := orderStatusRank[stage]
	if !ok {
		return false
	}
	return currentRank >= stageRank
}

// Send transitions a quote from DRAFT to SENT.
func (s Status) Send() (Status, error) {
	if s != StatusDraft {
		return "", errs.NewInvalidStateTransitionError("document", s.String(), StatusSent.String())
	}
	return StatusSent, nil
}

// Accept transitions a quote from SENT to ACCEPTED.
func (s Status) Accept() (Status, error) {
	if s != StatusSent {
		return "", errs.NewInvalidStateTransitionError("document", s.String(), StatusAccepted.String())
	}
	return StatusAccepted, nil
}

// Reject transitions a quote from SENT to REJECTED.
func (s Status) Reject() (Status, error) {
	if s != StatusSent {
		return "", errs.NewInvalidStateTransitionError("document", s.String(), StatusRejected.String())
	}
	return StatusRejected, nil
}

// Advance transitions an order status forward to requested. Both the current
// and the requested status must belong to the order lifecycle, and requested
// must rank strictly higher than the current status. Returns an
// InvalidStateTransitionError naming both states otherwise.
func (s Status) Advance(requested Status) (Status, error) {
	currentRank, ok := orderStatusRank[s]
	if !ok {
		return "", errs.NewInvalidStateTransitionErrorWithCause("document", s.String(), requested.String(),
			fmt.Errorf("%q is not an order status", string(s)))
	}

	requestedRank, ok := orderStatusRank[requested]
	if !ok {
		return "", errs.NewInvalidStateTransitionErrorWithCause("document", s.String(), requested.String(),
			fmt.Errorf("%q is not an order status", string(requested)))
	}

	if requestedRank <= currentRank {
		return "", errs.NewInvalidStateTransitionError("document", s.String(), requested.String())
	}

	return requested, nil
}
