package delivery

import (
	"errors"
	"fmt"

	"dealersales/internal/pkg/errs"
)

// ErrCustomerNotConfirmed explains a rejected completion: the handover cannot
// finish until the customer has confirmed receipt.
var ErrCustomerNotConfirmed = errors.New("customer has not confirmed receipt")

// Status represents the lifecycle state of a delivery. It implements a state
// machine with guarded transitions:
//
//	SCHEDULED ──> IN_TRANSIT ──> DELIVERED
//	    │             │
//	    └──> CANCELLED <──┘
//
// DELIVERED and CANCELLED are final. Status values are persisted and
// exchanged as their string tags.
type Status string

const (
	// StatusScheduled is the initial state: a handover date is booked.
	StatusScheduled Status = "SCHEDULED"
	// StatusInTransit means the vehicle is on its way to the customer.
	StatusInTransit Status = "IN_TRANSIT"
	// StatusDelivered means the handover completed. Final.
	StatusDelivered Status = "DELIVERED"
	// StatusCancelled means the delivery was called off. Final.
	StatusCancelled Status = "CANCELLED"
)

var validStatuses = map[Status]bool{
	StatusScheduled: true,
	StatusInTransit: true,
	StatusDelivered: true,
	StatusCancelled: true,
}

// Validate checks that the status is one of the four known tags.
func (s Status) Validate() error {
	if !validStatuses[s] {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid delivery status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Start transitions the status from SCHEDULED to IN_TRANSIT.
func (s Status) Start() (Status, error) {
	if s != StatusScheduled {
		return "", errs.NewInvalidStateTransitionError("delivery", s.String(), StatusInTransit.String())
	}
	return StatusInTransit, nil
}

// Complete transitions the status from IN_TRANSIT to DELIVERED. The
// customer-confirmation gate is enforced by the aggregate, not here.
func (s Status) Complete() (Status, error) {
	if s != StatusInTransit {
		return "", errs.NewInvalidStateTransitionError("delivery", s.String(), StatusDelivered.String())
	}
	return StatusDelivered, nil
}

// Cancel transitions the status to CANCELLED from SCHEDULED or IN_TRANSIT.
func (s Status) Cancel() (Status, error) {
	if s != StatusScheduled && s != StatusInTransit {
		return "", errs.NewInvalidStateTransitionError("delivery", s.String(), StatusCancelled.String())
	}
	return StatusCancelled, nil
}
