// Package delivery contains the Delivery aggregate: the handover record that
// tracks a sold vehicle from the moment a drop-off is scheduled until the
// customer has it.
//
// A document has at most one delivery. Its status is a guarded state machine:
//
//	SCHEDULED ──> IN_TRANSIT ──> DELIVERED
//	    │             │
//	    └──> CANCELLED <──┘
//
// Completion is additionally gated on the customer confirming receipt while
// the delivery is in transit. ForceStatus bypasses the ordering guards for
// administrative corrections but still rejects unknown status tags.
package delivery
