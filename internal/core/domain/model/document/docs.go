// Package document contains the SalesDocument aggregate: the record tying a
// dealer, a customer, and one or more vehicle line items together as a quote,
// an order, or a contract.
//
// The aggregate owns its lines. Lines snapshot the unit price that was
// resolved at creation time; they never reference live price policies. The
// document's status field is a guarded state machine:
//
//	QUOTE:  DRAFT ──> SENT ──┬──> ACCEPTED
//	                         └──> REJECTED
//
//	ORDER:  OPEN ──> PAID ──> DELIVERY_SCHEDULED ──> IN_DELIVERY ──> DELIVERED
//
// Order transitions are one-directional and may skip stages (an order whose
// delivery is scheduled before it is fully paid moves OPEN -> DELIVERY_SCHEDULED
// directly). A transition request to an earlier or equal stage fails with an
// InvalidStateTransitionError naming both states.
//
// Only the services.StatusCoordinator is allowed to call the status mutation
// methods; everything else treats the status as read-only.
package document
