// Package services contains stateless domain services that operate across
// aggregates.
//
// PriceResolver selects the applicable price policy for a vehicle, optionally
// scoped to a dealer, as of a point in time. StatusCoordinator is the sole
// writer of the sales document status field: every payment and delivery
// mutation reports back to it so the document stays the single source of
// truth for what stage the transaction is at.
//
// Both services are pure: they take loaded aggregates and return results or
// mutate the passed document. Loading and persisting is the callers' job,
// inside one unit of work per operation.
package services
