// Package pricing contains the PricePolicy aggregate: a time-bounded price
// record for a vehicle, optionally scoped to one dealer.
//
// A policy carries the manufacturer suggested retail price and the wholesale
// price for the same vehicle; callers pick the field matching their flow.
// The dealer scoping is modelled as an explicit Scope value object instead of
// a bare nullable reference so that global and dealer-specific lookup paths
// stay exhaustive at the type level.
//
// Policies are owned by the catalog collaborator. Sales documents only read
// the resolved price at line-creation time and snapshot it into the line.
package pricing
