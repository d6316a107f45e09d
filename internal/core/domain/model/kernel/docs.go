// Package kernel contains shared value objects used across the domain model.
//
// The package currently provides UUID, an immutable identifier value object
// wrapping github.com/google/uuid. Aggregates and entities in the sales,
// payment, delivery, and pricing models all identify their records with
// kernel.UUID, keeping identifier validation in one place.
package kernel
