// Package kernel contains shared value objects used across all domain aggregates.
//
// The kernel holds concepts that do not belong to any single aggregate:
// identifiers (UUID) and exact monetary/physical magnitudes (Money). All kernel
// types are immutable value objects whose zero values are invalid; they must be
// built through their constructor functions.
package kernel
