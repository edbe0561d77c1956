// Package services contains stateless domain services that coordinate rules
// across aggregates.
//
// The authorization policy lives here: a single table mapping each mutating
// action to the roles allowed to perform it, evaluated by one gate instead of
// per-endpoint permission chains.
package services
