package ports

import (
	"context"

	"supplychain/internal/core/domain/model/account"
	"supplychain/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for account snapshots.
// Snapshots are loaded once per request during authentication; mutation is
// limited to what account management needs.
type UserRepository interface {
	// Get retrieves a user snapshot with its groups and affiliations.
	Get(ctx context.Context, id kernel.UUID) (account.User, error)

	// GetByUsername retrieves a user snapshot by login name.
	GetByUsername(ctx context.Context, username string) (account.User, error)

	// Add persists a new user record.
	Add(ctx context.Context, user account.User) error

	// Remove deletes a user record.
	Remove(ctx context.Context, id kernel.UUID) error
}
