package userrepo

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/account"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Get retrieves a user snapshot with groups and affiliations preloaded.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (account.User, error) {
	if err := id.Validate(); err != nil {
		return account.User{}, err
	}

	return r.first(ctx, "id = ?", id.Bytes())
}

// GetByUsername retrieves a user snapshot by login name.
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (account.User, error) {
	if username == "" {
		return account.User{}, errs.NewValueIsRequiredError("username")
	}

	return r.first(ctx, "username = ?", username)
}

// Add persists a new user record with its group memberships.
// Affiliation links are reference data managed outside this repository.
func (r *GormUserRepository) Add(ctx context.Context, user account.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := fromDomain(user)
	return r.db.WithContext(ctx).
		Omit("Factories", "SalePoints", "Carriers").
		Create(&dto).Error
}

// Remove deletes a user record. Group memberships cascade.
func (r *GormUserRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Select(clause.Associations).Delete(&UserDTO{ID: id.Bytes()})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", id.String())
	}

	return nil
}

func (r *GormUserRepository) first(ctx context.Context, cond string, arg any) (account.User, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).
		Preload("Groups").
		Preload("Factories").
		Preload("SalePoints").
		Preload("Carriers").
		First(&dto, cond, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.User{}, errs.NewObjectNotFoundError("user", arg)
		}
		return account.User{}, err
	}

	return toDomain(dto)
}
