package account

import (
	"errors"
	"slices"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser factory method.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is an immutable snapshot of an account and its affiliations, taken
// when a request is authenticated. Role resolution and authorization read
// only this snapshot.
type User struct {
	id           kernel.UUID
	username     string
	email        string
	passwordHash string
	isAdmin      bool
	groups       []string
	factoryIDs   []kernel.UUID
	salePointIDs []kernel.UUID
	carrierIDs   []kernel.UUID

	isConstructed bool
}

// NewUser creates a User snapshot. Affiliation slices may be nil.
func NewUser(
	id kernel.UUID,
	username string,
	email string,
	passwordHash string,
	isAdmin bool,
	groups []string,
	factoryIDs []kernel.UUID,
	salePointIDs []kernel.UUID,
	carrierIDs []kernel.UUID,
) (User, error) {
	if err := id.Validate(); err != nil {
		return User{}, err
	}
	if username == "" {
		return User{}, errs.NewValueIsRequiredError("username")
	}

	return User{
		id:            id,
		username:      username,
		email:         email,
		passwordHash:  passwordHash,
		isAdmin:       isAdmin,
		groups:        groups,
		factoryIDs:    factoryIDs,
		salePointIDs:  salePointIDs,
		carrierIDs:    carrierIDs,
		isConstructed: true,
	}, nil
}

// Validate ensures the User was constructed through NewUser.
func (u User) Validate() error {
	if !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u User) ID() kernel.UUID {
	return u.id
}

// Username returns the login name.
func (u User) Username() string {
	return u.username
}

// Email returns the user's email address.
func (u User) Email() string {
	return u.email
}

// IsAdmin reports whether the superuser flag is set.
func (u User) IsAdmin() bool {
	return u.isAdmin
}

// Groups returns the user's group names.
func (u User) Groups() []string {
	return u.groups
}

// InGroup reports membership in a named group.
func (u User) InGroup(name string) bool {
	return slices.Contains(u.groups, name)
}

// FactoryIDs returns the factories this user is affiliated with.
func (u User) FactoryIDs() []kernel.UUID {
	return u.factoryIDs
}

// SalePointIDs returns the sale points this user is affiliated with.
func (u User) SalePointIDs() []kernel.UUID {
	return u.salePointIDs
}

// CarrierIDs returns the carriers this user is affiliated with.
func (u User) CarrierIDs() []kernel.UUID {
	return u.carrierIDs
}

// PasswordHash returns the stored bcrypt hash.
func (u User) PasswordHash() string {
	return u.passwordHash
}

// CheckPassword compares a plaintext password against the stored bcrypt hash.
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) == nil
}

// HashPassword produces a bcrypt hash for storage on a user record.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errs.NewValueIsRequiredError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
