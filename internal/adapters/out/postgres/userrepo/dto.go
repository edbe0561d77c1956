// Package userrepo provides data transfer objects and mapping functions for
// account snapshots: the user row plus its group names and affiliation links.
package userrepo

import (
	"supplychain/internal/adapters/out/postgres/deliveryrepo"
	"supplychain/internal/adapters/out/postgres/orderrepo"
	"supplychain/internal/adapters/out/postgres/productrepo"
	"supplychain/internal/core/domain/model/account"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserGroupDTO represents one named group membership of a user.
type UserGroupDTO struct {
	ID     uint      `gorm:"primaryKey;autoIncrement"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name   string    `gorm:"not null"`
}

// TableName specifies the database table name for group memberships.
func (UserGroupDTO) TableName() string {
	return "user_groups"
}

// UserDTO represents the database structure for persisting users.
// Affiliations are many-to-many links to the reference-data tables.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string
	PasswordHash string
	IsAdmin      bool
	Groups       []UserGroupDTO           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Factories    []productrepo.FactoryDTO `gorm:"many2many:user_factories;joinForeignKey:UserID;joinReferences:FactoryID"`
	SalePoints   []orderrepo.SalePointDTO `gorm:"many2many:user_sale_points;joinForeignKey:UserID;joinReferences:SalePointID"`
	Carriers     []deliveryrepo.CarrierDTO `gorm:"many2many:user_carriers;joinForeignKey:UserID;joinReferences:CarrierID"`
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(user account.User) UserDTO {
	groups := make([]UserGroupDTO, 0, len(user.Groups()))
	for _, name := range user.Groups() {
		groups = append(groups, UserGroupDTO{UserID: user.ID().Bytes(), Name: name})
	}

	return UserDTO{
		ID:           user.ID().Bytes(),
		Username:     user.Username(),
		Email:        user.Email(),
		PasswordHash: user.PasswordHash(),
		IsAdmin:      user.IsAdmin(),
		Groups:       groups,
	}
}

func toDomain(dto UserDTO) (account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return account.User{}, err
	}

	groups := make([]string, 0, len(dto.Groups))
	for _, group := range dto.Groups {
		groups = append(groups, group.Name)
	}

	factoryIDs, err := linkIDs(len(dto.Factories), func(i int) uuid.UUID { return dto.Factories[i].ID })
	if err != nil {
		return account.User{}, err
	}

	salePointIDs, err := linkIDs(len(dto.SalePoints), func(i int) uuid.UUID { return dto.SalePoints[i].ID })
	if err != nil {
		return account.User{}, err
	}

	carrierIDs, err := linkIDs(len(dto.Carriers), func(i int) uuid.UUID { return dto.Carriers[i].ID })
	if err != nil {
		return account.User{}, err
	}

	return account.NewUser(
		id, dto.Username, dto.Email, dto.PasswordHash, dto.IsAdmin,
		groups, factoryIDs, salePointIDs, carrierIDs)
}

func linkIDs(n int, at func(int) uuid.UUID) ([]kernel.UUID, error) {
	if n == 0 {
		return nil, nil
	}

	ids := make([]kernel.UUID, 0, n)
	for i := range n {
		raw := at(i)
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
