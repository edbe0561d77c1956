// Package warehouserepo provides data transfer objects and mapping functions
// for the warehouse stock ledger. One row holds one factory's on-hand quantity
// of one product; rows at zero are deleted rather than stored.
package warehouserepo

import (
	"supplychain/internal/adapters/out/postgres/productrepo"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for warehouse stock entries.
// The (factory, product) pair is unique; concurrent mutations of the same
// pair serialize on a row lock taken by the repository.
type EntryDTO struct {
	ID        uuid.UUID               `gorm:"type:uuid;primaryKey"`
	FactoryID uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex:idx_factory_product"`
	Factory   *productrepo.FactoryDTO `gorm:"foreignKey:FactoryID;constraint:OnDelete:CASCADE"`
	ProductID uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex:idx_factory_product"`
	Product   *productrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity  int                     `gorm:"not null"`
}

// TableName specifies the database table name for stock entries.
func (EntryDTO) TableName() string {
	return "factory_warehouses"
}

func fromDomain(entry *warehouse.Entry) EntryDTO {
	return EntryDTO{
		ID:        entry.ID().Bytes(),
		FactoryID: entry.FactoryID().Bytes(),
		ProductID: entry.ProductID().Bytes(),
		Quantity:  entry.Quantity(),
	}
}

func toDomain(dto EntryDTO) (*warehouse.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	factoryID, err := kernel.UUIDFromBytes(dto.FactoryID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return warehouse.NewEntry(id, factoryID, productID, dto.Quantity)
}
