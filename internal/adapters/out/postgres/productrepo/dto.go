// Package productrepo provides data transfer objects and mapping functions for
// product persistence, including categories, factories and the factory catalog
// join table.
package productrepo

import (
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryDTO represents the database structure for product categories.
type CategoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Description string
}

// TableName specifies the database table name for categories.
func (CategoryDTO) TableName() string {
	return "product_categories"
}

// ProductDTO represents the database structure for persisting products.
// The category link is optional and cleared when the category is deleted.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Weight      decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	Category    *CategoryDTO    `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Description string
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// FactoryDTO represents the database structure for factories.
// The catalog is a plain many-to-many link to products.
type FactoryDTO struct {
	ID       uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Name     string       `gorm:"not null"`
	Address  string
	Products []ProductDTO `gorm:"many2many:factory_products;joinForeignKey:FactoryID;joinReferences:ProductID"`
}

// TableName specifies the database table name for factories.
func (FactoryDTO) TableName() string {
	return "factories"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	var categoryID *uuid.UUID
	if id := aggregate.Category(); id != nil {
		raw := id.Bytes()
		categoryID = &raw
	}

	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Price:       aggregate.Price().Amount(),
		Weight:      aggregate.Weight().Amount(),
		CategoryID:  categoryID,
		Description: aggregate.Description(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewMoney(dto.Weight)
	if err != nil {
		return nil, err
	}

	var categoryID *kernel.UUID
	if dto.CategoryID != nil {
		cID, catErr := kernel.UUIDFromBytes((*dto.CategoryID)[:])
		if catErr != nil {
			return nil, catErr
		}

		categoryID = &cID
	}

	return product.NewProduct(id, dto.Name, price, weight, categoryID, dto.Description)
}
