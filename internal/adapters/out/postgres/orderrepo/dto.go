// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The product link is protected: a product referenced by
// any order row cannot be deleted.
package orderrepo

import (
	"time"

	"supplychain/internal/adapters/out/postgres/productrepo"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// SalePointDTO represents the database structure for sale points.
type SalePointDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"not null"`
	Address string
}

// TableName specifies the database table name for sale points.
func (SalePointDTO) TableName() string {
	return "sale_points"
}

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored by its wire string so the rows read naturally in the
// database and survive reordering of the Go enum.
type OrderDTO struct {
	ID          uuid.UUID               `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID               `gorm:"type:uuid;not null;index"`
	Product     *productrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	SalePointID uuid.UUID               `gorm:"type:uuid;not null;index"`
	SalePoint   *SalePointDTO           `gorm:"foreignKey:SalePointID;constraint:OnDelete:RESTRICT"`
	Quantity    int                     `gorm:"not null"`
	PlacedAt    time.Time               `gorm:"not null"`
	Status      string                  `gorm:"type:varchar(16);not null;index"`
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "product_orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		ProductID:   aggregate.ProductID().Bytes(),
		SalePointID: aggregate.SalePointID().Bytes(),
		Quantity:    aggregate.Quantity(),
		PlacedAt:    aggregate.PlacedAt(),
		Status:      aggregate.Status().String(),
	}
}

func toDomain(dto OrderDTO, deliveryIDs []kernel.UUID) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	salePointID, err := kernel.UUIDFromBytes(dto.SalePointID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, productID, salePointID, dto.Quantity, dto.PlacedAt, status, deliveryIDs)
}
