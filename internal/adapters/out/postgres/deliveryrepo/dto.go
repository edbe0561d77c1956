// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence, including carriers and the delivery/order join
// table.
package deliveryrepo

import (
	"time"

	"supplychain/internal/adapters/out/postgres/orderrepo"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipping"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CarrierDTO represents the database structure for carriers.
type CarrierDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"not null"`
}

// TableName specifies the database table name for carriers.
func (CarrierDTO) TableName() string {
	return "carriers"
}

// DeliveryDTO represents the database structure for persisting deliveries.
// The carrier link is protected; covered orders hang off a many-to-many join.
type DeliveryDTO struct {
	ID        uuid.UUID           `gorm:"type:uuid;primaryKey"`
	CarrierID uuid.UUID           `gorm:"type:uuid;not null;index"`
	Carrier   *CarrierDTO         `gorm:"foreignKey:CarrierID;constraint:OnDelete:RESTRICT"`
	Cost      decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	Date      time.Time           `gorm:"not null"`
	Priority  int                 `gorm:"not null"`
	Orders    []orderrepo.OrderDTO `gorm:"many2many:product_order_deliveries;joinForeignKey:DeliveryID;joinReferences:ProductOrderID"`
}

// TableName specifies the database table name for deliveries.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *shipping.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:        aggregate.ID().Bytes(),
		CarrierID: aggregate.CarrierID().Bytes(),
		Cost:      aggregate.Cost().Amount(),
		Date:      aggregate.Date(),
		Priority:  int(aggregate.Priority()),
	}
}

func toDomain(dto DeliveryDTO, orderIDs []kernel.UUID) (*shipping.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}

	cost, err := kernel.NewMoney(dto.Cost)
	if err != nil {
		return nil, err
	}

	return shipping.RestoreDelivery(id, carrierID, cost, dto.Date, shipping.Priority(dto.Priority), orderIDs)
}
