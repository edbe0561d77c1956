package deliveryrepo

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipping"
	"supplychain/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery and its order links to the database.
// Link rows are inserted directly; covered orders are never upserted here.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *shipping.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}

	for _, orderID := range aggregate.Orders() {
		err := r.db.WithContext(ctx).Exec(`
			INSERT INTO product_order_deliveries (delivery_id, product_order_id)
			VALUES (?, ?)
			ON CONFLICT DO NOTHING
		`, dto.ID, orderID.Bytes()).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery by ID, including the orders it covers.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*shipping.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	orderIDs, err := r.orderIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, orderIDs)
}

func (r *GormDeliveryRepository) orderIDs(ctx context.Context, deliveryID kernel.UUID) ([]kernel.UUID, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT product_order_id
		FROM product_order_deliveries
		WHERE delivery_id = ?
	`, deliveryID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orderIDs []kernel.UUID
	for rows.Next() {
		var raw uuid.UUID
		if err = rows.Scan(&raw); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	return orderIDs, rows.Err()
}
