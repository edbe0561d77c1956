package warehouserepo

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/warehouse"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWarehouseRepository implements WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWarehouseRepository creates a new GORM warehouse repository.
func NewGormWarehouseRepository(db *gorm.DB, tracker aggregateTracker) *GormWarehouseRepository {
	return &GormWarehouseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new stock entry to the database.
func (r *GormWarehouseRepository) Add(ctx context.Context, aggregate *warehouse.Entry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists an entry's quantity. An entry that reached zero is deleted
// instead, keeping the prune-at-zero ledger invariant inside the caller's
// transaction.
func (r *GormWarehouseRepository) Update(ctx context.Context, aggregate *warehouse.Entry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if aggregate.IsEmpty() {
		return r.db.WithContext(ctx).Delete(&EntryDTO{}, "id = ?", dto.ID).Error
	}

	result := r.db.WithContext(ctx).
		Model(&EntryDTO{}).
		Where("id = ?", dto.ID).
		Update("quantity", dto.Quantity)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("factory warehouse entry", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Remove deletes the entry for a factory/product pair. Pairs without an
// entry are a no-op, so removal is idempotent.
func (r *GormWarehouseRepository) Remove(ctx context.Context, factoryID, productID kernel.UUID) error {
	if err := errors.Join(factoryID.Validate(), productID.Validate()); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&EntryDTO{}, "factory_id = ? AND product_id = ?", factoryID.Bytes(), productID.Bytes()).
		Error
}

// GetByFactoryAndProduct retrieves the entry for a factory/product pair.
// With forUpdate set, the row is locked with SELECT ... FOR UPDATE until the
// surrounding transaction ends.
func (r *GormWarehouseRepository) GetByFactoryAndProduct(
	ctx context.Context,
	factoryID, productID kernel.UUID,
	forUpdate bool,
) (*warehouse.Entry, error) {
	if err := errors.Join(factoryID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto EntryDTO
	err := db.First(&dto, "factory_id = ? AND product_id = ?", factoryID.Bytes(), productID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("factory warehouse entry", productID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstWithStock retrieves the first entry holding at least the wanted
// quantity, scanning factories in ascending factory id order so repeated
// placements drain the same factory first.
func (r *GormWarehouseRepository) GetFirstWithStock(
	ctx context.Context,
	productID kernel.UUID,
	quantity int,
	forUpdate bool,
) (*warehouse.Entry, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto EntryDTO
	err := db.
		Where("product_id = ? AND quantity >= ?", productID.Bytes(), quantity).
		Order("factory_id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("factory warehouse entry", productID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

