package productrepo

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/product"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
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

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Remove deletes a product. The referential constraint on orders refuses the
// delete while any order still points at the product; that refusal surfaces
// as product.ErrStillReferenced.
func (r *GormProductRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return product.ErrStillReferenced
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}

	return nil
}

// AddToFactoryCatalog links a product into a factory's catalog.
// Linking an already carried product is a no-op.
func (r *GormProductRepository) AddToFactoryCatalog(ctx context.Context, productID, factoryID kernel.UUID) error {
	if err := errors.Join(productID.Validate(), factoryID.Validate()); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Exec(`
		INSERT INTO factory_products (factory_id, product_id)
		VALUES (?, ?)
		ON CONFLICT DO NOTHING
	`, factoryID.Bytes(), productID.Bytes()).Error
}

// RemoveFromFactoryCatalog unlinks a product from a factory's catalog.
func (r *GormProductRepository) RemoveFromFactoryCatalog(ctx context.Context, productID, factoryID kernel.UUID) error {
	if err := errors.Join(productID.Validate(), factoryID.Validate()); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Exec(`
		DELETE FROM factory_products
		WHERE factory_id = ? AND product_id = ?
	`, factoryID.Bytes(), productID.Bytes()).Error
}

// IsInAnyCatalog reports whether any factory still carries the product.
func (r *GormProductRepository) IsInAnyCatalog(ctx context.Context, productID kernel.UUID) (bool, error) {
	if err := productID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Table("factory_products").
		Where("product_id = ?", productID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
