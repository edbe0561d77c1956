package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products and their
// catalog placements.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Remove deletes a product. Returns product.ErrStillReferenced when
	// existing orders point at the product.
	Remove(ctx context.Context, id kernel.UUID) error

	// AddToFactoryCatalog links a product into a factory's catalog.
	AddToFactoryCatalog(ctx context.Context, productID kernel.UUID, factoryID kernel.UUID) error

	// RemoveFromFactoryCatalog unlinks a product from a factory's catalog.
	RemoveFromFactoryCatalog(ctx context.Context, productID kernel.UUID, factoryID kernel.UUID) error

	// IsInAnyCatalog reports whether any factory still carries the product.
	IsInAnyCatalog(ctx context.Context, productID kernel.UUID) (bool, error)
}
