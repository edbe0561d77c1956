package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouse stock
// entries. Each entry records how many units of one product a factory holds.
type WarehouseRepository interface {
	// Add persists a new stock entry.
	Add(ctx context.Context, aggregate *warehouse.Entry) error

	// Update persists changes to an existing stock entry. Implementations
	// remove rows whose quantity reached zero so that listings never show
	// exhausted products.
	Update(ctx context.Context, aggregate *warehouse.Entry) error

	// Remove deletes the stock entry for a factory/product pair.
	// Removing a pair that has no entry is a no-op.
	Remove(ctx context.Context, factoryID kernel.UUID, productID kernel.UUID) error

	// GetByFactoryAndProduct retrieves the entry for a factory/product pair.
	// When forUpdate is true the row is locked for the duration of the
	// surrounding transaction, serializing concurrent stock mutations.
	GetByFactoryAndProduct(ctx context.Context, factoryID kernel.UUID, productID kernel.UUID, forUpdate bool) (*warehouse.Entry, error)

	// GetFirstWithStock retrieves the first entry holding at least the wanted
	// quantity of the product, scanning factories in a stable order. When
	// forUpdate is true the matched row is locked. Returns ObjectNotFoundError
	// when no factory can satisfy the quantity.
	GetFirstWithStock(ctx context.Context, productID kernel.UUID, quantity int, forUpdate bool) (*warehouse.Entry, error)
}
