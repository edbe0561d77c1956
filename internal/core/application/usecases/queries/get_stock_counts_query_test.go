package queries_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetStockCountsQuery_ValidInput(t *testing.T) {
	factoryID := kernel.NewUUID()
	query, err := queries.NewGetStockCountsQuery(factoryID)
	require.NoError(t, err)
	assert.Equal(t, factoryID, query.FactoryID())
	assert.NoError(t, query.Validate())
}

func TestNewGetStockCountsQuery_InvalidFactoryID(t *testing.T) {
	_, err := queries.NewGetStockCountsQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetStockCountsQuery_NotConstructed(t *testing.T) {
	var query queries.GetStockCountsQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetStockCountsQueryIsNotConstructed)
}
