package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"supplychain/internal/adapters/out/postgres"
	"supplychain/internal/adapters/out/postgres/orderrepo"
	"supplychain/internal/adapters/out/postgres/productrepo"
	"supplychain/internal/adapters/out/postgres/warehouserepo"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/warehouse"
	"supplychain/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that a stock debit and the order it
// backs commit or roll back together as one transaction.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&productrepo.CategoryDTO{},
		&productrepo.ProductDTO{},
		&productrepo.FactoryDTO{},
		&warehouserepo.EntryDTO{},
		&orderrepo.SalePointDTO{},
		&orderrepo.OrderDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE product_orders, factory_warehouses, factory_products, products, product_categories, factories, sale_points CASCADE",
	).Error)

	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// fixture seeds a factory, a product, a sale point and a stock entry of 100,
// returning the three identifiers.
func (suite *UnitOfWorkIntegrationTestSuite) fixture() (factoryID, productID, salePointID kernel.UUID) {
	factoryID = kernel.NewUUID()
	productID = kernel.NewUUID()
	salePointID = kernel.NewUUID()

	suite.Require().NoError(suite.db.Create(&productrepo.FactoryDTO{
		ID: factoryID.Bytes(), Name: "assembly plant",
	}).Error)
	suite.Require().NoError(suite.db.Create(&productrepo.ProductDTO{
		ID:     productID.Bytes(),
		Name:   "ball bearing",
		Price:  decimal.RequireFromString("3.50"),
		Weight: decimal.RequireFromString("0.03"),
	}).Error)
	suite.Require().NoError(suite.db.Create(&orderrepo.SalePointDTO{
		ID: salePointID.Bytes(), Name: "downtown store",
	}).Error)

	entry, err := warehouse.NewEntry(kernel.NewUUID(), factoryID, productID, 100)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	ctx := context.Background()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.WarehouseRepository().Add(ctx, entry))
	suite.Require().NoError(uow.Commit(ctx))

	return factoryID, productID, salePointID
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsDebitAndOrderTogether() {
	ctx := context.Background()
	factoryID, productID, salePointID := suite.fixture()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	entry, err := uow.WarehouseRepository().GetByFactoryAndProduct(ctx, factoryID, productID, true)
	suite.Require().NoError(err)
	suite.Require().NoError(entry.Debit(10))
	suite.Require().NoError(uow.WarehouseRepository().Update(ctx, entry))

	placed, err := order.NewOrder(kernel.NewUUID(), productID, salePointID, 10, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, placed))

	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	loaded, err := check.WarehouseRepository().GetByFactoryAndProduct(ctx, factoryID, productID, false)
	suite.Require().NoError(err)
	suite.Equal(90, loaded.Quantity())

	stored, err := check.OrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProcessing, stored.Status())
	suite.Equal(10, stored.Quantity())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_LeavesLedgerAndOrdersUntouched() {
	ctx := context.Background()
	factoryID, productID, salePointID := suite.fixture()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	entry, err := uow.WarehouseRepository().GetByFactoryAndProduct(ctx, factoryID, productID, true)
	suite.Require().NoError(err)
	suite.Require().NoError(entry.Debit(10))
	suite.Require().NoError(uow.WarehouseRepository().Update(ctx, entry))

	placed, err := order.NewOrder(kernel.NewUUID(), productID, salePointID, 10, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, placed))

	suite.Require().NoError(uow.Rollback(ctx))

	check := suite.factory.Create()
	loaded, err := check.WarehouseRepository().GetByFactoryAndProduct(ctx, factoryID, productID, false)
	suite.Require().NoError(err)
	suite.Equal(100, loaded.Quantity())

	_, err = check.OrderRepository().Get(ctx, placed.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

// TestConcurrentDebits_SerializeOnRowLock runs two transactions racing to
// debit the same ledger row. The FOR UPDATE read makes the second transaction
// wait for the first commit and then re-evaluate the quantity predicate, so
// with stock for only one debit exactly one wins and the ledger never goes
// negative.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentDebits_SerializeOnRowLock() {
	ctx := context.Background()
	factoryID, productID, _ := suite.fixture()

	const want = 60 // two debits of 60 cannot both fit into 100

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			uow := suite.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				results <- err
				return
			}

			entry, err := uow.WarehouseRepository().GetFirstWithStock(ctx, productID, want, true)
			if err != nil {
				_ = uow.Rollback(ctx)
				results <- err
				return
			}

			if err = entry.Debit(want); err != nil {
				_ = uow.Rollback(ctx)
				results <- err
				return
			}

			if err = uow.WarehouseRepository().Update(ctx, entry); err != nil {
				_ = uow.Rollback(ctx)
				results <- err
				return
			}

			results <- uow.Commit(ctx)
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, outOfStock int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, errs.ErrObjectNotFound):
			outOfStock++
		default:
			suite.Require().NoError(err)
		}
	}

	suite.Equal(1, succeeded)
	suite.Equal(1, outOfStock)

	check := suite.factory.Create()
	loaded, err := check.WarehouseRepository().GetByFactoryAndProduct(ctx, factoryID, productID, false)
	suite.Require().NoError(err)
	suite.Equal(40, loaded.Quantity())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackWithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func TestUnitOfWorkIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
