package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"supplychain/cmd"
	httpadapter "supplychain/internal/adapters/in/http"
	"supplychain/internal/adapters/out/postgres/deliveryrepo"
	"supplychain/internal/adapters/out/postgres/orderrepo"
	"supplychain/internal/adapters/out/postgres/productrepo"
	"supplychain/internal/adapters/out/postgres/userrepo"
	"supplychain/internal/adapters/out/postgres/warehouserepo"
	"supplychain/internal/core/domain/model/account"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := cmd.LoadConfig()

	db := mustConnectDB(configs)
	mustMigrate(db)

	root := cmd.NewCompositionRoot(configs, db)
	mustEnsureAdmin(configs, &root)

	startWebServer(&root, configs)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func mustMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&productrepo.CategoryDTO{},
		&productrepo.ProductDTO{},
		&productrepo.FactoryDTO{},
		&warehouserepo.EntryDTO{},
		&orderrepo.SalePointDTO{},
		&orderrepo.OrderDTO{},
		&deliveryrepo.CarrierDTO{},
		&deliveryrepo.DeliveryDTO{},
		&userrepo.UserDTO{},
		&userrepo.UserGroupDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// mustEnsureAdmin bootstraps the superuser account on first start so a fresh
// deployment can be administered immediately.
func mustEnsureAdmin(configs cmd.Config, root *cmd.CompositionRoot) {
	if configs.AdminUsername == "" {
		return
	}

	ctx := context.Background()
	users := root.CreateUserRepository()

	_, err := users.GetByUsername(ctx, configs.AdminUsername)
	if err == nil {
		return
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		log.Fatalf("Failed to look up admin user: %v", err)
	}

	hash, err := account.HashPassword(configs.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin, err := account.NewUser(
		kernel.NewUUID(), configs.AdminUsername, "", hash, true, nil, nil, nil, nil)
	if err != nil {
		log.Fatalf("Failed to construct admin user: %v", err)
	}

	if err = users.Add(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
}

func startWebServer(root *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		root.CreateHTTPHandlers(),
		root.CreateAuthorizationPolicy(),
		root.RoleSource(),
		root.CreateUserRepository(),
	)

	auth := httpadapter.AuthMiddleware([]byte(configs.JWTSecret), root.CreateUserRepository())
	server.RegisterRoutes(e, auth)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
