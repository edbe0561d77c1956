package cmd

import (
	"supplychain/internal/adapters/in/http"
	"supplychain/internal/adapters/out/postgres"
	"supplychain/internal/adapters/out/postgres/userrepo"
	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/account"
	"supplychain/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	roleSource account.RoleSource
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	roleSource := account.ByAffiliation
	if config.RoleSource == "group" {
		roleSource = account.ByGroup
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		roleSource: roleSource,
	}
}

func (c *CompositionRoot) RoleSource() account.RoleSource {
	return c.roleSource
}

func (c *CompositionRoot) CreateAuthorizationPolicy() services.AuthorizationPolicy {
	return services.NewAuthorizationPolicy(c.roleSource)
}

func (c *CompositionRoot) CreateUserRepository() *userrepo.GormUserRepository {
	return userrepo.NewGormUserRepository(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPHandlers() http.Handlers {
	return http.Handlers{
		PlaceOrder:            c.CreatePlaceOrderCommandHandler(),
		EditOrder:             c.CreateEditOrderCommandHandler(),
		UpdateOrderStatus:     c.CreateUpdateOrderStatusCommandHandler(),
		BulkUpdateOrderStatus: c.CreateBulkUpdateOrderStatusCommandHandler(),
		AdjustStock:           c.CreateAdjustStockCommandHandler(),
		SetStockCounts:        c.CreateSetStockCountsCommandHandler(),
		RemoveStock:           c.CreateRemoveStockCommandHandler(),
		CreateProduct:         c.CreateCreateProductCommandHandler(),
		DeleteProduct:         c.CreateDeleteProductCommandHandler(),
		CreateDelivery:        c.CreateCreateDeliveryCommandHandler(),
		GetOrders:             c.CreateGetOrdersQueryHandler(),
		GetStockCounts:        c.CreateGetStockCountsQueryHandler(),
		GetStockQuantity:      c.CreateGetStockQuantityQueryHandler(),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateBulkUpdateOrderStatusCommandHandler() commands.BulkUpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBulkUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAdjustStockCommandHandler() commands.AdjustStockCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdjustStockCommandHandler(f)
}

func (c *CompositionRoot) CreateSetStockCountsCommandHandler() commands.SetStockCountsCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetStockCountsCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveStockCommandHandler() commands.RemoveStockCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveStockCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockCountsQueryHandler() queries.GetStockCountsQueryHandler {
	return queries.NewGetStockCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockQuantityQueryHandler() queries.GetStockQuantityQueryHandler {
	return queries.NewGetStockQuantityQueryHandler(c.gormDB)
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
