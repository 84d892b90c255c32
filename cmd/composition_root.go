package cmd

import (
	"packnow/internal/adapters/out/postgres"
	"packnow/internal/core/application/usecases/commands"
	"packnow/internal/core/application/usecases/queries"
	"packnow/internal/core/domain/model/material"
	"packnow/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	estimator  services.MaterialEstimator
	engine     services.PricingEngine
	dispatcher services.PackerDispatcher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	tariff := services.DefaultTariff()
	tariff.BasePackingFee = config.BasePackingFee
	tariff.PricePerKm = config.PricePerKm
	tariff.UrgentMultiplier = config.UrgentMultiplier

	catalog := material.DefaultCatalog()

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		estimator:  services.NewMaterialEstimator(catalog, material.DefaultBoxTiers()),
		engine:     services.NewPricingEngine(catalog, tariff),
		dispatcher: services.NewPackerDispatcher(config.SearchRadiusKm),
	}
}

// MaterialEstimator exposes the shared estimator for quote endpoints.
func (c *CompositionRoot) MaterialEstimator() services.MaterialEstimator {
	return c.estimator
}

// PricingEngine exposes the shared pricing engine for quote endpoints.
func (c *CompositionRoot) PricingEngine() services.PricingEngine {
	return c.engine
}

// LowStockThreshold exposes the configured restock threshold.
func (c *CompositionRoot) LowStockThreshold() int {
	return c.config.LowStockThreshold
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.estimator, c.engine)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.config.LowStockThreshold)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignPackerCommandHandler() commands.AssignPackerCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPackerCommandHandler(f, c.dispatcher, c.engine, c.config.LowStockThreshold)
}

func (c *CompositionRoot) CreateCreatePackerCommandHandler() commands.CreatePackerCommandHandler {
	var f commands.PackerUoWFactory = FuncPackerUoWFactory(func() commands.PackerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePackerCommandHandler(f)
}

func (c *CompositionRoot) CreateRestockPackerCommandHandler() commands.RestockPackerCommandHandler {
	var f commands.PackerUoWFactory = FuncPackerUoWFactory(func() commands.PackerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRestockPackerCommandHandler(f, c.config.LowStockThreshold)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnassignedOrdersQueryHandler() queries.GetUnassignedOrdersQueryHandler {
	return queries.NewGetUnassignedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllPackersQueryHandler() queries.GetAllPackersQueryHandler {
	return queries.NewGetAllPackersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockPackersQueryHandler() queries.GetLowStockPackersQueryHandler {
	return queries.NewGetLowStockPackersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPackerUoWFactory func() commands.PackerUoW

func (f FuncPackerUoWFactory) Create() commands.PackerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
