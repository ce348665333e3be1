package cmd

import (
	"log/slog"
	"os"

	"vehicletrack/internal/adapters/out/postgres"
	"vehicletrack/internal/core/application/usecases/commands"
	"vehicletrack/internal/core/application/usecases/queries"
	"vehicletrack/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.EventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) UnitOfWorkFactory() ports.UnitOfWorkFactory {
	return &c.uowFactory
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVehicleCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateVehicleCommandHandler() commands.UpdateVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateVehicleCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateChangeVehicleStatusCommandHandler() commands.ChangeVehicleStatusCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeVehicleStatusCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDeleteVehicleCommandHandler() commands.DeleteVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteVehicleCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateProductionOrderCommandHandler() commands.CreateProductionOrderCommandHandler {
	var f commands.ProductionOrderUoWFactory = FuncProductionOrderUoWFactory(func() commands.ProductionOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductionOrderCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateProductionOrderCommandHandler() commands.UpdateProductionOrderCommandHandler {
	var f commands.ProductionOrderUoWFactory = FuncProductionOrderUoWFactory(func() commands.ProductionOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductionOrderCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAdvanceProductionStageCommandHandler() commands.AdvanceProductionStageCommandHandler {
	var f commands.ProductionOrderUoWFactory = FuncProductionOrderUoWFactory(func() commands.ProductionOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceProductionStageCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDeleteProductionOrderCommandHandler() commands.DeleteProductionOrderCommandHandler {
	var f commands.ProductionOrderUoWFactory = FuncProductionOrderUoWFactory(func() commands.ProductionOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteProductionOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePurchaseOrderCommandHandler() commands.CreatePurchaseOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePurchaseOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePurchaseOrderCommandHandler() commands.UpdatePurchaseOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePurchaseOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangePurchaseOrderStatusCommandHandler() commands.ChangePurchaseOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangePurchaseOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateDeletePurchaseOrderCommandHandler() commands.DeletePurchaseOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeletePurchaseOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateInventoryItemCommandHandler() commands.CreateInventoryItemCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateInventoryItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateInventoryItemCommandHandler() commands.UpdateInventoryItemCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateInventoryItemCommandHandler(f)
}

func (c *CompositionRoot) CreateAdjustInventoryStockCommandHandler() commands.AdjustInventoryStockCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdjustInventoryStockCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteInventoryItemCommandHandler() commands.DeleteInventoryItemCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteInventoryItemCommandHandler(f)
}

func (c *CompositionRoot) CreateGetVehiclesQueryHandler() queries.GetVehiclesQueryHandler {
	return queries.NewGetVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductionOrdersQueryHandler() queries.GetProductionOrdersQueryHandler {
	return queries.NewGetProductionOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPurchaseOrdersQueryHandler() queries.GetPurchaseOrdersQueryHandler {
	return queries.NewGetPurchaseOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventoryItemsQueryHandler() queries.GetInventoryItemsQueryHandler {
	return queries.NewGetInventoryItemsQueryHandler(c.gormDB)
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncProductionOrderUoWFactory func() commands.ProductionOrderUoW

func (f FuncProductionOrderUoWFactory) Create() commands.ProductionOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}
