package cmd

import (
	"canteen/internal/adapters/out/postgres"
	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot builds the application's object graph: command handlers
// get fresh units of work per operation, query handlers share the raw
// connection.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetQueueStatusQueryHandler() queries.GetQueueStatusQueryHandler {
	return queries.NewGetQueueStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetKitchenQueueQueryHandler() queries.GetKitchenQueueQueryHandler {
	return queries.NewGetKitchenQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDailySummaryQueryHandler() queries.GetDailySummaryQueryHandler {
	return queries.NewGetDailySummaryQueryHandler(c.gormDB)
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
