package cmd

import (
	"beerorders/internal/adapters/out/callback"
	"beerorders/internal/adapters/out/postgres"
	"beerorders/internal/core/application/usecases/commands"
	"beerorders/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   *callback.HTTPNotifier
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   callback.NewHTTPNotifier(),
	}
}

func (c *CompositionRoot) CreateCreateBeerCommandHandler() commands.CreateBeerCommandHandler {
	var f commands.BeerUoWFactory = FuncBeerUoWFactory(func() commands.BeerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBeerCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateBeerCommandHandler() commands.UpdateBeerCommandHandler {
	var f commands.BeerUoWFactory = FuncBeerUoWFactory(func() commands.BeerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateBeerCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteBeerCommandHandler() commands.DeleteBeerCommandHandler {
	var f commands.BeerUoWFactory = FuncBeerUoWFactory(func() commands.BeerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteBeerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchCallbacksCommandHandler() commands.DispatchCallbacksCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchCallbacksCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateGetBeerByIDQueryHandler() queries.GetBeerByIDQueryHandler {
	return queries.NewGetBeerByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllBeersQueryHandler() queries.GetAllBeersQueryHandler {
	return queries.NewGetAllBeersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerByIDQueryHandler() queries.GetCustomerByIDQueryHandler {
	return queries.NewGetCustomerByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCustomersQueryHandler() queries.GetAllCustomersQueryHandler {
	return queries.NewGetAllCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerByEmailQueryHandler() queries.GetCustomerByEmailQueryHandler {
	return queries.NewGetCustomerByEmailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByCustomerQueryHandler() queries.GetOrdersByCustomerQueryHandler {
	return queries.NewGetOrdersByCustomerQueryHandler(c.gormDB)
}

type FuncBeerUoWFactory func() commands.BeerUoW

func (f FuncBeerUoWFactory) Create() commands.BeerUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
