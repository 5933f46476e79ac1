package cmd

import (
	"amsral/internal/adapters/out/postgres"
	"amsral/internal/core/application/usecases/commands"
	"amsral/internal/core/application/usecases/queries"
	"amsral/internal/core/domain/services"
	"amsral/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	allocator  services.TrackingAllocator
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.EventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		allocator:  services.NewTrackingAllocator(),
	}
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddOrderRecordCommandHandler() commands.AddOrderRecordCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderRecordCommandHandler(f, c.allocator)
}

func (c *CompositionRoot) CreateAssignRecordProcessingCommandHandler() commands.AssignRecordProcessingCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRecordProcessingCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteRecordCommandHandler() commands.CompleteRecordCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteRecordCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkOrderDeliveredCommandHandler() commands.MarkOrderDeliveredCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderDeliveredCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() commands.CreateInvoiceCommandHandler {
	var f commands.BillingUoWFactory = FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateInvoiceCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateUserCommandHandler(f)
}

func (c *CompositionRoot) CreateEscalateStaleOrdersCommandHandler() commands.EscalateStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEscalateStaleOrdersCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateBillDeliveredOrdersCommandHandler() commands.BillDeliveredOrdersCommandHandler {
	var f commands.BillingUoWFactory = FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBillDeliveredOrdersCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetIncompleteOrdersQueryHandler() queries.GetIncompleteOrdersQueryHandler {
	return queries.NewGetIncompleteOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderRecordsQueryHandler() queries.GetOrderRecordsQueryHandler {
	return queries.NewGetOrderRecordsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardCountsQueryHandler() queries.GetDashboardCountsQueryHandler {
	return queries.NewGetDashboardCountsQueryHandler(c.gormDB)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncBillingUoWFactory func() commands.BillingUoW

func (f FuncBillingUoWFactory) Create() commands.BillingUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
