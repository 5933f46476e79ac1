package commands_test

import (
	"context"
	"time"

	"amsral/internal/core/application/usecases/commands"
	"amsral/internal/core/domain/model/billing"
	"amsral/internal/core/domain/model/customer"
	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/core/domain/model/order"
	"amsral/internal/core/domain/model/user"
	"amsral/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllIncomplete(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInDeliveredStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, inv *billing.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, inv *billing.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*billing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderStatusChanged(ctx context.Context, orderID int64, status order.Status) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishOrderEscalated(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

// MockUoW satisfies every unit of work flavor used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockIntakeUoWFactory struct{ mock.Mock }

func (m *MockIntakeUoWFactory) Create() commands.IntakeUoW {
	args := m.Called()
	return args.Get(0).(commands.IntakeUoW)
}

type MockBillingUoWFactory struct{ mock.Mock }

func (m *MockBillingUoWFactory) Create() commands.BillingUoW {
	args := m.Called()
	return args.Get(0).(commands.BillingUoW)
}
