package queries_test

import (
	"context"
	"testing"
	"time"

	"amsral/internal/adapters/out/postgres/customerrepo"
	"amsral/internal/adapters/out/postgres/orderrepo"
	"amsral/internal/core/application/usecases/queries"
	"amsral/internal/core/domain/model/customer"
	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDashboardCountsQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetDashboardCountsQueryHandler
	orderRepo    *orderrepo.GormOrderRepository
	customerRepo *customerrepo.GormCustomerRepository
}

func (suite *GetDashboardCountsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&customerrepo.CustomerDTO{}, &orderrepo.OrderDTO{}, &orderrepo.RecordDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetDashboardCountsQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.customerRepo = customerrepo.NewGormCustomerRepository(db, &mockAggregateTracker{})
}

func (suite *GetDashboardCountsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDashboardCountsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_records, orders, customers").Error
	suite.Require().NoError(err)
}

func (suite *GetDashboardCountsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsZeroCounts() {
	query := queries.NewGetDashboardCountsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Zero(result.PendingOrders)
	suite.Zero(result.ProcessingOrders)
	suite.Zero(result.CompletedOrders)
	suite.Zero(result.DeliveredOrders)
	suite.Zero(result.ActiveCustomers)
}

func (suite *GetDashboardCountsQueryHandlerTestSuite) TestHandle_CountsByWorkflowStage() {
	suite.addCustomer(true)
	suite.addCustomer(true)
	suite.addCustomer(false)

	suite.createOrderInStage(order.Pending)
	suite.createOrderInStage(order.Pending)
	suite.createOrderInStage(order.Processing)
	suite.createOrderInStage(order.Completed)
	suite.createOrderInStage(order.Delivered)

	query := queries.NewGetDashboardCountsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(2, result.PendingOrders)
	suite.Equal(1, result.ProcessingOrders)
	suite.Equal(1, result.CompletedOrders)
	suite.Equal(1, result.DeliveredOrders)
	suite.Equal(2, result.ActiveCustomers, "Inactive customers should not be counted")
}

func (suite *GetDashboardCountsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetDashboardCountsQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetDashboardCountsQuery constructor")
}

func (suite *GetDashboardCountsQueryHandlerTestSuite) addCustomer(active bool) {
	c, err := customer.NewCustomer(kernel.NewUUID(), "Customer", "555-0100", "1 Main St")
	suite.Require().NoError(err)
	if !active {
		c.Deactivate()
	}

	err = suite.customerRepo.Add(context.Background(), c)
	suite.Require().NoError(err)
}

// createOrderInStage persists an order driven to the requested workflow stage.
func (suite *GetDashboardCountsQueryHandlerTestSuite) createOrderInStage(status order.Status) {
	ctx := context.Background()

	aggregate, err := order.NewOrder(kernel.NewUUID(), "dashboard order")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	if status == order.Pending {
		return
	}

	trackingNumber, err := kernel.NewTrackingNumber(aggregate.ID(), 'A')
	suite.Require().NoError(err)
	record, err := order.NewRecord(kernel.NewUUID(), trackingNumber, 5, order.WashNormal)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AddRecord(record))
	suite.Require().NoError(aggregate.AssignRecordProcessing(record.ID(), nil, "W1", ""))

	if status >= order.Completed {
		suite.Require().NoError(aggregate.CompleteRecord(record.ID(), 5))
	}
	if status >= order.Delivered {
		suite.Require().NoError(aggregate.Deliver())
	}

	suite.Require().NoError(suite.orderRepo.Update(ctx, aggregate))
}

func TestGetDashboardCountsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDashboardCountsQueryHandlerTestSuite))
}
