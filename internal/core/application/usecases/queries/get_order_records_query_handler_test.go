package queries_test

import (
	"context"
	"testing"
	"time"

	"amsral/internal/adapters/out/postgres/orderrepo"
	"amsral/internal/core/application/usecases/queries"
	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderRecordsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderRecordsQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderRecordsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.RecordDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderRecordsQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderRecordsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderRecordsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_records, orders").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderRecordsQueryHandlerTestSuite) TestHandle_NoRecords_ReturnsEmptySlice() {
	aggregate := suite.createOrder()

	query, err := queries.NewGetOrderRecordsQuery(aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrderRecordsQueryHandlerTestSuite) TestHandle_SortedByTrackingNumber() {
	aggregate := suite.createOrder()
	suite.addRecord(aggregate, 'B', 3)
	suite.addRecord(aggregate, 'A', 5)
	suite.addRecord(aggregate, 'C', 7)
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), aggregate))

	query, err := queries.NewGetOrderRecordsQuery(aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	for i := range len(result) - 1 {
		suite.Less(result[i].TrackingNumber, result[i+1].TrackingNumber,
			"Records should be sorted by tracking number")
	}
}

func (suite *GetOrderRecordsQueryHandlerTestSuite) TestHandle_MapsProcessingState() {
	aggregate := suite.createOrder()
	record := suite.addRecord(aggregate, 'A', 10)
	suite.Require().NoError(aggregate.AssignRecordProcessing(record.ID(), []string{"Press"}, "W2", "D1"))
	suite.Require().NoError(aggregate.CompleteRecord(record.ID(), 8))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), aggregate))

	query, err := queries.NewGetOrderRecordsQuery(aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	row := result[0]
	suite.True(record.ID().IsEqual(row.ID))
	suite.Equal(record.TrackingNumber().String(), row.TrackingNumber)
	suite.Equal(10, row.Quantity)
	suite.Equal("Normal", row.WashType)
	suite.Equal("W2", row.WashingMachine)
	suite.Equal("D1", row.DryingMachine)
	suite.Equal(8, row.DeliveredQuantity)
	suite.Equal(2, row.ReturnQuantity)
	suite.Equal("Completed", row.Status)
}

func (suite *GetOrderRecordsQueryHandlerTestSuite) TestHandle_ScopedToOneOrder() {
	first := suite.createOrder()
	suite.addRecord(first, 'A', 5)
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), first))

	second := suite.createOrder()
	suite.addRecord(second, 'A', 9)
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), second))

	query, err := queries.NewGetOrderRecordsQuery(first.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(5, result[0].Quantity)
}

func (suite *GetOrderRecordsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderRecordsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOrderRecordsQuery constructor")
}

func (suite *GetOrderRecordsQueryHandlerTestSuite) createOrder() *order.Order {
	aggregate, err := order.NewOrder(kernel.NewUUID(), "test order")
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *GetOrderRecordsQueryHandlerTestSuite) addRecord(aggregate *order.Order, suffix byte, quantity int) *order.Record {
	trackingNumber, err := kernel.NewTrackingNumber(aggregate.ID(), suffix)
	suite.Require().NoError(err)

	record, err := order.NewRecord(kernel.NewUUID(), trackingNumber, quantity, order.WashNormal)
	suite.Require().NoError(err)

	suite.Require().NoError(aggregate.AddRecord(record))
	return record
}

func TestGetOrderRecordsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderRecordsQueryHandlerTestSuite))
}
