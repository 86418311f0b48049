package queries_test

import (
	"context"
	"testing"
	"time"

	"beerorders/internal/adapters/out/postgres/beerrepo"
	"beerorders/internal/adapters/out/postgres/customerrepo"
	"beerorders/internal/adapters/out/postgres/orderrepo"
	"beerorders/internal/core/application/usecases/queries"
	"beerorders/internal/core/domain/model/beer"
	"beerorders/internal/core/domain/model/customer"
	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/core/domain/model/order"
	"beerorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}

type GetOrdersByCustomerQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetOrdersByCustomerQueryHandler
	orderRepo    *orderrepo.GormOrderRepository
	customerRepo *customerrepo.GormCustomerRepository
	beerRepo     *beerrepo.GormBeerRepository
	testCustomer *customer.Customer
	testBeer     *beer.Beer
}

func (suite *GetOrdersByCustomerQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&beerrepo.BeerDTO{},
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrdersByCustomerQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.customerRepo = customerrepo.NewGormCustomerRepository(db, &mockAggregateTracker{})
	suite.beerRepo = beerrepo.NewGormBeerRepository(db, &mockAggregateTracker{})

	suite.testBeer, err = beer.NewBeer(kernel.NewUUID(),
		"Galaxy Cat", "PALE_ALE", "0631234200036", decimal.NewFromFloat(12.95), 120)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.beerRepo.Add(ctx, suite.testBeer))
}

func (suite *GetOrdersByCustomerQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrdersByCustomerQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
	err = suite.db.Exec("TRUNCATE TABLE order_lines").Error
	suite.Require().NoError(err)
	err = suite.db.Exec("TRUNCATE TABLE customers").Error
	suite.Require().NoError(err)

	suite.testCustomer, err = customer.NewCustomer(kernel.NewUUID(),
		"Jane Doe", "jane.doe@example.com", "+15551234567")
	suite.Require().NoError(err)
	err = suite.customerRepo.Add(context.Background(), suite.testCustomer)
	suite.Require().NoError(err)
}

func (suite *GetOrdersByCustomerQueryHandlerTestSuite) TestHandle_UnknownCustomer_ReturnsNotFoundError() {
	query, err := queries.NewGetOrdersByCustomerQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Nil(result)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetOrdersByCustomerQueryHandlerTestSuite) TestHandle_CustomerWithoutOrders_ReturnsEmptySlice() {
	query, err := queries.NewGetOrdersByCustomerQuery(suite.testCustomer.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrdersByCustomerQueryHandlerTestSuite) TestHandle_ReturnsOnlyOwnOrdersWithLines() {
	ctx := context.Background()

	own := suite.createOrder(suite.testCustomer.ID(), 2)
	suite.Require().NoError(suite.orderRepo.Add(ctx, own))

	other, err := customer.NewCustomer(kernel.NewUUID(), "John Roe", "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.customerRepo.Add(ctx, other))

	foreign := suite.createOrder(other.ID(), 1)
	suite.Require().NoError(suite.orderRepo.Add(ctx, foreign))

	query, err := queries.NewGetOrdersByCustomerQuery(suite.testCustomer.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	suite.Equal(own.ID(), result[0].ID)
	suite.Equal(suite.testCustomer.ID(), result[0].CustomerID)
	suite.Equal(order.StatusNew, result[0].Status)
	suite.Require().Len(result[0].Lines, 2)

	for i, line := range own.Lines() {
		suite.Equal(line.ID(), result[0].Lines[i].ID)
		suite.Equal(suite.testBeer.ID(), result[0].Lines[i].BeerID)
		suite.Equal(suite.testBeer.Name(), result[0].Lines[i].BeerName)
		suite.Equal(suite.testBeer.Style(), result[0].Lines[i].BeerStyle)
		suite.Equal(suite.testBeer.UPC(), result[0].Lines[i].UPC)
		suite.Equal(line.Quantity(), result[0].Lines[i].Quantity)
	}
}

func (suite *GetOrdersByCustomerQueryHandlerTestSuite) TestHandle_MultipleOrders_OldestFirst() {
	ctx := context.Background()

	first := suite.createOrder(suite.testCustomer.ID(), 1)
	suite.Require().NoError(suite.orderRepo.Add(ctx, first))

	second := suite.createOrder(suite.testCustomer.ID(), 1)
	suite.Require().NoError(suite.orderRepo.Add(ctx, second))

	query, err := queries.NewGetOrdersByCustomerQuery(suite.testCustomer.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(first.ID(), result[0].ID)
	suite.Equal(second.ID(), result[1].ID)
	suite.False(result[0].CreatedAt.After(result[1].CreatedAt))
}

func (suite *GetOrdersByCustomerQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrdersByCustomerQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOrdersByCustomerQuery constructor")
}

func (suite *GetOrdersByCustomerQueryHandlerTestSuite) createOrder(
	customerID kernel.UUID, lineCount int,
) *order.Order {
	lines := make([]order.Line, 0, lineCount)
	for i := 0; i < lineCount; i++ {
		line, err := order.NewLine(kernel.NewUUID(), suite.testBeer.ID(), i+1)
		suite.Require().NoError(err)
		lines = append(lines, line)
	}

	o, err := order.NewOrder(kernel.NewUUID(), customerID, "", lines)
	suite.Require().NoError(err)
	return o
}

func TestGetOrdersByCustomerQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersByCustomerQueryHandlerTestSuite))
}
