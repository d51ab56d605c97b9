package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"laundryops/internal/adapters/out/postgres/orderrepo"
	"laundryops/internal/core/application/usecases/queries"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockLedgerProvider is a mock implementation of ports.LedgerProvider.
type MockLedgerProvider struct {
	mock.Mock
}

func (m *MockLedgerProvider) TotalPaidExpenses(ctx context.Context, unitID kernel.UUID, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, unitID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerProvider) TotalChemicalOut(ctx context.Context, unitID kernel.UUID, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, unitID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockUnitProvider is a mock implementation of ports.UnitProvider.
type MockUnitProvider struct {
	mock.Mock
}

func (m *MockUnitProvider) GetUnitPrefix(ctx context.Context, unitID kernel.UUID) (string, error) {
	args := m.Called(ctx, unitID)
	return args.String(0), args.Error(1)
}

func (m *MockUnitProvider) GetUnitIDs(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

// NetworkKPIsQueryIntegrationTestSuite exercises the KPI read model against
// real PostgreSQL, with the finance and administration collaborators mocked.
type NetworkKPIsQueryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *NetworkKPIsQueryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderEventDTO{},
	))
}

func (suite *NetworkKPIsQueryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items, order_events").Error)
}

func (suite *NetworkKPIsQueryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

var (
	kpiWindowFrom = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	kpiWindowTo   = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
)

func (suite *NetworkKPIsQueryIntegrationTestSuite) newHandler(unitIDs ...kernel.UUID) queries.GetNetworkKPIsQueryHandler {
	units := new(MockUnitProvider)
	units.On("GetUnitIDs", mock.Anything).Return(unitIDs, nil)

	ledger := new(MockLedgerProvider)
	ledger.On("TotalPaidExpenses", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, nil).Maybe()
	ledger.On("TotalChemicalOut", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, nil).Maybe()

	return queries.NewGetNetworkKPIsQueryHandler(suite.db, ledger, units)
}

func (suite *NetworkKPIsQueryIntegrationTestSuite) insertOrder(
	unitID kernel.UUID,
	seq int,
	status order.Sector,
	createdAt, promisedAt time.Time,
) {
	dto := orderrepo.OrderDTO{
		ID:          kernel.NewUUID().Bytes(),
		UnitID:      unitID.Bytes(),
		OrderNumber: fmt.Sprintf("MTZ-%03d/2025", seq),
		ClientName:  "ACME Hotel",
		Status:      int(status),
		PromisedAt:  promisedAt,
		CreatedAt:   createdAt,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *NetworkKPIsQueryIntegrationTestSuite) breakageFor(unitID kernel.UUID) int {
	query, err := queries.NewGetNetworkKPIsQuery(kpiWindowFrom, kpiWindowTo)
	suite.Require().NoError(err)

	response, err := suite.newHandler(unitID).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(response.Units, 1)
	suite.True(response.Units[0].UnitID.IsEqual(unitID))
	return response.Units[0].BreakageRatePct
}

func (suite *NetworkKPIsQueryIntegrationTestSuite) TestBreakageRate_StuckIntakeReadsFullRate() {
	unitID := kernel.NewUUID()
	createdAt := kpiWindowFrom.Add(2 * time.Hour)
	promisedAt := kpiWindowFrom.Add(6 * time.Hour) // before the window end

	// Nothing has been delivered; every order of the day sits overdue in
	// washing. The rate must read 100, not 0.
	for i := 0; i < 4; i++ {
		suite.insertOrder(unitID, i+1, order.Washing, createdAt, promisedAt)
	}

	suite.Equal(100, suite.breakageFor(unitID))
}

func (suite *NetworkKPIsQueryIntegrationTestSuite) TestBreakageRate_TerminalAndOnScheduleOrdersAreNotLate() {
	unitID := kernel.NewUUID()
	createdAt := kpiWindowFrom.Add(time.Hour)
	pastDue := kpiWindowFrom.Add(5 * time.Hour)
	stillDue := kpiWindowTo.Add(10 * time.Hour)

	suite.insertOrder(unitID, 1, order.Washing, createdAt, pastDue)    // late
	suite.insertOrder(unitID, 2, order.Delivered, createdAt, pastDue)  // done, never late
	suite.insertOrder(unitID, 3, order.Cancelled, createdAt, pastDue)  // closed, never late
	suite.insertOrder(unitID, 4, order.Ironing, createdAt, stillDue)   // on schedule

	suite.Equal(25, suite.breakageFor(unitID))
}

func (suite *NetworkKPIsQueryIntegrationTestSuite) TestBreakageRate_CountsOnlyTheWindowsIntake() {
	unitID := kernel.NewUUID()
	pastDue := kpiWindowFrom.Add(5 * time.Hour)

	// Overdue, but created the day before: not part of this window's intake.
	suite.insertOrder(unitID, 1, order.Washing, kpiWindowFrom.Add(-24*time.Hour), pastDue)
	// Other units never bleed into this unit's rate.
	suite.insertOrder(kernel.NewUUID(), 2, order.Washing, kpiWindowFrom.Add(time.Hour), pastDue)

	suite.Equal(0, suite.breakageFor(unitID))
}

func TestNetworkKPIsQueryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NetworkKPIsQueryIntegrationTestSuite))
}
