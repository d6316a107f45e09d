package queries_test

import (
	"context"
	"testing"
	"time"

	"dealersales/internal/adapters/out/postgres/documentrepo"
	"dealersales/internal/adapters/out/postgres/paymentrepo"
	"dealersales/internal/core/application/usecases/queries"
	"dealersales/internal/core/domain/model/document"
	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/core/domain/model/payment"
	"dealersales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetPaymentSummaryQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetPaymentSummaryQueryHandler
	docRepo     *documentrepo.GormDocumentRepository
	paymentRepo *paymentrepo.GormPaymentRepository
}

func (suite *GetPaymentSummaryQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&documentrepo.DocumentDTO{}, &documentrepo.LineDTO{}, &paymentrepo.PaymentDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetPaymentSummaryQueryHandler(db)
	suite.docRepo = documentrepo.NewGormDocumentRepository(db, &mockAggregateTracker{})
	suite.paymentRepo = paymentrepo.NewGormPaymentRepository(db, &mockAggregateTracker{})
}

func (suite *GetPaymentSummaryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetPaymentSummaryQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE documents, document_lines, payments").Error
	suite.Require().NoError(err)
}

func (suite *GetPaymentSummaryQueryHandlerTestSuite) TestHandle_UnknownDocument_ReturnsNotFound() {
	query, err := queries.NewGetPaymentSummaryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetPaymentSummaryQueryHandlerTestSuite) TestHandle_EmptyLedger_FullBalanceRemaining() {
	order := suite.seedOrder(decimal.NewFromInt(1000), 2, decimal.NewFromInt(100))

	query, err := queries.NewGetPaymentSummaryQuery(order.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.TotalValue.Equal(decimal.NewFromInt(1900)), "got %s", result.TotalValue)
	suite.True(result.TotalPaid.IsZero())
	suite.True(result.RemainingBalance.Equal(decimal.NewFromInt(1900)))
	suite.Empty(result.Payments)
}

func (suite *GetPaymentSummaryQueryHandlerTestSuite) TestHandle_WithPayments_SummarizesLedger() {
	ctx := context.Background()
	order := suite.seedOrder(decimal.NewFromInt(1000), 1, decimal.Zero)
	now := time.Now().UTC().Truncate(time.Microsecond)

	first := suite.seedPayment(order.ID(), payment.MethodCash, decimal.NewFromInt(300), now)
	second := suite.seedPayment(order.ID(), payment.MethodMoMo, decimal.NewFromInt(200), now.Add(time.Minute))

	query, err := queries.NewGetPaymentSummaryQuery(order.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(result.TotalValue.Equal(decimal.NewFromInt(1000)))
	suite.True(result.TotalPaid.Equal(decimal.NewFromInt(500)))
	suite.True(result.RemainingBalance.Equal(decimal.NewFromInt(500)))

	suite.Require().Len(result.Payments, 2)
	suite.True(result.Payments[0].PaymentID.IsEqual(first.ID()), "entries should come back oldest first")
	suite.Equal(string(payment.MethodCash), result.Payments[0].Method)
	suite.True(result.Payments[1].PaymentID.IsEqual(second.ID()))
	suite.True(result.Payments[1].Amount.Equal(decimal.NewFromInt(200)))
}

func (suite *GetPaymentSummaryQueryHandlerTestSuite) seedOrder(
	unitPrice decimal.Decimal,
	qty int,
	discount decimal.Decimal,
) *document.Document {
	line, err := document.NewLine(kernel.NewUUID(), kernel.NewUUID(), "GP-BLACK", qty, unitPrice, discount)
	suite.Require().NoError(err)

	order, err := document.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		nil,
		[]document.Line{line},
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)

	err = suite.docRepo.Add(context.Background(), order)
	suite.Require().NoError(err)

	return order
}

func (suite *GetPaymentSummaryQueryHandlerTestSuite) seedPayment(
	documentID kernel.UUID,
	method payment.Method,
	amount decimal.Decimal,
	paidAt time.Time,
) *payment.Payment {
	p, err := payment.NewPayment(kernel.NewUUID(), documentID, method, amount, nil, paidAt)
	suite.Require().NoError(err)

	err = suite.paymentRepo.Add(context.Background(), p)
	suite.Require().NoError(err)

	return p
}

func TestGetPaymentSummaryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPaymentSummaryQueryHandlerTestSuite))
}

// mockAggregateTracker satisfies the repositories' tracker dependency for
// test seeding.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}
