package queries_test

import (
	"context"
	"testing"
	"time"

	"dealersales/internal/adapters/out/postgres/documentrepo"
	"dealersales/internal/core/application/usecases/queries"
	"dealersales/internal/core/domain/model/document"
	"dealersales/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOpenOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOpenOrdersQueryHandler
	docRepo   *documentrepo.GormDocumentRepository
}

func (suite *GetOpenOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&documentrepo.DocumentDTO{}, &documentrepo.LineDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOpenOrdersQueryHandler(db)
	suite.docRepo = documentrepo.NewGormDocumentRepository(db, &mockAggregateTracker{})
}

func (suite *GetOpenOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOpenOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE documents, document_lines").Error
	suite.Require().NoError(err)
}

func (suite *GetOpenOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetOpenOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOpenOrdersQueryHandlerTestSuite) TestHandle_MixedDocuments_ReturnsOnlyOpenOrders() {
	now := time.Now().UTC().Truncate(time.Microsecond)

	older := suite.seedDocument(document.KindOrder, now.Add(-time.Hour))
	newer := suite.seedDocument(document.KindOrder, now)

	paid := suite.seedDocument(document.KindOrder, now)
	suite.Require().NoError(paid.MarkPaid(now))
	suite.Require().NoError(suite.docRepo.Update(context.Background(), paid))

	suite.seedDocument(document.KindQuote, now)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetOpenOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(older.ID()), "orders should come back oldest first")
	suite.True(result[1].ID.IsEqual(newer.ID()))
	suite.True(result[0].DealerID.IsEqual(older.DealerID()))
}

func (suite *GetOpenOrdersQueryHandlerTestSuite) seedDocument(kind document.Kind, createdAt time.Time) *document.Document {
	line, err := document.NewLine(kernel.NewUUID(), kernel.NewUUID(), "SF-RED", 1,
		decimal.NewFromInt(25000), decimal.Zero)
	suite.Require().NoError(err)

	var doc *document.Document
	switch kind {
	case document.KindQuote:
		doc, err = document.NewQuote(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), nil, []document.Line{line}, createdAt)
	default:
		doc, err = document.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), nil, []document.Line{line}, createdAt)
	}
	suite.Require().NoError(err)

	err = suite.docRepo.Add(context.Background(), doc)
	suite.Require().NoError(err)

	return doc
}

func TestGetOpenOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOpenOrdersQueryHandlerTestSuite))
}
