package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "dealersales/internal/adapters/out/postgres"
	"dealersales/internal/adapters/out/postgres/deliveryrepo"
	"dealersales/internal/adapters/out/postgres/documentrepo"
	"dealersales/internal/adapters/out/postgres/paymentrepo"
	"dealersales/internal/adapters/out/postgres/pricerepo"
	"dealersales/internal/core/domain/model/delivery"
	"dealersales/internal/core/domain/model/document"
	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/core/domain/model/payment"
	"dealersales/internal/core/domain/model/pricing"
	"dealersales/internal/core/ports"
	"dealersales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based unit of work and
// all four repositories against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&documentrepo.DocumentDTO{},
		&documentrepo.LineDTO{},
		&paymentrepo.PaymentDTO{},
		&deliveryrepo.DeliveryDTO{},
		&pricerepo.PolicyDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE documents, document_lines, payments, deliveries, price_policies").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.DocumentRepository())
	suite.NotNil(uow1.PaymentRepository())
	suite.NotNil(uow2.DeliveryRepository())
	suite.NotNil(uow2.PricePolicyRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Repeated begin should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "Commit without active transaction should fail")
	suite.Require().Error(uow.Rollback(ctx), "Rollback without active transaction should fail")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsDocumentWithLines() {
	ctx := context.Background()
	order := suite.newOrder(decimal.NewFromInt(1000), 2, decimal.NewFromInt(50))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DocumentRepository().Add(ctx, order))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().DocumentRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Equal(document.KindOrder, loaded.Kind())
	suite.Equal(document.StatusOpen, loaded.Status())
	suite.Len(loaded.Lines(), 1)
	suite.True(loaded.TotalValue().Equal(decimal.NewFromInt(1950)),
		"expected 1950, got %s", loaded.TotalValue())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	order := suite.newOrder(decimal.NewFromInt(500), 1, decimal.Zero)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DocumentRepository().Add(ctx, order))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().DocumentRepository().Get(ctx, order.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDocumentUpdate_PersistsStatus() {
	ctx := context.Background()
	now := utcNow()
	order := suite.newOrder(decimal.NewFromInt(500), 1, decimal.Zero)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DocumentRepository().Add(ctx, order))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(order.MarkPaid(now))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DocumentRepository().Update(ctx, order))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().DocumentRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Equal(document.StatusPaid, loaded.Status())
	suite.Require().NotNil(loaded.UpdatedAt())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPaymentLedger_AppendAndSum() {
	ctx := context.Background()
	now := utcNow()
	order := suite.newOrder(decimal.NewFromInt(1000), 1, decimal.Zero)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DocumentRepository().Add(ctx, order))

	first, err := payment.NewPayment(kernel.NewUUID(), order.ID(), payment.MethodCash,
		decimal.NewFromInt(600), nil, now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.PaymentRepository().Add(ctx, first))

	second, err := payment.NewPayment(kernel.NewUUID(), order.ID(), payment.MethodVNPay,
		decimal.NewFromInt(400), map[string]string{"txn_ref": "VNP-42"}, now.Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.PaymentRepository().Add(ctx, second))

	suite.Require().NoError(uow.Commit(ctx))

	repo := suite.factory.Create().PaymentRepository()

	total, err := repo.TotalForDocument(ctx, order.ID())
	suite.Require().NoError(err)
	suite.True(total.Equal(decimal.NewFromInt(1000)), "expected 1000, got %s", total)

	payments, err := repo.GetAllForDocument(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Require().Len(payments, 2)
	suite.True(payments[0].ID().IsEqual(first.ID()), "payments should come back oldest first")
	suite.Equal(map[string]string{"txn_ref": "VNP-42"}, payments[1].Metadata())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTotalForDocument_EmptyLedger() {
	ctx := context.Background()

	total, err := suite.factory.Create().PaymentRepository().TotalForDocument(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.True(total.IsZero(), "expected zero, got %s", total)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDelivery_RoundTripByDocument() {
	ctx := context.Background()
	now := utcNow()
	order := suite.newOrder(decimal.NewFromInt(500), 1, decimal.Zero)

	note := "call before arriving"
	d, err := delivery.NewDelivery(kernel.NewUUID(), order.ID(), now.AddDate(0, 0, 3), &note, now)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DocumentRepository().Add(ctx, order))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, d))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.DeliveryRepository().GetByDocument(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.StatusScheduled, loaded.Status())
	suite.Require().NotNil(loaded.HandoverNote())
	suite.Equal(note, *loaded.HandoverNote())

	suite.Require().NoError(loaded.Start())
	suite.Require().NoError(uow.DeliveryRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	reloaded, err := suite.factory.Create().DeliveryRepository().Get(ctx, loaded.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.StatusInTransit, reloaded.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDelivery_GetByDocumentNotFound() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer uow.Rollback(ctx)

	_, err := uow.DeliveryRepository().GetByDocument(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPricePolicies_ActiveWindowFilter() {
	ctx := context.Background()
	now := utcNow()
	vehicleID := kernel.NewUUID()
	dealerID := kernel.NewUUID()

	dealerScope, err := pricing.DealerScope(dealerID)
	suite.Require().NoError(err)

	global := suite.newPolicy(vehicleID, pricing.GlobalScope(), now.AddDate(0, -1, 0), nil)
	dealer := suite.newPolicy(vehicleID, dealerScope, now.AddDate(0, -2, 0), nil)
	expiredTo := now.AddDate(0, 0, -1)
	expired := suite.newPolicy(vehicleID, pricing.GlobalScope(), now.AddDate(0, -3, 0), &expiredTo)
	otherVehicle := suite.newPolicy(kernel.NewUUID(), pricing.GlobalScope(), now.AddDate(0, -1, 0), nil)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	for _, p := range []*pricing.Policy{global, dealer, expired, otherVehicle} {
		suite.Require().NoError(uow.PricePolicyRepository().Add(ctx, p))
	}
	suite.Require().NoError(uow.Commit(ctx))

	repo := suite.factory.Create().PricePolicyRepository()

	active, err := repo.GetActiveForVehicle(ctx, vehicleID, now)
	suite.Require().NoError(err)
	suite.Require().Len(active, 2)
	for _, p := range active {
		suite.True(p.VehicleID().IsEqual(vehicleID))
		suite.True(p.ActiveAt(now))
	}

	all, err := repo.GetAllActive(ctx, now)
	suite.Require().NoError(err)
	suite.Len(all, 3)
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(
	unitPrice decimal.Decimal,
	qty int,
	discount decimal.Decimal,
) *document.Document {
	line, err := document.NewLine(kernel.NewUUID(), kernel.NewUUID(), "GP-WHITE", qty, unitPrice, discount)
	suite.Require().NoError(err)

	order, err := document.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		nil,
		[]document.Line{line},
		utcNow(),
	)
	suite.Require().NoError(err)

	return order
}

func (suite *UnitOfWorkIntegrationTestSuite) newPolicy(
	vehicleID kernel.UUID,
	scope pricing.Scope,
	validFrom time.Time,
	validTo *time.Time,
) *pricing.Policy {
	policy, err := pricing.NewPolicy(
		kernel.NewUUID(),
		vehicleID,
		scope,
		decimal.NewFromInt(30000),
		decimal.NewFromInt(27000),
		validFrom,
		validTo,
		kernel.NewUUID(),
		utcNow(),
	)
	suite.Require().NoError(err)

	return policy
}

// utcNow truncates to microseconds so values survive the PostgreSQL
// timestamp round trip unchanged.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
