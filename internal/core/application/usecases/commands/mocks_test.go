package commands_test

import (
	"context"
	"time"

	"dealersales/internal/core/application/usecases/commands"
	"dealersales/internal/core/domain/model/delivery"
	"dealersales/internal/core/domain/model/document"
	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/core/domain/model/payment"
	"dealersales/internal/core/domain/model/pricing"
	"dealersales/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// fixedClock pins handler time so tests assert exact stamps.
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type MockDocumentRepository struct{ mock.Mock }

func (m *MockDocumentRepository) Add(ctx context.Context, d *document.Document) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDocumentRepository) Update(ctx context.Context, d *document.Document) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDocumentRepository) Get(ctx context.Context, id kernel.UUID) (*document.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Document), args.Error(1)
}

func (m *MockDocumentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*document.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Document), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetAllForDocument(ctx context.Context, documentID kernel.UUID) ([]*payment.Payment, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) TotalForDocument(ctx context.Context, documentID kernel.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, documentID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetByDocument(ctx context.Context, documentID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

type MockPricePolicyRepository struct{ mock.Mock }

func (m *MockPricePolicyRepository) Add(ctx context.Context, p *pricing.Policy) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPricePolicyRepository) GetActiveForVehicle(ctx context.Context, vehicleID kernel.UUID, asOf time.Time) ([]*pricing.Policy, error) {
	args := m.Called(ctx, vehicleID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pricing.Policy), args.Error(1)
}

func (m *MockPricePolicyRepository) GetAllActive(ctx context.Context, asOf time.Time) ([]*pricing.Policy, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pricing.Policy), args.Error(1)
}

// txMock carries the transaction lifecycle shared by every unit of work mock.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockDocumentUoW struct{ txMock }

func (m *MockDocumentUoW) DocumentRepository() ports.DocumentRepository {
	args := m.Called()
	return args.Get(0).(ports.DocumentRepository)
}

type MockDocumentUoWFactory struct{ mock.Mock }

func (m *MockDocumentUoWFactory) Create() commands.DocumentUoW {
	args := m.Called()
	return args.Get(0).(commands.DocumentUoW)
}

type MockPaymentUoW struct{ txMock }

func (m *MockPaymentUoW) DocumentRepository() ports.DocumentRepository {
	args := m.Called()
	return args.Get(0).(ports.DocumentRepository)
}

func (m *MockPaymentUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockDeliveryUoW struct{ txMock }

func (m *MockDeliveryUoW) DocumentRepository() ports.DocumentRepository {
	args := m.Called()
	return args.Get(0).(ports.DocumentRepository)
}

func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockQuoteUoW struct{ txMock }

func (m *MockQuoteUoW) DocumentRepository() ports.DocumentRepository {
	args := m.Called()
	return args.Get(0).(ports.DocumentRepository)
}

func (m *MockQuoteUoW) PricePolicyRepository() ports.PricePolicyRepository {
	args := m.Called()
	return args.Get(0).(ports.PricePolicyRepository)
}

type MockQuoteUoWFactory struct{ mock.Mock }

func (m *MockQuoteUoWFactory) Create() commands.QuoteUoW {
	args := m.Called()
	return args.Get(0).(commands.QuoteUoW)
}

type MockPricePolicyUoW struct{ txMock }

func (m *MockPricePolicyUoW) PricePolicyRepository() ports.PricePolicyRepository {
	args := m.Called()
	return args.Get(0).(ports.PricePolicyRepository)
}

type MockPricePolicyUoWFactory struct{ mock.Mock }

func (m *MockPricePolicyUoWFactory) Create() commands.PricePolicyUoW {
	args := m.Called()
	return args.Get(0).(commands.PricePolicyUoW)
}
