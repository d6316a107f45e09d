package commands_test

import (
	"testing"
	"time"

	"dealersales/internal/core/application/usecases/commands"
	"dealersales/internal/core/domain/model/document"
	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/core/domain/model/pricing"
	"dealersales/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func activePolicy(t *testing.T, vehicleID kernel.UUID, msrp int64) *pricing.Policy {
	t.Helper()

	p, err := pricing.NewPolicy(
		kernel.NewUUID(), vehicleID, pricing.GlobalScope(),
		decimal.NewFromInt(msrp), decimal.NewFromInt(msrp/2),
		time.Now().UTC().AddDate(0, 0, -30), nil,
		kernel.NewUUID(), time.Now().UTC(),
	)
	require.NoError(t, err)
	return p
}

func quoteCommand(t *testing.T, vehicleID kernel.UUID) commands.CreateQuoteCommand {
	t.Helper()

	line, err := commands.NewLineRequest(vehicleID, "RED", 2, decimal.NewFromInt(50))
	require.NoError(t, err)

	cmd, err := commands.NewCreateQuoteCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		[]commands.LineRequest{line}, kernel.NewUUID(),
	)
	require.NoError(t, err)
	return cmd
}

func newCreateQuoteHandler(factory *MockQuoteUoWFactory, now time.Time) commands.CreateQuoteCommandHandler {
	return commands.NewCreateQuoteCommandHandler(
		factory, services.NewPriceResolver(), fixedClock{now: now},
	)
}

func TestCreateQuoteCommandHandler_Handle_SnapshotsResolvedPrice(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()
	vehicleID := kernel.NewUUID()
	cmd := quoteCommand(t, vehicleID)

	var added *document.Document
	documentRepo := new(MockDocumentRepository)
	policyRepo := new(MockPricePolicyRepository)
	uow := new(MockQuoteUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PricePolicyRepository").Return(policyRepo).Once()
	uow.On("DocumentRepository").Return(documentRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	policyRepo.On("GetActiveForVehicle", mock.Anything, vehicleID, now).
		Return([]*pricing.Policy{activePolicy(t, vehicleID, 1_000)}, nil).Once()
	documentRepo.On("Add", mock.Anything, mock.AnythingOfType("*document.Document")).
		Run(func(args mock.Arguments) { added = args.Get(1).(*document.Document) }).
		Return(nil).Once()

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateQuoteHandler(factory, now)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, added)
	assert.Equal(t, document.KindQuote, added.Kind())
	assert.Equal(t, document.StatusDraft, added.Status())
	require.Len(t, added.Lines(), 1)
	assert.True(t, added.Lines()[0].UnitPrice().Equal(decimal.NewFromInt(1_000)))
	// 1000 * 2 - 50
	assert.True(t, added.TotalValue().Equal(decimal.NewFromInt(1_950)))
}

func TestCreateQuoteCommandHandler_Handle_NoActivePolicy(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()
	vehicleID := kernel.NewUUID()
	cmd := quoteCommand(t, vehicleID)

	documentRepo := new(MockDocumentRepository)
	policyRepo := new(MockPricePolicyRepository)
	uow := new(MockQuoteUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PricePolicyRepository").Return(policyRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	policyRepo.On("GetActiveForVehicle", mock.Anything, vehicleID, now).
		Return([]*pricing.Policy{}, nil).Once()

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateQuoteHandler(factory, now)

	require.ErrorIs(t, h.Handle(ctx, cmd), services.ErrNoActivePolicy)
	documentRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CreatesOpenOrder(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()
	vehicleID := kernel.NewUUID()

	line, err := commands.NewLineRequest(vehicleID, "BLUE", 1, decimal.Zero)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		[]commands.LineRequest{line}, kernel.NewUUID(),
	)
	require.NoError(t, err)

	var added *document.Document
	documentRepo := new(MockDocumentRepository)
	policyRepo := new(MockPricePolicyRepository)
	uow := new(MockQuoteUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PricePolicyRepository").Return(policyRepo).Once()
	uow.On("DocumentRepository").Return(documentRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	policyRepo.On("GetActiveForVehicle", mock.Anything, vehicleID, now).
		Return([]*pricing.Policy{activePolicy(t, vehicleID, 500)}, nil).Once()
	documentRepo.On("Add", mock.Anything, mock.AnythingOfType("*document.Document")).
		Run(func(args mock.Arguments) { added = args.Get(1).(*document.Document) }).
		Return(nil).Once()

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewPriceResolver(), fixedClock{now: now})
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, added)
	assert.Equal(t, document.KindOrder, added.Kind())
	assert.Equal(t, document.StatusOpen, added.Status())
}

func TestNewCreateQuoteCommand_RequiresLines(t *testing.T) {
	_, err := commands.NewCreateQuoteCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		nil, kernel.NewUUID(),
	)

	require.Error(t, err)
}
