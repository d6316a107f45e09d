package commands_test

import (
	"testing"
	"time"

	"dealersales/internal/core/application/usecases/commands"
	"dealersales/internal/core/domain/model/delivery"
	"dealersales/internal/core/domain/model/document"
	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/core/domain/services"
	"dealersales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeDelivery(t *testing.T, documentID kernel.UUID) *delivery.Delivery {
	t.Helper()

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), documentID, time.Now().UTC().AddDate(0, 0, 7), nil, time.Now().UTC(),
	)
	require.NoError(t, err)
	return d
}

func scheduleCommand(t *testing.T, documentID kernel.UUID) commands.ScheduleDeliveryCommand {
	t.Helper()

	cmd, err := commands.NewScheduleDeliveryCommand(
		documentID, time.Now().UTC().AddDate(0, 0, 7), nil, kernel.NewUUID(),
	)
	require.NoError(t, err)
	return cmd
}

func newScheduleHandler(factory *MockDeliveryUoWFactory) commands.ScheduleDeliveryCommandHandler {
	return commands.NewScheduleDeliveryCommandHandler(
		factory, services.NewStatusCoordinator(), fixedClock{now: time.Now().UTC()},
	)
}

func TestScheduleDeliveryCommandHandler_Handle_FirstSchedule(t *testing.T) {
	ctx := t.Context()
	order := makeOrder(t, 100)
	cmd := scheduleCommand(t, order.ID())

	documentRepo := new(MockDocumentRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DocumentRepository").Return(documentRepo).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	documentRepo.On("GetForUpdate", mock.Anything, order.ID()).Return(order, nil).Once()
	documentRepo.On("Update", mock.Anything, order).Return(nil).Once()
	deliveryRepo.On("GetByDocument", mock.Anything, order.ID()).
		Return(nil, errs.NewObjectNotFoundError("documentID", order.ID())).Once()
	deliveryRepo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newScheduleHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, document.StatusDeliveryScheduled, order.Status())
	deliveryRepo.AssertExpectations(t)
	documentRepo.AssertExpectations(t)
}

func TestScheduleDeliveryCommandHandler_Handle_Reschedule(t *testing.T) {
	ctx := t.Context()
	order := makeOrder(t, 100)
	require.NoError(t, order.MarkDeliveryScheduled(time.Now().UTC()))
	existing := makeDelivery(t, order.ID())
	cmd := scheduleCommand(t, order.ID())

	documentRepo := new(MockDocumentRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DocumentRepository").Return(documentRepo).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	documentRepo.On("GetForUpdate", mock.Anything, order.ID()).Return(order, nil).Once()
	documentRepo.On("Update", mock.Anything, order).Return(nil).Once()
	deliveryRepo.On("GetByDocument", mock.Anything, order.ID()).Return(existing, nil).Once()
	deliveryRepo.On("Update", mock.Anything, existing).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newScheduleHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// Same record updated, no duplicate created, still scheduled.
	assert.Equal(t, delivery.StatusScheduled, existing.Status())
	assert.True(t, existing.ScheduledDate().Equal(cmd.ScheduledDate()))
	assert.Equal(t, document.StatusDeliveryScheduled, order.Status())
	deliveryRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestScheduleDeliveryCommandHandler_Handle_RescheduleInTransit(t *testing.T) {
	ctx := t.Context()
	order := makeOrder(t, 100)
	existing := makeDelivery(t, order.ID())
	require.NoError(t, existing.Start())
	cmd := scheduleCommand(t, order.ID())

	documentRepo := new(MockDocumentRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DocumentRepository").Return(documentRepo).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	documentRepo.On("GetForUpdate", mock.Anything, order.ID()).Return(order, nil).Once()
	deliveryRepo.On("GetByDocument", mock.Anything, order.ID()).Return(existing, nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newScheduleHandler(factory)

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidStateTransition)
}

func TestScheduleDeliveryCommandHandler_Handle_WrongDocumentKind(t *testing.T) {
	ctx := t.Context()
	quote := makeQuote(t)
	cmd := scheduleCommand(t, quote.ID())

	documentRepo := new(MockDocumentRepository)
	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DocumentRepository").Return(documentRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	documentRepo.On("GetForUpdate", mock.Anything, quote.ID()).Return(quote, nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newScheduleHandler(factory)

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrWrongDocumentKind)
}
