package cmd

import (
	"time"

	httpin "dealersales/internal/adapters/in/http"
	"dealersales/internal/adapters/out/postgres"
	"dealersales/internal/core/application/usecases/commands"
	"dealersales/internal/core/application/usecases/queries"
	"dealersales/internal/core/domain/services"
	"dealersales/internal/jobs"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters, domain services and use case handlers.
// Each Create method builds a fresh handler bound to the shared unit of work
// factory, the domain services and the system clock.
type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	resolver    services.PriceResolver
	coordinator services.StatusCoordinator
	clock       systemClock
	logger      zerolog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger zerolog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		resolver:    services.NewPriceResolver(),
		coordinator: services.NewStatusCoordinator(),
		clock:       systemClock{},
		logger:      logger,
	}
}

// systemClock reads wall clock time in UTC.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func (c *CompositionRoot) CreateCreatePricePolicyCommandHandler() commands.CreatePricePolicyCommandHandler {
	var f commands.PricePolicyUoWFactory = FuncPricePolicyUoWFactory(func() commands.PricePolicyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePricePolicyCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCreateQuoteCommandHandler() commands.CreateQuoteCommandHandler {
	return commands.NewCreateQuoteCommandHandler(c.quoteUoWFactory(), c.resolver, c.clock)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.quoteUoWFactory(), c.resolver, c.clock)
}

func (c *CompositionRoot) CreateSendQuoteCommandHandler() commands.SendQuoteCommandHandler {
	return commands.NewSendQuoteCommandHandler(c.documentUoWFactory(), c.coordinator, c.clock)
}

func (c *CompositionRoot) CreateAcceptQuoteCommandHandler() commands.AcceptQuoteCommandHandler {
	return commands.NewAcceptQuoteCommandHandler(c.documentUoWFactory(), c.coordinator, c.clock)
}

func (c *CompositionRoot) CreateRejectQuoteCommandHandler() commands.RejectQuoteCommandHandler {
	return commands.NewRejectQuoteCommandHandler(c.documentUoWFactory(), c.coordinator, c.clock)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.paymentUoWFactory(), c.coordinator, c.clock)
}

func (c *CompositionRoot) CreateRefreshPaymentStatusCommandHandler() commands.RefreshPaymentStatusCommandHandler {
	return commands.NewRefreshPaymentStatusCommandHandler(c.paymentUoWFactory(), c.coordinator, c.clock)
}

func (c *CompositionRoot) CreateScheduleDeliveryCommandHandler() commands.ScheduleDeliveryCommandHandler {
	return commands.NewScheduleDeliveryCommandHandler(c.deliveryUoWFactory(), c.coordinator, c.clock)
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	return commands.NewStartDeliveryCommandHandler(c.deliveryUoWFactory(), c.coordinator, c.clock)
}

func (c *CompositionRoot) CreateConfirmReceiptCommandHandler() commands.ConfirmReceiptCommandHandler {
	return commands.NewConfirmReceiptCommandHandler(c.deliveryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.deliveryUoWFactory(), c.coordinator, c.clock)
}

func (c *CompositionRoot) CreateSetDeliveryStatusCommandHandler() commands.SetDeliveryStatusCommandHandler {
	return commands.NewSetDeliveryStatusCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateGetActivePriceQueryHandler() queries.GetActivePriceQueryHandler {
	return queries.NewGetActivePriceQueryHandler(c.gormDB, c.resolver)
}

func (c *CompositionRoot) CreateGetActivePricePoliciesQueryHandler() queries.GetActivePricePoliciesQueryHandler {
	return queries.NewGetActivePricePoliciesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentSummaryQueryHandler() queries.GetPaymentSummaryQueryHandler {
	return queries.NewGetPaymentSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveriesByStatusQueryHandler() queries.GetDeliveriesByStatusQueryHandler {
	return queries.NewGetDeliveriesByStatusQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST server with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreatePricePolicy:    c.CreateCreatePricePolicyCommandHandler(),
		CreateQuote:          c.CreateCreateQuoteCommandHandler(),
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		SendQuote:            c.CreateSendQuoteCommandHandler(),
		AcceptQuote:          c.CreateAcceptQuoteCommandHandler(),
		RejectQuote:          c.CreateRejectQuoteCommandHandler(),
		RecordPayment:        c.CreateRecordPaymentCommandHandler(),
		RefreshPaymentStatus: c.CreateRefreshPaymentStatusCommandHandler(),
		ScheduleDelivery:     c.CreateScheduleDeliveryCommandHandler(),
		StartDelivery:        c.CreateStartDeliveryCommandHandler(),
		ConfirmReceipt:       c.CreateConfirmReceiptCommandHandler(),
		CompleteDelivery:     c.CreateCompleteDeliveryCommandHandler(),
		SetDeliveryStatus:    c.CreateSetDeliveryStatusCommandHandler(),

		GetActivePrice:         c.CreateGetActivePriceQueryHandler(),
		GetActivePricePolicies: c.CreateGetActivePricePoliciesQueryHandler(),
		GetPaymentSummary:      c.CreateGetPaymentSummaryQueryHandler(),
		GetOpenOrders:          c.CreateGetOpenOrdersQueryHandler(),
		GetDeliveriesByStatus:  c.CreateGetDeliveriesByStatusQueryHandler(),
	}, c.clock)
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOpenOrdersQueryHandler(),
		c.CreateRefreshPaymentStatusCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) documentUoWFactory() commands.DocumentUoWFactory {
	return FuncDocumentUoWFactory(func() commands.DocumentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) quoteUoWFactory() commands.QuoteUoWFactory {
	return FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

type FuncDocumentUoWFactory func() commands.DocumentUoW

func (f FuncDocumentUoWFactory) Create() commands.DocumentUoW {
	return f()
}

type FuncQuoteUoWFactory func() commands.QuoteUoW

func (f FuncQuoteUoWFactory) Create() commands.QuoteUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncPricePolicyUoWFactory func() commands.PricePolicyUoW

func (f FuncPricePolicyUoWFactory) Create() commands.PricePolicyUoW {
	return f()
}
