// Package http exposes the sale tracking operations over a REST API built on
// Echo. Request bodies are plain JSON DTOs; domain errors map to HTTP status
// codes in one place, see failWith.
package http

import (
	"errors"
	"net/http"
	"time"

	"dealersales/internal/core/application/usecases/commands"
	"dealersales/internal/core/application/usecases/queries"
	"dealersales/internal/core/domain/model/delivery"
	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/core/domain/model/payment"
	"dealersales/internal/core/domain/model/pricing"
	"dealersales/internal/core/domain/services"
	"dealersales/internal/core/ports"
	"dealersales/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Handlers groups the command and query handlers the server dispatches to.
type Handlers struct {
	CreatePricePolicy    commands.CreatePricePolicyCommandHandler
	CreateQuote          commands.CreateQuoteCommandHandler
	CreateOrder          commands.CreateOrderCommandHandler
	SendQuote            commands.SendQuoteCommandHandler
	AcceptQuote          commands.AcceptQuoteCommandHandler
	RejectQuote          commands.RejectQuoteCommandHandler
	RecordPayment        commands.RecordPaymentCommandHandler
	RefreshPaymentStatus commands.RefreshPaymentStatusCommandHandler
	ScheduleDelivery     commands.ScheduleDeliveryCommandHandler
	StartDelivery        commands.StartDeliveryCommandHandler
	ConfirmReceipt       commands.ConfirmReceiptCommandHandler
	CompleteDelivery     commands.CompleteDeliveryCommandHandler
	SetDeliveryStatus    commands.SetDeliveryStatusCommandHandler

	GetActivePrice         queries.GetActivePriceQueryHandler
	GetActivePricePolicies queries.GetActivePricePoliciesQueryHandler
	GetPaymentSummary      queries.GetPaymentSummaryQueryHandler
	GetOpenOrders          queries.GetOpenOrdersQueryHandler
	GetDeliveriesByStatus  queries.GetDeliveriesByStatusQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	clock    ports.Clock
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers, clock ports.Clock) *Server {
	return &Server{handlers: handlers, clock: clock}
}

// RegisterRoutes mounts all API routes on the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/price-policies", s.CreatePricePolicy)
	api.GET("/price-policies", s.GetActivePricePolicies)
	api.GET("/vehicles/:vehicleID/price", s.GetActivePrice)

	api.POST("/quotes", s.CreateQuote)
	api.POST("/quotes/:documentID/send", s.SendQuote)
	api.POST("/quotes/:documentID/accept", s.AcceptQuote)
	api.POST("/quotes/:documentID/reject", s.RejectQuote)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/open", s.GetOpenOrders)
	api.POST("/orders/:documentID/payments", s.RecordPayment)
	api.POST("/orders/:documentID/refresh-payment-status", s.RefreshPaymentStatus)
	api.POST("/orders/:documentID/delivery", s.ScheduleDelivery)
	api.GET("/documents/:documentID/payments", s.GetPaymentSummary)

	api.GET("/deliveries", s.GetDeliveriesByStatus)
	api.POST("/deliveries/:deliveryID/start", s.StartDelivery)
	api.POST("/deliveries/:deliveryID/confirm-receipt", s.ConfirmReceipt)
	api.POST("/deliveries/:deliveryID/complete", s.CompleteDelivery)
	api.PUT("/deliveries/:deliveryID/status", s.SetDeliveryStatus)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createdResponse struct {
	ID string `json:"id"`
}

type lineRequest struct {
	VehicleID     string          `json:"vehicle_id"`
	ColorCode     string          `json:"color_code"`
	Qty           int             `json:"qty"`
	DiscountValue decimal.Decimal `json:"discount_value"`
}

type createDocumentRequest struct {
	DealerID    string        `json:"dealer_id"`
	CustomerID  string        `json:"customer_id"`
	PromotionID *string       `json:"promotion_id"`
	Lines       []lineRequest `json:"lines"`
}

type createPricePolicyRequest struct {
	VehicleID string          `json:"vehicle_id"`
	DealerID  *string         `json:"dealer_id"`
	MSRP      decimal.Decimal `json:"msrp"`
	Wholesale decimal.Decimal `json:"wholesale"`
	ValidFrom time.Time       `json:"valid_from"`
	ValidTo   *time.Time      `json:"valid_to"`
}

type recordPaymentRequest struct {
	Method   string            `json:"method"`
	Amount   decimal.Decimal   `json:"amount"`
	Metadata map[string]string `json:"metadata"`
}

type scheduleDeliveryRequest struct {
	ScheduledDate time.Time `json:"scheduled_date"`
	HandoverNote  *string   `json:"handover_note"`
}

type completeDeliveryRequest struct {
	DeliveredDate time.Time `json:"delivered_date"`
	HandoverNote  *string   `json:"handover_note"`
}

type setDeliveryStatusRequest struct {
	Status string `json:"status"`
}

// CreatePricePolicy handles POST /api/v1/price-policies.
func (s *Server) CreatePricePolicy(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return failWith(ctx, err)
	}

	var req createPricePolicyRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return failWith(ctx, err)
	}

	dealerID, err := optionalUUID(req.DealerID)
	if err != nil {
		return failWith(ctx, err)
	}

	scope, err := pricing.RestoreScope(dealerID)
	if err != nil {
		return failWith(ctx, err)
	}

	policyID := kernel.NewUUID()
	cmd, err := commands.NewCreatePricePolicyCommand(policyID, vehicleID, scope,
		req.MSRP, req.Wholesale, req.ValidFrom, req.ValidTo, actor)
	if err != nil {
		return failWith(ctx, err)
	}

	if err = s.handlers.CreatePricePolicy.Handle(ctx.Request().Context(), cmd); err != nil {
		return failWith(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: policyID.String()})
}

// GetActivePricePolicies handles GET /api/v1/price-policies.
func (s *Server) GetActivePricePolicies(ctx echo.Context) error {
	dealerID, err := optionalUUID(queryParam(ctx, "dealer_id"))
	if err != nil {
		return failWith(ctx, err)
	}

	asOf, err := s.asOf(ctx)
	if err != nil {
		return failWith(ctx, err)
	}

	query, err := queries.NewGetActivePricePoliciesQuery(dealerID, asOf)
	if err != nil {
		return failWith(ctx, err)
	}

	policies, err := s.handlers.GetActivePricePolicies.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failWith(ctx, err)
	}

	return ctx.JSON(http.StatusOK, policies)
}

// GetActivePrice handles GET /api/v1/vehicles/:vehicleID/price.
func (s *Server) GetActivePrice(ctx echo.Context) error {
	vehicleID, err := pathUUID(ctx, "vehicleID")
	if err != nil {
		return failWith(ctx, err)
	}

	dealerID, err := optionalUUID(queryParam(ctx, "dealer_id"))
	if err != nil {
		return failWith(ctx, err)
	}

	asOf, err := s.asOf(ctx)
	if err != nil {
		return failWith(ctx, err)
	}

	query, err := queries.NewGetActivePriceQuery(vehicleID, dealerID, asOf)
	if err != nil {
		return failWith(ctx, err)
	}

	price, err := s.handlers.GetActivePrice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failWith(ctx, err)
	}

	return ctx.JSON(http.StatusOK, price)
}

// CreateQuote handles POST /api/v1/quotes.
func (s *Server) CreateQuote(ctx echo.Context) error {
	documentID := kernel.NewUUID()

	err := s.createDocument(ctx, func(req createDocumentRequest, actor kernel.UUID) error {
		cmdInput, buildErr := documentCommandInput(req)
		if buildErr != nil {
			return buildErr
		}

		cmd, cmdErr := commands.NewCreateQuoteCommand(documentID, cmdInput.dealerID,
			cmdInput.customerID, cmdInput.promotionID, cmdInput.lines, actor)
		if cmdErr != nil {
			return cmdErr
		}

		return s.handlers.CreateQuote.Handle(ctx.Request().Context(), cmd)
	})
	if err != nil {
		return failWith(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: documentID.String()})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	documentID := kernel.NewUUID()

	err := s.createDocument(ctx, func(req createDocumentRequest, actor kernel.UUID) error {
		cmdInput, buildErr := documentCommandInput(req)
		if buildErr != nil {
			return buildErr
		}

		cmd, cmdErr := commands.NewCreateOrderCommand(documentID, cmdInput.dealerID,
			cmdInput.customerID, cmdInput.promotionID, cmdInput.lines, actor)
		if cmdErr != nil {
			return cmdErr
		}

		return s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	})
	if err != nil {
		return failWith(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: documentID.String()})
}

// SendQuote handles POST /api/v1/quotes/:documentID/send.
func (s *Server) SendQuote(ctx echo.Context) error {
	return s.quoteTransition(ctx, func(documentID, actor kernel.UUID) error {
		cmd, err := commands.NewSendQuoteCommand(documentID, actor)
		if err != nil {
			return err
		}
		return s.handlers.SendQuote.Handle(ctx.Request().Context(), cmd)
	})
}

// AcceptQuote handles POST /api/v1/quotes/:documentID/accept.
func (s *Server) AcceptQuote(ctx echo.Context) error {
	return s.quoteTransition(ctx, func(documentID, actor kernel.UUID) error {
		cmd, err := commands.NewAcceptQuoteCommand(documentID, actor)
		if err != nil {
			return err
		}
		return s.handlers.AcceptQuote.Handle(ctx.Request().Context(), cmd)
	})
}

// RejectQuote handles POST /api/v1/quotes/:documentID/reject.
func (s *Server) RejectQuote(ctx echo.Context) error {
	return s.quoteTransition(ctx, func(documentID, actor kernel.UUID) error {
		cmd, err := commands.NewRejectQuoteCommand(documentID, actor)
		if err != nil {
			return err
		}
		return s.handlers.RejectQuote.Handle(ctx.Request().Context(), cmd)
	})
}

// RecordPayment handles POST /api/v1/orders/:documentID/payments.
func (s *Server) RecordPayment(ctx echo.Context) error {
	documentID, err := pathUUID(ctx, "documentID")
	if err != nil {
		return failWith(ctx, err)
	}

	actor, err := actorID(ctx)
	if err != nil {
		return failWith(ctx, err)
	}

	var req recordPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	paymentID := kernel.NewUUID()
	cmd, err := commands.NewRecordPaymentCommand(paymentID, documentID,
		payment.Method(req.Method), req.Amount, req.Metadata, actor)
	if err != nil {
		return failWith(ctx, err)
	}

	if err = s.handlers.RecordPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return failWith(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: paymentID.String()})
}

// RefreshPaymentStatus handles POST /api/v1/orders/:documentID/refresh-payment-status.
func (s *Server) RefreshPaymentStatus(ctx echo.Context) error {
	documentID, err := pathUUID(ctx, "documentID")
	if err != nil {
		return failWith(ctx, err)
	}

	cmd, err := commands.NewRefreshPaymentStatusCommand(documentID)
	if err != nil {
		return failWith(ctx, err)
	}

	if err = s.handlers.RefreshPaymentStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return failWith(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPaymentSummary handles GET /api/v1/documents/:documentID/payments.
func (s *Server) GetPaymentSummary(ctx echo.Context) error {
	documentID, err := pathUUID(ctx, "documentID")
	if err != nil {
		return failWith(ctx, err)
	}

	query, err := queries.NewGetPaymentSummaryQuery(documentID)
	if err != nil {
		return failWith(ctx, err)
	}

	summary, err := s.handlers.GetPaymentSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failWith(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summary)
}

// GetOpenOrders handles GET /api/v1/orders/open.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetOpenOrders.Handle(ctx.Request().Context(), queries.NewGetOpenOrdersQuery())
	if err != nil {
		return failWith(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// ScheduleDelivery handles POST /api/v1/orders/:documentID/delivery.
func (s *Server) ScheduleDelivery(ctx echo.Context) error {
	documentID, err := pathUUID(ctx, "documentID")
	if err != nil {
		return failWith(ctx, err)
	}

	actor, err := actorID(ctx)
	if err != nil {
		return failWith(ctx, err)
	}

	var req scheduleDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewScheduleDeliveryCommand(documentID, req.ScheduledDate, req.HandoverNote, actor)
	if err != nil {
		return failWith(ctx, err)
	}

	if err = s.handlers.ScheduleDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return failWith(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveriesByStatus handles GET /api/v1/deliveries.
func (s *Server) GetDeliveriesByStatus(ctx echo.Context) error {
	query, err := queries.NewGetDeliveriesByStatusQuery(delivery.Status(ctx.QueryParam("status")))
	if err != nil {
		return failWith(ctx, err)
	}

	deliveries, err := s.handlers.GetDeliveriesByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failWith(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveries)
}

// StartDelivery handles POST /api/v1/deliveries/:deliveryID/start.
func (s *Server) StartDelivery(ctx echo.Context) error {
	return s.deliveryTransition(ctx, func(deliveryID, actor kernel.UUID) error {
		cmd, err := commands.NewStartDeliveryCommand(deliveryID, actor)
		if err != nil {
			return err
		}
		return s.handlers.StartDelivery.Handle(ctx.Request().Context(), cmd)
	})
}

// ConfirmReceipt handles POST /api/v1/deliveries/:deliveryID/confirm-receipt.
func (s *Server) ConfirmReceipt(ctx echo.Context) error {
	return s.deliveryTransition(ctx, func(deliveryID, actor kernel.UUID) error {
		cmd, err := commands.NewConfirmReceiptCommand(deliveryID, actor)
		if err != nil {
			return err
		}
		return s.handlers.ConfirmReceipt.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteDelivery handles POST /api/v1/deliveries/:deliveryID/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "deliveryID")
	if err != nil {
		return failWith(ctx, err)
	}

	actor, err := actorID(ctx)
	if err != nil {
		return failWith(ctx, err)
	}

	var req completeDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deliveredDate := req.DeliveredDate
	if deliveredDate.IsZero() {
		deliveredDate = s.clock.Now()
	}

	cmd, err := commands.NewCompleteDeliveryCommand(deliveryID, deliveredDate, req.HandoverNote, actor)
	if err != nil {
		return failWith(ctx, err)
	}

	if err = s.handlers.CompleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return failWith(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetDeliveryStatus handles PUT /api/v1/deliveries/:deliveryID/status.
func (s *Server) SetDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "deliveryID")
	if err != nil {
		return failWith(ctx, err)
	}

	actor, err := actorID(ctx)
	if err != nil {
		return failWith(ctx, err)
	}

	var req setDeliveryStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetDeliveryStatusCommand(deliveryID, delivery.Status(req.Status), actor)
	if err != nil {
		return failWith(ctx, err)
	}

	if err = s.handlers.SetDeliveryStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return failWith(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type documentInput struct {
	dealerID    kernel.UUID
	customerID  kernel.UUID
	promotionID *kernel.UUID
	lines       []commands.LineRequest
}

func documentCommandInput(req createDocumentRequest) (documentInput, error) {
	dealerID, err := kernel.UUIDFromString(req.DealerID)
	if err != nil {
		return documentInput{}, err
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return documentInput{}, err
	}

	promotionID, err := optionalUUID(req.PromotionID)
	if err != nil {
		return documentInput{}, err
	}

	lines := make([]commands.LineRequest, 0, len(req.Lines))
	for _, l := range req.Lines {
		vehicleID, lineErr := kernel.UUIDFromString(l.VehicleID)
		if lineErr != nil {
			return documentInput{}, lineErr
		}

		line, lineErr := commands.NewLineRequest(vehicleID, l.ColorCode, l.Qty, l.DiscountValue)
		if lineErr != nil {
			return documentInput{}, lineErr
		}
		lines = append(lines, line)
	}

	return documentInput{
		dealerID:    dealerID,
		customerID:  customerID,
		promotionID: promotionID,
		lines:       lines,
	}, nil
}

func (s *Server) createDocument(ctx echo.Context, handle func(createDocumentRequest, kernel.UUID) error) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}

	var req createDocumentRequest
	if err = ctx.Bind(&req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	return handle(req, actor)
}

func (s *Server) quoteTransition(ctx echo.Context, handle func(documentID, actor kernel.UUID) error) error {
	documentID, err := pathUUID(ctx, "documentID")
	if err != nil {
		return failWith(ctx, err)
	}

	actor, err := actorID(ctx)
	if err != nil {
		return failWith(ctx, err)
	}

	if err = handle(documentID, actor); err != nil {
		return failWith(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) deliveryTransition(ctx echo.Context, handle func(deliveryID, actor kernel.UUID) error) error {
	deliveryID, err := pathUUID(ctx, "deliveryID")
	if err != nil {
		return failWith(ctx, err)
	}

	actor, err := actorID(ctx)
	if err != nil {
		return failWith(ctx, err)
	}

	if err = handle(deliveryID, actor); err != nil {
		return failWith(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// actorID extracts the acting user from the X-Actor-ID header. Every
// mutating operation records who performed it.
func actorID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get("X-Actor-ID")
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("X-Actor-ID")
	}

	return kernel.UUIDFromString(raw)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func queryParam(ctx echo.Context, name string) *string {
	if raw := ctx.QueryParam(name); raw != "" {
		return &raw
	}
	return nil
}

func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

// asOf reads the optional as_of query parameter, defaulting to the current
// instant.
func (s *Server) asOf(ctx echo.Context) (time.Time, error) {
	raw := ctx.QueryParam("as_of")
	if raw == "" {
		return s.clock.Now(), nil
	}

	asOf, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("as_of", err)
	}

	return asOf, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// failWith maps domain errors to HTTP status codes: missing objects are 404,
// lifecycle conflicts are 409, business rule rejections are 422 and
// malformed input is 400.
func failWith(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errorIsAny(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errorIsAny(err, errs.ErrInvalidStateTransition):
		status = http.StatusConflict
	case errorIsAny(err,
		errs.ErrWrongDocumentKind,
		commands.ErrPaymentExceedsBalance,
		services.ErrNoActivePolicy,
	):
		status = http.StatusUnprocessableEntity
	case errorIsAny(err,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsRequired,
		errs.ErrValueIsOutOfRange,
	):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func errorIsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
