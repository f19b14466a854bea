// Package http is the inbound HTTP adapter. Handlers stay thin: bind the
// request, build a command or query, delegate to the application layer and
// render the uniform response envelope.
package http

import (
	"net/http"

	"ridetrack/internal/core/application/usecases/commands"
	"ridetrack/internal/core/application/usecases/queries"
	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/order"
	"ridetrack/internal/core/domain/model/tracking"
	"ridetrack/internal/core/domain/model/user"
	"ridetrack/internal/pkg/auth"
	"ridetrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	updateOrderHandler        commands.UpdateOrderCommandHandler
	deleteOrderHandler        commands.DeleteOrderCommandHandler
	createTrackingHandler     commands.CreateTrackingCommandHandler
	updateTrackingHandler     commands.UpdateTrackingCommandHandler
	addTrackingHistoryHandler commands.AddTrackingHistoryCommandHandler
	registerUserHandler       commands.RegisterUserCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	listOrdersHandler          queries.ListOrdersQueryHandler
	getTrackingHandler         queries.GetTrackingQueryHandler
	listTrackingHistoryHandler queries.ListTrackingHistoryQueryHandler
	getUserHandler             queries.GetUserQueryHandler
	listUsersHandler           queries.ListUsersQueryHandler
	loginHandler               queries.LoginQueryHandler

	tokens *auth.TokenService
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createTrackingHandler commands.CreateTrackingCommandHandler,
	updateTrackingHandler commands.UpdateTrackingCommandHandler,
	addTrackingHistoryHandler commands.AddTrackingHistoryCommandHandler,
	registerUserHandler commands.RegisterUserCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getTrackingHandler queries.GetTrackingQueryHandler,
	listTrackingHistoryHandler queries.ListTrackingHistoryQueryHandler,
	getUserHandler queries.GetUserQueryHandler,
	listUsersHandler queries.ListUsersQueryHandler,
	loginHandler queries.LoginQueryHandler,
	tokens *auth.TokenService,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderHandler:         updateOrderHandler,
		deleteOrderHandler:         deleteOrderHandler,
		createTrackingHandler:      createTrackingHandler,
		updateTrackingHandler:      updateTrackingHandler,
		addTrackingHistoryHandler:  addTrackingHistoryHandler,
		registerUserHandler:        registerUserHandler,
		getOrderHandler:            getOrderHandler,
		listOrdersHandler:          listOrdersHandler,
		getTrackingHandler:         getTrackingHandler,
		listTrackingHistoryHandler: listTrackingHistoryHandler,
		getUserHandler:             getUserHandler,
		listUsersHandler:           listUsersHandler,
		loginHandler:               loginHandler,
		tokens:                     tokens,
	}
}

// RegisterRoutes mounts the API surface on the echo instance. Auth endpoints
// and the health check are public; everything else requires a bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.Register)
	authGroup.POST("/login", s.Login)

	protected := api.Group("", BearerAuth(s.tokens))

	protected.POST("/orders", s.CreateOrder)
	protected.GET("/orders", s.ListOrders)
	protected.GET("/orders/:id", s.GetOrder)
	protected.PUT("/orders/:id", s.UpdateOrder)
	protected.DELETE("/orders/:id", s.DeleteOrder)

	protected.POST("/tracking", s.CreateTracking)
	protected.GET("/tracking/number/:number", s.GetTrackingByNumber)
	protected.GET("/tracking/order/:orderId", s.GetTrackingByOrderID)
	protected.GET("/tracking/:id", s.GetTrackingByID)
	protected.PUT("/tracking/:id", s.UpdateTracking)
	protected.GET("/tracking/:id/history", s.ListTrackingHistory)
	protected.POST("/tracking/:id/history", s.AddTrackingHistory)

	protected.GET("/users", s.ListUsers)
	protected.GET("/users/:id", s.GetUser)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return respond(ctx, http.StatusOK, "ok", nil)
}

// Register handles POST /api/v1/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewRegisterUserCommand(
		req.FirstName, req.LastName, req.Email, req.Password,
		req.PhoneNumber, req.Address, user.Role(req.Role),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, "user registered", queries.UserSummary{
		ID:          created.ID().String(),
		FirstName:   created.FirstName(),
		LastName:    created.LastName(),
		Email:       created.Email(),
		PhoneNumber: created.PhoneNumber(),
		Role:        created.Role().String(),
	})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	query, err := queries.NewLoginQuery(req.Email, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.loginHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "login successful", response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("riderId", err))
	}

	cmd, err := commands.NewCreateOrderCommand(
		riderID, req.PickupLocation, req.DropoffLocation,
		req.Distance, req.Duration, req.Fare,
		req.PaymentMethod, req.Notes, req.ScheduledTime,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, "order created", orderToView(created))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	filter, page, pageSize, err := bindOrderFilter(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(filter, page, pageSize)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "orders retrieved", response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "order retrieved", view)
}

// UpdateOrder handles PUT /api/v1/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req updateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	patch, err := orderPatchFromRequest(req)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, patch)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "order updated", orderToView(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "order deleted", nil)
}

// CreateTracking handles POST /api/v1/tracking. Creating tracking for an
// already-tracked order returns the existing record with 200 instead of 201.
func (s *Server) CreateTracking(ctx echo.Context) error {
	var req createTrackingRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewCreateTrackingCommand(
		orderID, tracking.Status(req.Status),
		req.CurrentLocation, req.EstimatedArrival, req.Notes,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.createTrackingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	if result.AlreadyExisted {
		return respond(ctx, http.StatusOK, "order is already tracked", trackingToView(result.Tracking))
	}
	return respond(ctx, http.StatusCreated, "tracking created", trackingToView(result.Tracking))
}

// GetTrackingByID handles GET /api/v1/tracking/:id.
func (s *Server) GetTrackingByID(ctx echo.Context) error {
	trackingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetTrackingQueryByID(trackingID)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.handleGetTracking(ctx, query)
}

// GetTrackingByNumber handles GET /api/v1/tracking/number/:number.
func (s *Server) GetTrackingByNumber(ctx echo.Context) error {
	query, err := queries.NewGetTrackingQueryByNumber(ctx.Param("number"))
	if err != nil {
		return respondError(ctx, err)
	}

	return s.handleGetTracking(ctx, query)
}

// GetTrackingByOrderID handles GET /api/v1/tracking/order/:orderId.
func (s *Server) GetTrackingByOrderID(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	query, err := queries.NewGetTrackingQueryByOrderID(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.handleGetTracking(ctx, query)
}

func (s *Server) handleGetTracking(ctx echo.Context, query queries.GetTrackingQuery) error {
	view, err := s.getTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "tracking retrieved", view)
}

// UpdateTracking handles PUT /api/v1/tracking/:id.
func (s *Server) UpdateTracking(ctx echo.Context) error {
	trackingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req updateTrackingRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	patch := tracking.Patch{
		CurrentLocation:  req.CurrentLocation,
		EstimatedArrival: req.EstimatedArrival,
		Notes:            req.Notes,
	}
	if req.Status != nil {
		status := tracking.Status(*req.Status)
		patch.Status = &status
	}

	cmd, err := commands.NewUpdateTrackingCommand(trackingID, patch)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateTrackingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "tracking updated", trackingToView(updated))
}

// ListTrackingHistory handles GET /api/v1/tracking/:id/history.
func (s *Server) ListTrackingHistory(ctx echo.Context) error {
	trackingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewListTrackingHistoryQuery(trackingID)
	if err != nil {
		return respondError(ctx, err)
	}

	events, err := s.listTrackingHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "tracking history retrieved", events)
}

// AddTrackingHistory handles POST /api/v1/tracking/:id/history.
func (s *Server) AddTrackingHistory(ctx echo.Context) error {
	trackingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req addTrackingHistoryRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewAddTrackingHistoryCommand(
		trackingID, tracking.Status(req.Status), req.Location, req.Description,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	event, err := s.addTrackingHistoryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, "tracking history added", queries.HistoryEventView{
		ID:          event.ID().String(),
		TrackingID:  event.TrackingID().String(),
		Status:      event.Status().String(),
		Location:    event.Location(),
		Description: event.Description(),
		Timestamp:   event.Timestamp(),
	})
}

// GetUser handles GET /api/v1/users/:id.
func (s *Server) GetUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetUserQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	summary, err := s.getUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "user retrieved", summary)
}

// ListUsers handles GET /api/v1/users.
func (s *Server) ListUsers(ctx echo.Context) error {
	page := intQueryParam(ctx, "page")
	pageSize := intQueryParam(ctx, "pageSize")

	query, err := queries.NewListUsersQuery(ctx.QueryParam("role"), page, pageSize)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.listUsersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "users retrieved", response)
}

func orderToView(o *order.Order) queries.OrderView {
	var driverID *string
	if o.DriverID() != nil {
		s := o.DriverID().String()
		driverID = &s
	}

	return queries.OrderView{
		ID:              o.ID().String(),
		OrderNumber:     o.Number().String(),
		RiderID:         o.RiderID().String(),
		DriverID:        driverID,
		PickupLocation:  o.PickupLocation(),
		DropoffLocation: o.DropoffLocation(),
		Distance:        o.Distance(),
		Duration:        o.Duration(),
		Fare:            o.Fare(),
		Status:          o.Status().String(),
		PaymentStatus:   o.PaymentStatus().String(),
		PaymentMethod:   o.PaymentMethod(),
		Notes:           o.Notes(),
		ScheduledTime:   o.ScheduledTime(),
		CreatedAt:       o.CreatedAt(),
	}
}

func trackingToView(t *tracking.Tracking) queries.TrackingView {
	return queries.TrackingView{
		ID:               t.ID().String(),
		TrackingNumber:   t.Number().String(),
		OrderID:          t.OrderID().String(),
		Status:           t.Status().String(),
		CurrentLocation:  t.CurrentLocation(),
		EstimatedArrival: t.EstimatedArrival(),
		Notes:            t.Notes(),
		CreatedAt:        t.CreatedAt(),
		History:          make([]queries.HistoryEventView, 0),
	}
}
