// Package http provides the inbound HTTP adapter. It translates REST
// requests into commands and queries and maps domain errors to status codes.
package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/partner"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler       commands.PlaceOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	overrideStatusHandler   commands.OverrideStatusCommandHandler
	deleteOrderHandler      commands.DeleteOrderCommandHandler
	registerPartnerHandler  commands.RegisterPartnerCommandHandler
	reportLocationHandler   commands.ReportLocationCommandHandler
	assignPartnerHandler    commands.AssignPartnerCommandHandler
	acceptOrderHandler      commands.AcceptOrderCommandHandler
	pickUpHandler           commands.PickUpOrderCommandHandler
	startDeliveryHandler    commands.StartDeliveryCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler

	// Query handlers
	getOrderHandler             queries.GetOrderQueryHandler
	getAllOrdersHandler         queries.GetAllOrdersQueryHandler
	getCustomerOrdersHandler    queries.GetCustomerOrdersQueryHandler
	getPartnerOrdersHandler     queries.GetPartnerOrdersQueryHandler
	getUnassignedOrdersHandler  queries.GetUnassignedOrdersQueryHandler
	getAvailablePartnersHandler queries.GetAvailablePartnersQueryHandler
	getPartnerByUserHandler     queries.GetPartnerByUserQueryHandler
	getTrackingHandler          queries.GetTrackingQueryHandler
}

// ServerHandlers bundles every use case the server exposes. The composition
// root fills it once at startup.
type ServerHandlers struct {
	PlaceOrder       commands.PlaceOrderCommandHandler
	CancelOrder      commands.CancelOrderCommandHandler
	OverrideStatus   commands.OverrideStatusCommandHandler
	DeleteOrder      commands.DeleteOrderCommandHandler
	RegisterPartner  commands.RegisterPartnerCommandHandler
	ReportLocation   commands.ReportLocationCommandHandler
	AssignPartner    commands.AssignPartnerCommandHandler
	AcceptOrder      commands.AcceptOrderCommandHandler
	PickUp           commands.PickUpOrderCommandHandler
	StartDelivery    commands.StartDeliveryCommandHandler
	CompleteDelivery commands.CompleteDeliveryCommandHandler

	GetOrder             queries.GetOrderQueryHandler
	GetAllOrders         queries.GetAllOrdersQueryHandler
	GetCustomerOrders    queries.GetCustomerOrdersQueryHandler
	GetPartnerOrders     queries.GetPartnerOrdersQueryHandler
	GetUnassignedOrders  queries.GetUnassignedOrdersQueryHandler
	GetAvailablePartners queries.GetAvailablePartnersQueryHandler
	GetPartnerByUser     queries.GetPartnerByUserQueryHandler
	GetTracking          queries.GetTrackingQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		placeOrderHandler:       handlers.PlaceOrder,
		cancelOrderHandler:      handlers.CancelOrder,
		overrideStatusHandler:   handlers.OverrideStatus,
		deleteOrderHandler:      handlers.DeleteOrder,
		registerPartnerHandler:  handlers.RegisterPartner,
		reportLocationHandler:   handlers.ReportLocation,
		assignPartnerHandler:    handlers.AssignPartner,
		acceptOrderHandler:      handlers.AcceptOrder,
		pickUpHandler:           handlers.PickUp,
		startDeliveryHandler:    handlers.StartDelivery,
		completeDeliveryHandler: handlers.CompleteDelivery,

		getOrderHandler:             handlers.GetOrder,
		getAllOrdersHandler:         handlers.GetAllOrders,
		getCustomerOrdersHandler:    handlers.GetCustomerOrders,
		getPartnerOrdersHandler:     handlers.GetPartnerOrders,
		getUnassignedOrdersHandler:  handlers.GetUnassignedOrders,
		getAvailablePartnersHandler: handlers.GetAvailablePartners,
		getPartnerByUserHandler:     handlers.GetPartnerByUser,
		getTrackingHandler:          handlers.GetTracking,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")

	ordersGroup := api.Group("/orders")
	ordersGroup.POST("", s.PlaceOrder)
	ordersGroup.GET("", s.GetAllOrders)
	ordersGroup.GET("/:id", s.GetOrder)
	ordersGroup.GET("/customer/:customerId", s.GetCustomerOrders)
	ordersGroup.POST("/:id/cancel", s.CancelOrder)
	ordersGroup.PUT("/:id/status", s.OverrideStatus)
	ordersGroup.DELETE("/:id", s.DeleteOrder)

	deliveryGroup := api.Group("/delivery")
	deliveryGroup.POST("/partners", s.RegisterPartner)
	deliveryGroup.GET("/partners/available", s.GetAvailablePartners)
	deliveryGroup.GET("/partners/by-user/:userId", s.GetPartnerByUser)
	deliveryGroup.POST("/partners/:id/location", s.ReportLocation)
	deliveryGroup.GET("/partners/:id/orders", s.GetPartnerOrders)
	deliveryGroup.GET("/orders/unassigned", s.GetUnassignedOrders)
	deliveryGroup.POST("/orders/:id/assign/:partnerId", s.AssignPartner)
	deliveryGroup.POST("/orders/:id/accept/:partnerId", s.AcceptOrder)
	deliveryGroup.POST("/orders/:id/pickup", s.PickUp)
	deliveryGroup.POST("/orders/:id/start", s.StartDelivery)
	deliveryGroup.POST("/orders/:id/complete", s.CompleteDelivery)

	api.GET("/track/:id", s.GetTracking)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /api/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(request.CustomerID[:])
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}
	restaurantID, err := kernel.UUIDFromBytes(request.RestaurantID[:])
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id")
	}

	items := make([]commands.PlaceOrderItem, 0, len(request.Items))
	for _, item := range request.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(item.MenuItemID[:])
		if itemErr != nil {
			return badRequest(ctx, "Invalid menu item id")
		}
		items = append(items, commands.PlaceOrderItem{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, restaurantID, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedResponse{OrderID: orderID.Bytes()})
}

// GetAllOrders handles GET /api/orders.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(response))
}

// GetCustomerOrders handles GET /api/orders/customer/:customerId.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := parseUUIDParam(ctx, "customerId")
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// CancelOrder handles POST /api/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// OverrideStatus handles PUT /api/orders/:id/status.
func (s *Server) OverrideStatus(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request OverrideStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(request.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+request.Status)
	}

	cmd, err := commands.NewOverrideStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.overrideStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeleteOrder handles DELETE /api/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterPartner handles POST /api/delivery/partners.
func (s *Server) RegisterPartner(ctx echo.Context) error {
	var request RegisterPartnerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var userID *kernel.UUID
	if request.UserID != nil {
		converted, err := kernel.UUIDFromBytes((*request.UserID)[:])
		if err != nil {
			return badRequest(ctx, "Invalid user id")
		}
		userID = &converted
	}

	partnerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterPartnerCommand(partnerID, userID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.registerPartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PartnerCreatedResponse{PartnerID: partnerID.Bytes()})
}

// GetAvailablePartners handles GET /api/delivery/partners/available.
func (s *Server) GetAvailablePartners(ctx echo.Context) error {
	partners, err := s.getAvailablePartnersHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetAvailablePartnersQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AvailablePartnerResponse, 0, len(partners))
	for _, p := range partners {
		response = append(response, AvailablePartnerResponse{
			ID:        p.ID.Bytes(),
			Name:      p.Name,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPartnerByUser handles GET /api/delivery/partners/by-user/:userId.
func (s *Server) GetPartnerByUser(ctx echo.Context) error {
	userID, err := parseUUIDParam(ctx, "userId")
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	query, err := queries.NewGetPartnerByUserQuery(userID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	p, err := s.getPartnerByUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PartnerResponse{
		ID:        p.ID.Bytes(),
		Available: p.Available,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	})
}

// ReportLocation handles POST /api/delivery/partners/:id/location.
func (s *Server) ReportLocation(ctx echo.Context) error {
	partnerID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid partner id")
	}

	var request LocationRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReportLocationCommand(partnerID, request.Latitude, request.Longitude)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.reportLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetPartnerOrders handles GET /api/delivery/partners/:id/orders.
func (s *Server) GetPartnerOrders(ctx echo.Context) error {
	partnerID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid partner id")
	}

	query, err := queries.NewGetPartnerOrdersQuery(partnerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getPartnerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetUnassignedOrders handles GET /api/delivery/orders/unassigned.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	orders, err := s.getUnassignedOrdersHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetUnassignedOrdersQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// AssignPartner handles POST /api/delivery/orders/:id/assign/:partnerId.
func (s *Server) AssignPartner(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	partnerID, err := parseUUIDParam(ctx, "partnerId")
	if err != nil {
		return badRequest(ctx, "Invalid partner id")
	}

	cmd, err := commands.NewAssignPartnerCommand(orderID, partnerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.assignPartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AcceptOrder handles POST /api/delivery/orders/:id/accept/:partnerId.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	partnerID, err := parseUUIDParam(ctx, "partnerId")
	if err != nil {
		return badRequest(ctx, "Invalid partner id")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, partnerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// PickUp handles POST /api/delivery/orders/:id/pickup.
func (s *Server) PickUp(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewPickUpOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.pickUpHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// StartDelivery handles POST /api/delivery/orders/:id/start.
func (s *Server) StartDelivery(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewStartDeliveryCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.startDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CompleteDelivery handles POST /api/delivery/orders/:id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetTracking handles GET /api/track/:id.
func (s *Server) GetTracking(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetTrackingQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	view, err := s.getTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackingResponse{
		OrderID:        view.OrderID.Bytes(),
		Status:         view.Status,
		RestaurantName: view.RestaurantName,
		RestaurantLat:  view.RestaurantLat,
		RestaurantLon:  view.RestaurantLon,
		PartnerName:    view.PartnerName,
		PartnerLat:     view.PartnerLat,
		PartnerLon:     view.PartnerLon,
	})
}

func parseUUIDParam(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps domain errors to HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, partner.ErrPartnerUnavailable),
		errors.Is(err, errs.ErrVersionIsInvalid):
		code = http.StatusConflict
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
