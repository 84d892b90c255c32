// Package http exposes the application's use cases over a REST API.
// Handlers translate between JSON request models and application commands
// and queries, mapping domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"packnow/internal/core/application/usecases/commands"
	"packnow/internal/core/application/usecases/queries"
	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/core/domain/model/order"
	"packnow/internal/core/domain/services"
	"packnow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the packaging service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	createPackerHandler      commands.CreatePackerCommandHandler
	restockPackerHandler     commands.RestockPackerCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getUnassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler
	getAllPackersHandler       queries.GetAllPackersQueryHandler
	getLowStockPackersHandler  queries.GetLowStockPackersQueryHandler

	// Domain services backing the quote endpoint
	estimator services.MaterialEstimator
	engine    services.PricingEngine

	lowStockThreshold int
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	createPackerHandler commands.CreatePackerCommandHandler,
	restockPackerHandler commands.RestockPackerCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUnassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler,
	getAllPackersHandler queries.GetAllPackersQueryHandler,
	getLowStockPackersHandler queries.GetLowStockPackersQueryHandler,
	estimator services.MaterialEstimator,
	engine services.PricingEngine,
	lowStockThreshold int,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		createPackerHandler:        createPackerHandler,
		restockPackerHandler:       restockPackerHandler,
		getOrderHandler:            getOrderHandler,
		getUnassignedOrdersHandler: getUnassignedOrdersHandler,
		getAllPackersHandler:       getAllPackersHandler,
		getLowStockPackersHandler:  getLowStockPackersHandler,
		estimator:                  estimator,
		engine:                     engine,
		lowStockThreshold:          lowStockThreshold,
	}
}

// RegisterRoutes attaches all API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/unassigned", s.GetUnassignedOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/status", s.UpdateOrderStatus)

	api.POST("/packers", s.CreatePacker)
	api.GET("/packers", s.GetPackers)
	api.GET("/packers/low-stock", s.GetLowStockPackers)
	api.POST("/packers/:id/restock", s.RestockPacker)

	api.POST("/quotes", s.CreateQuote)
}

// CreateOrder handles POST /api/v1/orders - creates a new packaging order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		newOrder.CustomerID,
		order.Category(newOrder.Category),
		newOrder.Dimensions.Length,
		newOrder.Dimensions.Width,
		newOrder.Dimensions.Height,
		newOrder.Dimensions.Weight,
		order.Fragility(newOrder.Fragility),
		order.Urgency(newOrder.Urgency),
		newOrder.Pickup.Lat,
		newOrder.Pickup.Lng,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.Bytes()})
}

// GetUnassignedOrders handles GET /api/v1/orders/unassigned - retrieves
// orders still waiting for a packer.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	query := queries.NewGetUnassignedOrdersQuery()

	orders, err := s.getUnassignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]UnassignedOrder, len(orders))
	for i, o := range orders {
		response[i] = UnassignedOrder{
			ID:         o.ID.Bytes(),
			CustomerID: o.CustomerID,
			Category:   o.Category,
			Urgency:    o.Urgency,
			Pickup: GeoPoint{
				Lat: o.Pickup.Lat(),
				Lng: o.Pickup.Lng(),
			},
			FinalPrice: o.FinalPrice,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with its
// price breakdown and workflow state.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	response := Order{
		ID:         o.ID.Bytes(),
		CustomerID: o.CustomerID,
		Category:   o.Category,
		Fragility:  o.Fragility,
		Urgency:    o.Urgency,
		Pickup: GeoPoint{
			Lat: o.Pickup.Lat(),
			Lng: o.Pickup.Lng(),
		},
		Materials: o.Materials,
		BoxSize:   o.BoxSize,
		Price: PriceBreakdown{
			BasePrice:          o.BasePrice,
			MaterialCost:       o.MaterialCost,
			DistanceCharge:     o.DistanceCharge,
			UrgencyMultiplier:  o.UrgencyMultiplier,
			CategoryMultiplier: o.CategoryMultiplier,
			FinalPrice:         o.FinalPrice,
		},
		DistanceKm: o.DistanceKm,
		Status:     o.Status,
	}
	if o.PackerID != nil {
		assigned := o.PackerID.Bytes()
		response.PackerID = &assigned
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels an order
// and returns reserved materials to the assigned packer.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.orderWorkflowError(ctx, handleErr, "Failed to cancel order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status - moves an order
// through its packing workflow.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	var body UpdateOrderStatus
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, ok := parseWorkflowStatus(body.Status)
	if !ok {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Unknown status: " + body.Status,
		})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status data: " + err.Error(),
		})
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.orderWorkflowError(ctx, handleErr, "Failed to update order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreatePacker handles POST /api/v1/packers - registers a new packer.
func (s *Server) CreatePacker(ctx echo.Context) error {
	var newPacker NewPacker
	if err := ctx.Bind(&newPacker); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	packerID := kernel.NewUUID()

	cmd, err := commands.NewCreatePackerCommand(
		packerID,
		newPacker.Name,
		newPacker.Location.Lat,
		newPacker.Location.Lng,
		newPacker.Inventory,
		newPacker.Rating,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid packer data: " + err.Error(),
		})
	}

	if handleErr := s.createPackerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create packer",
		})
	}

	return ctx.JSON(http.StatusCreated, PackerCreated{ID: packerID.Bytes()})
}

// GetPackers handles GET /api/v1/packers - retrieves all packers.
func (s *Server) GetPackers(ctx echo.Context) error {
	query := queries.NewGetAllPackersQuery()

	packers, err := s.getAllPackersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve packers",
		})
	}

	response := make([]Packer, len(packers))
	for i, p := range packers {
		response[i] = Packer{
			ID:   p.ID.Bytes(),
			Name: p.Name,
			Location: GeoPoint{
				Lat: p.Location.Lat(),
				Lng: p.Location.Lng(),
			},
			Available: p.Available,
			Rating:    p.Rating,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLowStockPackers handles GET /api/v1/packers/low-stock - retrieves
// packers whose inventory dropped below the restock threshold.
func (s *Server) GetLowStockPackers(ctx echo.Context) error {
	query, err := queries.NewGetLowStockPackersQuery(s.lowStockThreshold)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Invalid stock threshold",
		})
	}

	packers, err := s.getLowStockPackersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve packers",
		})
	}

	response := make([]LowStockPacker, len(packers))
	for i, p := range packers {
		response[i] = LowStockPacker{
			ID:       p.ID.Bytes(),
			Name:     p.Name,
			LowItems: p.LowItems,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RestockPacker handles POST /api/v1/packers/:id/restock - tops up a
// packer's inventory.
func (s *Server) RestockPacker(ctx echo.Context) error {
	packerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid packer ID",
		})
	}

	var body RestockRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRestockPackerCommand(packerID, body.Items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid restock data: " + err.Error(),
		})
	}

	if handleErr := s.restockPackerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrNoPackerFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Packer not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to restock packer",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateQuote handles POST /api/v1/quotes - estimates materials and price
// for a prospective order without persisting anything.
func (s *Server) CreateQuote(ctx echo.Context) error {
	var req QuoteRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	dims, err := order.NewItemDimensions(
		req.Dimensions.Length,
		req.Dimensions.Width,
		req.Dimensions.Height,
		req.Dimensions.Weight,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid dimensions: " + err.Error(),
		})
	}

	materials, boxSize, err := s.estimator.Estimate(
		order.Category(req.Category), dims, order.Fragility(req.Fragility))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid quote data: " + err.Error(),
		})
	}

	breakdown, err := s.engine.Price(
		order.Category(req.Category), materials, req.DistanceKm, order.Urgency(req.Urgency))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid quote data: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, Quote{
		Materials:          materials,
		BoxSize:            boxSize,
		BasePrice:          breakdown.BasePrice(),
		MaterialCost:       breakdown.MaterialCost(),
		DistanceCharge:     breakdown.DistanceCharge(),
		UrgencyMultiplier:  breakdown.UrgencyMultiplier(),
		CategoryMultiplier: breakdown.CategoryMultiplier(),
		FinalPrice:         breakdown.FinalPrice(),
	})
}

// orderWorkflowError maps order command failures onto HTTP status codes.
// Missing orders map to 404 and invalid workflow transitions to 409.
func (s *Server) orderWorkflowError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, commands.ErrNoOrderFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}

// parseWorkflowStatus maps the wire status names onto domain statuses.
// Only forward workflow states are accepted here.
func parseWorkflowStatus(s string) (order.Status, bool) {
	switch s {
	case "OnTheWay":
		return order.OnTheWay, true
	case "Packed":
		return order.Packed, true
	case "Completed":
		return order.Completed, true
	default:
		return order.Unknown, false
	}
}
