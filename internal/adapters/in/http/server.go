// Package http exposes the order operations over an echo HTTP server.
// Handlers stay thin: they bind and shape-check the request, delegate to
// command and query handlers, and translate errors to status codes.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts validator/v10 to echo's Validator interface.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a request validator for echo.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks struct tags on a bound request.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// createOrderRequest carries the coordinates of a new order. Coordinate
// values stay strings here; numeric parsing happens in the command
// constructor so the wire layer holds no conversion rules.
type createOrderRequest struct {
	Origin      []string `json:"origin"      validate:"required,len=2"`
	Destination []string `json:"destination" validate:"required,len=2"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Distance int    `json:"distance"`
	Status   string `json:"status"`
}

type takeOrderResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler commands.CreateOrderCommandHandler
	takeOrderHandler   commands.TakeOrderCommandHandler
	getOrdersHandler   queries.GetOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	takeOrderHandler commands.TakeOrderCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		takeOrderHandler:   takeOrderHandler,
		getOrdersHandler:   getOrdersHandler,
	}
}

// RegisterRoutes attaches the order routes to an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.CreateOrder)
	e.PATCH("/orders/:id", s.TakeOrder)
	e.GET("/orders", s.GetOrders)
}

// CreateOrder handles POST /orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	if err := ctx.Validate(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	cmd, err := commands.NewCreateOrderCommand(req.Origin, req.Destination)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	resp, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.orderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse{
		ID:       resp.ID.String(),
		Distance: resp.Distance,
		Status:   resp.Status.String(),
	})
}

// TakeOrder handles PATCH /orders/:id - claims an order.
func (s *Server) TakeOrder(ctx echo.Context) error {
	cmd, err := commands.NewTakeOrderCommand(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err = s.takeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.orderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, takeOrderResponse{Status: "SUCCESS"})
}

// GetOrders handles GET /orders?page=P&limit=L - lists one page of orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetOrdersQuery(ctx.QueryParam("page"), ctx.QueryParam("limit"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to retrieve orders"})
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderResponse{
			ID:       o.ID.String(),
			Distance: o.Distance,
			Status:   o.Status.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// orderError translates use case errors into HTTP responses. Client
// mistakes map to 4xx, dependency outages to 503, everything else to 500.
func (s *Server) orderError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrOrderNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, commands.ErrOrderAlreadyTaken),
		errors.Is(err, commands.ErrNoRouteFound):
		return ctx.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, commands.ErrDistanceProviderUnavailable):
		return ctx.JSON(http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
