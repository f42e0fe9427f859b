// Package http exposes the canteen service over REST using Echo.
// Handlers translate between JSON payloads and application commands and
// queries; all business rules live below this layer.
package http

import (
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"canteen/internal/core/application/auth"
	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error payload returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Credentials configures the single kitchen staff account.
type Credentials struct {
	Username string
	Password string
}

// Server wires HTTP routes to the application's command and query handlers.
type Server struct {
	placeOrderHandler        commands.PlaceOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	getMenuHandler         queries.GetMenuQueryHandler
	getQueueStatusHandler  queries.GetQueueStatusQueryHandler
	getKitchenQueueHandler queries.GetKitchenQueueQueryHandler
	getDailySummaryHandler queries.GetDailySummaryQueryHandler

	sessions    *SessionStore
	credentials Credentials
}

// NewServer creates an HTTP server with the required handlers, session store
// and kitchen credentials.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getQueueStatusHandler queries.GetQueueStatusQueryHandler,
	getKitchenQueueHandler queries.GetKitchenQueueQueryHandler,
	getDailySummaryHandler queries.GetDailySummaryQueryHandler,
	sessions *SessionStore,
	credentials Credentials,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getMenuHandler:           getMenuHandler,
		getQueueStatusHandler:    getQueueStatusHandler,
		getKitchenQueueHandler:   getKitchenQueueHandler,
		getDailySummaryHandler:   getDailySummaryHandler,
		sessions:                 sessions,
		credentials:              credentials,
	}
}

// RegisterRoutes attaches all endpoints to the Echo instance. Kitchen and
// stats endpoints sit behind the session middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/menu", s.GetMenu)
	e.POST("/orders", s.PlaceOrder)
	e.GET("/queue-status", s.GetQueueStatus)

	e.POST("/admin/login", s.Login)
	e.POST("/admin/logout", s.Logout)

	staff := e.Group("", s.requireSession)
	staff.GET("/kitchen/orders", s.GetKitchenQueue)
	staff.POST("/kitchen/orders/:id/status", s.UpdateOrderStatus)
	staff.GET("/stats/today", s.GetDailySummary)
}

// requireSession rejects requests without a live session token and grants
// kitchen access to the ones that carry it. The capability value in the
// request context is the only way command handlers accept staff operations.
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if !s.sessions.IsValid(bearerToken(ctx)) {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Login required",
			})
		}

		ctx.Set(kitchenAccessKey, auth.GrantKitchenAccess())
		return next(ctx)
	}
}

const kitchenAccessKey = "kitchenAccess"

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	return strings.TrimPrefix(header, "Bearer ")
}

// LoginRequest carries the kitchen staff credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /admin/login - authenticates kitchen staff and issues a
// session token.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	usernameOK := constantTimeEquals(req.Username, s.credentials.Username)
	passwordOK := constantTimeEquals(req.Password, s.credentials.Password)
	if !usernameOK || !passwordOK {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Invalid credentials",
		})
	}

	token, err := s.sessions.Issue()
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create session",
		})
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

// Logout handles POST /admin/logout - revokes the presented session token.
func (s *Server) Logout(ctx echo.Context) error {
	s.sessions.Revoke(bearerToken(ctx))
	return ctx.NoContent(http.StatusNoContent)
}

// MenuItem is one row of the public menu listing.
type MenuItem struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	Price              float64 `json:"price"`
	AvgPrepTimeMinutes int     `json:"avgPrepTimeMinutes"`
}

// GetMenu handles GET /menu - lists the orderable menu items.
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve menu",
		})
	}

	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = MenuItem{
			ID:                 item.ID.String(),
			Name:               item.Name,
			Category:           item.Category,
			Price:              item.Price,
			AvgPrepTimeMinutes: item.AvgPrepTimeMinutes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrderRequest carries a new order submission.
type PlaceOrderRequest struct {
	StudentName    string `json:"studentName"`
	RegistrationID string `json:"registrationId"`
	ItemID         string `json:"itemId"`
	Quantity       int    `json:"quantity"`
}

// PlaceOrderResponse returns the identifier assigned to the new order.
type PlaceOrderResponse struct {
	OrderID string `json:"orderId"`
}

// PlaceOrder handles POST /orders - places a new order, registering the
// student on first contact.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	itemID, err := kernel.UUIDFromString(req.ItemID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid item id",
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID, req.StudentName, req.RegistrationID, itemID, req.Quantity)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{OrderID: orderID.String()})
}

// QueueStatusResponse is the public view of today's backlog.
type QueueStatusResponse struct {
	PendingOrders  int     `json:"pendingOrders"`
	AvgWaitMinutes float64 `json:"avgWaitMinutes"`
}

// GetQueueStatus handles GET /queue-status - reports the pending backlog and
// projected wait.
func (s *Server) GetQueueStatus(ctx echo.Context) error {
	status, err := s.getQueueStatusHandler.Handle(
		ctx.Request().Context(), queries.NewGetQueueStatusQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to compute queue status",
		})
	}

	return ctx.JSON(http.StatusOK, QueueStatusResponse{
		PendingOrders:  status.PendingCount,
		AvgWaitMinutes: round2(status.AvgWaitMinutes),
	})
}

// KitchenOrder is one row of the kitchen work list.
type KitchenOrder struct {
	ID                    string    `json:"id"`
	StudentName           string    `json:"studentName"`
	StudentRegistrationID string    `json:"studentRegistrationId"`
	ItemName              string    `json:"itemName"`
	Quantity              int       `json:"quantity"`
	Status                string    `json:"status"`
	OrderTime             time.Time `json:"orderTime"`
}

// GetKitchenQueue handles GET /kitchen/orders - lists the orders the kitchen
// still has to act on, oldest first.
func (s *Server) GetKitchenQueue(ctx echo.Context) error {
	queue, err := s.getKitchenQueueHandler.Handle(
		ctx.Request().Context(), queries.NewGetKitchenQueueQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve kitchen queue",
		})
	}

	response := make([]KitchenOrder, len(queue))
	for i, row := range queue {
		response[i] = KitchenOrder{
			ID:                    row.ID.String(),
			StudentName:           row.StudentName,
			StudentRegistrationID: row.StudentRegistrationID,
			ItemName:              row.ItemName,
			Quantity:              row.Quantity,
			Status:                row.Status,
			OrderTime:             row.OrderTime,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatusRequest carries the requested lifecycle transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// TransitionConflict reports a rejected transition together with the order's
// current status, so the kitchen view can resync.
type TransitionConflict struct {
	Code          int    `json:"code"`
	Message       string `json:"message"`
	CurrentStatus string `json:"currentStatus"`
}

// UpdateOrderStatus handles POST /kitchen/orders/:id/status - moves an order
// through its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	newStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Unknown status: " + req.Status,
		})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, newStatus)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid transition data: " + err.Error(),
		})
	}

	access, _ := ctx.Get(kitchenAccessKey).(auth.KitchenAccess)
	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), access, cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DailySummaryResponse aggregates today's orders for the staff dashboard.
type DailySummaryResponse struct {
	TotalOrders           int     `json:"totalOrders"`
	DeliveredOrders       int     `json:"deliveredOrders"`
	CancelledOrders       int     `json:"cancelledOrders"`
	Revenue               float64 `json:"revenue"`
	AvgFulfillmentMinutes float64 `json:"avgFulfillmentMinutes"`
}

// GetDailySummary handles GET /stats/today - reports today's totals.
func (s *Server) GetDailySummary(ctx echo.Context) error {
	summary, err := s.getDailySummaryHandler.Handle(
		ctx.Request().Context(), queries.NewGetDailySummaryQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to compute daily summary",
		})
	}

	return ctx.JSON(http.StatusOK, DailySummaryResponse{
		TotalOrders:           summary.TotalOrders,
		DeliveredOrders:       summary.DeliveredOrders,
		CancelledOrders:       summary.CancelledOrders,
		Revenue:               round2(summary.Revenue),
		AvgFulfillmentMinutes: round2(summary.AvgFulfillmentMinutes),
	})
}

// writeError maps application errors onto HTTP statuses. Invalid transitions
// come back as 409 with the order's current status attached.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var invalid *order.InvalidTransitionError
	if errors.As(err, &invalid) {
		return ctx.JSON(http.StatusConflict, TransitionConflict{
			Code:          http.StatusConflict,
			Message:       err.Error(),
			CurrentStatus: invalid.From.String(),
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, auth.ErrKitchenAccessIsNotGranted):
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Login required",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal error",
		})
	}
}

// round2 rounds to two decimal places for presentation. Application layers
// keep full precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
