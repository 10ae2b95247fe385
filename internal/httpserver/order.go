package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mkotelnikov/restaurant-pos/internal/events"
	"github.com/mkotelnikov/restaurant-pos/internal/logging"
	"github.com/mkotelnikov/restaurant-pos/internal/repo"
	"github.com/mkotelnikov/restaurant-pos/internal/service"
	"github.com/mkotelnikov/restaurant-pos/internal/transport"
)

type OrderHandler struct {
	Svc      *service.OrderService
	Producer *events.Producer
}

func (h *OrderHandler) publish(c echo.Context, orderID int, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := contextWithPublishTimeout(c)
	defer cancel()
	if err := h.Producer.Publish(ctx, events.TopicOrder, strconv.Itoa(orderID), event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("order event publish failed", "order_id", orderID, "error", err)
	}
}

func (h *OrderHandler) List(c echo.Context) error {
	f := repo.OrderFilter{
		Status:    c.QueryParam("status"),
		OrderType: c.QueryParam("order_type"),
		Date:      c.QueryParam("date"),
	}

	orders, err := h.Svc.List(c.Request().Context(), f)
	if err != nil {
		return serviceError(c, err)
	}
	return successResponse(c, http.StatusOK, "Success", orders)
}

func (h *OrderHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid order id")
	}

	order, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return successResponse(c, http.StatusOK, "Success", order)
}

// Active serves the kitchen queue.
func (h *OrderHandler) Active(c echo.Context) error {
	orders, err := h.Svc.Active(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return successResponse(c, http.StatusOK, "Success", orders)
}

func (h *OrderHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.Create(ctx, req)
	if err != nil {
		l.Warn("create_order_error", "error", err)
		return serviceError(c, err)
	}

	l.Info("create_order_success", "order_id", order.ID, "order_token", order.Token)
	h.publish(c, order.ID, map[string]any{
		"type":        "order_created",
		"order_id":    order.ID,
		"order_token": order.Token,
		"order_type":  order.OrderType,
	})

	return successResponse(c, http.StatusCreated, "Order created successfully", transport.CreateOrderResponse{
		OrderID:     order.ID,
		OrderToken:  order.Token,
		TotalAmount: order.TotalAmount,
	})
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid order id")
	}

	var req transport.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}
	if req.OrderStatus == "" {
		return errorResponse(c, http.StatusBadRequest, "order_status is required")
	}

	if err := h.Svc.UpdateStatus(c.Request().Context(), id, req.OrderStatus); err != nil {
		return serviceError(c, err)
	}

	h.publish(c, id, map[string]any{"type": "order_status_changed", "order_id": id, "order_status": req.OrderStatus})

	return successResponse(c, http.StatusOK, "Order status updated successfully", nil)
}

// Cancel soft-deletes: the row stays, the status goes terminal.
func (h *OrderHandler) Cancel(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid order id")
	}

	if err := h.Svc.Cancel(c.Request().Context(), id); err != nil {
		return serviceError(c, err)
	}

	h.publish(c, id, map[string]any{"type": "order_cancelled", "order_id": id})

	return successResponse(c, http.StatusOK, "Order cancelled successfully", nil)
}
