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

type PaymentHandler struct {
	Svc      *service.PaymentService
	Producer *events.Producer
}

func (h *PaymentHandler) publish(c echo.Context, orderID int, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := contextWithPublishTimeout(c)
	defer cancel()
	if err := h.Producer.Publish(ctx, events.TopicPayment, strconv.Itoa(orderID), event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("payment event publish failed", "order_id", orderID, "error", err)
	}
}

func (h *PaymentHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.create")

	var req transport.CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}

	p, err := h.Svc.Create(ctx, req)
	if err != nil {
		l.Warn("create_payment_error", "order_id", req.OrderID, "error", err)
		return serviceError(c, err)
	}

	l.Info("create_payment_success", "payment_id", p.ID, "order_id", p.OrderID)
	h.publish(c, p.OrderID, map[string]any{
		"type":           "payment_processed",
		"payment_id":     p.ID,
		"order_id":       p.OrderID,
		"payment_method": p.Method,
		"total_amount":   p.TotalAmount,
	})

	return successResponse(c, http.StatusCreated, "Payment processed successfully", transport.CreatePaymentResponse{
		PaymentID:      p.ID,
		ChangeReturned: p.ChangeReturned,
	})
}

func (h *PaymentHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid payment id")
	}

	p, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return successResponse(c, http.StatusOK, "Success", p)
}

func (h *PaymentHandler) GetByOrder(c echo.Context) error {
	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid order id")
	}

	p, err := h.Svc.GetByOrder(c.Request().Context(), orderID)
	if err != nil {
		return serviceError(c, err)
	}
	return successResponse(c, http.StatusOK, "Success", p)
}

func (h *PaymentHandler) List(c echo.Context) error {
	f := repo.PaymentFilter{
		Date:   c.QueryParam("date"),
		Method: c.QueryParam("payment_method"),
	}

	payments, err := h.Svc.List(c.Request().Context(), f)
	if err != nil {
		return serviceError(c, err)
	}
	return successResponse(c, http.StatusOK, "Success", payments)
}

// TodaySummary reports today's takings per payment method.
func (h *PaymentHandler) TodaySummary(c echo.Context) error {
	s, err := h.Svc.TodaySummary(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return successResponse(c, http.StatusOK, "Success", s)
}

// Bill returns the payment-form preview without processing anything.
func (h *PaymentHandler) Bill(c echo.Context) error {
	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid order id")
	}

	bill, err := h.Svc.Bill(c.Request().Context(), orderID)
	if err != nil {
		return serviceError(c, err)
	}
	return successResponse(c, http.StatusOK, "Success", bill)
}
