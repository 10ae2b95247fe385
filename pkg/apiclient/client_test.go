package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkotelnikov/restaurant-pos/internal/transport"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func writeEnvelope(w http.ResponseWriter, code int, status, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": status, "message": message, "data": data,
	})
}

func TestActiveOrders(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/orders/active", r.URL.Path)
		writeEnvelope(w, http.StatusOK, "success", "", []map[string]any{
			{"order_id": 1, "order_token": "T-001", "order_status": "pending"},
			{"order_id": 2, "order_token": "D5-01", "order_status": "preparing"},
		})
	})

	orders, err := c.ActiveOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "T-001", orders[0].Token)
	assert.Equal(t, "preparing", orders[1].Status)
}

func TestListOrders_Query(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		assert.Equal(t, "dine-in", r.URL.Query().Get("order_type"))
		assert.Equal(t, "2025-03-14", r.URL.Query().Get("date"))
		writeEnvelope(w, http.StatusOK, "success", "", []any{})
	})

	orders, err := c.ListOrders(context.Background(), OrdersQuery{
		Status:    "pending",
		OrderType: "dine-in",
		Date:      "2025-03-14",
	})
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCreateOrder(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req transport.CreateOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Asha", req.Customer.Name)
		assert.Equal(t, "takeaway", req.OrderType)
		writeEnvelope(w, http.StatusCreated, "success", "order created", map[string]any{
			"order_id": 7, "order_token": "T-001", "total_amount": 210.0,
		})
	})

	resp, err := c.CreateOrder(context.Background(), transport.CreateOrderRequest{
		Customer:  transport.CustomerInfo{Name: "Asha", Phone: "9876543210"},
		OrderType: "takeaway",
		Items:     []transport.CreateOrderItem{{MenuID: 1, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 7, resp.OrderID)
	assert.Equal(t, "T-001", resp.OrderToken)
	assert.Equal(t, 210.0, resp.TotalAmount)
}

func TestUpdateOrderStatus_ConflictMessage(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		writeEnvelope(w, http.StatusConflict, "error", "cannot change status from ready to preparing", nil)
	})

	err := c.UpdateOrderStatus(context.Background(), 3, "preparing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	// the server message reaches the caller unchanged
	assert.Equal(t, "cannot change status from ready to preparing", err.Error())
}

func TestGetBill(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payments/bill/5", r.URL.Path)
		writeEnvelope(w, http.StatusOK, "success", "", map[string]any{
			"order_token": "D2-01", "subtotal": 200.0, "gst_amount": 10.0,
			"service_charge": 20.0, "total_amount": 230.0,
		})
	})

	bill, err := c.GetBill(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "D2-01", bill.OrderToken)
	assert.Equal(t, 230.0, bill.TotalAmount)
}

func TestAPIError_NonJSONBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := c.ActiveOrders(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "request failed with status 502", err.Error())
}

func TestContextCancellation(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ActiveOrders(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
