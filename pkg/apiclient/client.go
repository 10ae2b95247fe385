// Package apiclient is a typed client for the restaurant /api surface,
// used by the kitchen board and other terminal views. Calls never
// retry; a failed request is reported and the caller decides when to
// re-fetch.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mkotelnikov/restaurant-pos/internal/models"
	"github.com/mkotelnikov/restaurant-pos/internal/transport"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// APIError carries the server's message verbatim so forms can show it
// to the user unchanged.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return &APIError{StatusCode: resp.StatusCode}
		}
		return err
	}

	if resp.StatusCode >= 400 || env.Status == "error" {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

// OrdersQuery narrows ListOrders; zero values mean "no filter".
type OrdersQuery struct {
	Status    string
	OrderType string
	Date      string
}

func (c *Client) ListOrders(ctx context.Context, q OrdersQuery) ([]models.Order, error) {
	v := url.Values{}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.OrderType != "" {
		v.Set("order_type", q.OrderType)
	}
	if q.Date != "" {
		v.Set("date", q.Date)
	}
	path := "/api/orders"
	if len(v) > 0 {
		path += "?" + v.Encode()
	}

	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, path, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ActiveOrders fetches the kitchen queue.
func (c *Client) ActiveOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/active", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+strconv.Itoa(id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*transport.CreateOrderResponse, error) {
	var resp transport.CreateOrderResponse
	if err := c.do(ctx, http.MethodPost, "/api/orders", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int, newStatus string) error {
	req := transport.UpdateStatusRequest{OrderStatus: newStatus}
	return c.do(ctx, http.MethodPatch, "/api/orders/"+strconv.Itoa(id)+"/status", req, nil)
}

func (c *Client) CancelOrder(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/orders/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) GetBill(ctx context.Context, orderID int) (*transport.Bill, error) {
	var bill transport.Bill
	if err := c.do(ctx, http.MethodGet, "/api/payments/bill/"+strconv.Itoa(orderID), nil, &bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

func (c *Client) CreatePayment(ctx context.Context, req transport.CreatePaymentRequest) (*transport.CreatePaymentResponse, error) {
	var resp transport.CreatePaymentResponse
	if err := c.do(ctx, http.MethodPost, "/api/payments", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
