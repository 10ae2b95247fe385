package transport

import (
	"github.com/mkotelnikov/restaurant-pos/internal/models"
	"github.com/mkotelnikov/restaurant-pos/internal/status"
)

// Request and response shapes of the /api surface. Responses use the
// {"status": "...", "message": "...", "data": ...} envelope.

type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

type CreateOrderItem struct {
	MenuID        int    `json:"menu_id"`
	Quantity      int    `json:"quantity"`
	Customization string `json:"customization,omitempty"`
}

type CreateOrderRequest struct {
	Customer            CustomerInfo      `json:"customer"`
	OrderType           string            `json:"order_type"`
	TableNumber         *int              `json:"table_number,omitempty"`
	SpecialInstructions string            `json:"special_instructions,omitempty"`
	Items               []CreateOrderItem `json:"items"`
}

type CreateOrderResponse struct {
	OrderID     int     `json:"order_id"`
	OrderToken  string  `json:"order_token"`
	TotalAmount float64 `json:"total_amount"`
}

type UpdateStatusRequest struct {
	OrderStatus string `json:"order_status"`
}

type CreateMenuItemRequest struct {
	ItemName        string  `json:"item_name"`
	Description     string  `json:"description,omitempty"`
	Category        string  `json:"category"`
	Cuisine         string  `json:"cuisine"`
	Price           float64 `json:"price"`
	PreparationTime int     `json:"preparation_time,omitempty"`
	IsAvailable     *bool   `json:"is_available,omitempty"`
}

type AvailabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}

type CreatePaymentRequest struct {
	OrderID        int      `json:"order_id"`
	PaymentMethod  string   `json:"payment_method"`
	AmountReceived *float64 `json:"amount_received,omitempty"`
}

type CreatePaymentResponse struct {
	PaymentID      int     `json:"payment_id"`
	ChangeReturned float64 `json:"change_returned"`
}

// Bill is the payment-form preview for one order.
type Bill struct {
	OrderID                 int                `json:"order_id"`
	OrderToken              string             `json:"order_token"`
	OrderType               string             `json:"order_type"`
	TableNumber             *int               `json:"table_number"`
	CustomerName            string             `json:"customer_name"`
	CustomerPhone           string             `json:"customer_phone"`
	Items                   []models.OrderItem `json:"items"`
	Subtotal                float64            `json:"subtotal"`
	TaxAmount               float64            `json:"gst_amount"`
	TaxPercentage           float64            `json:"gst_percentage"`
	ServiceCharge           float64            `json:"service_charge"`
	ServiceChargePercentage float64            `json:"service_charge_percentage"`
	TotalAmount             float64            `json:"total_amount"`
	OrderDate               string             `json:"order_date"`
}

// BoardOrder is an order as the kitchen and order boards render it:
// the server row plus the derived display attributes.
type BoardOrder struct {
	models.Order
	Urgent  bool            `json:"urgent"`
	Label   string          `json:"status_label"`
	Color   string          `json:"status_color"`
	Actions []status.Action `json:"actions"`
}
