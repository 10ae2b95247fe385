package models

import (
	"time"
)

type MenuItem struct {
	ID              int     `gorm:"primaryKey;autoIncrement"  json:"menu_id"`
	Name            string  `gorm:"not null"                  json:"item_name"`
	Description     string  `json:"description"`
	Category        string  `gorm:"not null;index"            json:"category"`
	Cuisine         string  `gorm:"not null;index"            json:"cuisine"`
	Price           float64 `gorm:"not null"                  json:"price"`
	PreparationTime int     `json:"preparation_time"`
	IsAvailable     bool    `gorm:"default:true"              json:"is_available"`
}

type Customer struct {
	ID          int     `gorm:"primaryKey;autoIncrement" json:"customer_id"`
	Name        string  `gorm:"not null"                 json:"name"`
	Phone       string  `gorm:"uniqueIndex;not null"     json:"phone"`
	Email       string  `json:"email,omitempty"`
	TotalOrders int     `gorm:"default:0"                json:"total_orders"`
	TotalSpent  float64 `gorm:"default:0"                json:"total_spent"`
}

type Order struct {
	ID                  int        `gorm:"primaryKey;autoIncrement" json:"order_id"`
	Token               string     `gorm:"column:order_token;index" json:"order_token"`
	CustomerID          int        `gorm:"index;not null"           json:"customer_id"`
	CustomerName        string     `gorm:"-"                        json:"customer_name,omitempty"`
	CustomerPhone       string     `gorm:"-"                        json:"customer_phone,omitempty"`
	OrderType           string     `gorm:"not null;index"           json:"order_type"`
	TableNumber         *int       `json:"table_number"`
	Status              string     `gorm:"column:order_status;not null;index" json:"order_status"`
	SpecialInstructions string     `json:"special_instructions,omitempty"`
	Subtotal            float64    `gorm:"not null"                 json:"subtotal"`
	TaxAmount           float64    `gorm:"column:gst_amount;not null" json:"gst_amount"`
	ServiceCharge       float64    `gorm:"not null"                 json:"service_charge"`
	TotalAmount         float64    `gorm:"not null"                 json:"total_amount"`
	OrderDate           string     `gorm:"index"                    json:"order_date"` // YYYY-MM-DD
	CreatedAt           time.Time  `json:"created_at"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

type OrderItem struct {
	ID            int     `gorm:"primaryKey;autoIncrement"  json:"order_item_id"`
	OrderID       int     `gorm:"index;not null"            json:"order_id"`
	MenuID        int     `gorm:"not null"                  json:"menu_id"`
	ItemName      string  `gorm:"-"                         json:"item_name,omitempty"`
	Quantity      int     `gorm:"not null;check:quantity>0" json:"quantity"`
	UnitPrice     float64 `gorm:"not null"                  json:"unit_price"`
	Subtotal      float64 `gorm:"not null"                  json:"subtotal"`
	Customization string  `json:"customization,omitempty"`
}

type Payment struct {
	ID             int       `gorm:"primaryKey;autoIncrement"       json:"payment_id"`
	OrderID        int       `gorm:"uniqueIndex;not null"           json:"order_id"`
	OrderToken     string    `gorm:"-"                              json:"order_token,omitempty"`
	Subtotal       float64   `gorm:"not null"                       json:"subtotal"`
	TaxAmount      float64   `gorm:"column:gst_amount;not null"     json:"gst_amount"`
	ServiceCharge  float64   `gorm:"not null"                       json:"service_charge"`
	TotalAmount    float64   `gorm:"not null"                       json:"total_amount"`
	Method         string    `gorm:"column:payment_method;not null" json:"payment_method"`
	AmountReceived float64   `gorm:"not null"                       json:"amount_received"`
	ChangeReturned float64   `gorm:"default:0"                      json:"change_returned"`
	PaymentDate    time.Time `gorm:"autoCreateTime"                 json:"payment_date"`
}

type RestaurantTable struct {
	TableNumber int    `gorm:"primaryKey"        json:"table_number"`
	Capacity    int    `json:"capacity"`
	Status      string `gorm:"default:available" json:"status"`
}

const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
)

// Menu and payment enumerations, validated at the service layer.
var (
	Categories = []string{"appetizer", "main", "dessert", "beverage"}
	Cuisines   = []string{
		"north-indian", "south-indian", "chinese", "italian",
		"continental", "desserts", "beverages", "starters",
	}
	PaymentMethods = []string{"cash", "card", "upi"}
)
