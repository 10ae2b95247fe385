package repo

import (
	"context"
)

type DailySales struct {
	TotalOrders     int     `json:"total_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	AvgOrderValue   float64 `json:"avg_order_value"`
	DineInOrders    int     `json:"dine_in_orders"`
	TakeawayOrders  int     `json:"takeaway_orders"`
	DineInRevenue   float64 `json:"dine_in_revenue"`
	TakeawayRevenue float64 `json:"takeaway_revenue"`
}

type PopularItem struct {
	MenuID        int     `json:"menu_id"`
	ItemName      string  `json:"item_name"`
	Category      string  `json:"category"`
	Cuisine       string  `json:"cuisine"`
	Price         float64 `json:"price"`
	TimesOrdered  int     `json:"times_ordered"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

type CuisineRevenue struct {
	Cuisine      string  `json:"cuisine"`
	OrderCount   int     `json:"order_count"`
	ItemsSold    int     `json:"items_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

type MethodBreakdown struct {
	PaymentMethod    string  `json:"payment_method"`
	TransactionCount int     `json:"transaction_count"`
	TotalAmount      float64 `json:"total_amount"`
}

// Reports aggregate completed orders only; in-flight and cancelled
// orders never count towards revenue.

func (r *GormRepo) DailySales(ctx context.Context, date string) (*DailySales, error) {
	var s DailySales
	err := r.DB.WithContext(ctx).Raw(`
		SELECT
			COUNT(id) AS total_orders,
			COALESCE(SUM(total_amount), 0) AS total_revenue,
			COALESCE(AVG(total_amount), 0) AS avg_order_value,
			COALESCE(SUM(CASE WHEN order_type = 'dine-in' THEN 1 ELSE 0 END), 0) AS dine_in_orders,
			COALESCE(SUM(CASE WHEN order_type = 'takeaway' THEN 1 ELSE 0 END), 0) AS takeaway_orders,
			COALESCE(SUM(CASE WHEN order_type = 'dine-in' THEN total_amount ELSE 0 END), 0) AS dine_in_revenue,
			COALESCE(SUM(CASE WHEN order_type = 'takeaway' THEN total_amount ELSE 0 END), 0) AS takeaway_revenue
		FROM orders
		WHERE order_date = ? AND order_status = 'completed'`, date).
		Scan(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormRepo) PopularItems(ctx context.Context, startDate, endDate string, limit int) ([]PopularItem, error) {
	var items []PopularItem
	err := r.DB.WithContext(ctx).Raw(`
		SELECT
			m.id AS menu_id,
			m.name AS item_name,
			m.category,
			m.cuisine,
			m.price,
			COUNT(oi.id) AS times_ordered,
			COALESCE(SUM(oi.quantity), 0) AS total_quantity,
			COALESCE(SUM(oi.subtotal), 0) AS total_revenue
		FROM order_items oi
		JOIN menu_items m ON oi.menu_id = m.id
		JOIN orders o ON oi.order_id = o.id
		WHERE o.order_date BETWEEN ? AND ? AND o.order_status = 'completed'
		GROUP BY m.id, m.name, m.category, m.cuisine, m.price
		ORDER BY total_quantity DESC
		LIMIT ?`, startDate, endDate, limit).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) RevenueByCuisine(ctx context.Context, startDate, endDate string) ([]CuisineRevenue, error) {
	var rows []CuisineRevenue
	err := r.DB.WithContext(ctx).Raw(`
		SELECT
			m.cuisine,
			COUNT(DISTINCT oi.order_id) AS order_count,
			COALESCE(SUM(oi.quantity), 0) AS items_sold,
			COALESCE(SUM(oi.subtotal), 0) AS total_revenue
		FROM order_items oi
		JOIN menu_items m ON oi.menu_id = m.id
		JOIN orders o ON oi.order_id = o.id
		WHERE o.order_date BETWEEN ? AND ? AND o.order_status = 'completed'
		GROUP BY m.cuisine
		ORDER BY total_revenue DESC`, startDate, endDate).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepo) PaymentMethodBreakdown(ctx context.Context, startDate, endDate string) ([]MethodBreakdown, error) {
	var rows []MethodBreakdown
	err := r.DB.WithContext(ctx).Raw(`
		SELECT
			payment_method,
			COUNT(id) AS transaction_count,
			COALESCE(SUM(total_amount), 0) AS total_amount
		FROM payments
		WHERE DATE(payment_date) BETWEEN ? AND ?
		GROUP BY payment_method
		ORDER BY total_amount DESC`, startDate, endDate).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
