package repo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mkotelnikov/restaurant-pos/internal/models"
	"github.com/mkotelnikov/restaurant-pos/internal/status"
)

// OrderFilter narrows ListOrders. Zero values mean "no filter".
type OrderFilter struct {
	Status    string
	OrderType string
	Date      string // YYYY-MM-DD
}

// NextOrderToken issues the day's next human-facing token: T-001,
// T-002, ... for takeaway; D<table>-01, D<table>-02, ... per dine-in
// table. The sequence restarts every day.
func (r *GormRepo) NextOrderToken(ctx context.Context, tx *gorm.DB, orderType string, tableNumber *int, day string) (string, error) {
	if tx == nil {
		tx = r.DB
	}

	var prefix string
	if orderType == "takeaway" {
		prefix = "T-"
	} else {
		if tableNumber == nil {
			return "", fmt.Errorf("dine-in token needs a table number")
		}
		prefix = fmt.Sprintf("D%d-", *tableNumber)
	}

	var last models.Order
	err := tx.WithContext(ctx).
		Where("order_token LIKE ? AND order_date = ?", prefix+"%", day).
		Order("id DESC").
		First(&last).Error

	next := 1
	if err == nil {
		parts := strings.SplitN(last.Token, "-", 2)
		if len(parts) == 2 {
			if n, convErr := strconv.Atoi(parts[1]); convErr == nil {
				next = n + 1
			}
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	if orderType == "takeaway" {
		return fmt.Sprintf("%s%03d", prefix, next), nil
	}
	return fmt.Sprintf("%s%02d", prefix, next), nil
}

// CreateOrder persists an order with its items in one transaction and
// marks a dine-in table occupied.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order, makeCustomer func(tx *gorm.DB) (int, error)) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customerID, err := makeCustomer(tx)
		if err != nil {
			return err
		}
		order.CustomerID = customerID

		token, err := r.NextOrderToken(ctx, tx, order.OrderType, order.TableNumber, order.OrderDate)
		if err != nil {
			return err
		}
		order.Token = token

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		if order.OrderType == "dine-in" && order.TableNumber != nil {
			if err := r.setTableStatus(ctx, tx, *order.TableNumber, models.TableOccupied); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormRepo) ListOrders(ctx context.Context, f OrderFilter) ([]models.Order, error) {
	q := r.DB.WithContext(ctx).Model(&models.Order{})
	if f.Status != "" {
		q = q.Where("order_status = ?", f.Status)
	}
	if f.OrderType != "" {
		q = q.Where("order_type = ?", f.OrderType)
	}
	if f.Date != "" {
		q = q.Where("order_date = ?", f.Date)
	}

	var orders []models.Order
	if err := q.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	if err := r.attachCustomers(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	if err := r.attachItemNames(ctx, order.Items); err != nil {
		return nil, err
	}
	if order.CustomerID != 0 {
		var c models.Customer
		if err := r.DB.WithContext(ctx).First(&c, order.CustomerID).Error; err == nil {
			order.CustomerName = c.Name
			order.CustomerPhone = c.Phone
		}
	}
	return &order, nil
}

// ActiveOrders returns the kitchen queue: every order not yet
// completed or cancelled, oldest first, items included.
func (r *GormRepo) ActiveOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("order_status IN ?", []string{
			string(status.Pending), string(status.Preparing), string(status.Ready),
		}).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	if err := r.attachCustomers(ctx, orders); err != nil {
		return nil, err
	}
	for i := range orders {
		if err := r.attachItemNames(ctx, orders[i].Items); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// UpdateOrderStatus writes the new status and keeps table occupancy in
// step: cancelling or completing a dine-in order frees its table.
func (r *GormRepo) UpdateOrderStatus(ctx context.Context, id int, newStatus status.Status) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			return err
		}

		updates := map[string]any{"order_status": string(newStatus)}
		if newStatus == status.Completed {
			updates["completed_at"] = time.Now().UTC()
		}
		if err := tx.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		if newStatus.Terminal() && order.OrderType == "dine-in" && order.TableNumber != nil {
			if err := r.setTableStatus(ctx, tx, *order.TableNumber, models.TableAvailable); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormRepo) attachCustomers(ctx context.Context, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]int, 0, len(orders))
	for _, o := range orders {
		if o.CustomerID != 0 {
			ids = append(ids, o.CustomerID)
		}
	}
	var customers []models.Customer
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&customers).Error; err != nil {
		return err
	}
	byID := make(map[int]models.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}
	for i := range orders {
		if c, ok := byID[orders[i].CustomerID]; ok {
			orders[i].CustomerName = c.Name
			orders[i].CustomerPhone = c.Phone
		}
	}
	return nil
}

func (r *GormRepo) attachItemNames(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.MenuID
	}
	var menu []models.MenuItem
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&menu).Error; err != nil {
		return err
	}
	names := make(map[int]string, len(menu))
	for _, m := range menu {
		names[m.ID] = m.Name
	}
	for i := range items {
		items[i].ItemName = names[items[i].MenuID]
	}
	return nil
}
