package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mkotelnikov/restaurant-pos/internal/billing"
	"github.com/mkotelnikov/restaurant-pos/internal/models"
	"github.com/mkotelnikov/restaurant-pos/internal/repo"
	"github.com/mkotelnikov/restaurant-pos/internal/status"
	"github.com/mkotelnikov/restaurant-pos/internal/transport"
)

type OrderService struct {
	Repo *repo.GormRepo
	Calc billing.Calculator

	// Now lets tests pin the clock; nil means time.Now.
	Now func() time.Time
}

func (svc *OrderService) now() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now().UTC()
}

func validateCreateOrder(req transport.CreateOrderRequest) error {
	if strings.TrimSpace(req.Customer.Name) == "" || strings.TrimSpace(req.Customer.Phone) == "" {
		return fmt.Errorf("%w: customer name and phone are required", ErrValidation)
	}
	if req.OrderType != "dine-in" && req.OrderType != "takeaway" {
		return fmt.Errorf("%w: order_type must be dine-in or takeaway", ErrValidation)
	}
	if req.OrderType == "dine-in" && (req.TableNumber == nil || *req.TableNumber <= 0) {
		return fmt.Errorf("%w: table number is required for dine-in orders", ErrValidation)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: order must contain at least one item", ErrValidation)
	}
	for _, it := range req.Items {
		if it.MenuID <= 0 {
			return fmt.Errorf("%w: menu_id required", ErrValidation)
		}
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be > 0", ErrValidation)
		}
	}
	return nil
}

// Create prices the order from the menu's current prices, never from
// anything the client sent, issues a token and persists everything in
// one transaction.
func (svc *OrderService) Create(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	if err := validateCreateOrder(req); err != nil {
		return nil, err
	}

	lines := make([]billing.Line, 0, len(req.Items))
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		menuItem, err := svc.Repo.GetMenuItem(ctx, it.MenuID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu item %d not found", ErrNotFound, it.MenuID)
		}
		if err != nil {
			return nil, err
		}

		lines = append(lines, billing.Line{UnitPrice: menuItem.Price, Quantity: it.Quantity})
		items = append(items, models.OrderItem{
			MenuID:        it.MenuID,
			Quantity:      it.Quantity,
			UnitPrice:     menuItem.Price,
			Subtotal:      menuItem.Price * float64(it.Quantity),
			Customization: it.Customization,
		})
	}

	totals := svc.Calc.Compute(lines, req.OrderType == "dine-in")
	now := svc.now()

	var tableNumber *int
	if req.OrderType == "dine-in" {
		tableNumber = req.TableNumber
	}

	order := &models.Order{
		OrderType:           req.OrderType,
		TableNumber:         tableNumber,
		Status:              string(status.Pending),
		SpecialInstructions: req.SpecialInstructions,
		Subtotal:            totals.Subtotal,
		TaxAmount:           totals.Tax,
		ServiceCharge:       totals.ServiceCharge,
		TotalAmount:         totals.Total,
		OrderDate:           now.Format("2006-01-02"),
		CreatedAt:           now,
		Items:               items,
	}

	err := svc.Repo.CreateOrder(ctx, order, func(tx *gorm.DB) (int, error) {
		c, err := svc.Repo.FindOrCreateCustomer(ctx, tx, req.Customer.Name, req.Customer.Phone, req.Customer.Email)
		if err != nil {
			return 0, err
		}
		return c.ID, nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (svc *OrderService) List(ctx context.Context, f repo.OrderFilter) ([]models.Order, error) {
	if f.Status != "" {
		if _, ok := status.Parse(f.Status); !ok {
			return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, f.Status)
		}
	}
	return svc.Repo.ListOrders(ctx, f)
}

func (svc *OrderService) Get(ctx context.Context, id int) (*models.Order, error) {
	order, err := svc.Repo.GetOrder(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order not found", ErrNotFound)
	}
	return order, err
}

func (svc *OrderService) Active(ctx context.Context) ([]models.Order, error) {
	return svc.Repo.ActiveOrders(ctx)
}

// UpdateStatus applies a lifecycle transition. The target must be a
// known status and legal from the order's current one; a terminal or
// out-of-order request gets ErrConflict so stale boards are told to
// re-fetch rather than silently accepted.
func (svc *OrderService) UpdateStatus(ctx context.Context, id int, target string) error {
	to, ok := status.Parse(target)
	if !ok {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, target)
	}

	order, err := svc.Get(ctx, id)
	if err != nil {
		return err
	}

	from := status.Status(order.Status)
	if !from.CanTransition(to) {
		return fmt.Errorf("%w: cannot move order from %s to %s", ErrConflict, from, to)
	}

	return svc.Repo.UpdateOrderStatus(ctx, id, to)
}

// Cancel is the soft delete: any non-terminal order may be cancelled.
func (svc *OrderService) Cancel(ctx context.Context, id int) error {
	return svc.UpdateStatus(ctx, id, string(status.Cancelled))
}
