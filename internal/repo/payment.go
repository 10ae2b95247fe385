package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mkotelnikov/restaurant-pos/internal/models"
	"github.com/mkotelnikov/restaurant-pos/internal/status"
)

// PaymentFilter narrows ListPayments. Zero values mean "no filter".
type PaymentFilter struct {
	Date   string // YYYY-MM-DD
	Method string
}

// CreatePayment persists the payment and, in the same transaction,
// completes the paid order, bumps the customer's stats and frees a
// dine-in table.
func (r *GormRepo) CreatePayment(ctx context.Context, p *models.Payment, order *models.Order) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]any{
			"order_status": string(status.Completed),
			"completed_at": now,
		}).Error; err != nil {
			return err
		}

		if order.CustomerID != 0 {
			if err := r.RecordCustomerOrder(ctx, tx, order.CustomerID, order.TotalAmount); err != nil {
				return err
			}
		}

		if order.OrderType == "dine-in" && order.TableNumber != nil {
			if err := r.setTableStatus(ctx, tx, *order.TableNumber, models.TableAvailable); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormRepo) GetPayment(ctx context.Context, id int) (*models.Payment, error) {
	var p models.Payment
	if err := r.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	r.attachOrderToken(ctx, &p)
	return &p, nil
}

func (r *GormRepo) GetPaymentByOrder(ctx context.Context, orderID int) (*models.Payment, error) {
	var p models.Payment
	if err := r.DB.WithContext(ctx).Where("order_id = ?", orderID).First(&p).Error; err != nil {
		return nil, err
	}
	r.attachOrderToken(ctx, &p)
	return &p, nil
}

// PaymentExists reports whether the order has already been paid.
func (r *GormRepo) PaymentExists(ctx context.Context, orderID int) (bool, error) {
	var p models.Payment
	err := r.DB.WithContext(ctx).Select("id").Where("order_id = ?", orderID).First(&p).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

func (r *GormRepo) ListPayments(ctx context.Context, f PaymentFilter) ([]models.Payment, error) {
	q := r.DB.WithContext(ctx).Model(&models.Payment{})
	if f.Date != "" {
		q = q.Where("DATE(payment_date) = ?", f.Date)
	}
	if f.Method != "" {
		q = q.Where("payment_method = ?", f.Method)
	}

	var payments []models.Payment
	if err := q.Order("payment_date DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	for i := range payments {
		r.attachOrderToken(ctx, &payments[i])
	}
	return payments, nil
}

func (r *GormRepo) attachOrderToken(ctx context.Context, p *models.Payment) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Select("order_token").First(&order, p.OrderID).Error; err == nil {
		p.OrderToken = order.Token
	}
}
