package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mkotelnikov/restaurant-pos/internal/models"
)

// FindOrCreateCustomer looks a customer up by phone and creates one
// when missing. Phone is the natural key; a returning customer keeps
// their id across orders.
func (r *GormRepo) FindOrCreateCustomer(ctx context.Context, tx *gorm.DB, name, phone, email string) (*models.Customer, error) {
	if tx == nil {
		tx = r.DB
	}
	var c models.Customer
	err := tx.WithContext(ctx).Where("phone = ?", phone).First(&c).Error
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c = models.Customer{Name: name, Phone: phone, Email: email}
	if err := tx.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormRepo) GetCustomer(ctx context.Context, id int) (*models.Customer, error) {
	var c models.Customer
	if err := r.DB.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormRepo) ListCustomers(ctx context.Context, offset, limit int) ([]models.Customer, int64, error) {
	q := r.DB.WithContext(ctx).Model(&models.Customer{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []models.Customer
	if err := q.Order("id ASC").Offset(offset).Limit(limit).Find(&customers).Error; err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

// RecordCustomerOrder bumps the customer's order count and lifetime
// spend after a completed payment.
func (r *GormRepo) RecordCustomerOrder(ctx context.Context, tx *gorm.DB, customerID int, amount float64) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.WithContext(ctx).Model(&models.Customer{}).
		Where("id = ?", customerID).
		Updates(map[string]any{
			"total_orders": gorm.Expr("total_orders + 1"),
			"total_spent":  gorm.Expr("total_spent + ?", amount),
		}).Error
}
