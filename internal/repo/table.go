package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/mkotelnikov/restaurant-pos/internal/models"
)

func (r *GormRepo) ListTables(ctx context.Context) ([]models.RestaurantTable, error) {
	var tables []models.RestaurantTable
	if err := r.DB.WithContext(ctx).Order("table_number ASC").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *GormRepo) setTableStatus(ctx context.Context, tx *gorm.DB, tableNumber int, st string) error {
	if tx == nil {
		tx = r.DB
	}
	// Tables are seeded out of band; an unknown number is not an error
	// for the order flow.
	return tx.WithContext(ctx).Model(&models.RestaurantTable{}).
		Where("table_number = ?", tableNumber).
		Update("status", st).Error
}
