package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/mkotelnikov/restaurant-pos/internal/models"
)

// MenuFilter narrows ListMenu. Zero values mean "no filter".
type MenuFilter struct {
	Cuisine   string
	Category  string
	Available *bool
}

func (r *GormRepo) ListMenu(ctx context.Context, f MenuFilter, offset, limit int) ([]models.MenuItem, int64, error) {
	q := r.DB.WithContext(ctx).Model(&models.MenuItem{})
	if f.Cuisine != "" {
		q = q.Where("cuisine = ?", f.Cuisine)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Available != nil {
		q = q.Where("is_available = ?", *f.Available)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.MenuItem
	if err := q.Order("cuisine, category").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *GormRepo) GetMenuItem(ctx context.Context, id int) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *GormRepo) UpdateMenuItem(ctx context.Context, item *models.MenuItem) error {
	return r.DB.WithContext(ctx).Save(item).Error
}

func (r *GormRepo) SetMenuAvailability(ctx context.Context, id int, available bool) error {
	res := r.DB.WithContext(ctx).Model(&models.MenuItem{}).
		Where("id = ?", id).
		Update("is_available", available)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) DeleteMenuItem(ctx context.Context, id int) error {
	return r.DB.WithContext(ctx).Delete(&models.MenuItem{}, id).Error
}
