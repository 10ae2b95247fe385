package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"gorm.io/gorm"

	"github.com/mkotelnikov/restaurant-pos/internal/models"
	"github.com/mkotelnikov/restaurant-pos/internal/repo"
	"github.com/mkotelnikov/restaurant-pos/internal/transport"
)

type MenuService struct {
	Repo *repo.GormRepo
}

func (svc *MenuService) List(ctx context.Context, f repo.MenuFilter, offset, limit int) ([]models.MenuItem, int64, error) {
	return svc.Repo.ListMenu(ctx, f, offset, limit)
}

func (svc *MenuService) Get(ctx context.Context, id int) (*models.MenuItem, error) {
	item, err := svc.Repo.GetMenuItem(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: menu item not found", ErrNotFound)
	}
	return item, err
}

func validateMenuRequest(req transport.CreateMenuItemRequest) error {
	if req.ItemName == "" {
		return fmt.Errorf("%w: item_name required", ErrValidation)
	}
	if !slices.Contains(models.Categories, req.Category) {
		return fmt.Errorf("%w: invalid category %q", ErrValidation, req.Category)
	}
	if !slices.Contains(models.Cuisines, req.Cuisine) {
		return fmt.Errorf("%w: invalid cuisine %q", ErrValidation, req.Cuisine)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if req.PreparationTime < 0 {
		return fmt.Errorf("%w: preparation_time must be >= 0", ErrValidation)
	}
	return nil
}

func (svc *MenuService) Create(ctx context.Context, req transport.CreateMenuItemRequest) (*models.MenuItem, error) {
	if err := validateMenuRequest(req); err != nil {
		return nil, err
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	item := &models.MenuItem{
		Name:            req.ItemName,
		Description:     req.Description,
		Category:        req.Category,
		Cuisine:         req.Cuisine,
		Price:           req.Price,
		PreparationTime: req.PreparationTime,
		IsAvailable:     available,
	}
	if err := svc.Repo.CreateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (svc *MenuService) Update(ctx context.Context, id int, req transport.CreateMenuItemRequest) (*models.MenuItem, error) {
	if err := validateMenuRequest(req); err != nil {
		return nil, err
	}

	item, err := svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = req.ItemName
	item.Description = req.Description
	item.Category = req.Category
	item.Cuisine = req.Cuisine
	item.Price = req.Price
	item.PreparationTime = req.PreparationTime
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := svc.Repo.UpdateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// SetAvailability toggles the flag without touching the rest of the
// item.
func (svc *MenuService) SetAvailability(ctx context.Context, id int, available bool) error {
	err := svc.Repo.SetMenuAvailability(ctx, id, available)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: menu item not found", ErrNotFound)
	}
	return err
}

func (svc *MenuService) Delete(ctx context.Context, id int) error {
	return svc.Repo.DeleteMenuItem(ctx, id)
}
