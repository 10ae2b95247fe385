package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mkotelnikov/restaurant-pos/internal/models"
	"github.com/mkotelnikov/restaurant-pos/internal/repo"
)

// CustomerService exposes the customer directory. Customers are created
// implicitly at order time; this surface is read-only.
type CustomerService struct {
	Repo *repo.GormRepo
}

func (svc *CustomerService) List(ctx context.Context, offset, limit int) ([]models.Customer, int64, error) {
	return svc.Repo.ListCustomers(ctx, offset, limit)
}

func (svc *CustomerService) Get(ctx context.Context, id int) (*models.Customer, error) {
	c, err := svc.Repo.GetCustomer(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: customer not found", ErrNotFound)
	}
	return c, err
}

type TableService struct {
	Repo *repo.GormRepo
}

func (svc *TableService) List(ctx context.Context) ([]models.RestaurantTable, error) {
	return svc.Repo.ListTables(ctx)
}
