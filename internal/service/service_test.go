package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mkotelnikov/restaurant-pos/internal/config"
	"github.com/mkotelnikov/restaurant-pos/internal/models"
	"github.com/mkotelnikov/restaurant-pos/internal/repo"
	"github.com/mkotelnikov/restaurant-pos/internal/transport"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection so every query sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return repo.New(db)
}

func seedMenu(t *testing.T, r *repo.GormRepo) []models.MenuItem {
	t.Helper()

	items := []models.MenuItem{
		{Name: "Paneer Tikka", Category: "appetizer", Cuisine: "north-indian", Price: 100, PreparationTime: 15, IsAvailable: true},
		{Name: "Masala Dosa", Category: "main", Cuisine: "south-indian", Price: 80, PreparationTime: 10, IsAvailable: true},
		{Name: "Gulab Jamun", Category: "dessert", Cuisine: "desserts", Price: 60, PreparationTime: 5, IsAvailable: true},
	}
	for i := range items {
		require.NoError(t, r.CreateMenuItem(context.Background(), &items[i]))
	}
	return items
}

func seedTable(t *testing.T, r *repo.GormRepo, number int) {
	t.Helper()
	require.NoError(t, r.DB.Create(&models.RestaurantTable{TableNumber: number, Capacity: 4}).Error)
}

func newOrderService(r *repo.GormRepo) *OrderService {
	return &OrderService{
		Repo: r,
		Now:  func() time.Time { return time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC) },
	}
}

func dineInRequest(tableNumber int, items ...transport.CreateOrderItem) transport.CreateOrderRequest {
	return transport.CreateOrderRequest{
		Customer:    transport.CustomerInfo{Name: "Asha", Phone: "9876543210"},
		OrderType:   "dine-in",
		TableNumber: &tableNumber,
		Items:       items,
	}
}

func takeawayRequest(items ...transport.CreateOrderItem) transport.CreateOrderRequest {
	return transport.CreateOrderRequest{
		Customer:  transport.CustomerInfo{Name: "Ravi", Phone: "9123456780"},
		OrderType: "takeaway",
		Items:     items,
	}
}
