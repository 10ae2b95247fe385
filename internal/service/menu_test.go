package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkotelnikov/restaurant-pos/internal/repo"
	"github.com/mkotelnikov/restaurant-pos/internal/transport"
)

func TestMenuService_CreateAndGet(t *testing.T) {
	r := newTestRepo(t)
	svc := &MenuService{Repo: r}
	ctx := context.Background()

	item, err := svc.Create(ctx, transport.CreateMenuItemRequest{
		ItemName:        "Schezwan Noodles",
		Description:     "spicy",
		Category:        "main",
		Cuisine:         "chinese",
		Price:           180,
		PreparationTime: 12,
	})
	require.NoError(t, err)
	require.NotZero(t, item.ID)
	assert.True(t, item.IsAvailable)

	got, err := svc.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Schezwan Noodles", got.Name)

	_, err = svc.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMenuService_Create_Validation(t *testing.T) {
	r := newTestRepo(t)
	svc := &MenuService{Repo: r}
	ctx := context.Background()

	tests := []struct {
		name string
		req  transport.CreateMenuItemRequest
	}{
		{"missing name", transport.CreateMenuItemRequest{Category: "main", Cuisine: "chinese", Price: 10}},
		{"bad category", transport.CreateMenuItemRequest{ItemName: "X", Category: "snack", Cuisine: "chinese", Price: 10}},
		{"bad cuisine", transport.CreateMenuItemRequest{ItemName: "X", Category: "main", Cuisine: "fusion", Price: 10}},
		{"negative price", transport.CreateMenuItemRequest{ItemName: "X", Category: "main", Cuisine: "chinese", Price: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestMenuService_SetAvailability(t *testing.T) {
	r := newTestRepo(t)
	items := seedMenu(t, r)
	svc := &MenuService{Repo: r}
	ctx := context.Background()

	require.NoError(t, svc.SetAvailability(ctx, items[0].ID, false))

	got, err := svc.Get(ctx, items[0].ID)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)
	// everything else untouched
	assert.Equal(t, items[0].Name, got.Name)
	assert.Equal(t, items[0].Price, got.Price)

	assert.ErrorIs(t, svc.SetAvailability(ctx, 999, true), ErrNotFound)
}

func TestMenuService_ListFilters(t *testing.T) {
	r := newTestRepo(t)
	items := seedMenu(t, r)
	svc := &MenuService{Repo: r}
	ctx := context.Background()

	require.NoError(t, svc.SetAvailability(ctx, items[2].ID, false))

	avail := true
	got, total, err := svc.List(ctx, repo.MenuFilter{Available: &avail}, 0, 50)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, got, 2)

	got, _, err = svc.List(ctx, repo.MenuFilter{Cuisine: "south-indian"}, 0, 50)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Masala Dosa", got[0].Name)
}
