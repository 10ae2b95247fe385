package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkotelnikov/restaurant-pos/internal/models"
	"github.com/mkotelnikov/restaurant-pos/internal/status"
	"github.com/mkotelnikov/restaurant-pos/internal/transport"
)

func newPaymentEnv(t *testing.T) (*PaymentService, *OrderService, *models.Order) {
	t.Helper()

	r := newTestRepo(t)
	menu := seedMenu(t, r)
	seedTable(t, r, 4)
	orderSvc := newOrderService(r)
	paySvc := &PaymentService{Repo: r, Order: orderSvc}

	order, err := orderSvc.Create(context.Background(), dineInRequest(4,
		transport.CreateOrderItem{MenuID: menu[0].ID, Quantity: 2},
	))
	require.NoError(t, err)
	// 2 x 100 dine-in: subtotal 200, tax 10, service 20
	require.Equal(t, 230.0, order.TotalAmount)

	return paySvc, orderSvc, order
}

func TestPaymentService_Create_CompletesOrder(t *testing.T) {
	paySvc, orderSvc, order := newPaymentEnv(t)
	ctx := context.Background()

	p, err := paySvc.Create(ctx, transport.CreatePaymentRequest{
		OrderID:       order.ID,
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	assert.Equal(t, 230.0, p.AmountReceived)
	assert.Zero(t, p.ChangeReturned)

	got, err := orderSvc.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, string(status.Completed), got.Status)
	assert.NotNil(t, got.CompletedAt)

	// the dine-in table is free again
	var table models.RestaurantTable
	require.NoError(t, paySvc.Repo.DB.First(&table, 4).Error)
	assert.Equal(t, models.TableAvailable, table.Status)

	// customer stats recorded
	var customer models.Customer
	require.NoError(t, paySvc.Repo.DB.First(&customer, got.CustomerID).Error)
	assert.Equal(t, 1, customer.TotalOrders)
	assert.Equal(t, 230.0, customer.TotalSpent)
}

func TestPaymentService_Create_CashChange(t *testing.T) {
	paySvc, _, order := newPaymentEnv(t)

	amount := 250.0
	p, err := paySvc.Create(context.Background(), transport.CreatePaymentRequest{
		OrderID:        order.ID,
		PaymentMethod:  "cash",
		AmountReceived: &amount,
	})
	require.NoError(t, err)

	assert.Equal(t, 250.0, p.AmountReceived)
	assert.Equal(t, 20.0, p.ChangeReturned)
}

func TestPaymentService_Create_Underpayment(t *testing.T) {
	paySvc, _, order := newPaymentEnv(t)

	amount := 200.0
	_, err := paySvc.Create(context.Background(), transport.CreatePaymentRequest{
		OrderID:        order.ID,
		PaymentMethod:  "cash",
		AmountReceived: &amount,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPaymentService_Create_Twice(t *testing.T) {
	paySvc, _, order := newPaymentEnv(t)
	ctx := context.Background()

	_, err := paySvc.Create(ctx, transport.CreatePaymentRequest{OrderID: order.ID, PaymentMethod: "upi"})
	require.NoError(t, err)

	_, err = paySvc.Create(ctx, transport.CreatePaymentRequest{OrderID: order.ID, PaymentMethod: "upi"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestPaymentService_Create_CancelledOrder(t *testing.T) {
	paySvc, orderSvc, order := newPaymentEnv(t)
	ctx := context.Background()

	require.NoError(t, orderSvc.Cancel(ctx, order.ID))

	_, err := paySvc.Create(ctx, transport.CreatePaymentRequest{OrderID: order.ID, PaymentMethod: "cash"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPaymentService_Create_BadInput(t *testing.T) {
	paySvc, _, order := newPaymentEnv(t)
	ctx := context.Background()

	_, err := paySvc.Create(ctx, transport.CreatePaymentRequest{OrderID: order.ID, PaymentMethod: "cheque"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = paySvc.Create(ctx, transport.CreatePaymentRequest{PaymentMethod: "cash"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = paySvc.Create(ctx, transport.CreatePaymentRequest{OrderID: 999, PaymentMethod: "cash"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentService_GetByOrder(t *testing.T) {
	paySvc, _, order := newPaymentEnv(t)
	ctx := context.Background()

	created, err := paySvc.Create(ctx, transport.CreatePaymentRequest{OrderID: order.ID, PaymentMethod: "card"})
	require.NoError(t, err)

	got, err := paySvc.GetByOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, order.Token, got.OrderToken)

	_, err = paySvc.GetByOrder(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentService_Bill(t *testing.T) {
	paySvc, _, order := newPaymentEnv(t)

	bill, err := paySvc.Bill(context.Background(), order.ID)
	require.NoError(t, err)

	assert.Equal(t, order.Token, bill.OrderToken)
	assert.Equal(t, 200.0, bill.Subtotal)
	assert.Equal(t, 10.0, bill.TaxAmount)
	assert.Equal(t, 20.0, bill.ServiceCharge)
	assert.Equal(t, 230.0, bill.TotalAmount)
	assert.Equal(t, 5.0, bill.TaxPercentage)
	assert.Equal(t, 10.0, bill.ServiceChargePercentage)
	require.Len(t, bill.Items, 1)
	assert.Equal(t, "Paneer Tikka", bill.Items[0].ItemName)
}

func TestPaymentService_TodaySummary(t *testing.T) {
	r := newTestRepo(t)
	menu := seedMenu(t, r)
	// real clock so the summary day matches payment_date
	orderSvc := &OrderService{Repo: r}
	paySvc := &PaymentService{Repo: r, Order: orderSvc}
	ctx := context.Background()

	first, err := orderSvc.Create(ctx, takeawayRequest(
		transport.CreateOrderItem{MenuID: menu[0].ID, Quantity: 2},
	))
	require.NoError(t, err)
	second, err := orderSvc.Create(ctx, takeawayRequest(
		transport.CreateOrderItem{MenuID: menu[1].ID, Quantity: 1},
	))
	require.NoError(t, err)

	_, err = paySvc.Create(ctx, transport.CreatePaymentRequest{OrderID: first.ID, PaymentMethod: "cash"})
	require.NoError(t, err)
	_, err = paySvc.Create(ctx, transport.CreatePaymentRequest{OrderID: second.ID, PaymentMethod: "card"})
	require.NoError(t, err)

	s, err := paySvc.TodaySummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Transactions)
	assert.InDelta(t, first.TotalAmount+second.TotalAmount, s.Collected, 0.001)
	require.Len(t, s.Methods, 2)
}
