package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"gorm.io/gorm"

	"github.com/mkotelnikov/restaurant-pos/internal/billing"
	"github.com/mkotelnikov/restaurant-pos/internal/models"
	"github.com/mkotelnikov/restaurant-pos/internal/repo"
	"github.com/mkotelnikov/restaurant-pos/internal/status"
	"github.com/mkotelnikov/restaurant-pos/internal/transport"
)

type PaymentService struct {
	Repo  *repo.GormRepo
	Order *OrderService
}

// Create processes the bill for an order. The amount received defaults
// to the order total; paying less than the total is rejected, paying
// more returns change. Completing the order is this call's side
// effect, inside the same transaction as the payment row.
func (svc *PaymentService) Create(ctx context.Context, req transport.CreatePaymentRequest) (*models.Payment, error) {
	if req.OrderID <= 0 {
		return nil, fmt.Errorf("%w: order_id is required", ErrValidation)
	}
	if !slices.Contains(models.PaymentMethods, req.PaymentMethod) {
		return nil, fmt.Errorf("%w: payment_method must be one of cash, card, upi", ErrValidation)
	}

	order, err := svc.Order.Get(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if order.Status == string(status.Cancelled) {
		return nil, fmt.Errorf("%w: cannot process payment for cancelled order", ErrValidation)
	}

	exists, err := svc.Repo.PaymentExists(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: payment already processed for this order", ErrConflict)
	}

	amount := order.TotalAmount
	if req.AmountReceived != nil {
		amount = *req.AmountReceived
	}
	if amount < order.TotalAmount {
		return nil, fmt.Errorf("%w: amount received is less than the order total", ErrValidation)
	}

	var change float64
	if req.PaymentMethod == "cash" && amount > order.TotalAmount {
		change = amount - order.TotalAmount
	}

	p := &models.Payment{
		OrderID:        order.ID,
		Subtotal:       order.Subtotal,
		TaxAmount:      order.TaxAmount,
		ServiceCharge:  order.ServiceCharge,
		TotalAmount:    order.TotalAmount,
		Method:         req.PaymentMethod,
		AmountReceived: amount,
		ChangeReturned: change,
	}

	if err := svc.Repo.CreatePayment(ctx, p, order); err != nil {
		return nil, err
	}
	return p, nil
}

func (svc *PaymentService) Get(ctx context.Context, id int) (*models.Payment, error) {
	p, err := svc.Repo.GetPayment(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: payment not found", ErrNotFound)
	}
	return p, err
}

func (svc *PaymentService) GetByOrder(ctx context.Context, orderID int) (*models.Payment, error) {
	p, err := svc.Repo.GetPaymentByOrder(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: payment not found for this order", ErrNotFound)
	}
	return p, err
}

func (svc *PaymentService) List(ctx context.Context, f repo.PaymentFilter) ([]models.Payment, error) {
	return svc.Repo.ListPayments(ctx, f)
}

// PaymentSummary is the day's takings at a glance.
type PaymentSummary struct {
	Date         string                 `json:"date"`
	Transactions int                    `json:"total_transactions"`
	Collected    float64                `json:"total_collected"`
	Methods      []repo.MethodBreakdown `json:"methods"`
}

// TodaySummary totals today's payments across methods.
func (svc *PaymentService) TodaySummary(ctx context.Context) (*PaymentSummary, error) {
	day := svc.Order.now().Format("2006-01-02")
	rows, err := svc.Repo.PaymentMethodBreakdown(ctx, day, day)
	if err != nil {
		return nil, err
	}

	s := &PaymentSummary{Date: day, Methods: rows}
	for _, r := range rows {
		s.Transactions += r.TransactionCount
		s.Collected += r.TotalAmount
	}
	return s, nil
}

// Bill builds the payment-form preview for an order without touching
// its state.
func (svc *PaymentService) Bill(ctx context.Context, orderID int) (*transport.Bill, error) {
	order, err := svc.Order.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	taxPct := svc.Order.Calc.EffectiveTaxRate() * 100
	svcPct := 0.0
	if order.OrderType == "dine-in" {
		svcPct = svc.Order.Calc.EffectiveServiceRate() * 100
	}

	return &transport.Bill{
		OrderID:                 order.ID,
		OrderToken:              order.Token,
		OrderType:               order.OrderType,
		TableNumber:             order.TableNumber,
		CustomerName:            order.CustomerName,
		CustomerPhone:           order.CustomerPhone,
		Items:                   order.Items,
		Subtotal:                billing.Round2(order.Subtotal),
		TaxAmount:               billing.Round2(order.TaxAmount),
		TaxPercentage:           taxPct,
		ServiceCharge:           billing.Round2(order.ServiceCharge),
		ServiceChargePercentage: svcPct,
		TotalAmount:             billing.Round2(order.TotalAmount),
		OrderDate:               order.OrderDate,
	}, nil
}
