package service

import (
	"context"
	"time"

	"github.com/mkotelnikov/restaurant-pos/internal/repo"
)

type ReportService struct {
	Repo *repo.GormRepo
}

const dateLayout = "2006-01-02"

func defaultDate(s string) string {
	if s != "" {
		return s
	}
	return time.Now().UTC().Format(dateLayout)
}

func defaultRange(start, end string, days int) (string, string) {
	now := time.Now().UTC()
	if end == "" {
		end = now.Format(dateLayout)
	}
	if start == "" {
		start = now.AddDate(0, 0, -days).Format(dateLayout)
	}
	return start, end
}

func (svc *ReportService) DailySales(ctx context.Context, date string) (*repo.DailySales, error) {
	return svc.Repo.DailySales(ctx, defaultDate(date))
}

func (svc *ReportService) PopularItems(ctx context.Context, start, end string, limit int) ([]repo.PopularItem, error) {
	start, end = defaultRange(start, end, 7)
	if limit <= 0 {
		limit = 10
	}
	return svc.Repo.PopularItems(ctx, start, end, limit)
}

func (svc *ReportService) RevenueByCuisine(ctx context.Context, start, end string) ([]repo.CuisineRevenue, error) {
	start, end = defaultRange(start, end, 30)
	return svc.Repo.RevenueByCuisine(ctx, start, end)
}

func (svc *ReportService) PaymentMethods(ctx context.Context, start, end string) ([]repo.MethodBreakdown, error) {
	start, end = defaultRange(start, end, 0)
	return svc.Repo.PaymentMethodBreakdown(ctx, start, end)
}
