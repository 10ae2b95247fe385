package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkotelnikov/restaurant-pos/internal/service"
	"github.com/mkotelnikov/restaurant-pos/internal/util"
)

type ReportHandler struct {
	Svc *service.ReportService
}

func (h *ReportHandler) DailySales(c echo.Context) error {
	sales, err := h.Svc.DailySales(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return serviceError(c, err)
	}
	return successResponse(c, http.StatusOK, "Success", sales)
}

func (h *ReportHandler) PopularItems(c echo.Context) error {
	limit := util.ParseIntDefault(c.QueryParam("limit"), 10)
	items, err := h.Svc.PopularItems(c.Request().Context(), c.QueryParam("start_date"), c.QueryParam("end_date"), limit)
	if err != nil {
		return serviceError(c, err)
	}
	return successResponse(c, http.StatusOK, "Success", items)
}

func (h *ReportHandler) RevenueByCuisine(c echo.Context) error {
	rows, err := h.Svc.RevenueByCuisine(c.Request().Context(), c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return serviceError(c, err)
	}
	return successResponse(c, http.StatusOK, "Success", rows)
}

func (h *ReportHandler) PaymentMethods(c echo.Context) error {
	rows, err := h.Svc.PaymentMethods(c.Request().Context(), c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return serviceError(c, err)
	}
	return successResponse(c, http.StatusOK, "Success", rows)
}
