package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mkotelnikov/restaurant-pos/internal/service"
	"github.com/mkotelnikov/restaurant-pos/internal/util"
)

type CustomerHandler struct {
	Svc *service.CustomerService
}

func (h *CustomerHandler) List(c echo.Context) error {
	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	customers, total, err := h.Svc.List(c.Request().Context(), offset, limit)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Success",
		"data":    customers,
		"meta": map[string]any{
			"page":  page,
			"size":  limit,
			"total": total,
		},
	})
}

func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid customer id")
	}

	customer, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return successResponse(c, http.StatusOK, "Success", customer)
}

type TableHandler struct {
	Svc *service.TableService
}

func (h *TableHandler) List(c echo.Context) error {
	tables, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return successResponse(c, http.StatusOK, "Success", tables)
}
