package httpserver

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/mkotelnikov/restaurant-pos/internal/es"
	"github.com/mkotelnikov/restaurant-pos/internal/events"
	"github.com/mkotelnikov/restaurant-pos/internal/logging"
	"github.com/mkotelnikov/restaurant-pos/internal/models"
	"github.com/mkotelnikov/restaurant-pos/internal/repo"
	"github.com/mkotelnikov/restaurant-pos/internal/service"
	"github.com/mkotelnikov/restaurant-pos/internal/transport"
	"github.com/mkotelnikov/restaurant-pos/internal/util"
)

type MenuHandler struct {
	Svc      *service.MenuService
	Producer *events.Producer
	ES       *elasticsearch.Client
}

func (h *MenuHandler) publish(c echo.Context, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := contextWithPublishTimeout(c)
	defer cancel()
	if err := h.Producer.Publish(ctx, events.TopicMenu, strconv.Itoa(asInt(event["menu_id"])), event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("menu event publish failed", "error", err)
	}
}

func (h *MenuHandler) index(c echo.Context, item *models.MenuItem) {
	if h.ES == nil {
		return
	}
	if err := es.IndexMenuItem(c.Request().Context(), h.ES, item); err != nil {
		logging.FromContext(c.Request().Context()).Warn("menu index failed", "menu_id", item.ID, "error", err)
	}
}

func (h *MenuHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	f := repo.MenuFilter{
		Cuisine:  c.QueryParam("cuisine"),
		Category: c.QueryParam("category"),
	}
	if av := c.QueryParam("available"); av != "" {
		b := av == "true"
		f.Available = &b
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	items, total, err := h.Svc.List(ctx, f, offset, limit)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Success",
		"data":    items,
		"meta": map[string]any{
			"page":  page,
			"size":  limit,
			"total": total,
		},
	})
}

func (h *MenuHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid menu id")
	}

	item, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return successResponse(c, http.StatusOK, "Success", item)
}

func (h *MenuHandler) Create(c echo.Context) error {
	var req transport.CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err)
	}

	h.index(c, item)
	h.publish(c, map[string]any{"type": "menu_item_created", "menu_id": item.ID, "item_name": item.Name})

	return successResponse(c, http.StatusCreated, "Menu item created", map[string]any{"menu_id": item.ID})
}

func (h *MenuHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid menu id")
	}

	var req transport.CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return serviceError(c, err)
	}

	h.index(c, item)
	h.publish(c, map[string]any{"type": "menu_item_updated", "menu_id": item.ID, "item_name": item.Name})

	return successResponse(c, http.StatusOK, "Menu item updated", nil)
}

func (h *MenuHandler) SetAvailability(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid menu id")
	}

	var req transport.AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.SetAvailability(c.Request().Context(), id, req.IsAvailable); err != nil {
		return serviceError(c, err)
	}

	h.publish(c, map[string]any{"type": "menu_availability_changed", "menu_id": id, "is_available": req.IsAvailable})

	return successResponse(c, http.StatusOK, "Availability updated", nil)
}

func (h *MenuHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid menu id")
	}

	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return serviceError(c, err)
	}

	if h.ES != nil {
		if err := es.DeleteMenuItem(c.Request().Context(), h.ES, id); err != nil {
			logging.FromContext(c.Request().Context()).Warn("menu index delete failed", "menu_id", id, "error", err)
		}
	}
	h.publish(c, map[string]any{"type": "menu_item_deleted", "menu_id": id})

	return successResponse(c, http.StatusOK, "Menu item deleted", nil)
}

// Search queries the Elasticsearch menu index.
func (h *MenuHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return errorResponse(c, http.StatusBadRequest, "query parameter q is required")
	}
	if h.ES == nil {
		return errorResponse(c, http.StatusServiceUnavailable, "search is not configured")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, limit := util.Calculate(page, size)

	total, items, err := es.SearchMenu(c.Request().Context(), h.ES, q, from, limit)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "search failed")
	}

	return successResponse(c, http.StatusOK, "Success", map[string]any{"total": total, "items": items})
}

func contextWithPublishTimeout(c echo.Context) (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

func asInt(v any) int {
	if n, ok := v.(int); ok {
		return n
	}
	return 0
}
