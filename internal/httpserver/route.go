package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	MenuHandler     *MenuHandler
	OrderHandler    *OrderHandler
	PaymentHandler  *PaymentHandler
	ReportHandler   *ReportHandler
	CustomerHandler *CustomerHandler
	TableHandler    *TableHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	menu := api.Group("/menu")
	menu.GET("", d.MenuHandler.List)
	menu.GET("/search", d.MenuHandler.Search)
	menu.GET("/:id", d.MenuHandler.Get)
	menu.POST("", d.MenuHandler.Create)
	menu.PUT("/:id", d.MenuHandler.Update)
	menu.PATCH("/:id/availability", d.MenuHandler.SetAvailability)
	menu.DELETE("/:id", d.MenuHandler.Delete)

	orders := api.Group("/orders")
	orders.GET("", d.OrderHandler.List)
	orders.GET("/active", d.OrderHandler.Active)
	orders.GET("/:id", d.OrderHandler.Get)
	orders.POST("", d.OrderHandler.Create)
	orders.PATCH("/:id/status", d.OrderHandler.UpdateStatus)
	orders.DELETE("/:id", d.OrderHandler.Cancel)

	payments := api.Group("/payments")
	payments.GET("", d.PaymentHandler.List)
	payments.GET("/bill/:order_id", d.PaymentHandler.Bill)
	payments.GET("/summary/today", d.PaymentHandler.TodaySummary)
	payments.GET("/order/:order_id", d.PaymentHandler.GetByOrder)
	payments.GET("/:id", d.PaymentHandler.Get)
	payments.POST("", d.PaymentHandler.Create)

	customers := api.Group("/customers")
	customers.GET("", d.CustomerHandler.List)
	customers.GET("/:id", d.CustomerHandler.Get)

	api.GET("/tables", d.TableHandler.List)

	reports := api.Group("/reports")
	reports.GET("/daily-sales", d.ReportHandler.DailySales)
	reports.GET("/popular-items", d.ReportHandler.PopularItems)
	reports.GET("/revenue-by-cuisine", d.ReportHandler.RevenueByCuisine)
	reports.GET("/payment-methods", d.ReportHandler.PaymentMethods)
}
