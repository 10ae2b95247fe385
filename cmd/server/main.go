package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mkotelnikov/restaurant-pos/internal/billing"
	"github.com/mkotelnikov/restaurant-pos/internal/config"
	"github.com/mkotelnikov/restaurant-pos/internal/es"
	"github.com/mkotelnikov/restaurant-pos/internal/events"
	"github.com/mkotelnikov/restaurant-pos/internal/httpserver"
	"github.com/mkotelnikov/restaurant-pos/internal/logging"
	"github.com/mkotelnikov/restaurant-pos/internal/repo"
	"github.com/mkotelnikov/restaurant-pos/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	config.MustNonEmpty(cfg.DB_HOST, "DB_HOST")
	config.MustNonEmpty(cfg.DB_NAME, "DB_NAME")

	logger := logging.New(cfg.LOG_LEVEL)

	db, err := config.InitDB(context.Background(), cfg)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	var producer *events.Producer
	if cfg.KAFKA_ADDRESS != "" {
		producer = events.NewProducer([]string{cfg.KAFKA_ADDRESS})
	} else {
		logger.Warn("KAFKA_ADDRESS not set, domain events disabled")
	}

	esClient, err := es.NewClient(cfg)
	if err != nil {
		logger.Warn("elasticsearch unavailable, menu search disabled", "error", err)
		esClient = nil
	}

	r := repo.New(db)
	calc := billing.NewCalculator(cfg.TAX_RATE, cfg.SERVICE_RATE)

	orderSvc := &service.OrderService{Repo: r, Calc: calc}
	deps := &httpserver.Deps{
		MenuHandler:     &httpserver.MenuHandler{Svc: &service.MenuService{Repo: r}, Producer: producer, ES: esClient},
		OrderHandler:    &httpserver.OrderHandler{Svc: orderSvc, Producer: producer},
		PaymentHandler:  &httpserver.PaymentHandler{Svc: &service.PaymentService{Repo: r, Order: orderSvc}, Producer: producer},
		ReportHandler:   &httpserver.ReportHandler{Svc: &service.ReportService{Repo: r}},
		CustomerHandler: &httpserver.CustomerHandler{Svc: &service.CustomerService{Repo: r}},
		TableHandler:    &httpserver.TableHandler{Svc: &service.TableService{Repo: r}},
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(logging.RequestLogger(logger))

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.SERVER_PORT),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()
	logger.Info("server started", "port", cfg.SERVER_PORT)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	logger.Info("shutdown complete")
}
