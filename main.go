package main

import (
	"context"
	"log"
	"time"

	"github.com/Lapatan16/Event-Organization-App-sub000/config"
	"github.com/Lapatan16/Event-Organization-App-sub000/internal/consumer"
	"github.com/Lapatan16/Event-Organization-App-sub000/internal/handler"
	"github.com/Lapatan16/Event-Organization-App-sub000/internal/middleware"
	"github.com/Lapatan16/Event-Organization-App-sub000/internal/repository"
	"github.com/Lapatan16/Event-Organization-App-sub000/internal/service"
	"github.com/Lapatan16/Event-Organization-App-sub000/pkg/database"
	"github.com/Lapatan16/Event-Organization-App-sub000/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ consumer: sync events from the platform's event service
	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL, cfg.EventsQueue, cfg.EventsBinding)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}

	eventConsumer := consumer.NewEventConsumer(db)
	eventConsumer.Start(msgs)

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to create RabbitMQ publisher: %v", err)
	}
	defer publisher.Close()

	// Repositories
	eventRepo := repository.NewEventRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	contractRepo := repository.NewContractRepository(db)

	// Services
	resourceSvc := service.NewResourceService(resourceRepo, eventRepo, contractRepo, publisher)
	supplierSvc := service.NewSupplierService(supplierRepo)
	contractSvc := service.NewContractService(contractRepo, resourceRepo, supplierRepo, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "ledger-service"})
	})

	handler.NewResourceHandler(resourceSvc).RegisterRoutes(e)
	handler.NewSupplierHandler(supplierSvc).RegisterRoutes(e)
	handler.NewContractHandler(contractSvc).RegisterRoutes(e)
	handler.NewAllocationHandler(resourceSvc, contractSvc, supplierSvc).RegisterRoutes(e)

	log.Printf("Ledger Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
