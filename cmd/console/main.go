package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/stocksync-console/internal/application/dashboard"
	"github.com/jhoicas/stocksync-console/internal/application/report"
	"github.com/jhoicas/stocksync-console/internal/application/session"
	"github.com/jhoicas/stocksync-console/internal/application/usecase"
	infraai "github.com/jhoicas/stocksync-console/internal/infrastructure/ai"
	"github.com/jhoicas/stocksync-console/internal/infrastructure/api"
	"github.com/jhoicas/stocksync-console/internal/infrastructure/export"
	"github.com/jhoicas/stocksync-console/internal/infrastructure/notify"
	httpRouter "github.com/jhoicas/stocksync-console/internal/interfaces/http"
	"github.com/jhoicas/stocksync-console/pkg/config"
	"github.com/jhoicas/stocksync-console/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando consola")

	store, err := session.NewStore(cfg.Session.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de sesión")
	}

	gate := session.NewGate(store, cfg.Session.MaxRetries, cfg.Session.RetryDelay(), log)
	client := api.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout(), gate, log)

	authSvc := api.NewAuthService(client)
	categorySvc := api.NewCategoryService(client)
	productSvc := api.NewProductService(client)
	supplierSvc := api.NewSupplierService(client)
	customerSvc := api.NewCustomerService(client)
	salesSvc := api.NewSalesService(client)

	manager := session.NewManager(store, authSvc, log)
	feed := notify.NewFeed(log)

	summaryUC := dashboard.NewUseCase(dashboard.Sources{
		UserCount:     authSvc.UserCount,
		CategoryCount: categorySvc.Count,
		ProductCount:  productSvc.Count,
		AlertCount: func(ctx context.Context) (int, error) {
			alerts, err := salesSvc.ReorderAlerts(ctx)
			if err != nil {
				return 0, err
			}
			return len(alerts), nil
		},
		MonthlyRevenue: salesSvc.MonthlyRevenue,
	}, log)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	predictionUC := usecase.NewPredictionUseCase(geminiSvc)

	exporter := export.NewReportExporter()
	reportUC := report.NewUseCase(salesSvc, productSvc, exporter)

	alertHandler := httpRouter.NewStockAlertHandler(
		salesSvc, productSvc, cfg.Session.AlertPollInterval(), feed, log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Session:    httpRouter.NewSessionHandler(manager),
		Dashboard:  httpRouter.NewDashboardHandler(summaryUC, predictionUC),
		Categories: httpRouter.NewCategoryHandler(categorySvc, feed, log),
		Products:   httpRouter.NewProductHandler(productSvc, categorySvc, supplierSvc, feed, log),
		Suppliers:  httpRouter.NewSupplierHandler(supplierSvc, feed, log),
		Customers:  httpRouter.NewCustomerHandler(customerSvc, feed, log),
		Users:      httpRouter.NewUserHandler(authSvc, feed, log),
		Alerts:     alertHandler,
		Reports:    httpRouter.NewReportHandler(reportUC, feed, log),
		Feed:       feed,
	})

	// El poller del badge vive mientras viva la aplicación.
	pollCtx, stopPoller := context.WithCancel(context.Background())
	go alertHandler.Poller().Run(pollCtx)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando consola...")
	stopPoller()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("consola detenida")
}
