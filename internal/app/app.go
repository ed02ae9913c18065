package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/IRI3V/proyecto/config"
	"github.com/IRI3V/proyecto/internal/adapter/chart"
	"github.com/IRI3V/proyecto/internal/adapter/httphandler"
	"github.com/IRI3V/proyecto/internal/adapter/kafka"
	"github.com/IRI3V/proyecto/internal/adapter/session"
	"github.com/IRI3V/proyecto/internal/adapter/storage"
	"github.com/IRI3V/proyecto/internal/core/domain"
	"github.com/IRI3V/proyecto/internal/core/port"
	"github.com/IRI3V/proyecto/internal/core/service"
	"github.com/IRI3V/proyecto/pkg/schema"
)

type App struct {
	ctx          context.Context
	cfg          config.Config
	db           storage.SQLDB
	saleProducer *kafka.SalesProducer
	httpServer   httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStorage()
	svc := app.initCoreService()
	app.initHTTPServer(svc)

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	db, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.db = db
}

func (app *App) initCoreService() service.Service {
	return service.New(
		storage.NewProductsRepository(app.db),
		storage.NewSalesRepository(app.db),
		app.initSaleEvents(),
		chart.NewRenderer(),
	)
}

// initSaleEvents wires the kafka publisher when seed brokers are
// configured and a no-op otherwise, so the app runs standalone.
func (app *App) initSaleEvents() port.SaleEventsPublisher {
	const op = "App.initSaleEvents"

	if len(app.cfg.Broker.SeedBrokers) == 0 {
		slog.Info("sale events are disabled: no seed brokers configured")
		return nopSaleEvents{}
	}

	serde, err := schema.NewSerdeSaleV1()
	if err != nil {
		app.fallDown(op, err)
	}

	producer, err := kafka.NewSalesProducer(
		kafka.ProducerClientOpt(
			app.ctx,
			app.cfg.Broker.SeedBrokers,
			app.cfg.Broker.SaleEventsTopic,
		),
		kafka.ProducerEncoderOpt(serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.saleProducer = &producer
	return producer
}

func (app *App) initHTTPServer(svc service.Service) {
	sessions := session.NewStore()

	mux := http.NewServeMux()
	httphandler.RegisterHome(mux, sessions)
	httphandler.RegisterInventory(mux, svc, sessions)
	httphandler.RegisterSales(mux, svc, svc, svc, svc, sessions)
	httphandler.RegisterCharts(mux, svc, sessions)

	handler := httphandler.LogRequests(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.saleProducer != nil {
		app.saleProducer.Close()
	}
	app.db.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}

type nopSaleEvents struct{}

func (nopSaleEvents) PublishSale(context.Context, domain.Sale) error {
	return nil
}
