// Package cli wires the marketplace client into a command line tool for
// tenants, hosts and admins.
package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/api"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/config"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/domain"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/events"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/export"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/logging"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/metrics"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/service"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/session"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/store"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App holds everything the commands share. Built once in the root
// PersistentPreRunE, torn down in PersistentPostRun.
type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Sessions domain.SessionRepository
	Client   *api.Client
	Journal  *store.Store
	Exporter *export.Exporter

	Bookings  *service.BookingService
	Contracts *service.ContractService
	Invoices  *service.InvoiceService
	Payments  *service.PaymentService
	Stats     *service.StatsService

	logCloser   io.Closer
	redisClient *redis.Client
	metricsSrv  *http.Server
}

func newApp() (*App, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	logger := baseLogger.With().Str("component", "cli").Logger()

	app := &App{Config: cfg, Logger: logger, logCloser: closer}

	if cfg.Monitoring.PrometheusEnabled {
		metrics.Register()
		app.metricsSrv = startMetricsServer(cfg.Monitoring.PrometheusPort, &logger)
	}

	ttl := time.Duration(models.DefaultSessionTTL) * time.Second
	memory := session.NewMemorySessionRepository(ttl)
	if cfg.Redis.Address != "" {
		app.redisClient = session.NewRedisClient(cfg.Redis)
		if err := session.Ping(context.Background(), app.redisClient); err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, sessions held in memory only")
			app.redisClient.Close()
			app.redisClient = nil
			app.Sessions = memory
		} else {
			primary := session.NewRedisSessionRepository(app.redisClient, ttl)
			app.Sessions = session.NewFailoverSessionRepository(primary, memory, &logger)
		}
	} else {
		app.Sessions = memory
	}

	journal, err := store.Open(cfg.Store.Path, &logger)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("open journal: %w", err)
	}
	app.Journal = journal

	bus := events.NewEventBus()
	store.RecordEvents(bus, journal, &logger)

	client := api.New(cfg.API, app.Sessions, &logger)
	if app.redisClient != nil && cfg.API.CacheTTL > 0 {
		client.UseRedisCache(app.redisClient, cfg.API.CacheTTL)
	}
	app.Client = client

	app.Exporter = export.New(cfg.Exports.Path, &logger)

	app.Contracts = service.NewContractService(client, bus, &logger)
	app.Bookings = service.NewBookingService(client, app.Contracts, bus, &logger)
	app.Invoices = service.NewInvoiceService(client, bus, &logger)
	app.Payments = service.NewPaymentService(client, bus, &logger)
	app.Stats = service.NewStatsService(client, &logger)

	return app, nil
}

// startMetricsServer exposes /metrics for the lifetime of the command.
func startMetricsServer(port int, logger *zerolog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("metrics server error")
		}
	}()
	return srv
}

func (a *App) Close() {
	if a.metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		_ = a.metricsSrv.Shutdown(shutdownCtx)
		cancel()
	}
	if a.Journal != nil {
		a.Journal.Close()
	}
	if a.redisClient != nil {
		a.redisClient.Close()
	}
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
}

// commandContext cancels on Ctrl-C or SIGTERM.
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// Execute builds the command tree and runs it.
func Execute() error {
	var app *App

	rootCmd := &cobra.Command{
		Use:           "phongtro",
		Short:         "Client tool for the PhongTro rental marketplace",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			app, err = newApp()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				app.Close()
			}
		},
	}

	appRef := func() *App { return app }

	rootCmd.AddCommand(
		loginCmd(appRef),
		logoutCmd(appRef),
		meCmd(appRef),
		roomsCmd(appRef),
		bookingsCmd(appRef),
		contractsCmd(appRef),
		invoicesCmd(appRef),
		payCmd(appRef),
		statsCmd(appRef),
		exportCmd(appRef),
		historyCmd(appRef),
	)

	if err := rootCmd.Execute(); err != nil {
		// PersistentPostRun is skipped on error, close here.
		if app != nil {
			app.Logger.Error().Err(err).Msg("command failed")
			app.Close()
		}
		return err
	}
	return nil
}
