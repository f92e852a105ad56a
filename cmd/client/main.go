package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "github.com/Ralet11/pandaApp/internal/app"
	"github.com/Ralet11/pandaApp/internal/handlers/push/driver_location"
	"github.com/Ralet11/pandaApp/internal/handlers/push/order_state_changed"
	"github.com/Ralet11/pandaApp/internal/handlers/rest/cart_get"
	"github.com/Ralet11/pandaApp/internal/handlers/rest/cart_item_delete"
	"github.com/Ralet11/pandaApp/internal/handlers/rest/cart_item_post"
	"github.com/Ralet11/pandaApp/internal/handlers/rest/cart_item_put"
	"github.com/Ralet11/pandaApp/internal/handlers/rest/checkout_post"
	"github.com/Ralet11/pandaApp/internal/handlers/rest/current_order_get"
	"github.com/Ralet11/pandaApp/internal/handlers/rest/healthcheck_head"
	"github.com/Ralet11/pandaApp/internal/handlers/rest/orders_get"
	"github.com/Ralet11/pandaApp/internal/handlers/rest/ping_get"
	"github.com/Ralet11/pandaApp/internal/handlers/rest/session_login_post"
	"github.com/Ralet11/pandaApp/internal/handlers/rest/session_logout_post"
	"github.com/Ralet11/pandaApp/internal/pkg/config"
	"github.com/Ralet11/pandaApp/internal/pkg/dotenv"
	metrics_system "github.com/Ralet11/pandaApp/internal/pkg/metrics"
	"github.com/Ralet11/pandaApp/internal/pkg/middlewares/graceful_shutdown"
	"github.com/Ralet11/pandaApp/internal/pkg/middlewares/metrics"
	"github.com/Ralet11/pandaApp/internal/pkg/middlewares/rate_limiter"
	"github.com/Ralet11/pandaApp/internal/pkg/middlewares/timeout"
	"github.com/Ralet11/pandaApp/internal/pkg/redisconn"
	"github.com/Ralet11/pandaApp/pkg/logger"
	"github.com/Ralet11/pandaApp/pkg/logger/zap_adapter"
	"github.com/Ralet11/pandaApp/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting panda client core")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	redisClient, err := redisconn.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("kv store: %w", err)
	}
	defer func() {
		err := redisClient.Close()
		if err != nil {
			runLog.Error("failed to close kv store connection",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, redisClient, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	businessApp.Connection.Subscribe(order_state_changed.Event, businessApp.PushOrderStatus.Handle)
	businessApp.Connection.Subscribe(driver_location.Event, businessApp.PushDriverLocation.Handle)

	if err := businessApp.ServiceSession.Resume(ctx); err != nil {
		runLog.Warn("failed to resume previous session", logger.NewField("error", err))
	}

	// Экраны навигации обслуживает этот же процесс, поэтому навигация
	// становится доступной вместе с HTTP сервером.
	businessApp.Navigator.SetReady(true)

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	businessApp.Connection.Close()

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/session/login", session_login_post.New(log, app.ServiceSession)).Methods("POST")
	router.Handle("/session/logout", session_logout_post.New(log, app.ServiceSession)).Methods("POST")

	router.Handle("/cart", cart_get.New(log, app.CartStore, app.ServiceCart)).Methods("GET")
	router.Handle("/cart/items", cart_item_post.New(log, app.CartStore)).Methods("POST")
	router.Handle("/cart/items/{id}", cart_item_put.New(log, app.CartStore)).Methods("PUT")
	router.Handle("/cart/items/{id}", cart_item_delete.New(log, app.CartStore)).Methods("DELETE")
	router.Handle("/checkout", checkout_post.New(log, app.ServiceCart)).Methods("POST")

	router.Handle("/orders", orders_get.New(log, app.OrderStore)).Methods("GET")
	router.Handle("/orders/current", current_order_get.New(log, app.OrderStore, app.ETAFactory)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
