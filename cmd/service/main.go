package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "recycling/internal/app"
	"recycling/internal/entities"
	"recycling/internal/handlers/rest/activities_get"
	"recycling/internal/handlers/rest/admin_activity_post"
	"recycling/internal/handlers/rest/admin_agent_approval_put"
	"recycling/internal/handlers/rest/admin_agents_get"
	"recycling/internal/handlers/rest/admin_reconcile_post"
	"recycling/internal/handlers/rest/agent_board_get"
	"recycling/internal/handlers/rest/agent_history_get"
	"recycling/internal/handlers/rest/agent_profile_get"
	"recycling/internal/handlers/rest/agent_profile_put"
	"recycling/internal/handlers/rest/assignment_action_post"
	"recycling/internal/handlers/rest/assignment_reason_post"
	"recycling/internal/handlers/rest/assignment_verify_post"
	"recycling/internal/handlers/rest/auth_login_post"
	"recycling/internal/handlers/rest/auth_register_agent_post"
	"recycling/internal/handlers/rest/auth_register_user_post"
	"recycling/internal/handlers/rest/bag_assignment_get"
	"recycling/internal/handlers/rest/bag_cancel_post"
	"recycling/internal/handlers/rest/bag_confirm_post"
	"recycling/internal/handlers/rest/bag_current_get"
	"recycling/internal/handlers/rest/bag_post"
	"recycling/internal/handlers/rest/bag_rating_put"
	"recycling/internal/handlers/rest/bags_get"
	"recycling/internal/handlers/rest/balance_get"
	"recycling/internal/handlers/rest/branch_get"
	"recycling/internal/handlers/rest/chat_message_post"
	"recycling/internal/handlers/rest/chat_messages_get"
	"recycling/internal/handlers/rest/healthcheck_head"
	"recycling/internal/handlers/rest/item_types_get"
	"recycling/internal/handlers/rest/notification_read_post"
	"recycling/internal/handlers/rest/notifications_delete"
	"recycling/internal/handlers/rest/notifications_get"
	"recycling/internal/handlers/rest/notifications_read_all_post"
	"recycling/internal/handlers/rest/password_put"
	"recycling/internal/handlers/rest/ping_get"
	"recycling/internal/handlers/rest/stores_get"
	"recycling/internal/handlers/rest/user_profile_get"
	"recycling/internal/handlers/rest/user_profile_put"
	"recycling/internal/handlers/rest/voucher_active_get"
	"recycling/internal/handlers/rest/voucher_post"
	"recycling/internal/handlers/rest/voucher_qr_get"
	"recycling/internal/handlers/rest/voucher_usages_get"
	"recycling/internal/handlers/rest/voucher_use_post"
	"recycling/internal/handlers/rest/vouchers_get"
	"recycling/internal/pkg/config"
	"recycling/internal/pkg/dotenv"
	"recycling/internal/pkg/kafka"
	metrics_system "recycling/internal/pkg/metrics"
	"recycling/internal/pkg/middlewares/auth"
	"recycling/internal/pkg/middlewares/graceful_shutdown"
	"recycling/internal/pkg/middlewares/metrics"
	"recycling/internal/pkg/middlewares/rate_limiter"
	"recycling/internal/pkg/middlewares/timeout"
	"recycling/internal/pkg/postgres"
	"recycling/internal/pkg/redis"
	"recycling/pkg/logger"
	"recycling/pkg/logger/zap_adapter"
	"recycling/pkg/token_bucket"
)

const rateLimiterIdleTTL = 10 * time.Minute

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Server.LogLevel)
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

	mainLog.Info("starting recycling application")

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background(), это часть graceful shutdown
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

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, log, pool, cfg.Database.MigrationsDir); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	redisClient, err := redis.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			runLog.Error("failed to close redis client", logger.NewField("error", err))
		}
	}()

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, pool, cfg),
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
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(log, &isShuttingDown, pool),
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
	case err := <-pprofServerErr: // при выключенном pprof канал nil и кейс не срабатывает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

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

	// фоновые задачи остановлены отменой ctx, дожидаемся текущих итераций
	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	database healthcheck_head.Pinger,
	cfg *config.Config,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewKeyedLimiter(
		cfg.Server.RateLimiterQPS,
		float64(cfg.Server.RateLimiterBurst),
		rateLimiterIdleTTL,
	)))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, database)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	// публичные маршруты
	api.Handle("/auth/users", auth_register_user_post.New(log, app.Auth)).Methods("POST")
	api.Handle("/auth/agents", auth_register_agent_post.New(log, app.Auth)).Methods("POST")
	api.Handle("/auth/login", auth_login_post.New(log, app.Auth)).Methods("POST")
	api.Handle("/item-types", item_types_get.New(log, app.Bags)).Methods("GET")
	api.Handle("/stores", stores_get.New(log, app.Stores)).Methods("GET")
	api.Handle("/branches/{id}", branch_get.New(log, app.Stores)).Methods("GET")
	api.Handle("/vouchers/use", voucher_use_post.New(log, app.Vouchers)).Methods("POST")

	// любой авторизованный владелец
	authorized := api.NewRoute().Subrouter()
	authorized.Use(auth.Middleware(log, app.Tokens))

	authorized.Handle("/me/password", password_put.New(log, app.Auth)).Methods("PUT")
	authorized.Handle("/me/balance", balance_get.New(log, app.Ledger)).Methods("GET")
	authorized.Handle("/me/activities", activities_get.New(log, app.Ledger)).Methods("GET")
	authorized.Handle("/me/notifications", notifications_get.New(log, app.Notifications)).Methods("GET")
	authorized.Handle("/me/notifications", notifications_delete.New(log, app.Notifications)).Methods("DELETE")
	authorized.Handle("/me/notifications/read", notifications_read_all_post.New(log, app.Notifications)).Methods("POST")
	authorized.Handle("/me/notifications/{id}/read", notification_read_post.New(log, app.Notifications)).Methods("POST")
	authorized.Handle("/me/vouchers", vouchers_get.New(log, app.Vouchers)).Methods("GET")
	authorized.Handle("/me/vouchers", voucher_post.New(log, app.Vouchers)).Methods("POST")
	authorized.Handle("/me/vouchers/active", voucher_active_get.New(log, app.Vouchers)).Methods("GET")
	authorized.Handle("/me/vouchers/usages", voucher_usages_get.New(log, app.Vouchers)).Methods("GET")
	authorized.Handle("/me/vouchers/{code}/qr", voucher_qr_get.New(log, app.Vouchers)).Methods("GET")
	authorized.Handle("/bags/{id}/assignment", bag_assignment_get.New(log, app.Assignments)).Methods("GET")
	authorized.Handle("/assignments/{id}/messages", chat_messages_get.New(log, app.Chat)).Methods("GET")
	authorized.Handle("/assignments/{id}/messages", chat_message_post.New(log, app.Chat)).Methods("POST")

	// только пользователи
	users := api.NewRoute().Subrouter()
	users.Use(auth.Middleware(log, app.Tokens), auth.RequireRole(log, entities.HolderUser))

	users.Handle("/users/me", user_profile_get.New(log, app.Users)).Methods("GET")
	users.Handle("/users/me", user_profile_put.New(log, app.Users)).Methods("PUT")
	users.Handle("/bags", bags_get.New(log, app.Bags)).Methods("GET")
	users.Handle("/bags", bag_post.New(log, app.Bags)).Methods("POST")
	users.Handle("/bags/current", bag_current_get.New(log, app.Bags)).Methods("GET")
	users.Handle("/bags/{id}/cancel", bag_cancel_post.New(log, app.Bags)).Methods("POST")
	users.Handle("/bags/{id}/confirm", bag_confirm_post.New(log, app.Bags)).Methods("POST")
	users.Handle("/bags/{id}/rating", bag_rating_put.New(log, app.Bags)).Methods("PUT")

	// только агенты
	agents := api.NewRoute().Subrouter()
	agents.Use(auth.Middleware(log, app.Tokens), auth.RequireRole(log, entities.HolderAgent))

	agents.Handle("/agents/me", agent_profile_get.New(log, app.Agents)).Methods("GET")
	agents.Handle("/agents/me", agent_profile_put.New(log, app.Agents)).Methods("PUT")
	agents.Handle("/agents/me/board", agent_board_get.New(log, app.Assignments)).Methods("GET")
	agents.Handle("/agents/me/history", agent_history_get.New(log, app.Assignments)).Methods("GET")
	agents.Handle("/assignments/{id}/verify", assignment_verify_post.New(log, app.Assignments)).Methods("POST")
	agents.Handle("/assignments/{id}/{action:accept|start|complete}", assignment_action_post.New(log, app.Assignments)).Methods("POST")
	agents.Handle("/assignments/{id}/{action:cancel|reject}", assignment_reason_post.New(log, app.Assignments)).Methods("POST")

	// служебные маршруты
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminKey(log, cfg.Auth.AdminKey))

	admin.Handle("/agents", admin_agents_get.New(log, app.Agents)).Methods("GET")
	admin.Handle("/agents/{id}/approval", admin_agent_approval_put.New(log, app.Agents)).Methods("PUT")
	admin.Handle("/activities", admin_activity_post.New(log, app.Ledger)).Methods("POST")
	admin.Handle("/holders/{kind}/{id}/reconcile", admin_reconcile_post.New(log, app.Ledger)).Methods("POST")

	return router
}

func initPprofRouter(log logger.Logger, isShuttingDown *atomic.Bool, database healthcheck_head.Pinger) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, database)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
