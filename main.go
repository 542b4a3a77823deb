package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"darimaids/config"
	"darimaids/handlers"
	"darimaids/middleware"
	"darimaids/routes"
	"darimaids/services/account"
	"darimaids/services/backend"
	"darimaids/services/booking"
	"darimaids/services/catalog"
	"darimaids/services/payment"
	"darimaids/services/worker"
	"darimaids/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// Stores: Redis when configured, otherwise in-process.
	var (
		sessionStore booking.SessionStore
		catalogCache catalog.Cache
	)
	switch cfg.SessionStore {
	case "redis":
		if err := utils.InitRedis(); err != nil {
			logger.Fatal("main: failed to connect to Redis", zap.Error(err))
		}
		defer utils.CloseRedis()
		sessionStore = booking.NewRedisStore(utils.SessionClient, cfg.SessionTTL)
		catalogCache = catalog.NewRedisCache(utils.CacheClient)
	default:
		memStore := booking.NewMemoryStore(cfg.SessionTTL)
		memStore.StartSweeper(rootCtx, time.Minute)
		sessionStore = memStore
		catalogCache = catalog.NewMemoryCache()
	}

	stripe.Key = cfg.StripeKey

	// services.
	backendClient := backend.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout, logger.Named("backend"))
	wizardService := booking.NewWizardService(sessionStore, backendClient, cfg.BackendTimeout+10*time.Second, logger.Named("wizard"))
	catalogService := catalog.NewService(backendClient, catalogCache, cfg.CatalogCacheTTL, logger.Named("catalog"))
	accountService := account.NewService(backendClient, logger.Named("account"))
	workerService := worker.NewService(backendClient, logger.Named("worker"))
	checkoutService := payment.NewCheckoutService(cfg.StripeKey, logger.Named("payment"))

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewWizardHandler(wizardService, checkoutService),
		handlers.NewCatalogHandler(catalogService),
		handlers.NewBookingsHandler(backendClient, wizardService),
		handlers.NewAuthHandler(accountService, wizardService),
		handlers.NewWorkerHandler(workerService),
		cfg.JWTSecret,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle, cfg.Origins())

	utils.StartHealthMonitor(rootCtx, utils.RedisClients(), backendClient.BaseURL())

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("sessionStore", cfg.SessionStore))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
