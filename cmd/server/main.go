package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	billingapp "github.com/ilidanrock/ecohome-sub001/internal/application/billing"
	identityapp "github.com/ilidanrock/ecohome-sub001/internal/application/identity"
	invoicingapp "github.com/ilidanrock/ecohome-sub001/internal/application/invoicing"
	propertyapp "github.com/ilidanrock/ecohome-sub001/internal/application/property"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/auth"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/config"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/logger"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/persistence"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/telemetry"
	"github.com/ilidanrock/ecohome-sub001/internal/interfaces/http/handler"
	"github.com/ilidanrock/ecohome-sub001/internal/interfaces/http/middleware"
	"github.com/ilidanrock/ecohome-sub001/internal/interfaces/http/router"
)

//	@title			Ecohome API
//	@version		1.0
//	@description	Property management backend: rentals, utility billing, invoice generation and payment reconciliation

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Telemetry providers. Each one degrades to a no-op when disabled, so
	// the rest of the wiring does not branch on cfg.Telemetry.Enabled.
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}

	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}

	loggerProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}

	if loggerProvider.IsEnabled() {
		otelCore := telemetry.NewZapOTELCore(telemetry.ZapBridgeConfig{
			ServiceName:    cfg.Telemetry.ServiceName,
			LoggerProvider: loggerProvider,
			Level:          zap.InfoLevel,
		})
		log = telemetry.NewBridgedLogger(log.Core(), otelCore)
	}

	// Database
	database, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()
	db := database.DB

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		tracingCfg := telemetry.DefaultDBTracingConfig()
		tracingCfg.Enabled = true
		plugin := telemetry.NewDBTracingPlugin(tracingCfg, log)
		if err := plugin.RegisterOtelGorm(db); err != nil {
			log.Error("Failed to register database tracing", zap.Error(err))
		}
	}

	if meterProvider.IsEnabled() {
		if _, err := telemetry.RegisterDBMetrics(db, meterProvider, telemetry.DefaultDBMetricsConfig(), log); err != nil {
			log.Error("Failed to register database metrics", zap.Error(err))
		}
	}

	// Redis backs the token blacklist and the health check.
	redisClient := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     10,
		MinIdleConns: 3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	defer func() {
		_ = redisClient.Close()
	}()

	var blacklist auth.TokenBlacklist
	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		// Without Redis, logout revocation only holds within this process.
		log.Warn("Redis unavailable, falling back to in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = auth.NewRedisTokenBlacklistWithClient(redisClient)
	}
	cancelPing()

	jwtService := auth.NewJWTService(cfg.JWT)

	// Repositories
	userRepo := persistence.NewGormUserRepository(db)
	propertyRepo := persistence.NewGormPropertyRepository(db)
	rentalRepo := persistence.NewGormRentalRepository(db)
	electricityRepo := persistence.NewGormElectricityBillRepository(db)
	waterRepo := persistence.NewGormWaterBillRepository(db)
	consumptionRepo := persistence.NewGormConsumptionRepository(db)
	invoiceRepo := persistence.NewGormInvoiceRepository(db)
	paymentRepo := persistence.NewGormPaymentRepository(db)
	txManager := persistence.NewGormTransactionManager(db)

	// Application services
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, log)
	propertyService := propertyapp.NewPropertyService(propertyRepo, userRepo)
	rentalService := propertyapp.NewRentalService(propertyRepo, rentalRepo, userRepo)
	billService := billingapp.NewBillService(propertyRepo, rentalRepo, electricityRepo, waterRepo, consumptionRepo)
	invoiceService := invoicingapp.NewInvoiceService(propertyRepo, rentalRepo, electricityRepo, invoiceRepo, paymentRepo, txManager)
	paymentService := invoicingapp.NewPaymentService(rentalRepo, invoiceRepo, paymentRepo, txManager)

	// Business metrics poll invoice aggregates in the background.
	var businessMetrics *telemetry.BusinessMetrics
	if meterProvider.IsEnabled() {
		businessMetrics, err = telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
			Meter:           meterProvider.Meter("ecohome/invoicing"),
			Logger:          log,
			InvoiceProvider: telemetry.NewGormInvoiceMetricsProvider(db),
		})
		if err != nil {
			log.Error("Failed to initialize business metrics", zap.Error(err))
		} else {
			invoiceService.SetBusinessMetrics(businessMetrics)
			paymentService.SetBusinessMetrics(businessMetrics)
			businessMetrics.StartPeriodicCollection(ctx, 5*time.Minute)
			defer businessMetrics.Stop()
		}
	}

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine := router.New(router.Dependencies{
		Logger:         log,
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		MeterProvider:  meterProvider,
		TracingEnabled: tracerProvider.IsEnabled(),
		ServiceName:    cfg.Telemetry.ServiceName,
		CORS:           corsCfg,
		System:         handler.NewSystemHandler(db, redisClient),
		Auth:           handler.NewAuthHandler(authService),
		User:           handler.NewUserHandler(userService),
		Property:       handler.NewPropertyHandler(propertyService),
		Rental:         handler.NewRentalHandler(rentalService),
		Bill:           handler.NewBillHandler(billService),
		Invoice:        handler.NewInvoiceHandler(invoiceService),
		Payment:        handler.NewPaymentHandler(paymentService),
	})

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies configuration", zap.Error(err))
		}
	}

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Starting HTTP server",
			zap.String("addr", server.Addr),
			zap.String("env", cfg.App.Env),
			zap.Bool("telemetry", cfg.Telemetry.Enabled),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}

	if err := loggerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Logger provider shutdown failed", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Meter provider shutdown failed", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Tracer provider shutdown failed", zap.Error(err))
	}

	log.Info("Server stopped")
}
