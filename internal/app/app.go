// Package app wires configuration, storage, messaging, and HTTP into a
// runnable storefront server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/hellospace/storefront/internal/config"
	"github.com/hellospace/storefront/internal/event"
	httphandler "github.com/hellospace/storefront/internal/handler/http"
	"github.com/hellospace/storefront/internal/repository/memory"
	postgresrepo "github.com/hellospace/storefront/internal/repository/postgres"
	redisrepo "github.com/hellospace/storefront/internal/repository/redis"
	mocksender "github.com/hellospace/storefront/internal/sender/mock"
	"github.com/hellospace/storefront/internal/service"
	"github.com/hellospace/storefront/pkg/database"
	"github.com/hellospace/storefront/pkg/events"
	"github.com/hellospace/storefront/pkg/health"
	"github.com/hellospace/storefront/pkg/tracing"
)

// App owns the process-level resources of the storefront server.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	rdb      *redis.Client
	pool     *pgxpool.Pool
	producer *events.Producer

	tracerShutdown func(context.Context) error
	httpServer     *http.Server
}

// NewApp connects every dependency and builds the HTTP server. It fails fast
// when Redis or PostgreSQL are unreachable; Kafka availability is only
// surfaced through the readiness endpoint.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rdb, err := database.NewRedisClient(initCtx, database.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	pool, err := database.NewPostgresPool(initCtx, database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxConns:        10,
		MinConns:        2,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 30 * time.Minute,
	})
	if err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := postgresrepo.Migrate(initCtx, pool, logger); err != nil {
		pool.Close()
		rdb.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	tracerShutdown, err := tracing.Init(initCtx, tracing.Config{
		ServiceName:  "storefront-api",
		Environment:  cfg.Environment,
		OTLPEndpoint: cfg.OTLPEndpoint,
		SampleRate:   cfg.TraceSampleRate,
		Enabled:      cfg.TracingEnabled,
	})
	if err != nil {
		pool.Close()
		rdb.Close()
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	kafkaProducer := events.NewProducer(events.DefaultProducerConfig(cfg.KafkaBrokers), logger)
	publisher := event.NewProducer(kafkaProducer, logger)

	cartTTL := time.Duration(cfg.CartTTLHours) * time.Hour

	cartRepo := redisrepo.NewCartRepository(rdb, cartTTL)
	wishlistRepo := redisrepo.NewWishlistRepository(rdb, cartTTL)
	userRepo := redisrepo.NewUserRepository(rdb)
	orderRepo := postgresrepo.NewOrderRepository(pool)
	productRepo := memory.NewSampleProductRepository()

	tokenTTL := time.Duration(cfg.TokenTTLHours) * time.Hour

	authService := service.NewAuthService(userRepo, []byte(cfg.JWTSecret), tokenTTL, logger)
	catalogService := service.NewCatalogService(productRepo, logger)
	cartService := service.NewCartService(cartRepo, productRepo, publisher, logger)
	wishlistService := service.NewWishlistService(wishlistRepo, productRepo, cartService, publisher, logger)
	orderService := service.NewOrderService(orderRepo, cartService, publisher, logger)
	inquiryService := service.NewInquiryService(mocksender.NewSender("inquiries", logger), logger)

	registry := health.NewRegistry()
	registry.Register("redis", func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	registry.Register("postgres", func(ctx context.Context) error {
		return pool.Ping(ctx)
	})
	registry.Register("kafka", kafkaProducer.Ping)

	router := httphandler.NewRouter(httphandler.RouterConfig{
		Auth:     authService,
		Catalog:  catalogService,
		Cart:     cartService,
		Wishlist: wishlistService,
		Orders:   orderService,
		Inquiry:  inquiryService,

		Health: registry,
		Logger: logger,

		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		rdb:            rdb,
		pool:           pool,
		producer:       kafkaProducer,
		tracerShutdown: tracerShutdown,
		httpServer:     srv,
	}, nil
}

// Run serves HTTP until ctx is cancelled or the server fails.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("storefront server listening",
			slog.String("addr", a.httpServer.Addr),
			slog.String("environment", a.cfg.Environment),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
		return a.Shutdown()
	}
}

// Shutdown drains the HTTP server and closes every connection.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var firstErr error

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("http shutdown failed", slog.String("error", err.Error()))
		firstErr = err
	}
	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close failed", slog.String("error", err.Error()))
		if firstErr == nil {
			firstErr = err
		}
	}
	if err := a.tracerShutdown(ctx); err != nil {
		a.logger.Error("tracer shutdown failed", slog.String("error", err.Error()))
		if firstErr == nil {
			firstErr = err
		}
	}
	a.pool.Close()
	if err := a.rdb.Close(); err != nil {
		a.logger.Error("redis close failed", slog.String("error", err.Error()))
		if firstErr == nil {
			firstErr = err
		}
	}

	a.logger.Info("storefront server stopped")
	return firstErr
}
