package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/example/customer-page-service/internal/adapter/cache"
	"github.com/example/customer-page-service/internal/adapter/httpapi"
	"github.com/example/customer-page-service/internal/adapter/kafkafeed"
	"github.com/example/customer-page-service/internal/adapter/natsstan"
	"github.com/example/customer-page-service/internal/adapter/repo"
	"github.com/example/customer-page-service/internal/adapter/sales"
	"github.com/example/customer-page-service/internal/adapter/session"
	"github.com/example/customer-page-service/internal/adapter/shipment"
	"github.com/example/customer-page-service/internal/config"
	"github.com/example/customer-page-service/internal/domain"
	"github.com/example/customer-page-service/internal/logger"
	"github.com/example/customer-page-service/internal/metrics"
	"github.com/example/customer-page-service/internal/usecase"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer pool.Close()

	if err := repo.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	orderRepo := repo.NewPostgresOrderRepo(pool)
	orderCache := cache.NewMemoryOrderCache()

	loaded, err := usecase.LoadCache{Repo: orderRepo, Cache: orderCache, Logger: log}.Execute(ctx)
	if err != nil {
		return fmt.Errorf("load cache: %w", err)
	}
	log.Info("order cache warmed", "orders", loaded)

	checks := map[string]func(context.Context) error{"postgres": pool.Ping}
	customers, closeSessions, err := newCustomerClient(ctx, cfg.Redis, log, checks)
	if err != nil {
		return err
	}
	defer closeSessions()

	salesClient := sales.NewClient(orderCache)
	srv, err := httpapi.NewServer(httpapi.Deps{
		OrderList: usecase.GetOrderList{
			Sales:    salesClient,
			Defaults: cfg.CustomerPage.OrderListDefaults(),
		},
		OrderDetails: usecase.GetOrderDetails{
			Sales:     salesClient,
			Shipments: shipment.Grouper{},
			Expander:  shipment.Expander{},
			Logger:    log,
		},
		Customers:          customers,
		OrderSearchEnabled: cfg.CustomerPage.OrderSearchEnabled,
		SessionCookie:      cfg.HTTP.SessionCookie,
		LoginPath:          cfg.HTTP.LoginPath,
		Logger:             log,
		Metrics:            m,
		MetricsHandler:     promhttp.Handler(),
		HealthChecks:       checks,
	})
	if err != nil {
		return err
	}

	ingest := usecase.ProcessIncomingOrder{Repo: orderRepo, Cache: orderCache}
	handler := func(ctx context.Context, raw []byte) error {
		o, err := ingest.Execute(ctx, raw)
		if err != nil {
			reason := "store"
			if errors.Is(err, domain.ErrValidation) {
				reason = "validation"
			}
			m.IngestFailed(reason)
			return err
		}
		m.OrderIngested()
		log.Debug("processed order", "order_reference", o.Reference)
		return nil
	}

	httpSrv := &http.Server{Addr: cfg.HTTP.Addr, Handler: srv.Router, ReadHeaderTimeout: 5 * time.Second}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return newSubscriber(cfg.Feed, log).Subscribe(gCtx, handler)
	})
	g.Go(func() error {
		log.Info("http listening", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newSubscriber(cfg config.Feed, log *slog.Logger) domain.MessageSubscriber {
	if cfg.Kind == config.FeedKafka {
		return &kafkafeed.Consumer{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
			GroupID: cfg.Kafka.GroupID,
			Logger:  log,
		}
	}
	return &natsstan.Subscriber{
		ClusterID: cfg.Stan.ClusterID,
		ClientID:  cfg.Stan.ClientID,
		URL:       cfg.Stan.URL,
		Subject:   cfg.Stan.Subject,
		Durable:   cfg.Stan.Durable,
		Logger:    log,
	}
}

func newCustomerClient(ctx context.Context, cfg config.Redis, log *slog.Logger, checks map[string]func(context.Context) error) (domain.CustomerClient, func(), error) {
	if cfg.URL == "" {
		log.Warn("redis not configured, customer sessions are kept in memory")
		return session.NewMemoryStore(cfg.SessionTTL), func() {}, nil
	}
	store, err := session.NewRedisStore(ctx, cfg.URL, cfg.SessionTTL)
	if err != nil {
		return nil, nil, err
	}
	checks["redis"] = store.Health
	return store, func() { _ = store.Close() }, nil
}
