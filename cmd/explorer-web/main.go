package main

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/api"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/config"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/format"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/service"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/store"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/transport"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}
	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Explorer web failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	rc, err := config.LoadRuntime(cfg.RuntimeConfig)
	if err != nil {
		return err
	}
	baseURL := config.ResolveBaseURL(cfg.APIBaseURL, rc)
	backend := baseURL
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		backend = u.Host
	}

	location, err := cfg.Location()
	if err != nil {
		return err
	}
	locale, err := format.ParseLocale(cfg.Locale, location)
	if err != nil {
		return err
	}

	client := api.NewClient(api.Config{
		BaseURL:   baseURL,
		Timeout:   cfg.HTTPTimeout,
		RateLimit: cfg.RateLimit,
	}, logger, metrics.NewAPIClient(backend))

	networkStore := store.NewNetworkStore(
		service.NewNetworkService(client, nil),
		metrics.NewNetworkMonitor(backend),
		clock.New(),
		cfg.RefreshInterval,
		logger,
	)
	networkStore.StartNetworkMonitor(ctx)

	handler := transport.NewExplorerHandler(transport.ExplorerServices{
		Addresses:    service.NewAddressService(client, nil),
		Blocks:       service.NewBlockService(client, nil),
		Transactions: service.NewTransactionService(client, nil),
		Mempool:      service.NewMempoolService(client, nil),
		Health:       service.NewHealthService(client, nil),
		Network:      networkStore,
	}, locale, logger)
	router := transport.NewRouter(handler, logger)

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router.Handler(cfg.CORSOrigins),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server",
		zap.String("addr", cfg.Addr),
		zap.String("api_base_url", baseURL),
		zap.String("locale", locale.Tag().String()),
	)
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
