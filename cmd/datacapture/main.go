// cmd/datacapture/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/api"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/config"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/logger"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/observability"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/media"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/payment"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/selector"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/session"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/pkg/capability"
)

// clientCore bundles the long-lived components the screens drive. It is
// built once at startup and lives until shutdown.
type clientCore struct {
	store        *session.Store
	api          *api.Client
	uploader     *media.Uploader
	locations    *selector.Chain
	checkout     *payment.Checkout
	capabilities *capability.Registry
}

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting datacapture client core...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init local session store with retry ---
	store := session.New(cfg.Store.Redis, log)
	err = retryWithBackoff(func() error {
		return store.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Session store connection")
	if err != nil {
		zapLog.Fatal("session store failed after retries", zap.Error(err))
	}
	defer store.Close()
	zapLog.Info("Session store connected successfully")

	// --- Init platform API client ---
	client := api.NewClient(cfg.API, store, log).WithRecorder(obs)
	zapLog.Info("API client initialized", zap.String("baseURL", cfg.API.BaseURL))

	// --- Assemble the client core ---
	feeTTL := time.Duration(cfg.Selector.FeeCacheTTL) * time.Second
	core := &clientCore{
		store:        store,
		api:          client,
		uploader:     media.NewUploader(cfg.Media, log),
		locations:    selector.NewChain(selector.NewCachingDirectory(client, store, feeTTL, log), log),
		checkout:     payment.NewCheckout(client, log),
		capabilities: capability.Default(),
	}
	zapLog.Info("client core assembled", zap.Duration("feeCacheTTL", feeTTL))

	// --- Resolve capabilities for the signed-in session, when one exists ---
	if permissions, err := core.api.UserPermissions(ctx); err == nil {
		caps := core.capabilities.Resolve(permissions)
		zapLog.Info("capabilities resolved", zap.Int("count", len(caps)))
	} else {
		zapLog.Info("no active session, capabilities deferred", zap.Error(err))
	}

	// --- Metrics and health endpoints ---
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := core.store.Ping(r.Context()); err != nil {
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:    cfg.App.MetricsAddr,
		Handler: mux,
	}
	go func() {
		zapLog.Info("metrics server listening", zap.String("addr", cfg.App.MetricsAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Error("metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("metrics server shutdown failed", zap.Error(err))
	}

	zapLog.Info("datacapture client core stopped")
}
