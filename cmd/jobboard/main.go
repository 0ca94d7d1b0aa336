// cmd/jobboard/main.go
package main

import (
	"bufio"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"jobboard-client/internal/api"
	"jobboard-client/internal/cli"
	"jobboard-client/internal/common/config"
	"jobboard-client/internal/common/logger"
	"jobboard-client/internal/common/observability"
	"jobboard-client/internal/session"
	"jobboard-client/internal/workflows/application"
	"jobboard-client/internal/workflows/jobsearch"
	"jobboard-client/internal/workflows/listing"
	"jobboard-client/internal/workflows/onboarding"
	"jobboard-client/internal/workflows/review"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log = logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Session store ---
	var store session.Store
	switch cfg.Session.Backend {
	case "redis":
		redisStore := session.NewRedisStore(cfg.Session.Redis)
		if err := redisStore.Ping(ctx); err != nil {
			zapLog.Fatal("redis session store unreachable", zap.Error(err))
		}
		store = redisStore
		zapLog.Info("Redis session store connected", zap.String("key", redisStore.Key()))
	default:
		store = session.NewMemoryStore()
	}
	defer store.Close()

	// --- API client and workflows ---
	client := api.NewClient(cfg.API.BaseURL, cfg.API.GetTimeout(), log, obs)

	// One shared reader: the confirmation gate and the command loop must
	// not buffer stdin independently.
	stdin := bufio.NewReader(os.Stdin)
	confirmer := cli.NewStdinConfirmer(stdin, os.Stdout)

	shell := cli.NewShell(cli.Options{
		Client:       client,
		Search:       jobsearch.NewService(client, log),
		Applications: application.NewService(client, store, confirmer, log),
		Listings:     listing.NewService(client, confirmer, log),
		Review:       review.NewService(client, log),
		Onboarding:   onboarding.NewService(client, log),
		ResetSession: store.Reset,
		Logger:       log,
		In:           stdin,
		Out:          os.Stdout,
	})

	// --- Metrics endpoint ---
	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			zapLog.Info("Metrics server listening", zap.String("address", cfg.Metrics.Address))
			if err := http.ListenAndServe(cfg.Metrics.Address, mux); err != nil {
				zapLog.Error("Metrics server failed", zap.Error(err))
			}
		}()
	}

	// --- Signal handling ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		zapLog.Info("Shutdown signal received")
		cancel()
	}()

	if err := shell.Run(ctx); err != nil && err != context.Canceled {
		zapLog.Error("shell exited with error", zap.Error(err))
	}

	zapLog.Info("jobboard stopped")
}
