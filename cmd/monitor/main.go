package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blockpulse/blockpulse-monitor/internal/chain"
	"github.com/blockpulse/blockpulse-monitor/internal/clock"
	"github.com/blockpulse/blockpulse-monitor/internal/measure"
	"github.com/blockpulse/blockpulse-monitor/internal/metrics"
	"github.com/blockpulse/blockpulse-monitor/internal/monitor"
	"github.com/blockpulse/blockpulse-monitor/internal/pkg/eth/rpcclient"
	"github.com/blockpulse/blockpulse-monitor/internal/render"
	"github.com/blockpulse/blockpulse-monitor/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type config struct {
	Endpoint      string        `long:"endpoint" env:"MONITOR_ENDPOINT" description:"node websocket endpoint" default:"ws://localhost:8546"`
	Window        int           `long:"window" env:"MONITOR_WINDOW" description:"sliding window capacity in blocks" default:"16"`
	Refresh       bool          `long:"refresh" env:"MONITOR_REFRESH" description:"redraw the status line in place instead of appending"`
	MetricsAddr   string        `long:"metrics-addr" env:"MONITOR_METRICS_ADDR" description:"address for metrics and status server" default:":2112"`
	RPCRateLimit  int           `long:"rpc-rate-limit" env:"MONITOR_RPC_RATE_LIMIT" description:"block fetches per second" default:"50"`
	StatsInterval time.Duration `long:"stats-interval" env:"MONITOR_STATS_INTERVAL" description:"session summary logging interval, 0 disables" default:"30s"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("block monitor failed", zap.Error(err))
	}
	logger.Info("block monitor stopped")
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	clk := clock.New()
	window, err := measure.New(cfg.Window, clk)
	if err != nil {
		return fmt.Errorf("init measurement window: %w", err)
	}

	client, err := chain.Dial(ctx, cfg.Endpoint, cfg.RPCRateLimit)
	if err != nil {
		return fmt.Errorf("dial chain endpoint: %w", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("fetch chain id: %w", err)
	}
	logger.Info("connected", zap.String("endpoint", cfg.Endpoint), zap.String("chain_id", chainID.String()))

	source := rpcclient.NewObservedClient(client, metrics.NewRPCClient(chainID.String()))

	console, err := render.NewConsole(os.Stdout, cfg.Refresh)
	if err != nil {
		return fmt.Errorf("init console renderer: %w", err)
	}

	svc, err := monitor.New(
		monitor.Config{
			Endpoint:      cfg.Endpoint,
			ChainID:       chainID.String(),
			StatsInterval: cfg.StatsInterval,
		},
		source,
		window,
		console,
		metrics.NewMonitor(),
		clk,
		logger,
	)
	if err != nil {
		return err
	}

	statusHandler, err := transport.NewStatusHandler(svc, logger)
	if err != nil {
		return err
	}
	startStatusServer(ctx, cfg.MetricsAddr, statusHandler, logger)

	return svc.Run(ctx)
}

func startStatusServer(ctx context.Context, addr string, status http.Handler, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/status", status)

	srv := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting status server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("status server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown status server", zap.Error(err))
		}
	}()
}
