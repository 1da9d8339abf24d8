package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	restapi "github.com/hedisam/chainpulse/api/rest"
	"github.com/hedisam/chainpulse/internal/aggregator"
	"github.com/hedisam/chainpulse/internal/config"
	"github.com/hedisam/chainpulse/internal/custompromauto"
	"github.com/hedisam/chainpulse/internal/eth"
	"github.com/hedisam/chainpulse/internal/store/memdb"
)

type Options struct {
	ConfigPath   string
	ServerAddr   string
	NodeAddr     string
	PollInterval time.Duration
	Verbose      bool
}

func main() {
	var opts Options
	flag.StringVar(&opts.ConfigPath, "config", "", "Path to a YAML config file. Defaults are used for every missing key")
	flag.StringVar(&opts.ServerAddr, "server-addr", "", "Server addr to serve the http server on. Overrides server_addr")
	flag.StringVar(&opts.NodeAddr, "node-addr", "", "The JSON-RPC endpoint of the node to poll. Overrides rpc_endpoint")
	flag.DurationVar(&opts.PollInterval, "poll-interval", 0, "Node polling interval. Overrides poll_interval_seconds")
	flag.BoolVar(&opts.Verbose, "v", false, "Verbose output")
	flag.Parse()

	logger := logrus.New()

	// a missing .env file is fine, the environment may be set some other way
	_ = godotenv.Load()

	cfg := mustLoadConfig(logger, opts)
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithError(err).WithField("log_level", cfg.LogLevel).Fatal("Invalid log level")
	}
	logger.SetLevel(level)
	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	httpClient := &http.Client{Timeout: cfg.RequestTimeout()}
	ethClient := eth.New(logger, httpClient, cfg.RPCEndpoint)

	aggCfg := aggregatorConfig(cfg)
	aggCfg.ChainID, err = ethClient.WaitReady(ctx, cfg.ReadyTimeout())
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		// the poll loop reports the node as disconnected and resolves the chain id once it comes up
		logger.WithError(err).Warn("Chain node is not ready, starting without a chain id")
	}

	snapshotStore := memdb.NewSnapshotStore(aggregator.InitialSnapshot(aggCfg), memdb.WithJournalSize(cfg.FailureJournalSize))
	agg, err := aggregator.New(logger, ethClient, snapshotStore, aggCfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create aggregator")
	}
	go agg.Start(ctx)

	mux := http.NewServeMux()
	restapi.NewServer(logger, agg).Register(mux)

	// use a custom prom registry to avoid recording the default http handler metrics
	mux.Handle("/metrics", promhttp.HandlerFor(custompromauto.Registry(), promhttp.HandlerOpts{}))

	mustListenAndServe(ctx, logger, cfg.ServerAddr, mux)
}

func mustLoadConfig(logger *logrus.Logger, opts Options) config.Config {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		var err error
		cfg, err = config.Load(opts.ConfigPath)
		if err != nil {
			logger.WithError(err).WithField("path", opts.ConfigPath).Fatal("Failed to load config")
		}
	}

	// flags override the file only when explicitly set
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "server-addr":
			cfg.ServerAddr = opts.ServerAddr
		case "node-addr":
			cfg.RPCEndpoint = opts.NodeAddr
		case "poll-interval":
			cfg.PollIntervalSeconds = opts.PollInterval.Seconds()
		}
	})

	err := cfg.Validate()
	if err != nil {
		logger.WithError(err).Error("Invalid configuration")
		flag.Usage()
		os.Exit(1)
	}

	return cfg
}

func aggregatorConfig(cfg config.Config) aggregator.Config {
	return aggregator.Config{
		PollInterval:          cfg.PollInterval(),
		WindowSize:            cfg.WindowSize,
		MaxRecentTransactions: cfg.MaxRecentTransactions,
		TransactionsPerBlock:  cfg.TransactionsPerBlock,
		StatsScanDepth:        uint64(cfg.StatsScanDepth),
		StatsChunkSize:        cfg.StatsChunkSize,
		DefaultBlockTime:      cfg.DefaultBlockTimeSeconds,
	}
}

func mustListenAndServe(ctx context.Context, logger *logrus.Logger, addr string, handler http.Handler) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.WithField("addr", addr).Info("Serving server...")
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed with error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	logger.Info("Shutting down server...")
	err := srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.WithError(err).Error("Failed to shutdown server gracefully")
	}
}
