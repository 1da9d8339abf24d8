// Package aggregator keeps a continuously refreshed, bounded snapshot of an Ethereum compatible
// chain: the most recent blocks and transactions plus running statistics over a deeper
// historical range. It also serves uncached lookups of single blocks, transactions and addresses.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/hedisam/chainpulse/internal/eth"
	"github.com/hedisam/chainpulse/internal/store"
	"github.com/hedisam/pipeline/chans"
)

// ChainClient is the read-only view of the node the aggregator polls.
type ChainClient interface {
	ChainID(ctx context.Context) (uint64, error)
	LatestBlockHeight(ctx context.Context) (uint64, error)
	BlockByHeight(ctx context.Context, height uint64, fullTxs bool) (*eth.Block, error)
	BlockByHash(ctx context.Context, hash string, fullTxs bool) (*eth.Block, error)
	Transaction(ctx context.Context, hash string) (*eth.Transaction, error)
	TransactionReceipt(ctx context.Context, hash string) (*eth.Receipt, error)
	Balance(ctx context.Context, address string) (*big.Int, error)
	TransactionCount(ctx context.Context, address string) (uint64, error)
}

// SnapshotStore holds the published snapshot and the failure journal.
type SnapshotStore interface {
	Publish(ctx context.Context, snapshot store.Snapshot) error
	MarkDisconnected(ctx context.Context, reason string) error
	Snapshot(ctx context.Context) store.Snapshot
	RecordFailure(ctx context.Context, f store.Failure)
	Failures(ctx context.Context) []store.Failure
}

// Config controls the poll loop and the size of the cached window and statistics.
type Config struct {
	// ChainID is reported in every snapshot. When zero, the poll loop asks the node for it.
	ChainID               uint64
	PollInterval          time.Duration
	WindowSize            int
	MaxRecentTransactions int
	TransactionsPerBlock  int
	StatsScanDepth        uint64
	// StatsChunkSize caps the number of concurrent block requests issued by a refresh.
	StatsChunkSize   int
	DefaultBlockTime float64
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		PollInterval:          4 * time.Second,
		WindowSize:            10,
		MaxRecentTransactions: 10,
		TransactionsPerBlock:  5,
		StatsScanDepth:        1000,
		StatsChunkSize:        50,
		DefaultBlockTime:      2.0,
	}
}

func (c Config) validate() error {
	var errs []error
	if c.PollInterval <= 0 {
		errs = append(errs, errors.New("poll interval must be positive"))
	}
	if c.WindowSize < 1 {
		errs = append(errs, errors.New("window size must be at least 1"))
	}
	if c.MaxRecentTransactions < 0 {
		errs = append(errs, errors.New("max recent transactions cannot be negative"))
	}
	if c.TransactionsPerBlock < 0 {
		errs = append(errs, errors.New("transactions per block cannot be negative"))
	}
	if c.StatsChunkSize < 1 {
		errs = append(errs, errors.New("stats chunk size must be at least 1"))
	}
	if c.DefaultBlockTime <= 0 {
		errs = append(errs, errors.New("default block time must be positive"))
	}

	return errors.Join(errs...)
}

// Aggregator owns the poll loop and is the only writer of the snapshot store.
type Aggregator struct {
	logger           *logrus.Logger
	client           ChainClient
	store            SnapshotStore
	cfg              Config
	defaultBlockTime decimal.Decimal
	running          atomic.Bool
	cycle            uint64
	chainID          uint64
}

func New(logger *logrus.Logger, client ChainClient, snapshotStore SnapshotStore, cfg Config) (*Aggregator, error) {
	err := cfg.validate()
	if err != nil {
		return nil, fmt.Errorf("invalid aggregator config: %w", err)
	}

	return &Aggregator{
		logger:           logger,
		client:           client,
		store:            snapshotStore,
		cfg:              cfg,
		chainID:          cfg.ChainID,
		defaultBlockTime: decimal.NewFromFloat(cfg.DefaultBlockTime).Round(store.StatsPrecision),
	}, nil
}

// InitialSnapshot is the snapshot to seed the store with before the first cycle completes.
func InitialSnapshot(cfg Config) store.Snapshot {
	return store.Snapshot{
		ChainID: cfg.ChainID,
		Stats: store.Stats{
			TPS:          decimal.Zero,
			AvgBlockTime: decimal.NewFromFloat(cfg.DefaultBlockTime).Round(store.StatsPrecision),
		},
	}
}

// Snapshot returns the state published by the last completed poll cycle. It never blocks on a running cycle.
func (a *Aggregator) Snapshot(ctx context.Context) store.Snapshot {
	return a.store.Snapshot(ctx)
}

// Failures returns the most recent non-fatal failures observed by the poll loop, newest first.
func (a *Aggregator) Failures(ctx context.Context) []store.Failure {
	return a.store.Failures(ctx)
}

// Start runs the poll loop until ctx is cancelled. A cycle runs immediately and then on every tick of
// the poll interval, measured from the start of the previous cycle. Cycles never overlap: a tick that
// fires while a cycle is still running is served once that cycle returns.
// Cancelling ctx is the only way to stop the loop; results of a cycle interrupted by cancellation are discarded.
func (a *Aggregator) Start(ctx context.Context) {
	if !a.running.CompareAndSwap(false, true) {
		a.logger.Warn("Aggregator poll loop is already running")
		return
	}
	defer a.running.Store(false)

	t := time.NewTicker(a.cfg.PollInterval)
	defer t.Stop()

	a.logger.WithField("poll_interval", a.cfg.PollInterval).Info("Starting aggregator poll loop")
	a.runCycle(ctx)
	for range chans.ReceiveOrDoneSeq(ctx, t.C) {
		a.runCycle(ctx)
	}
	a.logger.Info("Aggregator poll loop stopped")
}

func (a *Aggregator) runCycle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	a.cycle++
	start := time.Now()
	logger := a.logger.WithField("cycle", a.cycle)

	snapshot, err := a.collect(ctx)
	if ctx.Err() != nil {
		logger.Debug("Poll cycle interrupted by cancellation, discarding results")
		return
	}
	cycleDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		logger.WithError(err).Error("Poll cycle failed, keeping last known snapshot")
		cycles.WithLabelValues("failed").Inc()
		connectedGauge.Set(0)
		a.recordFailure(ctx, store.StageHead, "", err)
		err = a.store.MarkDisconnected(ctx, err.Error())
		if err != nil {
			logger.WithError(err).Error("Failed to mark snapshot as disconnected")
		}
		return
	}

	err = a.store.Publish(ctx, snapshot)
	if err != nil {
		logger.WithError(err).Error("Failed to publish snapshot")
		cycles.WithLabelValues("failed").Inc()
		return
	}

	cycles.WithLabelValues("ok").Inc()
	connectedGauge.Set(1)
	latestHeightGauge.Set(float64(snapshot.LatestHeight))
	tpsGauge.Set(snapshot.Stats.TPS.InexactFloat64())
	avgBlockTimeGauge.Set(snapshot.Stats.AvgBlockTime.InexactFloat64())

	logger.WithFields(logrus.Fields{
		"latest_height":       snapshot.LatestHeight,
		"recent_blocks":       len(snapshot.RecentBlocks),
		"recent_transactions": len(snapshot.RecentTransactions),
		"total_transactions":  snapshot.Stats.TotalTransactions,
		"tps":                 snapshot.Stats.TPS.StringFixed(store.StatsPrecision),
		"avg_block_time":      snapshot.Stats.AvgBlockTime.StringFixed(store.StatsPrecision),
		"took":                time.Since(start),
	}).Debug("Poll cycle completed")
}

// collect builds the next snapshot. Only a failure to read the chain head is returned as an error;
// window and stats failures fall back to the previously published values.
func (a *Aggregator) collect(ctx context.Context) (store.Snapshot, error) {
	prev := a.store.Snapshot(ctx)

	height, err := a.client.LatestBlockHeight(ctx)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("fetch latest block height: %w", err)
	}
	if prev.Cycle > 0 && height < prev.LatestHeight {
		// reorgs are not reconciled; the lower head simply becomes the new view
		a.logger.WithFields(logrus.Fields{
			"previous_height": prev.LatestHeight,
			"latest_height":   height,
		}).Warn("Chain head moved backwards")
		headRegressions.Inc()
	}

	if ctx.Err() != nil {
		return store.Snapshot{}, ctx.Err()
	}
	latest, err := a.client.BlockByHeight(ctx, height, false)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("fetch latest block: %w", err)
	}

	if a.chainID == 0 {
		a.resolveChainID(ctx)
	}

	next := store.Snapshot{
		ChainID:            a.chainID,
		LatestHeight:       height,
		LatestBlock:        latest,
		RecentBlocks:       prev.RecentBlocks,
		RecentTransactions: prev.RecentTransactions,
		Stats:              prev.Stats,
		Connected:          true,
		Cycle:              a.cycle,
		UpdatedAt:          time.Now(),
	}

	blocks, txs, err := a.refreshWindow(ctx, latest)
	if err != nil {
		a.logger.WithError(err).Warn("Window refresh failed, keeping previous window")
		a.recordFailure(ctx, store.StageWindowBlocks, "", err)
	} else {
		next.RecentBlocks = blocks
		next.RecentTransactions = txs
	}

	known := make(map[uint64]*eth.Block, len(blocks))
	for _, b := range blocks {
		known[b.Height] = b
	}
	stats, err := a.refreshStats(ctx, height, known)
	if err != nil {
		a.logger.WithError(err).Warn("Stats refresh failed, keeping previous stats")
	} else {
		next.Stats = stats
	}

	return next, nil
}

// resolveChainID fetches the chain id once the node answers. Failures leave it unknown until the next cycle.
func (a *Aggregator) resolveChainID(ctx context.Context) {
	id, err := a.client.ChainID(ctx)
	if err != nil {
		a.logger.WithError(err).Warn("Failed to fetch chain id, retrying next cycle")
		return
	}

	a.chainID = id
	a.logger.WithField("chain_id", id).Info("Resolved chain id")
}

func (a *Aggregator) recordFailure(ctx context.Context, stage store.Stage, ref string, err error) {
	a.store.RecordFailure(ctx, store.Failure{
		Time:  time.Now(),
		Cycle: a.cycle,
		Stage: stage,
		Ref:   ref,
		Error: err.Error(),
	})
}
