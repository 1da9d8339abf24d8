package aggregator

import (
	"context"
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/hedisam/chainpulse/internal/eth"
	"github.com/hedisam/chainpulse/internal/store"
)

var errNothingScanned = errors.New("no block in the scan range could be fetched")

// scan accumulates per-block figures in scan order, i.e. from the highest height down.
type scan struct {
	totalTxs  uint64
	firstTime uint64
	lastTime  uint64
	scanned   uint64
	skipped   uint64
}

func (s *scan) add(b *eth.Block) {
	s.totalTxs += uint64(b.TxCount())
	if s.scanned == 0 {
		s.firstTime = b.Timestamp
	}
	s.lastTime = b.Timestamp
	s.scanned++
}

// stats derives tps and the average block interval. Both fall back to their defaults when the scan
// covers no measurable time span.
func (s *scan) stats(defaultBlockTime decimal.Decimal) store.Stats {
	var timeSpan uint64
	if s.firstTime > s.lastTime {
		timeSpan = s.firstTime - s.lastTime
	}

	tps := decimal.Zero
	avgBlockTime := defaultBlockTime
	if timeSpan > 0 {
		span := decimal.NewFromInt(int64(timeSpan))
		tps = decimal.NewFromInt(int64(s.totalTxs)).DivRound(span, store.StatsPrecision)
		avgBlockTime = span.DivRound(decimal.NewFromInt(int64(s.scanned-1)), store.StatsPrecision)
	}

	return store.Stats{
		TotalTransactions: s.totalTxs,
		TPS:               tps,
		AvgBlockTime:      avgBlockTime,
		BlocksScanned:     s.scanned,
		BlocksSkipped:     s.skipped,
		TimeSpan:          timeSpan,
	}
}

// refreshStats walks [max(0, head-StatsScanDepth) .. head] from the top in chunks of StatsChunkSize.
// Blocks inside a chunk are fetched concurrently, chunks one after another. Blocks present in known are
// not fetched again. Blocks that cannot be fetched are journaled and left out of the figures.
func (a *Aggregator) refreshStats(ctx context.Context, head uint64, known map[uint64]*eth.Block) (store.Stats, error) {
	lowest := head - min(head, a.cfg.StatsScanDepth)
	chunkSize := uint64(a.cfg.StatsChunkSize)

	var acc scan
	hi := head
	for {
		lo := hi - min(hi-lowest, chunkSize-1)
		blocks, err := a.fetchChunk(ctx, hi, lo, known)
		if err != nil {
			return store.Stats{}, err
		}
		for _, b := range blocks {
			if b == nil {
				acc.skipped++
				continue
			}
			acc.add(b)
		}
		if lo == lowest {
			break
		}
		hi = lo - 1
	}

	if acc.scanned == 0 {
		return store.Stats{}, errNothingScanned
	}

	stats := acc.stats(a.defaultBlockTime)
	stats.FromHeight = lowest
	stats.ToHeight = head
	return stats, nil
}

// fetchChunk returns the blocks hi..lo, highest first. Entries that could not be fetched are nil.
func (a *Aggregator) fetchChunk(ctx context.Context, hi, lo uint64, known map[uint64]*eth.Block) ([]*eth.Block, error) {
	blocks := make([]*eth.Block, hi-lo+1)

	var g errgroup.Group
	for i := range blocks {
		height := hi - uint64(i)
		if b, ok := known[height]; ok {
			blocks[i] = b
			continue
		}

		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			// transactions are omitted, only their hashes are counted
			b, err := a.client.BlockByHeight(ctx, height, false)
			if err != nil {
				if ctx.Err() == nil {
					a.logger.WithField("height", height).WithError(err).Warn("Failed to fetch block for stats, skipping")
					skippedItems.WithLabelValues(string(store.StageStatsBlock)).Inc()
					a.recordFailure(ctx, store.StageStatsBlock, strconv.FormatUint(height, 10), err)
				}
				return nil
			}
			blocks[i] = b
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return blocks, nil
}
