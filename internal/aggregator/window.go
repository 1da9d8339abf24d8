package aggregator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hedisam/chainpulse/internal/eth"
	"github.com/hedisam/chainpulse/internal/store"
)

// refreshWindow fetches the WindowSize most recent blocks ending at latest, newest first, and draws up to
// MaxRecentTransactions transactions from them. Any block failure fails the whole window so that a
// published window never has gaps; transaction failures are journaled and skipped.
func (a *Aggregator) refreshWindow(ctx context.Context, latest *eth.Block) ([]*eth.Block, []*store.WindowTransaction, error) {
	head := latest.Height
	count := min(head+1, uint64(a.cfg.WindowSize))

	blocks := make([]*eth.Block, count)
	blocks[0] = latest

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.StatsChunkSize)
	for i := uint64(1); i < count; i++ {
		height := head - i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, err := a.client.BlockByHeight(gctx, height, false)
			if err != nil {
				return fmt.Errorf("fetch window block %d: %w", height, err)
			}
			blocks[i] = b
			return nil
		})
	}
	err := g.Wait()
	if err != nil {
		return nil, nil, err
	}

	return blocks, a.fetchWindowTransactions(ctx, blocks), nil
}

type txPick struct {
	hash           string
	blockTimestamp uint64
}

// pickWindowTransactions lists the candidate transactions in display order: blocks newest first,
// at most TransactionsPerBlock from each block in block order.
func (a *Aggregator) pickWindowTransactions(blocks []*eth.Block) []txPick {
	var picks []txPick
	for _, b := range blocks {
		hashes := b.TxHashes[:min(len(b.TxHashes), a.cfg.TransactionsPerBlock)]
		for _, hash := range hashes {
			picks = append(picks, txPick{hash: hash, blockTimestamp: b.Timestamp})
		}
	}

	return picks
}

// fetchWindowTransactions fetches candidates in order until MaxRecentTransactions are collected or the
// candidates run out. Each round fetches only as many as are still missing, so a failed transaction is
// replaced by the next candidate rather than leaving a gap.
func (a *Aggregator) fetchWindowTransactions(ctx context.Context, blocks []*eth.Block) []*store.WindowTransaction {
	picks := a.pickWindowTransactions(blocks)
	txs := make([]*store.WindowTransaction, 0, min(len(picks), a.cfg.MaxRecentTransactions))

	for len(picks) > 0 && len(txs) < a.cfg.MaxRecentTransactions && ctx.Err() == nil {
		batch := picks[:min(len(picks), a.cfg.MaxRecentTransactions-len(txs))]
		picks = picks[len(batch):]

		for _, tx := range a.fetchTransactionBatch(ctx, batch) {
			if tx != nil {
				txs = append(txs, tx)
			}
		}
	}

	return txs
}

// fetchTransactionBatch fetches batch concurrently. The result is aligned with batch; failed entries are nil.
func (a *Aggregator) fetchTransactionBatch(ctx context.Context, batch []txPick) []*store.WindowTransaction {
	fetched := make([]*store.WindowTransaction, len(batch))

	var g errgroup.Group
	g.SetLimit(a.cfg.StatsChunkSize)
	for i, pick := range batch {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			tx, err := a.client.Transaction(ctx, pick.hash)
			if err != nil {
				a.logger.WithField("tx_hash", pick.hash).WithError(err).Warn("Failed to fetch window transaction, skipping")
				skippedItems.WithLabelValues(string(store.StageWindowTransaction)).Inc()
				a.recordFailure(ctx, store.StageWindowTransaction, pick.hash, err)
				return nil
			}
			fetched[i] = &store.WindowTransaction{
				Transaction:    tx,
				BlockTimestamp: pick.blockTimestamp,
			}
			return nil
		})
	}
	_ = g.Wait()

	return fetched
}
