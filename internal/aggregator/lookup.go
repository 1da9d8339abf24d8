package aggregator

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/hedisam/chainpulse/internal/eth"
)

// weiDecimals is the number of decimals between wei and ether.
const weiDecimals = 18

// BlockRef identifies a block either by height or, when Hash is set, by hash.
type BlockRef struct {
	Height uint64
	Hash   string
}

func BlockRefByHeight(height uint64) BlockRef {
	return BlockRef{Height: height}
}

func BlockRefByHash(hash string) BlockRef {
	return BlockRef{Hash: hash}
}

func (r BlockRef) String() string {
	if r.Hash != "" {
		return r.Hash
	}
	return fmt.Sprintf("%d", r.Height)
}

// AddressInfo summarises an address at the chain head. It is computed on demand and never cached.
type AddressInfo struct {
	Address          string          `json:"address"`
	Balance          *big.Int        `json:"balance"`
	BalanceEther     decimal.Decimal `json:"balanceEther"`
	TransactionCount uint64          `json:"transactionCount"`
}

// LookupBlock fetches a single block straight from the node, bypassing the cached snapshot.
func (a *Aggregator) LookupBlock(ctx context.Context, ref BlockRef) (block *eth.Block, err error) {
	defer func() { lookups.WithLabelValues("block", eth.Outcome(err)).Inc() }()

	if ref.Hash != "" {
		return a.client.BlockByHash(ctx, ref.Hash, false)
	}
	return a.client.BlockByHeight(ctx, ref.Height, false)
}

// LookupTransaction fetches a transaction and merges in its receipt. A transaction without a receipt
// (still pending) is returned with a nil Receipt rather than an error.
func (a *Aggregator) LookupTransaction(ctx context.Context, hash string) (tx *eth.Transaction, err error) {
	defer func() { lookups.WithLabelValues("transaction", eth.Outcome(err)).Inc() }()

	tx, err = a.client.Transaction(ctx, hash)
	if err != nil {
		return nil, err
	}
	if tx.IsPending() {
		return tx, nil
	}

	receipt, err := a.client.TransactionReceipt(ctx, hash)
	if err != nil {
		if errors.Is(err, eth.ErrNotFound) {
			return tx, nil
		}
		return nil, err
	}
	tx.Receipt = receipt

	return tx, nil
}

// LookupAddress fetches balance and transaction count of the address. Invalid addresses fail with
// eth.ErrMalformed before any request is made.
func (a *Aggregator) LookupAddress(ctx context.Context, address string) (info *AddressInfo, err error) {
	defer func() { lookups.WithLabelValues("address", eth.Outcome(err)).Inc() }()

	address, err = eth.NormalizeAddress(address)
	if err != nil {
		return nil, err
	}

	var balance *big.Int
	var count uint64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		balance, err = a.client.Balance(gctx, address)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = a.client.TransactionCount(gctx, address)
		return err
	})
	err = g.Wait()
	if err != nil {
		return nil, err
	}

	return &AddressInfo{
		Address:          address,
		Balance:          balance,
		BalanceEther:     decimal.NewFromBigInt(balance, -weiDecimals),
		TransactionCount: count,
	}, nil
}
