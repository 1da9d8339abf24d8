package rest

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/hedisam/chainpulse/internal/aggregator"
	"github.com/hedisam/chainpulse/internal/eth"
	"github.com/hedisam/chainpulse/internal/store"
)

const (
	gweiDecimals  = 9
	etherDecimals = 18
)

// Explorer is the read side of the aggregator.
type Explorer interface {
	Snapshot(ctx context.Context) store.Snapshot
	Failures(ctx context.Context) []store.Failure
	LookupBlock(ctx context.Context, ref aggregator.BlockRef) (*eth.Block, error)
	LookupTransaction(ctx context.Context, hash string) (*eth.Transaction, error)
	LookupAddress(ctx context.Context, address string) (*aggregator.AddressInfo, error)
}

type Server struct {
	logger   *logrus.Logger
	explorer Explorer
}

func NewServer(logger *logrus.Logger, explorer Explorer) *Server {
	return &Server{
		logger:   logger,
		explorer: explorer,
	}
}

// Register adds every route of the server to mux.
func (s *Server) Register(mux *http.ServeMux) {
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/snapshot", s.GetSnapshot)
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/blocks/{ref}", s.GetBlock)
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/transactions/{hash}", s.GetTransaction)
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/addresses/{address}", s.GetAddress)
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/failures", s.ListFailures)
	RegisterFunc(s.logger, mux, http.MethodGet, "/healthz", s.Health)
}

func (s *Server) GetSnapshot(ctx context.Context, _ *GetSnapshotRequest) (*GetSnapshotResponse, error) {
	snap := s.explorer.Snapshot(ctx)

	resp := &GetSnapshotResponse{
		ChainID:            snap.ChainID,
		LatestHeight:       snap.LatestHeight,
		RecentBlocks:       make([]*Block, 0, len(snap.RecentBlocks)),
		RecentTransactions: snap.RecentTransactions,
		Stats:              snap.Stats,
		Connected:          snap.Connected,
		Cycle:              snap.Cycle,
		UpdatedAt:          snap.UpdatedAt,
		LastError:          snap.LastError,
	}
	if resp.RecentTransactions == nil {
		resp.RecentTransactions = []*store.WindowTransaction{}
	}
	if snap.LatestBlock != nil {
		resp.LatestBlock = toAPIBlock(snap.LatestBlock)
		resp.GasPriceGwei = resp.LatestBlock.BaseFeeGwei
	}
	for b := range slices.Values(snap.RecentBlocks) {
		resp.RecentBlocks = append(resp.RecentBlocks, toAPIBlock(b))
	}

	return resp, nil
}

func (s *Server) GetBlock(ctx context.Context, req *GetBlockRequest) (*GetBlockResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("ref", req.Ref)

	ref, err := ParseBlockRef(req.Ref)
	if err != nil {
		logger.WithError(err).Warn("Invalid block reference")
		return nil, NewErrf(http.StatusBadRequest, "Invalid block reference. Expected a decimal height or a 0x-prefixed 32-byte hash")
	}

	block, err := s.explorer.LookupBlock(ctx, ref)
	if err != nil {
		return nil, lookupErr(logger, err, "block")
	}

	return &GetBlockResponse{
		Block: toAPIBlock(block),
	}, nil
}

func (s *Server) GetTransaction(ctx context.Context, req *GetTransactionRequest) (*GetTransactionResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("hash", req.Hash)

	hash := strings.TrimSpace(req.Hash)
	if hash == "" {
		logger.Warn("Transaction hash is required")
		return nil, NewErrf(http.StatusBadRequest, "Missing required field: 'hash'")
	}

	tx, err := s.explorer.LookupTransaction(ctx, hash)
	if err != nil {
		return nil, lookupErr(logger, err, "transaction")
	}

	return &GetTransactionResponse{
		Transaction: toAPITransaction(tx),
	}, nil
}

func (s *Server) GetAddress(ctx context.Context, req *GetAddressRequest) (*GetAddressResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("addr", req.Address)

	addr := strings.TrimSpace(req.Address)
	if addr == "" {
		logger.Warn("Address is required")
		return nil, NewErrf(http.StatusBadRequest, "Missing required field: 'address'")
	}

	info, err := s.explorer.LookupAddress(ctx, addr)
	if err != nil {
		return nil, lookupErr(logger, err, "address")
	}

	return &GetAddressResponse{
		Address: info,
	}, nil
}

func (s *Server) ListFailures(ctx context.Context, _ *ListFailuresRequest) (*ListFailuresResponse, error) {
	failures := s.explorer.Failures(ctx)
	if failures == nil {
		failures = []store.Failure{}
	}

	return &ListFailuresResponse{
		Failures: failures,
	}, nil
}

// Health reports 503 while the last poll cycle could not reach the node.
func (s *Server) Health(ctx context.Context, _ *HealthRequest) (*HealthResponse, error) {
	snap := s.explorer.Snapshot(ctx)
	if !snap.Connected {
		return nil, NewErrf(http.StatusServiceUnavailable, "Not connected to the chain node")
	}

	return &HealthResponse{
		Connected:    snap.Connected,
		LatestHeight: snap.LatestHeight,
		Cycle:        snap.Cycle,
	}, nil
}

// ParseBlockRef parses a 0x-prefixed block hash or a decimal block height.
func ParseBlockRef(ref string) (aggregator.BlockRef, error) {
	ref = strings.TrimSpace(ref)
	if strings.HasPrefix(ref, "0x") || strings.HasPrefix(ref, "0X") {
		hash, err := eth.NormalizeHash(ref)
		if err != nil {
			return aggregator.BlockRef{}, err
		}
		return aggregator.BlockRefByHash(hash), nil
	}

	height, err := strconv.ParseUint(ref, 10, 64)
	if err != nil {
		return aggregator.BlockRef{}, errors.Join(eth.ErrMalformed, err)
	}

	return aggregator.BlockRefByHeight(height), nil
}

func lookupErr(logger *logrus.Entry, err error, kind string) error {
	switch {
	case errors.Is(err, eth.ErrMalformed):
		logger.WithError(err).Warn("Malformed lookup input")
		return NewErrf(http.StatusBadRequest, "Invalid %s", kind)
	case errors.Is(err, eth.ErrNotFound):
		logger.Debug("Lookup found nothing")
		return NewErrf(http.StatusNotFound, "%s not found", capitalize(kind))
	default:
		logger.WithError(err).Error("Lookup failed")
		return NewErrf(http.StatusBadGateway, "Could not reach the chain node")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func toAPIBlock(b *eth.Block) *Block {
	block := &Block{
		Block:          b,
		GasUsedPercent: decimal.NewFromFloat(b.GasUsedPercent()).Round(2),
	}
	if b.BaseFee != nil {
		gwei := fromWei(b.BaseFee, gweiDecimals)
		block.BaseFeeGwei = &gwei
	}

	return block
}

func toAPITransaction(tx *eth.Transaction) *Transaction {
	apiTx := &Transaction{
		Transaction: tx,
		ValueEther:  decimal.Zero,
	}
	if tx.Value != nil {
		apiTx.ValueEther = fromWei(tx.Value, etherDecimals)
	}
	if fee := tx.Fee(); fee != nil {
		feeEther := fromWei(fee, etherDecimals)
		apiTx.FeeEther = &feeEther
	}

	return apiTx
}

func fromWei(wei *big.Int, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(wei, -decimals)
}
