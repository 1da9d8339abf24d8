package rest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hedisam/chainpulse/internal/aggregator"
	"github.com/hedisam/chainpulse/internal/eth"
	"github.com/hedisam/chainpulse/internal/store"
)

// request and response types are defined below
// path parameters are bound through BindPath before the handler is called

type GetSnapshotRequest struct{}

type GetSnapshotResponse struct {
	ChainID      uint64 `json:"chainId"`
	LatestHeight uint64 `json:"latestHeight"`
	LatestBlock  *Block `json:"latestBlock"`
	// GasPriceGwei is the base fee of the latest block, absent on chains without one.
	GasPriceGwei       *decimal.Decimal           `json:"gasPriceGwei,omitempty"`
	RecentBlocks       []*Block                   `json:"recentBlocks"`
	RecentTransactions []*store.WindowTransaction `json:"recentTransactions"`
	Stats              store.Stats                `json:"stats"`
	Connected          bool                       `json:"connected"`
	Cycle              uint64                     `json:"cycle"`
	UpdatedAt          time.Time                  `json:"updatedAt"`
	LastError          string                     `json:"lastError,omitempty"`
}

type GetBlockRequest struct {
	Ref string `json:"ref"`
}

func (r *GetBlockRequest) BindPath(pathValue func(string) string) {
	r.Ref = pathValue("ref")
}

type GetBlockResponse struct {
	Block *Block `json:"block"`
}

type GetTransactionRequest struct {
	Hash string `json:"hash"`
}

func (r *GetTransactionRequest) BindPath(pathValue func(string) string) {
	r.Hash = pathValue("hash")
}

type GetTransactionResponse struct {
	Transaction *Transaction `json:"transaction"`
}

type GetAddressRequest struct {
	Address string `json:"address"`
}

func (r *GetAddressRequest) BindPath(pathValue func(string) string) {
	r.Address = pathValue("address")
}

type GetAddressResponse struct {
	Address *aggregator.AddressInfo `json:"address"`
}

type ListFailuresRequest struct{}

type ListFailuresResponse struct {
	Failures []store.Failure `json:"failures"`
}

type HealthRequest struct{}

type HealthResponse struct {
	Connected    bool   `json:"connected"`
	LatestHeight uint64 `json:"latestHeight"`
	Cycle        uint64 `json:"cycle"`
}

// Block is a block together with the values a dashboard derives from it.
type Block struct {
	*eth.Block
	GasUsedPercent decimal.Decimal  `json:"gasUsedPercent"`
	BaseFeeGwei    *decimal.Decimal `json:"baseFeeGwei,omitempty"`
}

// Transaction is a transaction with its value and fee rendered in ether.
type Transaction struct {
	*eth.Transaction
	ValueEther decimal.Decimal  `json:"valueEther"`
	FeeEther   *decimal.Decimal `json:"feeEther,omitempty"`
}
