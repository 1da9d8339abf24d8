package store

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hedisam/chainpulse/internal/eth"
)

// StatsPrecision is the number of decimal places tps and average block time are reported with.
const StatsPrecision = 2

// Stats are the running statistics derived from a historical scan of the chain.
type Stats struct {
	TotalTransactions uint64
	TPS               decimal.Decimal
	AvgBlockTime      decimal.Decimal
	BlocksScanned     uint64
	BlocksSkipped     uint64
	TimeSpan          uint64
	FromHeight        uint64
	ToHeight          uint64
}

// MarshalJSON renders tps and average block time with fixed precision.
func (s Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TotalTransactions uint64 `json:"totalTransactions"`
		TPS               string `json:"tps"`
		AvgBlockTime      string `json:"avgBlockTime"`
		BlocksScanned     uint64 `json:"blocksScanned"`
		BlocksSkipped     uint64 `json:"blocksSkipped"`
		TimeSpan          uint64 `json:"timeSpan"`
		FromHeight        uint64 `json:"fromHeight"`
		ToHeight          uint64 `json:"toHeight"`
	}{
		TotalTransactions: s.TotalTransactions,
		TPS:               s.TPS.StringFixed(StatsPrecision),
		AvgBlockTime:      s.AvgBlockTime.StringFixed(StatsPrecision),
		BlocksScanned:     s.BlocksScanned,
		BlocksSkipped:     s.BlocksSkipped,
		TimeSpan:          s.TimeSpan,
		FromHeight:        s.FromHeight,
		ToHeight:          s.ToHeight,
	})
}

// WindowTransaction is a recent transaction together with the timestamp of the block it was drawn from.
type WindowTransaction struct {
	*eth.Transaction
	BlockTimestamp uint64 `json:"blockTimestamp"`
}

// Snapshot is the cached view of the chain published at the end of every poll cycle.
// Blocks and transactions it points to are shared and must be treated as read-only.
type Snapshot struct {
	ChainID            uint64               `json:"chainId"`
	LatestHeight       uint64               `json:"latestHeight"`
	LatestBlock        *eth.Block           `json:"latestBlock"`
	RecentBlocks       []*eth.Block         `json:"recentBlocks"`
	RecentTransactions []*WindowTransaction `json:"recentTransactions"`
	Stats              Stats                `json:"stats"`
	Connected          bool                 `json:"connected"`
	Cycle              uint64               `json:"cycle"`
	UpdatedAt          time.Time            `json:"updatedAt"`
	LastError          string               `json:"lastError,omitempty"`
}

// Clone returns a copy of the snapshot with its own slices.
func (s Snapshot) Clone() Snapshot {
	s.RecentBlocks = slices.Clone(s.RecentBlocks)
	s.RecentTransactions = slices.Clone(s.RecentTransactions)
	return s
}

// Stage names the part of a poll cycle a failure happened in.
type Stage string

const (
	StageHead              Stage = "head"
	StageWindowBlocks      Stage = "window_blocks"
	StageWindowTransaction Stage = "window_transaction"
	StageStatsBlock        Stage = "stats_block"
)

// Failure is a journaled, non-fatal error observed by the poll loop.
type Failure struct {
	Time  time.Time `json:"time"`
	Cycle uint64    `json:"cycle"`
	Stage Stage     `json:"stage"`
	Ref   string    `json:"ref,omitempty"`
	Error string    `json:"error"`
}
