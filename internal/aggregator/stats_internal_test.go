package aggregator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hedisam/chainpulse/internal/eth"
	"github.com/hedisam/chainpulse/internal/store"
)

func TestScanStats(t *testing.T) {
	tests := map[string]struct {
		// blocks in scan order, highest height first
		timestamps           []uint64
		txCounts             []int
		expectedTimeSpan     uint64
		expectedTPS          string
		expectedAvgBlockTime string
	}{
		"regular chain": {
			timestamps:           []uint64{108, 106, 104, 102, 100},
			txCounts:             []int{0, 4, 1, 3, 2},
			expectedTimeSpan:     8,
			expectedTPS:          "1.25",
			expectedAvgBlockTime: "2.00",
		},
		"rounds to two decimals": {
			timestamps:           []uint64{10, 7, 0},
			txCounts:             []int{1, 1, 0},
			expectedTimeSpan:     10,
			expectedTPS:          "0.20",
			expectedAvgBlockTime: "5.00",
		},
		"repeating thirds": {
			timestamps:           []uint64{3, 0},
			txCounts:             []int{1, 0},
			expectedTimeSpan:     3,
			expectedTPS:          "0.33",
			expectedAvgBlockTime: "3.00",
		},
		"single block": {
			timestamps:           []uint64{100},
			txCounts:             []int{7},
			expectedTPS:          "0.00",
			expectedAvgBlockTime: "2.50",
		},
		"identical timestamps": {
			timestamps:           []uint64{100, 100, 100},
			txCounts:             []int{1, 2, 3},
			expectedTPS:          "0.00",
			expectedAvgBlockTime: "2.50",
		},
		"timestamps decreasing with height": {
			timestamps:           []uint64{90, 100},
			txCounts:             []int{1, 1},
			expectedTPS:          "0.00",
			expectedAvgBlockTime: "2.50",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var acc scan
			var expectedTotal uint64
			for i, ts := range test.timestamps {
				acc.add(&eth.Block{Timestamp: ts, TxHashes: make([]string, test.txCounts[i])})
				expectedTotal += uint64(test.txCounts[i])
			}

			stats := acc.stats(decimal.RequireFromString("2.5"))
			assert.Equal(t, expectedTotal, stats.TotalTransactions)
			assert.Equal(t, uint64(len(test.timestamps)), stats.BlocksScanned)
			assert.Equal(t, test.expectedTimeSpan, stats.TimeSpan)
			assert.Equal(t, test.expectedTPS, stats.TPS.StringFixed(store.StatsPrecision))
			assert.Equal(t, test.expectedAvgBlockTime, stats.AvgBlockTime.StringFixed(store.StatsPrecision))
		})
	}
}

func TestPickWindowTransactions(t *testing.T) {
	blocks := []*eth.Block{
		{Height: 3, Timestamp: 30, TxHashes: []string{"a", "b", "c"}},
		{Height: 2, Timestamp: 20},
		{Height: 1, Timestamp: 10, TxHashes: []string{"d", "e"}},
		{Height: 0, Timestamp: 0, TxHashes: []string{"f"}},
	}
	a := &Aggregator{cfg: Config{MaxRecentTransactions: 4, TransactionsPerBlock: 2}}

	// every candidate is listed, the total cap is applied while fetching
	picks := a.pickWindowTransactions(blocks)
	assert.Equal(t, []txPick{
		{hash: "a", blockTimestamp: 30},
		{hash: "b", blockTimestamp: 30},
		{hash: "d", blockTimestamp: 10},
		{hash: "e", blockTimestamp: 10},
		{hash: "f", blockTimestamp: 0},
	}, picks)
}
