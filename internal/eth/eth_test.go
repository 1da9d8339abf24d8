package eth_test

import (
	"context"
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/chainpulse/internal/eth"
)

const (
	testBlockHash = "0x9b83c12c69edb74f6c8dd5d052765c1adf940e320bd1291696e6fa07829eee71"
	testTxHash    = "0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b"
	testAddress   = "0x7a250d5630b4cf539739df2c5dacb4c659f2488d"
)

type rpcRequest struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
	ID     int               `json:"id"`
}

// fakeNode answers every request with the raw json result (or error object) returned by respond.
func fakeNode(t *testing.T, respond func(req rpcRequest) (result string, rpcErr string)) (*eth.Client, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var req rpcRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		result, rpcErr := respond(req)
		w.Header().Set("Content-Type", "application/json")
		if rpcErr != "" {
			_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":1,"error":`+rpcErr+`}`)
			return
		}
		_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":1,"result":`+result+`}`)
	}))
	t.Cleanup(srv.Close)

	return eth.New(logrus.New(), srv.Client(), srv.URL), &calls
}

func TestLatestBlockHeight(t *testing.T) {
	client, _ := fakeNode(t, func(req rpcRequest) (string, string) {
		assert.Equal(t, "eth_blockNumber", req.Method)
		assert.Empty(t, req.Params)
		return `"0x4d2"`, ""
	})

	height, err := client.LatestBlockHeight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), height)
}

func TestBlockByHeight(t *testing.T) {
	tests := map[string]struct {
		fullTxs          bool
		result           string
		expectedBlock    *eth.Block
		expectedFullTxs  int
		expectedErr      error
		expectedGasUsedP float64
	}{
		"with transaction hashes": {
			result: `{
				"number":"0x10","hash":"` + testBlockHash + `","parentHash":"0x01",
				"timestamp":"0x64","gasUsed":"0x5208","gasLimit":"0xa410","baseFeePerGas":"0x3b9aca00",
				"miner":"0xabc","extraData":"0x",
				"transactions":["` + testTxHash + `"]
			}`,
			expectedBlock: &eth.Block{
				Height:     16,
				Hash:       testBlockHash,
				ParentHash: "0x01",
				Timestamp:  100,
				TxHashes:   []string{testTxHash},
				GasUsed:    21000,
				GasLimit:   42000,
				BaseFee:    big.NewInt(1_000_000_000),
				Miner:      "0xabc",
				ExtraData:  "0x",
			},
			expectedGasUsedP: 50,
		},
		"with full transactions": {
			fullTxs: true,
			result: `{
				"number":"0x10","hash":"` + testBlockHash + `","parentHash":"0x01",
				"timestamp":"0x64","gasUsed":"0x0","gasLimit":"0x0","miner":"0xabc","extraData":"0x",
				"transactions":[{
					"hash":"` + testTxHash + `","blockNumber":"0x10","blockHash":"` + testBlockHash + `",
					"from":"0xf00","to":null,"value":"0xde0b6b3a7640000","gas":"0x5208",
					"gasPrice":"0x1","nonce":"0x2","input":"0x6080"
				}]
			}`,
			expectedFullTxs: 1,
		},
		"not minted yet": {
			result:      `null`,
			expectedErr: eth.ErrNotFound,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			client, _ := fakeNode(t, func(req rpcRequest) (string, string) {
				assert.Equal(t, "eth_getBlockByNumber", req.Method)
				assert.Len(t, req.Params, 2)
				assert.JSONEq(t, `"0x10"`, string(req.Params[0]))
				assert.JSONEq(t, map[bool]string{true: "true", false: "false"}[test.fullTxs], string(req.Params[1]))
				return test.result, ""
			})

			block, err := client.BlockByHeight(context.Background(), 16, test.fullTxs)
			if test.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, test.expectedErr)
				return
			}
			require.NoError(t, err)
			if test.expectedBlock != nil {
				assert.Equal(t, test.expectedBlock, block)
				assert.InDelta(t, test.expectedGasUsedP, block.GasUsedPercent(), 0.001)
			}
			assert.Len(t, block.Transactions, test.expectedFullTxs)
			assert.Equal(t, []string{testTxHash}, block.TxHashes)
			if test.expectedFullTxs > 0 {
				tx := block.Transactions[0]
				assert.True(t, tx.IsContractCreation())
				assert.False(t, tx.IsPending())
				assert.Equal(t, "1000000000000000000", tx.Value.String())
				assert.Equal(t, uint64(2), tx.Nonce)
			}
		})
	}
}

func TestTransaction_MalformedHashFailsFast(t *testing.T) {
	client, calls := fakeNode(t, func(req rpcRequest) (string, string) {
		return `null`, ""
	})

	for _, hash := range []string{"", "0x1234", "not-a-hash", testTxHash + "00"} {
		_, err := client.Transaction(context.Background(), hash)
		assert.ErrorIs(t, err, eth.ErrMalformed, hash)
		_, err = client.BlockByHash(context.Background(), hash, false)
		assert.ErrorIs(t, err, eth.ErrMalformed, hash)
	}
	assert.Zero(t, calls.Load())
}

func TestTransactionReceipt(t *testing.T) {
	tests := map[string]struct {
		result          string
		expectedReceipt *eth.Receipt
		expectedErr     error
	}{
		"success": {
			result: `{"status":"0x1","gasUsed":"0x5208","effectiveGasPrice":"0x2","contractAddress":null}`,
			expectedReceipt: &eth.Receipt{
				Status:            eth.ReceiptStatusSuccess,
				GasUsed:           21000,
				EffectiveGasPrice: big.NewInt(2),
			},
		},
		"reverted": {
			result: `{"status":"0x0","gasUsed":"0x100"}`,
			expectedReceipt: &eth.Receipt{
				Status:  eth.ReceiptStatusFailure,
				GasUsed: 256,
			},
		},
		"pending": {
			result:      `null`,
			expectedErr: eth.ErrNotFound,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			client, _ := fakeNode(t, func(req rpcRequest) (string, string) {
				assert.Equal(t, "eth_getTransactionReceipt", req.Method)
				return test.result, ""
			})

			receipt, err := client.TransactionReceipt(context.Background(), testTxHash)
			if test.expectedErr != nil {
				assert.ErrorIs(t, err, test.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expectedReceipt, receipt)
		})
	}
}

func TestTransaction_Fee(t *testing.T) {
	tx := &eth.Transaction{
		GasPrice: big.NewInt(5),
		Receipt:  &eth.Receipt{GasUsed: 10},
	}
	assert.Equal(t, big.NewInt(50), tx.Fee())

	tx.Receipt.EffectiveGasPrice = big.NewInt(3)
	assert.Equal(t, big.NewInt(30), tx.Fee())

	tx.Receipt = nil
	assert.Nil(t, tx.Fee())
}

func TestAddressMethods(t *testing.T) {
	client, calls := fakeNode(t, func(req rpcRequest) (string, string) {
		assert.Len(t, req.Params, 2)
		assert.JSONEq(t, `"0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D"`, string(req.Params[0]))
		assert.JSONEq(t, `"latest"`, string(req.Params[1]))
		switch req.Method {
		case "eth_getBalance":
			return `"0x14d1120d7b160000"`, ""
		case "eth_getTransactionCount":
			return `"0x0"`, ""
		}
		t.Errorf("unexpected method %s", req.Method)
		return `null`, ""
	})

	balance, err := client.Balance(context.Background(), testAddress)
	require.NoError(t, err)
	assert.Equal(t, "1500000000000000000", balance.String())

	count, err := client.TransactionCount(context.Background(), testAddress)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = client.Balance(context.Background(), "0xnothex")
	assert.ErrorIs(t, err, eth.ErrMalformed)
	assert.Equal(t, int32(2), calls.Load())
}

func TestErrorTaxonomy(t *testing.T) {
	tests := map[string]struct {
		handler     http.HandlerFunc
		expectedErr error
	}{
		"invalid params": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"invalid argument 0"}}`)
			},
			expectedErr: eth.ErrMalformed,
		},
		"server side rpc error": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"internal"}}`)
			},
			expectedErr: eth.ErrUnreachable,
		},
		"bad status code": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			expectedErr: eth.ErrUnreachable,
		},
		"garbage body": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `<html>`)
			},
			expectedErr: eth.ErrUnreachable,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(test.handler)
			defer srv.Close()
			client := eth.New(logrus.New(), srv.Client(), srv.URL)

			_, err := client.LatestBlockHeight(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, test.expectedErr)
			assert.Equal(t, map[error]string{eth.ErrMalformed: "malformed", eth.ErrUnreachable: "unreachable"}[test.expectedErr], eth.Outcome(err))
		})
	}
}

func TestUnreachableNode(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	client := eth.New(logrus.New(), &http.Client{Timeout: time.Second}, addr)
	_, err := client.LatestBlockHeight(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, eth.ErrUnreachable)
}

func TestWaitReady(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":8,"result":"0x1457"}`)
	}))
	defer srv.Close()
	client := eth.New(logrus.New(), srv.Client(), srv.URL)

	chainID, err := client.WaitReady(context.Background(), 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, uint64(5207), chainID)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestWaitReady_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	client := eth.New(logrus.New(), srv.Client(), srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	_, err := client.WaitReady(ctx, time.Minute)
	assert.Error(t, err)
}

func TestWaitReady_ZeroTimeoutProbesOnce(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	client := eth.New(logrus.New(), srv.Client(), srv.URL)

	done := make(chan error, 1)
	go func() {
		_, err := client.WaitReady(context.Background(), 0)
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, eth.ErrUnreachable)
		assert.Equal(t, int32(1), attempts.Load())
	case <-time.After(5 * time.Second):
		t.Fatal("WaitReady with a zero timeout kept retrying")
	}
}
