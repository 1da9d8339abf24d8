package eth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"
)

// Client is a read-only JSON-RPC client for an Ethereum compatible node.
// Every method issues exactly one request and never retries; it is safe for concurrent use.
type Client struct {
	logger     *logrus.Logger
	httpClient *http.Client
	nodeAddr   string
}

func New(logger *logrus.Logger, httpClient *http.Client, nodeAddr string) *Client {
	return &Client{
		logger:     logger,
		httpClient: httpClient,
		nodeAddr:   nodeAddr,
	}
}

// LatestBlockHeight returns the height of the chain head.
func (c *Client) LatestBlockHeight(ctx context.Context) (uint64, error) {
	var height hexutil.Uint64
	err := c.call(ctx, getBlockNumber, &height)
	if err != nil {
		return 0, err
	}

	return uint64(height), nil
}

// BlockByHeight returns the block at the given height. With fullTxs set the block carries full
// transaction objects, otherwise only the transaction hashes.
func (c *Client) BlockByHeight(ctx context.Context, height uint64, fullTxs bool) (*Block, error) {
	var rb rpcBlock
	err := c.call(ctx, getBlockByNumber, &rb, hexutil.EncodeUint64(height), fullTxs)
	if err != nil {
		return nil, fmt.Errorf("block %d: %w", height, err)
	}

	return rb.toBlock()
}

// BlockByHash returns the block with the given hash.
func (c *Client) BlockByHash(ctx context.Context, hash string, fullTxs bool) (*Block, error) {
	hash, err := NormalizeHash(hash)
	if err != nil {
		return nil, err
	}

	var rb rpcBlock
	err = c.call(ctx, getBlockByHash, &rb, hash, fullTxs)
	if err != nil {
		return nil, fmt.Errorf("block %s: %w", hash, err)
	}

	return rb.toBlock()
}

// Transaction returns the transaction with the given hash, without its receipt.
func (c *Client) Transaction(ctx context.Context, hash string) (*Transaction, error) {
	hash, err := NormalizeHash(hash)
	if err != nil {
		return nil, err
	}

	var rt rpcTransaction
	err = c.call(ctx, getTransactionByHash, &rt, hash)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", hash, err)
	}

	return rt.toTransaction(), nil
}

// TransactionReceipt returns the receipt of a mined transaction. Pending transactions yield ErrNotFound.
func (c *Client) TransactionReceipt(ctx context.Context, hash string) (*Receipt, error) {
	hash, err := NormalizeHash(hash)
	if err != nil {
		return nil, err
	}

	var rr rpcReceipt
	err = c.call(ctx, getTransactionReceipt, &rr, hash)
	if err != nil {
		return nil, fmt.Errorf("receipt %s: %w", hash, err)
	}

	return rr.toReceipt(), nil
}

// Balance returns the wei balance of the address at the chain head.
// Unknown addresses have a zero balance.
func (c *Client) Balance(ctx context.Context, address string) (*big.Int, error) {
	address, err := NormalizeAddress(address)
	if err != nil {
		return nil, err
	}

	var balance hexutil.Big
	err = c.call(ctx, getBalance, &balance, address, latestBlockTag)
	if err != nil {
		return nil, fmt.Errorf("balance of %s: %w", address, err)
	}

	return (*big.Int)(&balance), nil
}

// TransactionCount returns the nonce of the address at the chain head.
func (c *Client) TransactionCount(ctx context.Context, address string) (uint64, error) {
	address, err := NormalizeAddress(address)
	if err != nil {
		return 0, err
	}

	var count hexutil.Uint64
	err = c.call(ctx, getTransactionCount, &count, address, latestBlockTag)
	if err != nil {
		return 0, fmt.Errorf("transaction count of %s: %w", address, err)
	}

	return uint64(count), nil
}

// ChainID returns the chain id reported by the node.
func (c *Client) ChainID(ctx context.Context) (uint64, error) {
	var id hexutil.Uint64
	err := c.call(ctx, getChainID, &id)
	if err != nil {
		return 0, err
	}

	return uint64(id), nil
}

// call performs a single json-rpc request and decodes its result into out.
// A null result is reported as ErrNotFound.
func (c *Client) call(ctx context.Context, method rpcMethod, out any, rpcParams ...any) (err error) {
	start := time.Now()
	defer func() {
		rpcRequestDuration.WithLabelValues(string(method)).Observe(time.Since(start).Seconds())
		rpcRequests.WithLabelValues(string(method), Outcome(err)).Inc()
	}()

	req, err := c.newRequest(ctx, method, rpcParams...)
	if err != nil {
		return fmt.Errorf("%w: create new http request: %w", ErrUnreachable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: http request failed: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.WithFields(logrus.Fields{
			"method":   method,
			"response": string(body),
		}).Debug("Eth node responded with unexpected status code")
		return fmt.Errorf("%w: received unexpected status: %s", ErrUnreachable, resp.Status)
	}

	var response rpcResponse
	err = json.NewDecoder(resp.Body).Decode(&response)
	if err != nil {
		return fmt.Errorf("%w: decode response body: %w", ErrUnreachable, err)
	}

	if response.Error != nil {
		return response.Error
	}
	if isNull(response.Result) {
		return ErrNotFound
	}

	err = json.Unmarshal(response.Result, out)
	if err != nil {
		return fmt.Errorf("%w: decode %s result: %w", ErrUnreachable, method, err)
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, method rpcMethod, rpcParams ...any) (*http.Request, error) {
	if rpcParams == nil {
		rpcParams = []any{}
	}
	payload := map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"params":  rpcParams,
		"id":      method.ID(),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("could not marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.nodeAddr, bytes.NewBuffer(data))
	if err != nil {
		return nil, fmt.Errorf("could not make new request with context: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Length", strconv.Itoa(len(data)))

	return req, nil
}
