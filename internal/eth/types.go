package eth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

type rpcMethod string

const (
	getBlockNumber           rpcMethod = "eth_blockNumber"
	getBlockByNumber         rpcMethod = "eth_getBlockByNumber"
	getBlockByHash           rpcMethod = "eth_getBlockByHash"
	getTransactionByHash     rpcMethod = "eth_getTransactionByHash"
	getTransactionReceipt    rpcMethod = "eth_getTransactionReceipt"
	getBalance               rpcMethod = "eth_getBalance"
	getTransactionCount      rpcMethod = "eth_getTransactionCount"
	getChainID               rpcMethod = "eth_chainId"
	latestBlockTag                     = "latest"
	receiptStatusSuccessCode           = 1
)

// ID returns the ID associated with the rpc method used in json-rpc requests.
func (rm rpcMethod) ID() int {
	switch rm {
	case getBlockNumber:
		return 1
	case getBlockByNumber:
		return 2
	case getBlockByHash:
		return 3
	case getTransactionByHash:
		return 4
	case getTransactionReceipt:
		return 5
	case getBalance:
		return 6
	case getTransactionCount:
		return 7
	case getChainID:
		return 8
	default:
		return -1
	}
}

// Block is a block as seen by the explorer. Transactions is only populated when the block was
// requested with full transaction objects; TxHashes is always populated.
type Block struct {
	Height       uint64         `json:"height"`
	Hash         string         `json:"hash"`
	ParentHash   string         `json:"parentHash"`
	Timestamp    uint64         `json:"timestamp"`
	TxHashes     []string       `json:"transactions"`
	Transactions []*Transaction `json:"transactionObjects,omitempty"`
	GasUsed      uint64         `json:"gasUsed"`
	GasLimit     uint64         `json:"gasLimit"`
	BaseFee      *big.Int       `json:"baseFeePerGas,omitempty"`
	Miner        string         `json:"miner"`
	ExtraData    string         `json:"extraData"`
}

// TxCount returns the number of transactions included in the block.
func (b *Block) TxCount() int {
	return len(b.TxHashes)
}

// GasUsedPercent returns gas used as a percentage of the gas limit.
func (b *Block) GasUsedPercent() float64 {
	if b.GasLimit == 0 {
		return 0
	}
	return float64(b.GasUsed) / float64(b.GasLimit) * 100
}

// Transaction is a transaction as returned by the node, optionally merged with its receipt.
type Transaction struct {
	Hash        string   `json:"hash"`
	BlockHeight *uint64  `json:"blockHeight"`
	BlockHash   string   `json:"blockHash,omitempty"`
	From        string   `json:"from"`
	To          *string  `json:"to"`
	Value       *big.Int `json:"value"`
	Gas         uint64   `json:"gas"`
	GasPrice    *big.Int `json:"gasPrice,omitempty"`
	Nonce       uint64   `json:"nonce"`
	Input       string   `json:"input"`
	Receipt     *Receipt `json:"receipt,omitempty"`
}

// IsContractCreation reports whether the transaction deploys a contract.
func (t *Transaction) IsContractCreation() bool {
	return t.To == nil
}

// IsPending reports whether the transaction is not yet included in a block.
func (t *Transaction) IsPending() bool {
	return t.BlockHeight == nil
}

// Fee returns the wei paid for the transaction, or nil without a receipt.
func (t *Transaction) Fee() *big.Int {
	if t.Receipt == nil {
		return nil
	}
	price := t.Receipt.EffectiveGasPrice
	if price == nil {
		price = t.GasPrice
	}
	if price == nil {
		return nil
	}
	return new(big.Int).Mul(new(big.Int).SetUint64(t.Receipt.GasUsed), price)
}

type ReceiptStatus string

const (
	ReceiptStatusSuccess ReceiptStatus = "success"
	ReceiptStatusFailure ReceiptStatus = "failure"
)

type Receipt struct {
	Status            ReceiptStatus `json:"status"`
	GasUsed           uint64        `json:"gasUsed"`
	EffectiveGasPrice *big.Int      `json:"effectiveGasPrice,omitempty"`
	ContractAddress   *string       `json:"contractAddress,omitempty"`
}

type rpcBlock struct {
	Number        hexutil.Uint64    `json:"number"`
	Hash          string            `json:"hash"`
	ParentHash    string            `json:"parentHash"`
	Timestamp     hexutil.Uint64    `json:"timestamp"`
	Transactions  []json.RawMessage `json:"transactions"`
	GasUsed       hexutil.Uint64    `json:"gasUsed"`
	GasLimit      hexutil.Uint64    `json:"gasLimit"`
	BaseFeePerGas *hexutil.Big      `json:"baseFeePerGas"`
	Miner         string            `json:"miner"`
	ExtraData     string            `json:"extraData"`
}

func (rb *rpcBlock) toBlock() (*Block, error) {
	b := &Block{
		Height:     uint64(rb.Number),
		Hash:       rb.Hash,
		ParentHash: rb.ParentHash,
		Timestamp:  uint64(rb.Timestamp),
		TxHashes:   make([]string, 0, len(rb.Transactions)),
		GasUsed:    uint64(rb.GasUsed),
		GasLimit:   uint64(rb.GasLimit),
		BaseFee:    (*big.Int)(rb.BaseFeePerGas),
		Miner:      rb.Miner,
		ExtraData:  rb.ExtraData,
	}

	// depending on the request the node returns either plain hashes or full transaction objects
	for i, raw := range rb.Transactions {
		if len(raw) > 0 && raw[0] == '"' {
			var hash string
			if err := json.Unmarshal(raw, &hash); err != nil {
				return nil, fmt.Errorf("decode transaction hash at index %d: %w", i, err)
			}
			b.TxHashes = append(b.TxHashes, hash)
			continue
		}

		var rtx rpcTransaction
		if err := json.Unmarshal(raw, &rtx); err != nil {
			return nil, fmt.Errorf("decode transaction object at index %d: %w", i, err)
		}
		tx := rtx.toTransaction()
		b.TxHashes = append(b.TxHashes, tx.Hash)
		b.Transactions = append(b.Transactions, tx)
	}

	return b, nil
}

type rpcTransaction struct {
	Hash        string          `json:"hash"`
	BlockNumber *hexutil.Uint64 `json:"blockNumber"`
	BlockHash   *string         `json:"blockHash"`
	From        string          `json:"from"`
	To          *string         `json:"to"`
	Value       *hexutil.Big    `json:"value"`
	Gas         hexutil.Uint64  `json:"gas"`
	GasPrice    *hexutil.Big    `json:"gasPrice"`
	Nonce       hexutil.Uint64  `json:"nonce"`
	Input       string          `json:"input"`
}

func (rt *rpcTransaction) toTransaction() *Transaction {
	tx := &Transaction{
		Hash:     rt.Hash,
		From:     rt.From,
		To:       rt.To,
		Value:    new(big.Int),
		Gas:      uint64(rt.Gas),
		GasPrice: (*big.Int)(rt.GasPrice),
		Nonce:    uint64(rt.Nonce),
		Input:    rt.Input,
	}
	if rt.BlockNumber != nil {
		height := uint64(*rt.BlockNumber)
		tx.BlockHeight = &height
	}
	if rt.BlockHash != nil {
		tx.BlockHash = *rt.BlockHash
	}
	if rt.Value != nil {
		tx.Value = (*big.Int)(rt.Value)
	}

	return tx
}

type rpcReceipt struct {
	Status            hexutil.Uint64 `json:"status"`
	GasUsed           hexutil.Uint64 `json:"gasUsed"`
	EffectiveGasPrice *hexutil.Big   `json:"effectiveGasPrice"`
	ContractAddress   *string        `json:"contractAddress"`
}

func (rr *rpcReceipt) toReceipt() *Receipt {
	status := ReceiptStatusFailure
	if rr.Status == receiptStatusSuccessCode {
		status = ReceiptStatusSuccess
	}

	return &Receipt{
		Status:            status,
		GasUsed:           uint64(rr.GasUsed),
		EffectiveGasPrice: (*big.Int)(rr.EffectiveGasPrice),
		ContractAddress:   rr.ContractAddress,
	}
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// isNull reports whether a json-rpc result is absent or a literal null.
func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
