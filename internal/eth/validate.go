package eth

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// NormalizeHash validates a 32-byte 0x-prefixed hex hash and returns it lower cased.
func NormalizeHash(hash string) (string, error) {
	hash = strings.ToLower(strings.TrimSpace(hash))
	raw, err := hexutil.Decode(hash)
	if err != nil {
		return "", fmt.Errorf("%w: hash %q: %w", ErrMalformed, hash, err)
	}
	if len(raw) != common.HashLength {
		return "", fmt.Errorf("%w: hash %q has %d bytes, expected %d", ErrMalformed, hash, len(raw), common.HashLength)
	}

	return hash, nil
}

// NormalizeAddress validates a 20-byte hex address, with or without the 0x prefix,
// and returns its EIP-55 checksummed form.
func NormalizeAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%w: address %q: expected 40 hex characters", ErrMalformed, address)
	}

	return common.HexToAddress(address).Hex(), nil
}
