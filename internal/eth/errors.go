package eth

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested block, transaction or receipt does not exist (yet).
	ErrNotFound = errors.New("not found")
	// ErrUnreachable is returned on transport failures: the node is down, timed out or answered garbage.
	ErrUnreachable = errors.New("node unreachable")
	// ErrMalformed is returned when a caller supplied reference is syntactically invalid.
	ErrMalformed = errors.New("malformed reference")
)

// JSON-RPC 2.0 error codes that blame the request rather than the node.
const (
	codeInvalidRequest = -32600
	codeInvalidParams  = -32602
)

// RPCError is the error object of a JSON-RPC response.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("json-rpc error %d: %s", e.Code, e.Message)
}

// Is maps the error object onto the client's error taxonomy.
func (e *RPCError) Is(target error) bool {
	malformed := e.Code == codeInvalidParams || e.Code == codeInvalidRequest
	switch target {
	case ErrMalformed:
		return malformed
	case ErrUnreachable:
		return !malformed
	default:
		return false
	}
}

// Outcome classifies err for metrics and logs.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	default:
		return "unreachable"
	}
}
