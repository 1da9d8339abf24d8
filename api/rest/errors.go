package rest

import (
	"fmt"
)

// Err is an error with the http status code it should be reported with.
type Err struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func (e *Err) Error() string {
	return e.Message
}

func NewErrf(statusCode int, format string, args ...any) *Err {
	return &Err{
		Message:    fmt.Sprintf(format, args...),
		StatusCode: statusCode,
	}
}
