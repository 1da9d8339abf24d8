package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
)

// PathBinder is implemented by requests that read parameters from the url path.
type PathBinder interface {
	BindPath(pathValue func(name string) string)
}

// HandlerFunc is a typed request handler. Returning an *Err sets the response status code,
// any other error is reported as an internal server error.
type HandlerFunc[Req, Resp any] func(ctx context.Context, req *Req) (*Resp, error)

// RegisterFunc registers handler on mux for the given method and path pattern.
func RegisterFunc[Req, Resp any](logger *logrus.Logger, mux *http.ServeMux, method, pattern string, handler HandlerFunc[Req, Resp]) {
	mux.HandleFunc(method+" "+pattern, func(w http.ResponseWriter, r *http.Request) {
		logger := logger.WithContext(r.Context()).WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		})

		req := new(Req)
		if binder, ok := any(req).(PathBinder); ok {
			binder.BindPath(r.PathValue)
		}

		resp, err := handler(r.Context(), req)
		if err != nil {
			restErr := &Err{}
			if !errors.As(err, &restErr) {
				logger.WithError(err).Error("Handler failed with unexpected error")
				restErr = NewErrf(http.StatusInternalServerError, "Internal server error")
			}
			writeJSON(logger, w, restErr.StatusCode, restErr)
			return
		}

		writeJSON(logger, w, http.StatusOK, resp)
	})
}

func writeJSON(logger *logrus.Entry, w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		logger.WithError(err).Error("Failed to write json response")
	}
}
