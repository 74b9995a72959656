// Package transport exposes the monitor's HTTP surface.
package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// StatusHandler serves the current session status as JSON.
type StatusHandler struct {
	provider StatusProvider
	logger   *zap.Logger
}

// NewStatusHandler returns a StatusHandler instance.
func NewStatusHandler(provider StatusProvider, logger *zap.Logger) (*StatusHandler, error) {
	if provider == nil {
		return nil, errors.New("status provider is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &StatusHandler{provider: provider, logger: logger}, nil
}

func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.provider.Status()); err != nil {
		h.logger.Warn("encode status response", zap.Error(err))
	}
}
