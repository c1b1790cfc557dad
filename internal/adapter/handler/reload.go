package handler

import (
	"errors"
	"net/http"

	"github.com/qj0r9j0vc2/slack-unsend/internal/domain/logger"
	"github.com/qj0r9j0vc2/slack-unsend/internal/infrastructure/config"
)

// ConfigReloader reloads configuration on demand.
type ConfigReloader interface {
	TryReload() error
}

// ReloadHandler handles configuration reload requests.
type ReloadHandler struct {
	reloader ConfigReloader
	logger   logger.Logger
}

// NewReloadHandler creates a new reload handler.
func NewReloadHandler(reloader ConfigReloader, logger logger.Logger) *ReloadHandler {
	return &ReloadHandler{
		reloader: reloader,
		logger:   logger,
	}
}

// ServeHTTP handles POST /-/reload requests.
func (h *ReloadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.reloader.TryReload(); err != nil {
		if errors.Is(err, config.ErrRequiresRestart) {
			// Static config change - log warning but return 200
			h.logger.Warn("manual reload includes changes that require restart")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("Configuration change requires restart\n"))
			return
		}

		h.logger.Error("manual reload failed", "error", err)
		http.Error(w, "Configuration reload failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Configuration reloaded successfully\n"))
}
