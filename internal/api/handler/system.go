package handler

import (
	"net/http"

	"github.com/todoapi/todoapi/internal/api/response"
	"github.com/todoapi/todoapi/internal/domain"
	"github.com/todoapi/todoapi/internal/store/sqlite"
)

// SystemHandler handles system-level operations.
type SystemHandler struct {
	store *sqlite.Store
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(store *sqlite.Store) *SystemHandler {
	return &SystemHandler{store: store}
}

// Health handles GET /health.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		response.Error(w, domain.NewInternalError(err))
		return
	}
	response.OK(w, map[string]string{"status": "ok"})
}
