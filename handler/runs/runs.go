package runs

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/mager/crossfade/database"
)

const defaultLimit = 20

// RunsHandler is an http.Handler
type RunsHandler struct {
	log   *zap.SugaredLogger
	store *database.RunStore
}

func (*RunsHandler) Pattern() string {
	return "/runs"
}

// NewRunsHandler builds a new RunsHandler.
func NewRunsHandler(log *zap.SugaredLogger, store *database.RunStore) *RunsHandler {
	return &RunsHandler{log: log, store: store}
}

type Response struct {
	Runs []database.Run `json:"runs"`
}

// List recent curation runs
// @Summary List recent curation runs, newest first
// @Tags Runs
// @Produce json
// @Success 200 {object} Response
// @Router /runs [get]
func (h *RunsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	runs, err := h.store.Recent(r.Context(), limit)
	if err != nil {
		h.log.Errorw("failed to list runs", "error", err)
		http.Error(w, "failed to list runs", http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []database.Run{}
	}

	json.NewEncoder(w).Encode(Response{Runs: runs})
}
