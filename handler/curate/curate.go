// Package curate exposes the full curation pipeline and its live
// progress stream.
package curate

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mager/crossfade/camelot"
	"github.com/mager/crossfade/crossfade"
	"github.com/mager/crossfade/curator"
	"github.com/mager/crossfade/scoring"
)

// CurateHandler is an http.Handler
type CurateHandler struct {
	log     *zap.SugaredLogger
	curator *curator.Curator
}

func (*CurateHandler) Pattern() string {
	return "/curate"
}

// NewCurateHandler builds a new CurateHandler.
func NewCurateHandler(log *zap.SugaredLogger, c *curator.Curator) *CurateHandler {
	return &CurateHandler{log: log, curator: c}
}

// Curate a set end to end
// @Summary Load, sequence and summarize a track collection
// @Description Runs the full pipeline against a JSON dataset or a Spotify playlist
// @Tags Curate
// @Accept json
// @Produce json
// @Success 200 {object} curator.Result
// @Router /curate [post]
func (h *CurateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req curator.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.curator.Curate(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, crossfade.ErrInvalidInput) ||
			errors.Is(err, camelot.ErrInvalidKey) ||
			errors.Is(err, camelot.ErrInvalidCode) ||
			errors.Is(err, scoring.ErrWeightConfiguration) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	json.NewEncoder(w).Encode(result)
}
