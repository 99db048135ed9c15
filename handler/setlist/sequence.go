package setlist

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/mager/crossfade/crossfade"
	"github.com/mager/crossfade/scoring"
	"github.com/mager/crossfade/sequence"
)

// SequenceHandler is an http.Handler
type SequenceHandler struct {
	log *zap.SugaredLogger
}

func (*SequenceHandler) Pattern() string {
	return "/setlist/sequence"
}

// NewSequenceHandler builds a new SequenceHandler.
func NewSequenceHandler(log *zap.SugaredLogger) *SequenceHandler {
	return &SequenceHandler{log: log}
}

type SequenceRequest struct {
	Tracks []crossfade.Track `json:"tracks"`
	// SeedIndex optionally forces the opening track.
	SeedIndex *int `json:"seed_index,omitempty"`
	// Weights optionally overrides the scoring weights; must sum to 1.
	Weights *scoring.Weights `json:"weights,omitempty"`
}

type SequenceResponse struct {
	Sequence []crossfade.Track `json:"sequence"`
}

// Sequence tracks for the smoothest transitions
// @Summary Order tracks into a DJ set
// @Description Greedy nearest-neighbor ordering over the multi-factor compatibility score
// @Tags Setlist
// @Accept json
// @Produce json
// @Success 200 {object} SequenceResponse
// @Router /setlist/sequence [post]
func (h *SequenceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	tracks, err := enrich(req.Tracks)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	seq, err := sequence.Build(tracks, sequence.Options{SeedIndex: req.SeedIndex, Weights: req.Weights})
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	h.log.Infow("sequenced tracks", "count", len(seq))
	json.NewEncoder(w).Encode(SequenceResponse{Sequence: seq})
}
