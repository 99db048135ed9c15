package setlist

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/mager/crossfade/crossfade"
	"github.com/mager/crossfade/scoring"
)

// ScoreHandler is an http.Handler
type ScoreHandler struct {
	log *zap.SugaredLogger
}

func (*ScoreHandler) Pattern() string {
	return "/setlist/score"
}

// NewScoreHandler builds a new ScoreHandler.
func NewScoreHandler(log *zap.SugaredLogger) *ScoreHandler {
	return &ScoreHandler{log: log}
}

type ScoreRequest struct {
	From crossfade.Track `json:"from"`
	To   crossfade.Track `json:"to"`
	// Position is the fractional position of the transition in the set.
	Position float64 `json:"position"`
	// Weights optionally overrides the scoring weights; must sum to 1.
	Weights *scoring.Weights `json:"weights,omitempty"`
}

type ScoreResponse struct {
	Scores crossfade.CompatibilityResult `json:"scores"`
}

// Score a single transition
// @Summary Score the compatibility of one ordered pair of tracks
// @Tags Setlist
// @Accept json
// @Produce json
// @Success 200 {object} ScoreResponse
// @Router /setlist/score [post]
func (h *ScoreHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	pair, err := enrich([]crossfade.Track{req.From, req.To})
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	scores, err := scoring.Score(pair[0], pair[1], req.Position, req.Weights)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	json.NewEncoder(w).Encode(ScoreResponse{Scores: scores})
}
