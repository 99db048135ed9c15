package setlist

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/mager/crossfade/analysis"
	"github.com/mager/crossfade/crossfade"
)

// SummaryHandler is an http.Handler
type SummaryHandler struct {
	log *zap.SugaredLogger
}

func (*SummaryHandler) Pattern() string {
	return "/setlist/summary"
}

// NewSummaryHandler builds a new SummaryHandler.
func NewSummaryHandler(log *zap.SugaredLogger) *SummaryHandler {
	return &SummaryHandler{log: log}
}

type SummaryRequest struct {
	// Tracks is a finished sequence, in play order.
	Tracks []crossfade.Track `json:"tracks"`
}

// Summarize a finished set
// @Summary Analyze a sequence and explain every transition
// @Tags Setlist
// @Accept json
// @Produce json
// @Success 200 {object} crossfade.SetReport
// @Router /setlist/summary [post]
func (h *SummaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	tracks, err := enrich(req.Tracks)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	report, err := analysis.Summarize(tracks)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	h.log.Infow("summarized set",
		"tracks", report.Metrics.TrackCount,
		"avg_score", report.Metrics.AvgTransitionScore,
	)
	json.NewEncoder(w).Encode(report)
}
