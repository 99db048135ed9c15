package analysis

import (
	"github.com/mager/crossfade/crossfade"
)

// Comparison quantifies the quality gain of one ordering over another,
// typically the multi-factor sequence against the tempo-only baseline.
type Comparison struct {
	Baseline  crossfade.SetMetrics `json:"baseline"`
	Optimized crossfade.SetMetrics `json:"optimized"`
	// ScoreImprovementPct is the relative change in average transition
	// score, in percent. Zero when the baseline average is zero.
	ScoreImprovementPct float64 `json:"score_improvement_pct"`
	// ViolationsAvoided is how many fewer harmonic violations the
	// optimized ordering has; negative means it has more.
	ViolationsAvoided int `json:"violations_avoided"`
}

// Compare analyzes both orderings and reports the improvement.
func Compare(baseline, optimized []crossfade.Track) (Comparison, error) {
	baseReport, err := Summarize(baseline)
	if err != nil {
		return Comparison{}, err
	}
	optReport, err := Summarize(optimized)
	if err != nil {
		return Comparison{}, err
	}

	c := Comparison{
		Baseline:  baseReport.Metrics,
		Optimized: optReport.Metrics,
		ViolationsAvoided: baseReport.Metrics.HarmonicViolations -
			optReport.Metrics.HarmonicViolations,
	}
	if baseReport.Metrics.AvgTransitionScore > 0 {
		c.ScoreImprovementPct = (optReport.Metrics.AvgTransitionScore -
			baseReport.Metrics.AvgTransitionScore) /
			baseReport.Metrics.AvgTransitionScore * 100
	}
	return c, nil
}
