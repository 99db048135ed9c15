// Package analysis re-derives transition scores for a finished sequence
// and produces set-wide statistics plus narrative justifications.
package analysis

import (
	"github.com/mager/crossfade/camelot"
	"github.com/mager/crossfade/crossfade"
	"github.com/mager/crossfade/scoring"
	"github.com/mager/crossfade/sequence"
)

// Quality bands for a transition total.
const (
	Excellent   = "excellent"
	Good        = "good"
	Acceptable  = "acceptable"
	Challenging = "challenging"
)

// QualityBand buckets a total score.
func QualityBand(total float64) string {
	switch {
	case total >= 0.8:
		return Excellent
	case total >= 0.6:
		return Good
	case total >= 0.4:
		return Acceptable
	default:
		return Challenging
	}
}

// Energy arc classifications.
const (
	ArcPeakedMiddle = "peaked-middle"
	ArcBuilding     = "building"
	ArcDescending   = "descending"
	ArcFlat         = "flat"
)

// highImpactThreshold marks tracks worth placement scrutiny.
const highImpactThreshold = 90

// Transitions recomputes a TransitionRecord for every consecutive pair,
// using the same positional fraction the builder used.
func Transitions(seq []crossfade.Track) ([]crossfade.TransitionRecord, error) {
	if err := crossfade.ValidateAll(seq); err != nil {
		return nil, err
	}

	records := make([]crossfade.TransitionRecord, 0, len(seq)-1)
	for i := 0; i+1 < len(seq); i++ {
		position := sequence.Position(i, len(seq))
		scores, err := scoring.Score(seq[i], seq[i+1], position, nil)
		if err != nil {
			return nil, err
		}
		records = append(records, crossfade.TransitionRecord{
			From:     seq[i],
			To:       seq[i+1],
			Position: position,
			Scores:   scores,
			Quality:  QualityBand(scores.Total),
		})
	}
	return records, nil
}

// Summarize produces the full structured report plus narrative text for
// a finished sequence.
func Summarize(seq []crossfade.Track) (crossfade.SetReport, error) {
	records, err := Transitions(seq)
	if err != nil {
		return crossfade.SetReport{}, err
	}

	metrics := computeMetrics(seq, records)
	highImpact := highImpactTracks(seq)

	report := crossfade.SetReport{
		Metrics:     metrics,
		Transitions: records,
		HighImpact:  highImpact,
	}
	report.Narrative = Narrative(report)
	return report, nil
}

func computeMetrics(seq []crossfade.Track, records []crossfade.TransitionRecord) crossfade.SetMetrics {
	m := crossfade.SetMetrics{TrackCount: len(seq)}

	var durationMs, popularity int
	var tempoSum, energySum float64
	m.MinTempo = seq[0].Tempo
	m.MaxTempo = seq[0].Tempo
	for _, t := range seq {
		durationMs += t.DurationMs
		tempoSum += t.Tempo
		energySum += t.Energy
		popularity += t.Popularity
		if t.Tempo < m.MinTempo {
			m.MinTempo = t.Tempo
		}
		if t.Tempo > m.MaxTempo {
			m.MaxTempo = t.Tempo
		}
	}
	n := float64(len(seq))
	m.TotalDurationMin = float64(durationMs) / 60000
	m.AvgTempo = tempoSum / n
	m.AvgEnergy = energySum / n
	m.AvgPopularity = float64(popularity) / n
	m.StartTempo = seq[0].Tempo
	m.EndTempo = seq[len(seq)-1].Tempo

	var totalSum float64
	for _, r := range records {
		totalSum += r.Scores.Total
		switch r.Quality {
		case Excellent:
			m.Excellent++
		case Good:
			m.Good++
		case Acceptable:
			m.Acceptable++
		default:
			m.Challenging++
		}
		if _, category := camelot.Classify(r.From.Camelot, r.To.Camelot); category == camelot.Incompatible {
			m.HarmonicViolations++
		}
	}
	if len(records) > 0 {
		m.AvgTransitionScore = totalSum / float64(len(records))
	}

	m.OpeningEnergy, m.MiddleEnergy, m.ClosingEnergy = energyThirds(seq)
	m.EnergyArc = classifyArc(m.OpeningEnergy, m.MiddleEnergy, m.ClosingEnergy)
	return m
}

// energyThirds averages energy over three contiguous near-equal slices
// of the sequence by index.
func energyThirds(seq []crossfade.Track) (opening, middle, closing float64) {
	third := len(seq) / 3

	avg := func(tracks []crossfade.Track) float64 {
		if len(tracks) == 0 {
			return 0
		}
		var sum float64
		for _, t := range tracks {
			sum += t.Energy
		}
		return sum / float64(len(tracks))
	}

	if third == 0 {
		// Fewer than three tracks: every slice sees the whole set.
		whole := avg(seq)
		return whole, whole, whole
	}
	return avg(seq[:third]), avg(seq[third : 2*third]), avg(seq[2*third:])
}

func classifyArc(opening, middle, closing float64) string {
	switch {
	case middle > opening && middle > closing:
		return ArcPeakedMiddle
	case closing > opening:
		return ArcBuilding
	case opening > closing:
		return ArcDescending
	default:
		return ArcFlat
	}
}

// highImpactTracks flags popularity >=90 tracks and whether their 1-based
// position falls inside the peak index zone (35-65% of the set length).
func highImpactTracks(seq []crossfade.Track) []crossfade.HighImpactTrack {
	var out []crossfade.HighImpactTrack
	for i, t := range seq {
		if t.Popularity < highImpactThreshold {
			continue
		}
		pct := float64(i+1) / float64(len(seq)) * 100
		out = append(out, crossfade.HighImpactTrack{
			Position:   i + 1,
			Title:      t.Title,
			Popularity: t.Popularity,
			InPeakZone: pct >= 35 && pct <= 65,
		})
	}
	return out
}
