package analysis

import (
	"fmt"
	"strings"

	"github.com/mager/crossfade/camelot"
	"github.com/mager/crossfade/crossfade"
)

// JustifyTransition explains one transition record in plain language,
// factor by factor, using the same bands the scorers use.
func JustifyTransition(r crossfade.TransitionRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "TRANSITION: %s -> %s\n", r.From.Title, r.To.Title)

	// Harmonic
	_, category := camelot.Classify(r.From.Camelot, r.To.Camelot)
	fmt.Fprintf(&b, "\n1. Harmonic compatibility (score: %.2f/1.0)\n", r.Scores.Harmonic)
	fmt.Fprintf(&b, "   %s -> %s\n", r.From.Camelot, r.To.Camelot)
	switch category {
	case camelot.Perfect:
		b.WriteString("   Perfect match - same key maintains harmonic continuity\n")
	case camelot.Adjacent:
		b.WriteString("   Adjacent on the Camelot wheel - smooth, professional transition\n")
	case camelot.Relative:
		b.WriteString("   Relative major/minor - shifts energy while staying harmonic\n")
	default:
		b.WriteString("   Key clash - may sound dissonant to trained ears\n")
	}

	// Tempo
	bpmDiff := r.To.Tempo - r.From.Tempo
	bpmPct := 0.0
	if r.From.Tempo > 0 {
		bpmPct = abs(bpmDiff) / r.From.Tempo * 100
	}
	fmt.Fprintf(&b, "\n2. Tempo transition (score: %.2f/1.0)\n", r.Scores.Tempo)
	fmt.Fprintf(&b, "   %.1f -> %.1f BPM (%+.1f BPM, %.1f%% change)\n",
		r.From.Tempo, r.To.Tempo, bpmDiff, bpmPct)
	switch {
	case bpmPct == 0:
		b.WriteString("   Identical tempo - seamless mix possible\n")
	case bpmPct <= 3:
		b.WriteString("   Imperceptible change - the crowd won't notice the shift\n")
	case bpmPct <= 6:
		b.WriteString("   Smooth transition - feels natural on the dancefloor\n")
	case bpmPct <= 10:
		b.WriteString("   Noticeable shift - requires skilled mixing technique\n")
	default:
		b.WriteString("   Large tempo jump - may disrupt flow\n")
	}

	// Energy
	energyDiff := r.To.Energy - r.From.Energy
	fmt.Fprintf(&b, "\n3. Energy progression (score: %.2f/1.0)\n", r.Scores.Energy)
	fmt.Fprintf(&b, "   %.2f -> %.2f (%+.2f change)\n", r.From.Energy, r.To.Energy, energyDiff)
	switch {
	case abs(energyDiff) <= 0.05:
		b.WriteString("   Maintains current energy - keeps momentum steady\n")
	case energyDiff > 0.15:
		b.WriteString("   Significant energy boost - taking it to the next level\n")
	case energyDiff > 0.05:
		b.WriteString("   Gradual energy increase - building the vibe\n")
	case energyDiff >= -0.15:
		b.WriteString("   Gentle cool-down - giving dancers a breather\n")
	default:
		b.WriteString("   Major energy drop - risk of losing momentum\n")
	}

	// Popularity
	avgPop := float64(r.From.Popularity+r.To.Popularity) / 2
	isPeak := r.Position >= 0.35 && r.Position <= 0.65
	fmt.Fprintf(&b, "\n4. Crowd engagement (score: %.2f/1.0)\n", r.Scores.Popularity)
	fmt.Fprintf(&b, "   Avg popularity: %.0f/100, position in set: %.0f%% (peak zone: 35-65%%)\n",
		avgPop, r.Position*100)
	switch {
	case avgPop >= 80 && isPeak:
		b.WriteString("   Banger at peak position - maximum crowd impact\n")
	case avgPop >= 80:
		b.WriteString("   High-recognition track - crowd favorite\n")
	case avgPop >= 60:
		b.WriteString("   Solid crowd-pleaser - keeps energy consistent\n")
	default:
		b.WriteString("   Lower-profile track - good for pacing variation\n")
	}

	// Verdict
	fmt.Fprintf(&b, "\nOVERALL COMPATIBILITY: %.2f/1.0\n", r.Scores.Total)
	switch QualityBand(r.Scores.Total) {
	case Excellent:
		b.WriteString("EXCELLENT transition - professional DJ-quality mix")
	case Good:
		b.WriteString("GOOD transition - solid choice")
	case Acceptable:
		b.WriteString("ACCEPTABLE transition - workable with skill")
	default:
		b.WriteString("CHALLENGING transition - requires expert technique")
	}

	return b.String()
}

// Narrative renders the whole-set report: overview, transition quality,
// energy arc, BPM progression, high-impact placement and every
// transition's justification.
func Narrative(report crossfade.SetReport) string {
	m := report.Metrics
	var b strings.Builder

	b.WriteString("SET OVERVIEW\n")
	fmt.Fprintf(&b, "  Total tracks:       %d\n", m.TrackCount)
	fmt.Fprintf(&b, "  Total duration:     %.1f minutes\n", m.TotalDurationMin)
	fmt.Fprintf(&b, "  Average BPM:        %.1f\n", m.AvgTempo)
	fmt.Fprintf(&b, "  Average energy:     %.2f/1.0\n", m.AvgEnergy)
	fmt.Fprintf(&b, "  Average popularity: %.0f/100\n", m.AvgPopularity)

	if len(report.Transitions) > 0 {
		n := float64(len(report.Transitions))
		b.WriteString("\nTRANSITION QUALITY\n")
		fmt.Fprintf(&b, "  Average score:        %.2f/1.0\n", m.AvgTransitionScore)
		fmt.Fprintf(&b, "  Excellent (>=0.8):    %d (%.0f%%)\n", m.Excellent, float64(m.Excellent)/n*100)
		fmt.Fprintf(&b, "  Good (0.6-0.8):       %d (%.0f%%)\n", m.Good, float64(m.Good)/n*100)
		fmt.Fprintf(&b, "  Acceptable (0.4-0.6): %d (%.0f%%)\n", m.Acceptable, float64(m.Acceptable)/n*100)
		fmt.Fprintf(&b, "  Challenging (<0.4):   %d (%.0f%%)\n", m.Challenging, float64(m.Challenging)/n*100)
		fmt.Fprintf(&b, "  Harmonic violations:  %d (%.0f%%)\n", m.HarmonicViolations, float64(m.HarmonicViolations)/n*100)
	}

	b.WriteString("\nENERGY ARC\n")
	fmt.Fprintf(&b, "  Opening third: %.2f/1.0\n", m.OpeningEnergy)
	fmt.Fprintf(&b, "  Middle third:  %.2f/1.0\n", m.MiddleEnergy)
	fmt.Fprintf(&b, "  Closing third: %.2f/1.0\n", m.ClosingEnergy)
	switch m.EnergyArc {
	case ArcPeakedMiddle:
		b.WriteString("  Ideal arc - peaks in the middle like a pro DJ set\n")
	case ArcBuilding:
		b.WriteString("  Building arc - climax at the end\n")
	case ArcDescending:
		b.WriteString("  Descending arc - winds down gradually\n")
	default:
		b.WriteString("  Flat arc - consistent energy throughout\n")
	}

	b.WriteString("\nBPM PROGRESSION\n")
	fmt.Fprintf(&b, "  Range: %.0f - %.0f BPM\n", m.MinTempo, m.MaxTempo)
	fmt.Fprintf(&b, "  Starting BPM: %.0f, peak BPM: %.0f, ending BPM: %.0f\n",
		m.StartTempo, m.MaxTempo, m.EndTempo)

	if len(report.HighImpact) > 0 {
		b.WriteString("\nHIGH-IMPACT TRACKS (90+ popularity)\n")
		for _, h := range report.HighImpact {
			marker := " "
			if h.InPeakZone {
				marker = "*"
			}
			pct := float64(h.Position) / float64(m.TrackCount) * 100
			fmt.Fprintf(&b, "  %s Track #%d (%.0f%%): %s (%d/100)\n",
				marker, h.Position, pct, h.Title, h.Popularity)
		}
	}

	for _, r := range report.Transitions {
		b.WriteString("\n")
		b.WriteString(JustifyTransition(r))
		b.WriteString("\n")
	}

	return b.String()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
