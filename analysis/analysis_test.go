package analysis

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/mager/crossfade/crossfade"
	"github.com/mager/crossfade/sequence"
)

func track(title, code string, tempo, energy float64, pop, durMs int) crossfade.Track {
	return crossfade.Track{
		Title: title, Artist: "artist", Tempo: tempo, Camelot: code,
		Energy: energy, Popularity: pop, DurationMs: durMs,
	}
}

func testSequence() []crossfade.Track {
	return []crossfade.Track{
		track("opener", "8A", 120, 0.6, 70, 180000),
		track("builder", "9A", 122, 0.75, 85, 200000),
		track("peak", "9B", 124, 0.9, 95, 210000),
		track("lander", "10B", 123, 0.8, 80, 190000),
		track("closer", "3B", 100, 0.5, 60, 220000),
	}
}

func TestQualityBand(t *testing.T) {
	tests := []struct {
		total float64
		want  string
	}{
		{0.95, Excellent},
		{0.8, Excellent},
		{0.79, Good},
		{0.6, Good},
		{0.59, Acceptable},
		{0.4, Acceptable},
		{0.39, Challenging},
	}
	for _, tt := range tests {
		if got := QualityBand(tt.total); got != tt.want {
			t.Errorf("QualityBand(%v) = %q, want %q", tt.total, got, tt.want)
		}
	}
}

func TestTransitions(t *testing.T) {
	seq := testSequence()
	records, err := Transitions(seq)
	if err != nil {
		t.Fatalf("Transitions returned error: %v", err)
	}
	if len(records) != len(seq)-1 {
		t.Fatalf("got %d records, want %d", len(records), len(seq)-1)
	}

	for i, r := range records {
		wantPos := sequence.Position(i, len(seq))
		if r.Position != wantPos {
			t.Errorf("record %d position = %v, want %v", i, r.Position, wantPos)
		}
		if r.From.Title != seq[i].Title || r.To.Title != seq[i+1].Title {
			t.Errorf("record %d pairs %q -> %q, want %q -> %q",
				i, r.From.Title, r.To.Title, seq[i].Title, seq[i+1].Title)
		}
		if r.Quality != QualityBand(r.Scores.Total) {
			t.Errorf("record %d quality %q does not match total %v", i, r.Quality, r.Scores.Total)
		}
	}
}

func TestSummarizeMetrics(t *testing.T) {
	seq := testSequence()
	report, err := Summarize(seq)
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	m := report.Metrics

	if m.TrackCount != 5 {
		t.Errorf("TrackCount = %d, want 5", m.TrackCount)
	}
	wantMinutes := float64(180000+200000+210000+190000+220000) / 60000
	if math.Abs(m.TotalDurationMin-wantMinutes) > 1e-9 {
		t.Errorf("TotalDurationMin = %v, want %v", m.TotalDurationMin, wantMinutes)
	}
	if math.Abs(m.AvgTempo-(120+122+124+123+100)/5.0) > 1e-9 {
		t.Errorf("AvgTempo = %v", m.AvgTempo)
	}
	if m.MinTempo != 100 || m.MaxTempo != 124 {
		t.Errorf("tempo range = %v-%v, want 100-124", m.MinTempo, m.MaxTempo)
	}
	if m.StartTempo != 120 || m.EndTempo != 100 {
		t.Errorf("start/end tempo = %v/%v, want 120/100", m.StartTempo, m.EndTempo)
	}

	// Only the closing 10B -> 3B pair clashes.
	if m.HarmonicViolations != 1 {
		t.Errorf("HarmonicViolations = %d, want 1", m.HarmonicViolations)
	}
	if got := m.Excellent + m.Good + m.Acceptable + m.Challenging; got != len(report.Transitions) {
		t.Errorf("quality tallies sum to %d, want %d", got, len(report.Transitions))
	}
}

func TestSummarizeEnergyArc(t *testing.T) {
	report, err := Summarize(testSequence())
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	m := report.Metrics

	// Thirds by index: [opener], [builder], [peak lander closer].
	if math.Abs(m.OpeningEnergy-0.6) > 1e-9 {
		t.Errorf("OpeningEnergy = %v, want 0.6", m.OpeningEnergy)
	}
	if math.Abs(m.MiddleEnergy-0.75) > 1e-9 {
		t.Errorf("MiddleEnergy = %v, want 0.75", m.MiddleEnergy)
	}
	wantClosing := (0.9 + 0.8 + 0.5) / 3
	if math.Abs(m.ClosingEnergy-wantClosing) > 1e-9 {
		t.Errorf("ClosingEnergy = %v, want %v", m.ClosingEnergy, wantClosing)
	}
	// Middle (0.75) tops both opening (0.6) and closing (~0.733).
	if m.EnergyArc != ArcPeakedMiddle {
		t.Errorf("EnergyArc = %q, want %q", m.EnergyArc, ArcPeakedMiddle)
	}
}

func TestClassifyArc(t *testing.T) {
	tests := []struct {
		opening, middle, closing float64
		want                     string
	}{
		{0.5, 0.9, 0.6, ArcPeakedMiddle},
		{0.4, 0.5, 0.8, ArcBuilding},
		{0.8, 0.5, 0.4, ArcDescending},
		{0.5, 0.5, 0.5, ArcFlat},
	}
	for _, tt := range tests {
		if got := classifyArc(tt.opening, tt.middle, tt.closing); got != tt.want {
			t.Errorf("classifyArc(%v, %v, %v) = %q, want %q",
				tt.opening, tt.middle, tt.closing, got, tt.want)
		}
	}
}

func TestHighImpactTracks(t *testing.T) {
	report, err := Summarize(testSequence())
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if len(report.HighImpact) != 1 {
		t.Fatalf("HighImpact = %v, want exactly one entry", report.HighImpact)
	}
	h := report.HighImpact[0]
	if h.Title != "peak" || h.Position != 3 {
		t.Errorf("high-impact = %+v, want peak at position 3", h)
	}
	// Position 3 of 5 is 60%, inside the 35-65% zone.
	if !h.InPeakZone {
		t.Error("peak track at 60% should be in the peak zone")
	}
}

func TestSummarizeNarrative(t *testing.T) {
	report, err := Summarize(testSequence())
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}

	for _, want := range []string{
		"SET OVERVIEW",
		"TRANSITION QUALITY",
		"ENERGY ARC",
		"BPM PROGRESSION",
		"HIGH-IMPACT TRACKS",
		"TRANSITION: opener -> builder",
		"Large tempo jump", // lander (123) -> closer (100)
	} {
		if !strings.Contains(report.Narrative, want) {
			t.Errorf("narrative missing %q", want)
		}
	}
}

func TestJustifyTransitionBands(t *testing.T) {
	records, err := Transitions([]crossfade.Track{
		track("a", "8A", 120, 0.80, 90, 1000),
		track("b", "8A", 120, 0.80, 92, 1000),
	})
	if err != nil {
		t.Fatalf("Transitions returned error: %v", err)
	}
	text := JustifyTransition(records[0])

	for _, want := range []string{
		"Perfect match",
		"Identical tempo",
		"Maintains current energy",
		"EXCELLENT transition",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("justification missing %q:\n%s", want, text)
		}
	}
}

func TestSummarizeSingleTrack(t *testing.T) {
	report, err := Summarize([]crossfade.Track{track("solo", "8A", 120, 0.8, 50, 60000)})
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if len(report.Transitions) != 0 {
		t.Errorf("single track produced %d transitions", len(report.Transitions))
	}
	if report.Metrics.AvgTransitionScore != 0 {
		t.Errorf("AvgTransitionScore = %v, want 0", report.Metrics.AvgTransitionScore)
	}
	if report.Metrics.TotalDurationMin != 1 {
		t.Errorf("TotalDurationMin = %v, want 1", report.Metrics.TotalDurationMin)
	}
}

func TestSummarizeRejectsBadInput(t *testing.T) {
	if _, err := Summarize(nil); !errors.Is(err, crossfade.ErrInvalidInput) {
		t.Errorf("empty sequence: error = %v, want ErrInvalidInput", err)
	}
}

func TestCompare(t *testing.T) {
	// Baseline deliberately alternates clashing keys; optimized flows.
	baseline := []crossfade.Track{
		track("a", "8A", 120, 0.8, 50, 1000),
		track("b", "3B", 121, 0.8, 50, 1000),
		track("c", "8A", 122, 0.8, 50, 1000),
	}
	optimized := []crossfade.Track{
		track("a", "8A", 120, 0.8, 50, 1000),
		track("c", "8A", 122, 0.8, 50, 1000),
		track("b", "3B", 121, 0.8, 50, 1000),
	}

	c, err := Compare(baseline, optimized)
	if err != nil {
		t.Fatalf("Compare returned error: %v", err)
	}
	if c.Baseline.HarmonicViolations != 2 {
		t.Errorf("baseline violations = %d, want 2", c.Baseline.HarmonicViolations)
	}
	if c.Optimized.HarmonicViolations != 1 {
		t.Errorf("optimized violations = %d, want 1", c.Optimized.HarmonicViolations)
	}
	if c.ViolationsAvoided != 1 {
		t.Errorf("ViolationsAvoided = %d, want 1", c.ViolationsAvoided)
	}
	if c.ScoreImprovementPct <= 0 {
		t.Errorf("ScoreImprovementPct = %v, want positive", c.ScoreImprovementPct)
	}
}
