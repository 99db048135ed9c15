package crossfade

// Track is a single playable track enriched with everything the
// sequencer needs to judge how well it mixes into a neighbor.
type Track struct {
	// Title is the track name.
	// Example: "September"
	Title string `json:"title"`
	// Artist is the primary artist.
	// Example: "Earth, Wind & Fire"
	Artist string `json:"artist"`
	// Tempo is the estimated tempo of the track in beats per minute (BPM).
	// Must be positive.
	// Example: 126.0
	Tempo float64 `json:"tempo"`
	// Key is the musical key as a pitch-class name, sharps or flats.
	// Example: "F#", "Bb"
	Key string `json:"key"`
	// Mode is the modality of the track, "major" or "minor" (case-insensitive).
	Mode string `json:"mode"`
	// Camelot is the Camelot wheel code derived from Key and Mode, an
	// integer 1-12 followed by A (minor) or B (major). Derived once at
	// load time and immutable afterwards.
	// Example: "11B"
	Camelot string `json:"camelot"`
	// Energy is a perceptual measure of intensity and activity from 0.0 to 1.0.
	// Example: 0.85
	Energy float64 `json:"energy"`
	// Popularity ranges 0-100, with 100 the most popular.
	// Example: 92
	Popularity int `json:"popularity"`
	// DurationMs is the duration of the track in milliseconds.
	// Example: 237040
	DurationMs int `json:"duration_ms"`
}

// CompatibilityResult carries the four sub-scores and the weighted total
// for one ordered pair of tracks. All values are in [0,1].
type CompatibilityResult struct {
	// Harmonic scores Camelot wheel compatibility.
	Harmonic float64 `json:"harmonic"`
	// Tempo scores BPM closeness.
	Tempo float64 `json:"tempo"`
	// Energy scores energy-flow smoothness.
	Energy float64 `json:"energy"`
	// Popularity scores crowd-engagement placement for the set position.
	Popularity float64 `json:"popularity"`
	// Total is the weighted sum of the four sub-scores.
	Total float64 `json:"total"`
}

// TransitionRecord describes the adjacency between two consecutive tracks
// in a finished sequence.
type TransitionRecord struct {
	From Track `json:"from"`
	To   Track `json:"to"`
	// Position is the fractional position of the transition in the set,
	// 0.0 at the start and 1.0 at the end.
	Position float64 `json:"position"`
	// Scores is the recomputed compatibility for this pair at Position.
	Scores CompatibilityResult `json:"scores"`
	// Quality is the band for Scores.Total: "excellent", "good",
	// "acceptable" or "challenging".
	Quality string `json:"quality"`
}

// SetMetrics aggregates set-wide statistics.
type SetMetrics struct {
	TrackCount int `json:"track_count"`
	// TotalDurationMin is the summed track duration in minutes.
	TotalDurationMin float64 `json:"total_duration_min"`
	AvgTempo         float64 `json:"avg_tempo"`
	AvgEnergy        float64 `json:"avg_energy"`
	AvgPopularity    float64 `json:"avg_popularity"`
	// AvgTransitionScore is the mean Total across all transitions,
	// 0 for a single-track set.
	AvgTransitionScore float64 `json:"avg_transition_score"`
	// HarmonicViolations counts transitions classified incompatible.
	HarmonicViolations int `json:"harmonic_violations"`
	// Quality tallies by band.
	Excellent   int `json:"excellent"`
	Good        int `json:"good"`
	Acceptable  int `json:"acceptable"`
	Challenging int `json:"challenging"`
	// BPM progression.
	MinTempo   float64 `json:"min_tempo"`
	MaxTempo   float64 `json:"max_tempo"`
	StartTempo float64 `json:"start_tempo"`
	EndTempo   float64 `json:"end_tempo"`
	// Energy arc over contiguous thirds of the set.
	OpeningEnergy float64 `json:"opening_energy"`
	MiddleEnergy  float64 `json:"middle_energy"`
	ClosingEnergy float64 `json:"closing_energy"`
	// EnergyArc is "peaked-middle", "building", "descending" or "flat".
	EnergyArc string `json:"energy_arc"`
}

// HighImpactTrack flags a popularity >=90 track and whether its 1-based
// position lands in the peak zone (35-65% of the set length).
type HighImpactTrack struct {
	Position   int    `json:"position"`
	Title      string `json:"title"`
	Popularity int    `json:"popularity"`
	InPeakZone bool   `json:"in_peak_zone"`
}

// SetReport is the full structured analysis of a sequence plus the
// narrative explanation text.
type SetReport struct {
	Metrics     SetMetrics         `json:"metrics"`
	Transitions []TransitionRecord `json:"transitions"`
	HighImpact  []HighImpactTrack  `json:"high_impact"`
	Narrative   string             `json:"narrative"`
}
