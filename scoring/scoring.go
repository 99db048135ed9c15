// Package scoring rates how well two tracks transition in a DJ set.
//
// Four weighted factors contribute to a total in [0,1]: harmonic
// compatibility on the Camelot wheel (40%), tempo closeness (30%),
// energy-flow smoothness (20%) and strategic placement of popular
// tracks (10%). Every factor is a banded step function; there is no
// interpolation between bands.
package scoring

import (
	"errors"
	"fmt"
	"math"

	"github.com/mager/crossfade/camelot"
	"github.com/mager/crossfade/crossfade"
)

// ErrWeightConfiguration reports a custom weight set that does not sum to 1.
var ErrWeightConfiguration = errors.New("scoring: weights must sum to 1")

// Weights holds the per-factor contribution to the total score.
type Weights struct {
	Harmonic   float64 `json:"harmonic"`
	Tempo      float64 `json:"tempo"`
	Energy     float64 `json:"energy"`
	Popularity float64 `json:"popularity"`
}

// DefaultWeights returns the standard factor weighting.
func DefaultWeights() Weights {
	return Weights{Harmonic: 0.4, Tempo: 0.3, Energy: 0.2, Popularity: 0.1}
}

const weightSumTolerance = 1e-9

// Validate checks that the weights sum to 1.
func (w Weights) Validate() error {
	sum := w.Harmonic + w.Tempo + w.Energy + w.Popularity
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: got %v", ErrWeightConfiguration, sum)
	}
	return nil
}

// HarmonicScore scores Camelot compatibility between two codes.
//
//	perfect      1.0
//	adjacent     0.8
//	relative     0.7
//	incompatible 0.3
//	invalid      0.0
func HarmonicScore(codeA, codeB string) float64 {
	_, category := camelot.Classify(codeA, codeB)
	switch category {
	case camelot.Perfect:
		return 1.0
	case camelot.Adjacent:
		return 0.8
	case camelot.Relative:
		return 0.7
	case camelot.Incompatible:
		return 0.3
	}
	return 0.0
}

// TempoScore scores tempo closeness from the percentage BPM difference.
// A change of 3% or less is imperceptible to a crowd, 6% still mixes
// smoothly, beyond 10% the jump is jarring.
func TempoScore(bpmA, bpmB float64) float64 {
	if bpmA <= 0 || bpmB <= 0 {
		return 0.0
	}
	diffPct := math.Abs(bpmA-bpmB) / math.Max(bpmA, bpmB) * 100
	switch {
	case diffPct == 0:
		return 1.0
	case diffPct <= 3:
		return 0.9
	case diffPct <= 6:
		return 0.7
	case diffPct <= 10:
		return 0.5
	default:
		return 0.2
	}
}

// EnergyScore scores energy-flow smoothness from the absolute difference.
func EnergyScore(energyA, energyB float64) float64 {
	diff := math.Abs(energyA - energyB)
	switch {
	case diff == 0:
		return 1.0
	case diff <= 0.1:
		return 0.8
	case diff <= 0.2:
		return 0.6
	case diff <= 0.3:
		return 0.4
	default:
		return 0.2
	}
}

// The peak zone is the middle 30% of the set, where high-popularity
// tracks land with maximum impact.
const (
	peakZoneStart = 0.35
	peakZoneEnd   = 0.65
)

// PopularityScore scores crowd-engagement placement. A high-popularity
// pair (average 80+) earns full marks only inside the peak zone; playing
// it elsewhere wastes the moment.
func PopularityScore(popA, popB int, position float64) float64 {
	avg := float64(popA+popB) / 2
	isPeak := position >= peakZoneStart && position <= peakZoneEnd

	switch {
	case avg >= 80 && isPeak:
		return 1.0
	case avg >= 80:
		return 0.6
	case avg >= 60:
		return 0.6
	default:
		return 0.4
	}
}

// Score computes the full compatibility result for an ordered pair of
// tracks at the given fractional set position. A nil weights pointer
// selects DefaultWeights; explicit weights must sum to 1.
func Score(a, b crossfade.Track, position float64, weights *Weights) (crossfade.CompatibilityResult, error) {
	w := DefaultWeights()
	if weights != nil {
		if err := weights.Validate(); err != nil {
			return crossfade.CompatibilityResult{}, err
		}
		w = *weights
	}

	result := crossfade.CompatibilityResult{
		Harmonic:   HarmonicScore(a.Camelot, b.Camelot),
		Tempo:      TempoScore(a.Tempo, b.Tempo),
		Energy:     EnergyScore(a.Energy, b.Energy),
		Popularity: PopularityScore(a.Popularity, b.Popularity, position),
	}
	result.Total = result.Harmonic*w.Harmonic +
		result.Tempo*w.Tempo +
		result.Energy*w.Energy +
		result.Popularity*w.Popularity

	return result, nil
}
