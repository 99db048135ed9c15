// Package sequence orders a track collection by greedy nearest-neighbor
// selection over the multi-factor compatibility score.
//
// Exact optimal sequencing is combinatorially explosive, so the builder
// makes the locally best choice at each step: O(n^2) score evaluations
// for orderings that are good, not provably optimal.
package sequence

import (
	"fmt"
	"sort"

	"github.com/mager/crossfade/crossfade"
	"github.com/mager/crossfade/scoring"
)

// Options tunes a single build.
type Options struct {
	// SeedIndex forces the track at this index in the input to open the
	// set. Nil selects the highest-popularity track instead.
	SeedIndex *int
	// Weights overrides the scoring weights; nil uses the defaults.
	Weights *scoring.Weights
}

// Build orders tracks for the smoothest transitions. The result is always
// a permutation of the input. The opener is either the seeded track or
// the most popular one (first occurrence wins a tie); each following slot
// goes to the remaining track with the highest compatibility against the
// current one, scored at the slot's fractional position in the set.
func Build(tracks []crossfade.Track, opts Options) ([]crossfade.Track, error) {
	if err := crossfade.ValidateAll(tracks); err != nil {
		return nil, err
	}
	if opts.Weights != nil {
		if err := opts.Weights.Validate(); err != nil {
			return nil, err
		}
	}

	// Private working copy; the input order is the tie-break order.
	remaining := make([]crossfade.Track, len(tracks))
	copy(remaining, tracks)
	sequence := make([]crossfade.Track, 0, len(tracks))

	var seed int
	if opts.SeedIndex != nil {
		seed = *opts.SeedIndex
		if seed < 0 || seed >= len(remaining) {
			return nil, fmt.Errorf("%w: seed index %d out of range for %d tracks",
				crossfade.ErrInvalidInput, seed, len(remaining))
		}
	} else {
		for i, t := range remaining {
			// Strict > keeps the first occurrence on a popularity tie.
			if t.Popularity > remaining[seed].Popularity {
				seed = i
			}
		}
	}

	current := remaining[seed]
	remaining = append(remaining[:seed], remaining[seed+1:]...)
	sequence = append(sequence, current)

	total := len(tracks)
	for len(remaining) > 0 {
		position := Position(len(sequence), total)

		best := 0
		bestTotal := -1.0
		for i, candidate := range remaining {
			result, err := scoring.Score(current, candidate, position, opts.Weights)
			if err != nil {
				return nil, err
			}
			// Strict > keeps the earliest candidate on a tie.
			if result.Total > bestTotal {
				bestTotal = result.Total
				best = i
			}
		}

		current = remaining[best]
		remaining = append(remaining[:best], remaining[best+1:]...)
		sequence = append(sequence, current)
	}

	return sequence, nil
}

// Position returns the fractional position of transition index i in a
// set of n tracks: i/(n-1), or 0.5 for a single-track set.
func Position(i, n int) float64 {
	if n <= 1 {
		return 0.5
	}
	return float64(i) / float64(n-1)
}

// BuildByTempo is the naive baseline: a stable sort by ascending tempo,
// ignoring harmony, energy and popularity. It exists to quantify how
// much the multi-factor heuristic buys.
func BuildByTempo(tracks []crossfade.Track) []crossfade.Track {
	sorted := make([]crossfade.Track, len(tracks))
	copy(sorted, tracks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Tempo < sorted[j].Tempo
	})
	return sorted
}
