// Package dataset loads and validates JSON track datasets, enriching
// each track with its Camelot code before it reaches the sequencer.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mager/crossfade/camelot"
	"github.com/mager/crossfade/crossfade"
	"github.com/mager/crossfade/util"
	"go.uber.org/zap"
)

// Loader reads track datasets from disk.
type Loader struct {
	log *zap.SugaredLogger
}

// NewLoader builds a Loader.
func NewLoader(log *zap.SugaredLogger) *Loader {
	return &Loader{log: log}
}

// Load reads a JSON array of tracks, derives a Camelot code for any
// track that arrived without one, and validates every track. It never
// retries; callers own any retry policy.
func (l *Loader) Load(path string) ([]crossfade.Track, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	var tracks []crossfade.Track
	if err := json.Unmarshal(raw, &tracks); err != nil {
		return nil, fmt.Errorf("dataset: decode %s: %w", path, err)
	}

	enriched, err := Enrich(tracks)
	if err != nil {
		return nil, err
	}
	if err := crossfade.ValidateAll(enriched); err != nil {
		return nil, err
	}

	ranked, counts := util.CamelotDistribution(enriched)
	l.log.Infow("loaded tracks",
		"path", path, "count", len(enriched), "keys", ranked, "key_counts", counts)
	return enriched, nil
}

// Enrich derives the Camelot code for every track from its key and mode.
// Tracks that already carry a code keep it; a key that cannot be resolved
// fails the whole load, naming the track.
func Enrich(tracks []crossfade.Track) ([]crossfade.Track, error) {
	out := make([]crossfade.Track, len(tracks))
	copy(out, tracks)
	for i := range out {
		if out[i].Camelot != "" {
			continue
		}
		code, err := camelot.Convert(out[i].Key, out[i].Mode)
		if err != nil {
			return nil, fmt.Errorf("dataset: track %q: %w", out[i].Title, err)
		}
		out[i].Camelot = code
	}
	return out, nil
}

var Options = NewLoader
