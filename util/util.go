package util

import (
	"sort"

	spot "github.com/zmb3/spotify/v2"
	"golang.org/x/exp/maps"

	"github.com/mager/crossfade/crossfade"
)

func GetFirstArtist(artists []spot.SimpleArtist) string {
	if len(artists) == 0 {
		return "Various Artists"
	}

	return artists[0].Name
}

// pitchClasses maps Spotify's standard Pitch Class notation (0 = C,
// 1 = C#, ...) to key names. Sharps throughout; the Camelot table
// handles enharmonic flats.
var pitchClasses = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// PitchClassName returns the key name for a pitch class integer, or ""
// when no key was detected (-1).
func PitchClassName(pitchClass int) string {
	if pitchClass < 0 || pitchClass >= len(pitchClasses) {
		return ""
	}
	return pitchClasses[pitchClass]
}

// ModeName maps Spotify's modality integer to the mode string: major is
// represented by 1 and minor is 0.
func ModeName(mode int) string {
	if mode == 1 {
		return "major"
	}
	return "minor"
}

// CamelotDistribution counts tracks per Camelot code, with the codes
// ranked by their number of occurrences.
func CamelotDistribution(tracks []crossfade.Track) ([]string, map[string]int) {
	counts := make(map[string]int)
	for _, t := range tracks {
		counts[t.Camelot]++
	}

	var sorted []string
	sorted = maps.Keys(counts)
	sort.Slice(sorted, func(i, j int) bool {
		if counts[sorted[i]] != counts[sorted[j]] {
			return counts[sorted[i]] > counts[sorted[j]]
		}
		return sorted[i] < sorted[j]
	})

	return sorted, counts
}
