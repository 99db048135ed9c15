// Package setlist exposes the sequencing core over HTTP: build a
// sequence, score one transition, summarize a finished set.
package setlist

import (
	"errors"
	"net/http"

	"github.com/mager/crossfade/camelot"
	"github.com/mager/crossfade/crossfade"
	"github.com/mager/crossfade/dataset"
	"github.com/mager/crossfade/scoring"
)

// statusFor maps the error taxonomy to HTTP codes: bad input is the
// caller's fault, everything else is ours.
func statusFor(err error) int {
	switch {
	case errors.Is(err, crossfade.ErrInvalidInput),
		errors.Is(err, camelot.ErrInvalidKey),
		errors.Is(err, camelot.ErrInvalidCode),
		errors.Is(err, scoring.ErrWeightConfiguration):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// enrich fills missing Camelot codes from key/mode so callers can send
// either form.
func enrich(tracks []crossfade.Track) ([]crossfade.Track, error) {
	return dataset.Enrich(tracks)
}
