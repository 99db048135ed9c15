package crossfade

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a track or collection that fails basic
// validation before it reaches the sequencing core.
var ErrInvalidInput = errors.New("crossfade: invalid input")

// Validate checks the field ranges a track must satisfy before it can be
// scored or sequenced.
func (t Track) Validate() error {
	switch {
	case t.Title == "":
		return fmt.Errorf("%w: track missing title", ErrInvalidInput)
	case t.Tempo <= 0:
		return fmt.Errorf("%w: track %q tempo must be positive, got %v", ErrInvalidInput, t.Title, t.Tempo)
	case t.Energy < 0 || t.Energy > 1:
		return fmt.Errorf("%w: track %q energy must be in [0,1], got %v", ErrInvalidInput, t.Title, t.Energy)
	case t.Popularity < 0 || t.Popularity > 100:
		return fmt.Errorf("%w: track %q popularity must be in [0,100], got %d", ErrInvalidInput, t.Title, t.Popularity)
	case t.Camelot == "":
		return fmt.Errorf("%w: track %q has no camelot code", ErrInvalidInput, t.Title)
	}
	return nil
}

// ValidateAll checks a whole collection; the collection must be non-empty
// and every track must pass Validate.
func ValidateAll(tracks []Track) error {
	if len(tracks) == 0 {
		return fmt.Errorf("%w: empty track collection", ErrInvalidInput)
	}
	for _, t := range tracks {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}
