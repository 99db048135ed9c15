// Package camelot converts musical keys to Camelot wheel notation and
// classifies harmonic compatibility between codes.
//
// The Camelot wheel pairs an integer 1-12 with a letter, A for minor and
// B for major. Compatible transitions keep the same code, swap the letter
// on the same number, or move one step around the wheel (12 wraps to 1).
package camelot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidKey reports an unrecognized (key, mode) pair.
	ErrInvalidKey = errors.New("camelot: invalid key")
	// ErrInvalidCode reports a malformed or empty Camelot code.
	ErrInvalidCode = errors.New("camelot: invalid camelot code")
)

// Compatibility categories returned by Classify.
const (
	Perfect      = "perfect"
	Relative     = "relative"
	Adjacent     = "adjacent"
	Incompatible = "incompatible"
	Invalid      = "invalid"
)

// wheel maps "Key_mode" to a Camelot code, covering all 12 major and 12
// minor keys plus enharmonic duplicates (Gb == F#, etc).
var wheel = map[string]string{
	// Major keys (B)
	"C_major":  "8B",
	"Db_major": "3B", "C#_major": "3B",
	"D_major":  "10B",
	"Eb_major": "5B", "D#_major": "5B",
	"E_major":  "12B",
	"F_major":  "7B",
	"F#_major": "2B", "Gb_major": "2B",
	"G_major":  "9B",
	"Ab_major": "4B", "G#_major": "4B",
	"A_major":  "11B",
	"Bb_major": "6B", "A#_major": "6B",
	"B_major": "1B",

	// Minor keys (A)
	"C_minor":  "5A",
	"C#_minor": "12A", "Db_minor": "12A",
	"D_minor":  "7A",
	"Eb_minor": "2A", "D#_minor": "2A",
	"E_minor": "9A",
	"F_minor": "4A",
	"F#_minor": "11A", "Gb_minor": "11A",
	"G_minor":  "6A",
	"G#_minor": "1A", "Ab_minor": "1A",
	"A_minor":  "8A",
	"Bb_minor": "3A", "A#_minor": "3A",
	"B_minor": "10A",
}

// Convert maps a musical key and mode to its Camelot code.
// Mode comparison is case-insensitive; the key accepts sharps and flats.
//
//	Convert("A", "minor")  == "8A"
//	Convert("C", "major")  == "8B"
//	Convert("F#", "minor") == "11A"
func Convert(key, mode string) (string, error) {
	k := normalizeKey(key)
	m := strings.ToLower(strings.TrimSpace(mode))

	code, ok := wheel[k+"_"+m]
	if !ok {
		return "", fmt.Errorf("%w: %q %q", ErrInvalidKey, key, mode)
	}
	return code, nil
}

// normalizeKey uppercases the note letter and lowercases any accidental
// suffix, so "ab" and "AB" both become "Ab".
func normalizeKey(k string) string {
	k = strings.TrimSpace(k)
	if k == "" {
		return k
	}
	return strings.ToUpper(k[:1]) + strings.ToLower(k[1:])
}

// parse splits a Camelot code into its number and letter.
func parse(code string) (int, string, error) {
	if len(code) < 2 {
		return 0, "", fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	letter := strings.ToUpper(code[len(code)-1:])
	if letter != "A" && letter != "B" {
		return 0, "", fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	num, err := strconv.Atoi(code[:len(code)-1])
	if err != nil || num < 1 || num > 12 {
		return 0, "", fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	return num, letter, nil
}

// Classify reports whether two Camelot codes are harmonically compatible
// and which category the relationship falls in: Perfect for identical
// codes, Relative for the same number with the opposite letter, Adjacent
// for a one-step move on the same letter (1 and 12 touch), Incompatible
// otherwise. Empty or malformed codes classify as Invalid, not an error.
func Classify(a, b string) (bool, string) {
	numA, letterA, errA := parse(a)
	numB, letterB, errB := parse(b)
	if errA != nil || errB != nil {
		return false, Invalid
	}

	if numA == numB && letterA == letterB {
		return true, Perfect
	}
	if numA == numB {
		return true, Relative
	}
	if letterA == letterB {
		diff := numA - numB
		if diff < 0 {
			diff = -diff
		}
		// diff of 11 is the 12 -> 1 wraparound
		if diff == 1 || diff == 11 {
			return true, Adjacent
		}
	}
	return false, Incompatible
}

// Neighbors enumerates every code directly compatible with the given one,
// grouped by category.
type Neighbors struct {
	Perfect  []string `json:"perfect"`
	Relative []string `json:"relative"`
	Adjacent []string `json:"adjacent"`
}

// CompatibleKeys returns the neighbor set for a Camelot code, with the
// 1<->12 wraparound applied to the adjacent pair.
func CompatibleKeys(code string) (Neighbors, error) {
	num, letter, err := parse(code)
	if err != nil {
		return Neighbors{}, err
	}

	prev := num - 1
	if prev == 0 {
		prev = 12
	}
	next := num + 1
	if next == 13 {
		next = 1
	}
	opposite := "B"
	if letter == "B" {
		opposite = "A"
	}

	return Neighbors{
		Perfect:  []string{fmt.Sprintf("%d%s", num, letter)},
		Relative: []string{fmt.Sprintf("%d%s", num, opposite)},
		Adjacent: []string{fmt.Sprintf("%d%s", prev, letter), fmt.Sprintf("%d%s", next, letter)},
	}, nil
}

// Describe renders a short human-readable description of a key transition.
func Describe(from, to string) string {
	compatible, category := Classify(from, to)
	if !compatible {
		return fmt.Sprintf("Incompatible (%s -> %s)", from, to)
	}
	switch category {
	case Perfect:
		return fmt.Sprintf("Perfect match (%s -> %s)", from, to)
	case Relative:
		return fmt.Sprintf("Relative major/minor (%s -> %s)", from, to)
	case Adjacent:
		return fmt.Sprintf("Adjacent key (%s -> %s)", from, to)
	}
	return fmt.Sprintf("Unknown (%s -> %s)", from, to)
}
