package util

import (
	"testing"

	spot "github.com/zmb3/spotify/v2"

	"github.com/mager/crossfade/crossfade"
)

func TestGetFirstArtist(t *testing.T) {
	if got := GetFirstArtist(nil); got != "Various Artists" {
		t.Errorf("GetFirstArtist(nil) = %q", got)
	}
	artists := []spot.SimpleArtist{{Name: "First"}, {Name: "Second"}}
	if got := GetFirstArtist(artists); got != "First" {
		t.Errorf("GetFirstArtist = %q, want First", got)
	}
}

func TestPitchClassName(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "C"},
		{1, "C#"},
		{9, "A"},
		{11, "B"},
		{-1, ""},
		{12, ""},
	}
	for _, tt := range tests {
		if got := PitchClassName(tt.in); got != tt.want {
			t.Errorf("PitchClassName(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestModeName(t *testing.T) {
	if got := ModeName(1); got != "major" {
		t.Errorf("ModeName(1) = %q", got)
	}
	if got := ModeName(0); got != "minor" {
		t.Errorf("ModeName(0) = %q", got)
	}
}

func TestCamelotDistribution(t *testing.T) {
	tracks := []crossfade.Track{
		{Camelot: "8A"}, {Camelot: "8A"}, {Camelot: "9B"},
	}
	ranked, counts := CamelotDistribution(tracks)
	if counts["8A"] != 2 || counts["9B"] != 1 {
		t.Errorf("counts = %v", counts)
	}
	if len(ranked) != 2 || ranked[0] != "8A" {
		t.Errorf("ranked = %v, want 8A first", ranked)
	}
}
