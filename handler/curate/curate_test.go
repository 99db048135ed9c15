package curate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mager/crossfade/config"
	"github.com/mager/crossfade/curator"
	"github.com/mager/crossfade/database"
	"github.com/mager/crossfade/dataset"
	"github.com/mager/crossfade/logger"
	"github.com/mager/crossfade/spotify"
)

func newHandler(t *testing.T) *CurateHandler {
	t.Helper()
	log, _ := logger.NewTestLogger()
	c := curator.NewCurator(log, config.Config{MaxRetries: 1, BackoffMs: 1},
		dataset.NewLoader(log), &spotify.SpotifyClient{}, database.NewRunStore(nil))
	return NewCurateHandler(log, c)
}

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracks.json")
	body := `[
		{"title": "A", "artist": "x", "tempo": 120, "key": "A", "mode": "minor", "energy": 0.8, "popularity": 95, "duration_ms": 200000},
		{"title": "B", "artist": "x", "tempo": 123, "key": "E", "mode": "minor", "energy": 0.85, "popularity": 80, "duration_ms": 210000}
	]`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCurateHandler(t *testing.T) {
	handler := newHandler(t)
	body := `{"dataset_path": "` + writeDataset(t) + `"}`

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/curate", strings.NewReader(body)))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}

	var result curator.Result
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(result.Sequence) != 2 {
		t.Errorf("sequence has %d tracks, want 2", len(result.Sequence))
	}
	if result.Report.Narrative == "" {
		t.Error("report narrative is empty")
	}
}

func TestCurateHandlerBadDataset(t *testing.T) {
	handler := newHandler(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`[{"title": "A", "tempo": -1, "key": "A", "mode": "minor", "energy": 0.5, "popularity": 50, "duration_ms": 1}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/curate", strings.NewReader(`{"dataset_path": "`+path+`"}`)))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestCurateHandlerMalformedBody(t *testing.T) {
	handler := newHandler(t)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/curate", strings.NewReader(`{`)))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}
