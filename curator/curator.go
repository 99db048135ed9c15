// Package curator runs the full curation pipeline: load tracks,
// sequence them, summarize the result, record the run.
//
// Retries live only here. Each step gets a bounded exponential backoff,
// except that validation failures are permanent and fail immediately.
// The core packages never retry internally and are safe to re-invoke
// with identical results.
package curator

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mager/crossfade/analysis"
	"github.com/mager/crossfade/config"
	"github.com/mager/crossfade/crossfade"
	"github.com/mager/crossfade/database"
	"github.com/mager/crossfade/dataset"
	"github.com/mager/crossfade/scoring"
	"github.com/mager/crossfade/sequence"
	"github.com/mager/crossfade/spotify"
)

// Request selects the track source and sequencing options for one run.
type Request struct {
	// DatasetPath points at a JSON track dataset. Used when PlaylistID
	// is empty; empty means the configured default dataset.
	DatasetPath string `json:"dataset_path"`
	// PlaylistID selects a Spotify playlist as the source instead.
	PlaylistID string `json:"playlist_id"`
	// SeedIndex optionally forces the opening track.
	SeedIndex *int `json:"seed_index"`
	// Weights optionally overrides the scoring weights.
	Weights *scoring.Weights `json:"weights"`
}

// Result is everything one curated run produced.
type Result struct {
	Sequence   []crossfade.Track   `json:"sequence"`
	Report     crossfade.SetReport `json:"report"`
	Comparison analysis.Comparison `json:"comparison"`
	RunID      int64               `json:"run_id,omitempty"`
}

// Progress is the externally readable snapshot of a running curation.
// The curator updates it between steps; nothing inside the core touches it.
type Progress struct {
	Step       string    `json:"step"`
	Status     string    `json:"status"`
	StartedAt  time.Time `json:"started_at"`
	ElapsedMs  int64     `json:"elapsed_ms"`
	TrackCount int       `json:"track_count"`
	Done       bool      `json:"done"`
}

// Curator wires the loaders, the core and the run store together.
type Curator struct {
	log     *zap.SugaredLogger
	loader  *dataset.Loader
	spotify *spotify.SpotifyClient
	store   *database.RunStore

	defaultDataset string
	maxRetries     int
	baseBackoff    time.Duration

	mu       sync.Mutex
	progress Progress
}

// NewCurator builds a Curator from the configured dependencies.
func NewCurator(
	log *zap.SugaredLogger,
	cfg config.Config,
	loader *dataset.Loader,
	spotifyClient *spotify.SpotifyClient,
	store *database.RunStore,
) *Curator {
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	backoff := time.Duration(cfg.BackoffMs) * time.Millisecond
	if backoff <= 0 {
		backoff = 500 * time.Millisecond
	}
	return &Curator{
		log:            log,
		loader:         loader,
		spotify:        spotifyClient,
		store:          store,
		defaultDataset: cfg.DatasetPath,
		maxRetries:     maxRetries,
		baseBackoff:    backoff,
	}
}

var Options = NewCurator

// Progress returns the current snapshot.
func (c *Curator) Progress() Progress {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := c.progress
	if !p.StartedAt.IsZero() && !p.Done {
		p.ElapsedMs = time.Since(p.StartedAt).Milliseconds()
	}
	return p
}

func (c *Curator) setProgress(update func(*Progress)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	update(&c.progress)
	if !c.progress.StartedAt.IsZero() {
		c.progress.ElapsedMs = time.Since(c.progress.StartedAt).Milliseconds()
	}
}

// Curate runs the full pipeline for one request.
func (c *Curator) Curate(ctx context.Context, req Request) (Result, error) {
	started := time.Now()
	c.setProgress(func(p *Progress) {
		*p = Progress{Step: "load", Status: "loading tracks", StartedAt: started}
	})

	source := req.DatasetPath
	if source == "" {
		source = c.defaultDataset
	}
	if req.PlaylistID != "" {
		source = "spotify:" + req.PlaylistID
	}

	var tracks []crossfade.Track
	err := c.withRetry(ctx, "load", func() error {
		var loadErr error
		if req.PlaylistID != "" {
			tracks, loadErr = c.spotify.FetchPlaylistTracks(ctx, req.PlaylistID)
		} else {
			path := req.DatasetPath
			if path == "" {
				path = c.defaultDataset
			}
			tracks, loadErr = c.loader.Load(path)
		}
		return loadErr
	})
	if err != nil {
		c.fail("load", err)
		return Result{}, err
	}

	c.setProgress(func(p *Progress) {
		p.Step = "sequence"
		p.Status = "sequencing tracks"
		p.TrackCount = len(tracks)
	})

	var seq []crossfade.Track
	err = c.withRetry(ctx, "sequence", func() error {
		var buildErr error
		seq, buildErr = sequence.Build(tracks, sequence.Options{SeedIndex: req.SeedIndex, Weights: req.Weights})
		return buildErr
	})
	if err != nil {
		c.fail("sequence", err)
		return Result{}, err
	}

	c.setProgress(func(p *Progress) {
		p.Step = "summarize"
		p.Status = "generating justifications"
	})

	var report crossfade.SetReport
	var comparison analysis.Comparison
	err = c.withRetry(ctx, "summarize", func() error {
		var sumErr error
		report, sumErr = analysis.Summarize(seq)
		if sumErr != nil {
			return sumErr
		}
		comparison, sumErr = analysis.Compare(sequence.BuildByTempo(tracks), seq)
		return sumErr
	})
	if err != nil {
		c.fail("summarize", err)
		return Result{}, err
	}

	result := Result{Sequence: seq, Report: report, Comparison: comparison}

	// Run history is best-effort; a storage failure never fails the run.
	runID, err := c.store.Save(ctx, database.Run{
		Source:             source,
		TrackCount:         len(seq),
		AvgTransitionScore: report.Metrics.AvgTransitionScore,
		HarmonicViolations: report.Metrics.HarmonicViolations,
		CreatedAt:          time.Now().UTC(),
	})
	if err != nil {
		c.log.Warnw("failed to record run", "error", err)
	} else {
		result.RunID = runID
	}

	c.setProgress(func(p *Progress) {
		p.Step = "done"
		p.Status = "complete"
		p.Done = true
	})
	c.log.Infow("curated set",
		"source", source,
		"tracks", len(seq),
		"avg_score", report.Metrics.AvgTransitionScore,
		"violations", report.Metrics.HarmonicViolations,
	)
	return result, nil
}

func (c *Curator) fail(step string, err error) {
	c.setProgress(func(p *Progress) {
		p.Step = step
		p.Status = "failed: " + err.Error()
		p.Done = true
	})
}
