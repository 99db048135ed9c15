package spotify

import (
	"context"
	"fmt"

	spot "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/mager/crossfade/config"
	"github.com/mager/crossfade/crossfade"
	"github.com/mager/crossfade/dataset"
	"github.com/mager/crossfade/util"
)

// SpotifyClient wraps the Spotify web API client used to pull playlist
// tracks and their audio features.
type SpotifyClient struct {
	Client *spot.Client
	ID     string
	Secret string
}

// ProvideSpotify provides a client-credentials Spotify client. With no
// credentials configured the wrapper is returned unconnected; the health
// handler reports that state.
func ProvideSpotify(cfg config.Config, log *zap.SugaredLogger) *SpotifyClient {
	c := SpotifyClient{ID: cfg.SpotifyID, Secret: cfg.SpotifySecret}

	if cfg.SpotifyID == "" || cfg.SpotifySecret == "" {
		log.Warn("spotify credentials not configured, playlist ingestion disabled")
		return &c
	}

	creds := &clientcredentials.Config{
		ClientID:     cfg.SpotifyID,
		ClientSecret: cfg.SpotifySecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	c.Client = spot.New(creds.Client(context.Background()))
	log.Info("spotify client ready")
	return &c
}

var Options = ProvideSpotify

// FetchPlaylistTracks pulls a playlist's tracks with their audio
// features and maps them to sequencing tracks. Unavailable playlist
// items are skipped, mirroring how removed tracks come back from the
// API as empty entries.
func (c *SpotifyClient) FetchPlaylistTracks(ctx context.Context, playlistID string) ([]crossfade.Track, error) {
	if c.Client == nil {
		return nil, fmt.Errorf("spotify: client not configured")
	}

	page, err := c.Client.GetPlaylistItems(ctx, spot.ID(playlistID))
	if err != nil {
		return nil, fmt.Errorf("spotify: get playlist %s: %w", playlistID, err)
	}

	var full []*spot.FullTrack
	var ids []spot.ID
	for _, item := range page.Items {
		if item.Track.Track == nil || item.Track.Track.ID == "" {
			continue
		}
		full = append(full, item.Track.Track)
		ids = append(ids, item.Track.Track.ID)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: playlist %s has no playable tracks", crossfade.ErrInvalidInput, playlistID)
	}

	features, err := c.Client.GetAudioFeatures(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("spotify: get audio features: %w", err)
	}

	tracks := make([]crossfade.Track, 0, len(full))
	for i, ft := range full {
		var feat *spot.AudioFeatures
		if i < len(features) {
			feat = features[i]
		}
		if feat == nil {
			continue
		}
		tracks = append(tracks, crossfade.Track{
			Title:      ft.Name,
			Artist:     util.GetFirstArtist(ft.Artists),
			Tempo:      float64(feat.Tempo),
			Key:        util.PitchClassName(int(feat.Key)),
			Mode:       util.ModeName(int(feat.Mode)),
			Energy:     float64(feat.Energy),
			Popularity: int(ft.Popularity),
			DurationMs: int(ft.Duration),
		})
	}

	enriched, err := dataset.Enrich(tracks)
	if err != nil {
		return nil, err
	}
	if err := crossfade.ValidateAll(enriched); err != nil {
		return nil, err
	}
	return enriched, nil
}
