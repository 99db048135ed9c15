package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DatabaseURL string

	SpotifyID     string
	SpotifySecret string

	// DatasetPath is the default JSON track dataset for curated runs.
	DatasetPath string

	JWTSecret string

	// Retry knobs for the curate pipeline.
	MaxRetries int `default:"3"`
	BackoffMs  int `default:"500"`
}

func ProvideConfig() Config {
	var cfg Config
	err := envconfig.Process("crossfade", &cfg)
	if err != nil {
		log.Fatal(err.Error())
	}
	return cfg
}

var Options = ProvideConfig
