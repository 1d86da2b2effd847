package core

import (
	"context"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the deployment-time settings: where the API server
// lives, where public assets are served from, and where the session
// record is kept.
type Config struct {
	APIServer   string `envconfig:"API_SERVER" default:"http://localhost:8080"`
	AssetServer string `envconfig:"ASSET_SERVER"`
	SessionFile string `envconfig:"SESSION_FILE"`
}

func (c *Config) Init(_ context.Context) error {
	return envconfig.Process("socialite", c)
}
