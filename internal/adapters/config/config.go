package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"waypoint/pkg/errors"
)

type Config struct {
	App           AppConfig
	Maps          MapsConfig
	Agent         AgentConfig
	Metrics       MetricsConfig
	ErrorTracking ErrorTrackingConfig
}

type AppConfig struct {
	Name     string `envconfig:"APP_NAME" default:"waypoint"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// MapsConfig configures the upstream Google Maps client. The API key is the
// only credential the system holds.
type MapsConfig struct {
	APIKey string `envconfig:"GOOGLE_MAPS_API_KEY" required:"true"`
	// Language for upstream results, e.g. "en", "ja"
	Language string `envconfig:"MAPS_LANGUAGE" default:"en"`
	// MaxResults caps the number of entries a search tool returns
	MaxResults int `envconfig:"MAPS_MAX_RESULTS" default:"5"`
	// QPS limits client-side request rate; 0 disables the limiter
	QPS float64 `envconfig:"MAPS_QPS" default:"10"`
}

type AgentConfig struct {
	GeminiAPIKey string `envconfig:"GOOGLE_API_KEY"`
	Model        string `envconfig:"AGENT_MODEL" default:"gemini-2.5-flash"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"false"`
	Addr    string `envconfig:"METRICS_ADDR" default:":9090"`
}

type ErrorTrackingConfig struct {
	Enabled     bool   `envconfig:"ERROR_TRACKING_ENABLED" default:"false"`
	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"SENTRY_ENVIRONMENT" default:"production"`
}

// Load reads configuration from the environment, preferring a local .env
// file when present.
func Load() (*Config, error) {
	// .env is optional; real deployments set variables directly
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "process environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks constraints envconfig tags cannot express.
func (c *Config) Validate() error {
	if c.Maps.MaxResults <= 0 {
		return errors.Newf("MAPS_MAX_RESULTS must be positive, got %d", c.Maps.MaxResults)
	}
	if c.Maps.QPS < 0 {
		return errors.Newf("MAPS_QPS must not be negative, got %f", c.Maps.QPS)
	}
	if c.ErrorTracking.Enabled && c.ErrorTracking.SentryDSN == "" {
		return errors.New("SENTRY_DSN is required when error tracking is enabled")
	}
	return nil
}
