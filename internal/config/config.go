package config

import (
	"github.com/caarlos0/env/v11"

	"promo-ledger/internal/config/configs"
)

// Config aggregates all configuration sections for the application.
// Fields are populated from environment variables using the
// caarlos0/env library; nested structs are tagged with envPrefix so
// their fields are parsed with the given prefix. Use Load to construct
// a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the withdrawal-limit counter store.
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Funding tunes feasibility buffers and fee estimates.
	Funding configs.Funding `envPrefix:"FUNDING_"`

	// Provider configures the external payment processor.
	Provider configs.Provider `envPrefix:"PROVIDER_"`
}

// Load reads configuration from environment variables into a Config.
// All fields fall back to their declared defaults when no environment
// variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
