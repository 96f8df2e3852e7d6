package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DatabaseFile string `env:"TASKBOARD_DATABASE_FILE" envDefault:"taskboard.db"`

	JWTSecret string        `env:"TASKBOARD_JWT_SECRET"`
	Issuer    string        `env:"TASKBOARD_ISSUER"    envDefault:"taskboard"`
	TokenTTL  time.Duration `env:"TASKBOARD_TOKEN_TTL" envDefault:"24h"`

	Env       string `env:"ENV"        envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	Port                int           `env:"PORT"                  envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	CORSOrigins []string `env:"TASKBOARD_CORS_ORIGINS" envSeparator:","`
}

// LoadConfig reads configuration from the environment. The JWT secret is the
// only setting without a usable default; tokens signed with a guessable
// secret are forgeable.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("TASKBOARD_JWT_SECRET must be set")
	}

	return cfg, nil
}
