package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Pipeflow"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"pipeflow"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		// HS256 secret shared with the identity service that issues
		// the bearer tokens. Verification only; no tokens are minted here.
		JWTSecret string `envconfig:"JWT_SECRET"`
	}

	TUI struct {
		// The operator terminal runs inside one business; these stand in
		// for the bearer token the HTTP API extracts its scope from.
		BusinessID string `envconfig:"TUI_BUSINESS_ID"`
		EmployeeID string `envconfig:"TUI_EMPLOYEE_ID"`
	}

	Checkout struct {
		// Defaults applied when a business carries no tax settings of its own.
		TaxEnabled     bool    `envconfig:"TAX_ENABLED" default:"false"`
		TaxRatePercent float64 `envconfig:"TAX_RATE_PERCENT" default:"0"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
