package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Storage StorageConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.API.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SPIKEMATE_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"SPIKEMATE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SPIKEMATE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// APIConfig locates the Spikemate REST backend.
type APIConfig struct {
	BaseURL string        `envconfig:"SPIKEMATE_API_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"SPIKEMATE_API_TIMEOUT" default:"10s"`
}

func (a APIConfig) validate() error {
	if strings.TrimSpace(a.BaseURL) == "" {
		return fmt.Errorf("%s is required", EnvAPIBaseURL)
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("%s must be positive", EnvAPITimeout)
	}
	return nil
}

// StorageConfig locates the on-device database backing the key-value store.
type StorageConfig struct {
	Path string `envconfig:"SPIKEMATE_STORAGE_PATH" default:"spikemate.db"`
}
