package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

/* Config is read from .env (toml) in the working directory and the environment
 * Environment variables win over the file, the file is optional
 */

type Config struct {
	Port              string        `mapstructure:"PORT"`
	ManagementAPIKey  string        `mapstructure:"MANAGEMENT_API_KEY"`
	EnvironmentID     string        `mapstructure:"ENVIRONMENT_ID"`
	ProjectID         string        `mapstructure:"PROJECT_ID"`
	ManagementBaseURL string        `mapstructure:"MANAGEMENT_BASE_URL"`
	ManagementTimeout time.Duration `mapstructure:"MANAGEMENT_TIMEOUT"`
	ProbeTimeout      time.Duration `mapstructure:"PROBE_TIMEOUT"`
	SimulatedLatency  time.Duration `mapstructure:"SIMULATED_LATENCY"`
	HostContextFile   string        `mapstructure:"HOST_CONTEXT_FILE"`
}

var defaults = map[string]any{
	"PORT":                "8080",
	"MANAGEMENT_API_KEY":  "",
	"ENVIRONMENT_ID":      "",
	"PROJECT_ID":          "",
	"MANAGEMENT_BASE_URL": "https://manage.kontent.ai",
	"MANAGEMENT_TIMEOUT":  "30s",
	"PROBE_TIMEOUT":       "30s",
	"SIMULATED_LATENCY":   "500ms",
	"HOST_CONTEXT_FILE":   "host.yaml",
}

func GetConfig() (*Config, error) {
	return load(viper.New(), ".")
}

func load(v *viper.Viper, dir string) (*Config, error) {
	v.SetConfigName(".env")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.AutomaticEnv()

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	err = v.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	if config.ProbeTimeout <= 0 {
		return nil, fmt.Errorf("PROBE_TIMEOUT must be positive, got %s", config.ProbeTimeout)
	}
	if config.SimulatedLatency < 0 {
		return nil, fmt.Errorf("SIMULATED_LATENCY must not be negative, got %s", config.SimulatedLatency)
	}
	return &config, nil
}
