package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the top-level application configuration.
type Config struct {
	// Addr is the listen address for the HTTP API.
	Addr string `mapstructure:"addr"`

	// DBPath is the SQLite database file path.
	DBPath string `mapstructure:"db_path"`

	// AuthRequired selects multi-tenant mode: every /api request must carry
	// a valid bearer token and rows are scoped to that account. When false
	// the server runs single-tenant and all rows share one anonymous owner.
	AuthRequired bool `mapstructure:"auth_required"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/lacak/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "lacak", "config.yaml")
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "lacak.db")
	}
	return filepath.Join(home, ".lacak", "lacak.db")
}

// Load reads configuration from the given YAML file using Viper. A missing
// file is not an error: defaults and LACAK_* environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("addr", ":8080")
	v.SetDefault("db_path", defaultDBPath())
	v.SetDefault("auth_required", false)

	v.SetEnvPrefix("LACAK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); !ok {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}
