package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// ConfigFileEnv names the environment variable that points at an optional
// YAML config file. Environment variables override values from the file.
const ConfigFileEnv = "WOOAHSIK_CONFIG"

const (
	DefaultDatabasePath = "data/woo-ah-sik.db"
	DefaultExportPath   = "data/exports"
	DefaultLogLevel     = "info"
)

// Config holds the configuration for the application.
type Config struct {
	DatabasePath string
	ExportPath   string
	LogLevel     string

	// PlanSeed fixes menu selection when set, making every run reproducible.
	PlanSeed *uint64
}

// NewFromEnv creates a new Config object from environment variables and the
// optional config file named by WOOAHSIK_CONFIG.
func NewFromEnv() (*Config, error) {
	return Load(os.Getenv(ConfigFileEnv))
}

// Load reads configuration from configFile (when not empty) and the
// environment.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("export_path", DefaultExportPath)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("plan_seed", "")

	for key, env := range map[string]string{
		"database_path": "DATABASE_PATH",
		"export_path":   "EXPORT_PATH",
		"log_level":     "LOG_LEVEL",
		"plan_seed":     "PLAN_SEED",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{
		DatabasePath: strings.TrimSpace(v.GetString("database_path")),
		ExportPath:   strings.TrimSpace(v.GetString("export_path")),
		LogLevel:     strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
	}

	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("DATABASE_PATH must not be empty")
	}
	if cfg.ExportPath == "" {
		return nil, fmt.Errorf("EXPORT_PATH must not be empty")
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", cfg.LogLevel)
	}

	if raw := strings.TrimSpace(v.GetString("plan_seed")); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("PLAN_SEED must be an unsigned integer: %w", err)
		}
		cfg.PlanSeed = &seed
	}

	return cfg, nil
}
