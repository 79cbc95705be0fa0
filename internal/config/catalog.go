// Package config loads the catalog CLI configuration from defaults, an
// optional YAML file and CATALOG_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/tracing"
)

// ErrConfigNotFound is returned by NewViper when the named config file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// EnvPrefix is prepended to every environment variable, e.g. CATALOG_LOG_LEVEL.
const EnvPrefix = "CATALOG"

// CatalogConfig holds the configuration of the catalog CLI.
type CatalogConfig struct {
	Log     LogConfig     `mapstructure:"log"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Seed    SeedConfig    `mapstructure:"seed"`
	Output  string        `mapstructure:"output"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Default: "warn"
	Level string `mapstructure:"level"`
	// Format is "json" or "text". Default: "text"
	Format string `mapstructure:"format"`
}

// TracingConfig holds OpenTelemetry settings.
type TracingConfig struct {
	// Enabled installs an SDK tracer provider. Default: false
	Enabled bool `mapstructure:"enabled"`
	// Exporter is "stdout" or "none". Default: "stdout"
	Exporter string `mapstructure:"exporter"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	// Enabled dumps the collected metrics to stderr on exit. Default: false
	Enabled bool `mapstructure:"enabled"`
}

// SeedConfig selects the seed document.
type SeedConfig struct {
	// Path of a YAML seed file. Empty selects the embedded demonstration seed.
	Path string `mapstructure:"path"`
}

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Defaults returns the configuration used when nothing is set.
func Defaults() CatalogConfig {
	return CatalogConfig{
		Log:     LogConfig{Level: "warn", Format: logging.FormatText},
		Tracing: TracingConfig{Enabled: false, Exporter: tracing.ExporterStdout},
		Output:  OutputText,
	}
}

// NewViper returns a viper instance with defaults and environment binding set
// up. When configFile is not empty it is read as YAML.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	d := Defaults()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("seed.path", d.Seed.Path)
	v.SetDefault("output", d.Output)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return nil, fmt.Errorf("%s: %w", configFile, ErrConfigNotFound)
		}
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}
	return v, nil
}

// LoadCatalogConfig unmarshals and validates the configuration held by v.
func LoadCatalogConfig(v *viper.Viper) (*CatalogConfig, error) {
	var cfg CatalogConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks configuration correctness.
func (c *CatalogConfig) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q must be one of debug, info, warn, error", c.Log.Level)
	}

	if c.Log.Format != logging.FormatJSON && c.Log.Format != logging.FormatText {
		return fmt.Errorf("log.format %q must be %q or %q", c.Log.Format, logging.FormatJSON, logging.FormatText)
	}

	if c.Tracing.Exporter != tracing.ExporterStdout && c.Tracing.Exporter != tracing.ExporterNone {
		return fmt.Errorf("tracing.exporter %q must be %q or %q", c.Tracing.Exporter, tracing.ExporterStdout, tracing.ExporterNone)
	}

	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("output %q must be %q or %q", c.Output, OutputText, OutputJSON)
	}

	return nil
}
