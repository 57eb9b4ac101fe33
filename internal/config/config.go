// Package config loads runtime settings from viper. Values come from
// .tnguide.yaml, TNGUIDE_* environment variables and CLI flags, in
// increasing order of precedence, on top of the defaults set here.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/papapumpkin/tnguide/internal/logging"
)

// EnvPrefix is the prefix of environment variables read by viper.
const EnvPrefix = "TNGUIDE"

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("invalid configuration")

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
	// File receives log records. Empty means stderr for one-shot commands
	// and nowhere while the TUI runs.
	File string `mapstructure:"file"`
}

// Config holds all runtime configuration for the guide.
type Config struct {
	// CatalogPath is a TOML catalog file. Empty means the embedded catalog.
	CatalogPath     string        `mapstructure:"catalog_path"`
	DefaultRegion   string        `mapstructure:"default_region"`
	SuggestionLimit int           `mapstructure:"suggestion_limit" validate:"gte=0"`
	DetailDelay     time.Duration `mapstructure:"detail_delay" validate:"gte=0s"`
	NoticeTTL       time.Duration `mapstructure:"notice_ttl" validate:"gt=0s"`
	// TelemetryPath is a JSONL event file. Empty disables telemetry.
	TelemetryPath string    `mapstructure:"telemetry_path"`
	Strict        bool      `mapstructure:"strict"`
	LightMode     bool      `mapstructure:"light_mode"`
	Log           LogConfig `mapstructure:"log"`
}

// SetDefaults registers the built-in defaults with viper.
func SetDefaults() {
	viper.SetDefault("catalog_path", "")
	viper.SetDefault("default_region", "")
	viper.SetDefault("suggestion_limit", 8)
	viper.SetDefault("detail_delay", 350*time.Millisecond)
	viper.SetDefault("notice_ttl", 3*time.Second)
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("strict", false)
	viper.SetDefault("light_mode", false)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", logging.FormatConsole)
	viper.SetDefault("log.file", "")
}

// BindEnv maps TNGUIDE_* variables onto config keys; nested keys use
// underscores, so TNGUIDE_LOG_LEVEL sets log.level.
func BindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	SetDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	var problems []string
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		var ves validator.ValidationErrors
		if !errors.As(err, &ves) {
			return fmt.Errorf("config: validate: %w", err)
		}
		for _, fe := range ves {
			problems = append(problems, fmt.Sprintf("%s=%v fails %s", fe.Namespace(), fe.Value(), fe.Tag()))
		}
	}
	if !logging.ValidLevel(c.Log.Level) {
		problems = append(problems, fmt.Sprintf("Config.Log.Level=%q is not a log level", c.Log.Level))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
