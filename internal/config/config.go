// Package config provides match configuration loading and validation for the CLI and the pipeline.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/schemas"
	rootschemas "github.com/nishachandar-bit/jd-resume-matcher/schemas"
)

// EnvPrefix prefixes every environment override, e.g. JDMATCH_PRESENCE_WEIGHT.
const EnvPrefix = "JDMATCH"

// Config is the match configuration. It can be loaded from a JSON or YAML file
// and overridden by JDMATCH_* environment variables and CLI flags.
type Config struct {
	// Scoring
	PresenceWeight float64 `mapstructure:"presence_weight" json:"presence_weight" validate:"gte=0.4,lte=0.9"` // Share of a skill score earned by presence alone
	StrictMatching *bool   `mapstructure:"strict_matching" json:"strict_matching,omitempty"`                 // Disables fuzzy matching; nil means true

	// Experience extraction
	ExperienceFallback string `mapstructure:"experience_fallback" json:"experience_fallback" validate:"oneof=global none"` // What to do when no years figure is near the skill
	Window             int    `mapstructure:"window" json:"window" validate:"gte=1"`                                      // Characters scanned on each side of a mention

	// Execution
	Workers     int           `mapstructure:"workers" json:"workers" validate:"gte=0"`           // Concurrent resumes; 0 means one per CPU
	EvalTimeout time.Duration `mapstructure:"eval_timeout" json:"eval_timeout" validate:"gte=0"` // Bound on one (resume, skill) evaluation; 0 disables it
	UseBrowser  bool          `mapstructure:"use_browser" json:"use_browser"`                    // Use headless browser for SPA job pages

	// Logging
	LogLevel  string `mapstructure:"log_level" json:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" json:"log_format" validate:"oneof=console json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PresenceWeight:     0.6,
		StrictMatching:     BoolPtr(true),
		ExperienceFallback: "global",
		Window:             120,
		Workers:            0,
		EvalTimeout:        2 * time.Second,
		LogLevel:           "info",
		LogFormat:          "console",
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("presence_weight", d.PresenceWeight)
	v.SetDefault("strict_matching", d.Strict())
	v.SetDefault("experience_fallback", d.ExperienceFallback)
	v.SetDefault("window", d.Window)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("eval_timeout", d.EvalTimeout)
	v.SetDefault("use_browser", d.UseBrowser)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
}

// Load builds the configuration from defaults, an optional file and the environment.
// An empty path skips the file. The result is validated.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		kind := configType(path)
		if err := validateFile(kind, data); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		v.SetConfigType(kind)
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func configType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

var fileSchema = schemas.NewLazy(rootschemas.MatchConfigFile, rootschemas.MatchConfig)

// validateFile checks the raw file against the match configuration schema.
func validateFile(kind string, data []byte) error {
	var doc any
	if kind == "yaml" {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse config YAML: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}
	if doc == nil {
		return nil
	}

	return fileSchema.ValidateValue(doc)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config error: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("'%s' must satisfy %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.PresenceWeight == 0 {
		result.PresenceWeight = defaults.PresenceWeight
	}
	if result.ExperienceFallback == "" {
		result.ExperienceFallback = defaults.ExperienceFallback
	}
	if result.Window == 0 {
		result.Window = defaults.Window
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.EvalTimeout == 0 {
		result.EvalTimeout = defaults.EvalTimeout
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	if result.StrictMatching == nil && defaults.StrictMatching != nil {
		result.StrictMatching = BoolPtr(*defaults.StrictMatching)
	}

	// UseBrowser defaults to false, so its zero value needs no merge

	return result
}

// Strict reports whether fuzzy matching is disabled. Unset means strict.
func (c *Config) Strict() bool {
	return c.StrictMatching == nil || *c.StrictMatching
}

// BoolPtr returns a pointer to v.
func BoolPtr(v bool) *bool {
	return &v
}

// LoadEnvFile loads the first .env found in the working directory or the module
// root. Variables already set in the environment are kept. Returns the loaded
// path, or "" when none was found.
func LoadEnvFile() string {
	candidates := []string{".env"}
	if root := findProjectRoot(); root != "" {
		candidates = append(candidates, filepath.Join(root, ".env"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err == nil {
			return path
		}
	}
	return ""
}

// findProjectRoot walks up from the working directory looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
