// Package config loads and stores digicarbon settings.
//
// Settings come from, in increasing precedence: built-in defaults, the YAML
// file at ~/.digicarbon/config.yaml (DIGICARBON_HOME overrides the
// directory), an optional overlay passed with --config, a .env file, and
// DIGICARBON_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by the config loader.
const (
	EnvHome          = "DIGICARBON_HOME"
	EnvLogLevel      = "DIGICARBON_LOG_LEVEL"
	EnvLogFormat     = "DIGICARBON_LOG_FORMAT"
	EnvOutput        = "DIGICARBON_OUTPUT"
	EnvPricePerTonne = "DIGICARBON_PRICE_PER_TONNE"
	EnvCurrency      = "DIGICARBON_CURRENCY"
)

// Defaults.
const (
	DefaultOutputFormat  = "table"
	DefaultPrecision     = 2
	DefaultCurrency      = "INR"
	DefaultPricePerTonne = 3000.0
	DefaultBatchSize     = 100
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"

	configFileName = "config.yaml"
	envFileName    = ".env"
	outputTypeFile = "file"
)

// Supported output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full set of digicarbon settings.
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
	Projection ProjectionConfig `yaml:"projection"`
	Research   ResearchConfig   `yaml:"research"`

	configPath string
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" validate:"oneof=table json"`
	Precision     int    `yaml:"precision" validate:"gte=0,lte=6"`
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
	File   string `yaml:"file,omitempty"`
}

// ProjectionConfig prices the annual footprint.
type ProjectionConfig struct {
	Currency      string  `yaml:"currency" validate:"omitempty,alpha,len=3"`
	PricePerTonne float64 `yaml:"price_per_tonne" validate:"gte=0"`
}

// ResearchConfig tunes batch aggregation. Zero concurrency means one
// worker per CPU.
type ResearchConfig struct {
	BatchSize   int    `yaml:"batch_size" validate:"gte=1,lte=1000"`
	Concurrency int    `yaml:"concurrency" validate:"gte=0"`
	RecordsFile string `yaml:"records_file,omitempty"`
}

// Defaults returns a Config holding only built-in defaults.
func Defaults() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
			Precision:     DefaultPrecision,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Projection: ProjectionConfig{
			Currency:      DefaultCurrency,
			PricePerTonne: DefaultPricePerTonne,
		},
		Research: ResearchConfig{
			BatchSize: DefaultBatchSize,
		},
	}
}

// New returns the defaults overlaid with the config file, .env and the
// environment. A missing or unreadable file leaves the defaults in place.
func New() *Config {
	cfg := Defaults()

	dir, err := GetConfigDir()
	if err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
		if _, statErr := os.Stat(cfg.configPath); statErr == nil {
			if loadErr := cfg.Load(); loadErr != nil {
				log := GetLogger()
				log.Warn().Err(loadErr).Str("path", cfg.configPath).Msg("ignoring unreadable config file")
			}
		}
		LoadDotEnv(filepath.Join(dir, envFileName))
	}
	LoadDotEnv(envFileName)

	cfg.ApplyEnv()
	return cfg
}

// ConfigPath returns where Save writes.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes where Load reads and Save writes.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Load replaces c's sections with the ones in the config file.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", c.configPath, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", c.configPath, err)
	}
	return nil
}

// Save writes c as YAML, creating the parent directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	return os.WriteFile(c.configPath, data, 0o600)
}

// ApplyEnv overrides settings from DIGICARBON_* variables. Unparsable
// numbers are logged and skipped.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output.DefaultFormat = strings.ToLower(v)
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		c.Projection.Currency = v
	}
	if v := os.Getenv(EnvPricePerTonne); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log := GetLogger()
			log.Warn().Err(err).Str("env", EnvPricePerTonne).Msg("ignoring invalid price")
		} else {
			c.Projection.PricePerTonne = price
		}
	}
}

// validate checks Config struct tags. Field names in errors use the YAML keys.
//
//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs = append(msgs, fmt.Sprintf("%s %v violates %s", field, fe.Value(), rule))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// LoadDotEnv loads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log := GetLogger()
		log.Warn().Err(err).Str("path", path).Msg("could not load env file")
	}
}
