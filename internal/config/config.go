// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"wrapquote/core/pricing"
	"wrapquote/core/quote"
	"wrapquote/core/reference"
	"wrapquote/internal/errors"
	"wrapquote/internal/logging"
)

// Environment variables that override the file
const (
	EnvAddr      = "WRAPQUOTE_ADDR"
	EnvLogLevel  = "WRAPQUOTE_LOG_LEVEL"
	EnvLaborRate = "WRAPQUOTE_LABOR_RATE"
	EnvRateLimit = "WRAPQUOTE_RATE_LIMIT"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Shop contains the defaults every new job starts from
	Shop ShopConfig `json:"shop"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains HTTP API configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ShopConfig holds shop-wide job defaults. Percents are whole numbers.
type ShopConfig struct {
	LaborRate      decimal.Decimal `json:"labor_rate"`
	WastePercent   decimal.Decimal `json:"waste_percent"`
	RollWidth      int             `json:"roll_width"`
	Overhead       decimal.Decimal `json:"overhead"`
	DesignFee      decimal.Decimal `json:"design_fee"`
	Mode           string          `json:"mode"`
	Percent        decimal.Decimal `json:"percent"`
	DepositPercent decimal.Decimal `json:"deposit_percent"`
	VinylBrand     string          `json:"vinyl_brand"`
	PrintBrand     string          `json:"print_brand"`

	// VinylCostPerLF overrides the vinyl brand's hint when set
	VinylCostPerLF *decimal.Decimal `json:"vinyl_cost_per_lf,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// Explain shows the line item breakdown
	Explain bool `json:"explain"`

	// NoColor disables terminal colors
	NoColor bool `json:"no_color"`
}

// ServerConfig contains HTTP API settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// RateLimit is the sustained requests per second across all clients
	RateLimit float64 `json:"rate_limit"`

	// RateBurst is the token bucket size
	RateBurst int `json:"rate_burst"`

	// ServiceName names the tracing spans
	ServiceName string `json:"service_name"`

	// ShutdownTimeoutSeconds bounds graceful shutdown
	ShutdownTimeoutSeconds int `json:"shutdown_timeout_seconds"`

	// RequestTimeoutSeconds bounds a single request
	RequestTimeoutSeconds int `json:"request_timeout_seconds"`
}

// ShutdownTimeout returns the graceful shutdown bound
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

// RequestTimeout returns the per-request bound
func (s ServerConfig) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// Default returns a default configuration
func Default() *Config {
	vinylCost := decimal.NewFromInt(10)
	return &Config{
		Version: "1.0",
		Shop: ShopConfig{
			LaborRate:      decimal.NewFromInt(75),
			WastePercent:   decimal.NewFromInt(15),
			RollWidth:      int(reference.RollWidth54),
			Overhead:       decimal.NewFromInt(50),
			DesignFee:      decimal.NewFromInt(400),
			Mode:           string(pricing.ModeMargin),
			Percent:        decimal.NewFromInt(40),
			DepositPercent: decimal.NewFromInt(30),
			VinylBrand:     "3M_1080",
			PrintBrand:     "3M_IJ180",
			VinylCostPerLF: &vinylCost,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Server: ServerConfig{
			Addr:                   ":8080",
			RateLimit:              10,
			RateBurst:              20,
			ServiceName:            "wrapquote",
			ShutdownTimeoutSeconds: 10,
			RequestTimeoutSeconds:  30,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.wrapquote.json
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".wrapquote.json"
	}
	return filepath.Join(homeDir, ".wrapquote.json")
}

// Load loads configuration from a file, then applies .env and environment overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	config, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	if err := LoadDotEnv(); err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("failed to read "+path, err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Config("invalid config file "+path, err)
	}
	return config, nil
}

// LoadDotEnv loads variables from the given files (default .env) into the
// process environment. Missing files are skipped; existing variables win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Config("failed to load "+f, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from the environment
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLaborRate); v != "" {
		rate, err := decimal.NewFromString(v)
		if err != nil {
			return errors.Config(EnvLaborRate+" is not a number", err)
		}
		c.Shop.LaborRate = rate
	}
	if v := os.Getenv(EnvRateLimit); v != "" {
		limit, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Config(EnvRateLimit+" is not a number", err)
		}
		c.Server.RateLimit = limit
	}
	return nil
}

// Validate checks the shop defaults and server limits
func (c *Config) Validate() error {
	if _, err := c.Shop.Job(); err != nil {
		return errors.Config("invalid shop defaults", err)
	}
	switch c.Output.DefaultFormat {
	case "cli", "json":
	default:
		return errors.Config("invalid config", errors.InvalidCategory("output format", c.Output.DefaultFormat))
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.Config("invalid logging config", err)
	}
	if c.Server.RateLimit <= 0 || c.Server.RateBurst <= 0 {
		return errors.Config("invalid config", errors.Input("server rate limit and burst must be positive"))
	}
	return nil
}

// Job returns the job new quotes start from
func (s ShopConfig) Job() (quote.Job, error) {
	job := quote.DefaultJob()
	job.LaborRate = s.LaborRate
	job.WastePercent = s.WastePercent.Div(decimal.NewFromInt(100))
	job.RollWidth = reference.RollWidth(s.RollWidth)
	job.Overhead = s.Overhead
	job.DesignFee = s.DesignFee
	job.Mode = pricing.Mode(s.Mode)
	job.Percent = s.Percent.Div(decimal.NewFromInt(100))
	job.DepositPercent = s.DepositPercent
	job.VinylBrand = reference.VinylBrand(s.VinylBrand)
	job.PrintBrand = reference.PrintBrand(s.PrintBrand)
	job.VinylCostPerLinearFoot = s.VinylCostPerLF

	if err := job.Validate(); err != nil {
		return quote.Job{}, err
	}
	return job, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Config("failed to create "+dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Internal("failed to encode config", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Config("failed to write "+path, err)
	}
	return nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
