package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"FXBridge/internal/calculator"
	"FXBridge/internal/collector"
	"FXBridge/internal/model"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Feed struct {
		URL            string `yaml:"url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"feed"`
	Pair struct {
		Base      string `yaml:"base"`
		Quote     string `yaml:"quote"`
		Reference string `yaml:"reference"`
	} `yaml:"pair"`
	Fill struct {
		Window     int `yaml:"window"`
		MinPeriods int `yaml:"min_periods"`
	} `yaml:"fill"`
	Output struct {
		CSVPath     string `yaml:"csv_path"`
		SummaryRows int    `yaml:"summary_rows"`
	} `yaml:"output"`
	Charts struct {
		PDFPath  string `yaml:"pdf_path"`
		XLSXPath string `yaml:"xlsx_path"`
	} `yaml:"charts"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("FEED_URL"); v != "" {
		cfg.Feed.URL = v
	}
	if v := os.Getenv("FETCH_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Feed.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("PAIR_BASE"); v != "" {
		cfg.Pair.Base = v
	}
	if v := os.Getenv("PAIR_QUOTE"); v != "" {
		cfg.Pair.Quote = v
	}
	if v := os.Getenv("PAIR_REFERENCE"); v != "" {
		cfg.Pair.Reference = v
	}
	if v := os.Getenv("FILL_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Fill.Window = n
		}
	}
	if v := os.Getenv("FILL_MIN_PERIODS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Fill.MinPeriods = n
		}
	}
	if v := os.Getenv("OUTPUT_CSV"); v != "" {
		cfg.Output.CSVPath = v
	}
	if v := os.Getenv("CHART_PDF"); v != "" {
		cfg.Charts.PDFPath = v
	}
	if v := os.Getenv("CHART_XLSX"); v != "" {
		cfg.Charts.XLSXPath = v
	}
	if v := os.Getenv("SCHEDULE_CRON"); v != "" {
		cfg.Schedule.Cron = v
	}

	// Defaults
	if cfg.Feed.URL == "" {
		cfg.Feed.URL = collector.DefaultECBURL
	}
	if cfg.Feed.TimeoutSeconds == 0 {
		cfg.Feed.TimeoutSeconds = 60
	}
	cfg.Pair.Base = strings.ToUpper(strings.TrimSpace(cfg.Pair.Base))
	cfg.Pair.Quote = strings.ToUpper(strings.TrimSpace(cfg.Pair.Quote))
	cfg.Pair.Reference = strings.ToUpper(strings.TrimSpace(cfg.Pair.Reference))
	if cfg.Pair.Base == "" {
		cfg.Pair.Base = "USD"
	}
	if cfg.Pair.Quote == "" {
		cfg.Pair.Quote = "ZAR"
	}
	if cfg.Pair.Reference == "" {
		cfg.Pair.Reference = "EUR"
	}
	if cfg.Fill.Window == 0 {
		cfg.Fill.Window = calculator.DefaultFillPolicy.Window
	}
	if cfg.Fill.MinPeriods == 0 {
		cfg.Fill.MinPeriods = min(calculator.DefaultFillPolicy.MinPeriods, cfg.Fill.Window)
	}
	if cfg.Output.CSVPath == "" {
		cfg.Output.CSVPath = cfg.TradingPair().Label() + "_ExchangeRates.csv"
	}
	if cfg.Output.SummaryRows == 0 {
		cfg.Output.SummaryRows = 5
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Feed.URL == "" {
		return fmt.Errorf("feed.url is required")
	}
	if c.Feed.TimeoutSeconds <= 0 {
		return fmt.Errorf("feed.timeout_seconds must be positive")
	}
	if c.Pair.Base == c.Pair.Quote {
		return fmt.Errorf("pair.base and pair.quote must differ, both are %s", c.Pair.Base)
	}
	if c.Pair.Base == c.Pair.Reference || c.Pair.Quote == c.Pair.Reference {
		return fmt.Errorf("pair currencies must differ from the reference currency %s", c.Pair.Reference)
	}
	if err := c.FillPolicy().Validate(); err != nil {
		return err
	}
	if c.Output.CSVPath == "" {
		return fmt.Errorf("output.csv_path is required")
	}
	if c.Output.SummaryRows < 0 {
		return fmt.Errorf("output.summary_rows must not be negative")
	}
	return nil
}

// TradingPair returns the configured currency pair.
func (c *Config) TradingPair() model.Pair {
	return model.Pair{Base: c.Pair.Base, Quote: c.Pair.Quote, Reference: c.Pair.Reference}
}

// FillPolicy returns the configured gap-fill policy.
func (c *Config) FillPolicy() calculator.FillPolicy {
	return calculator.FillPolicy{Window: c.Fill.Window, MinPeriods: c.Fill.MinPeriods}
}

// FetchTimeout returns the HTTP timeout for the feed request.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Feed.TimeoutSeconds) * time.Second
}
