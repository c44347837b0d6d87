package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	BCB struct {
		BaseURL    string        `yaml:"base_url"`
		SeriesCode int           `yaml:"series_code"`
		Timeout    time.Duration `yaml:"timeout"`
		CacheTTL   time.Duration `yaml:"cache_ttl"`
	} `yaml:"bcb"`
	Forecast struct {
		Horizon    int     `yaml:"horizon"`
		AROrder    int     `yaml:"ar_order"`
		DiffOrder  int     `yaml:"diff_order"`
		MAOrder    int     `yaml:"ma_order"`
		Confidence float64 `yaml:"confidence"`
	} `yaml:"forecast"`
	Cache struct {
		Backend string `yaml:"backend"` // memory or redis
		Redis   struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("BCB_BASE_URL"); v != "" {
		c.BCB.BaseURL = v
	}
	if v := os.Getenv("BCB_SERIES_CODE"); v != "" {
		if code, err := strconv.Atoi(v); err == nil {
			c.BCB.SeriesCode = code
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		c.Cache.Backend = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		host, port, err := splitHostPort(v)
		if err == nil {
			c.Cache.Redis.Host = host
			c.Cache.Redis.Port = port
		}
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.BCB.BaseURL == "" {
		c.BCB.BaseURL = "https://api.bcb.gov.br/dados/serie"
	}
	if c.BCB.SeriesCode == 0 {
		c.BCB.SeriesCode = 433 // IPCA monthly variation (%)
	}
	if c.BCB.Timeout == 0 {
		c.BCB.Timeout = 10 * time.Second
	}
	if c.BCB.CacheTTL == 0 {
		c.BCB.CacheTTL = 10 * time.Minute
	}
	if c.Forecast.Horizon == 0 {
		c.Forecast.Horizon = 6
	}
	if c.Forecast.AROrder == 0 {
		c.Forecast.AROrder = 5
	}
	if c.Forecast.DiffOrder == 0 {
		c.Forecast.DiffOrder = 1
	}
	if c.Forecast.Confidence == 0 {
		c.Forecast.Confidence = 0.95
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "memory"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Cache.Backend != "memory" && c.Cache.Backend != "redis" {
		return fmt.Errorf("cache.backend must be 'memory' or 'redis', got '%s'", c.Cache.Backend)
	}
	if c.Forecast.Horizon < 1 {
		return fmt.Errorf("forecast.horizon must be at least 1")
	}
	if c.Forecast.AROrder < 0 || c.Forecast.DiffOrder < 0 || c.Forecast.MAOrder < 0 {
		return fmt.Errorf("forecast order terms cannot be negative")
	}
	if c.Forecast.Confidence <= 0 || c.Forecast.Confidence >= 1 {
		return fmt.Errorf("forecast.confidence must be in (0, 1)")
	}
	return nil
}

func splitHostPort(addr string) (string, int, error) {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			port, err := strconv.Atoi(addr[i+1:])
			if err != nil {
				return "", 0, fmt.Errorf("bad port in %q", addr)
			}
			return addr[:i], port, nil
		}
	}
	return "", 0, fmt.Errorf("missing port in %q", addr)
}
