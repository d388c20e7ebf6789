package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full service configuration, loaded from YAML with
// environment-variable overrides for deployment knobs.
type Config struct {
	Server struct {
		Port   int    `yaml:"port"`
		AppEnv string `yaml:"app_env"`
	} `yaml:"server"`

	Strips struct {
		ExpirySeconds int    `yaml:"expiry_seconds"`
		DebounceMS    int    `yaml:"debounce_ms"`
		CancelOnExit  *bool  `yaml:"cancel_on_exit"`
		SeedFile      string `yaml:"seed_file"`
	} `yaml:"strips"`

	Tracking struct {
		BaseURL          string `yaml:"base_url"`
		CacheSeconds     int    `yaml:"cache_seconds"`
		PollIntervalSecs int    `yaml:"poll_interval_seconds"`
		WatchAirport     string `yaml:"watch_airport"`
		WatchRadius      int    `yaml:"watch_radius_nm"`
	} `yaml:"tracking"`

	EventLog struct {
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
	} `yaml:"eventlog"`

	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		Password string `yaml:"password"`
	} `yaml:"redis"`
}

// Default returns the built-in configuration used when no file is supplied.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.AppEnv = "development"
	cfg.Strips.ExpirySeconds = 10
	cfg.Strips.DebounceMS = 500
	cfg.Tracking.BaseURL = "https://api.adsb.lol"
	cfg.Tracking.CacheSeconds = 2
	cfg.Tracking.PollIntervalSecs = 5
	cfg.Tracking.WatchAirport = "KBOS"
	cfg.Tracking.WatchRadius = 300
	cfg.EventLog.Driver = "sqlite"
	cfg.EventLog.DSN = "towerboard.db"
	cfg.Redis.Host = "localhost"
	cfg.Redis.Port = "6379"
	return cfg
}

// Load reads path (optional) over the defaults, then applies env overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	}

	applyEnv(cfg)

	if cfg.Strips.ExpirySeconds <= 0 {
		return nil, fmt.Errorf("strips.expiry_seconds must be positive, got %d", cfg.Strips.ExpirySeconds)
	}
	if cfg.Strips.DebounceMS <= 0 {
		return nil, fmt.Errorf("strips.debounce_ms must be positive, got %d", cfg.Strips.DebounceMS)
	}
	return cfg, nil
}

// Debounce returns the note-commit quiet window as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Strips.DebounceMS) * time.Millisecond
}

// PollInterval returns the aircraft poll cadence as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Tracking.PollIntervalSecs) * time.Second
}

// CancelOnExit resolves the optional flag: countdowns are cancelled when a
// strip leaves the terminal station unless configured otherwise.
func (c *Config) CancelOnExit() bool {
	if c.Strips.CancelOnExit == nil {
		return true
	}
	return *c.Strips.CancelOnExit
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Server.AppEnv = v
	}
	if v := os.Getenv("ADSB_BASE_URL"); v != "" {
		cfg.Tracking.BaseURL = v
	}
	if v := os.Getenv("EVENTLOG_DSN"); v != "" {
		cfg.EventLog.DSN = v
	}
	if v := os.Getenv("EVENTLOG_DRIVER"); v != "" {
		cfg.EventLog.Driver = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		cfg.Redis.Enabled = true
		cfg.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		cfg.Redis.Port = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("SEED_FILE"); v != "" {
		cfg.Strips.SeedFile = v
	}
}
