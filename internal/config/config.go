package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresUser   string `toml:"postgres_user"`
	PostgresDBName string `toml:"postgres_db_name"`
	RunMigrations  bool   `toml:"run_migrations"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// auth
	LoginRateLimitAllowedPerMin int    `toml:"login_rate_limit_allowed_per_min"`
	LoginSessionTTL             string `toml:"login_session_ttl"`
	// web frontend, used for redirects after oauth flows
	FrontendURL string `toml:"frontend_url"`
	// google calendar
	GCalSyncEnabled    bool   `toml:"gcal_sync_enabled"`
	GCalSyncInterval   string `toml:"gcal_sync_interval"`
	GCalSyncWindowDays int    `toml:"gcal_sync_window_days"`
	// stocks
	AlphaVantageBaseURL        string `toml:"alpha_vantage_base_url"`
	TwelveDataBaseURL          string `toml:"twelve_data_base_url"`
	AlphaVantageRequestsPerMin int    `toml:"alpha_vantage_requests_per_min"`
	TwelveDataRequestsPerMin   int    `toml:"twelve_data_requests_per_min"`
}

type Toml struct {
	Development *Config
	Production  *Config
	DockerDev   *Config `toml:"dockerdev"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "ddev", "dockerdev":
		cfg = t.DockerDev
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not found", env)
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	return cfg, nil
}

// Load reads the TOML config file and returns the section for the given env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config for env [%s]: %w", env, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if _, err := c.LoginSessionTTLDuration(); err != nil {
		return err
	}
	if _, err := c.GCalSyncIntervalDuration(); err != nil {
		return err
	}
	return nil
}

func (c *Config) LoginSessionTTLDuration() (time.Duration, error) {
	return parseDurationOr(c.LoginSessionTTL, 7*24*time.Hour)
}

func (c *Config) GCalSyncIntervalDuration() (time.Duration, error) {
	return parseDurationOr(c.GCalSyncInterval, 15*time.Minute)
}

func parseDurationOr(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("parse duration [%s]: %w", s, err)
	}
	return d, nil
}
