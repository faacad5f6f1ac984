// Package config provides configuration management for the Soccer Bettor application.
package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Dataset  DatasetConfig  `mapstructure:"dataset" validate:"required"`
	Backtest BacktestConfig `mapstructure:"backtest" validate:"required"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	AWS      AWSConfig      `mapstructure:"aws"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DatabaseConfig represents database connection configuration. The database
// is optional: backtests run entirely in memory unless persistence is turned
// on, so the section only has to validate when enabled.
type DatabaseConfig struct {
	Enabled            bool   `mapstructure:"enabled"`
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name               string `mapstructure:"name"`
	User               string `mapstructure:"user"`
	Password           string `mapstructure:"password"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections" validate:"omitempty,gt=0"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections" validate:"omitempty,gt=0"`
}

// DatasetConfig represents historical match data source configuration
type DatasetConfig struct {
	BaseURL             string   `mapstructure:"base_url" validate:"required,url"`
	Leagues             []string `mapstructure:"leagues" validate:"required,min=1"`
	Seasons             []string `mapstructure:"seasons" validate:"required,min=1,seasons"`
	DataDir             string   `mapstructure:"data_dir" validate:"required"`
	TimeoutSeconds      int      `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	RetryAttempts       int      `mapstructure:"retry_attempts" validate:"gte=0"`
	RateLimitPerSecond  float64  `mapstructure:"rate_limit_per_second" validate:"required,gt=0"`
	CacheTTLSeconds     int      `mapstructure:"cache_ttl_seconds" validate:"required,gt=0"`
	CacheSweepSeconds   int      `mapstructure:"cache_sweep_seconds" validate:"required,gt=0"`
	MinMatchesPerSeason int      `mapstructure:"min_matches_per_season" validate:"gte=0"`
}

// BacktestConfig represents backtesting configuration
type BacktestConfig struct {
	ModelKind      string           `mapstructure:"model_kind" validate:"required,oneof=bettor multi_bettor"`
	Targets        []string         `mapstructure:"targets"`
	RiskFactors    []float64        `mapstructure:"risk_factors" validate:"required,min=1"`
	ParamGrid      map[string][]any `mapstructure:"param_grid"`
	NSplits        int              `mapstructure:"n_splits" validate:"required,gt=0"`
	TestFraction   float64          `mapstructure:"test_fraction" validate:"required,gt=0,lt=1"`
	NRuns          int              `mapstructure:"n_runs" validate:"required,gt=0"`
	NJobs          int              `mapstructure:"n_jobs"`
	Seed           int64            `mapstructure:"seed"`
	OutputPath     string           `mapstructure:"output_path" validate:"required"`
	PersistResults bool             `mapstructure:"persist_results"`
}

// ScheduleConfig represents periodic re-evaluation scheduling
type ScheduleConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	CronSpec string `mapstructure:"cron_spec"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Path    string `mapstructure:"path"`
}

// AWSConfig represents AWS Secrets Manager configuration
type AWSConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Region     string `mapstructure:"region"`
	SecretName string `mapstructure:"secret_name"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
