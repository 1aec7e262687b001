package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full application configuration, loaded from
// config/config.yaml with environment overrides for deploy-time values.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auction  AuctionConfig  `mapstructure:"auction"`
	Poll     PollConfig     `mapstructure:"poll"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int    `mapstructure:"port"` // listening port
	Mode string `mapstructure:"mode"` // gin mode: debug/release/test
}

// DatabaseConfig holds connection settings for the auction store. An empty
// DSN selects an SQLite file under DataDir; a postgres:// DSN selects the
// hosted database.
type DatabaseConfig struct {
	DSN               string        `mapstructure:"dsn"`
	DataDir           string        `mapstructure:"data_dir"`
	MaxOpenConns      int           `mapstructure:"max_open_conns"`
	MaxIdleConns      int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime   time.Duration `mapstructure:"conn_max_lifetime"`
	ConnectRetries    int           `mapstructure:"connect_retries"`
	ConnectRetryDelay time.Duration `mapstructure:"connect_retry_delay"`
}

// AuctionConfig holds event-level settings.
type AuctionConfig struct {
	// DefaultDuration is how far in the future the auction end time is set
	// when the settings row is first seeded.
	DefaultDuration time.Duration `mapstructure:"default_duration"`
}

// PollConfig holds poll maintenance settings.
type PollConfig struct {
	ResetCron string `mapstructure:"reset_cron"` // cron spec for the daily vote reset
}

// LoadConfig reads config/config.yaml (optional), applies defaults, and then
// overrides deploy-time values from the environment. A missing config file
// is not an error; missing env vars fall back to the file/defaults.
func LoadConfig() (*Config, error) {
	// .env may not exist; env vars set by the platform still apply
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 5000)
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("database.dsn", "")
	viper.SetDefault("database.data_dir", ".")
	viper.SetDefault("database.max_open_conns", 20)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", time.Hour)
	viper.SetDefault("database.connect_retries", 5)
	viper.SetDefault("database.connect_retry_delay", 2*time.Second)
	viper.SetDefault("auction.default_duration", 72*time.Hour)
	viper.SetDefault("poll.reset_cron", "0 0 * * *")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// overrideFromEnv applies deploy-time environment overrides (env > yaml).
func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.Server.Mode = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Database.DataDir = v
	}
}
