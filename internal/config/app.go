package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Frankfurter struct {
	BaseURL string `mapstructure:"base_url"`
}

// Dashboard holds the defaults applied when a request omits them.
type Dashboard struct {
	Base         string   `mapstructure:"base"`
	Symbols      []string `mapstructure:"symbols"`
	DefaultRange string   `mapstructure:"default_range"`
}

type Scheduler struct {
	CurrencySyncIntervalSec int `mapstructure:"currency_sync_interval_sec"`
}

type Cache struct {
	MaxItems   int64 `mapstructure:"max_items"`
	TTLSeconds int   `mapstructure:"ttl_seconds"`
}

type Logging struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type AppConfig struct {
	HTTPServer  HTTPServer  `mapstructure:"http_server"`
	DbServer    DbServer    `mapstructure:"db_server"`
	HTTPClient  HTTPClient  `mapstructure:"http_client"`
	Frankfurter Frankfurter `mapstructure:"frankfurter"`
	Dashboard   Dashboard   `mapstructure:"dashboard"`
	Scheduler   Scheduler   `mapstructure:"scheduler"`
	Cache       Cache       `mapstructure:"cache"`
	Logging     Logging     `mapstructure:"logging"`
}

const defaultConfigFile = "config.yaml"

// Init reads config.yaml (or $CONFIG_PATH) and applies environment overrides.
// A missing .env file is not an error.
func Init() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigFile
	}
	return Load(path)
}

// Load builds the config from the given yaml file on top of the defaults.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	bindEnv(v)

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	normalize(&cfg)

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_server.port", "8080")
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("frankfurter.base_url", "https://api.frankfurter.dev/v1")
	v.SetDefault("dashboard.base", "EUR")
	v.SetDefault("dashboard.symbols", []string{"USD", "CAD"})
	v.SetDefault("dashboard.default_range", "1y")
	v.SetDefault("scheduler.currency_sync_interval_sec", 3600)
	v.SetDefault("cache.max_items", 256)
	v.SetDefault("cache.ttl_seconds", 600)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.max_size_mb", 100)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age_days", 28)
}

func bindEnv(v *viper.Viper) {
	// http server env vars
	_ = v.BindEnv("http_server.port", "HTTP_PORT")

	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// http client env vars
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// upstream + dashboard env vars
	_ = v.BindEnv("frankfurter.base_url", "FRANKFURTER_BASE_URL")
	_ = v.BindEnv("dashboard.base", "DASHBOARD_BASE")
	_ = v.BindEnv("dashboard.default_range", "DASHBOARD_DEFAULT_RANGE")

	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("logging.file", "LOG_FILE")
}

func normalize(cfg *AppConfig) {
	cfg.Frankfurter.BaseURL = strings.TrimSuffix(cfg.Frankfurter.BaseURL, "/")
	cfg.Dashboard.Base = strings.ToUpper(strings.TrimSpace(cfg.Dashboard.Base))
	symbols := make([]string, 0, len(cfg.Dashboard.Symbols))
	for _, s := range cfg.Dashboard.Symbols {
		if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
			symbols = append(symbols, s)
		}
	}
	cfg.Dashboard.Symbols = symbols
}
