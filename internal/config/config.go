package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env      string   `mapstructure:"env"`       // current application environment (local, dev, production etc)
	LogLevel string   `mapstructure:"log_level"` // overrides the environment's default log level when set
	Quran    Quran    `mapstructure:"quran"`     // remote scripture API section
	DB       DB       `mapstructure:"database"`  // database configuration section
	Telegram Telegram `mapstructure:"telegram"`  // bot section
	Daily    Daily    `mapstructure:"daily"`     // daily ayah broadcast section
	HTTP     HTTP     `mapstructure:"http"`      // JSON API section
}

// Quran contains settings of the scripture API client.
type Quran struct {
	BaseURL            string        `mapstructure:"base_url"`            // API root, e.g. https://api.alquran.cloud/v1
	SourceEdition      string        `mapstructure:"source_edition"`      // Arabic text edition
	TranslationEdition string        `mapstructure:"translation_edition"` // default translation edition
	Reciter            string        `mapstructure:"reciter"`             // default audio edition
	Timeout            time.Duration `mapstructure:"timeout"`             // per-request timeout
	UserAgent          string        `mapstructure:"user_agent"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Telegram contains bot settings.
type Telegram struct {
	Token           string `mapstructure:"-"`                 // Telegram API token loaded from environment
	Debug           bool   `mapstructure:"debug"`             // log raw bot API traffic
	AyahsPerMessage int    `mapstructure:"ayahs_per_message"` // page size when reading long surahs
}

// Daily contains the daily ayah schedule.
type Daily struct {
	Enabled       bool   `mapstructure:"enabled"`
	Schedule      string `mapstructure:"schedule"`       // cron spec evaluated in UTC
	MaxConcurrent int    `mapstructure:"max_concurrent"` // parallel sends per broadcast
}

// HTTP contains JSON API settings.
type HTTP struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Validate checks that the bot token is present.
func (t Telegram) Validate() error {
	if t.Token == "" {
		return ErrMissingEnvironmentVariables
	}
	return nil
}

// Load reads configuration from config files and environment variables.
// Secrets are not required here; each binary checks the ones it needs.
func Load() (*Config, error) {
	// Pick up a local .env file if there is one.
	_ = godotenv.Load()

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	setDefaults(v)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("log_level", "LOG_LEVEL")
	_ = v.BindEnv("http.addr", "API_ADDR")
	_ = v.BindEnv("quran.base_url", "QURAN_API_URL")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.Telegram.Token = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("log_level", "")

	v.SetDefault("quran.base_url", "https://api.alquran.cloud/v1")
	v.SetDefault("quran.source_edition", "quran-uthmani")
	v.SetDefault("quran.translation_edition", "en.asad")
	v.SetDefault("quran.reciter", "ar.alafasy")
	v.SetDefault("quran.timeout", "15s")
	v.SetDefault("quran.user_agent", "maktab-quran/1.0")

	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")

	v.SetDefault("telegram.debug", false)
	v.SetDefault("telegram.ayahs_per_message", 10)

	v.SetDefault("daily.enabled", true)
	v.SetDefault("daily.schedule", "0 6 * * *")
	v.SetDefault("daily.max_concurrent", 10)

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.allowed_origins", []string{"*"})
}
