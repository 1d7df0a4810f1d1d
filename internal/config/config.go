// Package config loads runtime configuration from the environment and an optional config file.
package config

import (
	"errors"
	"fmt"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"

	"ats-backend/internal/database"
)

// Config is every setting the server and the CLI read.
// Keys are the environment variable names, a config file uses the same keys.
type Config struct {
	Port int `mapstructure:"PORT"`

	DBHost           string `mapstructure:"DB_HOST"`
	DBPort           string `mapstructure:"DB_PORT"`
	DBUsername       string `mapstructure:"DB_USERNAME"`
	DBPassword       string `mapstructure:"DB_PASSWORD"`
	DBDatabase       string `mapstructure:"DB_DATABASE"`
	UseConnectionStr bool   `mapstructure:"USE_CONNECTION_STR"`
	DBConnectionStr  string `mapstructure:"DB_CONNECTION_STR"`

	SecretKey string        `mapstructure:"SECRET_KEY"`
	TokenTTL  time.Duration `mapstructure:"TOKEN_TTL"`

	AllowOrigin          []string `mapstructure:"ALLOW_ORIGIN"`
	RateLimitPerSecond   int      `mapstructure:"RATE_LIMIT_REQUESTS_PER_SECOND"`
	RedisURL             string   `mapstructure:"REDIS_URL"`
	GCSBucket            string   `mapstructure:"GCS_BUCKET"`
	MaxResumeUploadBytes int64    `mapstructure:"MAX_RESUME_BYTES"`

	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`

	NotifyWorkers   int `mapstructure:"NOTIFY_WORKERS"`
	NotifyQueueSize int `mapstructure:"NOTIFY_QUEUE_SIZE"`

	LogJSON bool `mapstructure:"LOG_JSON"`
	Debug   bool `mapstructure:"DEBUG"`
}

// ErrMissingSecret is returned when SECRET_KEY is not set
var ErrMissingSecret = errors.New("SECRET_KEY must be set")

var defaults = map[string]any{
	"PORT":                           8080,
	"DB_HOST":                        "",
	"DB_PORT":                        "5432",
	"DB_USERNAME":                    "",
	"DB_PASSWORD":                    "",
	"DB_DATABASE":                    "",
	"USE_CONNECTION_STR":             false,
	"DB_CONNECTION_STR":              "",
	"SECRET_KEY":                     "",
	"TOKEN_TTL":                      "168h",
	"ALLOW_ORIGIN":                   "http://localhost:5173",
	"RATE_LIMIT_REQUESTS_PER_SECOND": 5,
	"REDIS_URL":                      "",
	"GCS_BUCKET":                     "",
	"MAX_RESUME_BYTES":               10 << 20,
	"SMTP_HOST":                      "",
	"SMTP_PORT":                      587,
	"SMTP_USERNAME":                  "",
	"SMTP_PASSWORD":                  "",
	"SMTP_FROM":                      "",
	"NOTIFY_WORKERS":                 2,
	"NOTIFY_QUEUE_SIZE":              100,
	"LOG_JSON":                       false,
	"DEBUG":                          false,
}

// Load reads the environment and, when file is not empty, the config file.
// Environment variables win over the file.
func Load(v *viper.Viper, file string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

// Validate checks settings the server cannot start without
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return ErrMissingSecret
	}
	if c.Port <= 0 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	return nil
}

// Database returns the connection settings of the database package
func (c *Config) Database() *database.DBConfig {
	return &database.DBConfig{
		Host:      c.DBHost,
		Port:      c.DBPort,
		User:      c.DBUsername,
		Password:  c.DBPassword,
		DBName:    c.DBDatabase,
		Constr:    c.DBConnectionStr,
		UseConstr: c.UseConnectionStr,
	}
}

// SMTPEnabled reports whether emails should go through an SMTP server
func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != ""
}
