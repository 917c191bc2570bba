// internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env    string `validate:"required"`
	Server ServerConfig
	Lookup LookupConfig
	DB     DBConfig
	AMQP   AMQPConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string `validate:"required,numeric"`
}

// LookupConfig drives the widget and the HTTP client.
type LookupConfig struct {
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gte=0"`
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type AMQPConfig struct {
	URL   string `validate:"omitempty,url"`
	Queue string `validate:"required"`
}

type LogConfig struct {
	Level  string `validate:"omitempty,oneof=debug info warn warning error"`
	Format string `validate:"omitempty,oneof=json console"`
}

// DSN renders the lib/pq connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SERVER_PORT", "7788")
	v.SetDefault("API_BASE_URL", "http://localhost:7788")
	v.SetDefault("LOOKUP_TIMEOUT", "10s")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("LOOKUP_QUEUE", "customer_lookups")
	v.SetDefault("LOG_LEVEL", "info")
}

// Load reads .env (when present) and the process environment.
// Environment variables win over .env values, .env wins over defaults.
func Load(envFiles ...string) (*Config, error) {
	// A missing .env is fine; OS environment variables are enough.
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env: v.GetString("APP_ENV"),
		Server: ServerConfig{
			Port: v.GetString("SERVER_PORT"),
		},
		Lookup: LookupConfig{
			BaseURL: v.GetString("API_BASE_URL"),
			Timeout: v.GetDuration("LOOKUP_TIMEOUT"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		AMQP: AMQPConfig{
			URL:   v.GetString("AMQP_URL"),
			Queue: v.GetString("LOOKUP_QUEUE"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
