package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Database struct {
	Host       string `env:"DB_HOST" env-default:"localhost"`
	Port       string `env:"DB_PORT" env-default:"5432"`
	User       string `env:"DB_USER" env-default:"postgres"`
	Password   string `env:"DB_PASSWORD"`
	Name       string `env:"DB_NAME" env-default:"employees"`
	SSLMode    string `env:"DB_SSLMODE" env-default:"disable"`
	MaxRetries int    `env:"DB_MAX_RETRIES" env-default:"5"`
}

// DSN renders the key/value connection string understood by the postgres driver.
func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

type Redis struct {
	Addr string `env:"REDIS_ADDR"`
}

// Enabled reports whether a redis address was configured; redis is optional.
func (r Redis) Enabled() bool {
	return r.Addr != ""
}

type Kafka struct {
	Broker string `env:"KAFKA_BROKER"`
}

type Server struct {
	Port           string        `env:"PORT" env-default:"3001"`
	ReadTimeout    time.Duration `env:"READ_TIMEOUT" env-default:"5s"`
	WriteTimeout   time.Duration `env:"WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout    time.Duration `env:"IDLE_TIMEOUT" env-default:"60s"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" env-default:"10s"`
}

// API configures cmd/api.
type API struct {
	Env            string `env:"APP_ENV" env-default:"development"`
	Server         Server
	Database       Database
	Redis          Redis
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
	AddRateLimit   float64  `env:"ADD_EMPLOYEE_RATE_LIMIT" env-default:"2"`
	AddRateBurst   int      `env:"ADD_EMPLOYEE_RATE_BURST" env-default:"5"`
}

// Web configures cmd/web, the form and dashboard frontend.
type Web struct {
	Env          string        `env:"APP_ENV" env-default:"development"`
	Port         string        `env:"WEB_PORT" env-default:"3000"`
	ReadTimeout  time.Duration `env:"WEB_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `env:"WEB_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout  time.Duration `env:"WEB_IDLE_TIMEOUT" env-default:"60s"`
	APIBaseURL   string        `env:"API_BASE_URL" env-default:"http://localhost:3001"`
	APITimeout   time.Duration `env:"API_TIMEOUT" env-default:"5s"`
}

// HTTPServer is the listener configuration for the frontend.
func (w Web) HTTPServer() Server {
	return Server{
		Port:         w.Port,
		ReadTimeout:  w.ReadTimeout,
		WriteTimeout: w.WriteTimeout,
		IdleTimeout:  w.IdleTimeout,
	}
}

// Worker configures cmd/worker, the outbox relay.
type Worker struct {
	Env          string `env:"APP_ENV" env-default:"development"`
	Database     Database
	Kafka        Kafka
	PollInterval time.Duration `env:"OUTBOX_POLL_INTERVAL" env-default:"3s"`
	BatchSize    int           `env:"OUTBOX_BATCH_SIZE" env-default:"50"`
	RetryBackoff time.Duration `env:"OUTBOX_RETRY_BACKOFF" env-default:"15s"`
	MaxAttempts  int           `env:"OUTBOX_MAX_ATTEMPTS" env-default:"10"`
}

// Consumer configures cmd/consumer, the audit trail reader.
type Consumer struct {
	Env     string `env:"APP_ENV" env-default:"development"`
	Kafka   Kafka
	GroupID string `env:"KAFKA_GROUP_ID" env-default:"go-ems-employee-audit"`
}

// Load fills T from the process environment.
func Load[T any]() (*T, error) {
	var cfg T
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}

// IsProduction selects the production zap preset.
func IsProduction(env string) bool {
	return env == "production"
}
