package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"hallo/pkg/e"
	"hallo/pkg/validator"
)

type Config struct {
	Env       string          `json:"env" validate:"oneof=local dev prod"`
	LogDebug  bool            `json:"log_debug"`
	Http      HttpConfig      `json:"http"`
	RateLimit RateLimitConfig `json:"rate_limit"`
}

type HttpConfig struct {
	Port            string        `json:"port" validate:"listen_addr"`
	ReadTimeout     time.Duration `json:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `json:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" validate:"gt=0"`
}

// RateLimitConfig is per client IP. RPS == 0 turns the limiter off.
type RateLimitConfig struct {
	RPS   float64       `json:"rps" validate:"gte=0"`
	Burst int           `json:"burst" validate:"gte=1"`
	TTL   time.Duration `json:"ttl" validate:"gt=0"`
}

func (c RateLimitConfig) Enabled() bool {
	return c.RPS > 0
}

func Load(logger *slog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env:      getEnv("ENV", "local"),
		LogDebug: getEnvBool("LOG_DEBUG", true),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":4567"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvFloat("RATE_LIMIT_RPS", 0),
			Burst: getEnvInt("RATE_LIMIT_BURST", 20),
			TTL:   getEnvDuration("RATE_LIMIT_TTL", 5*time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.Bool("log_debug", cfg.LogDebug),
		slog.String("http_port", cfg.Http.Port),
		slog.Bool("rate_limit", cfg.RateLimit.Enabled()))

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.ValidateStruct(c); err != nil {
		return fmt.Errorf("%w: %w", e.ErrInvalidConfig, err)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
