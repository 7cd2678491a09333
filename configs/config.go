package configs

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env  string
	HTTP struct {
		Port            string
		ShutdownTimeout time.Duration
	}
	GRPC struct {
		Port string
	}
	RateLimit struct {
		RPS   float64
		Burst int
	}
}

// NewConfig reads the configuration from the environment. Values from a
// .env file are visible here once cmd/app has loaded it.
func NewConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "local")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("HTTP_SHUTDOWN_TIMEOUT", 15*time.Second)
	v.SetDefault("GRPC_PORT", "9090")
	v.SetDefault("RATE_LIMIT_RPS", 0)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	var cfg Config
	cfg.Env = v.GetString("APP_ENV")
	cfg.HTTP.Port = v.GetString("HTTP_PORT")
	cfg.HTTP.ShutdownTimeout = v.GetDuration("HTTP_SHUTDOWN_TIMEOUT")
	cfg.GRPC.Port = v.GetString("GRPC_PORT")
	cfg.RateLimit.RPS = v.GetFloat64("RATE_LIMIT_RPS")
	cfg.RateLimit.Burst = v.GetInt("RATE_LIMIT_BURST")

	if err := validatePort("HTTP_PORT", cfg.HTTP.Port); err != nil {
		return nil, err
	}
	if err := validatePort("GRPC_PORT", cfg.GRPC.Port); err != nil {
		return nil, err
	}
	if cfg.HTTP.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_SHUTDOWN_TIMEOUT value %q", v.GetString("HTTP_SHUTDOWN_TIMEOUT"))
	}
	if cfg.RateLimit.RPS < 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS value %v", cfg.RateLimit.RPS)
	}

	return &cfg, nil
}

func (c *Config) HTTPAddr() string {
	return ":" + c.HTTP.Port
}

func (c *Config) GRPCAddr() string {
	return ":" + c.GRPC.Port
}

func validatePort(key, value string) error {
	port, err := strconv.Atoi(value)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("invalid %s value %q", key, value)
	}
	return nil
}
