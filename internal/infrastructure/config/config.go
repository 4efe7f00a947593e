package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	Payment  PaymentConfig  `mapstructure:"payment"`
	Limits   LimitsConfig   `mapstructure:"limits"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
	Email    EmailConfig    `mapstructure:"email"`
}

// AppConfig holds application metadata
type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
}

// HTTPConfig holds HTTP server settings
type HTTPConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

// Addr returns the listen address
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds database connection settings.
// Driver is "sqlite" or "postgres"; the sqlite default keeps state
// in-memory so a restart resets the store.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// JWTConfig holds token signing settings
type JWTConfig struct {
	Secret      string        `mapstructure:"secret"`
	TokenExpiry time.Duration `mapstructure:"token_expiry"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PaymentConfig holds payment gateway settings
type PaymentConfig struct {
	Timeout     time.Duration `mapstructure:"timeout"`
	Latency     time.Duration `mapstructure:"latency"`
	SuccessRate float64       `mapstructure:"success_rate"`
}

// LimitsConfig holds request throttling settings. Auth routes get their
// own, stricter limit.
type LimitsConfig struct {
	RequestsPerMinute     int `mapstructure:"requests_per_minute"`
	AuthRequestsPerMinute int `mapstructure:"auth_requests_per_minute"`
}

// CheckoutConfig holds checkout pricing settings
type CheckoutConfig struct {
	FreeShippingThreshold float64 `mapstructure:"free_shipping_threshold"`
}

// EmailConfig holds outgoing email settings
type EmailConfig struct {
	From string `mapstructure:"from"`
}

// Load reads configuration from file and environment.
// Environment variables use the OPAL_ prefix, e.g. OPAL_HTTP_PORT.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("OPAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Defaults plus environment are enough to run
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for obvious mistakes
func (c *Config) Validate() error {
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http port %d", c.HTTP.Port)
	}
	if c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt secret must be set")
	}
	if c.Payment.SuccessRate < 0 || c.Payment.SuccessRate > 1 {
		return fmt.Errorf("payment success rate must be between 0 and 1")
	}
	if c.Checkout.FreeShippingThreshold < 0 {
		return fmt.Errorf("free shipping threshold must not be negative")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "opalessence")
	v.SetDefault("app.env", "development")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 15*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "file::memory:?cache=shared")

	v.SetDefault("jwt.secret", "dev-secret-change-me")
	v.SetDefault("jwt.token_expiry", 24*time.Hour)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("payment.timeout", 10*time.Second)
	v.SetDefault("payment.latency", 1500*time.Millisecond)
	v.SetDefault("payment.success_rate", 0.9)

	v.SetDefault("limits.requests_per_minute", 100)
	v.SetDefault("limits.auth_requests_per_minute", 10)

	v.SetDefault("checkout.free_shipping_threshold", 150.0)

	v.SetDefault("email.from", "orders@opalessence.example")
}
