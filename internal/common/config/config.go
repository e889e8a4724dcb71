// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	API      APIConfig      `mapstructure:"api"`
	Payments PaymentConfig  `mapstructure:"payments"`
	Media    MediaConfig    `mapstructure:"media"`
	Store    StoreConfig    `mapstructure:"store"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Selector SelectorConfig `mapstructure:"selector"`
}

// --- Core App Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// APIConfig holds settings for the backend REST API.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// PaymentConfig holds settings for the hosted checkout gateway.
type PaymentConfig struct {
	CheckoutURL string `mapstructure:"checkout_url"`
	RedirectURL string `mapstructure:"redirect_url"`
	PublicKey   string `mapstructure:"public_key"`
}

// MediaConfig holds settings for the third-party media host.
type MediaConfig struct {
	UploadURL    string `mapstructure:"upload_url"`
	UploadPreset string `mapstructure:"upload_preset"`
	Timeout      int    `mapstructure:"timeout"` // milliseconds
}

// StoreConfig holds settings for the device-local key-value store.
type StoreConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address, for logging.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s/%d", r.Address, r.DB)
}

// SelectorConfig holds settings for the dependent location selector.
type SelectorConfig struct {
	FeeCacheTTL int `mapstructure:"fee_cache_ttl"` // seconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
