// Package config holds runtime configuration for the pixself-api server
package config

import "github.com/spf13/viper"

// Config holds all runtime configuration for a server process.
// Values are populated from pixself.yaml, PIXSELF_* env vars, and CLI flags.
type Config struct {
	HTTPAddr      string `mapstructure:"http_addr"`
	RedisEndpoint string `mapstructure:"redis_endpoint"`
	MySQLDSN      string `mapstructure:"mysql_dsn"`
	ManifestURL   string `mapstructure:"manifest_url"`
	AssetBaseURL  string `mapstructure:"asset_base_url"`
	WebhookURL    string `mapstructure:"webhook_url"`
	CloudinaryURL string `mapstructure:"cloudinary_url"`
	CanvasSize    int    `mapstructure:"canvas_size"`
	DraftTTLHours int    `mapstructure:"draft_ttl_hours"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("http_addr", ":8080")
	viper.SetDefault("redis_endpoint", "localhost:6379")
	viper.SetDefault("mysql_dsn", "")
	viper.SetDefault("manifest_url", "")
	viper.SetDefault("asset_base_url", "")
	viper.SetDefault("webhook_url", "")
	viper.SetDefault("cloudinary_url", "")
	viper.SetDefault("canvas_size", 512)
	viper.SetDefault("draft_ttl_hours", 168)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
