package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env      string `mapstructure:"env"`
	HTTPAddr string `mapstructure:"http_addr"`

	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Feed     FeedConfig     `mapstructure:"feed"`
	Media    MediaConfig    `mapstructure:"media"`
	Sentry   SentryConfig   `mapstructure:"sentry"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
	Limit    LimitConfig    `mapstructure:"limit"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // sqlite, postgres
	DSN    string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type FeedConfig struct {
	PageSize int           `mapstructure:"page_size"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type MediaConfig struct {
	Dir         string `mapstructure:"dir"`
	MaxUploadMB int64  `mapstructure:"max_upload_mb"`
}

type SentryConfig struct {
	DSN string `mapstructure:"dsn"`
}

type TracingConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

type LimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// Load reads config.yaml (optional) then YATUBE_* env overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	v.SetDefault("env", "dev")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "yatube.db")
	v.SetDefault("redis.addr", "")
	v.SetDefault("auth.jwt_secret", "dev-secret-change-me")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("feed.page_size", 10)
	v.SetDefault("feed.cache_ttl", 20*time.Second)
	v.SetDefault("media.dir", "media")
	v.SetDefault("media.max_upload_mb", 10)
	v.SetDefault("limit.rps", 50.0)
	v.SetDefault("limit.burst", 100)

	v.SetEnvPrefix("YATUBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
