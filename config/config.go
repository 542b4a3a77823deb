package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`

	// Darimaids REST backend.
	BackendBaseURL string        `mapstructure:"BACKEND_BASE_URL"`
	BackendTimeout time.Duration `mapstructure:"BACKEND_TIMEOUT"`

	// Wizard sessions: "memory" or "redis".
	SessionStore string        `mapstructure:"SESSION_STORE"`
	SessionTTL   time.Duration `mapstructure:"SESSION_TTL"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`

	CatalogCacheTTL time.Duration `mapstructure:"CATALOG_CACHE_TTL"`

	// Optional: verifies Checkout Sessions after the payment redirect.
	StripeKey string `mapstructure:"STRIPE_KEY"`
	// Optional: when set, bearer tokens issued by the backend are signature-checked.
	JWTSecret string `mapstructure:"JWT_SECRET"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("BACKEND_BASE_URL", "http://localhost:5000")
	v.SetDefault("BACKEND_TIMEOUT", "20s")
	v.SetDefault("SESSION_STORE", "memory")
	v.SetDefault("SESSION_TTL", "2h")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_SESSION_DB", 0)
	v.SetDefault("REDIS_CACHE_DB", 1)
	v.SetDefault("CATALOG_CACHE_TTL", "10m")
	v.SetDefault("STRIPE_KEY", "")
	v.SetDefault("JWT_SECRET", "")
}

// Load reads config.yaml (from "." or "./config") and the environment
// into a Config. A missing file is not an error.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, err
		}
		log.Println("No config file found, using environment variables only")
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
