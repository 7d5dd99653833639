package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret        = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTExpiry        = 30 * 24 * time.Hour
	defaultTGJUTimeout      = 15 * time.Second
	defaultStalenessWindow  = 10 * time.Minute
	defaultChangeWindow     = 24 * time.Hour
	defaultTGJUURL          = "https://www.tgju.org/"
	defaultTGJUUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	defaultAuthRateLimit    = "10-M"
	defaultMigrationsSource = "file://migrations"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Upstream price source
	TGJUURL       string
	TGJUTimeout   time.Duration
	TGJUUserAgent string

	// Refresh policy
	StalenessWindow time.Duration
	ChangeWindow    time.Duration

	AuthRateLimit      string
	CORSAllowedOrigins []string
	MigrationsPath     string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", defaultJWTExpiry.String())
	v.SetDefault("JWT_ISSUER", "price-tracker")
	v.SetDefault("TGJU_URL", defaultTGJUURL)
	v.SetDefault("TGJU_TIMEOUT", defaultTGJUTimeout.String())
	v.SetDefault("TGJU_USER_AGENT", defaultTGJUUserAgent)
	v.SetDefault("STALENESS_WINDOW", defaultStalenessWindow.String())
	v.SetDefault("CHANGE_WINDOW", defaultChangeWindow.String())
	v.SetDefault("AUTH_RATE_LIMIT", defaultAuthRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("MIGRATIONS_PATH", defaultMigrationsSource)
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTIssuer = v.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "price-tracker"
	}

	cfg.JWTExpiryDuration = durationOrDefault(v, "JWT_EXPIRY_DURATION", defaultJWTExpiry)
	cfg.TGJUTimeout = durationOrDefault(v, "TGJU_TIMEOUT", defaultTGJUTimeout)
	cfg.StalenessWindow = durationOrDefault(v, "STALENESS_WINDOW", defaultStalenessWindow)
	cfg.ChangeWindow = durationOrDefault(v, "CHANGE_WINDOW", defaultChangeWindow)

	cfg.TGJUURL = v.GetString("TGJU_URL")
	cfg.TGJUUserAgent = v.GetString("TGJU_USER_AGENT")

	cfg.AuthRateLimit = v.GetString("AUTH_RATE_LIMIT")
	if cfg.AuthRateLimit == "" {
		cfg.AuthRateLimit = defaultAuthRateLimit
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")

	return cfg, nil
}

// durationOrDefault parses key as a time.Duration, falling back to def on a
// missing, invalid or non-positive value.
func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
