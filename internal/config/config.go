package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// DevJWTSecret is only acceptable outside production.
	DevJWTSecret = "dev-jwt-secret-change-me"
)

type Config struct {
	Env          string
	Addr         string
	DBDriver     string
	DBDSN        string
	JWTSecret    string
	JWTTTL       time.Duration
	CORSOrigin   string
	UploadDir    string
	MaxPageLimit int
	SlugMode     string
	LogLevel     string
}

// Load reads the configuration from the environment. Unset or unparsable
// values fall back to their defaults.
func Load() Config {
	addr := envString("API_ADDR", "")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":8080"
		}
	}
	return Config{
		Env:          envString("APP_ENV", EnvDevelopment),
		Addr:         addr,
		DBDriver:     envString("DB_DRIVER", "mysql"),
		DBDSN:        envString("DB_DSN_PRIMARY", "root:password@tcp(127.0.0.1:3306)/inkwell?parseTime=true"),
		JWTSecret:    envString("JWT_SECRET", DevJWTSecret),
		JWTTTL:       envDuration("JWT_TTL", 72*time.Hour),
		CORSOrigin:   envString("CORS_ALLOWED_ORIGIN", "*"),
		UploadDir:    envString("UPLOAD_DIR", "./uploads"),
		MaxPageLimit: envInt("MAX_PAGE_LIMIT", 100),
		SlugMode:     envString("SLUG_MODE", "simple"),
		LogLevel:     envString("LOG_LEVEL", "info"),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	switch c.Env {
	case EnvDevelopment, EnvProduction:
	default:
		errs = append(errs, fmt.Errorf("APP_ENV: unknown environment %q", c.Env))
	}
	switch c.DBDriver {
	case "mysql", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER: unsupported driver %q", c.DBDriver))
	}
	if c.DBDSN == "" {
		errs = append(errs, errors.New("DB_DSN_PRIMARY: must be set"))
	}
	switch c.SlugMode {
	case "simple", "ascii":
	default:
		errs = append(errs, fmt.Errorf("SLUG_MODE: unknown mode %q", c.SlugMode))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET: must be set"))
	}
	if c.IsProduction() && c.JWTSecret == DevJWTSecret {
		errs = append(errs, errors.New("JWT_SECRET: the development secret cannot be used in production"))
	}
	if c.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL: must be positive"))
	}
	if c.MaxPageLimit < 1 {
		errs = append(errs, errors.New("MAX_PAGE_LIMIT: must be at least 1"))
	}
	return errors.Join(errs...)
}

func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
