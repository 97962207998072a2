package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// Environment names.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Port          int
	Env           string
	TokenSecret   string
	AdminEmail    string
	AllowedOrigin string

	// SMTP settings, required only in production.
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

// IsDevelopment reports whether non-production helpers (inline debug codes,
// /dev endpoints, log-only notifier) are enabled.
func (c Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("votely", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.Env, "e", "", "Environment (development or production)")
	fs.StringVar(&cfg.AllowedOrigin, "origin", "", "Allowed CORS origin")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.TokenSecret, "token-secret", "", "Credential signing secret (prefer env)")
	fs.StringVar(&cfg.AdminEmail, "admin-email", "", "Identity granted the admin role (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3011 // default
		}
	}

	if cfg.Env == "" {
		cfg.Env = os.Getenv("APP_ENV")
	}
	if cfg.Env == "" {
		cfg.Env = EnvDevelopment
	}
	if cfg.Env != EnvDevelopment && cfg.Env != EnvProduction {
		return Config{}, errors.New("environment must be development or production")
	}

	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = os.Getenv("ALLOWED_ORIGIN")
	}

	// Secrets - MUST be provided
	if cfg.TokenSecret == "" {
		cfg.TokenSecret = os.Getenv("TOKEN_SECRET")
	}
	if cfg.TokenSecret == "" {
		return Config{}, errors.New("TOKEN_SECRET required")
	}

	if cfg.AdminEmail == "" {
		cfg.AdminEmail = os.Getenv("ADMIN_EMAIL")
	}

	// SMTP settings are env-only; there is no reason to pass passwords on
	// the command line.
	cfg.SMTPHost = os.Getenv("EMAIL_HOST")
	cfg.SMTPPort = os.Getenv("EMAIL_PORT")
	cfg.SMTPUser = os.Getenv("EMAIL_USER")
	cfg.SMTPPass = os.Getenv("EMAIL_PASS")
	cfg.SMTPFrom = os.Getenv("EMAIL_FROM")
	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = cfg.SMTPUser
	}

	if cfg.Env == EnvProduction {
		if cfg.SMTPHost == "" || cfg.SMTPPort == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
			return Config{}, errors.New("EMAIL_HOST, EMAIL_PORT, EMAIL_USER and EMAIL_PASS required in production")
		}
	}

	return cfg, nil
}
