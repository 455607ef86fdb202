package conf

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SocioProphet/zenflows/internal/platform/envutil"
)

// Config holds all runtime settings. Values come from environment variables,
// optionally overridden by a YAML file pointed at by ZENFLOWS_CONF.
type Config struct {
	HTTPAddr string `yaml:"http_addr"`
	LogMode  string `yaml:"log_mode"`

	Postgres Postgres `yaml:"postgres"`

	JWTSecret      string `yaml:"jwt_secret"`
	AccessTokenTTL int    `yaml:"access_token_ttl"` // seconds

	AllowOrigins []string `yaml:"allow_origins"`
}

type Postgres struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

func (p Postgres) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Name, p.SSLMode,
	)
}

// Load reads configuration from the environment and, when ZENFLOWS_CONF is
// set, merges the YAML file on top.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr: envutil.String("HTTP_ADDR", ":8000"),
		LogMode:  envutil.String("LOG_MODE", "development"),
		Postgres: Postgres{
			Host:     envutil.String("POSTGRES_HOST", "localhost"),
			Port:     envutil.String("POSTGRES_PORT", "5432"),
			User:     envutil.String("POSTGRES_USER", "postgres"),
			Password: envutil.String("POSTGRES_PASSWORD", ""),
			Name:     envutil.String("POSTGRES_NAME", "zenflows"),
			SSLMode:  envutil.String("POSTGRES_SSLMODE", "disable"),
		},
		JWTSecret:      envutil.String("JWT_SECRET_KEY", ""),
		AccessTokenTTL: envutil.Int("ACCESS_TOKEN_TTL", 3600),
		AllowOrigins:   splitOrigins(envutil.String("ALLOW_ORIGINS", "http://localhost:3000")),
	}

	if path := strings.TrimSpace(os.Getenv("ZENFLOWS_CONF")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read conf file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse conf file %s: %w", path, err)
		}
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return cfg, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
