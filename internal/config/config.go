package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"os"
	"strings"
	"time"
)

// ErrInsecureJWTKey is returned by Validate when production runs without
// an explicit admin signing key.
var ErrInsecureJWTKey = errors.New("config: ADMIN_JWT_KEY must be set to a non-default value in production")

// knownWeakJWTKeys are placeholder values that must never sign production tokens.
var knownWeakJWTKeys = map[string]struct{}{
	"secret":   {},
	"changeme": {},
}

type Config struct {
	Env       string
	HTTPAddr  string
	Site      SiteConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Admin     AdminConfig
	Telemetry TelemetryConfig
	Catalog   CatalogConfig
}

type SiteConfig struct {
	BaseURL         string
	AssetsDir       string
	DefaultTheme    string
	DefaultLanguage string
	AllowedOrigins  []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Addr       string
	Password   string
	CatalogTTL time.Duration
}

type AdminConfig struct {
	JWTKey       string
	PasswordHash string
	// JWTKeyGenerated is set when ADMIN_JWT_KEY was empty and Load drew a
	// random per-process key instead.
	JWTKeyGenerated bool
}

type TelemetryConfig struct {
	OTLPEndpoint string
	ServiceName  string
}

type CatalogConfig struct {
	Source       string
	WarmInterval time.Duration
}

const (
	CatalogSourceContent  = "content"
	CatalogSourceDatabase = "database"
)

func Load() *Config {
	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		HTTPAddr: normalizeAddr(getEnv("HTTP_ADDR", ":8080")),
		Site: SiteConfig{
			BaseURL:         strings.TrimRight(getEnv("SITE_BASE_URL", "https://vismifytools.com"), "/"),
			AssetsDir:       getEnv("SITE_ASSETS_DIR", "frontend/assets"),
			DefaultTheme:    getEnv("SITE_DEFAULT_THEME", "system"),
			DefaultLanguage: getEnv("SITE_DEFAULT_LANGUAGE", "en"),
			AllowedOrigins:  splitList(getEnv("SITE_ALLOWED_ORIGINS", "")),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DATABASE_HOST", "localhost"),
			Port:     getEnv("DATABASE_PORT", "5433"),
			User:     getEnv("DATABASE_USER", "postgres"),
			Password: getEnv("DATABASE_PASSWORD", "postgres"),
			Name:     getEnv("DATABASE_NAME", "vismify"),
			SSLMode:  getEnv("DATABASE_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:       getEnv("REDIS_ADDR", "localhost:6379"),
			Password:   getEnv("REDIS_PASSWORD", ""),
			CatalogTTL: getDuration("REDIS_CATALOG_TTL", 10*time.Minute),
		},
		Admin: AdminConfig{
			JWTKey:       getEnv("ADMIN_JWT_KEY", ""),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Telemetry: TelemetryConfig{
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName:  getEnv("OTEL_SERVICE_NAME", "vismify"),
		},
		Catalog: CatalogConfig{
			Source:       getEnv("CATALOG_SOURCE", CatalogSourceContent),
			WarmInterval: getDuration("CATALOG_WARM_INTERVAL", 5*time.Minute),
		},
	}

	if cfg.Admin.JWTKey == "" {
		cfg.Admin.JWTKey = randomKey()
		cfg.Admin.JWTKeyGenerated = true
	}
	return cfg
}

// Validate rejects settings the server must not start with. Production
// needs an explicit, non-placeholder admin signing key.
func (c *Config) Validate() error {
	if !c.IsProduction() {
		return nil
	}
	if c.Admin.JWTKeyGenerated || c.Admin.JWTKey == "" {
		return ErrInsecureJWTKey
	}
	if _, weak := knownWeakJWTKeys[strings.ToLower(c.Admin.JWTKey)]; weak {
		return ErrInsecureJWTKey
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

func (d DatabaseConfig) DSN() string {
	return "host=" + d.Host +
		" port=" + d.Port +
		" user=" + d.User +
		" password=" + d.Password +
		" dbname=" + d.Name +
		" sslmode=" + d.SSLMode
}

func randomKey() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("config: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(b)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func normalizeAddr(addr string) string {
	if addr == "" {
		return addr
	}

	if addr[0] == ':' || addr[0] == '[' {
		return addr
	}

	for _, r := range addr {
		if r < '0' || r > '9' {
			return addr
		}
	}

	return ":" + addr
}
