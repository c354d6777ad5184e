package config

import (
	"os"
)

// DefaultJWTSecret is used when JWT_SECRET is not set. Deployments must
// override it; main logs a warning when the fallback is active.
const DefaultJWTSecret = "your-secret-key-change-in-production"

type Config struct {
	Port          string
	JWTSecret     string
	DBPath        string
	UploadDir     string
	TemplatesGlob string
	Production    bool
	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", "3001"),
		JWTSecret:     getEnv("JWT_SECRET", DefaultJWTSecret),
		DBPath:        getEnv("DB_PATH", "rental.db"),
		UploadDir:     getEnv("UPLOAD_DIR", "public"),
		TemplatesGlob: getEnv("TEMPLATES_GLOB", "templates/*"),
		Production:    os.Getenv("APP_ENV") == "production",
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
	return cfg
}

// UsingDefaultSecret reports whether the insecure fallback signing key is
// in effect.
func (c *Config) UsingDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
