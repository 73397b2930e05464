package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	Env        string
	MySQLDSN   string

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret string

	// Origins allowed to make cross-origin requests, in addition to the
	// local-dev defaults. Entries may carry a wildcard host prefix such as
	// "https://*.vercel.app".
	FrontendURL    string
	AllowedOrigins []string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	AdminEmail   string

	SwaggerHost string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is applied first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "5000"),
		Env:            getEnv("APP_ENV", "development"),
		MySQLDSN:       getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/foodcart?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      getEnv("JWT_SECRET", "fallback_secret"),
		FrontendURL:    os.Getenv("FRONTEND_URL"),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       getEnvInt("SMTP_PORT", 587),
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPassword:   os.Getenv("SMTP_PASSWORD"),
		AdminEmail:     getEnv("ADMIN_EMAIL", os.Getenv("SMTP_USER")),
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
	}
}

// IsProduction reports whether error detail should be suppressed in responses.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Origins returns every origin entry the allow-list is built from:
// env-configured origins plus the local-dev and WebView defaults.
func (c *Config) Origins() []string {
	origins := []string{
		c.FrontendURL,
		"http://localhost:5173",
		"http://localhost:3000",
		"http://localhost:8000",
		"capacitor://localhost",
		"ionic://localhost",
	}
	return append(origins, c.AllowedOrigins...)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
