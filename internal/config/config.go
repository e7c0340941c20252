package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port           string
	CatalogURL     string
	CatalogTimeout time.Duration

	// Empty disables event publishing (noop publisher)
	RabbitURL string

	// CORS
	CORSAllowOrigins []string
}

func Load() Config {
	cfg := Config{
		Port:           getenv("PORT", "8085"),
		CatalogURL:     getenv("CATALOG_URL", "https://uxdlyqjm9i.execute-api.eu-west-1.amazonaws.com/s"),
		CatalogTimeout: parseDuration(getenv("CATALOG_TIMEOUT", "10s"), 10*time.Second),

		RabbitURL: os.Getenv("RABBITMQ_URL"),

		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),
	}

	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
