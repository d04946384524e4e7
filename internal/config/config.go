package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port            string
	DatabaseDSN     string
	RabbitURL       string // empty disables event publishing
	PaymentDelay    time.Duration
	ShutdownTimeout time.Duration

	CORSAllowOrigins []string
}

func Load() Config {
	return Config{
		Port:            getenv("PORT", "8080"),
		DatabaseDSN:     getenv("STOREFRONT_DB_DSN", ""),
		RabbitURL:       getenv("RABBITMQ_URL", ""),
		PaymentDelay:    parseDuration(getenv("PAYMENT_DELAY", "1500ms"), 1500*time.Millisecond),
		ShutdownTimeout: parseDuration(getenv("SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),

		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),
	}
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

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
