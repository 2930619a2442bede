package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        int
	LogLevel    string
	DatabaseURL string
	GroqAPIKey  string
	GroqModel   string
	WebhookURL  string
	NatsURL     string
	NatsToken   string
}

func Load() Config {
	return Config{
		Port:        envInt("PORT", 8520),
		LogLevel:    envStr("LOG_LEVEL", "info"),
		DatabaseURL: envStr("DATABASE_URL", ""),
		GroqAPIKey:  envStr("GROQ_API_KEY", ""),
		GroqModel:   envStr("GROQ_MODEL", "llama3-70b-8192"),
		WebhookURL:  envStr("ESCALATION_WEBHOOK_URL", ""),
		NatsURL:     envStr("NATS_URL", ""),
		NatsToken:   envStr("NATS_TOKEN", ""),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
