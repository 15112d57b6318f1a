package config

import (
	"os"
	"strings"
)

// Config carries all runtime settings. It is built once in main and passed
// down explicitly; nothing reads the environment after Load.
type Config struct {
	Port           string
	Env            string
	DataDir        string
	DefaultLocale  string
	LogLevel       string
	LogFormat      string
	AllowedOrigins []string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "9092"),
		Env:           getEnv("ENV", "development"),
		DataDir:       getEnv("DATA_DIR", "data"),
		DefaultLocale: getEnv("DEFAULT_LOCALE", "uz"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS",
			"https://preview--salom-panel-35.lovable.app,http://localhost:9008")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
