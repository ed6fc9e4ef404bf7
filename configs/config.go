package config

import "os"

type Config struct {
	DatabaseURL string
	SecretKey   string
	Port        string
}

func LoadConfig() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", "app.db"),
		SecretKey:   getEnv("SECRET_KEY", "dev-key-change-in-production"),
		Port:        getEnv("PORT", "3000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
