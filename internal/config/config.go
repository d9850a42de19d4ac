package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string
	JWTSecret  string
}

// Load builds Config from environment with sensible defaults.
// A .env file is honored when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		MySQLDSN:   getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/eksiblog?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:    getEnvInt("REDIS_DB", 0),
		RedisPass:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:  getEnv("JWT_SECRET", "change-me"),
	}
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
