package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort             = "8080"
	DefaultSessionExpiryMin = 1440 // 24h validity window for issued sessions
	DefaultRoomCacheTTLMin  = 10
)

type Config struct {
	Env              string
	Port             string
	DBURL            string
	SessionSecret    string
	SessionExpiryMin int
	RedisURL         string
	RoomCacheTTLMin  int
}

// Load reads config/.env.dev or config/.env.prod depending on ENV, then
// resolves every key from the environment. godotenv never overwrites
// variables that are already set, so the environment wins over the file.
// Missing required keys are fatal: the process must not start without a
// database or a signing secret.
func Load() *Config {
	env := getEnv("ENV", "development")

	file := "config/.env.dev"
	if env == "production" {
		file = "config/.env.prod"
	}
	// The file is optional; containers usually inject plain env vars.
	_ = godotenv.Load(file)

	return &Config{
		Env:              env,
		Port:             getEnv("PORT", DefaultPort),
		DBURL:            mustGetEnv("DB_URL"),
		SessionSecret:    mustGetEnv("SESSION_SECRET"),
		SessionExpiryMin: getEnvAsInt("SESSION_EXPIRY", DefaultSessionExpiryMin),
		RedisURL:         getEnv("REDIS_URL", ""),
		RoomCacheTTLMin:  getEnvAsInt("ROOM_CACHE_TTL", DefaultRoomCacheTTLMin),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
