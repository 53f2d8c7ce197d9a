package config

import (
	"os"
	"strconv"

	"whalebux_backend/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string
	BotToken    string
	BotUsername string
	JWTSecret   string

	// Engine tunables
	MiningFloorSeconds int64
	XPPerCoin          int64
	WSPushSeconds      int

	// Rate limits
	APIRateLimit     int
	APIRateWindow    int
	AuthRateLimit    int
	AuthRateWindow   int
	ActionRateLimit  int
	ActionRateWindow int
}

// Загрузка конфига из env
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	botToken := os.Getenv("BOT_TOKEN")
	if botToken == "" {
		logger.Fatal("BOT_TOKEN is not set")
	}

	botUsername := os.Getenv("BOT_USERNAME")
	if botUsername == "" {
		botUsername = "WhaleBuxBot" // ! если не установлено в env !
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		AppPort:     port,
		DatabaseURL: dbURL,
		BotToken:    botToken,
		BotUsername: botUsername,
		JWTSecret:   jwtSecret,

		MiningFloorSeconds: envInt64("MINING_FLOOR_SECONDS", 0), // 0 -> engine default
		XPPerCoin:          envInt64("XP_PER_COIN", 1),
		WSPushSeconds:      envInt("WS_PUSH_SECONDS", 5),

		APIRateLimit:     envInt("API_RATE_LIMIT", 60),
		APIRateWindow:    envInt("API_RATE_WINDOW_SECONDS", 60),
		AuthRateLimit:    envInt("AUTH_RATE_LIMIT", 5),
		AuthRateWindow:   envInt("AUTH_RATE_WINDOW_SECONDS", 60),
		ActionRateLimit:  envInt("ACTION_RATE_LIMIT", 30),
		ActionRateWindow: envInt("ACTION_RATE_WINDOW_SECONDS", 60),
	}
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return def
}
