package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/color-game/palette-studio/api"
	"github.com/color-game/palette-studio/colors"
	"github.com/color-game/palette-studio/palette"
	"github.com/joho/godotenv"
)

type settings struct {
	API       api.Config
	Generator palette.Config
}

// loadSettings reads .env if present, then the process environment
func loadSettings() settings {
	_ = godotenv.Load()

	generator := palette.DefaultConfig()
	generator.Count = getEnvInt("PALETTE_COUNT", generator.Count)
	generator.Delay = getEnvDuration("GENERATION_DELAY_MS", generator.Delay)
	generator.Prefilter = getEnvBool("PREFILTER", generator.Prefilter)
	generator.Adjust = colors.AdjustConfig{
		Step:          getEnvFloat("ADJUST_STEP", generator.Adjust.Step),
		Tolerance:     getEnvFloat("ADJUST_TOLERANCE", generator.Adjust.Tolerance),
		MaxIterations: getEnvInt("ADJUST_MAX_ITERATIONS", generator.Adjust.MaxIterations),
		MinLightness:  generator.Adjust.MinLightness,
		MaxLightness:  generator.Adjust.MaxLightness,
	}
	generator.ColorBlind = palette.ColorBlindConfig{
		ChannelDelta:   getEnvInt("COLORBLIND_CHANNEL_DELTA", generator.ColorBlind.ChannelDelta),
		LuminanceDelta: getEnvFloat("COLORBLIND_LUMINANCE_DELTA", generator.ColorBlind.LuminanceDelta),
	}

	return settings{
		API: api.Config{
			HTTPPort:           getEnv("HTTP_PORT", ":8080"),
			DatabaseType:       getEnv("DB_TYPE", "memory"),
			DatabaseHost:       getEnv("DB_HOST", "localhost:5432"),
			DatabaseUser:       getEnv("DB_USER", "postgres"),
			DatabasePassword:   getEnv("DB_PASSWORD", ""),
			DatabaseName:       getEnv("DB_NAME", "palettestudio"),
			SSLMode:            getEnv("SSL_MODE", "disable"),
			JwtSecret:          getEnv("JWT_SECRET", ""),
			ShareTokenDuration: getEnvInt("SHARE_TOKEN_DURATION", 2592000), // 30 days
			AllowedOrigins:     getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
			DevMode:            getEnvBool("DEV_MODE", true),
			RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 1),
			RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 5),
			DailyPalette:       getEnvBool("DAILY_PALETTE", true),
		},
		Generator: generator,
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatVal, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return floatVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

// getEnvDuration reads a whole number of milliseconds
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	ms, err := strconv.Atoi(value)
	if err != nil || ms < 0 {
		return defaultValue
	}
	return time.Duration(ms) * time.Millisecond
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
