package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv("PS_INT", "42")
	t.Setenv("PS_BAD_INT", "forty")
	t.Setenv("PS_FLOAT", "0.25")
	t.Setenv("PS_BOOL", "false")
	t.Setenv("PS_MS", "250")
	t.Setenv("PS_SLICE", " a.example.com , ,b.example.com")

	assert.Equal(t, "fallback", getEnv("PS_UNSET", "fallback"))
	assert.Equal(t, 42, getEnvInt("PS_INT", 1))
	assert.Equal(t, 1, getEnvInt("PS_BAD_INT", 1))
	assert.Equal(t, 0.25, getEnvFloat("PS_FLOAT", 1))
	assert.Equal(t, 3.5, getEnvFloat("PS_BAD_INT", 3.5))
	assert.False(t, getEnvBool("PS_BOOL", true))
	assert.True(t, getEnvBool("PS_UNSET", true))
	assert.Equal(t, 250*time.Millisecond, getEnvDuration("PS_MS", time.Second))
	assert.Equal(t, time.Second, getEnvDuration("PS_BAD_INT", time.Second))
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, getEnvSlice("PS_SLICE", ""))
	assert.Equal(t, []string{"x", "y"}, getEnvSlice("PS_UNSET", "x,y"))
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("PALETTE_COUNT", "6")
	t.Setenv("GENERATION_DELAY_MS", "0")
	t.Setenv("ADJUST_STEP", "2.5")
	t.Setenv("COLORBLIND_CHANNEL_DELTA", "45")
	t.Setenv("DB_TYPE", "memory")
	t.Setenv("RATE_LIMIT_BURST", "9")

	s := loadSettings()
	assert.Equal(t, 6, s.Generator.Count)
	assert.Equal(t, time.Duration(0), s.Generator.Delay)
	assert.Equal(t, 2.5, s.Generator.Adjust.Step)
	assert.Equal(t, 0.2, s.Generator.Adjust.Tolerance)
	assert.Equal(t, 45, s.Generator.ColorBlind.ChannelDelta)
	assert.Equal(t, "memory", s.API.DatabaseType)
	assert.Equal(t, 9, s.API.RateLimitBurst)
}

func TestLoadSettingsSecretHasNoDefault(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	s := loadSettings()
	assert.Empty(t, s.API.JwtSecret)
}
