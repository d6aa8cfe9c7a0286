package config_test

import (
	"testing"
	"time"

	"github.com/limbo/goalkeeper/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	cfg := config.New()
	assert.Same(t, cfg, config.New())

	t.Setenv("GK_STRING", "value")
	t.Setenv("GK_BOOL", "true")
	t.Setenv("GK_BAD_BOOL", "maybe")
	t.Setenv("GK_INT", "42")
	t.Setenv("GK_DURATION", "15s")
	t.Setenv("GK_BAD_DURATION", "soon")

	assert.Equal(t, "value", cfg.GetString("GK_STRING"))
	assert.Equal(t, "", cfg.GetString("GK_MISSING"))
	assert.Equal(t, "def", cfg.GetStringOr("GK_MISSING", "def"))
	assert.True(t, cfg.GetBool("GK_BOOL", false))
	assert.True(t, cfg.GetBool("GK_BAD_BOOL", true))
	assert.Equal(t, 42, cfg.GetInt("GK_INT", 1))
	assert.Equal(t, 7, cfg.GetInt("GK_MISSING", 7))
	assert.Equal(t, 15*time.Second, cfg.GetDuration("GK_DURATION", time.Second))
	assert.Equal(t, time.Minute, cfg.GetDuration("GK_BAD_DURATION", time.Minute))
}

func TestIsDevelopment(t *testing.T) {
	cfg := config.New()
	t.Setenv("APP_ENV", "production")
	assert.False(t, cfg.IsDevelopment())
	t.Setenv("APP_ENV", "")
	assert.True(t, cfg.IsDevelopment())
}
