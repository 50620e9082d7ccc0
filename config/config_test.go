package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "herbwise-store.json", cfg.Storage.Path)
	assert.Equal(t, 2*time.Second, cfg.Orders.ConfirmDelay)
	assert.Equal(t, 7*24*time.Hour, cfg.Orders.DeliveryLeadTime)

	assert.Equal(t, "gemini-1.5-pro", cfg.Assistant.Model)
	assert.InDelta(t, 0.7, cfg.Assistant.Temperature, 1e-9)
	assert.Equal(t, 40, cfg.Assistant.TopK)
	assert.InDelta(t, 0.95, cfg.Assistant.TopP, 1e-9)
	assert.Equal(t, 1024, cfg.Assistant.MaxOutputTokens)
	assert.Equal(t, 5*time.Second, cfg.Assistant.Cooldown)
	assert.Equal(t, 3, cfg.Assistant.MaxRetries)
	assert.Equal(t, time.Second, cfg.Assistant.RetryBaseDelay)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Orders.ConfirmDelay = 10 * time.Second
	cfg.Assistant.Model = "gemini-1.5-flash"
	applyDefaults(cfg)

	assert.Equal(t, 10*time.Second, cfg.Orders.ConfirmDelay)
	assert.Equal(t, "gemini-1.5-flash", cfg.Assistant.Model)
}
