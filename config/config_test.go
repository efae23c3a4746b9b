package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig(NewViper())
	require.NoError(t, err)

	require.Equal(t, "hotmart-post-generator", cfg.AppName)
	require.Equal(t, 8080, cfg.AppPort)
	require.Equal(t, "https://api.groq.com/openai/v1", cfg.GroqBaseURL)
	require.Equal(t, "llama-3.3-70b-versatile", cfg.GroqModel)
	require.InDelta(t, 0.8, cfg.GroqTemperature, 1e-9)
	require.Equal(t, 1500, cfg.GroqMaxTokens)
	require.Equal(t, 10*time.Second, cfg.ScrapeTimeout)
	require.Equal(t, "outputs", cfg.OutputDir)
	require.Equal(t, "en", cfg.DefaultLanguage)
	require.Empty(t, cfg.GroqAPIKey)
}

func TestNewConfig_InvalidPort(t *testing.T) {
	v := NewViper()
	v.Set("APP_PORT", 70000)

	_, err := NewConfig(v)
	require.Error(t, err)
}

func TestNewConfig_InvalidTemperature(t *testing.T) {
	v := NewViper()
	v.Set("GROQ_TEMPERATURE", 5.0)

	_, err := NewConfig(v)
	require.Error(t, err)
}
