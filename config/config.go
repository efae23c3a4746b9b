package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppName string
	AppEnv  string
	AppPort int

	LogLevel string

	// Groq chat completions (OpenAI-compatible endpoint).
	GroqAPIKey      string
	GroqBaseURL     string
	GroqModel       string
	GroqTemperature float64
	GroqMaxTokens   int

	// Product page extraction.
	ScrapeTimeout   time.Duration
	ScrapeUserAgent string

	// Export defaults.
	OutputDir       string
	DefaultLanguage string
}

func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "hotmart-post-generator")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
	v.SetDefault("GROQ_MODEL", "llama-3.3-70b-versatile")
	v.SetDefault("GROQ_TEMPERATURE", 0.8)
	v.SetDefault("GROQ_MAX_TOKENS", 1500)

	v.SetDefault("SCRAPE_TIMEOUT_SECONDS", 10)
	v.SetDefault("SCRAPE_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	v.SetDefault("OUTPUT_DIR", "outputs")
	v.SetDefault("DEFAULT_LANGUAGE", "en")

	return v
}

func NewConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppName: v.GetString("APP_NAME"),
		AppEnv:  v.GetString("APP_ENV"),
		AppPort: v.GetInt("APP_PORT"),

		LogLevel: v.GetString("LOG_LEVEL"),

		GroqAPIKey:      v.GetString("GROQ_API_KEY"),
		GroqBaseURL:     v.GetString("GROQ_BASE_URL"),
		GroqModel:       v.GetString("GROQ_MODEL"),
		GroqTemperature: v.GetFloat64("GROQ_TEMPERATURE"),
		GroqMaxTokens:   v.GetInt("GROQ_MAX_TOKENS"),

		ScrapeTimeout:   time.Duration(v.GetInt("SCRAPE_TIMEOUT_SECONDS")) * time.Second,
		ScrapeUserAgent: v.GetString("SCRAPE_USER_AGENT"),

		OutputDir:       v.GetString("OUTPUT_DIR"),
		DefaultLanguage: v.GetString("DEFAULT_LANGUAGE"),
	}

	if cfg.AppPort <= 0 || cfg.AppPort > 65535 {
		return Config{}, fmt.Errorf("invalid APP_PORT %d", cfg.AppPort)
	}
	if cfg.GroqModel == "" {
		return Config{}, fmt.Errorf("GROQ_MODEL must not be empty")
	}
	if cfg.GroqTemperature < 0 || cfg.GroqTemperature > 2 {
		return Config{}, fmt.Errorf("invalid GROQ_TEMPERATURE %v", cfg.GroqTemperature)
	}
	if cfg.GroqMaxTokens <= 0 {
		return Config{}, fmt.Errorf("invalid GROQ_MAX_TOKENS %d", cfg.GroqMaxTokens)
	}
	if cfg.ScrapeTimeout <= 0 {
		return Config{}, fmt.Errorf("SCRAPE_TIMEOUT_SECONDS must be positive")
	}

	return cfg, nil
}
