package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port            string
	IsProduction    bool
	ShutdownTimeout time.Duration

	// Auth is optional; the dashboard runs open unless AUTH_REQUIRED is set.
	AuthRequired bool
	JWTSecret    string
	JWTIssuer    string

	CORSAllowedOrigins []string

	DefaultCurrency          string
	SeedDemoData             bool
	InvoiceStrictTransitions bool

	// Assistant upstream
	OpenAIAPIKey       string
	OpenAIBaseURL      string
	OpenAIModel        string
	AssistantTimeout   time.Duration
	AssistantRateLimit string // ulule/limiter formatted rate, e.g. "20-M"

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	v.SetDefault("AUTH_REQUIRED", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "finance-dashboard")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DEFAULT_CURRENCY", "USD")
	v.SetDefault("SEED_DEMO_DATA", false)
	v.SetDefault("INVOICE_STRICT_TRANSITIONS", true)
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("ASSISTANT_TIMEOUT", "30s")
	v.SetDefault("ASSISTANT_RATE_LIMIT", "20-M")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	// Actual environment variables override .env values and defaults.
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.ShutdownTimeout = parseDuration(v.GetString("SHUTDOWN_TIMEOUT"), "SHUTDOWN_TIMEOUT", 15*time.Second)

	cfg.AuthRequired = v.GetBool("AUTH_REQUIRED")
	cfg.JWTSecret = v.GetString("JWT_SECRET")
	cfg.JWTIssuer = v.GetString("JWT_ISSUER")
	if cfg.AuthRequired && cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: AUTH_REQUIRED is set but JWT_SECRET is empty. Using default insecure key.")
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.DefaultCurrency = strings.ToUpper(v.GetString("DEFAULT_CURRENCY"))
	cfg.SeedDemoData = v.GetBool("SEED_DEMO_DATA")
	cfg.InvoiceStrictTransitions = v.GetBool("INVOICE_STRICT_TRANSITIONS")

	cfg.OpenAIAPIKey = v.GetString("OPENAI_API_KEY")
	if cfg.OpenAIAPIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set. The assistant will answer with a fallback message.")
	}
	cfg.OpenAIBaseURL = v.GetString("OPENAI_BASE_URL")
	cfg.OpenAIModel = v.GetString("OPENAI_MODEL")
	cfg.AssistantTimeout = parseDuration(v.GetString("ASSISTANT_TIMEOUT"), "ASSISTANT_TIMEOUT", 30*time.Second)
	cfg.AssistantRateLimit = v.GetString("ASSISTANT_RATE_LIMIT")

	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = v.GetString("POSTHOG_ENDPOINT")

	return cfg, nil
}

func parseDuration(raw, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
