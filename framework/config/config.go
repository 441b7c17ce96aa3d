package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the central typed configuration struct.
type Config struct {
	App         AppConfig
	Log         LogConfig
	Supabase    SupabaseConfig
	Spoonacular SpoonacularConfig
	Gemini      GeminiConfig
	HTTPClient  HTTPClientConfig
}

type AppConfig struct {
	Name            string
	Env             string // local | production | testing
	Debug           bool
	Port            string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level    string
	Encoding string // json | console
}

type SupabaseConfig struct {
	URL       string
	SecretKey string
	Schema    string
}

type SpoonacularConfig struct {
	APIKey  string
	BaseURL string
}

type GeminiConfig struct {
	APIKey  string
	BaseURL string
}

type HTTPClientConfig struct {
	Timeout time.Duration
}

const (
	defaultSpoonacularURL = "https://api.spoonacular.com"
	defaultGeminiURL      = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent"
)

// Load reads .env (if present) and populates a Config from environment variables.
// Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	appEnv := env("APP_ENV", "local")
	encoding := "json"
	if appEnv == "local" {
		encoding = "console"
	}

	return &Config{
		App: AppConfig{
			Name:            env("APP_NAME", "diaita"),
			Env:             appEnv,
			Debug:           envBool("APP_DEBUG", true),
			Port:            env("APP_PORT", "8080"),
			CORSOrigins:     envList("APP_CORS_ORIGINS", "http://localhost:3000"),
			ShutdownTimeout: GetDuration("APP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Log: LogConfig{
			Level:    env("LOG_LEVEL", "info"),
			Encoding: env("LOG_ENCODING", encoding),
		},
		Supabase: SupabaseConfig{
			URL:       env("SUPABASE_URL", ""),
			SecretKey: env("SUPABASE_SECRET_KEY", ""),
			Schema:    env("SUPABASE_SCHEMA", "public"),
		},
		Spoonacular: SpoonacularConfig{
			APIKey:  env("SPOONACULAR_API_KEY", ""),
			BaseURL: strings.TrimRight(env("SPOONACULAR_BASE_URL", defaultSpoonacularURL), "/"),
		},
		Gemini: GeminiConfig{
			APIKey:  env("GEMINI_API_KEY", ""),
			BaseURL: env("GEMINI_BASE_URL", defaultGeminiURL),
		},
		HTTPClient: HTTPClientConfig{
			Timeout: GetDuration("HTTP_CLIENT_TIMEOUT", 480*time.Second),
		},
	}
}

// Validate reports every missing required setting in a single error.
func (c *Config) Validate() error {
	required := []struct {
		key, val string
	}{
		{"SUPABASE_URL", c.Supabase.URL},
		{"SUPABASE_SECRET_KEY", c.Supabase.SecretKey},
		{"SPOONACULAR_API_KEY", c.Spoonacular.APIKey},
		{"GEMINI_API_KEY", c.Gemini.APIKey},
	}

	var errs []error
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			errs = append(errs, fmt.Errorf("%s is required", r.key))
		}
	}
	if c.App.Port == "" {
		errs = append(errs, errors.New("APP_PORT must not be empty"))
	}
	if c.HTTPClient.Timeout <= 0 {
		errs = append(errs, errors.New("HTTP_CLIENT_TIMEOUT must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// IsLocal reports whether the app runs in the local environment.
func (c *Config) IsLocal() bool { return c.App.Env == "local" }

// Addr is the listen address built from App.Port.
func (c *Config) Addr() string { return ":" + c.App.Port }

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// GetDuration returns a time.Duration env value ("30s", "2m").
func GetDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envList(key, fallback string) []string {
	var out []string
	for _, part := range strings.Split(env(key, fallback), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
