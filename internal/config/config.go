package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// #region errors
var (
	// ErrUnknownBackend is returned for an LLM_BACKEND other than gemini or grpc.
	ErrUnknownBackend = errors.New("config: unknown llm backend")
	// ErrMissingAPIKey is returned when the gemini backend has no key.
	ErrMissingAPIKey = errors.New("config: GEMINI_API_KEY is required for the gemini backend")
)

// #endregion errors

// #region backends
const (
	BackendGemini = "gemini"
	BackendGRPC   = "grpc"
)

// #endregion backends

// #region config
// Config holds every environment-driven setting.
type Config struct {
	DBPath            string        `env:"THERAPY_DB,default=therapy_assistant.db" validate:"required"`
	Backend           string        `env:"LLM_BACKEND,default=gemini"`
	GeminiAPIKey      string        `env:"GEMINI_API_KEY"`
	GeminiModel       string        `env:"GEMINI_MODEL,default=gemini-2.5-flash" validate:"required"`
	BridgeAddr        string        `env:"LLM_BRIDGE_ADDR,default=localhost:50061" validate:"required"`
	BridgeListen      string        `env:"BRIDGE_LISTEN,default=:50061" validate:"required"`
	LLMTimeout        time.Duration `env:"LLM_TIMEOUT,default=8s" validate:"gt=0"`
	LLMMaxRetries     int           `env:"LLM_MAX_RETRIES,default=2" validate:"gte=0,lte=10"`
	LLMRetryBase      time.Duration `env:"LLM_RETRY_BASE,default=250ms" validate:"gt=0"`
	HistoryTurns      int           `env:"HISTORY_TURNS,default=3" validate:"gte=0"`
	HistoryLimit      int           `env:"HISTORY_LIMIT,default=50" validate:"gt=0"`
	EnrichmentEnabled bool          `env:"ENRICHMENT_ENABLED,default=true"`
	LogLevel          string        `env:"LOG_LEVEL,default=info" validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFile           string        `env:"LOG_FILE"`
}

// #endregion config

// #region load
// Load reads .env (if present) into the process environment, then parses it.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	es, err := env.EnvironToEnvSet(os.Environ())
	if err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return LoadFrom(es)
}

// LoadFrom parses and validates an explicit environment set.
func LoadFrom(es env.EnvSet) (Config, error) {
	var cfg Config
	if err := env.Unmarshal(es, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges and backend-specific requirements.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Backend {
	case BackendGemini:
		if c.GeminiAPIKey == "" {
			return ErrMissingAPIKey
		}
	case BackendGRPC:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	return nil
}

// #endregion load
