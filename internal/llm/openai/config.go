package openai

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gradepilot/gradepilot/constants"
)

// Config for the OpenAI client.
type Config struct {
	APIKey  string        // if empty, falls back to env OPENAI_API_KEY
	BaseURL string        // default https://api.openai.com/v1
	Model   string        // e.g., "gpt-4o-mini"
	Timeout time.Duration // http client timeout
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// TemperatureFor maps grading strictness to sampling temperature. Strict
// grading wants deterministic output; lenient grading tolerates variance.
func TemperatureFor(s constants.Strictness) float32 {
	switch s {
	case constants.StrictnessStrict:
		return 0.1
	case constants.StrictnessLenient:
		return 0.7
	default:
		return 0.3
	}
}
