package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	sdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/yungbote/startpage-backend/internal/observability"
	"github.com/yungbote/startpage-backend/internal/platform/envutil"
	"github.com/yungbote/startpage-backend/internal/platform/logger"
)

// Client is the chat model API used by the flash card generator.
type Client interface {
	// Plain text (no schema)
	GenerateText(ctx context.Context, system string, user string) (string, error)
}

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

// ConfigFromEnv reads OPENAI_API_KEY, OPENAI_BASE_URL, OPENAI_MODEL,
// OPENAI_TEMPERATURE and OPENAI_TIMEOUT_SECONDS.
func ConfigFromEnv() Config {
	return Config{
		APIKey:      envutil.String("OPENAI_API_KEY", ""),
		BaseURL:     envutil.String("OPENAI_BASE_URL", ""),
		Model:       envutil.String("OPENAI_MODEL", "gpt-3.5-turbo"),
		Temperature: envutil.Float("OPENAI_TEMPERATURE", 0.7),
		Timeout:     time.Duration(envutil.Int("OPENAI_TIMEOUT_SECONDS", 60)) * time.Second,
	}
}

type client struct {
	log         *logger.Logger
	api         sdk.Client
	model       string
	temperature float64
	timeout     time.Duration
}

// NewClient fails when no API key is configured. Requests are never retried.
func NewClient(cfg Config, log *logger.Logger) (Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("missing OPENAI_API_KEY")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-3.5-turbo"
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")+"/"))
	}

	return &client{
		log:         log.With("service", "OpenAIClient"),
		api:         sdk.NewClient(opts...),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}, nil
}

func (c *client) GenerateText(ctx context.Context, system string, user string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.api.Chat.Completions.New(ctx, sdk.ChatCompletionNewParams{
		Model: sdk.ChatModel(c.model),
		Messages: []sdk.ChatCompletionMessageParamUnion{
			sdk.SystemMessage(system),
			sdk.UserMessage(user),
		},
		Temperature: sdk.Float(c.temperature),
	})
	observability.Current().ObserveLLMRequest(c.model, err, time.Since(start))
	if err != nil {
		c.log.Warn("chat completion failed", "model", c.model, "error", err)
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai chat completion: no choices returned")
	}
	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("openai chat completion: empty message")
	}
	c.log.Debug("chat completion done", "model", c.model, "duration_ms", time.Since(start).Milliseconds())
	return text, nil
}
