// Package llmclient implements the LLM adapter: resolving model roles to
// concrete models, invoking the analyst/reviewer/embedding/translation
// roles over an OpenAI-compatible chat-completions endpoint, and parsing
// structured and freeform responses into the pipeline's Analysis and
// ConfirmationVerdict shapes.
package llmclient

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/codeready-toolchain/corvid/pkg/config"
)

// ThinkingLevel mirrors the optional "thinking" controls a reasoning model
// may expose.
type ThinkingLevel string

const (
	ThinkingLow    ThinkingLevel = "low"
	ThinkingMedium ThinkingLevel = "medium"
	ThinkingHigh   ThinkingLevel = "high"
)

// Options configures a single Generate/Stream call.
type Options struct {
	Temperature     float64
	ThinkingEnabled bool
	ThinkingLevel   ThinkingLevel
	MaxOutputTokens int
}

// Client is the sole component that talks to the configured LLM endpoint.
// One Client instance is shared by every stage engine; model-role
// resolution happens here so stage engines never see a concrete model
// name. Prompts arrive already rendered.
type Client struct {
	api     *openai.Client
	models  map[config.ModelRole]string
	timeout time.Duration
	logger  *slog.Logger

	logPrompts   bool
	logResponses bool
	masker       Masker
}

// Masker redacts secrets/PII from a prompt before it leaves the process.
// Implemented by *masking.Service; nil disables redaction.
type Masker interface {
	Mask(content string) string
}

// SetMasker installs content redaction. Applied to every outgoing prompt,
// before both the network call and any prompt logging.
func (c *Client) SetMasker(m Masker) {
	c.masker = m
}

// New constructs a Client from system/LLM configuration. apiKey is read by
// the caller from the environment variable named by cfg.APIKeyEnv, mirroring
// how dmsclient/ocrclient resolve their own tokens.
func New(cfg *config.LLMConfig, apiKey string, logPrompts, logResponses bool) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("llmclient: nil config")
	}
	if !cfg.Transport.IsValid() {
		return nil, fmt.Errorf("llmclient: unsupported transport %q", cfg.Transport)
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := openai.NewClient(opts...)

	return &Client{
		api:          &client,
		models:       cfg.Models,
		timeout:      cfg.RequestTimeout,
		logger:       slog.Default().With("component", "llmclient"),
		logPrompts:   logPrompts,
		logResponses: logResponses,
	}, nil
}

func (c *Client) modelFor(role config.ModelRole) (string, error) {
	name, ok := c.models[role]
	if !ok || name == "" {
		return "", fmt.Errorf("llmclient: no model configured for role %q", role)
	}
	return name, nil
}

// Generate invokes the model mapped to role with prompt, returning the
// first choice's message content. Blocking; callers that need the
// confirmation-loop's per-attempt structure call this once per attempt.
func (c *Client) Generate(ctx context.Context, role config.ModelRole, prompt string, opts Options) (string, error) {
	model, err := c.modelFor(role)
	if err != nil {
		return "", err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if c.masker != nil {
		prompt = c.masker.Mask(prompt)
	}
	if c.logPrompts {
		c.logger.Debug("llm request", "role", role, "model", model, "prompt", prompt)
	}

	params := openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if opts.Temperature > 0 {
		params.Temperature = openai.Float(opts.Temperature)
	}
	if opts.MaxOutputTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(opts.MaxOutputTokens))
	}

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("llmclient: generate via %s role: %w", role, classifyOpenAIError(err))
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llmclient: empty choices from %s role", role)
	}

	text := resp.Choices[0].Message.Content
	if c.logResponses {
		c.logger.Debug("llm response", "role", role, "model", model, "response", text)
	}
	return text, nil
}

// Token is one incremental chunk of a streamed completion.
type Token struct {
	Content string
	Done    bool
}

// Stream invokes role with prompt and returns a channel of incremental
// tokens, closed when the stream ends or the context is cancelled. Nothing
// in the pipeline streams: the confirmation loop and ad-hoc stage runs use
// Generate.
func (c *Client) Stream(ctx context.Context, role config.ModelRole, prompt string, opts Options) (<-chan Token, error) {
	model, err := c.modelFor(role)
	if err != nil {
		return nil, err
	}

	if c.masker != nil {
		prompt = c.masker.Mask(prompt)
	}

	params := openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if opts.Temperature > 0 {
		params.Temperature = openai.Float(opts.Temperature)
	}

	stream := c.api.Chat.Completions.NewStreaming(ctx, params)

	out := make(chan Token)
	go func() {
		defer close(out)
		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) == 0 {
				continue
			}
			delta := chunk.Choices[0].Delta.Content
			if delta == "" {
				continue
			}
			select {
			case out <- Token{Content: delta}:
			case <-ctx.Done():
				return
			}
		}
		if err := stream.Err(); err != nil {
			c.logger.Warn("llm stream ended with error", "role", role, "error", err)
		}
		select {
		case out <- Token{Done: true}:
		case <-ctx.Done():
		}
	}()
	return out, nil
}

// ListModels returns the model names the endpoint currently serves.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	page, err := c.api.Models.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("llmclient: list models: %w", err)
	}
	names := make([]string, 0, len(page.Data))
	for _, m := range page.Data {
		names = append(names, m.ID)
	}
	return names, nil
}
