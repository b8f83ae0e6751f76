package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"quizroom/internal/config"
	"quizroom/internal/domain"
	"quizroom/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// OllamaGenerator implements domain.TextGenerator against an Ollama server
// through langchaingo.
type OllamaGenerator struct {
	llm     *ollama.LLM
	timeout time.Duration
}

// NewOllamaGenerator creates a new generator backed by the configured
// Ollama server and model.
func NewOllamaGenerator(cfg config.LLMConfig) (domain.TextGenerator, error) {
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("LLM server URL cannot be empty")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("LLM model name cannot be empty")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     10 * time.Second,
		},
	}

	llmClient, err := ollama.New(
		ollama.WithServerURL(cfg.ServerURL),
		ollama.WithModel(cfg.Model),
		ollama.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	logger.Get().Info("Initialized Ollama text generator",
		zap.String("server_url", cfg.ServerURL),
		zap.String("model", cfg.Model))

	return &OllamaGenerator{llm: llmClient, timeout: timeout}, nil
}

// GenerateText sends one prompt and returns the complete response string.
// Callers treat this collaborator as untrusted: errors and malformed output
// are absorbed upstream by the fallback policy.
func (g *OllamaGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	response, err := g.llm.Call(ctx, prompt, llms.WithTemperature(0.7))
	if err != nil {
		if err == context.DeadlineExceeded {
			return "", fmt.Errorf("LLM request timed out: %w", err)
		}
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	return response, nil
}

var _ domain.TextGenerator = (*OllamaGenerator)(nil)
