package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/openai"
	"github.com/urfave/cli/v3"
)

// LLM holds configuration of the spam screening model
type LLM struct {
	APIKey string
	Model  string
}

// Flags returns CLI flags for LLM configuration
func (l *LLM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key for spam screening",
			Category:    "LLM",
			Sources:     cli.EnvVars("AIWATCH_OPENAI_API_KEY", "OPENAI_API_KEY"),
			Destination: &l.APIKey,
		},
		&cli.StringFlag{
			Name:        "openai-model",
			Usage:       "OpenAI model name",
			Category:    "LLM",
			Value:       "gpt-4o-mini",
			Sources:     cli.EnvVars("AIWATCH_OPENAI_MODEL"),
			Destination: &l.Model,
		},
	}
}

// Configure creates a gollem LLM client
func (l *LLM) Configure(ctx context.Context) (gollem.LLMClient, error) {
	if !l.IsConfigured() {
		return nil, nil
	}

	client, err := openai.New(ctx, l.APIKey, openai.WithModel(l.Model))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create OpenAI client")
	}
	return client, nil
}

// ConfigureOptional creates an LLM client if configured, returns nil if not
func (l *LLM) ConfigureOptional(ctx context.Context, logger *slog.Logger) gollem.LLMClient {
	if !l.IsConfigured() {
		logger.Info("LLM not configured, spam screening disabled")
		return nil
	}

	logger.Info("Configuring LLM for spam screening",
		slog.String("model", l.Model),
	)

	client, err := l.Configure(ctx)
	if err != nil {
		logger.Warn("Failed to create LLM client", slog.Any("error", err))
		return nil
	}
	return client
}

// IsConfigured checks if the LLM is properly configured
func (l *LLM) IsConfigured() bool {
	return l.APIKey != ""
}

// LogValue returns structured log value
func (l LLM) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("model", l.Model),
		slog.Bool("hasAPIKey", l.APIKey != ""),
	)
}
