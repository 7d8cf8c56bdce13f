package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/answerit/generation"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const systemPrompt = `You answer questions using only the reference passages supplied with each question.
Quote or paraphrase the passages; do not invent facts beyond them.
If the passages do not answer the question, say so plainly.`

// Generator implements generation.Generator against an OpenAI-compatible
// chat API. It is the real-service counterpart to generation.Composer.
type Generator struct {
	client      llms.Model
	temperature float64
	fallback    string
	logger      *slog.Logger
}

// newGenerator is an internal constructor that returns the concrete type.
func newGenerator(config *Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.token()),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	fallback := config.Fallback
	if fallback == "" {
		fallback = generation.DefaultFallbackMessage
	}

	return &Generator{
		client:      client,
		temperature: config.Temperature,
		fallback:    fallback,
		logger:      slog.Default().With("component", "llm-generator"),
	}, nil
}

// NewGenerator creates an LLM-backed generator using the provided configuration.
//
// Returns generation.Generator interface to enforce abstraction.
func NewGenerator(config *Config) (generation.Generator, error) {
	return newGenerator(config)
}

// Generate synthesizes an answer grounded in the retrieved contexts.
// With no contexts it returns the fallback message without calling the
// service: an empty retrieval is a normal outcome, not something to route
// through the model.
func (g *Generator) Generate(ctx context.Context, query string, contexts []string) (string, error) {
	if len(contexts) == 0 {
		return g.fallback, nil
	}

	userPrompt := buildUserPrompt(query, contexts)
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	response, err := g.client.GenerateContent(ctx, content, llms.WithTemperature(g.temperature))
	if err != nil {
		g.logger.Error("failed to generate answer", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		g.logger.Warn("no choices returned from model")
		return "", fmt.Errorf("generation service returned no choices")
	}

	return strings.TrimSpace(response.Choices[0].Content), nil
}

// buildUserPrompt lays out the retrieved passages and the question.
func buildUserPrompt(query string, contexts []string) string {
	var b strings.Builder
	b.WriteString("Reference passages:\n")
	for i, text := range contexts {
		fmt.Fprintf(&b, "\n[%d] %s\n", i+1, text)
	}
	b.WriteString("\nQuestion: ")
	b.WriteString(query)
	return b.String()
}
