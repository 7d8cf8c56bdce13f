package generation

import (
	"context"
	"strings"
)

const (
	// DefaultFallbackMessage is returned when retrieval produced no texts.
	DefaultFallbackMessage = "No relevant information was found in the corpus for this question."

	// DefaultSeparator is the boundary marker between retrieved texts.
	DefaultSeparator = "\n\n"

	defaultDisclaimer = "(This answer is assembled verbatim from retrieved records, not a synthesized summary.)"
)

// Composer is the default Generator: a deterministic formatter that embeds
// the query and every retrieved text, in order, separated by a boundary
// marker. It stands in for a real generation service and never fails.
type Composer struct {
	fallback   string
	separator  string
	disclaimer string
}

var _ Generator = (*Composer)(nil)

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithFallbackMessage sets the answer returned when no texts were retrieved.
// The exact wording is configuration, not contract.
func WithFallbackMessage(msg string) ComposerOption {
	return func(c *Composer) {
		c.fallback = msg
	}
}

// WithSeparator sets the boundary marker between retrieved texts.
func WithSeparator(sep string) ComposerOption {
	return func(c *Composer) {
		c.separator = sep
	}
}

// WithDisclaimer sets the trailing disclaimer line.
func WithDisclaimer(disclaimer string) ComposerOption {
	return func(c *Composer) {
		c.disclaimer = disclaimer
	}
}

// NewComposer creates a composer with default wording.
func NewComposer(opts ...ComposerOption) *Composer {
	c := &Composer{
		fallback:   DefaultFallbackMessage,
		separator:  DefaultSeparator,
		disclaimer: defaultDisclaimer,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FallbackMessage returns the configured no-information answer.
func (c *Composer) FallbackMessage() string {
	return c.fallback
}

// Generate implements Generator. The output contains the query text verbatim
// and every context verbatim in the given order; with no contexts it returns
// the fallback message, whatever the cause of the empty retrieval.
func (c *Composer) Generate(ctx context.Context, query string, contexts []string) (string, error) {
	if len(contexts) == 0 {
		return c.fallback, nil
	}

	var b strings.Builder
	b.WriteString("Question: ")
	b.WriteString(query)
	b.WriteString(c.separator)
	b.WriteString("Retrieved information:")
	for _, text := range contexts {
		b.WriteString(c.separator)
		b.WriteString(text)
	}
	b.WriteString(c.separator)
	b.WriteString(c.disclaimer)
	return b.String(), nil
}
