package llm

import (
	"context"
	"testing"

	"github.com/poiesic/answerit/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An empty retrieval is answered locally, so no service needs to be running.
func TestGenerate_EmptyContextsFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("default fallback", func(t *testing.T) {
		generator, err := NewGenerator(NewConfig())
		require.NoError(t, err)

		answer, err := generator.Generate(ctx, "centrifuge repair", nil)
		require.NoError(t, err)
		assert.Equal(t, generation.DefaultFallbackMessage, answer)
	})

	t.Run("configured fallback", func(t *testing.T) {
		generator, err := NewGenerator(NewConfig(
			WithFallback("Nothing on file."),
		))
		require.NoError(t, err)

		answer, err := generator.Generate(ctx, "centrifuge repair", []string{})
		require.NoError(t, err)
		assert.Equal(t, "Nothing on file.", answer)
	})
}
