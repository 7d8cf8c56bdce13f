package answerit

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/generation"
	"github.com/poiesic/answerit/generation/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, opts ...EngineOption) *Engine {
	t.Helper()
	engine, err := NewEngine("", append([]EngineOption{WithInMemory()}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })
	return engine
}

func seedCorpus(t *testing.T, engine *Engine, texts map[string]string) {
	t.Helper()
	ctx := context.Background()
	for id, text := range texts {
		_, err := engine.CorpusRepository().AddRecords(ctx, &core.Record{Id: id, Text: text})
		require.NoError(t, err)
	}
}

func TestNewEngine(t *testing.T) {
	t.Run("on-disk engine", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "corpus_db")
		engine, err := NewEngine(dir)
		require.NoError(t, err)
		require.NotNil(t, engine)
		defer engine.Close()

		assert.NotNil(t, engine.CorpusRepository())
	})

	t.Run("in-memory engine", func(t *testing.T) {
		engine := newTestEngine(t)
		assert.NotNil(t, engine.CorpusRepository())
	})

	t.Run("factory methods", func(t *testing.T) {
		engine := newTestEngine(t)
		pipeline, err := engine.NewIngestionPipeline()
		require.NoError(t, err)
		assert.NotNil(t, pipeline)
	})
}

func TestAnswer_SOPScenario(t *testing.T) {
	engine := newTestEngine(t)
	seedCorpus(t, engine, map[string]string{
		"sop1": "Calibrate pH meter daily using buffer solutions.",
	})

	answer, err := engine.Answer(context.Background(), "How do I calibrate the pH meter?", 2)
	require.NoError(t, err)

	assert.Contains(t, answer, "How do I calibrate the pH meter?")
	assert.Contains(t, answer, "Calibrate pH meter daily using buffer solutions.")
}

func TestAnswer_NoMatchReturnsFallback(t *testing.T) {
	engine := newTestEngine(t)
	seedCorpus(t, engine, map[string]string{
		"sop1": "Calibrate pH meter daily using buffer solutions.",
		"sop2": "Store samples at four degrees celsius.",
	})

	answer, err := engine.Answer(context.Background(), "centrifuge repair", 2)
	require.NoError(t, err)
	assert.Equal(t, generation.DefaultFallbackMessage, answer)
}

func TestAnswer_EmptyQueryReturnsFallback(t *testing.T) {
	engine := newTestEngine(t)
	seedCorpus(t, engine, map[string]string{
		"sop1": "Calibrate pH meter daily using buffer solutions.",
	})

	for _, query := range []string{"", "   \t  "} {
		answer, err := engine.Answer(context.Background(), query, 2)
		require.NoError(t, err)
		assert.Equal(t, generation.DefaultFallbackMessage, answer)
	}
}

func TestAnswer_EmptyCorpusReturnsFallback(t *testing.T) {
	engine := newTestEngine(t)

	answer, err := engine.Answer(context.Background(), "anything at all", 2)
	require.NoError(t, err)
	assert.Equal(t, generation.DefaultFallbackMessage, answer)
}

func TestAnswer_Idempotent(t *testing.T) {
	engine := newTestEngine(t)
	seedCorpus(t, engine, map[string]string{
		"sop1": "Calibrate pH meter daily using buffer solutions.",
		"sop2": "Check the pH meter battery weekly.",
		"sop3": "Store samples at four degrees celsius.",
	})

	ctx := context.Background()
	first, err := engine.Answer(ctx, "ph meter", 2)
	require.NoError(t, err)
	second, err := engine.Answer(ctx, "ph meter", 2)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnswer_DefaultK(t *testing.T) {
	generator := mock.NewMockGenerator()
	var seen []string
	generator.GenerateFunc = func(ctx context.Context, query string, contexts []string) (string, error) {
		seen = contexts
		return "ok", nil
	}

	engine := newTestEngine(t, WithGenerator(generator))
	seedCorpus(t, engine, map[string]string{
		"sop1": "First sample procedure.",
		"sop2": "Second sample procedure.",
		"sop3": "Third sample procedure.",
	})

	// k <= 0 falls back to the default of 2
	_, err := engine.Answer(context.Background(), "sample procedure", 0)
	require.NoError(t, err)
	assert.Len(t, seen, DefaultK)
}

func TestAnswer_GeneratorFailurePropagates(t *testing.T) {
	generator := mock.NewMockGenerator()
	generator.GenerateFunc = func(ctx context.Context, query string, contexts []string) (string, error) {
		return "", errors.New("service unavailable")
	}

	engine := newTestEngine(t, WithGenerator(generator))
	seedCorpus(t, engine, map[string]string{
		"sop1": "Calibrate pH meter daily using buffer solutions.",
	})

	_, err := engine.Answer(context.Background(), "ph meter", 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGeneratorFailed))
}

func TestAnswer_GenerationTimeout(t *testing.T) {
	generator := mock.NewMockGenerator()
	generator.GenerateFunc = func(ctx context.Context, query string, contexts []string) (string, error) {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(5 * time.Second):
			return "too late", nil
		}
	}

	engine := newTestEngine(t,
		WithGenerator(generator),
		WithGenerationTimeout(10*time.Millisecond),
	)
	seedCorpus(t, engine, map[string]string{
		"sop1": "Calibrate pH meter daily using buffer solutions.",
	})

	_, err := engine.Answer(context.Background(), "ph meter", 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGeneratorFailed))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestAnswer_ConcurrentQueries(t *testing.T) {
	engine := newTestEngine(t)
	seedCorpus(t, engine, map[string]string{
		"sop1": "Calibrate pH meter daily using buffer solutions.",
		"sop2": "Centrifuge tubes must be balanced before spinning.",
		"sop3": "Store samples at four degrees celsius.",
	})

	ctx := context.Background()
	queries := []string{"ph meter", "centrifuge", "samples", "no match here at all zz"}

	done := make(chan error, len(queries)*4)
	for i := 0; i < 4; i++ {
		for _, q := range queries {
			go func(q string) {
				_, err := engine.Answer(ctx, q, 2)
				done <- err
			}(q)
		}
	}
	for i := 0; i < len(queries)*4; i++ {
		assert.NoError(t, <-done)
	}
}
