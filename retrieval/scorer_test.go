package retrieval

import (
	"context"
	"testing"

	"github.com/poiesic/answerit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corpusFromTexts(texts ...string) []*core.Record {
	corpus := make([]*core.Record, len(texts))
	for i, text := range texts {
		corpus[i] = &core.Record{
			Id:      core.IDFromContent(text),
			Text:    text,
			Ordinal: uint64(i),
		}
	}
	return corpus
}

func TestKeywordScorer_SubstringMatching(t *testing.T) {
	ctx := context.Background()
	scorer := NewKeywordScorer()

	corpus := corpusFromTexts(
		"Calibrate pH meter daily using buffer solutions.",
		"Centrifuge tubes must be balanced before spinning.",
	)

	scored, err := scorer.Score(ctx, core.Query{Text: "calibrate ph meter"}, corpus)
	require.NoError(t, err)
	require.Len(t, scored, 1)
	assert.Equal(t, 3, scored[0].Score)
	assert.Equal(t, corpus[0].Id, scored[0].Record.Id)
}

func TestKeywordScorer_MatchesInsideLargerWords(t *testing.T) {
	ctx := context.Background()
	scorer := NewKeywordScorer()

	// "ph" occurs inside "alphabet"; matching is not token-boundary aware
	corpus := corpusFromTexts("The alphabet has twenty-six letters.")

	scored, err := scorer.Score(ctx, core.Query{Text: "ph"}, corpus)
	require.NoError(t, err)
	require.Len(t, scored, 1)
	assert.Equal(t, 1, scored[0].Score)
}

func TestKeywordScorer_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	scorer := NewKeywordScorer()

	corpus := corpusFromTexts(
		"Calibrate pH meter daily using buffer solutions.",
		"Store samples at four degrees celsius.",
	)

	upper, err := scorer.Score(ctx, core.Query{Text: "PH METER"}, corpus)
	require.NoError(t, err)
	lower, err := scorer.Score(ctx, core.Query{Text: "ph meter"}, corpus)
	require.NoError(t, err)

	require.Equal(t, len(upper), len(lower))
	for i := range upper {
		assert.Equal(t, lower[i].Score, upper[i].Score)
		assert.Equal(t, lower[i].Record.Id, upper[i].Record.Id)
	}
}

func TestKeywordScorer_EmptyQuery(t *testing.T) {
	ctx := context.Background()
	scorer := NewKeywordScorer()

	corpus := corpusFromTexts("Calibrate pH meter daily using buffer solutions.")

	tests := []struct {
		name  string
		query string
	}{
		{"empty", ""},
		{"whitespace only", "   \t\n  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scored, err := scorer.Score(ctx, core.Query{Text: tt.query}, corpus)
			require.NoError(t, err)
			assert.Empty(t, scored)
		})
	}
}

func TestKeywordScorer_RepeatedTokensCountOnce(t *testing.T) {
	ctx := context.Background()
	scorer := NewKeywordScorer()

	corpus := corpusFromTexts("Calibrate pH meter daily using buffer solutions.")

	scored, err := scorer.Score(ctx, core.Query{Text: "ph ph ph ph"}, corpus)
	require.NoError(t, err)
	require.Len(t, scored, 1)
	assert.Equal(t, 1, scored[0].Score)
}

func TestKeywordScorer_ZeroScoresOmitted(t *testing.T) {
	ctx := context.Background()
	scorer := NewKeywordScorer()

	corpus := corpusFromTexts(
		"Calibrate pH meter daily using buffer solutions.",
		"Store samples at four degrees celsius.",
		"Record all results in the logbook.",
	)

	scored, err := scorer.Score(ctx, core.Query{Text: "meter"}, corpus)
	require.NoError(t, err)
	require.Len(t, scored, 1)
	for _, sr := range scored {
		assert.Positive(t, sr.Score)
	}
}

func TestKeywordScorer_PreservesCorpusOrder(t *testing.T) {
	ctx := context.Background()
	scorer := NewKeywordScorer()

	corpus := corpusFromTexts(
		"First sample procedure.",
		"Second sample procedure.",
		"Third sample procedure.",
	)

	scored, err := scorer.Score(ctx, core.Query{Text: "sample"}, corpus)
	require.NoError(t, err)
	require.Len(t, scored, 3)
	for i, sr := range scored {
		assert.Equal(t, corpus[i].Id, sr.Record.Id)
	}
}
