package retrieval

import (
	"context"
	"strings"

	"github.com/poiesic/answerit/core"
)

// Scorer computes a relevance score for each corpus record against a query.
// Implementations must be thread-safe for concurrent use and must only emit
// records with a strictly positive score, preserving corpus order.
type Scorer interface {
	// Score scores every record in the corpus against the query.
	// Records scoring zero are omitted entirely, not returned with score 0.
	Score(ctx context.Context, query core.Query, corpus []*core.Record) ([]core.ScoredRecord, error)
}

// KeywordScorer scores records by lexical overlap: the score of a record is
// the number of distinct query tokens that occur as substrings anywhere in
// the record's text, case-insensitively. A token may match inside a larger
// word ("ph" matches "alphabet"); matching is not token-boundary aware.
type KeywordScorer struct{}

var _ Scorer = (*KeywordScorer)(nil)

// NewKeywordScorer creates a keyword scorer.
func NewKeywordScorer() *KeywordScorer {
	return &KeywordScorer{}
}

// Score implements Scorer. Scoring of records is independent: no record's
// score depends on another record. An empty or whitespace-only query yields
// zero tokens, so every record scores zero and nothing is returned.
func (s *KeywordScorer) Score(ctx context.Context, query core.Query, corpus []*core.Record) ([]core.ScoredRecord, error) {
	tokens := queryTokens(query.Text)
	if len(tokens) == 0 {
		return nil, nil
	}

	var scored []core.ScoredRecord
	for _, record := range corpus {
		if record == nil {
			continue
		}
		text := strings.ToLower(record.Text)
		score := 0
		for _, token := range tokens {
			if strings.Contains(text, token) {
				score++
			}
		}
		if score > 0 {
			scored = append(scored, core.ScoredRecord{Record: record, Score: score})
		}
	}
	return scored, nil
}

// queryTokens splits a query into distinct lowercase whitespace-delimited
// tokens. A word repeated in the query counts once.
func queryTokens(query string) []string {
	words := strings.Fields(strings.ToLower(query))
	seen := make(map[string]bool, len(words))
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if seen[word] {
			continue
		}
		seen[word] = true
		tokens = append(tokens, word)
	}
	return tokens
}
