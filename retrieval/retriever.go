package retrieval

import (
	"context"
	"log/slog"

	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/storage"
)

// Retriever runs the retrieval stage of the pipeline: it loads the corpus,
// scores it against the query, and ranks the results down to the top-K texts.
type Retriever struct {
	corpus storage.CorpusRepository
	scorer Scorer
	logger *slog.Logger
}

// Option configures a Retriever.
type Option func(*Retriever) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithScorer substitutes the scoring implementation, e.g. a vector-similarity
// backend. Default is the KeywordScorer.
func WithScorer(scorer Scorer) Option {
	return func(r *Retriever) error {
		if scorer == nil {
			return ErrScorerRequired
		}
		r.scorer = scorer
		return nil
	}
}

// NewRetriever creates a new retriever over the given corpus repository.
func NewRetriever(corpus storage.CorpusRepository, opts ...Option) (*Retriever, error) {
	if corpus == nil {
		return nil, ErrCorpusRepositoryRequired
	}

	r := &Retriever{
		corpus: corpus,
		scorer: NewKeywordScorer(),
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Retrieve returns the texts of the up-to-k records most relevant to the
// query. An empty result is a normal outcome, not an error.
func (r *Retriever) Retrieve(ctx context.Context, queryText string, k int) ([]string, error) {
	return r.RetrieveWithMonitor(ctx, queryText, k, nil)
}

// RetrieveWithMonitor retrieves with monitoring. The monitor receives
// callbacks at each stage; nil means no monitoring.
func (r *Retriever) RetrieveWithMonitor(ctx context.Context, queryText string, k int, monitor Monitor) ([]string, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(queryText)

	corpus, err := r.corpus.GetAllRecords(ctx)
	if err != nil {
		r.logger.Error("error loading corpus", "err", err)
		return nil, err
	}

	scored, err := r.scorer.Score(ctx, core.Query{Text: queryText}, corpus)
	if err != nil {
		r.logger.Error("error scoring corpus", "query", queryText, "err", err)
		return nil, err
	}
	monitor.AfterScoring(scored)

	texts := Rank(scored, k)
	monitor.Finish(texts)

	r.logger.Debug("retrieval complete",
		"query", queryText,
		"corpusSize", len(corpus),
		"matched", len(scored),
		"returned", len(texts))

	return texts, nil
}
