// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package answerit is a minimal retrieval-then-generation engine: given a
// free-text question, it scores a fixed corpus of short text records by
// lexical overlap, selects the top-K records, and assembles them with the
// question into an answer.
package answerit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/answerit/generation"
	"github.com/poiesic/answerit/ingestion"
	"github.com/poiesic/answerit/retrieval"
	"github.com/poiesic/answerit/storage"
	"github.com/poiesic/answerit/storage/badger"
)

// DefaultK is the number of records retrieved when the caller doesn't ask
// for a specific count.
const DefaultK = 2

// ErrGeneratorFailed marks a failure of the generation collaborator. The
// engine propagates this as a distinguishable error rather than silently
// returning a degraded answer.
var ErrGeneratorFailed = errors.New("generation failed")

// Engine wires the corpus store, the retriever, and the generator into the
// two-stage answer pipeline. Each Answer call is independent and shares no
// mutable state with other in-flight calls; the corpus is read-only at
// query time, so concurrent calls need no locking.
type Engine struct {
	backend    *badger.Backend
	corpusRepo storage.CorpusRepository
	retriever  *retrieval.Retriever
	generator  generation.Generator
	genTimeout time.Duration
	defaultK   int
	logger     *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	inMemory   bool
	scorer     retrieval.Scorer
	generator  generation.Generator
	genTimeout time.Duration
	defaultK   int
}

// WithInMemory opens the corpus store in memory instead of on disk.
// Data is lost on Close; intended for tests and experiments.
func WithInMemory() EngineOption {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

// WithScorer substitutes the retrieval scoring implementation.
// Default is the keyword scorer.
func WithScorer(scorer retrieval.Scorer) EngineOption {
	return func(o *engineOptions) {
		o.scorer = scorer
	}
}

// WithGenerator substitutes the generation collaborator.
// Default is the deterministic generation.Composer.
func WithGenerator(generator generation.Generator) EngineOption {
	return func(o *engineOptions) {
		o.generator = generator
	}
}

// WithGenerationTimeout bounds the generation call. Zero (the default)
// means no engine-imposed deadline; the generation step stands in for a
// network call and may take non-trivial wall-clock time.
func WithGenerationTimeout(timeout time.Duration) EngineOption {
	return func(o *engineOptions) {
		o.genTimeout = timeout
	}
}

// WithDefaultK sets the retrieval count used when Answer is called with
// k <= 0. Default is DefaultK.
func WithDefaultK(k int) EngineOption {
	return func(o *engineOptions) {
		if k > 0 {
			o.defaultK = k
		}
	}
}

// NewEngine opens the corpus store at filePath and assembles the pipeline.
func NewEngine(filePath string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		defaultK: DefaultK,
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	corpusRepo, err := badger.NewCorpusRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	retrieverOpts := []retrieval.Option{}
	if options.scorer != nil {
		retrieverOpts = append(retrieverOpts, retrieval.WithScorer(options.scorer))
	}
	retriever, err := retrieval.NewRetriever(corpusRepo, retrieverOpts...)
	if err != nil {
		corpusRepo.Close()
		backend.Close()
		return nil, err
	}

	generator := options.generator
	if generator == nil {
		generator = generation.NewComposer()
	}

	return &Engine{
		backend:    backend,
		corpusRepo: corpusRepo,
		retriever:  retriever,
		generator:  generator,
		genTimeout: options.genTimeout,
		defaultK:   options.defaultK,
		logger:     slog.Default(),
	}, nil
}

// Close releases the corpus store.
func (e *Engine) Close() error {
	if err := e.corpusRepo.Close(); err != nil {
		e.logger.Error("error closing corpus repository", "err", err)
		return err
	}
	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// CorpusRepository returns the underlying corpus store.
func (e *Engine) CorpusRepository() storage.CorpusRepository {
	return e.corpusRepo
}

// NewIngestionPipeline creates an ingestion pipeline over the corpus store.
func (e *Engine) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(e.corpusRepo, opts...)
}

// Answer runs one retrieval-generation cycle for the query and returns the
// final answer. k <= 0 selects the engine's default retrieval count. An
// empty retrieval is a normal outcome: the generator's empty-input branch
// answers, and no error is returned.
func (e *Engine) Answer(ctx context.Context, queryText string, k int) (string, error) {
	return e.AnswerWithMonitor(ctx, queryText, k, nil)
}

// AnswerWithMonitor answers with retrieval monitoring. The monitor receives
// callbacks at each retrieval stage; nil means no monitoring.
func (e *Engine) AnswerWithMonitor(ctx context.Context, queryText string, k int, monitor retrieval.Monitor) (string, error) {
	if k <= 0 {
		k = e.defaultK
	}

	texts, err := e.retriever.RetrieveWithMonitor(ctx, queryText, k, monitor)
	if err != nil {
		return "", err
	}

	genCtx := ctx
	if e.genTimeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, e.genTimeout)
		defer cancel()
	}

	answer, err := e.generator.Generate(genCtx, queryText, texts)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneratorFailed, err)
	}
	return answer, nil
}
