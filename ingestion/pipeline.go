package ingestion

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/storage"
)

const defaultBatchSize = 100

// Pipeline loads records into the corpus store in batches.
type Pipeline struct {
	corpusRepository storage.CorpusRepository
	pool             *ants.Pool
	batchSize        int
	logger           *slog.Logger
	closed           bool
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for record preparation.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets the number of records written per store transaction.
// Default is 100.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline over the corpus store.
func NewPipeline(corpusRepository storage.CorpusRepository, opts ...Option) (*Pipeline, error) {
	if corpusRepository == nil {
		return nil, ErrCorpusRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		corpusRepository: corpusRepository,
		pool:             pool,
		batchSize:        defaultBatchSize,
		logger:           slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			pool.Release()
			return nil, err
		}
	}

	return p, nil
}

// Close releases the worker pool. The corpus repository is not closed; its
// lifecycle belongs to the caller.
func (p *Pipeline) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	p.pool.Release()
	return nil
}

// IngestRecords prepares and stores the given records, preserving their
// input order in the store's insertion ordinals. Returns the number of
// records stored. On the first error the pipeline stops; records from
// fully written batches stay in the store.
func (p *Pipeline) IngestRecords(ctx context.Context, records []*core.Record) (int, error) {
	if p.closed {
		return 0, ErrPipelineClosed
	}

	stored := 0
	for start := 0; start < len(records); start += p.batchSize {
		end := start + p.batchSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[start:end]

		if err := p.prepareBatch(batch); err != nil {
			return stored, err
		}

		if _, err := p.corpusRepository.AddRecords(ctx, batch...); err != nil {
			p.logger.Error("error storing batch", "offset", start, "size", len(batch), "err", err)
			return stored, err
		}
		stored += len(batch)

		p.logger.Debug("batch stored", "offset", start, "size", len(batch))
	}

	p.logger.Info("ingestion complete", "records", stored)
	return stored, nil
}

// IngestReader parses records from r (see ReadRecords) and ingests them.
func (p *Pipeline) IngestReader(ctx context.Context, r io.Reader) (int, error) {
	records, err := ReadRecords(r)
	if err != nil {
		return 0, err
	}
	return p.IngestRecords(ctx, records)
}

// prepareBatch derives ids and validates records concurrently on the pool.
// The batch slice itself is not reordered; only record fields are filled in.
func (p *Pipeline) prepareBatch(batch []*core.Record) error {
	var wg sync.WaitGroup
	errs := make([]error, len(batch))

	for i, record := range batch {
		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			if record != nil && record.Id == "" {
				record.Id = core.IDFromContent(record.Text)
			}
			errs[i] = core.ValidateRecord(record)
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
