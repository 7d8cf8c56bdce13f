package storage

import (
	"context"

	"github.com/poiesic/answerit/core"
)

// CorpusRepository provides operations for managing the text corpus.
// Implementations must be thread-safe and support concurrent access.
type CorpusRepository interface {
	// AddRecords adds one or more records to the corpus.
	// For records with an empty Id, derives a content-based id.
	// Assigns insertion ordinals from the store sequence and sets InsertedAt.
	// Returns ErrDuplicateKey if a record with the same id already exists.
	// Returns the records with ids, ordinals, and timestamps populated.
	AddRecords(ctx context.Context, records ...*core.Record) ([]*core.Record, error)

	// GetRecord retrieves a single record by id.
	// Returns ErrNotFound if the record doesn't exist.
	GetRecord(ctx context.Context, id string) (*core.Record, error)

	// GetAllRecords retrieves every record in the corpus, in insertion
	// (ordinal) order. The ordering is relied on by the ranker's tie-break.
	GetAllRecords(ctx context.Context) ([]*core.Record, error)

	// CountRecords returns the number of records in the corpus.
	CountRecords(ctx context.Context) (int, error)

	// DeleteRecords removes records by their ids.
	// Returns ErrNotFound if any record doesn't exist.
	// Maintenance path only; the corpus is read-only at query time.
	DeleteRecords(ctx context.Context, ids ...string) error

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}
