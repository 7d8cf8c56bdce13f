package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/storage"
)

// CorpusRepository implements storage.CorpusRepository for BadgerDB.
type CorpusRepository struct {
	backend    *Backend
	ordinalSeq *badger.Sequence
}

var _ storage.CorpusRepository = (*CorpusRepository)(nil)

// NewCorpusRepository creates a new CorpusRepository.
func NewCorpusRepository(backend *Backend) (*CorpusRepository, error) {
	ordinalSeq, err := backend.GetSequence(recordOrdinalSeq)
	if err != nil {
		return nil, err
	}

	return &CorpusRepository{
		backend:    backend,
		ordinalSeq: ordinalSeq,
	}, nil
}

// Close releases the ordinal sequence.
func (r *CorpusRepository) Close() error {
	return r.ordinalSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *CorpusRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddRecords adds one or more records to the corpus.
// Records with an empty Id get a content-based id. Each record is assigned
// the next insertion ordinal, so GetAllRecords replays input order.
func (r *CorpusRepository) AddRecords(ctx context.Context, records ...*core.Record) ([]*core.Record, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			if record != nil && record.Id == "" {
				record.Id = core.IDFromContent(record.Text)
			}
			if err := core.ValidateRecord(record); err != nil {
				return err
			}

			key := makeRecordKey(record.Id)
			if _, err := tx.Get(key); err == nil {
				return storage.ErrDuplicateKey
			} else if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}

			ordinal, err := r.ordinalSeq.Next()
			if err != nil {
				return err
			}
			record.Ordinal = ordinal
			record.InsertedAt = time.Now().UTC()

			// Store primary record
			if err := tx.Set(key, storage.MarshalRecord(record)); err != nil {
				return err
			}

			// Update insertion-order index
			if err := tx.Set(makeOrdinalKey(record.Ordinal), []byte(record.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetRecord retrieves a single record by id.
func (r *CorpusRepository) GetRecord(ctx context.Context, id string) (*core.Record, error) {
	var result *core.Record
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readRecord(tx, makeRecordKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetAllRecords retrieves every record in the corpus, in insertion order.
// It walks the ordinal index, whose BigEndian keys sort lexicographically
// in insertion order, and resolves each entry to its full record.
func (r *CorpusRepository) GetAllRecords(ctx context.Context) ([]*core.Record, error) {
	var results []*core.Record
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = ordinalIndexPrefix()
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id string
			if err := iter.Item().Value(func(val []byte) error {
				id = string(val)
				return nil
			}); err != nil {
				return err
			}

			record, err := r.readRecord(tx, makeRecordKey(id))
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)

	return results, err
}

// CountRecords returns the number of records in the corpus.
func (r *CorpusRepository) CountRecords(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = ordinalIndexPrefix()
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// DeleteRecords removes records by their ids, along with their index entries.
func (r *CorpusRepository) DeleteRecords(ctx context.Context, ids ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeRecordKey(id)
			record, err := r.readRecord(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(makeOrdinalKey(record.Ordinal)); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// readRecord reads and unmarshals a record by key.
// Returns nil without error if the key doesn't exist.
func (r *CorpusRepository) readRecord(tx *badger.Txn, key []byte) (*core.Record, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var record *core.Record
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalRecord(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
