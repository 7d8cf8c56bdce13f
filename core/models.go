package core

import (
	"encoding/hex"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// IDFromContent generates a deterministic record identifier from text content
// using BLAKE2b hashing. Identical content always produces the same identifier,
// so re-ingesting an unchanged corpus surfaces as duplicate ids rather than
// silently doubling the store.
func IDFromContent(text string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// Record is a single corpus entry: a stable identifier and a short text body.
// Records are immutable once loaded; the corpus is read-only at query time.
type Record struct {
	Id         string
	Text       string
	Ordinal    uint64    // Insertion sequence number assigned by the corpus store
	InsertedAt time.Time // When the record was inserted into the store
}

// Query is a single free-text retrieval request. It is ephemeral: created per
// request and discarded once the answer is produced.
type Query struct {
	Text string
}

// ScoredRecord pairs a record with its relevance score for one query.
// Scores are always strictly positive; zero-scoring records are never emitted
// by a Scorer.
type ScoredRecord struct {
	Record *Record
	Score  int
}
