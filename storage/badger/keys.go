package badger

import (
	"encoding/binary"
	"fmt"
)

// Key prefixes for different data types
const (
	recordPrefix        = "correc"
	recordOrdinalPrefix = "correco"
	recordOrdinalSeq    = "correcseq"
)

// makeRecordKey generates a key for a corpus record by id.
func makeRecordKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", recordPrefix, id))
}

// makeOrdinalKey generates a key for the insertion-order index.
// Format: prefix:ordinal
func makeOrdinalKey(ordinal uint64) []byte {
	prefix := recordOrdinalPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for ordinal
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort follows insertion order
	binary.BigEndian.PutUint64(buf[offset:], ordinal)
	return buf
}

// ordinalIndexPrefix returns the prefix shared by all insertion-order index keys.
func ordinalIndexPrefix() []byte {
	return []byte(recordOrdinalPrefix + ":")
}
