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


package storage

import (
	"fmt"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/answerit/core"
)

// RecordMUS is the MUS format serializer for core.Record.
// Timestamps are encoded as Unix microseconds.
var RecordMUS = recordMUS{}

type recordMUS struct{}

func (recordMUS) Marshal(r core.Record, bs []byte) (n int) {
	n = ord.String.Marshal(r.Id, bs)
	n += ord.String.Marshal(r.Text, bs[n:])
	n += varint.Uint64.Marshal(r.Ordinal, bs[n:])
	n += varint.Int64.Marshal(r.InsertedAt.UnixMicro(), bs[n:])
	return
}

func (recordMUS) Unmarshal(bs []byte) (r core.Record, n int, err error) {
	var n1 int
	r.Id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	r.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Ordinal, n1, err = varint.Uint64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var micros int64
	micros, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.InsertedAt = time.UnixMicro(micros).UTC()
	return
}

func (recordMUS) Size(r core.Record) (size int) {
	size = ord.String.Size(r.Id)
	size += ord.String.Size(r.Text)
	size += varint.Uint64.Size(r.Ordinal)
	size += varint.Int64.Size(r.InsertedAt.UnixMicro())
	return
}

// MarshalRecord serializes a Record to bytes.
func MarshalRecord(record *core.Record) []byte {
	buf := make([]byte, RecordMUS.Size(*record))
	RecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalRecord deserializes a Record from bytes.
func UnmarshalRecord(data []byte) (*core.Record, error) {
	record, _, err := RecordMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &record, nil
}
