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


// Package storage provides the corpus storage abstraction layer for answerit.
//
// This package defines the repository interface that decouples the corpus
// store implementation from the retrieval logic. It allows different storage
// backends (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// # Constructor Return Type Pattern
//
// Public constructors return the storage.CorpusRepository interface to
// enforce abstraction and enable multiple backend implementations:
//
//	repo, err := badger.NewCorpusRepository(backend)  // returns storage.CorpusRepository
//
// # Ordering Guarantee
//
// GetAllRecords returns records in insertion (ordinal) order. The retrieval
// ranker relies on this ordering as its deterministic tie-break for records
// with equal relevance scores, so backends must preserve it.
//
// # Thread Safety
//
// All repository implementations must be thread-safe. The corpus is read-only
// at query time; writes happen during ingestion only.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and timeout
// support.
package storage
