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


// Package ingestion loads (id, text) pairs into the corpus store.
//
// The Pipeline prepares records concurrently on a worker pool (id
// derivation, validation) and then writes each batch in input order, so the
// store's insertion ordinals follow the source ordering. Preparation is
// parallel; insertion is not, because ordinal assignment must be sequential.
package ingestion
