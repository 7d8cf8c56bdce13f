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


// Package retrieval provides lexical-overlap retrieval over a text corpus.
//
// The Retriever type implements the first stage of the answer pipeline:
//   - Scoring via a pluggable Scorer (default: keyword substring matching)
//   - Ranking by score descending with a stable insertion-order tie-break
//   - Truncation to the requested top-K
//
// The default KeywordScorer is a lexical-overlap heuristic. A
// vector-similarity backend can be substituted by implementing the Scorer
// interface; the Retriever does not change.
package retrieval
