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


// Package generation provides the answer-composition stage of the pipeline.
//
// The Generator interface is the boundary to the text-generation
// collaborator. Two implementations exist:
//
//   - Composer: the default, a deterministic formatter that concatenates the
//     query and the retrieved texts. It never fails and performs no I/O.
//   - generation/llm: an adapter that calls an OpenAI-compatible chat model
//     to synthesize an answer grounded in the retrieved texts.
//
// Test doubles live in generation/mock.
package generation
