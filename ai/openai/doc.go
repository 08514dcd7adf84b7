// Copyright 2026 Poiesic Systems
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


// Package openai implements intent extraction against OpenAI-compatible
// chat APIs (Gemini's compatibility endpoint, OpenAI, Ollama, vLLM, ...).
//
// The extractor asks for JSON mode at temperature zero, strips markdown
// code fences, repairs common JSON damage, and coerces the untyped
// response into the strict SearchIntent shape. Failures of any kind
// degrade to the deterministic fallback intent.
package openai
