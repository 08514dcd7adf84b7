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


// Package ai defines the language-model boundary for intent
// extraction.
//
// The model is treated as an opaque, fallible text-in/text-out
// collaborator: subpackage openai implements the interface against any
// OpenAI-compatible chat API, and subpackage mock provides test
// doubles. Every implementation owns the deterministic fallback path,
// so a failed or unconfigured model never surfaces as an error to the
// search pipeline.
package ai
