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


// Package session holds per-conversation state: the chat transcript
// and the search memory that lets "load more" resume a prior ranked
// result set.
//
// State is session-scoped by construction, never process-global: a
// Store hands out Session objects keyed by ID, and a session's clear
// action resets transcript and memory atomically. Nothing in this
// package persists past the session's lifetime.
package session
