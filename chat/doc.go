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


// Package chat orchestrates the conversational surface of the search
// assistant.
//
// An Assistant ties the catalog cache, the intent extractor, and the
// ranking pipeline to a session: fresh queries replace the session's
// search memory, load-more actions drain it, and a clear action resets
// everything. Rendering produces plain text suitable for both the REPL
// and the HTTP transcript.
package chat
