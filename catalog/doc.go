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


// Package catalog loads the talk catalog from its tabular source.
//
// The source is a published spreadsheet CSV export, treated strictly as
// a read-only data provider. The Cache decorator owns the boundary
// policy: a fixed 600-second cache window, last-known-good snapshot
// fallback, and degradation to an empty catalog instead of errors.
package catalog
