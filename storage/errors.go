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


package storage

import "errors"

var (
	// ErrNoSnapshot indicates no catalog snapshot has been saved yet.
	ErrNoSnapshot = errors.New("no catalog snapshot")

	// ErrBackendRequired is returned when a store is created without a backend.
	ErrBackendRequired = errors.New("storage backend required")

	// ErrCorruptSnapshot indicates a stored snapshot failed to deserialize.
	ErrCorruptSnapshot = errors.New("corrupt catalog snapshot")
)
