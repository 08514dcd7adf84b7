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


package catalog

import "errors"

var (
	// ErrEmptyURL is returned when a sheet loader is created without a URL.
	ErrEmptyURL = errors.New("catalog URL required")

	// ErrLoaderRequired is returned when a cache is created without a loader.
	ErrLoaderRequired = errors.New("catalog loader required")

	// ErrBadStatus indicates the catalog source answered with a non-200 status.
	ErrBadStatus = errors.New("unexpected catalog response status")
)
