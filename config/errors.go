//
// Copyright 2020, 2021 Kenneth J. Gibson
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package config

import "github.com/pkg/errors"

var (
	// ErrUnknownConstraint means a document named a constraint the registry
	// does not recognize.
	ErrUnknownConstraint = errors.New("config: unknown constraint name")

	// ErrMissingSize means a document gave neither dimensions, size, nor an
	// initial grid wide enough to infer one.
	ErrMissingSize = errors.New("config: neither dimensions, size, nor initial grid given")

	// ErrMalformedEntry means a constraint list entry was not a recognized
	// string, single-key dictionary, or name+params dictionary shape.
	ErrMalformedEntry = errors.New("config: malformed constraint entry")

	// ErrIncludeNotFound means a bare-string entry looked like a file
	// include but no such file exists relative to the loader's base
	// directory.
	ErrIncludeNotFound = errors.New("config: include not found")

	// ErrIncludeCycle means resolving includes revisited a file already on
	// the current inclusion path.
	ErrIncludeCycle = errors.New("config: circular include")
)
