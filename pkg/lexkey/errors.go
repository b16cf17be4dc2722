// Copyright 2024 The Lexkey Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package lexkey

import "github.com/cockroachdb/errors"

// ErrNotOrdered is returned by Between and New when the requested bounds are
// not strictly ordered (a >= b). The bounds are never swapped or otherwise
// corrected on the caller's behalf.
var ErrNotOrdered = errors.New("keys are not strictly ordered")

// ErrInvalidKey is returned by every decoding path (bytes, hex, JSON, CBOR,
// SQL scan) when the input is not a well-formed self-terminating key.
var ErrInvalidKey = errors.New("invalid key encoding")
