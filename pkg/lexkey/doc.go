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

// Package lexkey produces order-maintenance keys: opaque byte strings that
// can always be bisected, so that a new key strictly before, after, or
// between any existing keys can be synthesized without renumbering anything
// and without coordination between writers.
//
// A key is a sequence of content digits (any byte value except 0x80)
// followed by a single 0x80 sentinel byte. The sentinel terminates every key
// and never appears as a content digit, which makes the encoding prefix-free:
// no encoded key is a proper prefix of another. Because the sentinel sits at
// the midpoint of the byte range, "the key ends here" sorts exactly where a
// virtual midpoint digit would, and plain unsigned byte-wise comparison of
// the encoded forms agrees with the logical order in every case. Keys can
// therefore be used directly as sort keys in any ordered byte-keyed store
// with no custom comparator.
//
// New keys are built by digit-wise bisection. When the bounding digits leave
// room, the new key takes the shared prefix plus one digit in the gap; when
// they are adjacent, the walk descends one position into the narrowed
// interval, which grows the key by one digit. Repeatedly inserting at the
// same spot grows keys logarithmically in the number of insertions; nothing
// rebalances or shortens existing keys.
//
// Keys are immutable values. Any number of goroutines may construct,
// compare, and serialize keys concurrently without synchronization.
// Concurrent actors inserting at "the same" logical position simply obtain
// different, well-ordered keys.
package lexkey
