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

// The bisection routines below walk content digits position by position. A
// key that has run out of digits contributes the sentinel as a virtual digit:
// that is exactly how its encoded form compares at that position, so the
// walks never need a length-aware tie-break. All three routines are iterative
// loops rather than recursion; key length is bounded only by the insertion
// history, not the stack.

// digitAt returns the digit of s at position i, or the sentinel once s is
// exhausted.
func digitAt(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return sentinel
}

// beforeDigits returns the content digits of the shortest key strictly less
// than the key with content digits s. The interval being bisected is bounded
// below only by the unreachable "all digits minimal, forever", so the walk
// always finds a digit with room beneath it; at the latest, the virtual
// sentinel at the end of s has room. Never fails.
func beforeDigits(s string) []byte {
	for i := 0; ; i++ {
		switch d := digitAt(s, i); {
		case d > sentinel:
			// The prefix alone already ends below this digit.
			return []byte(s[:i])
		case d > minDigit:
			out := make([]byte, i+1)
			copy(out, s[:i])
			out[i] = d - 1
			return out
		}
	}
}

// afterDigits is the mirror image of beforeDigits: the content digits of the
// shortest key strictly greater than the key with content digits s.
func afterDigits(s string) []byte {
	for i := 0; ; i++ {
		switch d := digitAt(s, i); {
		case d < sentinel:
			return []byte(s[:i])
		case d < maxDigit:
			out := make([]byte, i+1)
			copy(out, s[:i])
			out[i] = d + 1
			return out
		}
	}
}

// betweenDigits returns the content digits of a key strictly between the
// keys with content digits a and b, or ErrNotOrdered when a >= b. The first
// position where the (virtual) digits differ decides everything: with more
// than one alphabet value between them the gap is split there, otherwise the
// walk descends one position into the narrowed interval.
func betweenDigits(a, b string) ([]byte, error) {
	for i := 0; ; i++ {
		da, db := digitAt(a, i), digitAt(b, i)
		if da == db {
			if da == sentinel {
				// Both sides exhausted: the keys are equal.
				return nil, ErrNotOrdered
			}
			continue
		}
		if da > db {
			return nil, ErrNotOrdered
		}

		// Digits usable between da and db; the sentinel is not in the
		// content alphabet and must not be counted.
		room := int(db) - int(da) - 1
		if da < sentinel && sentinel < db {
			room--
		}
		if room > 0 {
			mid := da + (db-da)/2
			if mid == sentinel {
				// Steer the split off the sentinel. room > 0 guarantees a
				// legal digit on at least one side of it.
				if da == sentinel-1 {
					mid = sentinel + 1
				} else {
					mid = sentinel - 1
				}
			}
			out := make([]byte, i+1)
			copy(out, a[:i])
			out[i] = mid
			return out, nil
		}

		// Adjacent digits: no room at this position.
		if da == sentinel {
			// a ended here, so any key carrying b's digit at this position
			// clears the lower bound; it only needs to stay below the rest
			// of b.
			rest := beforeDigits(b[i+1:])
			out := make([]byte, 0, i+1+len(rest))
			out = append(out, a[:i]...)
			out = append(out, db)
			out = append(out, rest...)
			return out, nil
		}
		// Keep a's digit; the result then only needs to clear the rest of a
		// from below, with no upper bound left.
		rest := afterDigits(a[i+1:])
		out := make([]byte, 0, i+1+len(rest))
		out = append(out, a[:i+1]...)
		out = append(out, rest...)
		return out, nil
	}
}
