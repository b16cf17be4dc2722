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

import (
	"encoding/hex"

	"github.com/cockroachdb/errors"
)

const (
	// sentinel terminates every encoded key and never appears as a content
	// digit. Its value is the midpoint of the byte range, so a key that ends
	// compares correctly against any key that continues.
	sentinel byte = 0x80

	minDigit byte = 0x00
	maxDigit byte = 0xff
)

// Key is an order-maintenance key. It is an immutable value type backed by a
// string; keys may be copied freely, compared with ==, and used as map keys.
// The zero Key is the default key, the midpoint of the key space.
type Key struct {
	// digits holds the content digits only; the trailing sentinel is implied
	// and materialized by Bytes. No digit ever equals the sentinel.
	digits string
}

// Default returns the canonical reference key: no content digits, encoded as
// the single sentinel byte 0x80. It is the same for every call and is the
// natural first key of an empty sequence.
func Default() Key {
	return Key{}
}

// Before returns a key strictly less than k.
func Before(k Key) Key {
	return Key{digits: string(beforeDigits(k.digits))}
}

// After returns a key strictly greater than k.
func After(k Key) Key {
	return Key{digits: string(afterDigits(k.digits))}
}

// Between returns a key strictly between a and b. It fails with ErrNotOrdered
// when a is not strictly less than b; the bounds are never swapped.
func Between(a, b Key) (Key, error) {
	d, err := betweenDigits(a.digits, b.digits)
	if err != nil {
		return Key{}, errors.Wrapf(err, "no key between %s and %s", a, b)
	}
	return Key{digits: string(d)}, nil
}

// New is the generalized constructor over optional bounds: with neither
// bound it returns Default; with only after it returns Before(*after); with
// only before it returns After(*before); with both it returns
// Between(*before, *after), failing under the same condition.
func New(before, after *Key) (Key, error) {
	switch {
	case before == nil && after == nil:
		return Default(), nil
	case before == nil:
		return Before(*after), nil
	case after == nil:
		return After(*before), nil
	default:
		return Between(*before, *after)
	}
}

// Compare returns -1, 0, or +1 according to the total key order. It is
// exactly unsigned lexicographic comparison of the encoded byte forms,
// computed here without materializing them.
func (k Key) Compare(o Key) int {
	for i := 0; ; i++ {
		da, db := digitAt(k.digits, i), digitAt(o.digits, i)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		case da == sentinel:
			// Both keys ended at the same position.
			return 0
		}
	}
}

// Less reports whether k orders strictly before o.
func (k Key) Less(o Key) bool {
	return k.Compare(o) < 0
}

// Equal reports whether k and o are the same key. Equivalent to k == o.
func (k Key) Equal(o Key) bool {
	return k.digits == o.digits
}

// Bytes returns the canonical encoded form: the content digits followed by
// the sentinel byte. The result is a fresh slice owned by the caller. This
// form is stable forever and is the one to persist or to hand to an ordered
// byte-keyed store.
func (k Key) Bytes() []byte {
	b := make([]byte, len(k.digits)+1)
	copy(b, k.digits)
	b[len(k.digits)] = sentinel
	return b
}

// FromBytes reconstructs a key from its encoded byte form. It fails with
// ErrInvalidKey unless the input is one or more bytes, ends with the
// sentinel, and contains the sentinel nowhere else.
func FromBytes(b []byte) (Key, error) {
	if len(b) == 0 {
		return Key{}, errors.Wrap(ErrInvalidKey, "empty input")
	}
	if b[len(b)-1] != sentinel {
		return Key{}, errors.Wrapf(ErrInvalidKey, "missing trailing sentinel in %x", b)
	}
	digits := b[:len(b)-1]
	for i := 0; i < len(digits); i++ {
		if digits[i] == sentinel {
			return Key{}, errors.Wrapf(ErrInvalidKey, "interior sentinel at offset %d in %x", i, b)
		}
	}
	return Key{digits: string(digits)}, nil
}

// String returns the displayable form: the encoded bytes as lowercase hex.
// Each byte maps to a fixed-width digit pair, so ordinary string comparison
// of the hex forms agrees with the key order.
func (k Key) String() string {
	return hex.EncodeToString(k.Bytes())
}

// Parse reconstructs a key from its hex displayable form.
func Parse(s string) (Key, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Key{}, errors.Wrapf(ErrInvalidKey, "not a hex key: %q", s)
	}
	return FromBytes(b)
}
