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
	"bytes"
	"sort"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Key {
	t.Helper()
	k, err := Parse(s)
	require.NoError(t, err)
	return k
}

func TestDefault(t *testing.T) {
	if got := Default().Bytes(); !bytes.Equal(got, []byte{0x80}) {
		t.Errorf("expected default key [0x80], got %x", got)
	}
	// The default key is history-independent and equal to the zero value.
	var zero Key
	if !Default().Equal(zero) {
		t.Error("zero Key differs from Default()")
	}
	After(Default())
	Before(Default())
	if got := Default().Bytes(); !bytes.Equal(got, []byte{0x80}) {
		t.Errorf("default key changed after unrelated constructions: %x", got)
	}
}

func TestBeforeAfter(t *testing.T) {
	testCases := []struct {
		op      func(Key) Key
		in, out string
	}{
		{After, "80", "8180"},
		{After, "8180", "8280"},
		{After, "ff80", "ff8180"},
		{After, "ff8180", "ff8280"},
		{After, "7f80", "80"},
		{After, "817f80", "8280"},
		{Before, "80", "7f80"},
		{Before, "7f80", "7e80"},
		{Before, "0080", "007f80"},
		{Before, "007f80", "007e80"},
		{Before, "8180", "80"},
	}
	for _, c := range testCases {
		in := mustParse(t, c.in)
		got := c.op(in)
		if got.String() != c.out {
			t.Errorf("op(%s): expected %s, got %s", c.in, c.out, got)
		}
	}
}

func TestBetween(t *testing.T) {
	testCases := []struct {
		a, b, out string
	}{
		{"80", "8180", "817f80"},
		{"80", "817f80", "817e80"},
		{"7f80", "80", "7f8180"},
		{"7f80", "8180", "7f8180"},
		// The arithmetic midpoint of 0x7f and 0x82 is the sentinel; the
		// split must land beside it.
		{"7f80", "8280", "8180"},
		{"3880", "c880", "7f80"},
		{"0080", "ff80", "7f80"},
		{"80", "ff80", "bf80"},
		{"0080", "0180", "008180"},
		{"817f80", "8180", "817f8180"},
	}
	for _, c := range testCases {
		a, b := mustParse(t, c.a), mustParse(t, c.b)
		got, err := Between(a, b)
		if err != nil {
			t.Errorf("between(%s, %s): unexpected error: %v", c.a, c.b, err)
			continue
		}
		if got.String() != c.out {
			t.Errorf("between(%s, %s): expected %s, got %s", c.a, c.b, c.out, got)
		}
		if !a.Less(got) || !got.Less(b) {
			t.Errorf("between(%s, %s) = %s does not lie strictly between its bounds", c.a, c.b, got)
		}
	}
}

func TestBetweenNotOrdered(t *testing.T) {
	testCases := []struct {
		a, b string
	}{
		{"80", "80"},
		{"8180", "80"},
		{"8180", "7f80"},
		{"8180", "817f80"},
		{"0080", "007f80"},
	}
	for _, c := range testCases {
		a, b := mustParse(t, c.a), mustParse(t, c.b)
		if _, err := Between(a, b); !errors.Is(err, ErrNotOrdered) {
			t.Errorf("between(%s, %s): expected ErrNotOrdered, got %v", c.a, c.b, err)
		}
	}
}

func TestNew(t *testing.T) {
	def := Default()
	lo := Before(def)
	hi := After(def)

	k, err := New(nil, nil)
	require.NoError(t, err)
	require.True(t, k.Equal(def))

	k, err = New(nil, &def)
	require.NoError(t, err)
	require.True(t, k.Less(def))

	k, err = New(&def, nil)
	require.NoError(t, err)
	require.True(t, def.Less(k))

	k, err = New(&lo, &hi)
	require.NoError(t, err)
	require.True(t, lo.Less(k) && k.Less(hi))

	_, err = New(&hi, &lo)
	require.ErrorIs(t, err, ErrNotOrdered)
	_, err = New(&def, &def)
	require.ErrorIs(t, err, ErrNotOrdered)
}

func TestCompareMatchesByteOrder(t *testing.T) {
	keys := sampleKeys(t, 400)
	for _, a := range keys {
		for _, b := range keys {
			want := bytes.Compare(a.Bytes(), b.Bytes())
			if got := a.Compare(b); got != want {
				t.Fatalf("Compare(%s, %s) = %d, bytes.Compare = %d", a, b, got, want)
			}
		}
	}
}

func TestHexOrderMatchesKeyOrder(t *testing.T) {
	keys := sampleKeys(t, 400)
	hexes := make([]string, len(keys))
	for i, k := range keys {
		hexes[i] = k.String()
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	sort.Strings(hexes)
	for i := range keys {
		if keys[i].String() != hexes[i] {
			t.Fatalf("mismatched ordering at index %d: key order has %s, hex order has %s",
				i, keys[i], hexes[i])
		}
	}
}

func TestConvergentChains(t *testing.T) {
	seen := make(map[Key]struct{})

	// Descending chain around a fixed anchor.
	k := Default()
	for i := 0; i < 300; i++ {
		next := Before(k)
		if !next.Less(k) {
			t.Fatalf("Before(%s) = %s is not less", k, next)
		}
		if _, ok := seen[next]; ok {
			t.Fatalf("Before chain repeated key %s", next)
		}
		seen[next] = struct{}{}
		k = next
	}

	// Ascending chain.
	k = Default()
	for i := 0; i < 300; i++ {
		next := After(k)
		if !k.Less(next) {
			t.Fatalf("After(%s) = %s is not greater", k, next)
		}
		if _, ok := seen[next]; ok {
			t.Fatalf("After chain repeated key %s", next)
		}
		seen[next] = struct{}{}
		k = next
	}

	// Bisection chain squeezing toward the lower bound.
	lo, hi := Default(), After(Default())
	for i := 0; i < 100; i++ {
		mid, err := Between(lo, hi)
		require.NoError(t, err)
		if !lo.Less(mid) || !mid.Less(hi) {
			t.Fatalf("Between(%s, %s) = %s out of bounds", lo, hi, mid)
		}
		hi = mid
	}

	// And toward the upper bound.
	lo, hi = Default(), After(Default())
	for i := 0; i < 100; i++ {
		mid, err := Between(lo, hi)
		require.NoError(t, err)
		if !lo.Less(mid) || !mid.Less(hi) {
			t.Fatalf("Between(%s, %s) = %s out of bounds", lo, hi, mid)
		}
		lo = mid
	}
}

func TestNoInteriorSentinel(t *testing.T) {
	for _, k := range sampleKeys(t, 500) {
		b := k.Bytes()
		if b[len(b)-1] != sentinel {
			t.Fatalf("key %x does not end in the sentinel", b)
		}
		for i := 0; i < len(b)-1; i++ {
			if b[i] == sentinel {
				t.Fatalf("key %x carries the sentinel as a content digit at %d", b, i)
			}
		}
	}
}

// sampleKeys builds n distinct keys by inserting at deterministic pseudo
// random positions of a growing ordered sequence, exercising all four
// constructors.
func sampleKeys(t *testing.T, n int) []Key {
	t.Helper()
	keys := []Key{Default()}
	state := uint64(0x9e3779b97f4a7c15)
	for len(keys) < n {
		state = state*6364136223846793005 + 1442695040888963407
		pos := int(state % uint64(len(keys)+1))
		var k Key
		var err error
		switch {
		case pos == 0:
			k = Before(keys[0])
		case pos == len(keys):
			k = After(keys[len(keys)-1])
		default:
			k, err = Between(keys[pos-1], keys[pos])
			require.NoError(t, err)
		}
		keys = append(keys, Key{})
		copy(keys[pos+1:], keys[pos:])
		keys[pos] = k
	}
	// The construction order is the logical order; verify while we are here.
	for i := 1; i < len(keys); i++ {
		if !keys[i-1].Less(keys[i]) {
			t.Fatalf("sample sequence out of order at %d: %s >= %s", i, keys[i-1], keys[i])
		}
	}
	return keys
}
