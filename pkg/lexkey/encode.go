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
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
)

// The structured-data forms follow the byte contract: binary-friendly
// formats carry the raw encoded bytes, text-only formats carry the hex
// displayable form. Both decode back to an identical key.

// MarshalBinary implements encoding.BinaryMarshaler, emitting the canonical
// byte form.
func (k Key) MarshalBinary() ([]byte, error) {
	return k.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (k *Key) UnmarshalBinary(b []byte) error {
	dec, err := FromBytes(b)
	if err != nil {
		return err
	}
	*k = dec
	return nil
}

// MarshalText implements encoding.TextMarshaler, emitting the hex form.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(b []byte) error {
	dec, err := Parse(string(b))
	if err != nil {
		return err
	}
	*k = dec
	return nil
}

// MarshalJSON implements json.Marshaler. JSON cannot carry raw bytes, so the
// key is stringified to its order-preserving hex form.
func (k Key) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *Key) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return k.UnmarshalText([]byte(s))
}

// MarshalCBOR implements cbor.Marshaler, emitting the raw encoded bytes as a
// CBOR byte string.
func (k Key) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(k.Bytes())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (k *Key) UnmarshalCBOR(b []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(b, &raw); err != nil {
		return err
	}
	return k.UnmarshalBinary(raw)
}
