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
	"database/sql/driver"

	"github.com/cockroachdb/errors"
)

// Value implements driver.Valuer. A key binds as an opaque binary column
// value; a BYTES/BLOB column sorted by the database yields the key order.
func (k Key) Value() (driver.Value, error) {
	return k.Bytes(), nil
}

// Scan implements sql.Scanner, reconstructing a key from a binary column.
// NULL is rejected here; scan nullable columns into a NullKey.
func (k *Key) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return k.UnmarshalBinary(v)
	case string:
		return k.UnmarshalBinary([]byte(v))
	case nil:
		return errors.Wrap(ErrInvalidKey, "cannot scan NULL into Key; use NullKey")
	default:
		return errors.Wrapf(ErrInvalidKey, "cannot scan %T into Key", src)
	}
}

// NullKey represents a Key that may be NULL, in the manner of
// database/sql.NullString.
type NullKey struct {
	Key   Key
	Valid bool
}

// Value implements driver.Valuer.
func (n NullKey) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Key.Value()
}

// Scan implements sql.Scanner.
func (n *NullKey) Scan(src interface{}) error {
	if src == nil {
		*n = NullKey{}
		return nil
	}
	if err := n.Key.Scan(src); err != nil {
		return err
	}
	n.Valid = true
	return nil
}
