// Copyright 2026 by the Hails authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package lbson

import (
	"fmt"
	"strings"

	"github.com/ennanzhai/hails/lio"
)

// Document is an ordered sequence of fields.  Order is insertion order and
// matters for merging and rendering; lookup is by key, first match wins.
// Key uniqueness is a caller convention, not an enforced invariant:
// construction tolerates duplicates and every operation resolves them to the
// first occurrence.  All document algebra returns fresh slices, never
// mutating the receiver.
type Document[L lio.Label] []Field[L]

// Look returns the value of the first field whose key equals key, or a
// MissingKeyError when absent.
func (d Document[L]) Look(key string) (Value[L], error) {
	for _, f := range d {
		if f.Key == key {
			return f.Value, nil
		}
	}
	return Value[L]{}, &MissingKeyError{Key: key}
}

// Lookup composes Look with a typed cast.  It fails when the key is absent
// or when the stored variant or payload does not match T.
func Lookup[T any, L lio.Label](key string, d Document[L]) (T, error) {
	v, err := d.Look(key)
	if err != nil {
		return zero[T](), err
	}
	return Cast[T](v)
}

// ValueAt is the strict form of Look for call sites where a schema already
// guarantees presence; it panics when the key is absent.
func (d Document[L]) ValueAt(key string) Value[L] {
	v, err := d.Look(key)
	if err != nil {
		panic(fmt.Sprintf("lbson: valueAt %q: %v", key, err))
	}
	return v
}

// At is the strict form of Lookup; it panics when the key is absent or the
// value does not cast to T, naming both the key and the expected type.
func At[T any, L lio.Label](key string, d Document[L]) T {
	v, err := Lookup[T](key, d)
	if err != nil {
		panic(fmt.Sprintf("lbson: at %q (%s): %v", key, typeName[T](), err))
	}
	return v
}

// Include projects d to the fields whose key appears in keys, in the order
// of keys rather than d's order.  Keys absent from d are dropped.
func (d Document[L]) Include(keys []string) Document[L] {
	out := make(Document[L], 0, len(keys))
	for _, k := range keys {
		for _, f := range d {
			if f.Key == k {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// Exclude projects d to the fields whose key does not appear in keys,
// preserving d's order.
func (d Document[L]) Exclude(keys []string) Document[L] {
	out := make(Document[L], 0, len(d))
	for _, f := range d {
		if !containsKey(keys, f.Key) {
			out = append(out, f)
		}
	}
	return out
}

// Merge combines d with other, d's fields taking precedence.  Every field of
// d replaces the first field in other with the same key, keeping that
// position, or is appended at the end when other lacks the key.  Fields of
// other with no counterpart in d are preserved unchanged.
func (d Document[L]) Merge(other Document[L]) Document[L] {
	out := make(Document[L], len(other), len(other)+len(d))
	copy(out, other)
	for _, f := range d {
		if i := indexOfKey(out, f.Key); i >= 0 {
			out[i] = f
		} else {
			out = append(out, f)
		}
	}
	return out
}

// String renders the document as a brace-wrapped field list in order.
func (d Document[L]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range d {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.String())
	}
	b.WriteByte('}')
	return b.String()
}

func containsKey(keys []string, k string) bool {
	for _, key := range keys {
		if key == k {
			return true
		}
	}
	return false
}

func indexOfKey[L lio.Label](d Document[L], k string) int {
	for i, f := range d {
		if f.Key == k {
			return i
		}
	}
	return -1
}
