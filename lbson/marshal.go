// Copyright 2026 by the Hails authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package lbson

import (
	"encoding/binary"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ennanzhai/hails/lio"
)

// AppendDocument serializes d as a BSON document, appending to out.  If the
// buffer is not large enough, a new buffer will be allocated on demand.  The
// final buffer is returned, just like with `append`.
//
// Only all-plain documents serialize: a field holding a labeled or
// conditionally labeled value yields a ProtectedFieldError, so protected
// content never reaches the plain codec.
func AppendDocument[L lio.Label](out []byte, d Document[L]) ([]byte, error) {
	lenPos := len(out)
	out = append(out, 0, 0, 0, 0)
	for _, f := range d {
		rv, ok := f.Value.Plain()
		if !ok {
			return nil, &ProtectedFieldError{Key: f.Key}
		}
		if strings.IndexByte(f.Key, 0) >= 0 {
			return nil, fmt.Errorf("lbson: key %q contains a NUL byte", f.Key)
		}
		out = append(out, byte(rv.Type))
		out = append(out, f.Key...)
		out = append(out, 0)
		out = append(out, rv.Value...)
	}
	out = append(out, 0)
	overwriteLength(out, lenPos, len(out)-lenPos)
	return out, nil
}

// MarshalBSON implements bson.Marshaler with AppendDocument semantics.
func (d Document[L]) MarshalBSON() ([]byte, error) {
	return AppendDocument(nil, d)
}

// UnmarshalDocument converts a BSON document into a Document of all-plain
// fields, preserving element order.
func UnmarshalDocument[L lio.Label](raw bson.Raw) (Document[L], error) {
	elems, err := raw.Elements()
	if err != nil {
		return nil, fmt.Errorf("lbson: invalid document: %w", err)
	}
	d := make(Document[L], 0, len(elems))
	for _, e := range elems {
		d = append(d, Field[L]{Key: e.Key(), Value: PlainValue[L](e.Value())})
	}
	return d, nil
}

func overwriteLength(out []byte, pos int, n int) {
	binary.LittleEndian.PutUint32(out[pos:pos+4], uint32(n))
}
