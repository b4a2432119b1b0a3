package lbson

import (
	"fmt"

	"github.com/ennanzhai/hails/lio"
)

// Field is a key/value pair, the atomic unit of a Document.  Fields are
// immutable once constructed.
type Field[L lio.Label] struct {
	Key   string
	Value Value[L]
}

// F builds a field from a key and any bridgeable host value.  It is total
// for every type the bridge accepts; a host type the BSON bridge cannot
// marshal is a programming error and panics.  Callers with untrusted input
// types should go through Val instead.
func F[L lio.Label](key string, v any) Field[L] {
	val, err := Val[L](v)
	if err != nil {
		panic(fmt.Sprintf("lbson: field %q: %v", key, err))
	}
	return Field[L]{Key: key, Value: val}
}

// FOpt builds a zero-or-one-field document from an optional value: empty
// when v is nil, a single field otherwise.  Used to conditionally include
// optional fields in a document literal.
func FOpt[L lio.Label, T any](key string, v *T) Document[L] {
	if v == nil {
		return nil
	}
	return Document[L]{F[L](key, *v)}
}

// Equal is derived structurally: keys must match and values must be equal
// under Value's partial equality, so any field holding a label-carrying
// value compares unequal to everything.
func (f Field[L]) Equal(other Field[L]) bool {
	return f.Key == other.Key && f.Value.Equal(other.Value)
}

// String renders the field as "key: value".
func (f Field[L]) String() string {
	return f.Key + ": " + f.Value.String()
}
