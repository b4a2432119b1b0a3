package lbson

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel matched by errors.Is for any missing-key
// failure from Look and Lookup.
var ErrNotFound = errors.New("lbson: key not found")

// MissingKeyError reports a lookup against a key the document does not hold.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("lbson: key %q not found", e.Key)
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *MissingKeyError) Is(err error) bool { return err == ErrNotFound }

// TypeMismatchError reports a cast whose target type does not match the
// stored variant or payload.  Actual holds the value's rendering, which in a
// protection build is a placeholder for label-carrying variants.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("lbson: cannot cast %s to %s", e.Actual, e.Expected)
}

// LabelTypeError reports an injected labeled value whose label type is not
// the document's label type.
type LabelTypeError struct {
	Got      any
	Expected string
}

func (e *LabelTypeError) Error() string {
	return fmt.Sprintf("lbson: label %T does not match document label type %s", e.Got, e.Expected)
}

// ProtectedFieldError reports an attempt to serialize a field whose value
// carries a label; protected content never passes through the plain codec.
type ProtectedFieldError struct {
	Key string
}

func (e *ProtectedFieldError) Error() string {
	return fmt.Sprintf("lbson: field %q holds protected content and cannot be marshaled", e.Key)
}
