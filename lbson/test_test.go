package lbson

import (
	"testing"

	"github.com/ennanzhai/hails/lio"
)

// level is a two-point test lattice: public flows to secret.
type level int

const (
	public level = iota
	secret
)

func (l level) CanFlowTo(other lio.Label) bool {
	o, ok := other.(level)
	return ok && l <= o
}

func (l level) Join(other lio.Label) lio.Label {
	if o, ok := other.(level); ok && o > l {
		return o
	}
	return l
}

func (l level) Meet(other lio.Label) lio.Label {
	if o, ok := other.(level); ok && o < l {
		return o
	}
	return l
}

func (l level) String() string {
	if l == public {
		return "public"
	}
	return "secret"
}

// mustField builds a plain field or fails the test.
func mustField(t *testing.T, key string, v any) Field[level] {
	t.Helper()
	val, err := Val[level](v)
	if err != nil {
		t.Fatalf("val(%v): %v", v, err)
	}
	return Field[level]{Key: key, Value: val}
}

// docOf builds a plain document from alternating key/value pairs.
func docOf(t *testing.T, pairs ...any) Document[level] {
	t.Helper()
	if len(pairs)%2 != 0 {
		t.Fatal("docOf wants key/value pairs")
	}
	d := make(Document[level], 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		d = append(d, mustField(t, pairs[i].(string), pairs[i+1]))
	}
	return d
}

// assertDocEqual compares documents field by field under Field.Equal.
func assertDocEqual(t *testing.T, want, got Document[level]) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("document length mismatch:\nGot:    %v\nExpect: %v", got, want)
	}
	for i := range want {
		if !want[i].Equal(got[i]) {
			t.Fatalf("document mismatch at %d:\nGot:    %v\nExpect: %v", i, got, want)
		}
	}
}
