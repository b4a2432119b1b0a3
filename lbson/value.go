// Copyright 2026 by the Hails authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package lbson

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ennanzhai/hails/lio"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	// KindPlain is an ordinary BSON value with no label attached.
	KindPlain Kind = iota
	// KindLabeled is a label/payload pair produced by the labeled runtime.
	KindLabeled
	// KindPolicy is a conditionally labeled value: a payload whose policy
	// has either been applied already or is still pending.
	KindPolicy
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindLabeled:
		return "labeled"
	case KindPolicy:
		return "policy-labeled"
	default:
		return "unknown"
	}
}

// Value is a closed union over exactly three variants: a plain BSON value, a
// labeled value, and a conditionally labeled value.  Values are immutable
// once constructed.  The zero Value is a plain value holding the zero BSON
// raw value.
type Value[L lio.Label] struct {
	kind    Kind
	plain   bson.RawValue
	labeled lio.Labeled[L, bson.RawValue]
	policy  PolicyLabeled[L, bson.RawValue]
}

// PlainValue wraps a raw BSON value as a plain Value.
func PlainValue[L lio.Label](rv bson.RawValue) Value[L] {
	return Value[L]{kind: KindPlain, plain: rv}
}

// LabeledValue wraps a labeled raw BSON payload as a labeled Value.
func LabeledValue[L lio.Label](lv lio.Labeled[L, bson.RawValue]) Value[L] {
	return Value[L]{kind: KindLabeled, labeled: lv}
}

// PolicyValue wraps a conditionally labeled raw BSON payload.
func PolicyValue[L lio.Label](p PolicyLabeled[L, bson.RawValue]) Value[L] {
	return Value[L]{kind: KindPolicy, policy: p}
}

// Kind returns the variant tag.
func (v Value[L]) Kind() Kind { return v.kind }

// Plain returns the plain payload and reports whether the value is plain.
func (v Value[L]) Plain() (bson.RawValue, bool) {
	return v.plain, v.kind == KindPlain
}

// Labeled returns the labeled payload and reports whether the value is
// labeled.
func (v Value[L]) Labeled() (lio.Labeled[L, bson.RawValue], bool) {
	return v.labeled, v.kind == KindLabeled
}

// Policy returns the conditionally labeled payload and reports whether the
// value holds one.
func (v Value[L]) Policy() (PolicyLabeled[L, bson.RawValue], bool) {
	return v.policy, v.kind == KindPolicy
}

// Equal is deliberately partial: two values compare equal only when both are
// plain and their payloads are equal.  Any comparison touching a labeled or
// conditionally labeled value reports false, even against itself, because
// label-carrying payloads must not be inspectable through ordinary equality.
func (v Value[L]) Equal(other Value[L]) bool {
	if v.kind != KindPlain || other.kind != KindPlain {
		return false
	}
	return v.plain.Equal(other.plain)
}

// isLBSONValue marks every Value instantiation so bridge dispatch can reject
// a Value built for a different label type instead of treating it as a plain
// host value.
func (v Value[L]) isLBSONValue() {}
