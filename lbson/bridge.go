// Copyright 2026 by the Hails authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package lbson

import (
	"reflect"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ennanzhai/hails/lio"
)

// Val injects a host value into the Value union.  Dispatch is ordered, most
// specific case first:
//
//	1. a Value of the same label type passes through unchanged
//	2. a lio.Labeled payload is bridged and re-wrapped under its label
//	3. a PolicyLabeled payload gets the same treatment per state
//	4. anything else is marshaled through the BSON bridge as a plain value
//
// Val fails only on a label-type mismatch or on a host type the BSON bridge
// cannot marshal.
func Val[L lio.Label](v any) (Value[L], error) {
	switch x := v.(type) {
	case Value[L]:
		return x, nil
	case interface{ isLBSONValue() }:
		// A Value built for some other label type; marshaling it as a
		// plain host value would smuggle its payload.
		return Value[L]{}, &LabelTypeError{Got: v, Expected: typeName[L]()}
	case lio.TCBView:
		lv, err := bridgeLabeled[L](x)
		if err != nil {
			return Value[L]{}, err
		}
		return LabeledValue(lv), nil
	case policyView:
		if x.policyApplied() {
			lv, err := bridgeLabeled[L](x.policyLabeled())
			if err != nil {
				return Value[L]{}, err
			}
			return PolicyValue(PL(lv)), nil
		}
		rv, err := marshalRaw(x.policyPayload())
		if err != nil {
			return Value[L]{}, err
		}
		return PolicyValue(PU[L](rv)), nil
	}
	rv, err := marshalRaw(v)
	if err != nil {
		return Value[L]{}, err
	}
	return PlainValue[L](rv), nil
}

// CastMaybe attempts the inverse of Val: it extracts a T from a Value,
// reporting false when the stored variant or payload does not match.  The
// dispatch order mirrors Val: Value identity, then Labeled, then
// PolicyLabeled, then the plain BSON fallback.
func CastMaybe[T any, L lio.Label](v Value[L]) (T, bool) {
	var out T
	switch p := any(&out).(type) {
	case *Value[L]:
		*p = v
		return out, true
	case lio.TCBSetter:
		lv, ok := v.Labeled()
		if !ok {
			return zero[T](), false
		}
		if !assignLabeled(p, lv) {
			return zero[T](), false
		}
		return out, true
	case policySetter:
		pol, ok := v.Policy()
		if !ok {
			return zero[T](), false
		}
		if !assignPolicy(p, pol) {
			return zero[T](), false
		}
		return out, true
	}
	rv, ok := v.Plain()
	if !ok {
		return zero[T](), false
	}
	if !unmarshalRaw(rv, &out) {
		return zero[T](), false
	}
	return out, true
}

// Cast is CastMaybe with an explicit failure: a miss becomes a
// TypeMismatchError naming the expected type and the value's rendering.
func Cast[T any, L lio.Label](v Value[L]) (T, error) {
	out, ok := CastMaybe[T](v)
	if !ok {
		return zero[T](), &TypeMismatchError{Expected: typeName[T](), Actual: v.String()}
	}
	return out, nil
}

// Typed is the strict form of Cast for call sites that have already
// established the type is present; it panics on a mismatch.
func Typed[T any, L lio.Label](v Value[L]) T {
	out, err := Cast[T](v)
	if err != nil {
		panic(err)
	}
	return out
}

// bridgeLabeled converts a type-erased labeled payload into the canonical
// labeled raw form, re-attaching the original label through the TCB hook.
func bridgeLabeled[L lio.Label](view lio.TCBView) (lio.Labeled[L, bson.RawValue], error) {
	l, ok := view.TCBLabel().(L)
	if !ok {
		return lio.Labeled[L, bson.RawValue]{}, &LabelTypeError{Got: view.TCBLabel(), Expected: typeName[L]()}
	}
	rv, err := marshalRaw(view.TCBPayload())
	if err != nil {
		return lio.Labeled[L, bson.RawValue]{}, err
	}
	return lio.LabelTCB(l, rv), nil
}

func assignLabeled[L lio.Label](setter lio.TCBSetter, lv lio.Labeled[L, bson.RawValue]) bool {
	ptr := setter.TCBNewPayload()
	if !unmarshalRaw(lio.UnlabelTCB(lv), ptr) {
		return false
	}
	return setter.TCBAssign(lio.LabelOf(lv), ptr)
}

func assignPolicy[L lio.Label](setter policySetter, pol PolicyLabeled[L, bson.RawValue]) bool {
	ptr := setter.policyNewPayload()
	if pol.applied {
		if !unmarshalRaw(lio.UnlabelTCB(pol.labeled), ptr) {
			return false
		}
		return setter.policySetPL(lio.LabelOf(pol.labeled), ptr)
	}
	if !unmarshalRaw(pol.unapplied, ptr) {
		return false
	}
	return setter.policySetPU(ptr)
}

// marshalRaw is the primitive bridge's injection: identity on raw values,
// BSON marshaling for everything else.
func marshalRaw(v any) (bson.RawValue, error) {
	if rv, ok := v.(bson.RawValue); ok {
		return rv, nil
	}
	t, b, err := bson.MarshalValue(v)
	if err != nil {
		return bson.RawValue{}, err
	}
	return bson.RawValue{Type: t, Value: b}, nil
}

// unmarshalRaw is the primitive bridge's projection: identity when the
// target is a raw value, BSON unmarshaling otherwise.  A decode failure is a
// type mismatch, not an error.
func unmarshalRaw(rv bson.RawValue, ptr any) bool {
	if p, ok := ptr.(*bson.RawValue); ok {
		*p = rv
		return true
	}
	return rv.Unmarshal(ptr) == nil
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

func zero[T any]() T {
	var z T
	return z
}
