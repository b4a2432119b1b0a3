// Copyright 2026 by the Hails authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package lio holds the slice of the labeled-computation runtime that the
// document model consumes: the Label lattice capability, the opaque Labeled
// pairing of a label with a payload, the trusted-bridge hooks used by value
// conversion, and a minimal LIO computation context for sequencing effects.
//
// Label enforcement itself (flow checks, privileges, clearance raising) is
// the full runtime's job and is deliberately absent here.
package lio

// Label is an element of a partially-ordered security lattice.  Implementors
// must satisfy the usual lattice laws: CanFlowTo is a partial order, Join is
// the least upper bound and Meet the greatest lower bound.
type Label interface {
	// CanFlowTo reports whether data at the receiver's classification may
	// flow to the other classification.
	CanFlowTo(other Label) bool
	// Join returns the least upper bound of the receiver and other.
	Join(other Label) Label
	// Meet returns the greatest lower bound of the receiver and other.
	Meet(other Label) Label
}

// Labeled pairs a label of type L with a payload of type A.  The payload is
// deliberately inaccessible through ordinary means: there is no exported
// payload accessor, no equality operation, and default textual conversion is
// a misuse guard (see String).  Reading the payload safely requires the full
// runtime's unlabel discipline; only trusted bridging code may use the TCB
// hooks below.
type Labeled[L Label, A any] struct {
	// noCompare makes every instantiation non-comparable: ordinary == on a
	// labeled value would inspect the protected payload, so it must not
	// compile.
	noCompare [0]func()

	label L
	value A
}

// LabelOf returns the label of a labeled value.  Labels are public even when
// payloads are not, so this accessor is safe.
func LabelOf[L Label, A any](lv Labeled[L, A]) L {
	return lv.label
}

// LabelTCB constructs a Labeled value directly from a label and a payload,
// bypassing the runtime's label-check flow.  It is part of the trusted
// computing base: value-bridging code may call it, ordinary document
// manipulation must not.
func LabelTCB[L Label, A any](l L, v A) Labeled[L, A] {
	return Labeled[L, A]{label: l, value: v}
}

// UnlabelTCB extracts the payload of a labeled value without any flow check.
// Trusted bridging code only; see LabelTCB.
func UnlabelTCB[L Label, A any](lv Labeled[L, A]) A {
	return lv.value
}

// TCBView gives trusted bridging code type-erased access to a Labeled value
// of any payload type.  It is how ordered bridge dispatch recognizes a
// Labeled argument without knowing its payload type statically.
type TCBView interface {
	TCBLabel() any
	TCBPayload() any
}

// TCBLabel implements TCBView.
func (lv Labeled[L, A]) TCBLabel() any { return lv.label }

// TCBPayload implements TCBView.
func (lv Labeled[L, A]) TCBPayload() any { return lv.value }

// TCBSetter is the write-side counterpart of TCBView: it lets trusted
// bridging code populate a *Labeled[L, A] without knowing L or A statically.
// TCBNewPayload returns a fresh *A for the bridge to decode into; TCBAssign
// installs the label and the decoded payload, reporting false when either
// dynamic type does not match.
type TCBSetter interface {
	TCBNewPayload() any
	TCBAssign(label, payloadPtr any) bool
}

// TCBNewPayload implements TCBSetter.
func (lv *Labeled[L, A]) TCBNewPayload() any { return new(A) }

// TCBAssign implements TCBSetter.
func (lv *Labeled[L, A]) TCBAssign(label, payloadPtr any) bool {
	l, ok := label.(L)
	if !ok {
		return false
	}
	p, ok := payloadPtr.(*A)
	if !ok {
		return false
	}
	lv.label = l
	lv.value = *p
	return true
}

// LIO is the computation context of the labeled runtime, parameterized by
// label type L, privilege type P and state type S.  The document model uses
// it only to sequence its single effect (fresh identifier generation); the
// enforcement operations of the full runtime are out of scope here.
type LIO[L Label, P any, S any] struct {
	current   L
	clearance L
	privs     P
	state     S
}

// New returns a computation context at the given current label and clearance.
func New[L Label, P any, S any](current, clearance L, privs P, state S) *LIO[L, P, S] {
	return &LIO[L, P, S]{current: current, clearance: clearance, privs: privs, state: state}
}

// CurrentLabel returns the label of the computation.
func (m *LIO[L, P, S]) CurrentLabel() L { return m.current }

// Clearance returns the clearance of the computation.
func (m *LIO[L, P, S]) Clearance() L { return m.clearance }

// State returns the runtime state threaded through the computation.
func (m *LIO[L, P, S]) State() S { return m.state }

// IOTCB runs an I/O effect within the computation's effect sequence and
// returns its result.  Trusted computing base: the document model routes its
// identifier-generation effect through here so the surrounding computation
// observes it in order.
func IOTCB[L Label, P any, S any, T any](m *LIO[L, P, S], f func() T) T {
	if m == nil {
		panic("lio: IOTCB called outside a computation context")
	}
	return f()
}
