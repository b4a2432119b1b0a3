// Copyright 2026 by the Hails authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package lbson

import "github.com/ennanzhai/hails/lio"

// PolicyLabeled is a two-state union over a single payload type: either the
// payload is still awaiting its policy (unapplied), or a label has already
// been attached (applied).  There is no equality operation on PolicyLabeled,
// and no instantiation is comparable: protected content must not be
// inspectable through ordinary comparison.
type PolicyLabeled[L lio.Label, A any] struct {
	// noCompare makes every instantiation non-comparable; see lio.Labeled.
	noCompare [0]func()

	applied   bool
	unapplied A
	labeled   lio.Labeled[L, A]
}

// PU wraps a payload whose policy has not yet been applied.
func PU[L lio.Label, A any](v A) PolicyLabeled[L, A] {
	return PolicyLabeled[L, A]{unapplied: v}
}

// PL wraps a payload whose policy has already been applied.
func PL[L lio.Label, A any](lv lio.Labeled[L, A]) PolicyLabeled[L, A] {
	return PolicyLabeled[L, A]{applied: true, labeled: lv}
}

// Applied reports whether a policy has been applied.
func (p PolicyLabeled[L, A]) Applied() bool { return p.applied }

// Unapplied returns the pending payload and reports whether the policy is
// still unapplied.
func (p PolicyLabeled[L, A]) Unapplied() (A, bool) {
	return p.unapplied, !p.applied
}

// Labeled returns the applied label/payload pair and reports whether the
// policy has been applied.
func (p PolicyLabeled[L, A]) Labeled() (lio.Labeled[L, A], bool) {
	return p.labeled, p.applied
}

// policyView gives bridge dispatch type-erased access to a PolicyLabeled of
// any payload type.
type policyView interface {
	policyApplied() bool
	policyPayload() any
	policyLabeled() lio.TCBView
}

func (p PolicyLabeled[L, A]) policyApplied() bool        { return p.applied }
func (p PolicyLabeled[L, A]) policyPayload() any         { return p.unapplied }
func (p PolicyLabeled[L, A]) policyLabeled() lio.TCBView { return p.labeled }

// policySetter is the write-side counterpart used by cast dispatch.
type policySetter interface {
	policyNewPayload() any
	policySetPU(payloadPtr any) bool
	policySetPL(label, payloadPtr any) bool
}

func (p *PolicyLabeled[L, A]) policyNewPayload() any { return new(A) }

func (p *PolicyLabeled[L, A]) policySetPU(payloadPtr any) bool {
	v, ok := payloadPtr.(*A)
	if !ok {
		return false
	}
	*p = PU[L](*v)
	return true
}

func (p *PolicyLabeled[L, A]) policySetPL(label, payloadPtr any) bool {
	var lv lio.Labeled[L, A]
	if !lv.TCBAssign(label, payloadPtr) {
		return false
	}
	*p = PL(lv)
	return true
}
