// Copyright 2026 by the Hails authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package lbson

import (
	"fmt"

	"github.com/ennanzhai/hails/internal/rendermode"
	"github.com/ennanzhai/hails/lio"
)

// protectedPlaceholder is what label-carrying values render as in a
// protection build.
const protectedPlaceholder = "{-protected-}"

// String renders a plain value as extended JSON.  Label-carrying variants
// render as a fixed placeholder in the protection build; only a build with
// the hailsdebug tag renders their payloads, for diagnostics.
func (v Value[L]) String() string {
	switch v.kind {
	case KindLabeled:
		if !rendermode.Debug {
			return protectedPlaceholder
		}
		return fmt.Sprintf("Labeled %v %s", lio.LabelOf(v.labeled), lio.UnlabelTCB(v.labeled).String())
	case KindPolicy:
		return v.policy.String()
	default:
		return v.plain.String()
	}
}

// String follows the same rendering policy as Value: placeholder in the
// protection build, payload in the debug build.
func (p PolicyLabeled[L, A]) String() string {
	if !rendermode.Debug {
		return protectedPlaceholder
	}
	if p.applied {
		return fmt.Sprintf("PL (Labeled %v %v)", lio.LabelOf(p.labeled), lio.UnlabelTCB(p.labeled))
	}
	return fmt.Sprintf("PU %v", p.unapplied)
}
