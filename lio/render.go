// Copyright 2026 by the Hails authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package lio

import (
	"fmt"

	"github.com/ennanzhai/hails/internal/rendermode"
)

// String is a misuse guard, not an accessor.  In the protection build,
// default textual conversion of a labeled payload is a fatal error: a
// Labeled value reaching a format verb means protected content was about to
// leak through an ordinary code path.  In the debug build it renders the
// label and payload for diagnostics.
func (lv Labeled[L, A]) String() string {
	if !rendermode.Debug {
		panic("lio: textual conversion of a Labeled value in a protection build")
	}
	return fmt.Sprintf("Labeled %v %v", lv.label, lv.value)
}
