// Copyright 2026 by the Hails authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package lbson is a labeled document value model: BSON documents whose
// individual values may carry security labels.  A Value is one of three
// variants -- plain, labeled, or conditionally labeled -- and every read of
// typed content goes through a cast that checks both the variant and the
// payload type, so labeled content cannot be reached by accident.
//
// Documents
//
// A Document is an ordered field sequence built with F and FOpt:
//
//	doc := lbson.Document[level]{
//		lbson.F[level]("name", "alice"),
//		lbson.F[level]("age", int32(41)),
//	}
//
// Reads come in a soft and a hard strength.  Look and Lookup return errors
// the caller handles; ValueAt and At panic, for call sites where a schema
// has already guaranteed presence and type.  Include, Exclude and Merge are
// the projection and combination algebra; all three return new documents.
//
// Labels
//
// Labeled payloads are opaque.  Equality involving a labeled value is always
// false, serialization of a labeled field fails, and textual rendering shows
// a placeholder unless the module is built with the hailsdebug tag.  Debug
// builds must never ship.
package lbson
