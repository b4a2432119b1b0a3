// Package rendermode resolves the build-time rendering mode shared by the
// lio and lbson packages.  The default build is the protection build: textual
// conversion of label-carrying payloads is suppressed.  Building with
// `-tags hailsdebug` selects the debug build, which renders protected
// payloads for diagnostics.  Debug builds must never ship.
package rendermode
