//go:build !hailsdebug

package rendermode

// Debug reports whether this build may render protected payloads.
const Debug = false
