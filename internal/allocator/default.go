package allocator

import "unsafe"

// defaultArena is the process-wide Arena the null-handle convenience
// forms target (spec §5/§6). It is thread-safe by default since,
// unlike an explicit Arena a single caller constructs for itself, any
// part of the process may reach for the default one.
var defaultArena = NewArena(WithThreadSafety(true))

// DefaultArena returns the process-wide Arena used by the package-level
// DefineRegion/Allocate/Release convenience functions.
func DefaultArena() *Arena {
	return defaultArena
}

// DefineRegion defines a region on the default Arena. Equivalent to
// DefaultArena().DefineRegion(start, size).
func DefineRegion(start unsafe.Pointer, size uintptr) (uint8, error) {
	return defaultArena.DefineRegion(start, size)
}

// Allocate allocates from the default Arena. Equivalent to
// DefaultArena().Allocate(n). Returns nil before the default Arena has
// an active region.
func Allocate(n uintptr) unsafe.Pointer {
	return defaultArena.Allocate(n)
}

// Release returns p to the default Arena's free pool. Equivalent to
// DefaultArena().Release(p). A no-op before the default Arena has an
// active region.
func Release(p unsafe.Pointer) {
	defaultArena.Release(p)
}
