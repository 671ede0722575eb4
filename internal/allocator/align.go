package allocator

// Alignment helpers. A is always a power of two; callers set it once in
// Config (which accepts any value) and DefineRegion checks it since a bad
// value here would silently corrupt every address computed downstream.

func isPowerOfTwo(v uintptr) bool {
	return v != 0 && v&(v-1) == 0
}

func alignDown(x, a uintptr) uintptr {
	return x &^ (a - 1)
}

func alignUp(x, a uintptr) uintptr {
	return alignDown(x+a-1, a)
}

func padUp(x, a uintptr) uintptr {
	return alignUp(x, a) - x
}

// addOverflows reports whether a+b would wrap around uintptr's range.
func addOverflows(a, b uintptr) bool {
	return b > ^uintptr(0)-a
}
