package allocator

import (
	"runtime"
	"testing"
	"unsafe"
)

func TestDefaultArenaConvenienceFunctions(t *testing.T) {
	// The package-level default arena is process-wide and shared by
	// every test in this package; guard against double-definition by
	// only defining it once across the whole test binary.
	if DefaultArena().tail == nil {
		buf := make([]byte, 4096)
		t.Cleanup(func() { runtime.KeepAlive(buf) })

		if status, err := DefineRegion(unsafe.Pointer(&buf[0]), 4096); status != 0 || err != nil {
			t.Fatalf("DefineRegion on default arena failed: %v", err)
		}
	}

	p := Allocate(64)
	if p == nil {
		t.Fatal("Allocate on default arena failed")
	}

	Release(p)
	Release(nil)
}
