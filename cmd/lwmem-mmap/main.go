//go:build unix

// Command lwmem-mmap demonstrates defining an allocator region over a
// real page-backed byte range obtained from the host via mmap, instead
// of a plain Go slice. It stands in for the "device memory window"
// scenario spec.md §1 names as a target environment.
package main

import (
	"fmt"
	"log"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/orizon-lang/lwmem/internal/allocator"
)

func main() {
	const regionSize = 1 << 20 // 1 MiB

	region, err := unix.Mmap(-1, 0, regionSize,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		log.Fatalf("mmap: %v", err)
	}

	defer func() {
		if err := unix.Munmap(region); err != nil {
			log.Printf("munmap: %v", err)
		}
	}()

	fmt.Printf("lwmem block layout version %s\n", allocator.BlockLayoutVersion)

	arena := allocator.NewArena(
		allocator.WithAlignment(8),
		allocator.WithThreadSafety(true),
		allocator.WithRegionVerification(true),
	)

	if status, err := arena.DefineRegion(unsafe.Pointer(&region[0]), uintptr(len(region))); status != 0 {
		log.Fatalf("DefineRegion: %v", err)
	}

	ptrs := make([]unsafe.Pointer, 0, 8)

	for _, size := range []uintptr{128, 4096, 256, 65536} {
		p := arena.Allocate(size)
		if p == nil {
			log.Fatalf("allocate %d bytes: arena exhausted", size)
		}

		fmt.Printf("allocated %6d bytes at %#x\n", size, uintptr(p))
		ptrs = append(ptrs, p)
	}

	for _, p := range ptrs {
		arena.Release(p)
	}

	fmt.Println("released all allocations")
}
