// Package allocator implements a first-fit, boundary-tag-free memory
// allocator over a single caller-supplied byte region, for use in
// environments where the Go heap itself is unavailable or undesirable
// — a statically reserved buffer, an mmap'd device window, or any other
// raw address range a caller hands in.
//
// The design is grounded in lwMEM: an address-ordered singly-linked
// free list is threaded directly through the region, each block
// carries a two-word header (next pointer, size-with-allocated-bit),
// and release immediately coalesces with both free neighbors found
// during the same walk that locates the insertion point.
package allocator

import "unsafe"

// Arena owns exactly one contiguous region and the address-ordered free
// list threaded through it. The zero value is an inactive Arena with no
// configured options; use NewArena to get one with Config applied.
type Arena struct {
	cfg Config
	mu  Mutex

	head header  // sentinel; lives in the Arena struct, not the region.
	tail *header // sentinel; lives at the high end of the region.

	headerSize  uintptr // B: alignUp(sizeof(header), A).
	regionStart uintptr // base address, retained for VerifyRegion.
}

// NewArena constructs an inactive Arena with the given options applied.
// Call DefineRegion before Allocate/Release will do anything.
func NewArena(opts ...Option) *Arena {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	a := &Arena{cfg: *cfg}
	if cfg.ThreadSafe {
		if cfg.Mutex != nil {
			a.mu = cfg.Mutex
		} else {
			a.mu = &StdMutex{}
		}
	}

	return a
}

// lock acquires the Arena's mutex when thread-safety is enabled; it is
// a no-op otherwise, matching lwmem_config_ex.h's LWMEM_CONFIG_USE_OS
// gate around both mutex creation and acquisition.
func (a *Arena) lock() error {
	if !a.cfg.ThreadSafe || a.mu == nil {
		return nil
	}

	return a.mu.Lock()
}

func (a *Arena) unlock() {
	if !a.cfg.ThreadSafe || a.mu == nil {
		return
	}

	_ = a.mu.Unlock()
}

func (a *Arena) minBlock() uintptr {
	return 2 * a.headerSize
}

func addr(h *header) uintptr {
	return uintptr(unsafe.Pointer(h))
}

// headerAt reinterprets a raw region address as a block header. The
// caller is responsible for keeping the backing memory alive and for
// address being within a region this Arena owns.
func headerAt(address uintptr) *header {
	return (*header)(unsafe.Pointer(address))
}

// DefineRegion transitions the Arena from inactive to active over
// [start, start+size), per spec §4.1. It may be called only once per
// Arena. On any failure the Arena is left (or reset to) inactive and an
// error describing the violated precondition is returned alongside
// status 1.
func (a *Arena) DefineRegion(start unsafe.Pointer, size uintptr) (uint8, error) {
	if a.tail != nil {
		return 1, errAlreadyActive()
	}

	if a.cfg.ThreadSafe && a.mu != nil && a.mu.IsCreated() {
		return 1, errMutexAlreadyCreated()
	}

	if !isPowerOfTwo(a.cfg.Alignment) {
		return 1, errInvalidAlignment(a.cfg.Alignment)
	}

	align := a.cfg.Alignment
	headerSize := alignUp(unsafe.Sizeof(header{}), align)

	startAddr := uintptr(start)
	if addOverflows(startAddr, size) {
		return 1, errRegionOverflow()
	}

	base := alignUp(startAddr, align)
	if base > startAddr+size {
		return 1, errRegionOverflow()
	}

	usable := size - (base - startAddr)
	if alignDown(usable, align) < 2*headerSize {
		return 1, errRegionTooSmall()
	}

	tailAddr := alignDown(base+usable-headerSize, align)
	tail := headerAt(tailAddr)
	tail.next = nil
	tail.size = 0

	first := headerAt(base)
	first.next = tail
	first.size = tailAddr - base

	if first.size&allocBit != 0 {
		return 1, errRegionTooLarge()
	}

	if a.cfg.ThreadSafe {
		if a.mu == nil {
			a.mu = &StdMutex{}
		}

		if err := a.mu.Create(); err != nil {
			return 1, errMutexCreateFailed(err)
		}
	}

	a.headerSize = headerSize
	a.head.next = first
	a.head.size = 0
	a.tail = tail
	a.regionStart = base

	return 0, nil
}

// Allocate returns a pointer to at least n contiguous, A-aligned bytes,
// or nil per spec §4.2's error conditions (n==0, inactive arena,
// overflow, no block large enough, or failed mutex acquisition).
func (a *Arena) Allocate(n uintptr) unsafe.Pointer {
	if n == 0 {
		return nil
	}

	if err := a.lock(); err != nil {
		return nil
	}
	defer a.unlock()

	if a.tail == nil {
		return nil
	}

	paddedN := alignUp(n, a.cfg.Alignment)
	if paddedN < n {
		return nil // alignUp overflowed.
	}

	want := a.headerSize + paddedN
	if want < a.headerSize || want&allocBit != 0 {
		return nil // size-word overflow or collides with the allocated bit.
	}

	prev := &a.head
	cur := prev.next

	for cur != a.tail && rawSize(cur) < want {
		prev = cur
		cur = cur.next
	}

	if cur == a.tail {
		return nil
	}

	// Unlink the chosen block from the free list.
	prev.next = cur.next

	if chosen := rawSize(cur); chosen-want >= a.minBlock() {
		remainder := headerAt(addr(cur) + want)
		remainder.size = chosen - want
		cur.size = want
		a.insert(remainder)
	}

	markAllocated(cur)

	return unsafe.Pointer(addr(cur) + a.headerSize)
}

// Release returns the block whose payload address is p to the free
// pool, per spec §4.3. A nil p, an inactive arena, a pointer that fails
// the optional region-bounds check, or a block whose allocated bit is
// already clear are all silent no-ops.
func (a *Arena) Release(p unsafe.Pointer) {
	if p == nil {
		return
	}

	if err := a.lock(); err != nil {
		return
	}
	defer a.unlock()

	if a.tail == nil {
		return
	}

	block := headerAt(uintptr(p) - a.headerSize)

	if a.cfg.VerifyRegion {
		blockAddr := addr(block)
		if blockAddr < a.regionStart || blockAddr >= addr(a.tail) {
			return
		}
	}

	if !isAllocated(block) {
		return
	}

	markFree(block)
	a.insert(block)
}

// insert performs the address-ordered coalescing insert described in
// spec §4.3 steps 1-5. It is shared by Release and by Allocate's split
// path, exactly as lwMEM's _lwmem_insert_block is shared by
// lwmem_free_ex and _lwmem_alloc.
func (a *Arena) insert(block *header) {
	prev := &a.head
	for prev.next != a.tail && addr(prev.next) < addr(block) {
		prev = prev.next
	}

	folded := false
	if addr(prev)+rawSize(prev) == addr(block) {
		prev.size = rawSize(prev) + rawSize(block)
		block = prev
		folded = true
	}

	next := prev.next
	if next != a.tail && addr(block)+rawSize(block) == addr(next) {
		// Merge upward. The tail is never absorbed, only pointed at
		// when it is the upper neighbor — see spec §9 open question 1.
		block.size = rawSize(block) + rawSize(next)
		block.next = next.next
	} else {
		block.next = next
	}

	// Skipped exactly when the lower-merge fold above already made
	// block and prev the same header — spec §9 open question 2.
	if !folded {
		prev.next = block
	}
}
