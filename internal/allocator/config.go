package allocator

// Config holds the construction-time options enumerated in spec §6.
// Following the teacher's functional-options shape (internal/allocator's
// original defaultConfig/Option pair), options are resolved once, at
// NewArena, and the resulting Config never changes afterwards — an
// active Arena's geometry is fixed by DefineRegion, so there is nothing
// in the core to hot-reload (see the Configuration section of
// SPEC_FULL.md for where hot-reload lives instead).
type Config struct {
	// Alignment is the power-of-two A that governs every address and
	// size rounding. Default 4.
	Alignment uintptr

	// ThreadSafe, when true, makes DefineRegion create Mutex and makes
	// Allocate and Release take it at entry and release it at exit.
	ThreadSafe bool

	// VerifyRegion, when true, makes Release check that the
	// reconstructed header address lies within [regionStart, tail)
	// before touching it.
	VerifyRegion bool

	// Mutex is the platform primitive used when ThreadSafe is true. If
	// nil, NewArena supplies a *StdMutex.
	Mutex Mutex
}

// Option mutates a Config during NewArena.
type Option func(*Config)

func defaultConfig() *Config {
	return &Config{
		Alignment:    4,
		ThreadSafe:   false,
		VerifyRegion: false,
	}
}

// WithAlignment sets A. It must be a power of two; an invalid value is
// accepted here and rejected later by DefineRegion, matching the
// teacher's pattern of deferring validation to the call that actually
// needs the value correct.
func WithAlignment(a uintptr) Option {
	return func(c *Config) { c.Alignment = a }
}

// WithThreadSafety turns the Arena's mutex acquisition on or off.
func WithThreadSafety(enabled bool) Option {
	return func(c *Config) { c.ThreadSafe = enabled }
}

// WithRegionVerification turns Release's bounds check on or off.
func WithRegionVerification(enabled bool) Option {
	return func(c *Config) { c.VerifyRegion = enabled }
}

// WithMutex supplies a custom Mutex implementation and implies
// ThreadSafety(true); this is how a non-Go, non-sync.Mutex platform
// primitive (an RTOS semaphore wrapper, say) gets wired in, the
// equivalent of swapping lwmem_freertos.c for a different lwmem_os.h
// implementation.
func WithMutex(m Mutex) Option {
	return func(c *Config) {
		c.Mutex = m
		c.ThreadSafe = true
	}
}
