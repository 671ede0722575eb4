package allocator

import "testing"

func TestStdMutexLifecycle(t *testing.T) {
	m := &StdMutex{}

	if m.IsCreated() {
		t.Fatal("a fresh StdMutex must not report created")
	}

	if err := m.Create(); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !m.IsCreated() {
		t.Fatal("IsCreated must be true after Create")
	}

	if err := m.Lock(); err != nil {
		t.Fatalf("Lock failed: %v", err)
	}

	if err := m.Unlock(); err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}
}

func TestWithMutexImpliesThreadSafety(t *testing.T) {
	custom := &StdMutex{}
	a := NewArena(WithMutex(custom))

	if !a.cfg.ThreadSafe {
		t.Fatal("WithMutex must imply ThreadSafe(true)")
	}

	if a.mu != custom {
		t.Fatal("WithMutex must install the supplied Mutex")
	}
}

func TestDefineRegionRejectsAlreadyCreatedMutex(t *testing.T) {
	custom := &StdMutex{}
	if err := custom.Create(); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	a := NewArena(WithMutex(custom))

	start := newRegion(t, 256)

	status, err := a.DefineRegion(start, 256)
	if status != 1 || err == nil {
		t.Fatalf("expected failure for a pre-created mutex, got status=%d err=%v", status, err)
	}
}
