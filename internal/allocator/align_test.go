package allocator

import "testing"

func TestAlignUpDown(t *testing.T) {
	cases := []struct {
		x, a, up, down uintptr
	}{
		{0, 4, 0, 0},
		{1, 4, 4, 0},
		{3, 4, 4, 0},
		{4, 4, 4, 4},
		{5, 4, 8, 4},
		{17, 8, 24, 16},
	}

	for _, c := range cases {
		if got := alignUp(c.x, c.a); got != c.up {
			t.Errorf("alignUp(%d,%d) = %d, want %d", c.x, c.a, got, c.up)
		}

		if got := alignDown(c.x, c.a); got != c.down {
			t.Errorf("alignDown(%d,%d) = %d, want %d", c.x, c.a, got, c.down)
		}
	}
}

func TestPadUp(t *testing.T) {
	if got := padUp(5, 4); got != 3 {
		t.Errorf("padUp(5,4) = %d, want 3", got)
	}

	if got := padUp(8, 4); got != 0 {
		t.Errorf("padUp(8,4) = %d, want 0", got)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, v := range []uintptr{1, 2, 4, 8, 4096} {
		if !isPowerOfTwo(v) {
			t.Errorf("isPowerOfTwo(%d) = false, want true", v)
		}
	}

	for _, v := range []uintptr{0, 3, 6, 100} {
		if isPowerOfTwo(v) {
			t.Errorf("isPowerOfTwo(%d) = true, want false", v)
		}
	}
}

func TestAddOverflows(t *testing.T) {
	maxUintptr := ^uintptr(0)

	if !addOverflows(maxUintptr, 1) {
		t.Error("expected overflow for maxUintptr+1")
	}

	if addOverflows(10, 20) {
		t.Error("did not expect overflow for 10+20")
	}
}
