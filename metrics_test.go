package arena

import (
	"testing"
)

func TestArenaMetrics(t *testing.T) {
	a, err := NewArena(1024)
	if err != nil {
		t.Fatal(err)
	}

	// Lazy first block: nothing is allocated yet.
	if a.SizeInUse() != 0 {
		t.Errorf("initial SizeInUse = %d, want 0", a.SizeInUse())
	}
	if a.NumBlocks() != 0 {
		t.Errorf("initial NumBlocks = %d, want 0", a.NumBlocks())
	}
	if a.Capacity() != 0 {
		t.Errorf("initial Capacity = %d, want 0", a.Capacity())
	}
	if a.BlockSize() != 1024 {
		t.Errorf("BlockSize = %d, want 1024", a.BlockSize())
	}
	if a.Utilization() != 0 {
		t.Errorf("initial Utilization = %f, want 0", a.Utilization())
	}

	a.AllocBytes(100, 8)
	a.AllocBytes(200, 8)

	if a.SizeInUse() != 300 {
		t.Errorf("SizeInUse = %d, want 300", a.SizeInUse())
	}
	if a.Capacity() != 1024 {
		t.Errorf("Capacity = %d, want 1024", a.Capacity())
	}
	if u := a.Utilization(); u <= 0 || u > 1 {
		t.Errorf("Utilization = %f, want 0 < x <= 1", u)
	}

	// Force block growth.
	a.AllocBytes(2000, 8)
	if a.NumBlocks() != 2 {
		t.Errorf("NumBlocks after growth = %d, want 2", a.NumBlocks())
	}
	if a.Capacity() != 1024+2000 {
		t.Errorf("Capacity after growth = %d, want %d", a.Capacity(), 1024+2000)
	}

	m := a.Metrics()
	if m.SizeInUse != a.SizeInUse() || m.Capacity != a.Capacity() ||
		m.NumBlocks != a.NumBlocks() || m.BlockSize != a.BlockSize() ||
		m.Utilization != a.Utilization() {
		t.Errorf("Metrics snapshot inconsistent: %+v", m)
	}
}

func TestMetricsAfterResetAndRestore(t *testing.T) {
	a, _ := NewArena(512)

	a.AllocBytes(400, 8)
	cp := a.Checkpoint()
	a.AllocBytes(400, 8)

	capBefore := a.Capacity()
	if err := a.Restore(cp); err != nil {
		t.Fatal(err)
	}
	if a.SizeInUse() != 400 {
		t.Errorf("SizeInUse after Restore = %d, want 400", a.SizeInUse())
	}
	// Capacity is retained by rollback.
	if a.Capacity() != capBefore {
		t.Errorf("Capacity after Restore = %d, want %d", a.Capacity(), capBefore)
	}

	a.Reset()
	if a.SizeInUse() != 0 {
		t.Errorf("SizeInUse after Reset = %d, want 0", a.SizeInUse())
	}
	if a.Capacity() != capBefore {
		t.Errorf("Capacity after Reset = %d, want %d", a.Capacity(), capBefore)
	}
}
