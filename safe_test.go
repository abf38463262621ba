package arena

import (
	"sync"
	"testing"
)

func TestNewSafeArena(t *testing.T) {
	if _, err := NewSafeArena(0); err != ErrInvalidBlockSize {
		t.Errorf("NewSafeArena(0) error = %v, want ErrInvalidBlockSize", err)
	}

	s, err := NewSafeArena(1024)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Release()

	b, err := s.AllocBytes(100, 8)
	if err != nil || len(b) != 100 {
		t.Errorf("AllocBytes = (%d, %v), want (100, nil)", len(b), err)
	}
	if s.SizeInUse() != 100 {
		t.Errorf("SizeInUse = %d, want 100", s.SizeInUse())
	}
}

func TestSafeArenaConcurrentAlloc(t *testing.T) {
	s, err := NewSafeArena(4096)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Release()

	const goroutines = 8
	const perGoroutine = 200

	spans := make([][][]byte, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				b, err := s.AllocBytes(16, 8)
				if err != nil {
					t.Errorf("goroutine %d: %v", g, err)
					return
				}
				// Stamp the span; overlap would corrupt another stamp.
				b[0], b[1] = byte(g), byte(i)
				spans[g] = append(spans[g], b)
			}
		}(g)
	}
	wg.Wait()

	for g := range spans {
		for i, b := range spans[g] {
			if b[0] != byte(g) || b[1] != byte(i) {
				t.Fatalf("span of goroutine %d index %d was overwritten", g, i)
			}
		}
	}

	if got := s.SizeInUse(); got < goroutines*perGoroutine*16 {
		t.Errorf("SizeInUse = %d, want >= %d", got, goroutines*perGoroutine*16)
	}
}

func TestSafeArenaCheckpointRestore(t *testing.T) {
	s, err := NewSafeArena(1024)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Release()

	s.AllocBytes(100, 8)
	cp := s.Checkpoint()
	s.AllocBytes(300, 8)

	if err := s.Restore(cp); err != nil {
		t.Fatalf("Restore error = %v", err)
	}
	if s.SizeInUse() != 100 {
		t.Errorf("SizeInUse after Restore = %d, want 100", s.SizeInUse())
	}

	s.Reset()
	if err := s.Restore(cp); err != ErrStaleCheckpoint {
		t.Errorf("Restore after Reset error = %v, want ErrStaleCheckpoint", err)
	}
}

func TestSafeAllocHelpers(t *testing.T) {
	s, err := NewSafeArena(1024)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Release()

	p, err := SafeAlloc[testStruct](s)
	if err != nil {
		t.Fatal(err)
	}
	if p.a != 0 {
		t.Error("SafeAlloc did not zero the struct")
	}
	p.a = 5

	u, err := SafeAllocUninitialized[int64](s)
	if err != nil {
		t.Fatal(err)
	}
	*u = 9

	sl, err := SafeAllocSlice[int32](s, 8)
	if err != nil || len(sl) != 8 {
		t.Fatalf("SafeAllocSlice = (%d, %v), want (8, nil)", len(sl), err)
	}

	z, err := SafeAllocSliceZeroed[int32](s, 8)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range z {
		if v != 0 {
			t.Fatalf("z[%d] = %d, want 0", i, v)
		}
	}

	if got := SafePtrAndKeepAlive(s, u); got != u {
		t.Error("SafePtrAndKeepAlive did not return the same pointer")
	}
}

func BenchmarkSafeArenaAlloc(b *testing.B) {
	s, err := NewSafeArena(64 * 1024)
	if err != nil {
		b.Fatal(err)
	}
	defer s.Release()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.AllocBytes(64, 8); err != nil {
			b.Fatal(err)
		}
		if i%1000 == 999 {
			s.Reset()
		}
	}
}
