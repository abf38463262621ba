package arena

// SizeInUse returns the total number of bytes currently allocated across
// all blocks, including internal fragmentation due to alignment padding.
func (a *Arena) SizeInUse() int {
	sum := 0
	for i := range a.blocks {
		sum += int(a.blocks[i].off)
	}
	return sum
}

// NumBlocks returns the number of blocks currently owned by the arena.
func (a *Arena) NumBlocks() int {
	return len(a.blocks)
}

// Capacity returns the total usable capacity (in bytes) of all blocks.
func (a *Arena) Capacity() int {
	sum := 0
	for i := range a.blocks {
		sum += len(a.blocks[i].buf)
	}
	return sum
}

// Utilization returns the ratio of bytes in use to total capacity
// (0.0 to 1.0). Returns 0.0 if the arena has no blocks yet.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// BlockSize returns the default block size used by this arena.
func (a *Arena) BlockSize() int {
	return a.blockSize
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumBlocks:   a.NumBlocks(),
		BlockSize:   a.BlockSize(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes currently allocated
	Capacity    int     // Total usable capacity in bytes
	NumBlocks   int     // Number of blocks
	BlockSize   int     // Default block size
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// Thread-safe metrics for SafeArena

// SizeInUse thread-safely returns the total number of bytes in use.
func (s *SafeArena) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// NumBlocks thread-safely returns the number of blocks.
func (s *SafeArena) NumBlocks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.NumBlocks()
}

// Capacity thread-safely returns the total usable capacity of all blocks.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Utilization thread-safely returns the used-to-capacity ratio.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// BlockSize thread-safely returns the default block size.
func (s *SafeArena) BlockSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.BlockSize()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
