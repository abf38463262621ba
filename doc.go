// Package arena implements a block-chained bump allocator (memory arena)
// with checkpoint/restore support.
//
// # Overview
//
// An arena allocator serves many small requests from large pre-allocated
// blocks by advancing a cursor, deferring all individual frees to bulk
// reclamation. This is particularly useful for:
//
//   - Request-scoped allocations in servers
//   - Temporary object allocation with batch cleanup
//   - Speculative work that may need to be rolled back wholesale
//   - Reducing garbage collection pressure
//
// # Basic Usage
//
//	a, err := arena.NewArena(arena.DefaultBlockSize)
//	if err != nil {
//		return err
//	}
//	defer a.Release() // Clean up when done
//
//	// Allocate raw bytes with explicit alignment
//	buf, err := a.AllocBytes(1024, 16)
//
//	// Allocate typed values
//	ptr, err := arena.Alloc[MyStruct](a)
//	slice, err := arena.AllocSlice[int](a, 100)
//
//	// Reset for reuse
//	a.Reset()
//
// # Checkpoint and Restore
//
// A Checkpoint records the arena's allocation position. Restoring it
// discards everything allocated after it was taken, across block
// boundaries, making that memory immediately reusable:
//
//	cp := a.Checkpoint()
//	scratch, _ := a.AllocBytes(4096, 8) // temporary work
//	_ = a.Restore(cp)                   // scratch memory reclaimed
//
// Checkpoints nest: restoring an outer checkpoint after an inner one has
// been restored is safe. A checkpoint taken before a Reset is stale and
// Restore rejects it with ErrStaleCheckpoint.
//
// # Thread Safety
//
// Arena is not thread-safe. For concurrent access, use SafeArena:
//
//	s, err := arena.NewSafeArena(arena.DefaultBlockSize)
//	defer s.Release()
//	buf, err := s.AllocBytes(1024, 8)
//
// # Memory Layout
//
// The arena allocates memory in blocks of at least the default block size
// chosen at construction. The first block is created lazily on the first
// allocation. When the current block cannot satisfy a request, a new block
// of max(request size, default block size) is appended, so a single
// oversized request always gets a dedicated block sized exactly to it.
// Blocks are never removed until Release; Reset and Restore only rewind
// cursors, retaining capacity for reuse.
//
// # Off-Heap Arenas
//
// NewOffHeap creates an arena whose blocks are anonymous memory mappings
// outside the Go heap. The garbage collector never scans them, so they
// must only hold pointer-free data.
//
// # Important Notes
//
//   - Allocated memory is valid only until the position covering it is
//     rewound (Reset, or Restore to an earlier checkpoint) or the arena
//     is released
//   - No individual deallocation; reclamation is always bulk
//   - Memory is not zeroed unless using Alloc or AllocSliceZeroed
//   - Operations on a released arena panic
//
// # Metrics and Monitoring
//
// The arena reports its memory usage:
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Memory in use: %d bytes\n", m.SizeInUse)
//	fmt.Printf("Total capacity: %d bytes\n", m.Capacity)
package arena
