package arena

import "github.com/rizkirr/arena/internal/mmap"

// NewOffHeap creates an arena whose blocks are anonymous private memory
// mappings outside the Go heap. Allocation, reset, checkpoint and restore
// semantics are identical to a NewArena arena; Release unmaps every block.
//
// Off-heap memory is invisible to the garbage collector: storing Go
// pointers in it (including via Alloc or AllocSlice with a
// pointer-containing T) keeps nothing alive and must not be done. Use it
// for flat, pointer-free data. On platforms without mmap support
// (windows), the first allocation fails with mmap.ErrNotSupported.
func NewOffHeap(blockSize int) (*Arena, error) {
	if blockSize <= 0 {
		return nil, ErrInvalidBlockSize
	}
	return &Arena{blockSize: blockSize, offHeap: true}, nil
}

// OffHeap reports whether the arena's blocks live outside the Go heap.
func (a *Arena) OffHeap() bool {
	return a.offHeap
}

func mapBlock(n int) ([]byte, error) {
	return mmap.MapAnon(n)
}

func unmapBlock(data []byte) error {
	return mmap.Unmap(data)
}
