package arena

import (
	"errors"
	"unsafe"
)

// DefaultBlockSize is a reasonable default block size for new arenas (64 KiB).
const DefaultBlockSize = 1 << 16

var (
	// ErrInvalidBlockSize is returned by NewArena and NewOffHeap when the
	// requested default block size is zero or negative.
	ErrInvalidBlockSize = errors.New("arena: block size must be positive")

	// ErrInvalidSize is returned by allocation calls when the requested
	// size is zero or negative.
	ErrInvalidSize = errors.New("arena: allocation size must be positive")

	// ErrInvalidAlignment is returned by allocation calls when the
	// requested alignment is not a positive power of two.
	ErrInvalidAlignment = errors.New("arena: alignment must be a positive power of two")

	// ErrStaleCheckpoint is returned by Restore when the checkpoint was
	// taken before the arena's most recent Reset.
	ErrStaleCheckpoint = errors.New("arena: checkpoint predates a Reset")
)

// ptrAlign is the alignment used when the caller does not care (pointer size).
const ptrAlign = unsafe.Sizeof(uintptr(0))

// block is one contiguous memory region subdivided by bump allocation.
type block struct {
	buf []byte  // data region; len(buf) is the block's capacity
	off uintptr // bump cursor within buf; 0 <= off <= len(buf)
	raw []byte  // whole backing mapping for off-heap blocks, nil otherwise
}

// base returns the address of the first byte of the data region.
func (b *block) base() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b.buf)))
}

// Arena is a block-chained bump allocator. Blocks are appended as needed
// and never removed until Release; Reset and Restore only rewind cursors.
// Not goroutine-safe. Use SafeArena for concurrent access.
type Arena struct {
	blocks    []block
	cur       int // index of the block accepting allocations; meaningful only when len(blocks) > 0
	blockSize int // minimum size of a new block; 0 marks a released arena
	gen       uint64
	offHeap   bool
}

// NewArena creates an arena with the given default block size. No block is
// allocated until the first allocation. Fails with ErrInvalidBlockSize when
// blockSize <= 0.
func NewArena(blockSize int) (*Arena, error) {
	if blockSize <= 0 {
		return nil, ErrInvalidBlockSize
	}
	return &Arena{blockSize: blockSize}, nil
}

// AllocBytes returns a slice of exactly size bytes backed by arena memory,
// with a base address that is a multiple of align. The slice is valid until
// the next Reset, a Restore to a checkpoint taken before this call, or
// Release. The bytes are not zeroed.
//
// size must be positive and align must be a positive power of two; invalid
// requests fail without changing arena state.
func (a *Arena) AllocBytes(size, align int) ([]byte, error) {
	a.panicIfReleased()
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if align <= 0 || align&(align-1) != 0 {
		return nil, ErrInvalidAlignment
	}

	// Lazily allocate the first block.
	if len(a.blocks) == 0 {
		if err := a.grow(size, align); err != nil {
			return nil, err
		}
	}

	al := uintptr(align)
	n := uintptr(size)
	b := &a.blocks[a.cur]
	pad := padFor(b.base()+b.off, al)
	if b.off+pad+n > uintptr(len(b.buf)) {
		var err error
		if b, err = a.advance(size, align); err != nil {
			return nil, err
		}
		// Fresh or rewound block; recompute from its cursor.
		pad = padFor(b.base()+b.off, al)
	}

	b.off += pad
	p := b.buf[b.off : b.off+n : b.off+n]
	b.off += n
	return p, nil
}

// EnsureCapacity ensures the current block can hold n more bytes at pointer
// alignment, growing the arena when it cannot. Useful to pre-reserve space
// before a burst of small allocations that must share one block.
func (a *Arena) EnsureCapacity(n int) error {
	a.panicIfReleased()
	if n <= 0 {
		return ErrInvalidSize
	}
	if len(a.blocks) == 0 {
		return a.grow(n, int(ptrAlign))
	}
	b := &a.blocks[a.cur]
	if pad := padFor(b.base()+b.off, ptrAlign); b.off+pad+uintptr(n) > uintptr(len(b.buf)) {
		if _, err := a.advance(n, int(ptrAlign)); err != nil {
			return err
		}
	}
	return nil
}

// Reset rewinds every block's cursor to zero and makes the first block
// current again. Block memory is retained for reuse and is not zeroed; all
// previously returned slices become invalid, and all outstanding
// checkpoints go stale.
func (a *Arena) Reset() {
	a.panicIfReleased()
	for i := range a.blocks {
		a.blocks[i].off = 0
	}
	a.cur = 0
	a.gen++
}

// Release drops every block and makes the arena unusable. Off-heap blocks
// are unmapped. Calling Release twice is a no-op; any other operation after
// Release panics.
func (a *Arena) Release() {
	if a.offHeap {
		for i := range a.blocks {
			if a.blocks[i].raw != nil {
				_ = unmapBlock(a.blocks[i].raw)
			}
		}
	}
	a.blocks = nil
	a.cur = 0
	a.blockSize = 0
}

// advance moves cur forward to the next block able to hold size bytes at
// align. Blocks rewound by Reset or Restore are reused before a new block
// is appended, so re-allocation after a rollback is deterministic and does
// not grow the chain.
func (a *Arena) advance(size, align int) (*block, error) {
	al := uintptr(align)
	n := uintptr(size)
	for i := a.cur + 1; i < len(a.blocks); i++ {
		b := &a.blocks[i]
		if pad := padFor(b.base()+b.off, al); b.off+pad+n <= uintptr(len(b.buf)) {
			a.cur = i
			return b, nil
		}
	}
	if err := a.grow(size, align); err != nil {
		return nil, err
	}
	return &a.blocks[a.cur], nil
}

// grow appends a block with max(size, blockSize) usable bytes whose data
// region starts at an address aligned to align, and makes it current. The
// chain is not mutated if the backing allocation fails.
func (a *Arena) grow(size, align int) error {
	capacity := size
	if capacity < a.blockSize {
		capacity = a.blockSize
	}
	// Headroom so the data region base can be aligned; the usable capacity
	// stays exactly max(size, blockSize).
	raw, err := a.allocBacking(capacity + align - 1)
	if err != nil {
		return err
	}
	start := padFor(uintptr(unsafe.Pointer(unsafe.SliceData(raw))), uintptr(align))
	b := block{buf: raw[start : start+uintptr(capacity)]}
	if a.offHeap {
		b.raw = raw
	}
	a.blocks = append(a.blocks, b)
	a.cur = len(a.blocks) - 1
	return nil
}

// allocBacking obtains a raw buffer of n bytes from the heap or, for
// off-heap arenas, from an anonymous mapping.
func (a *Arena) allocBacking(n int) ([]byte, error) {
	if a.offHeap {
		return mapBlock(n)
	}
	return make([]byte, n), nil
}

func (a *Arena) panicIfReleased() {
	if a.blockSize == 0 {
		panic("arena: use after Release()")
	}
}

// padFor returns the forward distance from addr to the next multiple of
// align: zero when addr is already aligned, otherwise the minimal offset.
func padFor(addr, align uintptr) uintptr {
	return (align - addr%align) % align
}
