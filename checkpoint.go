package arena

// Checkpoint is a saved allocation position: the block that was current
// when it was taken and that block's cursor. It is a plain value that owns
// nothing and may be copied freely. Restoring it discards every allocation
// made after it was taken.
//
// A checkpoint is only meaningful on the arena that produced it, and only
// until that arena is Reset (detected, see Restore) or Released (not
// detected).
type Checkpoint struct {
	block int // index into blocks, -1 before any allocation
	off   uintptr
	gen   uint64
}

// Checkpoint captures the arena's current allocation position. Valid at any
// time, including before the first allocation.
func (a *Arena) Checkpoint() Checkpoint {
	a.panicIfReleased()
	if len(a.blocks) == 0 {
		return Checkpoint{block: -1, gen: a.gen}
	}
	return Checkpoint{block: a.cur, off: a.blocks[a.cur].off, gen: a.gen}
}

// Restore rewinds the arena to the position captured by c: the recorded
// block's cursor is set back to the recorded value, every later block is
// rewound to zero, and the recorded block becomes current again. All memory
// allocated since the checkpoint is immediately reusable; no block is
// released. Subsequent allocations that fit the rewound capacity reuse the
// same addresses deterministically.
//
// Nested checkpoints compose: restoring an outer checkpoint after an inner
// one is safe, and restoring the same checkpoint twice is idempotent.
// Restore fails with ErrStaleCheckpoint if the arena has been Reset since
// the checkpoint was taken, without changing arena state.
func (a *Arena) Restore(c Checkpoint) error {
	a.panicIfReleased()
	if c.gen != a.gen {
		return ErrStaleCheckpoint
	}
	if c.block >= 0 {
		a.blocks[c.block].off = c.off
		a.cur = c.block
	} else {
		a.cur = 0
	}
	for i := c.block + 1; i < len(a.blocks); i++ {
		a.blocks[i].off = 0
	}
	return nil
}
