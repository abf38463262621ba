package main

import (
	"fmt"
	"os"

	"github.com/rizkirr/arena"
	"github.com/rizkirr/arena/arrayd"
)

type player struct {
	ID   uint64
	HP   uint32
	MP   uint32
	Name [32]byte
}

func main() {
	a, err := arena.NewArena(1 << 10) // 1 KiB blocks
	if err != nil {
		fmt.Fprintln(os.Stderr, "create arena:", err)
		os.Exit(1)
	}
	defer a.Release()

	name, _ := a.AllocBytes(32, 1)
	copy(name, "arena demo")

	numbers, _ := arena.AllocSlice[int](a, 5)
	for i := range numbers {
		numbers[i] = i * 10
	}

	fmt.Printf("Name: %s\n", name[:10])
	fmt.Printf("Numbers: %v\n", numbers)

	// Roll back a burst of scratch allocations.
	cp := a.Checkpoint()
	before := a.SizeInUse()
	for i := 0; i < 16; i++ {
		_, _ = a.AllocBytes(128, 8)
	}
	fmt.Printf("Scratch in use: %d bytes\n", a.SizeInUse()-before)
	_ = a.Restore(cp)
	fmt.Printf("After restore: %d bytes over baseline\n", a.SizeInUse()-before)

	p, _ := arena.Alloc[player](a)
	p.ID, p.HP, p.MP = 7, 100, 50
	copy(p.Name[:], "guest")
	fmt.Printf("Player %d: hp=%d mp=%d\n", p.ID, p.HP, p.MP)

	// Reset keeps the blocks but reuses the memory.
	a.Reset()
	msg, _ := a.AllocBytes(64, 1)
	copy(msg, "arena reset reused memory")
	fmt.Printf("Message: %s\n", msg[:25])
	fmt.Printf("Blocks: %d, utilization: %.2f%%\n", a.NumBlocks(), a.Utilization()*100)

	// The arrayd container is independent of the arena.
	ints, err := arrayd.New[int](4)
	if err != nil {
		fmt.Fprintln(os.Stderr, "create array:", err)
		os.Exit(1)
	}
	for i := 1; i <= 5; i++ {
		ints.Append(i * 10)
	}
	ints.Set(2, 99)
	ints.RemoveAt(1)
	fmt.Print("Array:")
	for i := 0; i < ints.Len(); i++ {
		fmt.Printf(" %d", ints.Get(i))
	}
	fmt.Println()
}
