//go:build unix

// Package mmap provides anonymous memory mappings for off-heap arena blocks.
package mmap

import (
	"golang.org/x/sys/unix"
)

// MapAnon creates a private anonymous read-write mapping of size bytes.
func MapAnon(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
}

// Unmap releases a mapping returned by MapAnon.
func Unmap(data []byte) error {
	return unix.Munmap(data)
}
