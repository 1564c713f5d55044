package main

import (
	"fmt"

	"github.com/streamingfast/hasher"
	"github.com/streamingfast/hasher/blake2b"
	"github.com/streamingfast/hasher/checksum"
)

func newBlake2b[L hasher.Length]() hasher.Hasher[L] {
	return blake2b.New[L]()
}

// dispatchLength picks the concrete digest type matching the --length flag,
// in bits like b2sum, and hands it to run.
func dispatchLength(bits uint64, parallelism int, run256 func(*checksum.Summer[hasher.Size32]) error, run512 func(*checksum.Summer[hasher.Size64]) error) error {
	switch bits {
	case 256:
		return run256(checksum.NewSummer(newBlake2b[hasher.Size32], parallelism, zlog))
	case 512:
		return run512(checksum.NewSummer(newBlake2b[hasher.Size64], parallelism, zlog))
	}

	return fmt.Errorf("invalid --length %d, valid values are 256 or 512", bits)
}
