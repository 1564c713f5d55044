// Package blake2b adapts golang.org/x/crypto/blake2b to the hasher.Hasher
// contract, with the output length selected by the type parameter.
package blake2b

import (
	"fmt"
	"hash"

	"github.com/streamingfast/hasher"
	engine "golang.org/x/crypto/blake2b"
)

const (
	MinSize = 1
	MaxSize = engine.Size
)

var _ hasher.Hasher[hasher.Size32] = (*Hasher[hasher.Size32])(nil)

type Hasher[L hasher.Length] struct {
	state hash.Hash
}

type (
	// Hasher256 is the 256 bit BLAKE2b hasher.
	Hasher256 = Hasher[hasher.Size32]
	// Hasher512 is the 512 bit BLAKE2b hasher.
	Hasher512 = Hasher[hasher.Size64]

	Digest256 = hasher.Digest[hasher.Size32]
	Digest512 = hasher.Digest[hasher.Size64]
)

// New returns an unkeyed BLAKE2b hasher whose engine is initialized with the
// output length selected by L. It panics if that length is outside
// [MinSize, MaxSize].
func New[L hasher.Length]() *Hasher[L] {
	size := hasher.LengthOf[L]()
	if size < MinSize || size > MaxSize {
		panic(fmt.Errorf("blake2b: digest length %d out of range [%d, %d]", size, MinSize, MaxSize))
	}

	state, err := engine.New(size, nil)
	if err != nil {
		panic(fmt.Errorf("blake2b: unable to initialize engine for %d bytes: %w", size, err))
	}

	return &Hasher[L]{state: state}
}

func New256() *Hasher256 {
	return New[hasher.Size32]()
}

func New512() *Hasher512 {
	return New[hasher.Size64]()
}

// Write implements io.Writer, it never returns an error.
func (h *Hasher[L]) Write(p []byte) (int, error) {
	if h.state == nil {
		panic(hasher.ErrFinalized)
	}

	return h.state.Write(p)
}

// Sum finalizes the computation and releases the engine state, h cannot be
// used afterward.
func (h *Hasher[L]) Sum() hasher.Digest[L] {
	if h.state == nil {
		panic(hasher.ErrFinalized)
	}

	out := h.state.Sum(nil)
	h.state = nil

	return hasher.MustDigestFromBytes[L](out)
}

func (h *Hasher[L]) Size() int {
	return hasher.LengthOf[L]()
}

// Sum computes the BLAKE2b digest of data in one call.
func Sum[L hasher.Length](data []byte) hasher.Digest[L] {
	return hasher.Sum[L](New[L](), data)
}

func Sum256(data []byte) Digest256 {
	return Sum[hasher.Size32](data)
}

func Sum512(data []byte) Digest512 {
	return Sum[hasher.Size64](data)
}
