package hasher

import (
	"errors"
	"fmt"
	"io"
)

// ErrFinalized is the panic value raised when a Hasher is used after Sum.
var ErrFinalized = errors.New("hasher already finalized")

// Hasher is a streaming hash computation producing a Digest of a length fixed
// by L at compile time.
//
// Write never fails, it always returns len(p), nil. Sum finalizes the
// computation, after which the instance must not be used again: adapters
// drop their state and panic with ErrFinalized on any further call.
type Hasher[L Length] interface {
	io.Writer

	Sum() Digest[L]
	Size() int
}

// Sum writes data in a single call and finalizes h.
func Sum[L Length](h Hasher[L], data []byte) Digest[L] {
	h.Write(data)

	return h.Sum()
}

// SumReader streams r into h until EOF then finalizes it. The only error
// source is the reader, in which case h is left unfinalized.
func SumReader[L Length](h Hasher[L], r io.Reader) (Digest[L], error) {
	if _, err := io.Copy(h, r); err != nil {
		return Digest[L]{}, fmt.Errorf("reading input: %w", err)
	}

	return h.Sum(), nil
}
