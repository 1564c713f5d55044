// Package xxh3 implements hasher.Hasher with the 128 bit XXH3 hash. It is
// fast and non-cryptographic, suited to change detection and deduplication.
package xxh3

import (
	"encoding/binary"

	"github.com/shabbyrobe/go-num"
	"github.com/streamingfast/hasher"
	engine "github.com/zeebo/xxh3"
)

var _ hasher.Hasher[hasher.Size16] = (*Hasher)(nil)

type Digest = hasher.Digest[hasher.Size16]

type Hasher struct {
	state *engine.Hasher
}

func New() *Hasher {
	return &Hasher{state: engine.New()}
}

// Write implements io.Writer, it never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	if h.state == nil {
		panic(hasher.ErrFinalized)
	}

	return h.state.Write(p)
}

func (h *Hasher) Sum() Digest {
	if h.state == nil {
		panic(hasher.ErrFinalized)
	}

	sum := h.state.Sum128()
	h.state = nil

	return fromUint128(sum.Hi, sum.Lo)
}

func (h *Hasher) Size() int {
	return 16
}

func Sum(data []byte) Digest {
	sum := engine.Hash128(data)
	return fromUint128(sum.Hi, sum.Lo)
}

// U128 returns the digest as the 128 bit integer XXH3 produced.
func U128(d Digest) num.U128 {
	sum := d.Array()
	return num.U128FromRaw(binary.BigEndian.Uint64(sum[0:8]), binary.BigEndian.Uint64(sum[8:16]))
}

// Canonical representation is big-endian, high word first.
func fromUint128(hi, lo uint64) Digest {
	var sum hasher.Size16
	binary.BigEndian.PutUint64(sum[0:8], hi)
	binary.BigEndian.PutUint64(sum[8:16], lo)

	return hasher.NewDigest(sum)
}
