// Package hashertest holds the behavior every hasher.Hasher implementation
// must exhibit, so adapters can share one suite in their own tests.
package hashertest

import (
	"bytes"
	"testing"

	"github.com/streamingfast/hasher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Factory[L hasher.Length] func() hasher.Hasher[L]

// Run executes the whole conformance suite against hashers built by newHasher.
func Run[L hasher.Length](t *testing.T, newHasher Factory[L]) {
	t.Run("length", func(t *testing.T) { Length(t, newHasher) })
	t.Run("streaming", func(t *testing.T) { Streaming(t, newHasher) })
	t.Run("determinism", func(t *testing.T) { Determinism(t, newHasher) })
	t.Run("distinct_inputs", func(t *testing.T) { DistinctInputs(t, newHasher) })
	t.Run("reader", func(t *testing.T) { Reader(t, newHasher) })
	t.Run("finalize_consumes", func(t *testing.T) { FinalizeConsumes(t, newHasher) })
}

// Inputs used across the suite, the empty input included on purpose.
var Inputs = [][]byte{
	nil,
	[]byte(""),
	[]byte("a"),
	[]byte("hello world"),
	[]byte("hello world!"),
	bytes.Repeat([]byte{0xa5}, 127),
	bytes.Repeat([]byte{0x5a}, 128),
	bytes.Repeat([]byte("0123456789abcdef"), 1025),
}

func Length[L hasher.Length](t *testing.T, newHasher Factory[L]) {
	want := hasher.LengthOf[L]()
	for _, in := range Inputs {
		h := newHasher()
		assert.Equal(t, want, h.Size())

		d := hasher.Sum(h, in)
		assert.Equal(t, want, d.Len())
		assert.Len(t, d.Bytes(), want)
	}
}

func Streaming[L hasher.Length](t *testing.T, newHasher Factory[L]) {
	for _, in := range Inputs {
		whole := hasher.Sum(newHasher(), in)

		for _, chunkSize := range []int{1, 2, 3, 7, 64, 127, 128, 129, 4096} {
			h := newHasher()
			for _, chunk := range Chunks(in, chunkSize) {
				n, err := h.Write(chunk)
				require.NoError(t, err)
				require.Equal(t, len(chunk), n)
			}

			assert.Equal(t, whole, h.Sum(), "input of %d bytes in chunks of %d", len(in), chunkSize)
		}

		// Interleaved empty writes must not change anything
		h := newHasher()
		h.Write(nil)
		h.Write(in)
		h.Write([]byte{})
		assert.Equal(t, whole, h.Sum())
	}

	split := newHasher()
	split.Write([]byte("hello "))
	split.Write([]byte("world"))
	assert.Equal(t, hasher.Sum(newHasher(), []byte("hello world")), split.Sum())
}

func Determinism[L hasher.Length](t *testing.T, newHasher Factory[L]) {
	for _, in := range Inputs {
		first := hasher.Sum(newHasher(), in)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, hasher.Sum(newHasher(), in))
		}
	}
}

func DistinctInputs[L hasher.Length](t *testing.T, newHasher Factory[L]) {
	a := hasher.Sum(newHasher(), []byte("hello world"))
	b := hasher.Sum(newHasher(), []byte("hello world!"))
	assert.NotEqual(t, a, b)

	seen := map[string]int{}
	for i, in := range Inputs[2:] {
		d := hasher.Sum(newHasher(), in).Hex()
		if previous, found := seen[d]; found {
			t.Errorf("inputs #%d and #%d produced the same digest %s", previous, i, d)
		}
		seen[d] = i
	}
}

func Reader[L hasher.Length](t *testing.T, newHasher Factory[L]) {
	for _, in := range Inputs {
		d, err := hasher.SumReader(newHasher(), bytes.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, hasher.Sum(newHasher(), in), d)
	}
}

func FinalizeConsumes[L hasher.Length](t *testing.T, newHasher Factory[L]) {
	h := newHasher()
	h.Write([]byte("hello world"))
	h.Sum()

	assert.PanicsWithError(t, hasher.ErrFinalized.Error(), func() { h.Sum() })
	assert.PanicsWithError(t, hasher.ErrFinalized.Error(), func() { h.Write([]byte("more")) })
}

// Chunks splits in into consecutive pieces of at most size bytes.
func Chunks(in []byte, size int) (out [][]byte) {
	for len(in) > size {
		out = append(out, in[:size])
		in = in[size:]
	}

	return append(out, in)
}
