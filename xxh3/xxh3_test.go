package xxh3

import (
	"testing"

	"github.com/shabbyrobe/go-num"
	"github.com/streamingfast/hasher"
	"github.com/streamingfast/hasher/hashertest"
	"github.com/stretchr/testify/assert"
	engine "github.com/zeebo/xxh3"
)

func TestXXH3_Conformance(t *testing.T) {
	hashertest.Run(t, func() hasher.Hasher[hasher.Size16] { return New() })
}

func TestSum_MatchesEngine(t *testing.T) {
	for _, in := range hashertest.Inputs {
		want := engine.Hash128(in)

		h := New()
		h.Write(in)
		streamed := h.Sum()

		assert.Equal(t, Sum(in), streamed)
		assert.Equal(t, num.U128FromRaw(want.Hi, want.Lo), U128(streamed))
	}
}

func TestU128_String(t *testing.T) {
	d := Sum([]byte("hello world"))
	want := engine.Hash128([]byte("hello world"))

	assert.Equal(t, num.U128FromRaw(want.Hi, want.Lo).String(), U128(d).String())
	assert.Equal(t, 16, d.Len())
}
