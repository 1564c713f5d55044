package hasher_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/streamingfast/hasher"
	"github.com/streamingfast/hasher/blake2b"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helloWorld256 = "256c83b297114d201b30179f3f0ef0cace9783622da5974326b436178aeef610"

func TestSum_OneShotEqualsStreaming(t *testing.T) {
	oneShot := hasher.Sum[hasher.Size32](blake2b.New256(), []byte("hello world"))

	h := blake2b.New256()
	h.Write([]byte("hello world"))
	streamed := h.Sum()

	assert.Equal(t, oneShot, streamed)
	assert.Equal(t, helloWorld256, oneShot.Hex())
	assert.Equal(t, helloWorld256, blake2b.Sum256([]byte("hello world")).Hex())
}

func TestSumReader(t *testing.T) {
	d, err := hasher.SumReader[hasher.Size32](blake2b.New256(), iotest.OneByteReader(strings.NewReader("hello world")))
	require.NoError(t, err)
	assert.Equal(t, helloWorld256, d.Hex())
}

func TestSumReader_ReaderError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("hello"), iotest.ErrReader(boom))

	_, err := hasher.SumReader[hasher.Size32](blake2b.New256(), r)
	assert.ErrorIs(t, err, boom)
}
