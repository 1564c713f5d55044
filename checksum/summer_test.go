package checksum

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/streamingfast/hasher"
	"github.com/streamingfast/hasher/blake2b"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestSummer(parallelism int) *Summer[hasher.Size32] {
	return NewSummer(func() hasher.Hasher[hasher.Size32] { return blake2b.New256() }, parallelism, zap.NewNop())
}

func writeFiles(t *testing.T, contents map[string]string) (dir string) {
	t.Helper()

	dir = t.TempDir()
	for name, content := range contents {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return dir
}

func TestSummer_SumOne(t *testing.T) {
	dir := writeFiles(t, map[string]string{"hello.txt": "hello world"})

	result, err := newTestSummer(1).SumOne(context.Background(), filepath.Join(dir, "hello.txt"))
	require.NoError(t, err)

	assert.Equal(t, "256c83b297114d201b30179f3f0ef0cace9783622da5974326b436178aeef610", result.Digest.Hex())
	assert.Equal(t, int64(11), result.Size)
}

func TestSummer_SumAll(t *testing.T) {
	contents := map[string]string{}
	var inputs []string
	for i := 0; i < 25; i++ {
		name := fmt.Sprintf("file-%02d.bin", i)
		contents[name] = fmt.Sprintf("content of file %d", i)
	}
	dir := writeFiles(t, contents)
	for i := 0; i < 25; i++ {
		inputs = append(inputs, filepath.Join(dir, fmt.Sprintf("file-%02d.bin", i)))
	}

	sequential, err := newTestSummer(1).SumAll(context.Background(), inputs)
	require.NoError(t, err)

	parallel, err := newTestSummer(8).SumAll(context.Background(), inputs)
	require.NoError(t, err)

	require.Len(t, parallel, len(inputs))
	for i, result := range parallel {
		assert.Equal(t, inputs[i], result.Input)
		assert.Equal(t, blake2b.Sum256([]byte(fmt.Sprintf("content of file %d", i))), result.Digest)
		assert.Equal(t, sequential[i].Digest, result.Digest)
	}
}

func TestSummer_SumAll_MissingInput(t *testing.T) {
	dir := writeFiles(t, map[string]string{"present.bin": "here"})

	_, err := newTestSummer(2).SumAll(context.Background(), []string{
		filepath.Join(dir, "present.bin"),
		filepath.Join(dir, "absent.bin"),
	})
	assert.Error(t, err)
}

func TestSummer_SumAll_Cancelled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"present.bin": "here"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestSummer(1).SumAll(ctx, []string{filepath.Join(dir, "present.bin")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewSummer_MinimumParallelism(t *testing.T) {
	assert.Equal(t, 1, newTestSummer(0).parallelism)
	assert.Equal(t, 1, newTestSummer(-3).parallelism)
}

func withStdin(t *testing.T, content string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stdin")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	file, err := os.Open(path)
	require.NoError(t, err)

	original := os.Stdin
	os.Stdin = file
	t.Cleanup(func() {
		os.Stdin = original
		file.Close()
	})
}

func TestSummer_SumAll_Stdin(t *testing.T) {
	withStdin(t, "hello world")

	results, err := newTestSummer(2).SumAll(context.Background(), []string{Stdin})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, blake2b.Sum256([]byte("hello world")), results[0].Digest)
	assert.Equal(t, int64(11), results[0].Size)
}

func TestSummer_SumAll_StdinListedTwice(t *testing.T) {
	withStdin(t, "hello world")

	_, err := newTestSummer(2).SumAll(context.Background(), []string{Stdin, Stdin})
	assert.ErrorIs(t, err, ErrStdinReused)

	// Nothing was consumed
	content, err := io.ReadAll(os.Stdin)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(content))
}

func TestSummer_SumAll_QuietAtInfo(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.txt": "a", "b.txt": "b"})

	core, logs := observer.New(zapcore.InfoLevel)
	summer := NewSummer(func() hasher.Hasher[hasher.Size32] { return blake2b.New256() }, 2, zap.New(core))

	_, err := summer.SumAll(context.Background(), []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")})
	require.NoError(t, err)

	assert.Zero(t, logs.Len())
}
