package checksum

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/streamingfast/dstore"
	"go.uber.org/zap"
)

// Stdin is the input name reading from the process standard input. It can
// be hashed only once per run.
const Stdin = "-"

var ErrStdinReused = errors.New("standard input can only be read once")

// Open resolves input to a reader. Any location dstore understands is
// accepted (local path, file://, s3://, gs://, az://).
//
// A local input whose directory does not exist is reported as not found
// before reaching dstore, whose local store creates missing directories.
func Open(ctx context.Context, input string) (io.ReadCloser, error) {
	if input == Stdin {
		return io.NopCloser(os.Stdin), nil
	}

	if dir, local := localDir(input); local {
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open %q: %w", input, dstore.ErrNotFound)
		}
	}

	store, filename, err := dstore.NewStoreFromFileURL(input)
	if err != nil {
		return nil, fmt.Errorf("unable to create store for %q: %w", input, err)
	}

	if tracer.Enabled() {
		zlog.Debug("opening input", zap.String("input", input), zap.String("object", filename))
	}

	reader, err := store.OpenObject(ctx, filename)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", input, err)
	}

	return reader, nil
}

// localDir returns the directory holding input when input lives on the
// local filesystem, a bare path or a file:// URL.
func localDir(input string) (dir string, local bool) {
	u, err := url.Parse(input)
	switch {
	case err != nil || u.Scheme == "":
		return filepath.Dir(input), true
	case u.Scheme == "file":
		return filepath.Dir(u.Path), true
	}

	return "", false
}
