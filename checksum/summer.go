package checksum

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/abourget/llerrgroup"
	"github.com/streamingfast/hasher"
	"github.com/streamingfast/hasher/blake2b"
	"go.uber.org/zap"
)

type Result[L blake2b.Length] struct {
	Input  string
	Digest hasher.Digest[L]
	Size   int64
}

// Summer hashes inputs, each with its own hasher instance so inputs can be
// processed concurrently. It is bound to the BLAKE2b digest sizes since its
// checksums can be rendered as blake2b multihashes.
type Summer[L blake2b.Length] struct {
	newHasher   func() hasher.Hasher[L]
	parallelism int

	logger *zap.Logger
}

func NewSummer[L blake2b.Length](newHasher func() hasher.Hasher[L], parallelism int, logger *zap.Logger) *Summer[L] {
	if parallelism < 1 {
		parallelism = 1
	}

	return &Summer[L]{
		newHasher:   newHasher,
		parallelism: parallelism,
		logger:      logger,
	}
}

func (s *Summer[L]) SumOne(ctx context.Context, input string) (*Result[L], error) {
	reader, err := Open(ctx, input)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	t0 := time.Now()
	h := s.newHasher()

	size, err := io.Copy(h, reader)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", input, err)
	}

	HashedInputsCount.Inc()
	HashedBytesCount.AddInt(int(size))

	result := &Result[L]{Input: input, Digest: h.Sum(), Size: size}
	if tracer.Enabled() {
		s.logger.Debug("hashed input", zap.String("input", input), zap.Int64("size", size), zap.Stringer("digest", result.Digest), zap.Duration("elapsed", time.Since(t0)))
	}

	return result, nil
}

// SumAll hashes every input, at most parallelism at a time. Results are in
// the same order as inputs. The first failure stops scheduling and is
// returned once in-flight inputs are done. Stdin may appear at most once.
func (s *Summer[L]) SumAll(ctx context.Context, inputs []string) ([]*Result[L], error) {
	if stdinCount(inputs) > 1 {
		return nil, fmt.Errorf("%q listed more than once: %w", Stdin, ErrStdinReused)
	}

	results := make([]*Result[L], len(inputs))

	llg := llerrgroup.New(s.parallelism)
	for i, input := range inputs {
		if llg.Stop() {
			break
		}

		i, input := i, input
		llg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := s.SumOne(ctx, input)
			if err != nil {
				return err
			}

			results[i] = result
			return nil
		})
	}

	if err := llg.Wait(); err != nil {
		return nil, err
	}

	if tracer.Enabled() {
		s.logger.Debug("hashed inputs", zap.Int("count", len(inputs)), zap.Int("parallelism", s.parallelism))
	}

	return results, nil
}

func stdinCount(inputs []string) (count int) {
	for _, input := range inputs {
		if input == Stdin {
			count++
		}
	}

	return
}
