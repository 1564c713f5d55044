package checksum

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/abourget/llerrgroup"
	"github.com/streamingfast/hasher"
	"go.uber.org/zap"
)

type Status uint

const (
	StatusOK Status = iota
	StatusFailed
	StatusUnreadable
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusFailed:
		return "FAILED"
	case StatusUnreadable:
		return "FAILED open or read"
	}

	return fmt.Sprintf("Status(%d)", uint(s))
}

type Verification struct {
	Line   Line
	Status Status
	Err    error
}

type Report struct {
	Verifications []*Verification

	// Malformed counts lines that could not be parsed, they are skipped
	Malformed int
	Failed    int
	Unread    int
}

func (r *Report) OK() bool {
	return r.Malformed == 0 && r.Failed == 0 && r.Unread == 0 && len(r.Verifications) > 0
}

// Verify reads checksum lines from in and re-hashes every named input with
// s, reporting one Verification per well-formed line in file order. Only a
// failure to read in itself or a cancelled context is returned as an error.
func (s *Summer[L]) Verify(ctx context.Context, in io.Reader) (*Report, error) {
	report := &Report{}
	expected := []hasher.Digest[L]{}

	scanner := bufio.NewScanner(in)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}

		line, err := ParseLine(text)
		if err != nil {
			s.logger.Warn("skipping malformed checksum line", zap.Int("line", lineNum), zap.Error(err))
			report.Malformed++
			continue
		}

		digest, err := Decode[L](line.Digest)
		if err != nil {
			s.logger.Warn("skipping checksum line with invalid digest", zap.Int("line", lineNum), zap.Error(err))
			report.Malformed++
			continue
		}

		expected = append(expected, digest)
		report.Verifications = append(report.Verifications, &Verification{Line: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading checksum lines: %w", err)
	}

	stdinSeen := false
	llg := llerrgroup.New(s.parallelism)
	for i, verification := range report.Verifications {
		if llg.Stop() {
			break
		}

		if verification.Line.Name == Stdin {
			if stdinSeen {
				verification.Status = StatusUnreadable
				verification.Err = ErrStdinReused
				continue
			}
			stdinSeen = true
		}

		i, verification := i, verification
		llg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := s.SumOne(ctx, verification.Line.Name)
			switch {
			case err != nil:
				verification.Status = StatusUnreadable
				verification.Err = err
			case !result.Digest.Equal(expected[i]):
				verification.Status = StatusFailed
			default:
				verification.Status = StatusOK
			}

			return nil
		})
	}

	if err := llg.Wait(); err != nil {
		return nil, err
	}

	for _, verification := range report.Verifications {
		switch verification.Status {
		case StatusFailed:
			report.Failed++
			VerifyFailuresCount.Inc()
		case StatusUnreadable:
			report.Unread++
			VerifyFailuresCount.Inc()
		}
	}

	return report, nil
}
