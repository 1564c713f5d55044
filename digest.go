package hasher

import (
	"encoding/hex"
	"errors"
	"fmt"
)

var ErrLengthMismatch = errors.New("digest length mismatch")

// Digest is the finalized output of a Hasher. It is a plain value: copying
// it copies the bytes and two digests are == iff all bytes match.
type Digest[L Length] struct {
	sum L
}

func NewDigest[L Length](sum L) Digest[L] {
	return Digest[L]{sum: sum}
}

// DigestFromBytes builds a Digest out of exactly LengthOf[L]() bytes. Any
// other length is rejected, the input is never truncated nor padded.
func DigestFromBytes[L Length](in []byte) (Digest[L], error) {
	var sum L
	if len(in) != len(sum) {
		return Digest[L]{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrLengthMismatch, len(sum), len(in))
	}

	for i := 0; i < len(sum); i++ {
		sum[i] = in[i]
	}

	return Digest[L]{sum: sum}, nil
}

// MustDigestFromBytes is like DigestFromBytes but panics on a length mismatch.
func MustDigestFromBytes[L Length](in []byte) Digest[L] {
	d, err := DigestFromBytes[L](in)
	if err != nil {
		panic(err)
	}

	return d
}

// ParseDigest decodes a hex encoded digest, upper or lower case.
func ParseDigest[L Length](in string) (Digest[L], error) {
	raw, err := hex.DecodeString(in)
	if err != nil {
		return Digest[L]{}, fmt.Errorf("invalid hex digest %q: %w", in, err)
	}

	return DigestFromBytes[L](raw)
}

func (d Digest[L]) Len() int {
	return len(d.sum)
}

// Array returns the digest as its fixed-size array.
func (d Digest[L]) Array() L {
	return d.sum
}

// Bytes returns a copy of the digest bytes.
func (d Digest[L]) Bytes() []byte {
	out := make([]byte, len(d.sum))
	for i := range out {
		out[i] = d.sum[i]
	}

	return out
}

func (d Digest[L]) Equal(other Digest[L]) bool {
	return d.sum == other.sum
}

func (d Digest[L]) Hex() string {
	return hex.EncodeToString(d.Bytes())
}

func (d Digest[L]) String() string {
	return d.Hex()
}

func (d Digest[L]) MarshalText() ([]byte, error) {
	return []byte(d.Hex()), nil
}

func (d *Digest[L]) UnmarshalText(text []byte) error {
	parsed, err := ParseDigest[L](string(text))
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
