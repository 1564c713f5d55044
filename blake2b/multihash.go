package blake2b

import (
	"errors"
	"fmt"

	"github.com/multiformats/go-multihash"
	"github.com/streamingfast/hasher"
)

var ErrUnexpectedCode = errors.New("unexpected multihash code")

// Length restricts multihash encoding to the digests of Hasher256 and
// Hasher512. A 16 byte digest cannot be told apart from other algorithms'
// digests of that size, so it is never labelled blake2b-128.
type Length interface {
	hasher.Size32 | hasher.Size64
}

// MultihashCode returns the blake2b-N multicodec for a digest of size bytes,
// the table starts at blake2b-8 (0xb201) and steps by one per byte.
func MultihashCode(size int) uint64 {
	return multihash.BLAKE2B_MIN + uint64(size) - 1
}

// Multihash wraps d into its self-describing multihash form.
func Multihash[L Length](d hasher.Digest[L]) (multihash.Multihash, error) {
	out, err := multihash.Encode(d.Bytes(), MultihashCode(d.Len()))
	if err != nil {
		return nil, fmt.Errorf("encode multihash: %w", err)
	}

	return multihash.Multihash(out), nil
}

// FromMultihash decodes a multihash produced by Multihash. The code must be
// the blake2b variant matching L.
func FromMultihash[L Length](mh []byte) (hasher.Digest[L], error) {
	decoded, err := multihash.Decode(mh)
	if err != nil {
		return hasher.Digest[L]{}, fmt.Errorf("decode multihash: %w", err)
	}

	expected := MultihashCode(hasher.LengthOf[L]())
	if decoded.Code != expected {
		return hasher.Digest[L]{}, fmt.Errorf("%w: expected 0x%x, got 0x%x (%s)", ErrUnexpectedCode, expected, decoded.Code, decoded.Name)
	}

	return hasher.DigestFromBytes[L](decoded.Digest)
}
