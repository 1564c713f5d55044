package checksum

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/multiformats/go-multibase"
	"github.com/streamingfast/hasher"
	"github.com/streamingfast/hasher/blake2b"
)

// Format is the textual rendering of a digest in a checksum line.
type Format uint

const (
	// FormatHex is the lowercase hexadecimal digest, what b2sum prints.
	FormatHex Format = iota
	// FormatMultibase is the base32 multibase string of the BLAKE2b multihash,
	// self-describing so the digest length travels with it.
	FormatMultibase
)

func ParseFormat(in string) (Format, error) {
	switch strings.ToLower(in) {
	case "hex":
		return FormatHex, nil
	case "multibase":
		return FormatMultibase, nil
	}

	return 0, fmt.Errorf("unknown format %q, valid values are 'hex' or 'multibase'", in)
}

func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatMultibase:
		return "multibase"
	}

	return fmt.Sprintf("Format(%d)", uint(f))
}

func Encode[L blake2b.Length](d hasher.Digest[L], format Format) (string, error) {
	switch format {
	case FormatHex:
		return d.Hex(), nil

	case FormatMultibase:
		mh, err := blake2b.Multihash(d)
		if err != nil {
			return "", err
		}

		return multibase.Encode(multibase.Base32, mh)
	}

	return "", fmt.Errorf("unsupported format %s", format)
}

// Decode accepts either rendering Encode produces. A hex string of the
// right length wins, anything else is tried as a multibase multihash.
func Decode[L blake2b.Length](in string) (hasher.Digest[L], error) {
	if len(in) == 2*hasher.LengthOf[L]() {
		if raw, err := hex.DecodeString(in); err == nil {
			return hasher.DigestFromBytes[L](raw)
		}
	}

	_, mh, err := multibase.Decode(in)
	if err != nil {
		return hasher.Digest[L]{}, fmt.Errorf("digest %q is neither hex of %d bytes nor multibase: %w", in, hasher.LengthOf[L](), err)
	}

	return blake2b.FromMultihash[L](mh)
}
