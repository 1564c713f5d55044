package checksum

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedLine = errors.New("malformed checksum line")

// Line is one entry of a checksum file, laid out as "<digest>  <name>", the
// same layout b2sum and sha256sum use. A " *" separator (binary mode marker)
// is accepted when parsing.
type Line struct {
	Digest string
	Name   string
}

func (l Line) String() string {
	return l.Digest + "  " + l.Name
}

func ParseLine(in string) (Line, error) {
	in = strings.TrimRight(in, "\r\n")

	separator := strings.Index(in, " ")
	if separator <= 0 || separator+2 > len(in) {
		return Line{}, fmt.Errorf("%w: %q", ErrMalformedLine, in)
	}

	if marker := in[separator+1]; marker != ' ' && marker != '*' {
		return Line{}, fmt.Errorf("%w: %q", ErrMalformedLine, in)
	}

	line := Line{Digest: in[:separator], Name: in[separator+2:]}
	if line.Name == "" {
		return Line{}, fmt.Errorf("%w: %q has no name", ErrMalformedLine, in)
	}

	return line, nil
}
