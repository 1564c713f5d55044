package checksum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Line
		wantErr bool
	}{
		{"text mode", "abcd  file.bin", Line{"abcd", "file.bin"}, false},
		{"binary mode", "abcd *file.bin", Line{"abcd", "file.bin"}, false},
		{"name with spaces", "abcd  my file.bin", Line{"abcd", "my file.bin"}, false},
		{"crlf", "abcd  file.bin\r\n", Line{"abcd", "file.bin"}, false},
		{"url", "abcd  s3://bucket/dir/file.bin", Line{"abcd", "s3://bucket/dir/file.bin"}, false},
		{"no separator", "abcdfile.bin", Line{}, true},
		{"single space", "abcd file.bin", Line{}, true},
		{"no name", "abcd  ", Line{}, true},
		{"no digest", "  file.bin", Line{}, true},
		{"empty", "", Line{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedLine)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLine_RoundTrip(t *testing.T) {
	line := Line{Digest: "00ff", Name: "dir/file name.txt"}

	parsed, err := ParseLine(line.String())
	require.NoError(t, err)
	assert.Equal(t, line, parsed)
}
