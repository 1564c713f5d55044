package hasher

type (
	Size16 = [16]byte
	Size32 = [32]byte
	Size64 = [64]byte
)

// Length is the closed set of digest sizes a Hasher can be instantiated at.
// The selector is the digest array type itself, a Digest[L] always holds
// exactly len(L) bytes.
type Length interface {
	Size16 | Size32 | Size64
}

// LengthOf returns the byte length selected by L.
func LengthOf[L Length]() int {
	var zero L
	return len(zero)
}
