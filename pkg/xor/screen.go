package xor

import (
	"errors"
)

const (
	// MinKey is the lowest valid Key.
	MinKey Key = 1
	// MaxKey is the highest valid Key.
	MaxKey Key = 255
	// KeySpace is the number of valid keys.
	KeySpace = int(MaxKey-MinKey) + 1
)

var (
	ErrZeroKey = errors.New("cannot use a zero key")
)

// Key is a single byte XOR key. A valid Key is never 0.
type Key byte

// Valid reports whether k may be used to screen data.
func (k Key) Valid() bool {
	return k != 0
}

// Apply returns a new buffer with every byte of data XOR'd with key.
// The input data is never modified.
func Apply(data []byte, key Key) []byte {
	out := make([]byte, len(data))
	applyTo(out, data, key)
	return out
}

func applyTo(dst, src []byte, key Key) {
	for i, b := range src {
		dst[i] = b ^ byte(key)
	}
}
