package xor

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	mrand "math/rand/v2"
)

var (
	ErrEmptySequence = errors.New("cannot use an empty key sequence")
)

// KeySource provides candidate keys to a Selector.
// Implementations must only return keys in the range [MinKey, MaxKey].
type KeySource interface {
	NextKey() Key
}

var _ KeySource = (*RandSource)(nil)

// RandSource draws keys uniformly from [MinKey, MaxKey], with replacement.
// It's not cryptographically secure, and not safe for concurrent use.
type RandSource struct {
	rng *mrand.Rand
}

// NewRandSource creates a RandSource that will always produce the same keys for the same seed.
func NewRandSource(seed uint64) *RandSource {
	return &RandSource{
		rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NewRandomSource creates a RandSource seeded from the OS entropy pool.
func NewRandomSource() (*RandSource, error) {
	seed, err := GenSeed()
	if err != nil {
		return nil, err
	}
	return NewRandSource(seed), nil
}

func (s *RandSource) NextKey() Key {
	return MinKey + Key(s.rng.IntN(KeySpace))
}

// GenSeed reads a 64-bit seed from crypto/rand.
func GenSeed() (uint64, error) {
	buf := make([]byte, 8)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return 0, fmt.Errorf("failed to read seed bytes: %w", err)
	}
	return binary.BigEndian.Uint64(buf), nil
}

var _ KeySource = (*SequenceSource)(nil)

// SequenceSource yields a fixed sequence of keys, starting over once the last one is used.
type SequenceSource struct {
	keys []Key
	cur  int
}

// NewSequenceSource creates a SequenceSource from the given keys, which must all be valid.
func NewSequenceSource(keys ...Key) (*SequenceSource, error) {
	if len(keys) == 0 {
		return nil, ErrEmptySequence
	}
	for i, k := range keys {
		if !k.Valid() {
			return nil, fmt.Errorf("%w: sequence position %d", ErrZeroKey, i)
		}
	}
	return &SequenceSource{
		keys: append([]Key(nil), keys...),
	}, nil
}

func (s *SequenceSource) NextKey() Key {
	k := s.keys[s.cur]
	s.cur = (s.cur + 1) % len(s.keys)
	return k
}

// NewSweepSource creates a source that yields every valid key exactly once in ascending order before starting over.
func NewSweepSource() *SequenceSource {
	keys := make([]Key, 0, KeySpace)
	for k := MinKey; ; k++ {
		keys = append(keys, k)
		if k == MaxKey {
			break
		}
	}
	return &SequenceSource{keys: keys}
}
