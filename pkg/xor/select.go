package xor

import (
	"errors"
	"fmt"
	"math"

	"github.com/hacksafely/smart-xor-encoder/pkg/entropy"
)

const (
	// DefaultTrials is the number of candidate keys drawn by a Selector unless otherwise configured.
	DefaultTrials = 256
)

var (
	ErrInvalidTrials = errors.New("invalid trial count")
	ErrNilSource     = errors.New("cannot use a nil key source")
)

// Trial describes a single step of a key search.
type Trial struct {
	// Index is the zero-based position of this trial in the search.
	Index int

	// Key is the candidate drawn for this trial.
	Key Key

	// Entropy is the entropy of the payload screened with Key.
	Entropy float64

	// Improved is true if this trial became the best candidate so far.
	Improved bool
}

// Result is the outcome of a key search.
// Encoded is always the payload screened with Key.
type Result struct {
	Key     Key
	Encoded []byte
	Entropy float64
	Trials  int
}

// Select screens payload with trials candidate keys drawn from src, and returns the candidate with the lowest entropy.
// The first candidate to reach the lowest entropy is kept, later candidates with an equal score don't replace it.
// A trials value less than 1 is treated as DefaultTrials.
//
// An empty payload is not an error, every candidate scores 0 so the first key drawn is returned.
func Select(payload []byte, src KeySource, trials int) Result {
	return search(payload, src, trials, nil)
}

func search(payload []byte, src KeySource, trials int, onTrial func(Trial)) Result {
	if trials < 1 {
		trials = DefaultTrials
	}
	var (
		best    = Result{Entropy: math.Inf(1), Trials: trials}
		scratch = make([]byte, len(payload))
		spare   = make([]byte, len(payload))
	)
	for i := 0; i < trials; i++ {
		key := src.NextKey()
		applyTo(scratch, payload, key)
		score := entropy.Shannon(scratch)
		improved := score < best.Entropy
		if improved {
			best.Key = key
			best.Entropy = score
			// The previous best buffer becomes scratch space for the next trial.
			best.Encoded, scratch = scratch, best.Encoded
			if scratch == nil {
				scratch = spare
			}
		}
		if onTrial != nil {
			onTrial(Trial{
				Index:    i,
				Key:      key,
				Entropy:  score,
				Improved: improved,
			})
		}
	}
	return best
}

// Selector searches for the key that produces the lowest entropy output for a payload.
type Selector struct {
	trials  int
	source  KeySource
	onTrial func(Trial)
}

// SelectorOpt operates on a Selector in a standard and predictable way, and is used in NewSelector.
// If any SelectorOpt returns an error, then NewSelector returns it.
type SelectorOpt = func(*Selector) error

// SetTrials sets the number of candidate keys to draw, which must be at least 1.
func SetTrials(trials int) SelectorOpt {
	return func(s *Selector) error {
		if trials < 1 {
			return fmt.Errorf("%w: %d, must be at least 1", ErrInvalidTrials, trials)
		}
		s.trials = trials
		return nil
	}
}

// UseKeySource sets the source of candidate keys.
func UseKeySource(src KeySource) SelectorOpt {
	return func(s *Selector) error {
		if src == nil {
			return ErrNilSource
		}
		s.source = src
		return nil
	}
}

// UseSeed makes the search reproducible by drawing keys from NewRandSource with the given seed.
func UseSeed(seed uint64) SelectorOpt {
	return func(s *Selector) error {
		s.source = NewRandSource(seed)
		return nil
	}
}

// Exhaustive tries every valid key exactly once, in ascending order.
// This overrides any previous trial count or key source.
func Exhaustive() SelectorOpt {
	return func(s *Selector) error {
		s.source = NewSweepSource()
		s.trials = KeySpace
		return nil
	}
}

// OnTrial registers a function that's called after every trial.
// It's called synchronously from Select, so it should return quickly.
func OnTrial(fn func(Trial)) SelectorOpt {
	return func(s *Selector) error {
		s.onTrial = fn
		return nil
	}
}

// NewSelector creates a Selector using the options provided as zero or more SelectorOpt.
// By default, DefaultTrials keys are drawn from a RandSource seeded with NewRandomSource.
func NewSelector(opts ...SelectorOpt) (*Selector, error) {
	s := &Selector{
		trials: DefaultTrials,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.source == nil {
		src, err := NewRandomSource()
		if err != nil {
			return nil, err
		}
		s.source = src
	}
	return s, nil
}

// Trials returns the number of candidates drawn per search.
func (s *Selector) Trials() int {
	return s.trials
}

// Select runs a search over payload. See the package function Select for details.
func (s *Selector) Select(payload []byte) Result {
	return search(payload, s.source, s.trials, s.onTrial)
}
