package entropy

import "io"

var _ io.Writer = (*Counter)(nil)

// Counter accumulates a Histogram over everything written to it.
// This makes it possible to score data as it streams through io.Copy or io.TeeReader.
type Counter struct {
	hist Histogram
}

// Write counts the bytes in p. It never returns an error.
func (c *Counter) Write(p []byte) (int, error) {
	c.hist.Add(p)
	return len(p), nil
}

// Len returns the number of bytes written so far.
func (c *Counter) Len() uint64 {
	return c.hist.Len()
}

// Entropy returns the entropy of everything written so far.
func (c *Counter) Entropy() float64 {
	return c.hist.Entropy()
}

// Histogram returns a copy of the accumulated counts.
func (c *Counter) Histogram() Histogram {
	return c.hist
}

func (c *Counter) Reset() {
	c.hist = Histogram{}
}
