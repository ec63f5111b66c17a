package entropy

import "math"

const (
	// MaxBits is the highest entropy possible for byte data.
	MaxBits float64 = 8
)

// Histogram counts occurrences of each byte value.
type Histogram [256]uint64

// Add counts every byte in data.
func (h *Histogram) Add(data []byte) {
	for _, b := range data {
		h[b]++
	}
}

// Len returns the total number of bytes counted.
func (h *Histogram) Len() uint64 {
	var total uint64
	for _, f := range h {
		total += f
	}
	return total
}

// Entropy returns the Shannon entropy in bits of the counted distribution.
// An empty Histogram has an entropy of 0.
func (h *Histogram) Entropy() float64 {
	total := h.Len()
	if total == 0 {
		return 0
	}
	var (
		entropy float64
		n       = float64(total)
	)
	for _, f := range h {
		if f == 0 {
			continue
		}
		p := float64(f) / n
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// Shannon returns the Shannon entropy of data in bits.
func Shannon(data []byte) float64 {
	var h Histogram
	h.Add(data)
	return h.Entropy()
}
