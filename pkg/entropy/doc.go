/*
Package entropy measures the Shannon entropy of byte data.

The entropy of a buffer is computed from the empirical frequency of each of the 256 possible byte values.
It's expressed in bits per byte, so it falls in the range [0, 8]:
  - A buffer where every byte has the same value has an entropy of 0.
  - A buffer using k distinct values in equal proportions has an entropy of log2(k).
  - An empty buffer is defined to have an entropy of 0.

Entropy only depends on the shape of the distribution, not on which values are used.
Relabeling byte values with any bijection (like XOR with a constant) never changes it.
*/
package entropy
