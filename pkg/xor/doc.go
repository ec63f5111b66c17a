/*
Package xor provides single-byte XOR screening of payloads, with a key chosen to minimize the entropy of the screened output.

Note that this is NOT encryption, since it is easily reversible.
This falls squarely under the obfuscation category.
As such, it is NOT recommended for security critical use, and the key selection here is not cryptographically secure key derivation.

# How it works:

A single non-zero Key is applied with a bitwise XOR to every byte of the payload.
XOR with 0 is the identity, so 0 is never a valid Key.
Applying the same Key a second time recovers the original payload.

A Selector picks the Key with a bounded random search.
Each trial draws a candidate Key from a KeySource, screens the payload with it, and scores the result with entropy.Shannon.
The lowest scoring candidate is retained, and the first trial to reach a score wins ties.
Candidates are drawn with replacement, so the same Key may be tried more than once, and a Key may never be tried at all.
Use Exhaustive to sweep every Key exactly once instead.

# Important note:

The Key reported in a Result must be kept to reverse the process.
The screened data carries no header or other indication of the Key used.

# General guidelines:
  - Use a SequenceSource or a fixed seed (UseSeed) when a reproducible search is needed, like in tests.
  - A Selector holding a random source is not safe for concurrent use, create one per goroutine.
  - Reader and Writer may be used to screen or unscreen streams with a known Key.
*/
package xor
