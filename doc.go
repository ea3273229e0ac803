// Package skein implements the Skein secure hashing algorithm, a SHA-3
// finalist built on the Threefish tweakable block cipher in UBI (Unique
// Block Iteration) chaining mode. Skein supports three internal state
// sizes — 256, 512, and 1024 bits, in the skein256, skein512 and skein1024
// subpackages — and can produce a digest of any requested bit length from
// any of them via its counter-mode output transform.
//
// This package is a thin dispatcher over the three subpackages for callers
// who want to pick a state size by number rather than import statement.
package skein

//go:generate python3 gen_vectors.py --spec skein-1.3 testdata/skein256-kat.json testdata/skein512-kat.json testdata/skein1024-kat.json
