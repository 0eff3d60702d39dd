// Package xxh32 provides a Go implementation of the XXH32 non-cryptographic
// hash.
//
// It offers a streaming hasher that satisfies [hash.Hash32], plus convenience
// helpers for one-shot sums. Digests are bit-compatible with the reference
// xxHash implementation: writing the same bytes in any number of calls yields
// the same value as hashing them at once.
package xxh32
