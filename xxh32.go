package xxh32

import (
	"encoding/binary"
	"hash"
	"math/bits"
)

// Compile-time interface assertions.
var _ hash.Hash = (*Digest)(nil)
var _ hash.Hash32 = (*Digest)(nil)

// XXH32 primes from the reference implementation.
const (
	prime1 uint32 = 2654435761
	prime2 uint32 = 2246822519
	prime3 uint32 = 3266489917
	prime4 uint32 = 668265263
	prime5 uint32 = 374761393
)

// stripe is the number of bytes consumed by one lane update.
const stripe = 16

// Digest implements [hash.Hash32] using XXH32.
//
// A Digest must not be written concurrently. Sum32 and Sum do not modify
// the state and may run alongside each other between writes.
type Digest struct {
	seed  uint32
	total uint64

	v1, v2, v3, v4 uint32

	// mem holds the tail of the input not yet consumed by a lane update;
	// n < stripe between calls.
	mem [stripe]byte
	n   int
}

// New returns an XXH32 hasher with seed 0.
func New() *Digest { return NewWithSeed(0) }

// NewWithSeed returns an XXH32 hasher seeded with seed.
func NewWithSeed(seed uint32) *Digest {
	d := &Digest{seed: seed}
	d.Reset()
	return d
}

// Sum32 returns the XXH32 of data with seed 0.
func Sum32(data []byte) uint32 { return Sum32WithSeed(data, 0) }

// Sum32WithSeed returns the XXH32 of data with the provided seed.
func Sum32WithSeed(data []byte, seed uint32) uint32 {
	var d Digest
	d.seed = seed
	d.Reset()
	_, _ = d.Write(data)
	return d.Sum32()
}

// Seed returns the seed the hasher was created with.
func (d *Digest) Seed() uint32 { return d.seed }

// Reset restores the state produced by the constructor, keeping the seed.
func (d *Digest) Reset() {
	d.v1 = d.seed + prime1 + prime2
	d.v2 = d.seed + prime2
	d.v3 = d.seed
	d.v4 = d.seed - prime1
	d.total = 0
	d.n = 0
}

// Size returns the hash size in bytes.
func (d *Digest) Size() int { return 4 }

// BlockSize returns the number of bytes mixed per lane update.
func (d *Digest) BlockSize() int { return stripe }

// Write adds p to the running hash state. It always returns len(p), nil.
func (d *Digest) Write(p []byte) (int, error) {
	n := len(p)
	d.total += uint64(n)

	if d.n+n < stripe {
		d.n += copy(d.mem[d.n:], p)
		return n, nil
	}

	if d.n > 0 {
		c := copy(d.mem[d.n:], p)
		d.block(d.mem[:])
		d.n = 0
		p = p[c:]
	}

	for len(p) >= stripe {
		d.block(p[:stripe])
		p = p[stripe:]
	}

	d.n = copy(d.mem[:], p)
	return n, nil
}

// Sum appends the big-endian encoding of the current hash to b. It does not
// change the underlying state.
func (d *Digest) Sum(b []byte) []byte {
	var out [4]byte
	binary.BigEndian.PutUint32(out[:], d.Sum32())
	return append(b, out[:]...)
}

// Sum32 returns the XXH32 of everything written so far. It does not change
// the underlying state and may be called repeatedly.
func (d *Digest) Sum32() uint32 {
	var h uint32
	if d.total >= stripe {
		h = bits.RotateLeft32(d.v1, 1) +
			bits.RotateLeft32(d.v2, 7) +
			bits.RotateLeft32(d.v3, 12) +
			bits.RotateLeft32(d.v4, 18)
	} else {
		h = d.seed + prime5
	}

	h += uint32(d.total)

	b := d.mem[:d.n]
	for ; len(b) >= 4; b = b[4:] {
		h += binary.LittleEndian.Uint32(b) * prime3
		h = bits.RotateLeft32(h, 17) * prime4
	}
	for _, c := range b {
		h += uint32(c) * prime5
		h = bits.RotateLeft32(h, 11) * prime1
	}

	return avalanche(h)
}

// block runs one lane update over a full stripe.
func (d *Digest) block(b []byte) {
	_ = b[stripe-1]
	d.v1 = round(d.v1, binary.LittleEndian.Uint32(b[0:4]))
	d.v2 = round(d.v2, binary.LittleEndian.Uint32(b[4:8]))
	d.v3 = round(d.v3, binary.LittleEndian.Uint32(b[8:12]))
	d.v4 = round(d.v4, binary.LittleEndian.Uint32(b[12:16]))
}

func round(v, w uint32) uint32 {
	return bits.RotateLeft32(v+w*prime2, 13) * prime1
}

func avalanche(h uint32) uint32 {
	h ^= h >> 15
	h *= prime2
	h ^= h >> 13
	h *= prime3
	h ^= h >> 16
	return h
}
