// Package stream provides the seeded pseudorandom source that drives grille
// synthesis, together with a flat bit view over the bytes it produces.
//
// What:
//
//   - Random is a 48-bit linear congruential generator (multiplier 0x5DEECE66D,
//     increment 0xB). Its next(bits) contract and byte emission order are fixed,
//     so a seed always yields the same byte sequence on every platform.
//   - Bits reads a byte slice as a sequence of bits, most-significant first.
//
// Why:
//
//	A grille is identified by its (order, seed) pair. Reproducing the same
//	grille later, from the printed seed alone, requires a generator whose
//	algorithm is part of the contract rather than an implementation detail
//	of the runtime.
//
// Complexity:
//
//   - New, Int31, Int32: O(1).
//   - NextBytes:         O(n).
package stream

const (
	multiplier = 0x5DEECE66D
	addend     = 0xB
	mask       = (1 << 48) - 1

	// MaxSeed is the largest accepted seed (2^31 - 1).
	MaxSeed = 1<<31 - 1
)

// Random is a deterministic 48-bit LCG. It is not safe for concurrent use.
type Random struct {
	state uint64
}

// New returns a generator initialised from seed.
func New(seed int64) *Random {
	return &Random{state: (uint64(seed) ^ multiplier) & mask}
}

// next advances the state and returns its top `bits` bits.
func (r *Random) next(bits uint) int32 {
	r.state = (r.state*multiplier + addend) & mask
	return int32(r.state >> (48 - bits))
}

// Int32 returns a uniformly distributed 32-bit value (may be negative).
func (r *Random) Int32() int32 {
	return r.next(32)
}

// Int31 returns a non-negative value in [0, 2^31).
// Satisfies the candidate source contract used by the search package.
func (r *Random) Int31() int32 {
	return r.next(31)
}

// NextBytes fills b with pseudorandom bytes. Every 32-bit draw supplies up to
// four bytes, low-order byte first; a trailing partial draw discards the rest.
func (r *Random) NextBytes(b []byte) {
	for i := 0; i < len(b); {
		v := r.Int32()
		for n := min(len(b)-i, 4); n > 0; n-- {
			b[i] = byte(v)
			v >>= 8
			i++
		}
	}
}

// Draw returns nbytes of output from a generator seeded with seed, wrapped as Bits.
func Draw(seed int64, nbytes int) Bits {
	b := make([]byte, nbytes)
	New(seed).NextBytes(b)
	return Bits(b)
}

// ValidSeed reports whether seed lies in [0, MaxSeed].
func ValidSeed(seed int64) bool {
	return seed >= 0 && seed <= MaxSeed
}
