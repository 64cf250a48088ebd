package stream

// Bits is a read-only bit sequence backed by bytes.
// Bit k is bit (7 - k%8) of byte k/8, i.e. each byte is read MSB first.
type Bits []byte

// Len returns the number of addressable bits.
func (b Bits) Len() int {
	return len(b) * 8
}

// Bit reports bit k. Out-of-range indices read as false.
func (b Bits) Bit(k int) bool {
	if k < 0 || k >= b.Len() {
		return false
	}
	return b[k>>3]&(0x80>>(k&7)) != 0
}

// Uint reads an n-bit field starting at off, first bit most significant.
// n must not exceed 64.
func (b Bits) Uint(off, n int) uint64 {
	var v uint64
	for k := off; k < off+n; k++ {
		v <<= 1
		if b.Bit(k) {
			v |= 1
		}
	}
	return v
}
