// Package grain implements the 80-bit Grain LFSR in self-shrinking mode used
// to derive Poseidon round constants. The bit layout of the initial state and
// the tap positions follow the Poseidon reference material, so constants
// derived here match the published parameter generator.
package grain

import "github.com/bits-and-blooms/bitset"

const stateBits = 80

// Tap offsets relative to the oldest bit of the register.
var taps = [...]uint{62, 51, 38, 23, 13, 0}

// warmupBits is the number of raw output bits discarded after seeding.
const warmupBits = 160

// LFSR is an 80-bit linear-feedback shift register producing a self-shrunk
// bit stream. State is local to one generator; it is not safe for concurrent
// use, and callers create one per derivation.
type LFSR struct {
	state *bitset.BitSet
	head  uint // index of the oldest bit in the circular buffer
}

// InitVector packs the Poseidon parameter tuple into the 80-bit seed:
// 2 bits field parity, 4 bits S-box flag, 12 bits prime bit length, 12 bits
// state width, 10 bits full rounds, 10 bits partial rounds, 30 one-bits.
// A nonzero seed is folded into the trailing 30 bits for instance separation;
// seed 0 reproduces the reference stream.
func InitVector(fieldParity, sboxFlag uint, primeBitLen, t, fullRounds, partialRounds int, seed uint32) []bool {
	iv := make([]bool, 0, stateBits)
	iv = appendBits(iv, uint64(fieldParity), 2)
	iv = appendBits(iv, uint64(sboxFlag), 4)
	iv = appendBits(iv, uint64(primeBitLen), 12)
	iv = appendBits(iv, uint64(t), 12)
	iv = appendBits(iv, uint64(fullRounds), 10)
	iv = appendBits(iv, uint64(partialRounds), 10)
	for i := 0; i < 30; i++ {
		iv = append(iv, true)
	}
	if seed != 0 {
		tail := seed & (1<<30 - 1)
		for i := 0; i < 30; i++ {
			if tail>>(29-i)&1 == 1 {
				iv[50+i] = !iv[50+i]
			}
		}
	}
	return iv
}

func appendBits(dst []bool, v uint64, width int) []bool {
	for i := width - 1; i >= 0; i-- {
		dst = append(dst, v>>uint(i)&1 == 1)
	}
	return dst
}

// New seeds the register with the 80-bit init vector and discards the
// warm-up bits.
func New(iv []bool) *LFSR {
	if len(iv) != stateBits {
		panic("grain: init vector must be 80 bits")
	}
	l := &LFSR{state: bitset.New(stateBits)}
	for i, b := range iv {
		l.state.SetTo(uint(i), b)
	}
	for i := 0; i < warmupBits; i++ {
		l.step()
	}
	return l
}

// step advances the register by one bit and returns the new bit.
func (l *LFSR) step() uint {
	var nb uint
	for _, tap := range taps {
		if l.state.Test((l.head + tap) % stateBits) {
			nb ^= 1
		}
	}
	// The new bit overwrites the oldest slot, which then becomes the
	// newest; the head advances by one.
	l.state.SetTo(l.head, nb == 1)
	l.head = (l.head + 1) % stateBits
	return nb
}

// Next returns the next self-shrunk output bit: raw bits are taken in pairs,
// and the second bit of a pair is emitted only when the first is one.
func (l *LFSR) Next() uint {
	for {
		b1 := l.step()
		b2 := l.step()
		if b1 == 1 {
			return b2
		}
	}
}
