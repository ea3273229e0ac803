package skein256

import "encoding/binary"

// Threefish-256 operates on a 4-word (256-bit) state over 72 rounds. These
// constants and the permutation below are the published Skein 1.3 values;
// they must be used exactly, so they are package-level immutable tables
// rather than computed at runtime.
const (
	wordCount  = 4
	blockBytes = wordCount * 8
	rounds     = 72

	// c240 is the fixed parity constant mixed into the extra key-schedule
	// word, common to all three Threefish variants.
	c240 = 0x1BD11BDAA9FC1A22
)

// rotation holds the per-round, per-pair rotation amounts. The table
// repeats every 8 rounds; rotation[d%8][j] gives the amount for word pair
// j during round d.
var rotation = [8][wordCount / 2]uint{
	{14, 16},
	{52, 57},
	{23, 40},
	{5, 37},
	{25, 33},
	{46, 12},
	{58, 22},
	{32, 32},
}

// permutation maps new word index to old word index, applied after every
// round's MIX step. It has period 4 in general; for the 256-bit variant it
// reduces to a single swap (words 1 and 3 trade places each round).
var permutation = [wordCount]int{0, 3, 2, 1}

func rotl64(x uint64, r uint) uint64 {
	return (x << r) | (x >> (64 - r))
}

// mix is the Threefish MIX operation: add the pair, then rotate and xor.
func mix(a, b uint64, r uint) (uint64, uint64) {
	a += b
	b = rotl64(b, r) ^ a
	return a, b
}

// keySchedule derives ks[0..wordCount-1] = h, and the extra parity word
// ks[wordCount] = C240 xor h[0] xor ... xor h[wordCount-1].
func keySchedule(h [wordCount]uint64) [wordCount + 1]uint64 {
	var ks [wordCount + 1]uint64
	parity := uint64(c240)
	for i, v := range h {
		ks[i] = v
		parity ^= v
	}
	ks[wordCount] = parity
	return ks
}

// tweakSchedule expands the two tweak words into the three values the
// round loop consumes.
func tweakSchedule(t0, t1 uint64) [3]uint64 {
	return [3]uint64{t0, t1, t0 ^ t1}
}

func loadBlock(b []byte) (w [wordCount]uint64) {
	for i := range w {
		w[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
	return w
}

func storeBlock(b []byte, w [wordCount]uint64) {
	for i, v := range w {
		binary.LittleEndian.PutUint64(b[i*8:], v)
	}
}

// encryptBlock runs the Threefish-256 permutation over msg keyed by ks and
// tweaked by ts. It returns the permuted state without the
// Matyas-Meyer-Oseas feed-forward (XOR with msg); its caller,
// compressWith, applies that step.
func encryptBlock(msg [wordCount]uint64, ks [wordCount + 1]uint64, ts [3]uint64) [wordCount]uint64 {
	x := msg
	for i := range x {
		x[i] += ks[i]
	}
	x[wordCount-3] += ts[0]
	x[wordCount-2] += ts[1]

	s := uint64(1)
	for d := 0; d < rounds; d++ {
		r := rotation[d%8]
		for j := range r {
			a, b := 2*j, 2*j+1
			x[a], x[b] = mix(x[a], x[b], r[j])
		}

		var nx [wordCount]uint64
		for i := range nx {
			nx[i] = x[permutation[i]]
		}
		x = nx

		if (d+1)%4 == 0 {
			for i := range x {
				x[i] += ks[(s+uint64(i))%(wordCount+1)]
			}
			x[wordCount-3] += ts[s%3]
			x[wordCount-2] += ts[(s+1)%3]
			x[wordCount-1] += s
			s++
		}
	}
	return x
}

// compressWith runs one UBI step: Threefish-encrypt block under (h, t0, t1)
// and feed the input block forward into the result.
func compressWith(h [wordCount]uint64, block []byte, t0, t1 uint64) [wordCount]uint64 {
	msg := loadBlock(block)
	ks := keySchedule(h)
	ts := tweakSchedule(t0, t1)
	x := encryptBlock(msg, ks, ts)

	var out [wordCount]uint64
	for i := range out {
		out[i] = x[i] ^ msg[i]
	}
	return out
}
