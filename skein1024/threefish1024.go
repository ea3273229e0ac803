package skein1024

import "encoding/binary"

// Threefish-1024 operates on a 16-word (1024-bit) state over 80 rounds.
// These constants and the permutation below are the published Skein 1.3
// values; they must be used exactly, so they are package-level immutable
// tables rather than computed at runtime.
const (
	wordCount  = 16
	blockBytes = wordCount * 8
	rounds     = 80

	c240 = 0x1BD11BDAA9FC1A22
)

// rotation holds the per-round, per-pair rotation amounts. The table
// repeats every 8 rounds; rotation[d%8][j] gives the amount for word pair
// j during round d.
var rotation = [8][wordCount / 2]uint{
	{24, 13, 8, 47, 8, 17, 22, 37},
	{38, 19, 10, 55, 49, 18, 23, 52},
	{33, 4, 51, 13, 34, 41, 59, 17},
	{5, 20, 48, 41, 47, 28, 16, 25},
	{41, 9, 37, 31, 12, 47, 44, 30},
	{16, 34, 56, 51, 4, 53, 42, 41},
	{31, 44, 47, 46, 19, 42, 44, 25},
	{9, 48, 35, 52, 23, 31, 37, 20},
}

// permutation maps new word index to old word index, applied after every
// round's MIX step. It has order 4, like the 512-bit permutation.
var permutation = [wordCount]int{0, 9, 2, 13, 6, 11, 4, 15, 10, 7, 12, 3, 14, 5, 8, 1}

func rotl64(x uint64, r uint) uint64 {
	return (x << r) | (x >> (64 - r))
}

func mix(a, b uint64, r uint) (uint64, uint64) {
	a += b
	b = rotl64(b, r) ^ a
	return a, b
}

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
