// Package skein1024 implements the Skein-1024 secure hashing algorithm:
// the Threefish-1024 tweakable block cipher running in UBI (Unique Block
// Iteration) chaining mode. It produces digests of any requested bit
// length and satisfies the standard library's hash.Hash interface.
package skein1024

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	typeCfg = 4
	typeMsg = 48
	typeOut = 63

	flagFirst  = uint64(1) << 62
	flagFinal  = uint64(1) << 63
	flagBitPad = uint64(1) << 55
	typeShift  = 56

	// configBytes is the length of the Skein configuration string (schema,
	// version, output length, tree parameters) — fixed at 32 bytes
	// regardless of state size, not the state's block size.
	configBytes = 32
	// counterBytes is the width of the little-endian counter that is the
	// only real content of an output-transform block; the rest of the
	// block is zero padding that T0 must not count.
	counterBytes = 8
)

func tweakWord(code uint64, first, final, bitPad bool) uint64 {
	t := code << typeShift
	if first {
		t |= flagFirst
	}
	if final {
		t |= flagFinal
	}
	if bitPad {
		t |= flagBitPad
	}
	return t
}

// Digest represents the internal state of a Skein-1024 computation.
type Digest struct {
	h       [wordCount]uint64
	t0      uint64
	buf     [blockBytes]byte
	offset  int
	outBits int

	msgSeen     bool
	partialBits int
}

func initialState(outBits int) [wordCount]uint64 {
	var cfg [blockBytes]byte
	copy(cfg[0:4], []byte("SHA3"))
	binary.LittleEndian.PutUint16(cfg[4:6], 1)
	binary.LittleEndian.PutUint64(cfg[8:16], uint64(outBits))

	var zero [wordCount]uint64
	t1 := tweakWord(typeCfg, true, true, false)
	return compressWith(zero, cfg[:], configBytes, t1)
}

// NewDigest constructs a Skein-1024 hash producing outBits of output.
func NewDigest(outBits int) (*Digest, error) {
	if outBits <= 0 {
		return nil, errors.New("skein1024: asked for zero or negative output size")
	}
	return &Digest{
		h:       initialState(outBits),
		outBits: outBits,
	}, nil
}

func (d *Digest) compressBlock(block []byte, t0, t1 uint64) {
	d.h = compressWith(d.h, block, t0, t1)
}

// Write adds more data to the running hash.
func (d *Digest) Write(input []byte) (n int, err error) {
	if d.partialBits != 0 {
		return 0, errors.New("skein1024: write after bit-length-terminated input")
	}

	bytesWritten := 0
	for bytesWritten < len(input) {
		freeBytes := blockBytes - d.offset
		inputLeft := len(input) - bytesWritten

		if inputLeft <= freeBytes {
			newOffset := d.offset + inputLeft
			copy(d.buf[d.offset:newOffset], input[bytesWritten:])
			d.offset = newOffset
			return bytesWritten + inputLeft, nil
		}

		copy(d.buf[d.offset:], input[bytesWritten:bytesWritten+freeBytes])

		d.t0 += uint64(blockBytes)
		first := !d.msgSeen
		d.msgSeen = true
		d.compressBlock(d.buf[:], d.t0, tweakWord(typeMsg, first, false, false))

		bytesWritten += freeBytes
		d.offset = 0
	}

	return bytesWritten, nil
}

// WriteBits is the bit-length-aware form of Write; see skein256.Digest.WriteBits.
func (d *Digest) WriteBits(data []byte, nbits int) (int, error) {
	if nbits < 0 || nbits > 8*len(data) {
		return 0, fmt.Errorf("skein1024: nbits %d out of range for %d-byte input", nbits, len(data))
	}

	fullBytes := nbits / 8
	remBits := nbits % 8

	n, err := d.Write(data[:fullBytes])
	if err != nil {
		return n, err
	}
	if remBits == 0 {
		return n, nil
	}

	mask := byte(1<<uint(remBits) - 1)
	nn, err := d.Write([]byte{data[fullBytes] & mask})
	if err != nil {
		return n, err
	}
	d.partialBits = remBits
	return n + nn, nil
}

func (d *Digest) finalize(out []byte) {
	dCopy := *d

	for i := dCopy.offset; i < blockBytes; i++ {
		dCopy.buf[i] = 0
	}
	dCopy.t0 += uint64(dCopy.offset)

	first := !dCopy.msgSeen
	bitPad := dCopy.partialBits != 0
	dCopy.compressBlock(dCopy.buf[:], dCopy.t0, tweakWord(typeMsg, first, true, bitPad))

	dCopy.outputTransform(out)
}

func (d *Digest) outputTransform(out []byte) {
	k := d.h
	nBlocks := (len(out) + blockBytes - 1) / blockBytes

	for ctr := 0; ctr < nBlocks; ctr++ {
		var ctrBlock [blockBytes]byte
		binary.LittleEndian.PutUint64(ctrBlock[:8], uint64(ctr))

		t1 := tweakWord(typeOut, true, true, false)
		result := compressWith(k, ctrBlock[:], counterBytes, t1)

		var wbuf [blockBytes]byte
		storeBlock(wbuf[:], result)

		start := ctr * blockBytes
		end := start + blockBytes
		if end > len(out) {
			end = len(out)
		}
		copy(out[start:end], wbuf[:end-start])
	}
}

// Sum appends the current hash to b and returns the resulting slice. It
// does not mutate the running digest, so Write may resume afterward.
func (d *Digest) Sum(b []byte) []byte {
	out := make([]byte, d.Size())
	d.finalize(out)
	return append(b, out...)
}

// Reset restores the Digest to its freshly-constructed state.
func (d *Digest) Reset() {
	d.h = initialState(d.outBits)
	d.t0 = 0
	d.offset = 0
	d.msgSeen = false
	d.partialBits = 0
}

// Size returns the digest output size in bytes.
func (d *Digest) Size() int { return (d.outBits + 7) / 8 }

// BlockSize returns the hash's underlying block size in bytes.
func (d *Digest) BlockSize() int { return blockBytes }
