package skein

import (
	"fmt"
	"hash"

	"github.com/gtank/skein/skein1024"
	"github.com/gtank/skein/skein256"
	"github.com/gtank/skein/skein512"
)

// New constructs a Skein hash.Hash using the Threefish permutation sized
// for stateBits (256, 512, or 1024), configured to produce outputBits of
// digest on Sum.
func New(stateBits, outputBits int) (hash.Hash, error) {
	switch stateBits {
	case 256:
		return skein256.NewDigest(outputBits)
	case 512:
		return skein512.NewDigest(outputBits)
	case 1024:
		return skein1024.NewDigest(outputBits)
	default:
		return nil, fmt.Errorf("skein: unsupported state size %d (want 256, 512, or 1024)", stateBits)
	}
}

// Sum is the one-shot convenience form of New: it hashes data in a single
// call and returns ceil(outputBits/8) bytes of digest.
func Sum(stateBits, outputBits int, data []byte) ([]byte, error) {
	h, err := New(stateBits, outputBits)
	if err != nil {
		return nil, err
	}
	if _, err := h.Write(data); err != nil {
		return nil, fmt.Errorf("skein: %w", err)
	}
	return h.Sum(nil), nil
}

// bitWriter is satisfied by each skeinNNN.Digest; it exposes the
// bit-length-aware write path needed when the message is not a whole
// number of bytes.
type bitWriter interface {
	WriteBits(data []byte, nbits int) (int, error)
}

// SumBits is the bit-length-aware form of Sum, for messages whose total
// length is not a multiple of 8 bits. nbits must be in [0, 8*len(data)];
// the trailing bits are taken from the low bits of data's last byte.
func SumBits(stateBits, outputBits int, data []byte, nbits int) ([]byte, error) {
	h, err := New(stateBits, outputBits)
	if err != nil {
		return nil, err
	}
	bw, ok := h.(bitWriter)
	if !ok {
		return nil, fmt.Errorf("skein: state size %d does not support bit-length input", stateBits)
	}
	if _, err := bw.WriteBits(data, nbits); err != nil {
		return nil, fmt.Errorf("skein: %w", err)
	}
	return h.Sum(nil), nil
}
