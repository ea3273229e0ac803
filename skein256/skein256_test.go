package skein256

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/gtank/skein/internal/skeintest"
)

func TestNewDigest(t *testing.T) {
	_, err := NewDigest(256)
	require.NoError(t, err)

	_, err = NewDigest(0)
	require.Error(t, err)
}

func TestStandardVectors(t *testing.T) {
	vectors, err := skeintest.Load("../testdata/skein256-kat.json")
	if err != nil {
		t.Skip(err)
	}

	for _, v := range vectors {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			input, err := hex.DecodeString(v.InputHex)
			require.NoError(t, err)
			want, err := hex.DecodeString(v.ExpectedHex)
			require.NoError(t, err)

			d, err := NewDigest(v.OutputBits)
			require.NoError(t, err)
			_, err = d.Write(input)
			require.NoError(t, err)

			got := d.Sum(nil)
			if !bytes.Equal(got, want) {
				t.Errorf("Skein-256(%q) = %x, want %x", v.InputHex, got, want)
			}
		})
	}
}

func TestIncrementalMatchesOneShot(t *testing.T) {
	msg := make([]byte, 1000)
	for i := range msg {
		msg[i] = byte(i * 37 % 251)
	}

	oneShot, err := NewDigest(512)
	require.NoError(t, err)
	_, err = oneShot.Write(msg)
	require.NoError(t, err)
	want := oneShot.Sum(nil)

	chunked, err := NewDigest(512)
	require.NoError(t, err)
	for _, size := range []int{1, 17, 64, 918} {
		chunk := msg[:size]
		msg = msg[size:]
		_, err := chunked.Write(chunk)
		require.NoError(t, err)
	}
	require.Len(t, msg, 0)
	got := chunked.Sum(nil)

	require.True(t, bytes.Equal(want, got), "chunked write diverged from one-shot write")
}

func TestTruncatedDigestIsPrefix(t *testing.T) {
	msg := []byte("The quick brown fox jumps over the lazy dog")

	full, err := NewDigest(256)
	require.NoError(t, err)
	_, err = full.Write(msg)
	require.NoError(t, err)
	longDigest := full.Sum(nil)

	short, err := NewDigest(128)
	require.NoError(t, err)
	_, err = short.Write(msg)
	require.NoError(t, err)
	shortDigest := short.Sum(nil)

	if !slices.Equal(shortDigest, longDigest[:16]) {
		t.Errorf("Skein-256(128) = %x is not a prefix of Skein-256(256) = %x", shortDigest, longDigest)
	}
}

func TestSumIsRepeatable(t *testing.T) {
	d, err := NewDigest(256)
	require.NoError(t, err)
	_, err = d.Write([]byte("repeatable"))
	require.NoError(t, err)

	first := d.Sum(nil)
	second := d.Sum(nil)
	require.Equal(t, first, second)

	_, err = d.Write([]byte(" more"))
	require.NoError(t, err)
	third := d.Sum(nil)
	require.NotEqual(t, first, third)
}

func TestWriteBitsPartialByte(t *testing.T) {
	// WriteBits with a whole-byte length must hash exactly like Write,
	// while a 4-bit message taken from the same input byte (its low
	// nibble, finalized with the T1 bit-pad flag) must hash differently
	// from the full 8-bit message.
	whole, err := NewDigest(256)
	require.NoError(t, err)
	_, err = whole.Write([]byte{0xAB})
	require.NoError(t, err)
	wholeDigest := whole.Sum(nil)

	partial, err := NewDigest(256)
	require.NoError(t, err)
	_, err = partial.WriteBits([]byte{0xAB}, 8)
	require.NoError(t, err)
	partialDigest := partial.Sum(nil)

	require.Equal(t, wholeDigest, partialDigest, "an exact 8-bit WriteBits must match Write")

	truncated, err := NewDigest(256)
	require.NoError(t, err)
	_, err = truncated.WriteBits([]byte{0xAB}, 4)
	require.NoError(t, err)
	truncatedDigest := truncated.Sum(nil)

	require.NotEqual(t, wholeDigest, truncatedDigest, "a 4-bit message must hash differently from its 8-bit byte value")
}

func TestResetMatchesFresh(t *testing.T) {
	d, err := NewDigest(256)
	require.NoError(t, err)
	_, err = d.Write([]byte("some data"))
	require.NoError(t, err)
	d.Sum(nil)
	d.Reset()

	_, err = d.Write([]byte("The quick brown fox jumps over the lazy dog"))
	require.NoError(t, err)
	got := d.Sum(nil)

	fresh, err := NewDigest(256)
	require.NoError(t, err)
	_, err = fresh.Write([]byte("The quick brown fox jumps over the lazy dog"))
	require.NoError(t, err)
	want := fresh.Sum(nil)

	require.Equal(t, want, got)
}

func TestSizeAndBlockSize(t *testing.T) {
	d, err := NewDigest(250) // not a multiple of 8
	require.NoError(t, err)
	require.Equal(t, 32, d.Size())
	require.Equal(t, blockBytes, d.BlockSize())
}
