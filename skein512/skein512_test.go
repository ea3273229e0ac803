package skein512

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/gtank/skein/internal/skeintest"
)

func TestNewDigest(t *testing.T) {
	_, err := NewDigest(512)
	require.NoError(t, err)

	_, err = NewDigest(-1)
	require.Error(t, err)
}

func TestStandardVectors(t *testing.T) {
	vectors, err := skeintest.Load("../testdata/skein512-kat.json")
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
				t.Errorf("Skein-512(%q) = %x, want %x", v.InputHex, got, want)
			}
		})
	}
}

func TestIncrementalMatchesOneShot(t *testing.T) {
	msg := make([]byte, 1000)
	for i := range msg {
		msg[i] = byte(i*131 + 7)
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

	full, err := NewDigest(512)
	require.NoError(t, err)
	_, err = full.Write(msg)
	require.NoError(t, err)
	longDigest := full.Sum(nil)

	short, err := NewDigest(256)
	require.NoError(t, err)
	_, err = short.Write(msg)
	require.NoError(t, err)
	shortDigest := short.Sum(nil)

	if !slices.Equal(shortDigest, longDigest[:32]) {
		t.Errorf("Skein-512(256) = %x is not a prefix of Skein-512(512) = %x", shortDigest, longDigest)
	}
}

func TestDeterministic(t *testing.T) {
	msg := []byte("determinism check")

	a, err := NewDigest(512)
	require.NoError(t, err)
	_, err = a.Write(msg)
	require.NoError(t, err)

	b, err := NewDigest(512)
	require.NoError(t, err)
	_, err = b.Write(msg)
	require.NoError(t, err)

	require.Equal(t, a.Sum(nil), b.Sum(nil))
}

func TestSingleByteFF(t *testing.T) {
	d, err := NewDigest(512)
	require.NoError(t, err)
	_, err = d.Write([]byte{0xFF})
	require.NoError(t, err)

	got := d.Sum(nil)
	require.Len(t, got, 64)
}
