package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerRoundTrip(t *testing.T) {
	orig := sampleSnapshot()
	for _, id := range []CodecID{CodecNone, CodecZstd, CodecLZ4} {
		data, err := EncodeContainer(orig, id)
		require.NoError(t, err, "codec %d", id)

		got, err := DecodeContainer(data)
		require.NoError(t, err, "codec %d", id)

		if diff := cmp.Diff(orig, got, ignoreIDs, ignoreDatasetIDs); diff != "" {
			t.Fatalf("codec %d mismatch (-want +got):\n%s", id, diff)
		}
	}
}

func TestContainerCompresses(t *testing.T) {
	s := sampleSnapshot()
	// Pad with repetitive entries so the codecs have something to chew on.
	for i := 0; i < 200; i++ {
		s.Functions = append(s.Functions, NewFunctionEntry("sin(x) + cos(x)", "#123456"))
	}
	plain, err := EncodeContainer(s, CodecNone)
	require.NoError(t, err)
	packed, err := EncodeContainer(s, CodecZstd)
	require.NoError(t, err)
	assert.Less(t, len(packed), len(plain))
}

func TestContainerBadMagic(t *testing.T) {
	data, err := EncodeContainer(sampleSnapshot(), CodecNone)
	require.NoError(t, err)
	data[0] = 'X'
	_, err = DecodeContainer(data)
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestContainerChecksumMismatch(t *testing.T) {
	data, err := EncodeContainer(sampleSnapshot(), CodecNone)
	require.NoError(t, err)
	data[len(data)-1] ^= 0xff
	_, err = DecodeContainer(data)
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestContainerUnknownCodec(t *testing.T) {
	data, err := EncodeContainer(sampleSnapshot(), CodecNone)
	require.NoError(t, err)
	data[4] = 0x7f
	_, err = DecodeContainer(data)
	assert.ErrorIs(t, err, ErrUnknownCodec)

	_, err = EncodeContainer(sampleSnapshot(), CodecID(9))
	assert.ErrorIs(t, err, ErrUnknownCodec)
}

func TestContainerTruncated(t *testing.T) {
	_, err := DecodeContainer([]byte{'G', 'R'})
	assert.ErrorIs(t, err, ErrBadMagic)
}
