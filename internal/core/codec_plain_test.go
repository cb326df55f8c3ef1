package core

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlainCodecRoundTrip(t *testing.T) {
	codec := NewPlainCodec()
	want := Frame{TypeID: 12, Payload: []byte("hello device")}

	buf, err := codec.WriteFrame(want)
	require.NoError(t, err)

	got, err := codec.ReadFrame(bufio.NewReader(bytes.NewReader(buf)))
	require.NoError(t, err)
	require.Equal(t, want.TypeID, got.TypeID)
	require.Equal(t, want.Payload, got.Payload)
}

func TestPlainCodecRoundTripEmptyPayload(t *testing.T) {
	codec := NewPlainCodec()
	want := Frame{TypeID: 7}

	buf, err := codec.WriteFrame(want)
	require.NoError(t, err)

	got, err := codec.ReadFrame(bufio.NewReader(bytes.NewReader(buf)))
	require.NoError(t, err)
	require.Equal(t, want.TypeID, got.TypeID)
	require.Empty(t, got.Payload)
}

func TestPlainCodecRejectsBadPreamble(t *testing.T) {
	codec := NewPlainCodec()
	_, err := codec.ReadFrame(bufio.NewReader(bytes.NewReader([]byte{0x01, 0x00, 0x00})))
	require.ErrorIs(t, err, ErrInvalidFrame)
}

func TestPlainCodecReadsMultipleFramesFromOneStream(t *testing.T) {
	codec := NewPlainCodec()
	var buf bytes.Buffer
	for _, f := range []Frame{{TypeID: 1, Payload: []byte("a")}, {TypeID: 2, Payload: []byte("bb")}} {
		encoded, err := codec.WriteFrame(f)
		require.NoError(t, err)
		buf.Write(encoded)
	}

	br := bufio.NewReader(&buf)
	f1, err := codec.ReadFrame(br)
	require.NoError(t, err)
	require.Equal(t, uint32(1), f1.TypeID)

	f2, err := codec.ReadFrame(br)
	require.NoError(t, err)
	require.Equal(t, uint32(2), f2.TypeID)
	require.Equal(t, []byte("bb"), f2.Payload)
}
