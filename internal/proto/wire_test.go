package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldWriterReaderRoundTrip(t *testing.T) {
	buf := newFieldWriter().
		Uint32(1, 42).
		Bool(2, true).
		String(3, "hello").
		Float(4, 3.5).
		Bytes_()

	r := newFieldReader(buf)

	field, wireType, _, val, ok := r.Next()
	require.True(t, ok)
	require.Equal(t, 1, field)
	require.Equal(t, wireVarint, wireType)
	require.Equal(t, uint64(42), val)

	field, wireType, _, val, ok = r.Next()
	require.True(t, ok)
	require.Equal(t, 2, field)
	require.Equal(t, wireVarint, wireType)
	require.Equal(t, uint64(1), val)

	field, wireType, raw, _, ok := r.Next()
	require.True(t, ok)
	require.Equal(t, 3, field)
	require.Equal(t, wireBytes, wireType)
	require.Equal(t, "hello", string(raw))

	field, wireType, raw, _, ok = r.Next()
	require.True(t, ok)
	require.Equal(t, 4, field)
	require.Equal(t, wireFixed32, wireType)
	require.Equal(t, float32(3.5), fixed32ToFloat(raw))

	_, _, _, _, ok = r.Next()
	require.False(t, ok, "payload should be exhausted")
}

func TestFieldWriterSkipsZeroValues(t *testing.T) {
	buf := newFieldWriter().Uint32(1, 0).Bool(2, false).String(3, "").Float(4, 0).Bytes_()
	require.Empty(t, buf, "zero-valued optional fields must not be written")
}

func TestFieldReaderTruncatedPayload(t *testing.T) {
	_, _, _, _, ok := newFieldReader([]byte{0x08}).Next()
	require.False(t, ok, "a tag with no following varint byte must not parse as ok")
}

func TestHelloRequestEncode(t *testing.T) {
	req := &HelloRequest{ClientInfo: "esphomeapi-go", APIVersionMajor: 1, APIVersionMinor: 10}
	require.Equal(t, TypeHelloRequest, req.TypeID())

	r := newFieldReader(req.Encode())
	var clientInfo string
	var major, minor uint64
	for {
		field, _, raw, val, ok := r.Next()
		if !ok {
			break
		}
		switch field {
		case 1:
			clientInfo = string(raw)
		case 2:
			major = val
		case 3:
			minor = val
		}
	}
	require.Equal(t, req.ClientInfo, clientInfo)
	require.Equal(t, uint64(req.APIVersionMajor), major)
	require.Equal(t, uint64(req.APIVersionMinor), minor)
}

func TestDeviceInfoResponseEncodeDecode(t *testing.T) {
	resp := &DeviceInfoResponse{
		Name:           "kitchen-sensor",
		MacAddress:     "AA:BB:CC:DD:EE:FF",
		ESPHomeVersion: "2024.6.0",
		HasDeepSleep:   true,
		WebserverPort:  80,
	}

	// DeviceInfoResponse is decode-only (the device encodes it), so the
	// payload is built field by field with the decoder's field numbers.
	payload := newFieldWriter().
		String(2, resp.Name).
		String(3, resp.MacAddress).
		String(4, resp.ESPHomeVersion).
		Bool(7, resp.HasDeepSleep).
		Uint32(10, resp.WebserverPort).
		Bytes_()

	got := DecodeDeviceInfoResponse(payload)
	require.Equal(t, resp.Name, got.Name)
	require.Equal(t, resp.MacAddress, got.MacAddress)
	require.Equal(t, resp.ESPHomeVersion, got.ESPHomeVersion)
	require.True(t, got.HasDeepSleep)
	require.Equal(t, resp.WebserverPort, got.WebserverPort)
}

func TestLightCommandRequestOptionalFields(t *testing.T) {
	req := &LightCommandRequest{Key: 7, HasBrightness: true, Brightness: 0.5}

	r := newFieldReader(req.Encode())
	seenHasBrightness, seenBrightness := false, false
	for {
		field, _, raw, val, ok := r.Next()
		if !ok {
			break
		}
		switch field {
		case 4:
			seenHasBrightness = true
			require.Equal(t, uint64(1), val)
		case 5:
			seenBrightness = true
			require.Equal(t, float32(0.5), fixed32ToFloat(raw))
		}
	}
	require.True(t, seenHasBrightness, "has-brightness flag must be present")
	require.True(t, seenBrightness, "brightness field must be present when HasBrightness is set")
}
