package core

import (
	"bufio"
	"encoding/base64"
	"encoding/binary"
	"io"
	"net"
	"testing"
	"time"

	"github.com/flynn/noise"
	"github.com/stretchr/testify/require"
)

// fakeDevice plays the responder side of Noise_NN_psk0 over a net.Pipe,
// standing in for a real ESPHome device during codec tests.
type fakeDevice struct {
	conn net.Conn
	br   *bufio.Reader
	hs   *noise.HandshakeState
	send *noise.CipherState
	recv *noise.CipherState
}

func newFakeDevice(t *testing.T, conn net.Conn, psk []byte) *fakeDevice {
	t.Helper()
	hs, err := noise.NewHandshakeState(noise.Config{
		CipherSuite:           noiseCipherSuite,
		Pattern:               noise.HandshakeNN,
		Initiator:             false,
		Prologue:              noisePrologue,
		PresharedKey:          psk,
		PresharedKeyPlacement: 0,
	})
	require.NoError(t, err)
	return &fakeDevice{conn: conn, br: bufio.NewReader(conn), hs: hs}
}

func (d *fakeDevice) readPhysicalFrame(t *testing.T) []byte {
	t.Helper()
	header := make([]byte, 3)
	_, err := io.ReadFull(d.br, header)
	require.NoError(t, err)
	length := int(header[1])<<8 | int(header[2])
	body := make([]byte, length)
	_, err = io.ReadFull(d.br, body)
	require.NoError(t, err)
	return body
}

func (d *fakeDevice) writePhysicalFrame(t *testing.T, body []byte) {
	t.Helper()
	out := make([]byte, 3, 3+len(body))
	out[0] = 0x01
	out[1] = byte(len(body) >> 8)
	out[2] = byte(len(body))
	out = append(out, body...)
	_, err := d.conn.Write(out)
	require.NoError(t, err)
}

// completeHandshake consumes the client's choose-protocol + first
// handshake message frames, then replies with the protocol-ack frame and
// its own handshake message, completing Noise_NN_psk0.
func (d *fakeDevice) completeHandshake(t *testing.T, serverName string) {
	t.Helper()

	chooseProtocol := d.readPhysicalFrame(t)
	require.Empty(t, chooseProtocol, "choose-protocol frame must be empty")

	msg1Frame := d.readPhysicalFrame(t)
	require.Equal(t, byte(0x00), msg1Frame[0])
	_, _, _, err := d.hs.ReadMessage(nil, msg1Frame[1:])
	require.NoError(t, err)

	ack := append([]byte{0x01}, []byte(serverName)...)
	ack = append(ack, 0x00)
	d.writePhysicalFrame(t, ack)

	msg2, cs1, cs2, err := d.hs.WriteMessage(nil, nil)
	require.NoError(t, err)
	require.NotNil(t, cs1, "handshake must complete on the second message")
	require.NotNil(t, cs2)
	// Responder: cs1 is for receiving (client sends with its cs1, which is
	// the initiator's send key), cs2 is for sending.
	d.recv, d.send = cs1, cs2

	d.writePhysicalFrame(t, append([]byte{0x00}, msg2...))
}

func (d *fakeDevice) sendEncrypted(t *testing.T, typeID uint32, payload []byte) {
	t.Helper()
	inner := make([]byte, 4, 4+len(payload))
	binary.BigEndian.PutUint16(inner[0:2], uint16(typeID))
	binary.BigEndian.PutUint16(inner[2:4], uint16(len(payload)))
	inner = append(inner, payload...)
	ciphertext, err := d.send.Encrypt(nil, nil, inner)
	require.NoError(t, err)
	d.writePhysicalFrame(t, ciphertext)
}

func (d *fakeDevice) readEncrypted(t *testing.T) (uint32, []byte) {
	t.Helper()
	body := d.readPhysicalFrame(t)
	plain, err := d.recv.Decrypt(nil, nil, body)
	require.NoError(t, err)
	typeID := uint32(plain[0])<<8 | uint32(plain[1])
	length := uint32(plain[2])<<8 | uint32(plain[3])
	return typeID, plain[4 : 4+length]
}

func testPSK() []byte {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

func TestNoiseCodecHandshakeAndApplicationFrames(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	psk := testPSK()
	codec, err := NewNoiseCodec(base64.StdEncoding.EncodeToString(psk), "kitchen-sensor")
	require.NoError(t, err)

	device := newFakeDevice(t, serverConn, psk)

	done := make(chan struct{})
	go func() {
		defer close(done)
		device.completeHandshake(t, "kitchen-sensor")
		device.sendEncrypted(t, 0, []byte("Handshake completed"))
	}()

	frame, err := codec.HandshakeFrame()
	require.NoError(t, err)
	_, err = clientConn.Write(frame)
	require.NoError(t, err)

	br := bufio.NewReader(clientConn)
	got, err := codec.ReadFrame(br)
	require.NoError(t, err)
	require.Equal(t, uint32(0), got.TypeID)
	require.Equal(t, "Handshake completed", string(got.Payload))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("fake device goroutine did not finish")
	}

	// Now exercise both directions of the Ready-state application frames.
	clientBuf, err := codec.WriteFrame(Frame{TypeID: 12, Payload: []byte("ping")})
	require.NoError(t, err)
	writeDone := make(chan struct{})
	go func() {
		defer close(writeDone)
		_, werr := clientConn.Write(clientBuf)
		require.NoError(t, werr)
	}()
	typeID, payload := device.readEncrypted(t)
	require.Equal(t, uint32(12), typeID)
	require.Equal(t, "ping", string(payload))
	<-writeDone

	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		device.sendEncrypted(t, 13, []byte("pong"))
	}()
	got, err = codec.ReadFrame(br)
	require.NoError(t, err)
	require.Equal(t, uint32(13), got.TypeID)
	require.Equal(t, "pong", string(got.Payload))
	<-readDone
}

func TestNoiseCodecRejectsServerNameMismatch(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	psk := testPSK()
	codec, err := NewNoiseCodec(base64.StdEncoding.EncodeToString(psk), "expected-name")
	require.NoError(t, err)

	device := newFakeDevice(t, serverConn, psk)
	go func() {
		chooseProtocol := device.readPhysicalFrame(t)
		_ = chooseProtocol
		msg1Frame := device.readPhysicalFrame(t)
		_, _, _, _ = device.hs.ReadMessage(nil, msg1Frame[1:])
		ack := append([]byte{0x01}, []byte("actual-name")...)
		ack = append(ack, 0x00)
		device.writePhysicalFrame(t, ack)
	}()

	frame, err := codec.HandshakeFrame()
	require.NoError(t, err)
	_, err = clientConn.Write(frame)
	require.NoError(t, err)

	br := bufio.NewReader(clientConn)
	_, err = codec.ReadFrame(br)
	require.ErrorIs(t, err, ErrServerNameMismatch)
}
