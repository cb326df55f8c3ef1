package core

import "io"

// Frame is a single decoded application message: a type id and its raw
// protobuf-encoded payload.
type Frame struct {
	TypeID  uint32
	Payload []byte
}

// Codec turns the raw TCP byte stream into Frames and back. Plain carries
// frames as-is; Noise wraps them in a Noise_NN_psk0 encrypted channel.
type Codec interface {
	// HandshakeFrame returns bytes to write before any application frame,
	// or nil if the codec has no handshake step.
	HandshakeFrame() ([]byte, error)

	// ReadFrame blocks until a complete application Frame has been read
	// from r, consuming and discarding any handshake-only wire frames
	// along the way.
	ReadFrame(r io.Reader) (Frame, error)

	// WriteFrame encodes f as wire bytes ready to write to the peer.
	WriteFrame(f Frame) ([]byte, error)
}
