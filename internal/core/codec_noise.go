package core

import (
	"bufio"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/flynn/noise"
)

var noisePrologue = []byte("NoiseAPIInit\x00\x00")

// noiseCipherSuite is Noise_NN_psk0's cipher suite: X25519 DH, ChaCha20-Poly1305
// AEAD, SHA-256 hash.
var noiseCipherSuite = noise.NewCipherSuite(noise.DH25519, noise.CipherChaChaPoly, noise.HashSHA256)

type noiseState int

const (
	noiseStateHello noiseState = iota
	noiseStateHandshake
	noiseStateReady
	noiseStateClosed
)

// NoiseCodec implements ESPHome's Noise_NN_psk0 encrypted wire framing.
// Every physical frame on the wire is [0x01][len_hi][len_lo][body]; the
// meaning of body depends on the handshake sub-state.
type NoiseCodec struct {
	state              noiseState
	expectedServerName string
	hs                 *noise.HandshakeState
	send, recv         *noise.CipherState
}

// NewNoiseCodec builds the client (initiator) side of a Noise_NN_psk0
// session. psk is the device's base64-encoded encryption key, exactly as
// shown in its ESPHome dashboard. expectedServerName, if non-empty, is
// checked against the name the device reports in its Hello frame.
func NewNoiseCodec(psk string, expectedServerName string) (*NoiseCodec, error) {
	key, err := base64.StdEncoding.DecodeString(psk)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid psk encoding: %v", ErrCryptoFailure, err)
	}

	hs, err := noise.NewHandshakeState(noise.Config{
		CipherSuite:           noiseCipherSuite,
		Pattern:               noise.HandshakeNN,
		Initiator:             true,
		Prologue:              noisePrologue,
		PresharedKey:          key,
		PresharedKeyPlacement: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCryptoFailure, err)
	}

	return &NoiseCodec{
		state:              noiseStateHello,
		expectedServerName: expectedServerName,
		hs:                 hs,
	}, nil
}

// HandshakeFrame returns the two physical frames the client must send
// before anything else: an empty frame selecting protocol 1, immediately
// followed by the first Noise handshake message (-> e).
func (c *NoiseCodec) HandshakeFrame() ([]byte, error) {
	msg, _, _, err := c.hs.WriteMessage(nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCryptoFailure, err)
	}

	out := make([]byte, 0, 3+3+len(msg)+1)
	out = append(out, 0x01, 0x00, 0x00) // empty "choose protocol 1" frame

	bodyLen := len(msg) + 1
	out = append(out, 0x01, byte(bodyLen>>8), byte(bodyLen))
	out = append(out, 0x00)
	out = append(out, msg...)
	return out, nil
}

func (c *NoiseCodec) readPhysicalFrame(br *bufio.Reader) ([]byte, error) {
	header := make([]byte, 3)
	if _, err := io.ReadFull(br, header); err != nil {
		return nil, fmt.Errorf("core: read noise header: %w", err)
	}
	if header[0] != 0x01 {
		return nil, fmt.Errorf("%w: preamble 0x%02x", ErrInvalidFrame, header[0])
	}
	length := int(header[1])<<8 | int(header[2])

	body := make([]byte, length)
	if _, err := io.ReadFull(br, body); err != nil {
		return nil, fmt.Errorf("core: read noise body: %w", err)
	}
	return body, nil
}

// ReadFrame consumes as many physical frames as the handshake sub-state
// requires, returning the first decrypted application Frame. The first
// call after the handshake completes returns the device's own type-0
// "Handshake completed" frame like any other Ready-state frame; nothing
// in this codec manufactures it.
func (c *NoiseCodec) ReadFrame(r io.Reader) (Frame, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	for {
		switch c.state {
		case noiseStateClosed:
			return Frame{}, ErrConnectionClosed

		case noiseStateHello:
			body, err := c.readPhysicalFrame(br)
			if err != nil {
				return Frame{}, err
			}
			if len(body) == 0 || body[0] != 0x01 {
				return Frame{}, fmt.Errorf("%w: unsupported noise protocol choice", ErrInvalidFrame)
			}
			if name := extractServerName(body[1:]); name != "" && c.expectedServerName != "" {
				if name != c.expectedServerName {
					return Frame{}, ErrServerNameMismatch
				}
			}
			c.state = noiseStateHandshake

		case noiseStateHandshake:
			body, err := c.readPhysicalFrame(br)
			if err != nil {
				return Frame{}, err
			}
			if len(body) == 0 || body[0] != 0x00 {
				return Frame{}, fmt.Errorf("%w: bad handshake preamble", ErrInvalidFrame)
			}
			_, send, recv, err := c.hs.ReadMessage(nil, body[1:])
			if err != nil {
				return Frame{}, fmt.Errorf("%w: %v", ErrCryptoFailure, err)
			}
			if send != nil && recv != nil {
				// Client is the initiator: flynn/noise names the cipher
				// states in the order they were produced by WriteMessage
				// then ReadMessage, so the first state is ours to send
				// with and the second is ours to receive with.
				c.send, c.recv = send, recv
				c.state = noiseStateReady
			}

		case noiseStateReady:
			body, err := c.readPhysicalFrame(br)
			if err != nil {
				return Frame{}, err
			}
			plain, err := c.recv.Decrypt(nil, nil, body)
			if err != nil {
				return Frame{}, fmt.Errorf("%w: %v", ErrCryptoFailure, err)
			}
			if len(plain) < 4 {
				return Frame{}, fmt.Errorf("%w: short noise payload", ErrInvalidFrame)
			}
			typeID := uint32(plain[0])<<8 | uint32(plain[1])
			msgLen := uint32(plain[2])<<8 | uint32(plain[3])
			if uint32(len(plain)-4) < msgLen {
				return Frame{}, fmt.Errorf("%w: truncated noise payload", ErrInvalidFrame)
			}
			return Frame{TypeID: typeID, Payload: plain[4 : 4+msgLen]}, nil
		}
	}
}

func (c *NoiseCodec) WriteFrame(f Frame) ([]byte, error) {
	if c.state != noiseStateReady || c.send == nil {
		return nil, fmt.Errorf("%w: noise encoder not ready", ErrCryptoFailure)
	}

	inner := make([]byte, 4, 4+len(f.Payload))
	binary.BigEndian.PutUint16(inner[0:2], uint16(f.TypeID))
	binary.BigEndian.PutUint16(inner[2:4], uint16(len(f.Payload)))
	inner = append(inner, f.Payload...)

	ciphertext, err := c.send.Encrypt(nil, nil, inner)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCryptoFailure, err)
	}

	out := make([]byte, 3, 3+len(ciphertext))
	out[0] = 0x01
	out[1] = byte(len(ciphertext) >> 8)
	out[2] = byte(len(ciphertext))
	out = append(out, ciphertext...)
	return out, nil
}

// extractServerName reads the NUL-terminated server name ESPHome devices
// since 2022.2 prepend to their Hello response. Returns "" if absent.
func extractServerName(rest []byte) string {
	for i, b := range rest {
		if b == 0x00 {
			return string(rest[:i])
		}
	}
	return ""
}
