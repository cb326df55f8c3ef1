package core

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// PlainCodec implements the unencrypted wire framing: a single preamble
// byte (always 0x00), a varint payload length, a varint message type, then
// the payload itself.
type PlainCodec struct{}

func NewPlainCodec() *PlainCodec { return &PlainCodec{} }

func (c *PlainCodec) HandshakeFrame() ([]byte, error) { return nil, nil }

func (c *PlainCodec) ReadFrame(r io.Reader) (Frame, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	preamble, err := br.ReadByte()
	if err != nil {
		return Frame{}, fmt.Errorf("core: read preamble: %w", err)
	}
	if preamble != 0x00 {
		return Frame{}, fmt.Errorf("%w: preamble 0x%02x", ErrInvalidFrame, preamble)
	}

	length, err := binary.ReadUvarint(br)
	if err != nil {
		return Frame{}, fmt.Errorf("core: read length: %w", err)
	}
	typeID, err := binary.ReadUvarint(br)
	if err != nil {
		return Frame{}, fmt.Errorf("core: read type: %w", err)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(br, payload); err != nil {
		return Frame{}, fmt.Errorf("core: read payload: %w", err)
	}

	return Frame{TypeID: uint32(typeID), Payload: payload}, nil
}

func (c *PlainCodec) WriteFrame(f Frame) ([]byte, error) {
	buf := make([]byte, 0, len(f.Payload)+11)
	buf = append(buf, 0x00)
	buf = binary.AppendUvarint(buf, uint64(len(f.Payload)))
	buf = binary.AppendUvarint(buf, uint64(f.TypeID))
	buf = append(buf, f.Payload...)
	return buf, nil
}
