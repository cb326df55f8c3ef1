// Package proto stands in for the code-generated protobuf layer the
// ESPHome native API spec treats as an external collaborator: concrete
// message types, each able to encode itself to and parse itself from the
// wire bytes carried by a frame. Real ESPHome deployments generate this
// layer from api.proto with protoc; this package hand-writes the same wire
// format instead, avoiding a protoc dependency for what is otherwise an
// out-of-scope codegen layer.
package proto

import (
	"encoding/binary"
	"math"
)

const (
	wireVarint = 0
	wireBytes  = 2
	wireFixed32 = 5
)

// Encodable is implemented by every application message. TypeID identifies
// the message's protobuf schema on the wire; Encode returns its
// wire-format payload bytes.
type Encodable interface {
	TypeID() uint32
	Encode() []byte
}

// fieldWriter accumulates protobuf wire-format fields in declaration order.
type fieldWriter struct {
	buf []byte
}

func newFieldWriter() *fieldWriter { return &fieldWriter{} }

func (w *fieldWriter) tag(field int, wireType int) {
	w.buf = appendVarint(w.buf, uint64(field<<3|wireType))
}

func (w *fieldWriter) Uint32(field int, v uint32) *fieldWriter {
	if v == 0 {
		return w
	}
	w.tag(field, wireVarint)
	w.buf = appendVarint(w.buf, uint64(v))
	return w
}

func (w *fieldWriter) Int32(field int, v int32) *fieldWriter {
	return w.Uint32(field, uint32(v))
}

// RepeatedInt32 writes one element of a repeated int32 field. Unlike
// Int32, it always writes the element: a repeated field's zero entries are
// meaningful (e.g. mode 0), whereas Int32/Uint32 treat 0 as "unset" for
// singular optional fields.
func (w *fieldWriter) RepeatedInt32(field int, v int32) *fieldWriter {
	w.tag(field, wireVarint)
	w.buf = appendVarint(w.buf, uint64(uint32(v)))
	return w
}

func (w *fieldWriter) Bool(field int, v bool) *fieldWriter {
	if !v {
		return w
	}
	w.tag(field, wireVarint)
	w.buf = append(w.buf, 1)
	return w
}

func (w *fieldWriter) String(field int, v string) *fieldWriter {
	if v == "" {
		return w
	}
	return w.Bytes(field, []byte(v))
}

func (w *fieldWriter) Bytes(field int, v []byte) *fieldWriter {
	if len(v) == 0 {
		return w
	}
	w.tag(field, wireBytes)
	w.buf = appendVarint(w.buf, uint64(len(v)))
	w.buf = append(w.buf, v...)
	return w
}

func (w *fieldWriter) Float(field int, v float32) *fieldWriter {
	if v == 0 {
		return w
	}
	w.tag(field, wireFixed32)
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	w.buf = append(w.buf, b[:]...)
	return w
}

func (w *fieldWriter) Bytes_() []byte { return w.buf }

func appendVarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// fieldReader walks the wire-format fields of a decoded message payload.
type fieldReader struct {
	data []byte
	pos  int
}

func newFieldReader(data []byte) *fieldReader { return &fieldReader{data: data} }

// Next returns the next field number, wire type and raw bytes (for
// length-delimited fields) or decoded varint value (for varint fields).
// ok is false once the payload is exhausted.
func (r *fieldReader) Next() (field int, wireType int, raw []byte, val uint64, ok bool) {
	if r.pos >= len(r.data) {
		return 0, 0, nil, 0, false
	}
	tag, n := readVarint(r.data[r.pos:])
	if n == 0 {
		return 0, 0, nil, 0, false
	}
	r.pos += n
	field = int(tag >> 3)
	wireType = int(tag & 0x7)

	switch wireType {
	case wireVarint:
		v, n := readVarint(r.data[r.pos:])
		if n == 0 {
			return 0, 0, nil, 0, false
		}
		r.pos += n
		return field, wireType, nil, v, true
	case wireBytes:
		length, n := readVarint(r.data[r.pos:])
		if n == 0 || r.pos+n+int(length) > len(r.data) {
			return 0, 0, nil, 0, false
		}
		r.pos += n
		b := r.data[r.pos : r.pos+int(length)]
		r.pos += int(length)
		return field, wireType, b, 0, true
	case wireFixed32:
		if r.pos+4 > len(r.data) {
			return 0, 0, nil, 0, false
		}
		b := r.data[r.pos : r.pos+4]
		r.pos += 4
		return field, wireType, b, uint64(binary.LittleEndian.Uint32(b)), true
	default:
		return 0, 0, nil, 0, false
	}
}

func readVarint(data []byte) (uint64, int) {
	var v uint64
	var shift uint
	for i, b := range data {
		v |= uint64(b&0x7F) << shift
		if b < 0x80 {
			return v, i + 1
		}
		shift += 7
		if shift >= 64 {
			return 0, 0
		}
	}
	return 0, 0
}

func fixed32ToFloat(raw []byte) float32 {
	if len(raw) != 4 {
		return 0
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(raw))
}
