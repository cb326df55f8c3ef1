package core

import (
	"bufio"
	"context"
	"encoding/binary"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/esphome/esphomeapi-go/internal/proto"
)

// encodeStringField builds a minimal length-delimited protobuf field,
// standing in for proto.Encode on the response messages that production
// code only ever decodes (the device is the one that encodes them).
func encodeStringField(field int, s string) []byte {
	tag := uint64(field)<<3 | 2
	buf := binary.AppendUvarint(nil, tag)
	buf = binary.AppendUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}

func encodeVarintField(field int, v uint64) []byte {
	tag := uint64(field)<<3 | 0
	buf := binary.AppendUvarint(nil, tag)
	return binary.AppendUvarint(buf, v)
}

func encodeHelloResponse(name string) []byte {
	var buf []byte
	buf = append(buf, encodeVarintField(1, 1)...)
	buf = append(buf, encodeVarintField(2, 10)...)
	buf = append(buf, encodeStringField(4, name)...)
	return buf
}

func encodeDeviceInfoResponse(name, mac string) []byte {
	var buf []byte
	buf = append(buf, encodeStringField(2, name)...)
	buf = append(buf, encodeStringField(3, mac)...)
	return buf
}

// fakePlainDevice answers Hello, Connect, DeviceInfo and Disconnect over
// the unencrypted wire framing, standing in for a real ESPHome device
// during connection-level tests.
func fakePlainDevice(t *testing.T, conn net.Conn) {
	t.Helper()
	codec := NewPlainCodec()
	br := bufio.NewReader(conn)

	for {
		f, err := codec.ReadFrame(br)
		if err != nil {
			return
		}
		switch f.TypeID {
		case proto.TypeHelloRequest:
			writeFrame(t, conn, codec, Frame{TypeID: proto.TypeHelloResponse, Payload: encodeHelloResponse("kitchen-sensor")})
		case proto.TypeConnectRequest:
			writeFrame(t, conn, codec, Frame{TypeID: proto.TypeConnectResponse, Payload: encodeVarintField(1, 0)})
		case proto.TypeDeviceInfoRequest:
			writeFrame(t, conn, codec, Frame{TypeID: proto.TypeDeviceInfoResponse, Payload: encodeDeviceInfoResponse("kitchen-sensor", "AA:BB:CC:DD:EE:FF")})
		case proto.TypePingRequest:
			writeFrame(t, conn, codec, Frame{TypeID: proto.TypePingResponse})
		case proto.TypeDisconnectRequest:
			writeFrame(t, conn, codec, Frame{TypeID: proto.TypeDisconnectResponse})
			return
		}
	}
}

func writeFrame(t *testing.T, conn net.Conn, codec *PlainCodec, f Frame) {
	t.Helper()
	buf, err := codec.WriteFrame(f)
	require.NoError(t, err)
	_, err = conn.Write(buf)
	require.NoError(t, err)
}

func listenAndServe(t *testing.T) (addr string, stop func()) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		fakePlainDevice(t, conn)
	}()
	return ln.Addr().String(), func() { ln.Close() }
}

func dialHostPort(t *testing.T, addr string) (host string, port int) {
	t.Helper()
	h, p, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	portNum, err := strconv.Atoi(p)
	require.NoError(t, err)
	return h, portNum
}

func TestConnectionConnectAndDeviceInfo(t *testing.T) {
	addr, stop := listenAndServe(t)
	defer stop()
	host, port := dialHostPort(t, addr)

	conn := NewConnection(host, port, WithRequestTimeout(2*time.Second))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, conn.Connect(ctx, true))
	require.Equal(t, StateConnected, conn.State())

	f, err := conn.SendMessageAwaitResponse(ctx, &proto.DeviceInfoRequest{}, proto.TypeDeviceInfoResponse)
	require.NoError(t, err)
	info := proto.DecodeDeviceInfoResponse(f.Payload)
	require.Equal(t, "kitchen-sensor", info.Name)

	require.NoError(t, conn.Disconnect(ctx))
	require.Equal(t, StateClosed, conn.State())
}

func TestConnectionSendMessageAwaitResponseTimesOut(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		// Answer Hello/Connect but never reply to anything else, to
		// exercise the request timeout path.
		codec := NewPlainCodec()
		br := bufio.NewReader(conn)
		for {
			f, err := codec.ReadFrame(br)
			if err != nil {
				return
			}
			switch f.TypeID {
			case proto.TypeHelloRequest:
				writeFrame(t, conn, codec, Frame{TypeID: proto.TypeHelloResponse, Payload: encodeHelloResponse("kitchen-sensor")})
			case proto.TypeConnectRequest:
				writeFrame(t, conn, codec, Frame{TypeID: proto.TypeConnectResponse, Payload: encodeVarintField(1, 0)})
			}
		}
	}()

	host, port := dialHostPort(t, ln.Addr().String())
	conn := NewConnection(host, port, WithRequestTimeout(200*time.Millisecond))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, conn.Connect(ctx, true))
	defer conn.Close()

	_, err = conn.SendMessageAwaitResponse(ctx, &proto.DeviceInfoRequest{}, proto.TypeDeviceInfoResponse)
	require.ErrorIs(t, err, ErrTimeout)
}

func TestConnectionRejectsHelloNameMismatch(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		codec := NewPlainCodec()
		br := bufio.NewReader(conn)
		f, err := codec.ReadFrame(br)
		if err != nil || f.TypeID != proto.TypeHelloRequest {
			return
		}
		writeFrame(t, conn, codec, Frame{TypeID: proto.TypeHelloResponse, Payload: encodeHelloResponse("other-device")})
	}()

	host, port := dialHostPort(t, ln.Addr().String())
	conn := NewConnection(host, port, WithRequestTimeout(2*time.Second), WithExpectedName("kitchen-sensor"))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = conn.Connect(ctx, true)
	require.ErrorIs(t, err, ErrServerNameMismatch)
}

func TestConnectionKeepAliveCadence(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	pings := make(chan struct{}, 32)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		codec := NewPlainCodec()
		br := bufio.NewReader(conn)
		for {
			f, err := codec.ReadFrame(br)
			if err != nil {
				return
			}
			switch f.TypeID {
			case proto.TypeHelloRequest:
				writeFrame(t, conn, codec, Frame{TypeID: proto.TypeHelloResponse, Payload: encodeHelloResponse("kitchen-sensor")})
			case proto.TypeConnectRequest:
				writeFrame(t, conn, codec, Frame{TypeID: proto.TypeConnectResponse, Payload: encodeVarintField(1, 0)})
			case proto.TypePingRequest:
				pings <- struct{}{}
				writeFrame(t, conn, codec, Frame{TypeID: proto.TypePingResponse})
			}
		}
	}()

	host, port := dialHostPort(t, ln.Addr().String())
	conn := NewConnection(host, port, WithRequestTimeout(2*time.Second), WithKeepAlive(time.Second))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, conn.Connect(ctx, true))
	defer conn.Close()

	count := 0
	deadline := time.After(5 * time.Second)
	for count < 3 {
		select {
		case <-pings:
			count++
		case <-deadline:
			t.Fatalf("expected at least 3 ping requests within 5 seconds, got %d", count)
		}
	}
}
