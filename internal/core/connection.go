package core

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/esphome/esphomeapi-go/internal/proto"
)

// ConnectionState tracks where a Connection is in its lifecycle.
type ConnectionState int32

const (
	StateInitialized ConnectionState = iota
	StateSocketOpened
	StateHandshakeCompleted
	StateConnected
	StateClosed
)

func (s ConnectionState) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateSocketOpened:
		return "socket_opened"
	case StateHandshakeCompleted:
		return "handshake_completed"
	case StateConnected:
		return "connected"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// handshakeCompleteType is the type id ESPHome devices send as the first
// Noise-Ready-state frame, signalling the encrypted channel is usable.
const handshakeCompleteType = 0

// Connection is a single TCP connection to one ESPHome device, speaking
// either the Plain or the Noise_NN_psk0 wire protocol.
type Connection struct {
	host string
	port int
	cfg  *Config

	logger  *zap.SugaredLogger
	traceID string

	codec Codec
	conn  net.Conn
	br    *bufio.Reader

	writeMu sync.Mutex
	state   atomic.Int32

	dispatch *dispatcher
	cancel   context.CancelFunc
}

// NewConnection builds a Connection that talks to host:port once Connect
// is called. Pass WithPSK to use the encrypted Noise transport.
func NewConnection(host string, port int, opts ...Option) *Connection {
	cfg := applyConfig(opts)
	traceID := uuid.NewString()
	return &Connection{
		host:    host,
		port:    port,
		cfg:     cfg,
		logger:  cfg.logger.With("trace_id", traceID, "host", host),
		traceID: traceID,
	}
}

// State returns the connection's current lifecycle state.
func (c *Connection) State() ConnectionState {
	return ConnectionState(c.state.Load())
}

func (c *Connection) setState(s ConnectionState) {
	c.state.Store(int32(s))
}

// Connect dials the device, completes the transport handshake, sends
// Hello and (if login is true) Connect, then starts the keep-alive
// heartbeat. It blocks until the connection is ready for use or an error
// occurs.
func (c *Connection) Connect(ctx context.Context, login bool) error {
	conn, err := net.Dial("tcp", fmt.Sprintf("%s:%d", c.host, c.port))
	if err != nil {
		return fmt.Errorf("core: dial: %w", err)
	}
	c.conn = conn
	c.br = bufio.NewReader(conn)
	c.setState(StateSocketOpened)
	c.logger.Infow("socket opened")

	if c.cfg.psk != "" {
		codec, err := NewNoiseCodec(c.cfg.psk, c.cfg.expectedName)
		if err != nil {
			conn.Close()
			return err
		}
		c.codec = codec
	} else {
		c.codec = NewPlainCodec()
	}

	if err := c.performHandshake(); err != nil {
		conn.Close()
		return err
	}

	// ctx bounds only the connect sequence; the keep-alive loop runs until
	// Close cancels runCtx.
	runCtx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.dispatch = newDispatcher(c.logger)
	go c.dispatch.run()
	go c.readLoop()

	c.addBuiltinHandlers()

	if err := c.initHello(ctx); err != nil {
		c.Close()
		return err
	}

	if login {
		if err := c.initConnect(ctx); err != nil {
			c.Close()
			return err
		}
	}

	c.setState(StateConnected)
	if c.cfg.keepAliveInterval > 0 {
		go c.keepAliveLoop(runCtx)
	}
	c.logger.Infow("connected")
	return nil
}

// performHandshake writes any transport-level handshake bytes the codec
// requires and, for Noise, waits for the device's first Ready-state
// frame, which is always its own "Handshake completed" notice.
func (c *Connection) performHandshake() error {
	frame, err := c.codec.HandshakeFrame()
	if err != nil {
		return err
	}
	if frame == nil {
		c.setState(StateHandshakeCompleted)
		return nil
	}

	if _, err := c.conn.Write(frame); err != nil {
		return fmt.Errorf("core: write handshake frame: %w", err)
	}

	f, err := c.codec.ReadFrame(c.br)
	if err != nil {
		return err
	}
	if f.TypeID != handshakeCompleteType {
		return fmt.Errorf("%w: unexpected frame %d during handshake", ErrInvalidFrame, f.TypeID)
	}
	c.setState(StateHandshakeCompleted)
	c.logger.Infow("noise handshake completed")
	return nil
}

func (c *Connection) readLoop() {
	defer close(c.dispatch.incoming)
	defer func() {
		if c.State() != StateClosed {
			go c.Close()
		}
	}()
	for {
		f, err := c.codec.ReadFrame(c.br)
		if err != nil {
			c.logger.Infow("read loop ending", "error", err)
			return
		}
		select {
		case c.dispatch.incoming <- f:
		case <-c.dispatch.closed:
			return
		}
	}
}

func (c *Connection) addBuiltinHandlers() {
	c.dispatch.addHandler(proto.TypeDisconnectRequest, func(Frame) {
		// Best-effort reply before teardown: the peer requested the
		// close, so a failed write here is not actionable.
		_ = c.writeFrame(Frame{TypeID: proto.TypeDisconnectResponse})
		go c.Close()
	}, false)

	c.dispatch.addHandler(proto.TypePingRequest, func(Frame) {
		c.writeFrame(Frame{TypeID: proto.TypePingResponse})
	}, false)

	c.dispatch.addHandler(proto.TypeGetTimeRequest, func(Frame) {
		resp := &proto.GetTimeResponse{EpochSeconds: uint32(time.Now().Unix())}
		c.writeFrame(Frame{TypeID: resp.TypeID(), Payload: resp.Encode()})
	}, false)
}

func (c *Connection) initHello(ctx context.Context) error {
	req := &proto.HelloRequest{ClientInfo: c.cfg.clientInfo, APIVersionMajor: 1, APIVersionMinor: 10}
	f, err := c.SendMessageAwaitResponse(ctx, req, proto.TypeHelloResponse)
	if err != nil {
		return err
	}
	resp := proto.DecodeHelloResponse(f.Payload)
	if c.cfg.expectedName != "" && resp.Name != "" && resp.Name != c.cfg.expectedName {
		c.logger.Warnw("device name does not match expected name", "expected", c.cfg.expectedName, "got", resp.Name)
		return ErrServerNameMismatch
	}
	return nil
}

func (c *Connection) initConnect(ctx context.Context) error {
	req := &proto.ConnectRequest{Password: c.cfg.password}
	f, err := c.SendMessageAwaitResponse(ctx, req, proto.TypeConnectResponse)
	if err != nil {
		return err
	}
	resp := proto.DecodeConnectResponse(f.Payload)
	if resp.InvalidPassword {
		return ErrAuthRejected
	}
	return nil
}

func (c *Connection) keepAliveLoop(ctx context.Context) {
	ticker := time.NewTicker(c.cfg.keepAliveInterval)
	defer ticker.Stop()

	c.dispatch.addHandler(proto.TypePingResponse, func(Frame) {
		c.logger.Debugw("received ping response")
	}, false)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.writeFrame(Frame{TypeID: proto.TypePingRequest}); err != nil {
				c.logger.Warnw("keep-alive ping failed", "error", err)
			}
		}
	}
}

// writeFrame serializes writes across goroutines: built-in handlers,
// the keep-alive loop and direct callers of SendMessage* may all write
// concurrently.
func (c *Connection) writeFrame(f Frame) error {
	if c.State() == StateClosed {
		return ErrConnectionClosed
	}
	buf, err := c.codec.WriteFrame(f)
	if err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_, err = c.conn.Write(buf)
	return err
}

// SendMessage writes msg without waiting for any reply.
func (c *Connection) SendMessage(msg proto.Encodable) error {
	if c.State() >= StateClosed {
		return ErrConnectionClosed
	}
	return c.writeFrame(Frame{TypeID: msg.TypeID(), Payload: msg.Encode()})
}

// SendMessageAwaitResponse writes msg then waits for exactly one frame of
// responseType, honoring ctx and the connection's configured request
// timeout.
func (c *Connection) SendMessageAwaitResponse(ctx context.Context, msg proto.Encodable, responseType uint32) (Frame, error) {
	a := c.dispatch.register(map[uint32]bool{responseType: true}, false, 0)

	if err := c.writeFrame(Frame{TypeID: msg.TypeID(), Payload: msg.Encode()}); err != nil {
		c.dispatch.unregister(a)
		return Frame{}, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.cfg.requestTimeout)
	defer cancel()

	select {
	case f, ok := <-a.out:
		if !ok {
			return Frame{}, ErrConnectionClosed
		}
		return f, nil
	case err := <-a.done:
		if err != nil {
			return Frame{}, err
		}
		return Frame{}, ErrConnectionClosed
	case <-timeoutCtx.Done():
		c.dispatch.unregister(a)
		return Frame{}, ErrTimeout
	}
}

// SendMessageAwaitUntil writes msg then collects every frame whose type is
// in responseTypes until a frame of untilType arrives, which is consumed
// but not included in the result. Used for streamed enumerations such as
// ListEntities.
func (c *Connection) SendMessageAwaitUntil(ctx context.Context, msg proto.Encodable, responseTypes []uint32, untilType uint32, timeout time.Duration) ([]Frame, error) {
	types := make(map[uint32]bool, len(responseTypes))
	for _, t := range responseTypes {
		types[t] = true
	}
	a := c.dispatch.register(types, true, untilType)

	if err := c.writeFrame(Frame{TypeID: msg.TypeID(), Payload: msg.Encode()}); err != nil {
		c.dispatch.unregister(a)
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var results []Frame
	for {
		select {
		case f, ok := <-a.out:
			if !ok {
				return results, nil
			}
			if f.TypeID != untilType {
				results = append(results, f)
			}
		case <-a.done:
			return results, nil
		case <-timeoutCtx.Done():
			c.dispatch.unregister(a)
			return results, ErrTimeout
		}
	}
}

// AddMessageHandler registers a callback invoked for every frame of
// typeID. Used for long-lived subscriptions (state updates) rather than
// one-shot correlated requests.
func (c *Connection) AddMessageHandler(typeID uint32, fn func(Frame), removeAfterCall bool) {
	c.dispatch.addHandler(typeID, fn, removeAfterCall)
}

// Disconnect asks the device to tear down the connection, then closes the
// socket regardless of whether the device acknowledges in time.
func (c *Connection) Disconnect(ctx context.Context) error {
	if c.State() == StateClosed {
		return nil
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, _ = c.SendMessageAwaitResponse(timeoutCtx, &proto.DisconnectRequest{}, proto.TypeDisconnectResponse)
	return c.Close()
}

// Close tears down the socket and releases background goroutines. Safe to
// call more than once.
func (c *Connection) Close() error {
	if ConnectionState(c.state.Swap(int32(StateClosed))) == StateClosed {
		return nil
	}
	if c.cancel != nil {
		c.cancel()
	}
	if c.dispatch != nil {
		c.dispatch.stop()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
