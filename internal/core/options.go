package core

import (
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultClientInfo identifies this library to the device during Hello.
	DefaultClientInfo = "esphomeapi-go"
	// DefaultKeepAliveInterval is how often a PingRequest is sent once connected.
	DefaultKeepAliveInterval = 20 * time.Second
	// DefaultRequestTimeout bounds how long SendMessageAwaitResponse waits.
	DefaultRequestTimeout = 10 * time.Second
)

// Config holds connection construction settings. Zero value plus
// defaultConfig() yields a connection to an unauthenticated, unencrypted
// device. Callers customize it through functional Options.
type Config struct {
	password          string
	expectedName      string
	psk               string
	clientInfo        string
	keepAliveInterval time.Duration
	requestTimeout    time.Duration
	logger            *zap.SugaredLogger
}

// Option configures a Connection at construction time.
type Option func(*Config)

func defaultConfig() *Config {
	return &Config{
		clientInfo:        DefaultClientInfo,
		keepAliveInterval: DefaultKeepAliveInterval,
		requestTimeout:    DefaultRequestTimeout,
		logger:            zap.NewNop().Sugar(),
	}
}

func applyConfig(opts []Option) *Config {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// WithPassword sets the legacy plaintext password sent during the optional
// login (ConnectRequest) step.
func WithPassword(password string) Option {
	return func(c *Config) { c.password = password }
}

// WithExpectedName causes Connect to verify the device's self-reported name
// at both the Noise-handshake layer and the Hello-response layer.
func WithExpectedName(name string) Option {
	return func(c *Config) { c.expectedName = name }
}

// WithPSK switches the connection to the Noise_NN_psk0 encrypted transport
// using the device's base64 encryption key. Without this option the
// connection uses the unencrypted Plain codec.
func WithPSK(psk string) Option {
	return func(c *Config) { c.psk = psk }
}

// WithClientInfo overrides the string the client identifies itself with
// during Hello.
func WithClientInfo(info string) Option {
	return func(c *Config) {
		if info != "" {
			c.clientInfo = info
		}
	}
}

// WithKeepAlive sets the PingRequest cadence. Zero disables keep-alive.
func WithKeepAlive(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.keepAliveInterval = d
		}
	}
}

// WithRequestTimeout sets how long SendMessageAwaitResponse waits before
// returning ErrTimeout. SendMessageAwaitUntil takes its own timeout
// argument instead.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.requestTimeout = d
		}
	}
}

// WithLogger sets the structured logger used for connection diagnostics.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
