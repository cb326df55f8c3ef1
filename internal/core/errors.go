package core

import "errors"

// Sentinel errors returned by the frame codecs and connection runtime.
var (
	ErrInvalidFrame       = errors.New("core: invalid frame")
	ErrCryptoFailure      = errors.New("core: noise crypto failure")
	ErrServerNameMismatch = errors.New("core: server name does not match expected name")
	ErrAuthRejected       = errors.New("core: password rejected by device")
	ErrTimeout            = errors.New("core: timed out waiting for response")
	ErrConnectionClosed   = errors.New("core: connection closed")
	ErrUnknownMessageType = errors.New("core: unknown message type")
)
