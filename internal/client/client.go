// Package client provides a typed, device-facing API on top of the
// connection-level primitives in internal/core: entity enumeration,
// state subscription and per-domain command helpers.
package client

import (
	"context"
	"math"
	"time"

	"github.com/esphome/esphomeapi-go/internal/core"
	"github.com/esphome/esphomeapi-go/internal/proto"
)

// DeviceInfo mirrors proto.DeviceInfoResponse so callers never need to
// import internal/proto directly for the common case.
type DeviceInfo = proto.DeviceInfoResponse

// ListEntitiesTimeout bounds how long ListEntities waits for the full
// enumeration stream to complete.
const ListEntitiesTimeout = 30 * time.Second

// Client is a connected ESPHome device, speaking the native API over a
// single TCP connection.
type Client struct {
	conn  *core.Connection
	cache *stateCache
}

// New builds a Client for host:port. Options configure authentication,
// encryption and timeouts; see core.WithPassword, core.WithPSK,
// core.WithExpectedName, core.WithKeepAlive, core.WithRequestTimeout and
// core.WithLogger.
func New(host string, port int, opts ...core.Option) *Client {
	return &Client{
		conn:  core.NewConnection(host, port, opts...),
		cache: newStateCache(),
	}
}

// Connect dials the device and completes Hello (and Connect, if login is
// true) before returning.
func (c *Client) Connect(ctx context.Context, login bool) error {
	return c.conn.Connect(ctx, login)
}

// Disconnect asks the device to close the connection, then tears down the
// socket.
func (c *Client) Disconnect(ctx context.Context) error {
	return c.conn.Disconnect(ctx)
}

// Close tears down the connection without notifying the device. Prefer
// Disconnect for a clean shutdown.
func (c *Client) Close() error {
	return c.conn.Close()
}

// DeviceInfo fetches the device's static identity and build information.
func (c *Client) DeviceInfo(ctx context.Context) (*DeviceInfo, error) {
	f, err := c.conn.SendMessageAwaitResponse(ctx, &proto.DeviceInfoRequest{}, proto.TypeDeviceInfoResponse)
	if err != nil {
		return nil, err
	}
	return proto.DecodeDeviceInfoResponse(f.Payload), nil
}

// listEntitiesResponseTypes is every ListEntitiesXResponse type id plus the
// services response, since both ride the same enumeration stream.
var listEntitiesResponseTypes = func() []uint32 {
	types := make([]uint32, 0, len(infoDomainByType)+1)
	for t := range infoDomainByType {
		types = append(types, t)
	}
	return append(types, core.ListEntitiesServices)
}()

// ListEntities enumerates every entity the device exposes. It blocks until
// the device signals the end of the stream or ListEntitiesTimeout elapses.
func (c *Client) ListEntities(ctx context.Context) ([]EntityInfo, error) {
	frames, err := c.conn.SendMessageAwaitUntil(ctx, &proto.ListEntitiesRequest{},
		listEntitiesResponseTypes, core.ListEntitiesTerminator, ListEntitiesTimeout)
	if err != nil {
		return nil, err
	}
	var out []EntityInfo
	for _, f := range frames {
		if f.TypeID == core.ListEntitiesServices {
			continue
		}
		info, err := newEntityInfo(f.TypeID, f.Payload)
		if err != nil {
			continue
		}
		out = append(out, info)
	}
	return out, nil
}

// ListEntitiesServices enumerates the device's user-defined services
// (api.service entries in its YAML). It shares the same enumeration
// stream as ListEntities, so both should not be called concurrently.
func (c *Client) ListEntitiesServices(ctx context.Context) ([]Service, error) {
	frames, err := c.conn.SendMessageAwaitUntil(ctx, &proto.ListEntitiesRequest{},
		listEntitiesResponseTypes, core.ListEntitiesTerminator, ListEntitiesTimeout)
	if err != nil {
		return nil, err
	}
	var out []Service
	for _, f := range frames {
		if f.TypeID != core.ListEntitiesServices {
			continue
		}
		out = append(out, newService(core.DecodeService(f.Payload)))
	}
	return out, nil
}

// SubscribeStates starts the device's push-state stream. Every update is
// cached and, if onUpdate is non-nil, also delivered to it. onUpdate is
// called from the connection's dispatcher goroutine and must not block.
func (c *Client) SubscribeStates(ctx context.Context, onUpdate func(EntityState)) error {
	for typeID := range stateDomainByType {
		c.conn.AddMessageHandler(typeID, func(f core.Frame) {
			s, err := newEntityState(f.TypeID, f.Payload)
			if err != nil {
				return
			}
			c.cache.set(s)
			if onUpdate != nil {
				onUpdate(s)
			}
		}, false)
	}
	return c.conn.SendMessage(&proto.SubscribeStatesRequest{})
}

// State returns the most recently received state for key, or
// ErrEntityNotFound if no update has arrived for it yet.
func (c *Client) State(key uint32) (EntityState, error) {
	return c.cache.get(key)
}

// States returns every cached state.
func (c *Client) States() []EntityState {
	return c.cache.all()
}

// msFromSeconds rounds a duration given in seconds to milliseconds the way
// the facade's light helpers expect callers to pass transition/flash
// lengths (ESPHome's wire format uses milliseconds, callers think in
// seconds).
func msFromSeconds(seconds float32) uint32 {
	return uint32(math.Round(float64(seconds) * 1000))
}

// SwitchCommand sets a switch entity's state.
func (c *Client) SwitchCommand(key uint32, state bool) error {
	return c.conn.SendMessage(&proto.SwitchCommandRequest{Key: key, State: state})
}

// ButtonCommand presses a button entity.
func (c *Client) ButtonCommand(key uint32) error {
	return c.conn.SendMessage(&proto.ButtonCommandRequest{Key: key})
}

// LockCommand sends a lock/unlock/open command, optionally with a code.
func (c *Client) LockCommand(key uint32, command int32, code string) error {
	req := &proto.LockCommandRequest{Key: key, Command: command}
	if code != "" {
		req.HasCode, req.Code = true, code
	}
	return c.conn.SendMessage(req)
}

// ValveCommand moves a valve to a position, or stops it.
func (c *Client) ValveCommand(key uint32, position *float32, stop bool) error {
	req := &proto.ValveCommandRequest{Key: key, Stop: stop}
	if position != nil {
		req.HasPosition, req.Position = true, *position
	}
	return c.conn.SendMessage(req)
}

// DateCommand sets a date entity's value.
func (c *Client) DateCommand(key uint32, year, month, day uint32) error {
	return c.conn.SendMessage(&proto.DateCommandRequest{Key: key, Year: year, Month: month, Day: day})
}

// DateTimeCommand sets a datetime entity's value as a Unix epoch second.
func (c *Client) DateTimeCommand(key uint32, epochSeconds uint32) error {
	return c.conn.SendMessage(&proto.DateTimeCommandRequest{Key: key, EpochSeconds: epochSeconds})
}

// TimeCommand sets a time entity's value.
func (c *Client) TimeCommand(key uint32, hour, minute, second uint32) error {
	return c.conn.SendMessage(&proto.TimeCommandRequest{Key: key, Hour: hour, Minute: minute, Second: second})
}

// TextCommand sets a text entity's value.
func (c *Client) TextCommand(key uint32, state string) error {
	return c.conn.SendMessage(&proto.TextCommandRequest{Key: key, State: state})
}

// NumberCommand sets a number entity's value.
func (c *Client) NumberCommand(key uint32, state float32) error {
	return c.conn.SendMessage(&proto.NumberCommandRequest{Key: key, State: state})
}

// SelectCommand sets a select entity's chosen option.
func (c *Client) SelectCommand(key uint32, state string) error {
	return c.conn.SendMessage(&proto.SelectCommandRequest{Key: key, State: state})
}

// CoverCommandOption configures one field of a CoverCommand call.
type CoverCommandOption func(*proto.CoverCommandRequest)

// WithCoverPosition sets the target position (0.0 closed to 1.0 open).
func WithCoverPosition(position float32) CoverCommandOption {
	return func(r *proto.CoverCommandRequest) { r.HasPosition, r.Position = true, position }
}

// WithCoverTilt sets the target tilt.
func WithCoverTilt(tilt float32) CoverCommandOption {
	return func(r *proto.CoverCommandRequest) { r.HasTilt, r.Tilt = true, tilt }
}

// WithCoverStop requests the cover stop its current movement.
func WithCoverStop() CoverCommandOption {
	return func(r *proto.CoverCommandRequest) { r.Stop = true }
}

// CoverCommand moves, tilts or stops a cover entity.
func (c *Client) CoverCommand(key uint32, opts ...CoverCommandOption) error {
	req := &proto.CoverCommandRequest{Key: key}
	for _, o := range opts {
		o(req)
	}
	return c.conn.SendMessage(req)
}

// FanCommandOption configures one field of a FanCommand call.
type FanCommandOption func(*proto.FanCommandRequest)

// WithFanState turns the fan on or off.
func WithFanState(on bool) FanCommandOption {
	return func(r *proto.FanCommandRequest) { r.HasState, r.State = true, on }
}

// WithFanSpeedLevel sets a discrete fan speed level.
func WithFanSpeedLevel(level int32) FanCommandOption {
	return func(r *proto.FanCommandRequest) { r.HasSpeedLevel, r.SpeedLevel = true, level }
}

// WithFanOscillating toggles oscillation.
func WithFanOscillating(on bool) FanCommandOption {
	return func(r *proto.FanCommandRequest) { r.HasOscillating, r.Oscillating = true, on }
}

// WithFanDirection sets the fan's rotation direction.
func WithFanDirection(direction int32) FanCommandOption {
	return func(r *proto.FanCommandRequest) { r.HasDirection, r.Direction = true, direction }
}

// WithFanPresetMode selects a named preset.
func WithFanPresetMode(mode string) FanCommandOption {
	return func(r *proto.FanCommandRequest) { r.HasPresetMode, r.PresetMode = true, mode }
}

// FanCommand updates a fan entity. Pass one or more With* options for the
// fields to change; unset fields are left untouched on the device.
func (c *Client) FanCommand(key uint32, opts ...FanCommandOption) error {
	req := &proto.FanCommandRequest{Key: key}
	for _, o := range opts {
		o(req)
	}
	return c.conn.SendMessage(req)
}

// LightCommandOption configures one field of a LightCommand call.
type LightCommandOption func(*proto.LightCommandRequest)

// WithLightState turns the light on or off.
func WithLightState(on bool) LightCommandOption {
	return func(r *proto.LightCommandRequest) { r.HasState, r.State = true, on }
}

// WithLightBrightness sets brightness in the 0.0-1.0 range.
func WithLightBrightness(brightness float32) LightCommandOption {
	return func(r *proto.LightCommandRequest) { r.HasBrightness, r.Brightness = true, brightness }
}

// WithLightRGB sets the RGB color channels, each in the 0.0-1.0 range.
func WithLightRGB(red, green, blue float32) LightCommandOption {
	return func(r *proto.LightCommandRequest) {
		r.HasRGB, r.Red, r.Green, r.Blue = true, red, green, blue
	}
}

// WithLightColorTemperature sets the color temperature in mireds.
func WithLightColorTemperature(mireds float32) LightCommandOption {
	return func(r *proto.LightCommandRequest) { r.HasColorTemperature, r.ColorTemperature = true, mireds }
}

// WithLightTransitionSeconds sets how long the light takes to reach its
// new state.
func WithLightTransitionSeconds(seconds float32) LightCommandOption {
	return func(r *proto.LightCommandRequest) {
		r.HasTransitionLength, r.TransitionLengthMs = true, msFromSeconds(seconds)
	}
}

// WithLightFlashSeconds makes the light flash for the given duration
// instead of holding its new state.
func WithLightFlashSeconds(seconds float32) LightCommandOption {
	return func(r *proto.LightCommandRequest) { r.HasFlash, r.FlashLengthMs = true, msFromSeconds(seconds) }
}

// WithLightEffect selects a named light effect.
func WithLightEffect(effect string) LightCommandOption {
	return func(r *proto.LightCommandRequest) { r.HasEffect, r.Effect = true, effect }
}

// LightCommand updates a light entity. Pass one or more With* options for
// the fields to change.
func (c *Client) LightCommand(key uint32, opts ...LightCommandOption) error {
	req := &proto.LightCommandRequest{Key: key}
	for _, o := range opts {
		o(req)
	}
	return c.conn.SendMessage(req)
}

// ClimateCommandOption configures one field of a ClimateCommand call.
type ClimateCommandOption func(*proto.ClimateCommandRequest)

// WithClimateMode sets the HVAC mode.
func WithClimateMode(mode int32) ClimateCommandOption {
	return func(r *proto.ClimateCommandRequest) { r.HasMode, r.Mode = true, mode }
}

// WithClimateTargetTemperature sets a single target temperature.
func WithClimateTargetTemperature(temp float32) ClimateCommandOption {
	return func(r *proto.ClimateCommandRequest) { r.HasTargetTemperature, r.TargetTemperature = true, temp }
}

// WithClimateTargetTemperatureRange sets separate low/high targets, used by
// climate entities in two-point mode.
func WithClimateTargetTemperatureRange(low, high float32) ClimateCommandOption {
	return func(r *proto.ClimateCommandRequest) {
		r.HasTargetTemperatureLow, r.TargetTemperatureLow = true, low
		r.HasTargetTemperatureHigh, r.TargetTemperatureHigh = true, high
	}
}

// WithClimateFanMode sets the fan mode.
func WithClimateFanMode(mode int32) ClimateCommandOption {
	return func(r *proto.ClimateCommandRequest) { r.HasFanMode, r.FanMode = true, mode }
}

// WithClimateSwingMode sets the swing mode.
func WithClimateSwingMode(mode int32) ClimateCommandOption {
	return func(r *proto.ClimateCommandRequest) { r.HasSwingMode, r.SwingMode = true, mode }
}

// WithClimatePreset selects a named preset.
func WithClimatePreset(preset int32) ClimateCommandOption {
	return func(r *proto.ClimateCommandRequest) { r.HasPreset, r.Preset = true, preset }
}

// WithClimateTargetHumidity sets target humidity.
func WithClimateTargetHumidity(humidity float32) ClimateCommandOption {
	return func(r *proto.ClimateCommandRequest) { r.HasTargetHumidity, r.TargetHumidity = true, humidity }
}

// ClimateCommand updates a climate entity. Pass one or more With* options
// for the fields to change.
func (c *Client) ClimateCommand(key uint32, opts ...ClimateCommandOption) error {
	req := &proto.ClimateCommandRequest{Key: key}
	for _, o := range opts {
		o(req)
	}
	return c.conn.SendMessage(req)
}

// MediaPlayerCommandOption configures one field of a MediaPlayerCommand
// call.
type MediaPlayerCommandOption func(*proto.MediaPlayerCommandRequest)

// WithMediaPlayerCommand sets a transport command (play/pause/mute/etc).
func WithMediaPlayerCommand(command int32) MediaPlayerCommandOption {
	return func(r *proto.MediaPlayerCommandRequest) { r.HasCommand, r.Command = true, command }
}

// WithMediaPlayerVolume sets volume in the 0.0-1.0 range.
func WithMediaPlayerVolume(volume float32) MediaPlayerCommandOption {
	return func(r *proto.MediaPlayerCommandRequest) { r.HasVolume, r.Volume = true, volume }
}

// WithMediaPlayerMediaURL starts playback of a URL.
func WithMediaPlayerMediaURL(url string) MediaPlayerCommandOption {
	return func(r *proto.MediaPlayerCommandRequest) { r.HasMediaURL, r.MediaURL = true, url }
}

// MediaPlayerCommand updates a media player entity. Pass one or more
// With* options for the fields to change.
func (c *Client) MediaPlayerCommand(key uint32, opts ...MediaPlayerCommandOption) error {
	req := &proto.MediaPlayerCommandRequest{Key: key}
	for _, o := range opts {
		o(req)
	}
	return c.conn.SendMessage(req)
}
