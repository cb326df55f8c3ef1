package bridge

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/esphome/esphomeapi-go/internal/client"
)

// deviceHandler serves HTTP requests against a single connected device.
type deviceHandler struct {
	device *client.Client
	logger *zap.SugaredLogger
}

func newDeviceHandler(device *client.Client, logger *zap.SugaredLogger) *deviceHandler {
	return &deviceHandler{device: device, logger: logger}
}

func keyParam(c *fiber.Ctx) (uint32, error) {
	key, err := strconv.ParseUint(c.Params("key"), 10, 32)
	if err != nil {
		return 0, errors.New("invalid entity key")
	}
	return uint32(key), nil
}

func fail(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": err.Error()})
}

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

// Health reports the bridge is serving.
func (h *deviceHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// DeviceInfo returns the device's static identity and build info.
func (h *deviceHandler) DeviceInfo(c *fiber.Ctx) error {
	info, err := h.device.DeviceInfo(c.Context())
	if err != nil {
		return fail(c, fiber.StatusBadGateway, err)
	}
	return ok(c, info)
}

// ListEntities enumerates every entity the device exposes.
func (h *deviceHandler) ListEntities(c *fiber.Ctx) error {
	entities, err := h.device.ListEntities(c.Context())
	if err != nil {
		return fail(c, fiber.StatusBadGateway, err)
	}
	return ok(c, entities)
}

// ListServices enumerates the device's user-defined services.
func (h *deviceHandler) ListServices(c *fiber.Ctx) error {
	services, err := h.device.ListEntitiesServices(c.Context())
	if err != nil {
		return fail(c, fiber.StatusBadGateway, err)
	}
	return ok(c, services)
}

// Subscribe starts the device's push-state stream; cached states become
// visible to State/AllStates as updates arrive.
func (h *deviceHandler) Subscribe(c *fiber.Ctx) error {
	if err := h.device.SubscribeStates(c.Context(), nil); err != nil {
		return fail(c, fiber.StatusBadGateway, err)
	}
	return ok(c, fiber.Map{"subscribed": true})
}

// AllStates returns every cached entity state.
func (h *deviceHandler) AllStates(c *fiber.Ctx) error {
	return ok(c, h.device.States())
}

// State returns the most recently cached state for one entity key.
func (h *deviceHandler) State(c *fiber.Ctx) error {
	key, err := keyParam(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	state, err := h.device.State(key)
	if err != nil {
		return fail(c, fiber.StatusNotFound, err)
	}
	return ok(c, state)
}

type switchCommandBody struct {
	State bool `json:"state"`
}

// SwitchCommand sets a switch entity's state.
func (h *deviceHandler) SwitchCommand(c *fiber.Ctx) error {
	key, err := keyParam(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	var body switchCommandBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	if err := h.device.SwitchCommand(key, body.State); err != nil {
		return fail(c, fiber.StatusBadGateway, err)
	}
	return ok(c, fiber.Map{"sent": true})
}

// ButtonCommand presses a button entity.
func (h *deviceHandler) ButtonCommand(c *fiber.Ctx) error {
	key, err := keyParam(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	if err := h.device.ButtonCommand(key); err != nil {
		return fail(c, fiber.StatusBadGateway, err)
	}
	return ok(c, fiber.Map{"sent": true})
}

type lightCommandBody struct {
	HasState      bool       `json:"hasState"`
	State         bool       `json:"state"`
	HasBrightness bool       `json:"hasBrightness"`
	Brightness    float32    `json:"brightness"`
	HasRGB        bool       `json:"hasRgb"`
	RGB           [3]float32 `json:"rgb"`
	HasEffect     bool       `json:"hasEffect"`
	Effect        string     `json:"effect"`
}

// LightCommand updates a light entity.
func (h *deviceHandler) LightCommand(c *fiber.Ctx) error {
	key, err := keyParam(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	var body lightCommandBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	var opts []client.LightCommandOption
	if body.HasState {
		opts = append(opts, client.WithLightState(body.State))
	}
	if body.HasBrightness {
		opts = append(opts, client.WithLightBrightness(body.Brightness))
	}
	if body.HasRGB {
		opts = append(opts, client.WithLightRGB(body.RGB[0], body.RGB[1], body.RGB[2]))
	}
	if body.HasEffect {
		opts = append(opts, client.WithLightEffect(body.Effect))
	}
	if err := h.device.LightCommand(key, opts...); err != nil {
		return fail(c, fiber.StatusBadGateway, err)
	}
	return ok(c, fiber.Map{"sent": true})
}

type coverCommandBody struct {
	HasPosition bool    `json:"hasPosition"`
	Position    float32 `json:"position"`
	HasTilt     bool    `json:"hasTilt"`
	Tilt        float32 `json:"tilt"`
	Stop        bool    `json:"stop"`
}

// CoverCommand moves, tilts or stops a cover entity.
func (h *deviceHandler) CoverCommand(c *fiber.Ctx) error {
	key, err := keyParam(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	var body coverCommandBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	var opts []client.CoverCommandOption
	if body.HasPosition {
		opts = append(opts, client.WithCoverPosition(body.Position))
	}
	if body.HasTilt {
		opts = append(opts, client.WithCoverTilt(body.Tilt))
	}
	if body.Stop {
		opts = append(opts, client.WithCoverStop())
	}
	if err := h.device.CoverCommand(key, opts...); err != nil {
		return fail(c, fiber.StatusBadGateway, err)
	}
	return ok(c, fiber.Map{"sent": true})
}

type fanCommandBody struct {
	HasState       bool   `json:"hasState"`
	State          bool   `json:"state"`
	HasSpeedLevel  bool   `json:"hasSpeedLevel"`
	SpeedLevel     int32  `json:"speedLevel"`
	HasOscillating bool   `json:"hasOscillating"`
	Oscillating    bool   `json:"oscillating"`
	HasPresetMode  bool   `json:"hasPresetMode"`
	PresetMode     string `json:"presetMode"`
}

// FanCommand updates a fan entity.
func (h *deviceHandler) FanCommand(c *fiber.Ctx) error {
	key, err := keyParam(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	var body fanCommandBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	var opts []client.FanCommandOption
	if body.HasState {
		opts = append(opts, client.WithFanState(body.State))
	}
	if body.HasSpeedLevel {
		opts = append(opts, client.WithFanSpeedLevel(body.SpeedLevel))
	}
	if body.HasOscillating {
		opts = append(opts, client.WithFanOscillating(body.Oscillating))
	}
	if body.HasPresetMode {
		opts = append(opts, client.WithFanPresetMode(body.PresetMode))
	}
	if err := h.device.FanCommand(key, opts...); err != nil {
		return fail(c, fiber.StatusBadGateway, err)
	}
	return ok(c, fiber.Map{"sent": true})
}

type climateCommandBody struct {
	HasMode              bool    `json:"hasMode"`
	Mode                 int32   `json:"mode"`
	HasTargetTemperature bool    `json:"hasTargetTemperature"`
	TargetTemperature    float32 `json:"targetTemperature"`
}

// ClimateCommand updates a climate entity.
func (h *deviceHandler) ClimateCommand(c *fiber.Ctx) error {
	key, err := keyParam(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	var body climateCommandBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	var opts []client.ClimateCommandOption
	if body.HasMode {
		opts = append(opts, client.WithClimateMode(body.Mode))
	}
	if body.HasTargetTemperature {
		opts = append(opts, client.WithClimateTargetTemperature(body.TargetTemperature))
	}
	if err := h.device.ClimateCommand(key, opts...); err != nil {
		return fail(c, fiber.StatusBadGateway, err)
	}
	return ok(c, fiber.Map{"sent": true})
}

type numberCommandBody struct {
	State float32 `json:"state"`
}

// NumberCommand sets a number entity's value.
func (h *deviceHandler) NumberCommand(c *fiber.Ctx) error {
	key, err := keyParam(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	var body numberCommandBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	if err := h.device.NumberCommand(key, body.State); err != nil {
		return fail(c, fiber.StatusBadGateway, err)
	}
	return ok(c, fiber.Map{"sent": true})
}

type selectCommandBody struct {
	State string `json:"state"`
}

// SelectCommand sets a select entity's chosen option.
func (h *deviceHandler) SelectCommand(c *fiber.Ctx) error {
	key, err := keyParam(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	var body selectCommandBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	if err := h.device.SelectCommand(key, body.State); err != nil {
		return fail(c, fiber.StatusBadGateway, err)
	}
	return ok(c, fiber.Map{"sent": true})
}

type lockCommandBody struct {
	Command int32  `json:"command"`
	Code    string `json:"code"`
}

// LockCommand sends a lock/unlock/open command.
func (h *deviceHandler) LockCommand(c *fiber.Ctx) error {
	key, err := keyParam(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	var body lockCommandBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	if err := h.device.LockCommand(key, body.Command, body.Code); err != nil {
		return fail(c, fiber.StatusBadGateway, err)
	}
	return ok(c, fiber.Map{"sent": true})
}
