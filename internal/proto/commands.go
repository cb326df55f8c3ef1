package proto

// XCommandRequest messages. Each optional field is paired with a has_X flag,
// matching ESPHome's own convention of only applying fields the caller
// explicitly set (avoids e.g. an unset brightness being read as "set to 0").

type SwitchCommandRequest struct {
	Key   uint32
	State bool
}

func (m *SwitchCommandRequest) TypeID() uint32 { return TypeSwitchCommandRequest }

func (m *SwitchCommandRequest) Encode() []byte {
	return newFieldWriter().Uint32(1, m.Key).Bool(2, m.State).Bytes_()
}

type ButtonCommandRequest struct {
	Key uint32
}

func (m *ButtonCommandRequest) TypeID() uint32 { return TypeButtonCommandRequest }

func (m *ButtonCommandRequest) Encode() []byte {
	return newFieldWriter().Uint32(1, m.Key).Bytes_()
}

type LockCommandRequest struct {
	Key     uint32
	Command int32
	HasCode bool
	Code    string
}

func (m *LockCommandRequest) TypeID() uint32 { return TypeLockCommandRequest }

func (m *LockCommandRequest) Encode() []byte {
	w := newFieldWriter().Uint32(1, m.Key).Int32(2, m.Command)
	if m.HasCode {
		w.String(3, m.Code)
	}
	return w.Bytes_()
}

type ValveCommandRequest struct {
	Key         uint32
	HasPosition bool
	Position    float32
	Stop        bool
}

func (m *ValveCommandRequest) TypeID() uint32 { return TypeValveCommandRequest }

func (m *ValveCommandRequest) Encode() []byte {
	w := newFieldWriter().Uint32(1, m.Key)
	if m.HasPosition {
		w.Bool(2, true).Float(3, m.Position)
	}
	if m.Stop {
		w.Bool(4, true)
	}
	return w.Bytes_()
}

type DateCommandRequest struct {
	Key              uint32
	Year, Month, Day uint32
}

func (m *DateCommandRequest) TypeID() uint32 { return TypeDateCommandRequest }

func (m *DateCommandRequest) Encode() []byte {
	return newFieldWriter().
		Uint32(1, m.Key).
		Uint32(2, m.Year).
		Uint32(3, m.Month).
		Uint32(4, m.Day).
		Bytes_()
}

type DateTimeCommandRequest struct {
	Key          uint32
	EpochSeconds uint32
}

func (m *DateTimeCommandRequest) TypeID() uint32 { return TypeDateTimeCommandRequest }

func (m *DateTimeCommandRequest) Encode() []byte {
	return newFieldWriter().Uint32(1, m.Key).Uint32(2, m.EpochSeconds).Bytes_()
}

type TimeCommandRequest struct {
	Key                  uint32
	Hour, Minute, Second uint32
}

func (m *TimeCommandRequest) TypeID() uint32 { return TypeTimeCommandRequest }

func (m *TimeCommandRequest) Encode() []byte {
	return newFieldWriter().
		Uint32(1, m.Key).
		Uint32(2, m.Hour).
		Uint32(3, m.Minute).
		Uint32(4, m.Second).
		Bytes_()
}

type TextCommandRequest struct {
	Key   uint32
	State string
}

func (m *TextCommandRequest) TypeID() uint32 { return TypeTextCommandRequest }

func (m *TextCommandRequest) Encode() []byte {
	return newFieldWriter().Uint32(1, m.Key).String(2, m.State).Bytes_()
}

type NumberCommandRequest struct {
	Key   uint32
	State float32
}

func (m *NumberCommandRequest) TypeID() uint32 { return TypeNumberCommandRequest }

func (m *NumberCommandRequest) Encode() []byte {
	return newFieldWriter().Uint32(1, m.Key).Float(2, m.State).Bytes_()
}

type SelectCommandRequest struct {
	Key   uint32
	State string
}

func (m *SelectCommandRequest) TypeID() uint32 { return TypeSelectCommandRequest }

func (m *SelectCommandRequest) Encode() []byte {
	return newFieldWriter().Uint32(1, m.Key).String(2, m.State).Bytes_()
}

type CoverCommandRequest struct {
	Key              uint32
	HasLegacyCommand bool
	LegacyCommand    int32
	HasPosition      bool
	Position         float32
	HasTilt          bool
	Tilt             float32
	Stop             bool
}

func (m *CoverCommandRequest) TypeID() uint32 { return TypeCoverCommandRequest }

func (m *CoverCommandRequest) Encode() []byte {
	w := newFieldWriter().Uint32(1, m.Key)
	if m.HasLegacyCommand {
		w.Bool(2, true).Int32(3, m.LegacyCommand)
	}
	if m.HasPosition {
		w.Bool(4, true).Float(5, m.Position)
	}
	if m.HasTilt {
		w.Bool(6, true).Float(7, m.Tilt)
	}
	if m.Stop {
		w.Bool(8, true)
	}
	return w.Bytes_()
}

type FanCommandRequest struct {
	Key            uint32
	HasState       bool
	State          bool
	HasSpeed       bool
	Speed          int32
	HasOscillating bool
	Oscillating    bool
	HasDirection   bool
	Direction      int32
	HasSpeedLevel  bool
	SpeedLevel     int32
	HasPresetMode  bool
	PresetMode     string
}

func (m *FanCommandRequest) TypeID() uint32 { return TypeFanCommandRequest }

func (m *FanCommandRequest) Encode() []byte {
	w := newFieldWriter().Uint32(1, m.Key)
	if m.HasState {
		w.Bool(2, true).Bool(3, m.State)
	}
	if m.HasSpeed {
		w.Bool(4, true).Int32(5, m.Speed)
	}
	if m.HasOscillating {
		w.Bool(6, true).Bool(7, m.Oscillating)
	}
	if m.HasDirection {
		w.Bool(8, true).Int32(9, m.Direction)
	}
	if m.HasSpeedLevel {
		w.Bool(10, true).Int32(11, m.SpeedLevel)
	}
	if m.HasPresetMode {
		w.Bool(12, true).String(13, m.PresetMode)
	}
	return w.Bytes_()
}

// LightCommandRequest mirrors ESPHome's light command message, whose
// transition/flash lengths are carried on the wire in whole milliseconds.
// The facade in internal/client is responsible for converting from the
// caller-facing seconds, rounding half up.
type LightCommandRequest struct {
	Key                  uint32
	HasState             bool
	State                bool
	HasBrightness        bool
	Brightness           float32
	HasColorMode         bool
	ColorMode            int32
	HasColorBrightness   bool
	ColorBrightness      float32
	HasRGB               bool
	Red, Green, Blue     float32
	HasWhite             bool
	White                float32
	HasColorTemperature  bool
	ColorTemperature     float32
	HasColdWarmWhite     bool
	ColdWhite, WarmWhite float32
	HasTransitionLength  bool
	TransitionLengthMs   uint32
	HasFlash             bool
	FlashLengthMs        uint32
	HasEffect            bool
	Effect               string
}

func (m *LightCommandRequest) TypeID() uint32 { return TypeLightCommandRequest }

func (m *LightCommandRequest) Encode() []byte {
	w := newFieldWriter().Uint32(1, m.Key)
	if m.HasState {
		w.Bool(2, true).Bool(3, m.State)
	}
	if m.HasBrightness {
		w.Bool(4, true).Float(5, m.Brightness)
	}
	if m.HasColorMode {
		w.Bool(6, true).Int32(7, m.ColorMode)
	}
	if m.HasColorBrightness {
		w.Bool(8, true).Float(9, m.ColorBrightness)
	}
	if m.HasRGB {
		w.Bool(10, true).Float(11, m.Red).Float(12, m.Green).Float(13, m.Blue)
	}
	if m.HasWhite {
		w.Bool(14, true).Float(15, m.White)
	}
	if m.HasColorTemperature {
		w.Bool(16, true).Float(17, m.ColorTemperature)
	}
	if m.HasColdWarmWhite {
		w.Bool(18, true).Float(19, m.ColdWhite).Float(20, m.WarmWhite)
	}
	if m.HasTransitionLength {
		w.Bool(21, true).Uint32(22, m.TransitionLengthMs)
	}
	if m.HasFlash {
		w.Bool(23, true).Uint32(24, m.FlashLengthMs)
	}
	if m.HasEffect {
		w.Bool(25, true).String(26, m.Effect)
	}
	return w.Bytes_()
}

type ClimateCommandRequest struct {
	Key                      uint32
	HasMode                  bool
	Mode                     int32
	HasTargetTemperature     bool
	TargetTemperature        float32
	HasTargetTemperatureLow  bool
	TargetTemperatureLow     float32
	HasTargetTemperatureHigh bool
	TargetTemperatureHigh    float32
	HasFanMode               bool
	FanMode                  int32
	HasSwingMode             bool
	SwingMode                int32
	HasCustomFanMode         bool
	CustomFanMode            string
	HasPreset                bool
	Preset                   int32
	HasCustomPreset          bool
	CustomPreset             string
	HasTargetHumidity        bool
	TargetHumidity           float32
}

func (m *ClimateCommandRequest) TypeID() uint32 { return TypeClimateCommandRequest }

func (m *ClimateCommandRequest) Encode() []byte {
	w := newFieldWriter().Uint32(1, m.Key)
	if m.HasMode {
		w.Bool(2, true).Int32(3, m.Mode)
	}
	if m.HasTargetTemperature {
		w.Bool(4, true).Float(5, m.TargetTemperature)
	}
	if m.HasTargetTemperatureLow {
		w.Bool(6, true).Float(7, m.TargetTemperatureLow)
	}
	if m.HasTargetTemperatureHigh {
		w.Bool(8, true).Float(9, m.TargetTemperatureHigh)
	}
	if m.HasFanMode {
		w.Bool(10, true).Int32(11, m.FanMode)
	}
	if m.HasSwingMode {
		w.Bool(12, true).Int32(13, m.SwingMode)
	}
	if m.HasCustomFanMode {
		w.Bool(14, true).String(15, m.CustomFanMode)
	}
	if m.HasPreset {
		w.Bool(16, true).Int32(17, m.Preset)
	}
	if m.HasCustomPreset {
		w.Bool(18, true).String(19, m.CustomPreset)
	}
	if m.HasTargetHumidity {
		w.Bool(20, true).Float(21, m.TargetHumidity)
	}
	return w.Bytes_()
}

type MediaPlayerCommandRequest struct {
	Key         uint32
	HasCommand  bool
	Command     int32
	HasVolume   bool
	Volume      float32
	HasMediaURL bool
	MediaURL    string
}

func (m *MediaPlayerCommandRequest) TypeID() uint32 { return TypeMediaPlayerCommandRequest }

func (m *MediaPlayerCommandRequest) Encode() []byte {
	w := newFieldWriter().Uint32(1, m.Key)
	if m.HasCommand {
		w.Bool(2, true).Int32(3, m.Command)
	}
	if m.HasVolume {
		w.Bool(4, true).Float(5, m.Volume)
	}
	if m.HasMediaURL {
		w.Bool(6, true).String(7, m.MediaURL)
	}
	return w.Bytes_()
}
