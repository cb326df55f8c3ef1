package proto

// XStateResponse messages, one per domain. Every state message starts with
// (key uint32 = field 1) followed by domain-specific value fields, mirroring
// the reference Rust implementation's model/entity_state.rs.

type BinarySensorState struct {
	Key          uint32
	State        bool
	MissingState bool
}

func (m *BinarySensorState) TypeID() uint32 { return TypeBinarySensorStateResponse }

func (m *BinarySensorState) Encode() []byte {
	return newFieldWriter().Uint32(1, m.Key).Bool(2, m.State).Bool(3, m.MissingState).Bytes_()
}

func DecodeBinarySensorState(data []byte) *BinarySensorState {
	m := &BinarySensorState{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		switch field {
		case 1:
			m.Key = uint32(val)
		case 2:
			m.State = val != 0
		case 3:
			m.MissingState = val != 0
		}
	})
	return m
}

type ClimateState struct {
	Key                   uint32
	Mode                  int32
	CurrentTemperature    float32
	TargetTemperature     float32
	TargetTemperatureLow  float32
	TargetTemperatureHigh float32
	Action                int32
	FanMode               int32
	SwingMode             int32
	CustomFanMode         string
	Preset                int32
	CustomPreset          string
	CurrentHumidity       float32
	TargetHumidity        float32
}

func (m *ClimateState) TypeID() uint32 { return TypeClimateStateResponse }

func (m *ClimateState) Encode() []byte {
	return newFieldWriter().
		Uint32(1, m.Key).
		Int32(2, m.Mode).
		Float(3, m.CurrentTemperature).
		Float(4, m.TargetTemperature).
		Float(5, m.TargetTemperatureLow).
		Float(6, m.TargetTemperatureHigh).
		Int32(7, m.Action).
		Int32(8, m.FanMode).
		Int32(9, m.SwingMode).
		String(10, m.CustomFanMode).
		Int32(11, m.Preset).
		String(12, m.CustomPreset).
		Float(13, m.CurrentHumidity).
		Float(14, m.TargetHumidity).
		Bytes_()
}

func DecodeClimateState(data []byte) *ClimateState {
	m := &ClimateState{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		switch field {
		case 1:
			m.Key = uint32(val)
		case 2:
			m.Mode = int32(val)
		case 3:
			m.CurrentTemperature = fixed32ToFloat(raw)
		case 4:
			m.TargetTemperature = fixed32ToFloat(raw)
		case 5:
			m.TargetTemperatureLow = fixed32ToFloat(raw)
		case 6:
			m.TargetTemperatureHigh = fixed32ToFloat(raw)
		case 7:
			m.Action = int32(val)
		case 8:
			m.FanMode = int32(val)
		case 9:
			m.SwingMode = int32(val)
		case 10:
			m.CustomFanMode = string(raw)
		case 11:
			m.Preset = int32(val)
		case 12:
			m.CustomPreset = string(raw)
		case 13:
			m.CurrentHumidity = fixed32ToFloat(raw)
		case 14:
			m.TargetHumidity = fixed32ToFloat(raw)
		}
	})
	return m
}

type CoverState struct {
	Key              uint32
	LegacyState      int32
	Position         float32
	Tilt             float32
	CurrentOperation int32
}

func (m *CoverState) TypeID() uint32 { return TypeCoverStateResponse }

func (m *CoverState) Encode() []byte {
	return newFieldWriter().
		Uint32(1, m.Key).
		Int32(2, m.LegacyState).
		Float(3, m.Position).
		Float(4, m.Tilt).
		Int32(5, m.CurrentOperation).
		Bytes_()
}

func DecodeCoverState(data []byte) *CoverState {
	m := &CoverState{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		switch field {
		case 1:
			m.Key = uint32(val)
		case 2:
			m.LegacyState = int32(val)
		case 3:
			m.Position = fixed32ToFloat(raw)
		case 4:
			m.Tilt = fixed32ToFloat(raw)
		case 5:
			m.CurrentOperation = int32(val)
		}
	})
	return m
}

type DateState struct {
	Key          uint32
	MissingState bool
	Year         uint32
	Month        uint32
	Day          uint32
}

func (m *DateState) TypeID() uint32 { return TypeDateStateResponse }

func (m *DateState) Encode() []byte {
	return newFieldWriter().
		Uint32(1, m.Key).
		Bool(2, m.MissingState).
		Uint32(3, m.Year).
		Uint32(4, m.Month).
		Uint32(5, m.Day).
		Bytes_()
}

func DecodeDateState(data []byte) *DateState {
	m := &DateState{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		switch field {
		case 1:
			m.Key = uint32(val)
		case 2:
			m.MissingState = val != 0
		case 3:
			m.Year = uint32(val)
		case 4:
			m.Month = uint32(val)
		case 5:
			m.Day = uint32(val)
		}
	})
	return m
}

type DateTimeState struct {
	Key          uint32
	MissingState bool
	EpochSeconds uint32
}

func (m *DateTimeState) TypeID() uint32 { return TypeDateTimeStateResponse }

func (m *DateTimeState) Encode() []byte {
	return newFieldWriter().Uint32(1, m.Key).Bool(2, m.MissingState).Uint32(3, m.EpochSeconds).Bytes_()
}

func DecodeDateTimeState(data []byte) *DateTimeState {
	m := &DateTimeState{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		switch field {
		case 1:
			m.Key = uint32(val)
		case 2:
			m.MissingState = val != 0
		case 3:
			m.EpochSeconds = uint32(val)
		}
	})
	return m
}

type EventState struct {
	Key       uint32
	EventType string
}

func (m *EventState) TypeID() uint32 { return TypeEventStateResponse }

func (m *EventState) Encode() []byte {
	return newFieldWriter().Uint32(1, m.Key).String(2, m.EventType).Bytes_()
}

func DecodeEventState(data []byte) *EventState {
	m := &EventState{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		switch field {
		case 1:
			m.Key = uint32(val)
		case 2:
			m.EventType = string(raw)
		}
	})
	return m
}

type FanState struct {
	Key         uint32
	State       bool
	Oscillating bool
	Direction   int32
	Speed       int32
	SpeedLevel  int32
	PresetMode  string
}

func (m *FanState) TypeID() uint32 { return TypeFanStateResponse }

func (m *FanState) Encode() []byte {
	return newFieldWriter().
		Uint32(1, m.Key).
		Bool(2, m.State).
		Bool(3, m.Oscillating).
		Int32(4, m.Direction).
		Int32(5, m.Speed).
		Int32(6, m.SpeedLevel).
		String(7, m.PresetMode).
		Bytes_()
}

func DecodeFanState(data []byte) *FanState {
	m := &FanState{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		switch field {
		case 1:
			m.Key = uint32(val)
		case 2:
			m.State = val != 0
		case 3:
			m.Oscillating = val != 0
		case 4:
			m.Direction = int32(val)
		case 5:
			m.Speed = int32(val)
		case 6:
			m.SpeedLevel = int32(val)
		case 7:
			m.PresetMode = string(raw)
		}
	})
	return m
}

type LightState struct {
	Key                  uint32
	State                bool
	Brightness           float32
	ColorMode            int32
	ColorBrightness      float32
	Red, Green, Blue     float32
	White                float32
	ColorTemperature     float32
	ColdWhite, WarmWhite float32
	Effect               string
}

func (m *LightState) TypeID() uint32 { return TypeLightStateResponse }

func (m *LightState) Encode() []byte {
	return newFieldWriter().
		Uint32(1, m.Key).
		Bool(2, m.State).
		Float(3, m.Brightness).
		Int32(4, m.ColorMode).
		Float(5, m.ColorBrightness).
		Float(6, m.Red).
		Float(7, m.Green).
		Float(8, m.Blue).
		Float(9, m.White).
		Float(10, m.ColorTemperature).
		Float(11, m.ColdWhite).
		Float(12, m.WarmWhite).
		String(13, m.Effect).
		Bytes_()
}

func DecodeLightState(data []byte) *LightState {
	m := &LightState{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		switch field {
		case 1:
			m.Key = uint32(val)
		case 2:
			m.State = val != 0
		case 3:
			m.Brightness = fixed32ToFloat(raw)
		case 4:
			m.ColorMode = int32(val)
		case 5:
			m.ColorBrightness = fixed32ToFloat(raw)
		case 6:
			m.Red = fixed32ToFloat(raw)
		case 7:
			m.Green = fixed32ToFloat(raw)
		case 8:
			m.Blue = fixed32ToFloat(raw)
		case 9:
			m.White = fixed32ToFloat(raw)
		case 10:
			m.ColorTemperature = fixed32ToFloat(raw)
		case 11:
			m.ColdWhite = fixed32ToFloat(raw)
		case 12:
			m.WarmWhite = fixed32ToFloat(raw)
		case 13:
			m.Effect = string(raw)
		}
	})
	return m
}

type LockState struct {
	Key   uint32
	State int32
}

func (m *LockState) TypeID() uint32 { return TypeLockStateResponse }

func (m *LockState) Encode() []byte {
	return newFieldWriter().Uint32(1, m.Key).Int32(2, m.State).Bytes_()
}

func DecodeLockState(data []byte) *LockState {
	m := &LockState{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		switch field {
		case 1:
			m.Key = uint32(val)
		case 2:
			m.State = int32(val)
		}
	})
	return m
}

type MediaPlayerState struct {
	Key    uint32
	State  int32
	Volume float32
	Muted  bool
}

func (m *MediaPlayerState) TypeID() uint32 { return TypeMediaPlayerStateResponse }

func (m *MediaPlayerState) Encode() []byte {
	return newFieldWriter().
		Uint32(1, m.Key).
		Int32(2, m.State).
		Float(3, m.Volume).
		Bool(4, m.Muted).
		Bytes_()
}

func DecodeMediaPlayerState(data []byte) *MediaPlayerState {
	m := &MediaPlayerState{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		switch field {
		case 1:
			m.Key = uint32(val)
		case 2:
			m.State = int32(val)
		case 3:
			m.Volume = fixed32ToFloat(raw)
		case 4:
			m.Muted = val != 0
		}
	})
	return m
}

type NumberState struct {
	Key          uint32
	State        float32
	MissingState bool
}

func (m *NumberState) TypeID() uint32 { return TypeNumberStateResponse }

func (m *NumberState) Encode() []byte {
	return newFieldWriter().Uint32(1, m.Key).Float(2, m.State).Bool(3, m.MissingState).Bytes_()
}

func DecodeNumberState(data []byte) *NumberState {
	m := &NumberState{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		switch field {
		case 1:
			m.Key = uint32(val)
		case 2:
			m.State = fixed32ToFloat(raw)
		case 3:
			m.MissingState = val != 0
		}
	})
	return m
}

type SelectState struct {
	Key          uint32
	State        string
	MissingState bool
}

func (m *SelectState) TypeID() uint32 { return TypeSelectStateResponse }

func (m *SelectState) Encode() []byte {
	return newFieldWriter().Uint32(1, m.Key).String(2, m.State).Bool(3, m.MissingState).Bytes_()
}

func DecodeSelectState(data []byte) *SelectState {
	m := &SelectState{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		switch field {
		case 1:
			m.Key = uint32(val)
		case 2:
			m.State = string(raw)
		case 3:
			m.MissingState = val != 0
		}
	})
	return m
}

type SensorState struct {
	Key          uint32
	State        float32
	MissingState bool
}

func (m *SensorState) TypeID() uint32 { return TypeSensorStateResponse }

func (m *SensorState) Encode() []byte {
	return newFieldWriter().Uint32(1, m.Key).Float(2, m.State).Bool(3, m.MissingState).Bytes_()
}

func DecodeSensorState(data []byte) *SensorState {
	m := &SensorState{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		switch field {
		case 1:
			m.Key = uint32(val)
		case 2:
			m.State = fixed32ToFloat(raw)
		case 3:
			m.MissingState = val != 0
		}
	})
	return m
}

type SwitchState struct {
	Key   uint32
	State bool
}

func (m *SwitchState) TypeID() uint32 { return TypeSwitchStateResponse }

func (m *SwitchState) Encode() []byte {
	return newFieldWriter().Uint32(1, m.Key).Bool(2, m.State).Bytes_()
}

func DecodeSwitchState(data []byte) *SwitchState {
	m := &SwitchState{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		switch field {
		case 1:
			m.Key = uint32(val)
		case 2:
			m.State = val != 0
		}
	})
	return m
}

type TextState struct {
	Key          uint32
	State        string
	MissingState bool
}

func (m *TextState) TypeID() uint32 { return TypeTextStateResponse }

func (m *TextState) Encode() []byte {
	return newFieldWriter().Uint32(1, m.Key).String(2, m.State).Bool(3, m.MissingState).Bytes_()
}

func DecodeTextState(data []byte) *TextState {
	m := &TextState{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		switch field {
		case 1:
			m.Key = uint32(val)
		case 2:
			m.State = string(raw)
		case 3:
			m.MissingState = val != 0
		}
	})
	return m
}

type TextSensorState struct {
	Key          uint32
	State        string
	MissingState bool
}

func (m *TextSensorState) TypeID() uint32 { return TypeTextSensorStateResponse }

func (m *TextSensorState) Encode() []byte {
	return newFieldWriter().Uint32(1, m.Key).String(2, m.State).Bool(3, m.MissingState).Bytes_()
}

func DecodeTextSensorState(data []byte) *TextSensorState {
	m := &TextSensorState{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		switch field {
		case 1:
			m.Key = uint32(val)
		case 2:
			m.State = string(raw)
		case 3:
			m.MissingState = val != 0
		}
	})
	return m
}

type TimeState struct {
	Key                  uint32
	MissingState         bool
	Hour, Minute, Second uint32
}

func (m *TimeState) TypeID() uint32 { return TypeTimeStateResponse }

func (m *TimeState) Encode() []byte {
	return newFieldWriter().
		Uint32(1, m.Key).
		Bool(2, m.MissingState).
		Uint32(3, m.Hour).
		Uint32(4, m.Minute).
		Uint32(5, m.Second).
		Bytes_()
}

func DecodeTimeState(data []byte) *TimeState {
	m := &TimeState{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		switch field {
		case 1:
			m.Key = uint32(val)
		case 2:
			m.MissingState = val != 0
		case 3:
			m.Hour = uint32(val)
		case 4:
			m.Minute = uint32(val)
		case 5:
			m.Second = uint32(val)
		}
	})
	return m
}

type UpdateState struct {
	Key            uint32
	MissingState   bool
	InProgress     bool
	HasProgress    bool
	Progress       float32
	CurrentVersion string
	LatestVersion  string
	Title          string
	ReleaseSummary string
	ReleaseURL     string
}

func (m *UpdateState) TypeID() uint32 { return TypeUpdateStateResponse }

func (m *UpdateState) Encode() []byte {
	return newFieldWriter().
		Uint32(1, m.Key).
		Bool(2, m.MissingState).
		Bool(3, m.InProgress).
		Bool(4, m.HasProgress).
		Float(5, m.Progress).
		String(6, m.CurrentVersion).
		String(7, m.LatestVersion).
		String(8, m.Title).
		String(9, m.ReleaseSummary).
		String(10, m.ReleaseURL).
		Bytes_()
}

func DecodeUpdateState(data []byte) *UpdateState {
	m := &UpdateState{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		switch field {
		case 1:
			m.Key = uint32(val)
		case 2:
			m.MissingState = val != 0
		case 3:
			m.InProgress = val != 0
		case 4:
			m.HasProgress = val != 0
		case 5:
			m.Progress = fixed32ToFloat(raw)
		case 6:
			m.CurrentVersion = string(raw)
		case 7:
			m.LatestVersion = string(raw)
		case 8:
			m.Title = string(raw)
		case 9:
			m.ReleaseSummary = string(raw)
		case 10:
			m.ReleaseURL = string(raw)
		}
	})
	return m
}

type ValveState struct {
	Key              uint32
	Position         float32
	CurrentOperation int32
}

func (m *ValveState) TypeID() uint32 { return TypeValveStateResponse }

func (m *ValveState) Encode() []byte {
	return newFieldWriter().
		Uint32(1, m.Key).
		Float(2, m.Position).
		Int32(3, m.CurrentOperation).
		Bytes_()
}

func DecodeValveState(data []byte) *ValveState {
	m := &ValveState{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		switch field {
		case 1:
			m.Key = uint32(val)
		case 2:
			m.Position = fixed32ToFloat(raw)
		case 3:
			m.CurrentOperation = int32(val)
		}
	})
	return m
}

type AlarmControlPanelState struct {
	Key   uint32
	State int32
}

func (m *AlarmControlPanelState) TypeID() uint32 { return TypeAlarmControlPanelStateResponse }

func (m *AlarmControlPanelState) Encode() []byte {
	return newFieldWriter().Uint32(1, m.Key).Int32(2, m.State).Bytes_()
}

func DecodeAlarmControlPanelState(data []byte) *AlarmControlPanelState {
	m := &AlarmControlPanelState{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		switch field {
		case 1:
			m.Key = uint32(val)
		case 2:
			m.State = int32(val)
		}
	})
	return m
}
