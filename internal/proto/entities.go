package proto

// ListEntitiesXResponse messages, one per supported domain. Every domain
// response starts with the shared baseEntityInfo fields (1-7) and then
// domain-specific fields starting at 8, mirroring the field layout used
// throughout the reference Rust implementation's model/entity_info.rs.

type BinarySensorInfo struct {
	baseEntityInfo
	DeviceClass        string
	IsStatusDiagnostic bool
}

func (m *BinarySensorInfo) TypeID() uint32 { return TypeListEntitiesBinarySensorResponse }

func (m *BinarySensorInfo) Encode() []byte {
	return m.write(newFieldWriter()).String(8, m.DeviceClass).Bool(9, m.IsStatusDiagnostic).Bytes_()
}

func DecodeBinarySensorInfo(data []byte) *BinarySensorInfo {
	m := &BinarySensorInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		if m.applyField(field, raw, val) {
			return
		}
		switch field {
		case 8:
			m.DeviceClass = string(raw)
		case 9:
			m.IsStatusDiagnostic = val != 0
		}
	})
	return m
}

type ButtonInfo struct {
	baseEntityInfo
	DeviceClass string
}

func (m *ButtonInfo) TypeID() uint32 { return TypeListEntitiesButtonResponse }

func (m *ButtonInfo) Encode() []byte {
	return m.write(newFieldWriter()).String(8, m.DeviceClass).Bytes_()
}

func DecodeButtonInfo(data []byte) *ButtonInfo {
	m := &ButtonInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		if m.applyField(field, raw, val) {
			return
		}
		if field == 8 {
			m.DeviceClass = string(raw)
		}
	})
	return m
}

type CameraInfo struct {
	baseEntityInfo
}

func (m *CameraInfo) TypeID() uint32 { return TypeListEntitiesCameraResponse }
func (m *CameraInfo) Encode() []byte { return m.write(newFieldWriter()).Bytes_() }

func DecodeCameraInfo(data []byte) *CameraInfo {
	m := &CameraInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) { m.applyField(field, raw, val) })
	return m
}

type ClimateInfo struct {
	baseEntityInfo
	SupportsCurrentTemperature        bool
	SupportsTwoPointTargetTemperature bool
	SupportedModes                    []int32
	VisualMinTemperature              float32
	VisualMaxTemperature              float32
	VisualTargetTemperatureStep       float32
	SupportsAction                    bool
	SupportedFanModes                 []int32
	SupportedSwingModes               []int32
	SupportedPresets                  []int32
	VisualCurrentTemperatureStep      float32
}

func (m *ClimateInfo) TypeID() uint32 { return TypeListEntitiesClimateResponse }

func (m *ClimateInfo) Encode() []byte {
	w := m.write(newFieldWriter())
	w.Bool(8, m.SupportsCurrentTemperature).
		Bool(9, m.SupportsTwoPointTargetTemperature).
		Float(11, m.VisualMinTemperature).
		Float(12, m.VisualMaxTemperature).
		Float(13, m.VisualTargetTemperatureStep).
		Bool(14, m.SupportsAction)
	for _, v := range m.SupportedModes {
		w.RepeatedInt32(10, v)
	}
	for _, v := range m.SupportedFanModes {
		w.RepeatedInt32(15, v)
	}
	for _, v := range m.SupportedSwingModes {
		w.RepeatedInt32(16, v)
	}
	for _, v := range m.SupportedPresets {
		w.RepeatedInt32(17, v)
	}
	w.Float(18, m.VisualCurrentTemperatureStep)
	return w.Bytes_()
}

func DecodeClimateInfo(data []byte) *ClimateInfo {
	m := &ClimateInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		if m.applyField(field, raw, val) {
			return
		}
		switch field {
		case 8:
			m.SupportsCurrentTemperature = val != 0
		case 9:
			m.SupportsTwoPointTargetTemperature = val != 0
		case 10:
			m.SupportedModes = append(m.SupportedModes, int32(val))
		case 11:
			m.VisualMinTemperature = fixed32ToFloat(raw)
		case 12:
			m.VisualMaxTemperature = fixed32ToFloat(raw)
		case 13:
			m.VisualTargetTemperatureStep = fixed32ToFloat(raw)
		case 14:
			m.SupportsAction = val != 0
		case 15:
			m.SupportedFanModes = append(m.SupportedFanModes, int32(val))
		case 16:
			m.SupportedSwingModes = append(m.SupportedSwingModes, int32(val))
		case 17:
			m.SupportedPresets = append(m.SupportedPresets, int32(val))
		case 18:
			m.VisualCurrentTemperatureStep = fixed32ToFloat(raw)
		}
	})
	return m
}

type CoverInfo struct {
	baseEntityInfo
	AssumedState     bool
	SupportsPosition bool
	SupportsTilt     bool
	DeviceClass      string
}

func (m *CoverInfo) TypeID() uint32 { return TypeListEntitiesCoverResponse }

func (m *CoverInfo) Encode() []byte {
	return m.write(newFieldWriter()).
		Bool(8, m.AssumedState).
		Bool(9, m.SupportsPosition).
		Bool(10, m.SupportsTilt).
		String(11, m.DeviceClass).
		Bytes_()
}

func DecodeCoverInfo(data []byte) *CoverInfo {
	m := &CoverInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		if m.applyField(field, raw, val) {
			return
		}
		switch field {
		case 8:
			m.AssumedState = val != 0
		case 9:
			m.SupportsPosition = val != 0
		case 10:
			m.SupportsTilt = val != 0
		case 11:
			m.DeviceClass = string(raw)
		}
	})
	return m
}

type DateInfo struct{ baseEntityInfo }

func (m *DateInfo) TypeID() uint32 { return TypeListEntitiesDateResponse }
func (m *DateInfo) Encode() []byte { return m.write(newFieldWriter()).Bytes_() }

func DecodeDateInfo(data []byte) *DateInfo {
	m := &DateInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) { m.applyField(field, raw, val) })
	return m
}

type DateTimeInfo struct{ baseEntityInfo }

func (m *DateTimeInfo) TypeID() uint32 { return TypeListEntitiesDateTimeResponse }
func (m *DateTimeInfo) Encode() []byte { return m.write(newFieldWriter()).Bytes_() }

func DecodeDateTimeInfo(data []byte) *DateTimeInfo {
	m := &DateTimeInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) { m.applyField(field, raw, val) })
	return m
}

type EventInfo struct {
	baseEntityInfo
	DeviceClass string
	EventTypes  []string
}

func (m *EventInfo) TypeID() uint32 { return TypeListEntitiesEventResponse }

func (m *EventInfo) Encode() []byte {
	w := m.write(newFieldWriter()).String(8, m.DeviceClass)
	for _, t := range m.EventTypes {
		w.String(9, t)
	}
	return w.Bytes_()
}

func DecodeEventInfo(data []byte) *EventInfo {
	m := &EventInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		if m.applyField(field, raw, val) {
			return
		}
		switch field {
		case 8:
			m.DeviceClass = string(raw)
		case 9:
			m.EventTypes = append(m.EventTypes, string(raw))
		}
	})
	return m
}

type FanInfo struct {
	baseEntityInfo
	SupportsOscillation  bool
	SupportsSpeed        bool
	SupportsDirection    bool
	SupportedSpeedCount  int32
	SupportedPresetModes []string
}

func (m *FanInfo) TypeID() uint32 { return TypeListEntitiesFanResponse }

func (m *FanInfo) Encode() []byte {
	w := m.write(newFieldWriter()).
		Bool(8, m.SupportsOscillation).
		Bool(9, m.SupportsSpeed).
		Bool(10, m.SupportsDirection).
		Int32(11, m.SupportedSpeedCount)
	for _, p := range m.SupportedPresetModes {
		w.String(12, p)
	}
	return w.Bytes_()
}

func DecodeFanInfo(data []byte) *FanInfo {
	m := &FanInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		if m.applyField(field, raw, val) {
			return
		}
		switch field {
		case 8:
			m.SupportsOscillation = val != 0
		case 9:
			m.SupportsSpeed = val != 0
		case 10:
			m.SupportsDirection = val != 0
		case 11:
			m.SupportedSpeedCount = int32(val)
		case 12:
			m.SupportedPresetModes = append(m.SupportedPresetModes, string(raw))
		}
	})
	return m
}

type LightInfo struct {
	baseEntityInfo
	SupportedColorModes []int32
	MinMireds           float32
	MaxMireds           float32
	Effects             []string
}

func (m *LightInfo) TypeID() uint32 { return TypeListEntitiesLightResponse }

func (m *LightInfo) Encode() []byte {
	w := m.write(newFieldWriter())
	for _, v := range m.SupportedColorModes {
		w.RepeatedInt32(8, v)
	}
	w.Float(9, m.MinMireds).Float(10, m.MaxMireds)
	for _, e := range m.Effects {
		w.String(11, e)
	}
	return w.Bytes_()
}

func DecodeLightInfo(data []byte) *LightInfo {
	m := &LightInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		if m.applyField(field, raw, val) {
			return
		}
		switch field {
		case 8:
			m.SupportedColorModes = append(m.SupportedColorModes, int32(val))
		case 9:
			m.MinMireds = fixed32ToFloat(raw)
		case 10:
			m.MaxMireds = fixed32ToFloat(raw)
		case 11:
			m.Effects = append(m.Effects, string(raw))
		}
	})
	return m
}

type LockInfo struct {
	baseEntityInfo
	SupportsOpen bool
	AssumedState bool
	RequiresCode bool
	CodeFormat   string
}

func (m *LockInfo) TypeID() uint32 { return TypeListEntitiesLockResponse }

func (m *LockInfo) Encode() []byte {
	return m.write(newFieldWriter()).
		Bool(8, m.SupportsOpen).
		Bool(9, m.AssumedState).
		Bool(10, m.RequiresCode).
		String(11, m.CodeFormat).
		Bytes_()
}

func DecodeLockInfo(data []byte) *LockInfo {
	m := &LockInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		if m.applyField(field, raw, val) {
			return
		}
		switch field {
		case 8:
			m.SupportsOpen = val != 0
		case 9:
			m.AssumedState = val != 0
		case 10:
			m.RequiresCode = val != 0
		case 11:
			m.CodeFormat = string(raw)
		}
	})
	return m
}

type MediaPlayerInfo struct {
	baseEntityInfo
	SupportsPause bool
}

func (m *MediaPlayerInfo) TypeID() uint32 { return TypeListEntitiesMediaPlayerResponse }

func (m *MediaPlayerInfo) Encode() []byte {
	return m.write(newFieldWriter()).Bool(8, m.SupportsPause).Bytes_()
}

func DecodeMediaPlayerInfo(data []byte) *MediaPlayerInfo {
	m := &MediaPlayerInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		if m.applyField(field, raw, val) {
			return
		}
		if field == 8 {
			m.SupportsPause = val != 0
		}
	})
	return m
}

type NumberInfo struct {
	baseEntityInfo
	MinValue          float32
	MaxValue          float32
	Step              float32
	UnitOfMeasurement string
	Mode              int32
	DeviceClass       string
}

func (m *NumberInfo) TypeID() uint32 { return TypeListEntitiesNumberResponse }

func (m *NumberInfo) Encode() []byte {
	return m.write(newFieldWriter()).
		Float(8, m.MinValue).
		Float(9, m.MaxValue).
		Float(10, m.Step).
		String(11, m.UnitOfMeasurement).
		Int32(12, m.Mode).
		String(13, m.DeviceClass).
		Bytes_()
}

func DecodeNumberInfo(data []byte) *NumberInfo {
	m := &NumberInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		if m.applyField(field, raw, val) {
			return
		}
		switch field {
		case 8:
			m.MinValue = fixed32ToFloat(raw)
		case 9:
			m.MaxValue = fixed32ToFloat(raw)
		case 10:
			m.Step = fixed32ToFloat(raw)
		case 11:
			m.UnitOfMeasurement = string(raw)
		case 12:
			m.Mode = int32(val)
		case 13:
			m.DeviceClass = string(raw)
		}
	})
	return m
}

type SelectInfo struct {
	baseEntityInfo
	Options []string
}

func (m *SelectInfo) TypeID() uint32 { return TypeListEntitiesSelectResponse }

func (m *SelectInfo) Encode() []byte {
	w := m.write(newFieldWriter())
	for _, o := range m.Options {
		w.String(8, o)
	}
	return w.Bytes_()
}

func DecodeSelectInfo(data []byte) *SelectInfo {
	m := &SelectInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		if m.applyField(field, raw, val) {
			return
		}
		if field == 8 {
			m.Options = append(m.Options, string(raw))
		}
	})
	return m
}

type SensorInfo struct {
	baseEntityInfo
	UnitOfMeasurement string
	AccuracyDecimals  int32
	ForceUpdate       bool
	DeviceClass       string
	StateClass        int32
}

func (m *SensorInfo) TypeID() uint32 { return TypeListEntitiesSensorResponse }

func (m *SensorInfo) Encode() []byte {
	return m.write(newFieldWriter()).
		String(8, m.UnitOfMeasurement).
		Int32(9, m.AccuracyDecimals).
		Bool(10, m.ForceUpdate).
		String(11, m.DeviceClass).
		Int32(12, m.StateClass).
		Bytes_()
}

func DecodeSensorInfo(data []byte) *SensorInfo {
	m := &SensorInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		if m.applyField(field, raw, val) {
			return
		}
		switch field {
		case 8:
			m.UnitOfMeasurement = string(raw)
		case 9:
			m.AccuracyDecimals = int32(val)
		case 10:
			m.ForceUpdate = val != 0
		case 11:
			m.DeviceClass = string(raw)
		case 12:
			m.StateClass = int32(val)
		}
	})
	return m
}

type SwitchInfo struct {
	baseEntityInfo
	AssumedState bool
	DeviceClass  string
}

func (m *SwitchInfo) TypeID() uint32 { return TypeListEntitiesSwitchResponse }

func (m *SwitchInfo) Encode() []byte {
	return m.write(newFieldWriter()).Bool(8, m.AssumedState).String(9, m.DeviceClass).Bytes_()
}

func DecodeSwitchInfo(data []byte) *SwitchInfo {
	m := &SwitchInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		if m.applyField(field, raw, val) {
			return
		}
		switch field {
		case 8:
			m.AssumedState = val != 0
		case 9:
			m.DeviceClass = string(raw)
		}
	})
	return m
}

type TextInfo struct {
	baseEntityInfo
	MinLength int32
	MaxLength int32
	Pattern   string
	Mode      int32
}

func (m *TextInfo) TypeID() uint32 { return TypeListEntitiesTextResponse }

func (m *TextInfo) Encode() []byte {
	return m.write(newFieldWriter()).
		Int32(8, m.MinLength).
		Int32(9, m.MaxLength).
		String(10, m.Pattern).
		Int32(11, m.Mode).
		Bytes_()
}

func DecodeTextInfo(data []byte) *TextInfo {
	m := &TextInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		if m.applyField(field, raw, val) {
			return
		}
		switch field {
		case 8:
			m.MinLength = int32(val)
		case 9:
			m.MaxLength = int32(val)
		case 10:
			m.Pattern = string(raw)
		case 11:
			m.Mode = int32(val)
		}
	})
	return m
}

type TextSensorInfo struct {
	baseEntityInfo
	DeviceClass string
}

func (m *TextSensorInfo) TypeID() uint32 { return TypeListEntitiesTextSensorResponse }

func (m *TextSensorInfo) Encode() []byte {
	return m.write(newFieldWriter()).String(8, m.DeviceClass).Bytes_()
}

func DecodeTextSensorInfo(data []byte) *TextSensorInfo {
	m := &TextSensorInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		if m.applyField(field, raw, val) {
			return
		}
		if field == 8 {
			m.DeviceClass = string(raw)
		}
	})
	return m
}

type TimeInfo struct{ baseEntityInfo }

func (m *TimeInfo) TypeID() uint32 { return TypeListEntitiesTimeResponse }
func (m *TimeInfo) Encode() []byte { return m.write(newFieldWriter()).Bytes_() }

func DecodeTimeInfo(data []byte) *TimeInfo {
	m := &TimeInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) { m.applyField(field, raw, val) })
	return m
}

type UpdateInfo struct {
	baseEntityInfo
	DeviceClass string
}

func (m *UpdateInfo) TypeID() uint32 { return TypeListEntitiesUpdateResponse }

func (m *UpdateInfo) Encode() []byte {
	return m.write(newFieldWriter()).String(8, m.DeviceClass).Bytes_()
}

func DecodeUpdateInfo(data []byte) *UpdateInfo {
	m := &UpdateInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		if m.applyField(field, raw, val) {
			return
		}
		if field == 8 {
			m.DeviceClass = string(raw)
		}
	})
	return m
}

type ValveInfo struct {
	baseEntityInfo
	DeviceClass      string
	AssumedState     bool
	SupportsPosition bool
	SupportsStop     bool
}

func (m *ValveInfo) TypeID() uint32 { return TypeListEntitiesValveResponse }

func (m *ValveInfo) Encode() []byte {
	return m.write(newFieldWriter()).
		String(8, m.DeviceClass).
		Bool(9, m.AssumedState).
		Bool(10, m.SupportsPosition).
		Bool(11, m.SupportsStop).
		Bytes_()
}

func DecodeValveInfo(data []byte) *ValveInfo {
	m := &ValveInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		if m.applyField(field, raw, val) {
			return
		}
		switch field {
		case 8:
			m.DeviceClass = string(raw)
		case 9:
			m.AssumedState = val != 0
		case 10:
			m.SupportsPosition = val != 0
		case 11:
			m.SupportsStop = val != 0
		}
	})
	return m
}

type AlarmControlPanelInfo struct {
	baseEntityInfo
	SupportedFeatures int32
	RequiresCode      bool
	RequiresCodeToArm bool
}

func (m *AlarmControlPanelInfo) TypeID() uint32 { return TypeListEntitiesAlarmControlPanelResponse }

func (m *AlarmControlPanelInfo) Encode() []byte {
	return m.write(newFieldWriter()).
		Int32(8, m.SupportedFeatures).
		Bool(9, m.RequiresCode).
		Bool(10, m.RequiresCodeToArm).
		Bytes_()
}

func DecodeAlarmControlPanelInfo(data []byte) *AlarmControlPanelInfo {
	m := &AlarmControlPanelInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		if m.applyField(field, raw, val) {
			return
		}
		switch field {
		case 8:
			m.SupportedFeatures = int32(val)
		case 9:
			m.RequiresCode = val != 0
		case 10:
			m.RequiresCodeToArm = val != 0
		}
	})
	return m
}

// ServiceArgType mirrors ESPHome's service_arg_type enum.
type ServiceArgType int32

const (
	ServiceArgBool ServiceArgType = iota
	ServiceArgInt
	ServiceArgFloat
	ServiceArgString
	ServiceArgBoolArray
	ServiceArgIntArray
	ServiceArgFloatArray
	ServiceArgStringArray
)

type ServiceArgument struct {
	Name string
	Type ServiceArgType
}

type ServiceInfo struct {
	Name string
	Key  uint32
	Args []ServiceArgument
}

func (m *ServiceInfo) TypeID() uint32 { return TypeListEntitiesServicesResponse }

func (m *ServiceInfo) Encode() []byte {
	w := newFieldWriter().String(1, m.Name).Uint32(2, m.Key)
	for _, a := range m.Args {
		argW := newFieldWriter().String(1, a.Name).Int32(2, int32(a.Type))
		w.Bytes(3, argW.Bytes_())
	}
	return w.Bytes_()
}

func DecodeServiceInfo(data []byte) *ServiceInfo {
	m := &ServiceInfo{}
	walkFields(data, func(field int, raw []byte, val uint64) {
		switch field {
		case 1:
			m.Name = string(raw)
		case 2:
			m.Key = uint32(val)
		case 3:
			arg := ServiceArgument{}
			walkFields(raw, func(f int, r []byte, v uint64) {
				switch f {
				case 1:
					arg.Name = string(r)
				case 2:
					arg.Type = ServiceArgType(v)
				}
			})
			m.Args = append(m.Args, arg)
		}
	})
	return m
}

// walkFields is a small convenience wrapper over fieldReader for decoders
// that don't need to inspect the wire type directly.
func walkFields(data []byte, fn func(field int, raw []byte, val uint64)) {
	r := newFieldReader(data)
	for {
		field, _, raw, val, ok := r.Next()
		if !ok {
			return
		}
		fn(field, raw, val)
	}
}
