package core

import "github.com/esphome/esphomeapi-go/internal/proto"

// ListEntitiesDecoders maps a ListEntitiesXResponse type id to the function
// that parses its payload into the corresponding proto.*Info struct.
var ListEntitiesDecoders = map[uint32]func([]byte) any{
	proto.TypeListEntitiesBinarySensorResponse:      func(b []byte) any { return proto.DecodeBinarySensorInfo(b) },
	proto.TypeListEntitiesButtonResponse:            func(b []byte) any { return proto.DecodeButtonInfo(b) },
	proto.TypeListEntitiesCameraResponse:            func(b []byte) any { return proto.DecodeCameraInfo(b) },
	proto.TypeListEntitiesClimateResponse:           func(b []byte) any { return proto.DecodeClimateInfo(b) },
	proto.TypeListEntitiesCoverResponse:             func(b []byte) any { return proto.DecodeCoverInfo(b) },
	proto.TypeListEntitiesDateResponse:              func(b []byte) any { return proto.DecodeDateInfo(b) },
	proto.TypeListEntitiesDateTimeResponse:          func(b []byte) any { return proto.DecodeDateTimeInfo(b) },
	proto.TypeListEntitiesEventResponse:             func(b []byte) any { return proto.DecodeEventInfo(b) },
	proto.TypeListEntitiesFanResponse:               func(b []byte) any { return proto.DecodeFanInfo(b) },
	proto.TypeListEntitiesLightResponse:             func(b []byte) any { return proto.DecodeLightInfo(b) },
	proto.TypeListEntitiesLockResponse:              func(b []byte) any { return proto.DecodeLockInfo(b) },
	proto.TypeListEntitiesMediaPlayerResponse:       func(b []byte) any { return proto.DecodeMediaPlayerInfo(b) },
	proto.TypeListEntitiesNumberResponse:            func(b []byte) any { return proto.DecodeNumberInfo(b) },
	proto.TypeListEntitiesSelectResponse:            func(b []byte) any { return proto.DecodeSelectInfo(b) },
	proto.TypeListEntitiesSensorResponse:            func(b []byte) any { return proto.DecodeSensorInfo(b) },
	proto.TypeListEntitiesSwitchResponse:            func(b []byte) any { return proto.DecodeSwitchInfo(b) },
	proto.TypeListEntitiesTextResponse:              func(b []byte) any { return proto.DecodeTextInfo(b) },
	proto.TypeListEntitiesTextSensorResponse:        func(b []byte) any { return proto.DecodeTextSensorInfo(b) },
	proto.TypeListEntitiesTimeResponse:              func(b []byte) any { return proto.DecodeTimeInfo(b) },
	proto.TypeListEntitiesUpdateResponse:            func(b []byte) any { return proto.DecodeUpdateInfo(b) },
	proto.TypeListEntitiesValveResponse:             func(b []byte) any { return proto.DecodeValveInfo(b) },
	proto.TypeListEntitiesAlarmControlPanelResponse: func(b []byte) any { return proto.DecodeAlarmControlPanelInfo(b) },
}

// StateDecoders maps an XStateResponse type id to the function that parses
// its payload into the corresponding proto.*State struct.
var StateDecoders = map[uint32]func([]byte) any{
	proto.TypeBinarySensorStateResponse:      func(b []byte) any { return proto.DecodeBinarySensorState(b) },
	proto.TypeClimateStateResponse:           func(b []byte) any { return proto.DecodeClimateState(b) },
	proto.TypeCoverStateResponse:             func(b []byte) any { return proto.DecodeCoverState(b) },
	proto.TypeDateStateResponse:              func(b []byte) any { return proto.DecodeDateState(b) },
	proto.TypeDateTimeStateResponse:          func(b []byte) any { return proto.DecodeDateTimeState(b) },
	proto.TypeEventStateResponse:             func(b []byte) any { return proto.DecodeEventState(b) },
	proto.TypeFanStateResponse:               func(b []byte) any { return proto.DecodeFanState(b) },
	proto.TypeLightStateResponse:             func(b []byte) any { return proto.DecodeLightState(b) },
	proto.TypeLockStateResponse:              func(b []byte) any { return proto.DecodeLockState(b) },
	proto.TypeMediaPlayerStateResponse:       func(b []byte) any { return proto.DecodeMediaPlayerState(b) },
	proto.TypeNumberStateResponse:            func(b []byte) any { return proto.DecodeNumberState(b) },
	proto.TypeSelectStateResponse:            func(b []byte) any { return proto.DecodeSelectState(b) },
	proto.TypeSensorStateResponse:            func(b []byte) any { return proto.DecodeSensorState(b) },
	proto.TypeSwitchStateResponse:            func(b []byte) any { return proto.DecodeSwitchState(b) },
	proto.TypeTextStateResponse:              func(b []byte) any { return proto.DecodeTextState(b) },
	proto.TypeTextSensorStateResponse:        func(b []byte) any { return proto.DecodeTextSensorState(b) },
	proto.TypeTimeStateResponse:              func(b []byte) any { return proto.DecodeTimeState(b) },
	proto.TypeUpdateStateResponse:            func(b []byte) any { return proto.DecodeUpdateState(b) },
	proto.TypeValveStateResponse:             func(b []byte) any { return proto.DecodeValveState(b) },
	proto.TypeAlarmControlPanelStateResponse: func(b []byte) any { return proto.DecodeAlarmControlPanelState(b) },
}

// ListEntitiesTerminator and ListEntitiesServices are handled outside the
// decoder tables above since they carry no per-domain info payload.
var (
	ListEntitiesTerminator = proto.TypeListEntitiesDoneResponse
	ListEntitiesServices   = proto.TypeListEntitiesServicesResponse
)

// DecodeService parses a ListEntitiesServicesResponse payload.
func DecodeService(b []byte) *proto.ServiceInfo { return proto.DecodeServiceInfo(b) }
