package client

import (
	"fmt"

	"github.com/esphome/esphomeapi-go/internal/core"
	"github.com/esphome/esphomeapi-go/internal/proto"
)

// Domain identifies which of ESPHome's entity kinds an EntityInfo/EntityState
// describes.
type Domain string

const (
	DomainAlarmControlPanel Domain = "alarm_control_panel"
	DomainBinarySensor      Domain = "binary_sensor"
	DomainButton            Domain = "button"
	DomainCamera            Domain = "camera"
	DomainClimate           Domain = "climate"
	DomainCover             Domain = "cover"
	DomainDate              Domain = "date"
	DomainDateTime          Domain = "datetime"
	DomainEvent             Domain = "event"
	DomainFan               Domain = "fan"
	DomainLight             Domain = "light"
	DomainLock              Domain = "lock"
	DomainMediaPlayer       Domain = "media_player"
	DomainNumber            Domain = "number"
	DomainSelect            Domain = "select"
	DomainSensor            Domain = "sensor"
	DomainSwitch            Domain = "switch"
	DomainText              Domain = "text"
	DomainTextSensor        Domain = "text_sensor"
	DomainTime              Domain = "time"
	DomainUpdate            Domain = "update"
	DomainValve             Domain = "valve"
)

var infoDomainByType = map[uint32]Domain{
	proto.TypeListEntitiesAlarmControlPanelResponse: DomainAlarmControlPanel,
	proto.TypeListEntitiesBinarySensorResponse:      DomainBinarySensor,
	proto.TypeListEntitiesButtonResponse:            DomainButton,
	proto.TypeListEntitiesCameraResponse:            DomainCamera,
	proto.TypeListEntitiesClimateResponse:           DomainClimate,
	proto.TypeListEntitiesCoverResponse:             DomainCover,
	proto.TypeListEntitiesDateResponse:              DomainDate,
	proto.TypeListEntitiesDateTimeResponse:          DomainDateTime,
	proto.TypeListEntitiesEventResponse:             DomainEvent,
	proto.TypeListEntitiesFanResponse:               DomainFan,
	proto.TypeListEntitiesLightResponse:             DomainLight,
	proto.TypeListEntitiesLockResponse:              DomainLock,
	proto.TypeListEntitiesMediaPlayerResponse:       DomainMediaPlayer,
	proto.TypeListEntitiesNumberResponse:            DomainNumber,
	proto.TypeListEntitiesSelectResponse:            DomainSelect,
	proto.TypeListEntitiesSensorResponse:            DomainSensor,
	proto.TypeListEntitiesSwitchResponse:            DomainSwitch,
	proto.TypeListEntitiesTextResponse:              DomainText,
	proto.TypeListEntitiesTextSensorResponse:        DomainTextSensor,
	proto.TypeListEntitiesTimeResponse:              DomainTime,
	proto.TypeListEntitiesUpdateResponse:            DomainUpdate,
	proto.TypeListEntitiesValveResponse:             DomainValve,
}

var stateDomainByType = map[uint32]Domain{
	proto.TypeAlarmControlPanelStateResponse: DomainAlarmControlPanel,
	proto.TypeBinarySensorStateResponse:      DomainBinarySensor,
	proto.TypeClimateStateResponse:           DomainClimate,
	proto.TypeCoverStateResponse:             DomainCover,
	proto.TypeDateStateResponse:              DomainDate,
	proto.TypeDateTimeStateResponse:          DomainDateTime,
	proto.TypeEventStateResponse:             DomainEvent,
	proto.TypeFanStateResponse:               DomainFan,
	proto.TypeLightStateResponse:             DomainLight,
	proto.TypeLockStateResponse:              DomainLock,
	proto.TypeMediaPlayerStateResponse:       DomainMediaPlayer,
	proto.TypeNumberStateResponse:            DomainNumber,
	proto.TypeSelectStateResponse:            DomainSelect,
	proto.TypeSensorStateResponse:            DomainSensor,
	proto.TypeSwitchStateResponse:            DomainSwitch,
	proto.TypeTextStateResponse:              DomainText,
	proto.TypeTextSensorStateResponse:        DomainTextSensor,
	proto.TypeTimeStateResponse:              DomainTime,
	proto.TypeUpdateStateResponse:            DomainUpdate,
	proto.TypeValveStateResponse:             DomainValve,
}

// EntityInfo is one entity reported during enumeration. Detail holds the
// domain-specific descriptor (one of the proto.*Info types); use the
// As* helpers to recover it without a type assertion at the call site.
type EntityInfo struct {
	Domain   Domain
	Key      uint32
	ObjectID string
	Name     string
	UniqueID string
	Detail   any
}

func newEntityInfo(typeID uint32, payload []byte) (EntityInfo, error) {
	domain, ok := infoDomainByType[typeID]
	if !ok {
		return EntityInfo{}, fmt.Errorf("%w: %d", core.ErrUnknownMessageType, typeID)
	}
	detail := core.ListEntitiesDecoders[typeID](payload)

	key, objectID, name, uniqueID := baseInfoFields(detail)
	return EntityInfo{
		Domain:   domain,
		Key:      key,
		ObjectID: objectID,
		Name:     name,
		UniqueID: uniqueID,
		Detail:   detail,
	}, nil
}

// baseInfoFields extracts the fields every proto.*Info struct shares
// through its embedded base, without needing 22 repetitive type switches
// at every call site that only wants the common identity fields.
func baseInfoFields(detail any) (key uint32, objectID, name, uniqueID string) {
	switch d := detail.(type) {
	case *proto.AlarmControlPanelInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	case *proto.BinarySensorInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	case *proto.ButtonInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	case *proto.CameraInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	case *proto.ClimateInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	case *proto.CoverInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	case *proto.DateInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	case *proto.DateTimeInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	case *proto.EventInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	case *proto.FanInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	case *proto.LightInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	case *proto.LockInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	case *proto.MediaPlayerInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	case *proto.NumberInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	case *proto.SelectInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	case *proto.SensorInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	case *proto.SwitchInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	case *proto.TextInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	case *proto.TextSensorInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	case *proto.TimeInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	case *proto.UpdateInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	case *proto.ValveInfo:
		return d.Key, d.ObjectID, d.Name, d.UniqueID
	default:
		return 0, "", "", ""
	}
}

// EntityState is one state update, either from the initial subscription
// burst or a later push. Value holds the domain-specific payload (one of
// the proto.*State types).
type EntityState struct {
	Domain Domain
	Key    uint32
	Value  any
}

func newEntityState(typeID uint32, payload []byte) (EntityState, error) {
	domain, ok := stateDomainByType[typeID]
	if !ok {
		return EntityState{}, fmt.Errorf("%w: %d", core.ErrUnknownMessageType, typeID)
	}
	value := core.StateDecoders[typeID](payload)
	key := stateKey(value)
	return EntityState{Domain: domain, Key: key, Value: value}, nil
}

func stateKey(value any) uint32 {
	switch v := value.(type) {
	case *proto.AlarmControlPanelState:
		return v.Key
	case *proto.BinarySensorState:
		return v.Key
	case *proto.ClimateState:
		return v.Key
	case *proto.CoverState:
		return v.Key
	case *proto.DateState:
		return v.Key
	case *proto.DateTimeState:
		return v.Key
	case *proto.EventState:
		return v.Key
	case *proto.FanState:
		return v.Key
	case *proto.LightState:
		return v.Key
	case *proto.LockState:
		return v.Key
	case *proto.MediaPlayerState:
		return v.Key
	case *proto.NumberState:
		return v.Key
	case *proto.SelectState:
		return v.Key
	case *proto.SensorState:
		return v.Key
	case *proto.SwitchState:
		return v.Key
	case *proto.TextState:
		return v.Key
	case *proto.TextSensorState:
		return v.Key
	case *proto.TimeState:
		return v.Key
	case *proto.UpdateState:
		return v.Key
	case *proto.ValveState:
		return v.Key
	default:
		return 0
	}
}

// AsSwitchState recovers the switch-domain payload from an EntityState,
// returning ErrStateTypeMismatch if s is not a switch state.
func AsSwitchState(s EntityState) (*proto.SwitchState, error) {
	v, ok := s.Value.(*proto.SwitchState)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrStateTypeMismatch, s.Domain)
	}
	return v, nil
}

// AsLightState recovers the light-domain payload from an EntityState,
// returning ErrStateTypeMismatch if s is not a light state.
func AsLightState(s EntityState) (*proto.LightState, error) {
	v, ok := s.Value.(*proto.LightState)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrStateTypeMismatch, s.Domain)
	}
	return v, nil
}

// AsSensorState recovers the sensor-domain payload from an EntityState,
// returning ErrStateTypeMismatch if s is not a sensor state.
func AsSensorState(s EntityState) (*proto.SensorState, error) {
	v, ok := s.Value.(*proto.SensorState)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrStateTypeMismatch, s.Domain)
	}
	return v, nil
}
