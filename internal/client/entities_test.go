package client

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/esphome/esphomeapi-go/internal/proto"
)

func TestNewEntityInfoDispatchesByType(t *testing.T) {
	info := &proto.SwitchInfo{AssumedState: true, DeviceClass: "outlet"}
	info.ObjectID = "kitchen_switch"
	info.Key = 42
	info.Name = "Kitchen Switch"
	info.UniqueID = "kitchen_switch_uid"

	got, err := newEntityInfo(proto.TypeListEntitiesSwitchResponse, info.Encode())
	require.NoError(t, err)

	require.Equal(t, DomainSwitch, got.Domain)
	require.Equal(t, uint32(42), got.Key)
	require.Equal(t, "kitchen_switch", got.ObjectID)
	require.Equal(t, "Kitchen Switch", got.Name)
	require.Equal(t, "kitchen_switch_uid", got.UniqueID)

	detail, ok := got.Detail.(*proto.SwitchInfo)
	require.True(t, ok)
	require.True(t, detail.AssumedState)
	require.Equal(t, "outlet", detail.DeviceClass)
}

func TestNewEntityInfoUnknownType(t *testing.T) {
	_, err := newEntityInfo(999999, nil)
	require.Error(t, err)
}

func TestNewEntityStateDispatchesByType(t *testing.T) {
	state := &proto.LightState{Key: 7, State: true, Brightness: 0.5, Effect: "rainbow"}

	got, err := newEntityState(proto.TypeLightStateResponse, state.Encode())
	require.NoError(t, err)

	require.Equal(t, DomainLight, got.Domain)
	require.Equal(t, uint32(7), got.Key)

	light, err := AsLightState(got)
	require.NoError(t, err)
	require.True(t, light.State)
	require.Equal(t, "rainbow", light.Effect)
}

func TestNewEntityStateUnknownType(t *testing.T) {
	_, err := newEntityState(999999, nil)
	require.Error(t, err)
}

func TestAsSwitchStateMismatch(t *testing.T) {
	state := &proto.SensorState{Key: 1, State: 3.2}
	got, err := newEntityState(proto.TypeSensorStateResponse, state.Encode())
	require.NoError(t, err)

	_, err = AsSwitchState(got)
	require.ErrorIs(t, err, ErrStateTypeMismatch)
}

func TestAsSensorStateRoundTrip(t *testing.T) {
	state := &proto.SensorState{Key: 9, State: 21.5}
	got, err := newEntityState(proto.TypeSensorStateResponse, state.Encode())
	require.NoError(t, err)

	sensor, err := AsSensorState(got)
	require.NoError(t, err)
	require.InDelta(t, 21.5, sensor.State, 0.001)
}
