package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinarySensorInfoEncodeDecode(t *testing.T) {
	info := &BinarySensorInfo{
		baseEntityInfo: baseEntityInfo{
			ObjectID: "front_door",
			Key:      123,
			Name:     "Front Door",
			UniqueID: "front_door_binary_sensor",
		},
		DeviceClass: "door",
	}

	got := DecodeBinarySensorInfo(info.Encode())
	require.Equal(t, info.ObjectID, got.ObjectID)
	require.Equal(t, info.Key, got.Key)
	require.Equal(t, info.Name, got.Name)
	require.Equal(t, info.UniqueID, got.UniqueID)
	require.Equal(t, info.DeviceClass, got.DeviceClass)
}

func TestClimateInfoRepeatedFields(t *testing.T) {
	info := &ClimateInfo{
		baseEntityInfo:    baseEntityInfo{Key: 9},
		SupportedModes:    []int32{0, 1, 2},
		SupportedPresets:  []int32{0, 3},
	}

	got := DecodeClimateInfo(info.Encode())
	require.Equal(t, info.SupportedModes, got.SupportedModes)
	require.Equal(t, info.SupportedPresets, got.SupportedPresets)
}

func TestServiceInfoEncodeDecode(t *testing.T) {
	svc := &ServiceInfo{
		Name: "restart",
		Key:  5,
		Args: []ServiceArgument{
			{Name: "delay", Type: ServiceArgInt},
			{Name: "reason", Type: ServiceArgString},
		},
	}

	got := DecodeServiceInfo(svc.Encode())
	require.Equal(t, svc.Name, got.Name)
	require.Equal(t, svc.Key, got.Key)
	require.Equal(t, svc.Args, got.Args)
}
