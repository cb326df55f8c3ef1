package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinarySensorStateEncodeDecode(t *testing.T) {
	state := &BinarySensorState{Key: 1, State: true}
	got := DecodeBinarySensorState(state.Encode())
	require.Equal(t, state.Key, got.Key)
	require.True(t, got.State)
	require.False(t, got.MissingState)
}

func TestLightStateEncodeDecode(t *testing.T) {
	state := &LightState{
		Key:         4,
		State:       true,
		Brightness:  0.8,
		Red:         1,
		Green:       0.5,
		Blue:        0,
		Effect:      "rainbow",
	}
	got := DecodeLightState(state.Encode())
	require.Equal(t, state.Key, got.Key)
	require.True(t, got.State)
	require.Equal(t, state.Brightness, got.Brightness)
	require.Equal(t, state.Red, got.Red)
	require.Equal(t, state.Green, got.Green)
	require.Equal(t, state.Effect, got.Effect)
}

func TestUpdateStateEncodeDecode(t *testing.T) {
	state := &UpdateState{
		Key:            2,
		InProgress:     true,
		CurrentVersion: "1.0.0",
		LatestVersion:  "1.1.0",
	}
	got := DecodeUpdateState(state.Encode())
	require.Equal(t, state.Key, got.Key)
	require.True(t, got.InProgress)
	require.Equal(t, state.CurrentVersion, got.CurrentVersion)
	require.Equal(t, state.LatestVersion, got.LatestVersion)
}
