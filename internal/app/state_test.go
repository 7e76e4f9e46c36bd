package app

import (
	"testing"

	"crosshair-overlay/internal/crosshair"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateSharesSettingsByReference(t *testing.T) {
	settings := crosshair.DefaultSettings()
	s := NewState(&settings)

	require.NoError(t, s.Update(crosshair.KeyLength, 35))
	assert.Equal(t, 35.0, settings.Length, "the injected record is mutated in place")
	assert.Same(t, &settings, s.Settings())
}

func TestNewStateWithoutSettingsUsesDefaults(t *testing.T) {
	s := NewState(nil)
	assert.Equal(t, crosshair.DefaultSettings(), s.Snapshot())
}

func TestUpdateEmitsChangedKey(t *testing.T) {
	s := NewState(nil)

	var got []crosshair.Key
	s.On(EventSettingsChanged, func(data interface{}) {
		got = append(got, data.(crosshair.Key))
	})

	require.NoError(t, s.Update(crosshair.KeyThickness, 4))
	require.NoError(t, s.Update(crosshair.KeyBlue, 12))

	assert.Equal(t, []crosshair.Key{crosshair.KeyThickness, crosshair.KeyBlue}, got)

	want := crosshair.DefaultSettings()
	want.Thickness = 4
	want.Color.B = 12
	assert.Equal(t, want, s.Snapshot())
}

func TestUpdateUnknownKeyDoesNotEmit(t *testing.T) {
	s := NewState(nil)
	called := false
	s.On(EventSettingsChanged, func(interface{}) { called = true })

	err := s.Update(crosshair.Key("bogus"), 1)
	assert.ErrorIs(t, err, crosshair.ErrUnknownKey)
	assert.False(t, called)
}

func TestListenersRunInRegistrationOrder(t *testing.T) {
	s := NewState(nil)
	var order []string
	s.On(EventSettingsChanged, func(interface{}) { order = append(order, "overlay") })
	s.On(EventSettingsChanged, func(interface{}) { order = append(order, "preview") })

	require.NoError(t, s.Update(crosshair.KeyDotSize, 2))
	assert.Equal(t, []string{"overlay", "preview"}, order)
}

func TestListenerSeesNewValue(t *testing.T) {
	s := NewState(nil)
	var seen float64
	s.On(EventSettingsChanged, func(interface{}) { seen = s.Snapshot().CircleRadius })

	require.NoError(t, s.Update(crosshair.KeyCircleRadius, 30))
	assert.Equal(t, 30.0, seen)
}

func TestApplyPreset(t *testing.T) {
	s := NewState(nil)
	var applied string
	s.On(EventPresetApplied, func(data interface{}) { applied = data.(string) })

	require.NoError(t, s.ApplyPreset("Dot"))
	assert.Equal(t, "Dot", applied)
	assert.Equal(t, 0.0, s.Snapshot().Length)

	assert.Error(t, s.ApplyPreset("Hexagon"))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, float32(200), cfg.OverlaySize)
	assert.Equal(t, 0.8, cfg.PreviewScale)
	assert.Positive(t, cfg.PreviewRetryDelay)
	assert.NotEmpty(t, cfg.AppID)
}
