package settingswindow

import (
	"testing"

	"crosshair-overlay/internal/app"
	"crosshair-overlay/internal/crosshair"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingOverlay writes through the state like the real overlay and counts renders.
type recordingOverlay struct {
	state   *app.State
	keys    []crosshair.Key
	renders int
}

func (r *recordingOverlay) UpdateSetting(key crosshair.Key, value float64) error {
	r.keys = append(r.keys, key)
	return r.state.Update(key, value)
}

func newTestWindow(t *testing.T) (*SettingsWindow, *recordingOverlay, *crosshair.Settings) {
	t.Helper()
	settings := crosshair.DefaultSettings()
	st := app.NewState(&settings)
	ov := &recordingOverlay{state: st}
	st.On(app.EventSettingsChanged, func(interface{}) { ov.renders++ })

	sw := New(test.NewApp(), st, ov, app.DefaultConfig())
	sw.Preview().Resize(fyne.NewSize(300, 300))
	return sw, ov, &settings
}

func TestSliderRanges(t *testing.T) {
	sw, _, _ := newTestWindow(t)

	for _, f := range crosshair.Fields() {
		row, ok := sw.rows[f.Key]
		require.True(t, ok, f.Key)
		assert.Equal(t, f.Min, row.slider.Min, f.Key)
		assert.Equal(t, f.Max, row.slider.Max, f.Key)
	}
	assert.InDelta(t, 3.78844, sw.rows[crosshair.KeyDotSize].slider.Value, 1e-9)
	assert.Equal(t, "3", sw.rows[crosshair.KeyDotSize].value.Text)
	assert.Equal(t, "20", sw.rows[crosshair.KeyLength].value.Text)
}

func TestDotSliderKeepsFractionAfterRefresh(t *testing.T) {
	sw, ov, settings := newTestWindow(t)
	row := sw.rows[crosshair.KeyDotSize]

	test.WidgetRenderer(row.slider)
	row.slider.Refresh()

	assert.InDelta(t, 3.78844, row.slider.Value, 1e-9)
	assert.InDelta(t, 3.78844, settings.DotSize, 1e-9)
	assert.Empty(t, ov.keys)

	sw.typeSelect.SetSelected("Circle")
	sw.typeSelect.SetSelected("Crosshair")
	row.slider.Refresh()

	assert.InDelta(t, settings.DotSize, row.slider.Value, 1e-9)
	assert.InDelta(t, 3.78844, row.slider.Value, 1e-9)
	assert.Empty(t, ov.keys)
}

func TestSliderWritesSettingAndRedraws(t *testing.T) {
	sw, ov, settings := newTestWindow(t)

	sw.rows[crosshair.KeyLength].slider.OnChanged(30.7)

	assert.Equal(t, 30.0, settings.Length, "integer sliders truncate")
	assert.Equal(t, []crosshair.Key{crosshair.KeyLength}, ov.keys)
	assert.Equal(t, 1, ov.renders)
	assert.Equal(t, "30", sw.rows[crosshair.KeyLength].value.Text)

	left := sw.Preview().Shapes()[0]
	assert.Equal(t, 24.0, left.Bounds.Width, "30 * 0.8")
}

func TestSliderLeavesOtherFields(t *testing.T) {
	sw, _, settings := newTestWindow(t)

	sw.rows[crosshair.KeyThickness].slider.OnChanged(4)

	want := crosshair.DefaultSettings()
	want.Thickness = 4
	assert.Equal(t, want, *settings)
}

func TestDotSizeSliderKeepsFraction(t *testing.T) {
	sw, _, settings := newTestWindow(t)

	sw.rows[crosshair.KeyDotSize].slider.OnChanged(2)
	assert.Equal(t, 2.0, settings.DotSize)

	var dot crosshair.Shape
	for _, s := range sw.Preview().Shapes() {
		if s.Part == crosshair.PartDot {
			dot = s
		}
	}
	assert.Equal(t, crosshair.KindRect, dot.Kind)
	assert.InDelta(t, 1.6, dot.Bounds.Width, 1e-9)

	sw.rows[crosshair.KeyDotSize].slider.OnChanged(2.5)
	assert.Equal(t, 2.5, settings.DotSize)
}

func TestColorSlidersTargetNestedColor(t *testing.T) {
	sw, _, settings := newTestWindow(t)

	sw.rows[crosshair.KeyGreen].slider.OnChanged(0)
	sw.rows[crosshair.KeyBlue].slider.OnChanged(128)
	sw.rows[crosshair.KeyAlpha].slider.OnChanged(200)

	assert.Equal(t, crosshair.Color{R: 255, G: 0, B: 128, A: 200}, settings.Color)
	for _, s := range sw.Preview().Shapes() {
		assert.Equal(t, "ff0080", s.Fill)
	}
}

func TestPresetSyncsSlidersWithoutWriting(t *testing.T) {
	sw, ov, settings := newTestWindow(t)

	sw.typeSelect.SetSelected("Circle")

	assert.Equal(t, 15.0, settings.CircleRadius)
	assert.Equal(t, 15.0, sw.rows[crosshair.KeyCircleRadius].slider.Value)
	assert.Equal(t, "255", sw.rows[crosshair.KeyOutlineOpacity].value.Text)
	assert.Empty(t, ov.keys, "syncing sliders must not write back")

	var ring bool
	for _, s := range sw.Preview().Shapes() {
		if s.Part == crosshair.PartRing {
			ring = true
			assert.NotEmpty(t, s.Outline)
			assert.InDelta(t, 24.0, s.Bounds.Width, 1e-9)
		}
	}
	assert.True(t, ring)
}

func TestSliderAfterPresetIsCustom(t *testing.T) {
	sw, _, settings := newTestWindow(t)

	sw.typeSelect.SetSelected("Dot")
	assert.Equal(t, 0.0, settings.Length)

	sw.rows[crosshair.KeyLength].slider.OnChanged(12)
	assert.Equal(t, crosshair.PresetCustom, sw.typeSelect.Selected)
	assert.Equal(t, 12.0, settings.Length)
	assert.Equal(t, 4.0, settings.DotSize, "switching to custom keeps the preset values")
}

func TestWindowTitle(t *testing.T) {
	sw, _, _ := newTestWindow(t)
	assert.Equal(t, windowTitle, sw.Title())
}
