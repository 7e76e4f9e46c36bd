package settingswindow

import (
	"strconv"

	"crosshair-overlay/internal/crosshair"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var (
	labelCellSize = fyne.NewSize(130, 36)
	valueCellSize = fyne.NewSize(56, 36)
)

// sliderRow is a label, a bounded slider and the slider's current value.
type sliderRow struct {
	field     crosshair.Field
	slider    *widget.Slider
	value     *widget.Label
	container fyne.CanvasObject
}

func newSliderRow(field crosshair.Field, initial float64, onChange func(crosshair.Field, float64)) *sliderRow {
	row := &sliderRow{field: field}

	row.slider = widget.NewSlider(field.Min, field.Max)
	// A zero step disables snapping, so fractional values such as the default
	// dot size are shown as stored.
	if field.Integer {
		row.slider.Step = 1
	} else {
		row.slider.Step = 0
	}
	row.slider.Value = initial

	row.value = widget.NewLabel(formatValue(initial))
	row.slider.OnChanged = func(v float64) {
		row.value.SetText(formatValue(v))
		onChange(field, v)
	}

	row.container = container.NewBorder(nil, nil,
		container.NewGridWrap(labelCellSize, widget.NewLabel(field.Label)),
		container.NewGridWrap(valueCellSize, row.value),
		row.slider,
	)
	return row
}

// set moves the slider without firing OnChanged.
func (r *sliderRow) set(v float64) {
	r.slider.Value = v
	r.slider.Refresh()
	r.value.SetText(formatValue(v))
}

// formatValue shows the whole-number part, as the value column is narrow.
func formatValue(v float64) string {
	return strconv.Itoa(int(v))
}
