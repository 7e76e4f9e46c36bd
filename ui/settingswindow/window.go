// Package settingswindow provides the window with the crosshair controls and preview.
package settingswindow

import (
	"log"

	"crosshair-overlay/internal/app"
	"crosshair-overlay/internal/crosshair"
	"crosshair-overlay/internal/version"
	"crosshair-overlay/pkg/colorutil"
	"crosshair-overlay/ui/canvas"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const windowTitle = "Crosshair Settings"

// Updater writes one setting and renders the overlay.
type Updater interface {
	UpdateSetting(key crosshair.Key, value float64) error
}

// SettingsWindow holds the sliders bound to the shared settings and a scaled preview.
type SettingsWindow struct {
	fyne.Window
	app     fyne.App
	state   *app.State
	overlay Updater
	cfg     app.Config

	preview    *canvas.CrosshairCanvas
	typeSelect *widget.Select
	rows       map[crosshair.Key]*sliderRow
}

// New creates the settings window. Closing it quits the application.
func New(fyneApp fyne.App, state *app.State, overlay Updater, cfg app.Config) *SettingsWindow {
	sw := &SettingsWindow{
		Window:  fyneApp.NewWindow(windowTitle),
		app:     fyneApp,
		state:   state,
		overlay: overlay,
		cfg:     cfg,
		rows:    make(map[crosshair.Key]*sliderRow),
	}

	sw.setupUI()
	sw.setupEventHandlers()

	sw.Resize(fyne.NewSize(cfg.SettingsWidth, cfg.SettingsHeight))
	sw.SetMaster()
	sw.SetOnClosed(func() {
		log.Println("settings: window closed, exiting")
		sw.app.Quit()
	})

	return sw
}

// Preview returns the preview surface.
func (sw *SettingsWindow) Preview() *canvas.CrosshairCanvas {
	return sw.preview
}

// setupUI lays out the controls on the left and the preview on the right.
func (sw *SettingsWindow) setupUI() {
	previewSize := fyne.NewSize(sw.cfg.PreviewSize, sw.cfg.PreviewSize)
	sw.preview = canvas.NewCrosshairCanvas(sw.state.Snapshot,
		canvas.WithScale(sw.cfg.PreviewScale),
		canvas.WithBackground(colorutil.PreviewBackground),
		canvas.WithRetryDelay(sw.cfg.PreviewRetryDelay),
		canvas.WithMinSize(previewSize),
	)

	sw.typeSelect = widget.NewSelect(crosshair.PresetNames(), sw.onTypeSelected)
	sw.typeSelect.SetSelected(crosshair.PresetCustom)

	controls := container.NewVBox(
		heading("Crosshair Settings", 16),
		container.NewBorder(nil, nil,
			container.NewGridWrap(labelCellSize, widget.NewLabel("Type")), nil,
			sw.typeSelect,
		),
	)

	settings := sw.state.Snapshot()
	group := crosshair.GroupShape
	for _, field := range crosshair.Fields() {
		if field.Group != group {
			group = field.Group
			controls.Add(heading("Color Settings", 14))
		}
		initial, err := settings.Get(field.Key)
		if err != nil {
			log.Printf("settings: %v", err)
		}
		row := newSliderRow(field, initial, sw.onSliderChanged)
		sw.rows[field.Key] = row
		controls.Add(row.container)
	}

	about := widget.NewLabel("v" + version.Version)
	about.Importance = widget.LowImportance

	previewPanel := container.NewStack(
		fynecanvas.NewRectangle(colorutil.PreviewBackground),
		container.NewCenter(sw.preview),
	)

	split := container.NewHSplit(
		container.NewBorder(nil, about, nil, nil, container.NewVScroll(controls)),
		previewPanel,
	)
	split.SetOffset(0.5)

	sw.SetContent(container.NewPadded(split))
	sw.preview.Redraw()
}

func heading(text string, size float32) fyne.CanvasObject {
	t := fynecanvas.NewText(text, colorutil.White)
	t.TextSize = size
	t.TextStyle = fyne.TextStyle{Bold: true}
	return t
}

// setupEventHandlers keeps the preview and sliders in step with the shared settings.
func (sw *SettingsWindow) setupEventHandlers() {
	sw.state.On(app.EventSettingsChanged, func(interface{}) {
		sw.preview.Redraw()
	})
	sw.state.On(app.EventPresetApplied, func(interface{}) {
		sw.syncSliders()
		sw.preview.Redraw()
	})
}

// onSliderChanged writes the slider value through the overlay; the settings
// change event then redraws the preview.
func (sw *SettingsWindow) onSliderChanged(field crosshair.Field, raw float64) {
	if err := sw.overlay.UpdateSetting(field.Key, field.Convert(raw)); err != nil {
		log.Printf("settings: %v", err)
		return
	}
	if sw.typeSelect.Selected != crosshair.PresetCustom {
		sw.typeSelect.SetSelected(crosshair.PresetCustom)
	}
}

func (sw *SettingsWindow) onTypeSelected(name string) {
	if name == crosshair.PresetCustom {
		return
	}
	if err := sw.state.ApplyPreset(name); err != nil {
		log.Printf("settings: %v", err)
	}
}

// syncSliders moves every slider to the current setting without writing back.
func (sw *SettingsWindow) syncSliders() {
	settings := sw.state.Snapshot()
	for key, row := range sw.rows {
		v, err := settings.Get(key)
		if err != nil {
			continue
		}
		row.set(v)
	}
}
