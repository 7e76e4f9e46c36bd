// Package main provides the entry point for the crosshair overlay.
package main

import (
	"log"

	"crosshair-overlay/internal/app"
	"crosshair-overlay/internal/crosshair"
	"crosshair-overlay/internal/version"
	"crosshair-overlay/ui/overlay"
	"crosshair-overlay/ui/settingswindow"

	fyneapp "fyne.io/fyne/v2/app"
)

const appTitle = "Crosshair Overlay"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.String())

	cfg := app.DefaultConfig()

	fyneApp := fyneapp.NewWithID(cfg.AppID)
	fyneApp.Settings().SetTheme(&app.CrosshairTheme{})

	// One settings record for the whole process, shared by both windows.
	settings := crosshair.DefaultSettings()
	state := app.NewState(&settings)

	// The overlay registers its listeners first so it redraws before the preview.
	ov := overlay.New(fyneApp, state, overlay.NewChrome(), cfg)
	win := settingswindow.New(fyneApp, state, ov, cfg)

	ov.Show()
	win.ShowAndRun()
	log.Printf("%s stopped", appTitle)
}
