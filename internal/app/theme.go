package app

import (
	"image/color"

	"crosshair-overlay/pkg/colorutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CrosshairTheme is the dark theme of the settings window.
type CrosshairTheme struct{}

var _ fyne.Theme = (*CrosshairTheme)(nil)

func (t *CrosshairTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return colorutil.PanelBackground
	case theme.ColorNameForeground:
		return colorutil.White
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return colorutil.Accent
	case theme.ColorNameInputBackground, theme.ColorNameButton:
		return colorutil.Trough
	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (t *CrosshairTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *CrosshairTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *CrosshairTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 16
	default:
		return theme.DefaultTheme().Size(name)
	}
}
