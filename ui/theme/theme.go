package theme

// Theming for the crop tool: Tk widget styles plus the colours of the
// crop overlay drawn by the canvas. Both follow the same light/dark mode.

import (
	"image/color"

	"github.com/soocke/gripcrop/domain/crop"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PaletteSnapshot represents resolved colors for the active mode.
type PaletteSnapshot struct {
	AppBg     string
	Surface   string
	Primary   string
	Danger    string
	Text      string
	TextMuted string

	// Crop overlay
	Canvas       color.RGBA
	GripDefault  color.RGBA
	GripHover    color.RGBA
	GripSelected color.RGBA
	Rectangle    color.RGBA
}

var (
	light = PaletteSnapshot{
		AppBg:        "#f7f9fb",
		Surface:      "#ffffff",
		Primary:      "#2563eb",
		Danger:       "#dc2626",
		Text:         "#1e293b",
		TextMuted:    "#64748b",
		Canvas:       color.RGBA{0xd0, 0xd7, 0xde, 0xff},
		GripDefault:  color.RGBA{0x00, 0x00, 0xff, 0xff},
		GripHover:    color.RGBA{0x00, 0xff, 0x00, 0xff},
		GripSelected: color.RGBA{0xff, 0x00, 0x00, 0xff},
		Rectangle:    color.RGBA{0x00, 0x00, 0xff, 0xff},
	}
	dark = PaletteSnapshot{
		AppBg:        "#0f172a",
		Surface:      "#1e293b",
		Primary:      "#3b82f6",
		Danger:       "#ef4444",
		Text:         "#f1f5f9",
		TextMuted:    "#94a3b8",
		Canvas:       color.RGBA{0x33, 0x41, 0x55, 0xff},
		GripDefault:  color.RGBA{0x3b, 0x82, 0xf6, 0xff},
		GripHover:    color.RGBA{0x10, 0xb9, 0x81, 0xff},
		GripSelected: color.RGBA{0xef, 0x44, 0x44, 0xff},
		Rectangle:    color.RGBA{0x93, 0xc5, 0xfd, 0xff},
	}
)

// CurrentPalette returns colors for the current dark/light mode.
func CurrentPalette() PaletteSnapshot {
	if darkMode {
		return dark
	}
	return light
}

// OverlayPalette converts the current palette for the grip handler.
func OverlayPalette() crop.Palette {
	p := CurrentPalette()
	return crop.Palette{
		GripDefault:  p.GripDefault,
		GripHover:    p.GripHover,
		GripSelected: p.GripSelected,
		Rectangle:    p.Rectangle,
	}
}

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleStatusLabel   = "status.TLabel"
)

// internal flag for current mode
var darkMode bool

// InitStyles (re)applies styles for the current darkMode value.
func InitStyles() { applyStyles(CurrentPalette()) }

// SetDark toggles dark mode and reapplies styles. Returns new mode value.
func SetDark(d bool) bool {
	darkMode = d
	applyStyles(CurrentPalette())
	return darkMode
}

// ToggleDark flips dark mode and reapplies styles. Returns new mode value.
func ToggleDark() bool { return SetDark(!darkMode) }

// IsDark reports current mode.
func IsDark() bool { return darkMode }

func applyStyles(p PaletteSnapshot) {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(p.AppBg))

	StyleConfigure(StylePrimaryButton,
		Background(p.Primary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleDangerButton,
		Background(p.Danger),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleStatusLabel,
		Foreground(p.TextMuted),
		Background(p.Surface),
		Padding("2p 1p"),
	)
}
