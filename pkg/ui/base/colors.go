package base

import "github.com/charmbracelet/lipgloss"

// ColorPalette defines a consistent color scheme
type ColorPalette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color

	// Command highlighting
	Keyword lipgloss.Color
	Number  lipgloss.Color
	Type    lipgloss.Color
}

// DarkPalette is the default dark theme palette
var DarkPalette = ColorPalette{
	Primary:   lipgloss.Color("#7C3AED"), // Purple
	Secondary: lipgloss.Color("#06B6D4"), // Cyan
	Accent:    lipgloss.Color("#10B981"), // Emerald
	Success:   lipgloss.Color("#10B981"),
	Warning:   lipgloss.Color("#F59E0B"), // Amber
	Error:     lipgloss.Color("#EF4444"), // Red
	Muted:     lipgloss.Color("#94A3B8"), // Slate
	Keyword:   lipgloss.Color("#FF79C6"),
	Number:    lipgloss.Color("#BD93F9"),
	Type:      lipgloss.Color("#8BE9FD"),
}

// LightPalette is used when the terminal has a light background
var LightPalette = ColorPalette{
	Primary:   lipgloss.Color("#5A56E0"),
	Secondary: lipgloss.Color("#0E7490"),
	Accent:    lipgloss.Color("#02BA84"),
	Success:   lipgloss.Color("#02BA84"),
	Warning:   lipgloss.Color("#FF8C00"),
	Error:     lipgloss.Color("#FF5F56"),
	Muted:     lipgloss.Color("#6B7280"),
	Keyword:   lipgloss.Color("#C026D3"),
	Number:    lipgloss.Color("#7C3AED"),
	Type:      lipgloss.Color("#0369A1"),
}

func adaptive(pick func(ColorPalette) lipgloss.Color) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Light: string(pick(LightPalette)),
		Dark:  string(pick(DarkPalette)),
	}
}

// Adaptive colors pick the light or dark palette entry at render time.
var (
	AdaptivePrimary   = adaptive(func(p ColorPalette) lipgloss.Color { return p.Primary })
	AdaptiveSecondary = adaptive(func(p ColorPalette) lipgloss.Color { return p.Secondary })
	AdaptiveSuccess   = adaptive(func(p ColorPalette) lipgloss.Color { return p.Success })
	AdaptiveWarning   = adaptive(func(p ColorPalette) lipgloss.Color { return p.Warning })
	AdaptiveError     = adaptive(func(p ColorPalette) lipgloss.Color { return p.Error })
	AdaptiveMuted     = adaptive(func(p ColorPalette) lipgloss.Color { return p.Muted })
	AdaptiveKeyword   = adaptive(func(p ColorPalette) lipgloss.Color { return p.Keyword })
	AdaptiveNumber    = adaptive(func(p ColorPalette) lipgloss.Color { return p.Number })
	AdaptiveType      = adaptive(func(p ColorPalette) lipgloss.Color { return p.Type })
)
