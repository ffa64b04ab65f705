// Package theme wraps the default fyne theme with an optional CJK font
// chosen once at start-up.
package theme

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// GlyphTextSize is used for the large character on the detail screen.
const GlyphTextSize = 50

type Theme struct {
	base fyne.Theme
	font fyne.Resource
}

// New loads fontPath if given. An empty path keeps the toolkit fonts.
func New(fontPath string) (*Theme, error) {
	t := &Theme{base: fynetheme.DefaultTheme()}
	if fontPath == "" {
		return t, nil
	}

	res, err := fyne.LoadResourceFromPath(fontPath)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", fontPath, err)
	}
	t.font = res
	return t, nil
}

func (t *Theme) HasCustomFont() bool {
	return t.font != nil
}

func (t *Theme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return t.base.Color(name, variant)
}

func (t *Theme) Font(style fyne.TextStyle) fyne.Resource {
	if t.font != nil && !style.Monospace && !style.Symbol {
		return t.font
	}
	return t.base.Font(style)
}

func (t *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *Theme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}
