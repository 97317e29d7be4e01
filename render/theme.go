package render

import "github.com/gdamore/tcell/v2"

// Theme is the palette for one color scheme
type Theme struct {
	Name       string
	Background tcell.Color
	Text       tcell.Color
	Dim        tcell.Color
	Accent     tcell.Color // logo and score
	Basket     tcell.Color
	Shield     tcell.Color
	Burn       tcell.Color
	Danger     tcell.Color
	PopupBg    tcell.Color
	BarEmpty   tcell.Color
}

var darkTheme = Theme{
	Name:       "dark",
	Background: tcell.NewRGBColor(26, 27, 38), // Tokyo Night background
	Text:       tcell.NewRGBColor(220, 220, 230),
	Dim:        tcell.NewRGBColor(120, 120, 140),
	Accent:     tcell.NewRGBColor(50, 255, 50),
	Basket:     tcell.NewRGBColor(205, 133, 63), // Peru brown
	Shield:     tcell.NewRGBColor(100, 150, 255),
	Burn:       tcell.NewRGBColor(255, 165, 0),
	Danger:     tcell.NewRGBColor(255, 80, 80),
	PopupBg:    tcell.NewRGBColor(60, 40, 80),
	BarEmpty:   tcell.NewRGBColor(50, 50, 50),
}

var lightTheme = Theme{
	Name:       "light",
	Background: tcell.NewRGBColor(245, 245, 235),
	Text:       tcell.NewRGBColor(30, 30, 40),
	Dim:        tcell.NewRGBColor(130, 130, 130),
	Accent:     tcell.NewRGBColor(0, 130, 0),
	Basket:     tcell.NewRGBColor(139, 69, 19), // Saddle brown
	Shield:     tcell.NewRGBColor(60, 100, 200),
	Burn:       tcell.NewRGBColor(200, 100, 0),
	Danger:     tcell.NewRGBColor(180, 50, 50),
	PopupBg:    tcell.NewRGBColor(230, 215, 245),
	BarEmpty:   tcell.NewRGBColor(210, 210, 210),
}

// ThemeByName returns the light theme for "light" and the dark theme otherwise
func ThemeByName(name string) Theme {
	if name == lightTheme.Name {
		return lightTheme
	}
	return darkTheme
}

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t.Name == lightTheme.Name {
		return darkTheme
	}
	return lightTheme
}

func (t Theme) base() tcell.Style {
	return tcell.StyleDefault.Background(t.Background).Foreground(t.Text)
}

func (t Theme) fg(c tcell.Color) tcell.Style {
	return t.base().Foreground(c)
}
