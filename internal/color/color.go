package color

import "github.com/fatih/color"

var (
	FgRed     = color.New(color.FgRed).SprintFunc()
	FgGreen   = color.New(color.FgGreen).SprintFunc()
	FgMagenta = color.New(color.FgMagenta).SprintFunc()
	FgCyan    = color.New(color.FgCyan).SprintFunc()
)

// Marker pairs a foreground style for message text with a background style
// for the short badge printed in front of it.
type Marker struct {
	Text       func(a ...interface{}) string
	Background func(a ...interface{}) string
}

func newMarker(fg, bg color.Attribute) Marker {
	return Marker{
		Text:       color.New(fg).SprintFunc(),
		Background: color.New(bg).SprintFunc(),
	}
}

var (
	Info    = newMarker(color.FgBlue, color.BgBlue)
	Error   = newMarker(color.FgRed, color.BgRed)
	Warn    = newMarker(color.FgYellow, color.BgYellow)
	Success = newMarker(color.FgGreen, color.BgGreen)
)
