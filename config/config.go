package config

// Defaults used when no flag overrides them.
const (
	DefaultWidth = 100
	DefaultTheme = "catppuccin-frappe"
)

// Options holds the settings for a single filtering run.
type Options struct {
	// Width is the number of columns highlighted hunk lines are padded to.
	Width int
	// Light and Dark select colors appropriate for the terminal
	// background. Accepted but not consulted yet; reserved for theme
	// selection.
	Light bool
	Dark  bool
	// Theme is the chroma style name used for foreground colors.
	Theme string
}

// Default returns the options used when no flags are given.
func Default() Options {
	return Options{
		Width: DefaultWidth,
		Theme: DefaultTheme,
	}
}

// Normalize replaces out-of-range or missing values with defaults.
func (o Options) Normalize() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	return o
}
