package config

import "testing"

func TestDefault(t *testing.T) {
	opts := Default()
	if opts.Width != DefaultWidth {
		t.Errorf("Width = %d, want %d", opts.Width, DefaultWidth)
	}
	if opts.Theme != DefaultTheme {
		t.Errorf("Theme = %q, want %q", opts.Theme, DefaultTheme)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        Options
		wantWidth int
		wantTheme string
	}{
		{
			name:      "zero value gets defaults",
			in:        Options{},
			wantWidth: DefaultWidth,
			wantTheme: DefaultTheme,
		},
		{
			name:      "negative width gets the default",
			in:        Options{Width: -5, Theme: "monokai"},
			wantWidth: DefaultWidth,
			wantTheme: "monokai",
		},
		{
			name:      "explicit values survive",
			in:        Options{Width: 120, Theme: "monokai"},
			wantWidth: 120,
			wantTheme: "monokai",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if got.Width != tt.wantWidth {
				t.Errorf("Width = %d, want %d", got.Width, tt.wantWidth)
			}
			if got.Theme != tt.wantTheme {
				t.Errorf("Theme = %q, want %q", got.Theme, tt.wantTheme)
			}
		})
	}
}
