package style

import (
	"path/filepath"
	"strings"
)

// ColorID is a 1-based palette slot. The zero value means "no group color"
// and renders unstyled.
type ColorID int

// Config is the immutable per-session snapshot of color rules. Colors are
// ANSI-256 codes kept as strings so the renderer can hand them straight to
// its styling layer.
type Config struct {
	Palette      []string
	Extensions   map[string]string
	SpecialFiles map[string]string

	DirectoryColor string
	FileColor      string

	TitleColor     string
	ActiveColor    string
	BorderColor    string
	FooterColor    string
	IndicatorColor string
	ErrorColor     string
	CleanColor     string
	DirtyColor     string
	MarqueeColor   string

	// AvoidAdjacentRepeat bumps a group color one palette slot forward when a
	// configured palette carries duplicate values back to back.
	AvoidAdjacentRepeat bool
}

// Default returns the built-in color scheme.
func Default() *Config {
	return &Config{
		Palette: []string{"33", "40", "170", "208", "45", "179", "161", "99"},
		Extensions: map[string]string{
			".go":   "81",
			".md":   "111",
			".json": "178",
			".yaml": "178",
			".yml":  "178",
			".sh":   "114",
			".rs":   "173",
			".py":   "220",
		},
		SpecialFiles: map[string]string{
			"Makefile":   "208",
			"Dockerfile": "39",
			"go.mod":     "172",
			"go.sum":     "242",
		},
		DirectoryColor:      "33",
		FileColor:           "252",
		TitleColor:          "45",
		ActiveColor:         "214",
		BorderColor:         "238",
		FooterColor:         "245",
		IndicatorColor:      "214",
		ErrorColor:          "196",
		CleanColor:          "40",
		DirtyColor:          "208",
		MarqueeColor:        "230",
		AvoidAdjacentRepeat: true,
	}
}

// ColorFor resolves the color for a single path. Directory paths (trailing
// separator) take the directory color, exact special-filename matches beat
// extension matches, and everything else falls back to the file default.
func ColorFor(path string, cfg *Config) string {
	if strings.HasSuffix(path, "/") {
		return cfg.DirectoryColor
	}
	base := filepath.Base(path)
	if color, ok := cfg.SpecialFiles[base]; ok {
		return color
	}
	if color, ok := cfg.Extensions[strings.ToLower(filepath.Ext(base))]; ok {
		return color
	}
	return cfg.FileColor
}

// AssignGroupColors walks a line list in order and assigns palette slots by
// encounter: every header advances one slot (wrapping) and content lines
// inherit the current group's slot. Lines before the first header get the
// zero color. The assignment depends only on the ordered input, never on
// scroll position, so re-rendering the same data reproduces the same colors.
func AssignGroupColors(headers []bool, cfg *Config) []ColorID {
	colors := make([]ColorID, len(headers))
	if len(cfg.Palette) == 0 {
		return colors
	}

	n := len(cfg.Palette)
	group := 0
	current := ColorID(0)
	for i, isHeader := range headers {
		if isHeader {
			id := ColorID(group%n + 1)
			group++
			if cfg.AvoidAdjacentRepeat && n > 1 && current != 0 &&
				cfg.PaletteColor(id) == cfg.PaletteColor(current) {
				id = ColorID(int(id)%n + 1)
			}
			current = id
		}
		colors[i] = current
	}
	return colors
}

// PaletteColor maps a ColorID back to its configured color code. The zero id
// has no color.
func (c *Config) PaletteColor(id ColorID) string {
	if id <= 0 || len(c.Palette) == 0 {
		return ""
	}
	return c.Palette[(int(id)-1)%len(c.Palette)]
}
