package style

import (
	"encoding/json"
	"fmt"
	"os"
)

// fileConfig mirrors Config with optional fields so a style file can override
// any subset of the defaults.
type fileConfig struct {
	Palette      []string          `json:"palette"`
	Extensions   map[string]string `json:"extensions"`
	SpecialFiles map[string]string `json:"specialFiles"`

	DirectoryColor *string `json:"directoryColor"`
	FileColor      *string `json:"fileColor"`
	TitleColor     *string `json:"titleColor"`
	ActiveColor    *string `json:"activeColor"`
	BorderColor    *string `json:"borderColor"`
	FooterColor    *string `json:"footerColor"`
	IndicatorColor *string `json:"indicatorColor"`
	ErrorColor     *string `json:"errorColor"`
	CleanColor     *string `json:"cleanColor"`
	DirtyColor     *string `json:"dirtyColor"`
	MarqueeColor   *string `json:"marqueeColor"`

	AvoidAdjacentRepeat *bool `json:"avoidAdjacentRepeat"`
}

// Load returns the default config merged with the style file at path. An
// empty path returns plain defaults. On a read or parse failure the defaults
// are returned together with the error, so the caller can log the problem and
// keep running.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read style file: %w", err)
	}
	var overlay fileConfig
	if err := json.Unmarshal(data, &overlay); err != nil {
		return cfg, fmt.Errorf("parse style file: %w", err)
	}

	if len(overlay.Palette) > 0 {
		cfg.Palette = overlay.Palette
	}
	for ext, color := range overlay.Extensions {
		cfg.Extensions[ext] = color
	}
	for name, color := range overlay.SpecialFiles {
		cfg.SpecialFiles[name] = color
	}

	applyColor(&cfg.DirectoryColor, overlay.DirectoryColor)
	applyColor(&cfg.FileColor, overlay.FileColor)
	applyColor(&cfg.TitleColor, overlay.TitleColor)
	applyColor(&cfg.ActiveColor, overlay.ActiveColor)
	applyColor(&cfg.BorderColor, overlay.BorderColor)
	applyColor(&cfg.FooterColor, overlay.FooterColor)
	applyColor(&cfg.IndicatorColor, overlay.IndicatorColor)
	applyColor(&cfg.ErrorColor, overlay.ErrorColor)
	applyColor(&cfg.CleanColor, overlay.CleanColor)
	applyColor(&cfg.DirtyColor, overlay.DirtyColor)
	applyColor(&cfg.MarqueeColor, overlay.MarqueeColor)

	if overlay.AvoidAdjacentRepeat != nil {
		cfg.AvoidAdjacentRepeat = *overlay.AvoidAdjacentRepeat
	}
	return cfg, nil
}

func applyColor(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}
