package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kk-code-lab/repodash/internal/style"
)

// Theme is the style config compiled into lipgloss styles the renderer can
// apply directly. Built once per session alongside the renderer.
type Theme struct {
	cfg *style.Config

	Title       lipgloss.Style
	ActiveTitle lipgloss.Style
	Border      lipgloss.Style
	Footer      lipgloss.Style
	Indicator   lipgloss.Style
	Error       lipgloss.Style
	Clean       lipgloss.Style
	Dirty       lipgloss.Style
	Marquee     lipgloss.Style
}

// NewTheme compiles the color config into concrete styles.
func NewTheme(cfg *style.Config) Theme {
	return Theme{
		cfg:         cfg,
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.TitleColor)).Bold(true),
		ActiveTitle: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.ActiveColor)).Bold(true),
		Border:      lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.BorderColor)),
		Footer:      lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.FooterColor)),
		Indicator:   lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.IndicatorColor)),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.ErrorColor)),
		Clean:       lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.CleanColor)),
		Dirty:       lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.DirtyColor)).Bold(true),
		Marquee:     lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.MarqueeColor)),
	}
}

// Group returns the style for a content line carrying a group color. The
// zero id renders unstyled.
func (t Theme) Group(id style.ColorID) lipgloss.Style {
	color := t.cfg.PaletteColor(id)
	if color == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// Header returns the bold variant used for a group's header line.
func (t Theme) Header(id style.ColorID) lipgloss.Style {
	return t.Group(id).Bold(true)
}

// File resolves a path to its per-type style.
func (t Theme) File(path string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(style.ColorFor(path, t.cfg)))
}

// MarqueeText styles an activity row: file types with a configured color
// keep it, everything else takes the marquee highlight color instead of the
// plain file default.
func (t Theme) MarqueeText(path string) lipgloss.Style {
	color := style.ColorFor(path, t.cfg)
	if color == t.cfg.FileColor {
		color = t.cfg.MarqueeColor
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
