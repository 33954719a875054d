package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	statepkg "github.com/kk-code-lab/repodash/internal/state"
	"github.com/kk-code-lab/repodash/internal/style"
	"github.com/kk-code-lab/repodash/internal/textutil"
)

const (
	upIndicator   = "▲"
	downIndicator = "▼"
	activeMarker  = "▸ "
	cleanBadge    = "[clean]"
	dirtyBadge    = "[dirty]"
	tooSmallText  = "terminal too small"
)

// Renderer draws full dashboard frames into a terminal output stream using
// cursor positioning and color escapes. It holds no frame state; every
// Render is a complete redraw of the screen.
type Renderer struct {
	out   io.Writer
	theme Theme
}

func NewRenderer(out io.Writer, theme Theme) *Renderer {
	return &Renderer{out: out, theme: theme}
}

// Render redraws the whole screen from the current state. now drives the
// scroll-animation progress overlay and the footer age display.
func (r *Renderer) Render(s *statepkg.AppState, now time.Time) {
	frame := ComputeFrame(s.Width, s.Height)
	if frame.TooSmall {
		r.renderTooSmall(s)
		return
	}

	for i, row := range r.frameRows(s, frame, now) {
		fmt.Fprintf(r.out, "\x1b[%d;1H\x1b[2K", i+1)
		io.WriteString(r.out, row)
	}
}

// renderTooSmall degrades to a single centered message instead of layout
// math that a tiny terminal would break.
func (r *Renderer) renderTooSmall(s *statepkg.AppState) {
	io.WriteString(r.out, "\x1b[2J")
	row := s.Height / 2
	if row < 1 {
		row = 1
	}
	col := (s.Width-textutil.DisplayWidth(tooSmallText))/2 + 1
	if col < 1 {
		col = 1
	}
	fmt.Fprintf(r.out, "\x1b[%d;%dH%s", row, col, r.theme.Error.Render(tooSmallText))
}

// frameRows composes the full frame as one styled string per terminal row,
// top to bottom: title bar, separator, content rows, separator, footer.
func (r *Renderer) frameRows(s *statepkg.AppState, frame Frame, now time.Time) []string {
	rows := make([]string, 0, frame.Height)
	separator := r.theme.Border.Render(strings.Repeat("─", frame.Width))

	rows = append(rows, r.titleRow(s, frame))
	rows = append(rows, separator)
	for i := 0; i < frame.ContentRows; i++ {
		rows = append(rows, r.contentRow(s, frame, i, now))
	}
	rows = append(rows, separator)
	rows = append(rows, r.footerRow(s, frame, now))
	return rows
}

// titleRow carries the three pane titles; the active pane gets a marker and
// the highlight color so arrow keys have a visible target.
func (r *Renderer) titleRow(s *statepkg.AppState, frame Frame) string {
	var b strings.Builder
	for i := range s.Panes {
		title := "  " + s.Panes[i].Title
		styled := lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.Panes[i].TitleColor)).
			Bold(true).
			Render(title)
		if i == s.ActivePane {
			styled = r.theme.ActiveTitle.Render(activeMarker + s.Panes[i].Title)
		}
		b.WriteString(padToWidth(styled, frame.PaneWidths[i]))
	}
	return b.String()
}

func (r *Renderer) contentRow(s *statepkg.AppState, frame Frame, rowIdx int, now time.Time) string {
	var b strings.Builder
	for i := range s.Panes {
		b.WriteString(r.paneCell(s, frame, i, rowIdx, now))
	}
	return b.String()
}

// paneCell renders one pane's share of one content row: the body padded to
// the inner width, then the indicator column and the gap to the next pane.
func (r *Renderer) paneCell(s *statepkg.AppState, frame Frame, pane, rowIdx int, now time.Time) string {
	inner := frame.InnerWidth(pane)
	if inner <= 0 {
		return strings.Repeat(" ", frame.PaneWidths[pane])
	}

	body := r.paneBody(s, pane, rowIdx, inner, now)
	indicator := r.paneIndicator(s, pane, rowIdx, frame.ContentRows)
	return padToWidth(body, inner) + padToWidth(indicator, paneReservedCols)
}

func (r *Renderer) paneBody(s *statepkg.AppState, pane, rowIdx, inner int, now time.Time) string {
	p := &s.Panes[pane]

	if p.Err != nil {
		if rowIdx == 0 {
			return r.theme.Error.Render(textutil.Truncate("failed to load: "+p.Err.Error(), inner))
		}
		return ""
	}

	if anim := s.Anim; anim != nil && anim.Pane == pane && rowIdx == p.Scroll.Viewport-1 {
		_, progress, done := anim.Tick(now)
		if !done {
			return r.progressBar(progress, inner)
		}
	}

	if pane == statepkg.PaneActivity {
		return r.marqueeBody(s, rowIdx, inner)
	}

	idx := p.Scroll.Clamped() + rowIdx
	if idx < 0 || idx >= len(p.Lines) {
		return ""
	}
	line := p.Lines[idx]
	text := textutil.Truncate(line.Text, inner)
	switch {
	case line.Kind == statepkg.LineHeader:
		return r.headerBody(text, line.Color)
	case line.Path != "":
		return r.theme.File(line.Path).Render(text)
	default:
		return r.theme.Group(line.Color).Render(text)
	}
}

// headerBody styles a repository header, giving a trailing clean/dirty badge
// its own status color when truncation left it intact.
func (r *Renderer) headerBody(text string, color style.ColorID) string {
	head := r.theme.Header(color)
	if name, ok := strings.CutSuffix(text, " "+cleanBadge); ok {
		return head.Render(name+" ") + r.theme.Clean.Render(cleanBadge)
	}
	if name, ok := strings.CutSuffix(text, " "+dirtyBadge); ok {
		return head.Render(name+" ") + r.theme.Dirty.Render(dirtyBadge)
	}
	return head.Render(text)
}

// marqueeBody draws the visible slice of one activity entity at its current
// scroll position. Rows past the live set stay empty, which clears rows
// vacated by expired entities on the next redraw.
func (r *Renderer) marqueeBody(s *statepkg.AppState, rowIdx, inner int) string {
	idx := s.Panes[statepkg.PaneActivity].Scroll.Clamped() + rowIdx
	if idx < 0 || idx >= len(s.Marquees) {
		return ""
	}
	entity := s.Marquees[idx]
	startCol, visible := statepkg.MarqueeWindow(textutil.Sanitize(entity.Path), entity.Tick, inner)
	if visible == "" {
		return ""
	}
	return strings.Repeat(" ", startCol+1) + r.theme.MarqueeText(entity.Path).Render(visible)
}

// paneIndicator fills the reserved column at a pane's right edge: ▲ when
// rows are clipped above, ▼ when below.
func (r *Renderer) paneIndicator(s *statepkg.AppState, pane, rowIdx, contentRows int) string {
	scroll := &s.Panes[pane].Scroll
	offset := scroll.Clamped()
	if rowIdx == 0 && offset > 0 {
		return r.theme.Indicator.Render(upIndicator)
	}
	if rowIdx == contentRows-1 && offset < scroll.MaxScroll() {
		return r.theme.Indicator.Render(downIndicator)
	}
	return ""
}

// progressBar is the fast-scroll overlay drawn on the animating pane.
func (r *Renderer) progressBar(progress float64, inner int) string {
	cells := inner - 2
	if cells < 1 {
		return ""
	}
	filled := int(progress*float64(cells) + 0.5)
	if filled > cells {
		filled = cells
	}
	bar := "⟨" + strings.Repeat("█", filled) + strings.Repeat("░", cells-filled) + "⟩"
	return r.theme.Indicator.Render(bar)
}

// footerRow is the key help on the left and the refresh age on the right.
func (r *Renderer) footerRow(s *statepkg.AppState, frame Frame, now time.Time) string {
	toggle := "tree"
	if s.Mode == statepkg.ViewTree {
		toggle = "flat"
	}
	help := fmt.Sprintf(" q quit · r refresh · space %s · ↑↓/wheel scroll", toggle)

	age := "waiting for reports"
	if !s.LastRefresh.IsZero() {
		seconds := int(now.Sub(s.LastRefresh).Seconds())
		if seconds < 0 {
			seconds = 0
		}
		age = fmt.Sprintf("updated %ds ago ", seconds)
	}

	gap := frame.Width - textutil.DisplayWidth(help) - textutil.DisplayWidth(age)
	if gap < 1 {
		return padToWidth(r.theme.Footer.Render(help), frame.Width)
	}
	return r.theme.Footer.Render(help + strings.Repeat(" ", gap) + age)
}

// padToWidth pads styled text with spaces to exactly w cells, truncating
// ANSI-aware when it overflows.
func padToWidth(s string, w int) string {
	width := lipgloss.Width(s)
	if width == w {
		return s
	}
	if width < w {
		return s + strings.Repeat(" ", w-width)
	}
	return ansi.Truncate(s, w, "…")
}
