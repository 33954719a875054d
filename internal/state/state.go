package state

import (
	"time"

	"github.com/kk-code-lab/repodash/internal/report"
	"github.com/kk-code-lab/repodash/internal/style"
)

// ViewMode selects how file lists are presented.
type ViewMode int

const (
	ViewFlat ViewMode = iota
	ViewTree
)

// LineKind classifies a DisplayLine.
type LineKind int

const (
	LineContent LineKind = iota
	LineHeader
)

// DisplayLine is one renderable row of pane content. Lines are rebuilt
// wholesale on refresh or mode toggle and never mutated afterwards.
type DisplayLine struct {
	Text  string
	Kind  LineKind
	Color style.ColorID // group color, zero renders unstyled
	Path  string        // set on file rows so the renderer can color by type
}

// Fixed pane indices.
const (
	PaneStatus = iota
	PaneUnpushed
	PaneActivity
	PaneCount
)

// Pane is one of the three dashboard columns. Panes 0 and 1 carry display
// lines; pane 2 is fed by the marquee entity set on AppState.
type Pane struct {
	Title      string
	TitleColor string
	Lines      []DisplayLine
	Scroll     ScrollState
	Err        error // last load failure, rendered inline
}

// AppState is the whole mutable state of a session. It is owned by the loop
// goroutine; nothing else reads or writes it.
type AppState struct {
	Width  int
	Height int

	Running    bool
	Mode       ViewMode
	ActivePane int

	Panes    [PaneCount]Pane
	Marquees []*MarqueeEntity
	Anim     *ScrollAnimation

	Styles      *style.Config
	ReportDir   string
	LastRefresh time.Time

	reports loadedReports
}

// loadedReports keeps the most recent successful loads so a view-mode toggle
// can rebuild content without touching the report files.
type loadedReports struct {
	status   *report.Status
	dirty    *report.DirtyFiles
	unpushed *report.Unpushed
}

// NewAppState builds the startup state for a session.
func NewAppState(reportDir string, styles *style.Config) *AppState {
	s := &AppState{
		Running:   true,
		Mode:      ViewFlat,
		Styles:    styles,
		ReportDir: reportDir,
	}
	titles := [PaneCount]string{"Status", "Unpushed", "Activity"}
	for i := range s.Panes {
		s.Panes[i].Title = titles[i]
		s.Panes[i].TitleColor = styles.PaletteColor(style.ColorID(i + 1))
	}
	return s
}

// AdvanceAnimations moves the marquee set and any running scroll animation
// one tick forward. It reports whether anything moved, so idle loop
// iterations can skip the redraw.
func (s *AppState) AdvanceAnimations(now time.Time) bool {
	changed := false

	if len(s.Marquees) > 0 {
		s.Marquees = TickMarquees(s.Marquees, now)
		s.Panes[PaneActivity].Scroll.SetViewport(s.Panes[PaneActivity].Scroll.Viewport, len(s.Marquees))
		changed = true
	}

	if s.Anim != nil {
		offset, _, done := s.Anim.Tick(now)
		if s.Anim.Pane >= 0 && s.Anim.Pane < PaneCount {
			s.Panes[s.Anim.Pane].Scroll.SetOffset(offset)
		}
		if done {
			s.Anim = nil
		}
		changed = true
	}

	return changed
}
