package state

import (
	"time"

	"github.com/kk-code-lab/repodash/internal/report"
)

var timeNow = time.Now

// Reduce applies an action to state. All mutations of AppState outside the
// animation tick go through here, so every path that touches a scroll offset
// or rebuilds content keeps the clamp and color invariants.
func Reduce(s *AppState, action Action) {
	switch a := action.(type) {

	// ===== SESSION =====

	case QuitAction:
		s.Running = false

	case RefreshAction:
		refresh(s)

	case ResizeAction:
		s.Width = a.Width
		s.Height = a.Height

	// ===== VIEW =====

	case ToggleViewAction:
		if s.Mode == ViewFlat {
			s.Mode = ViewTree
		} else {
			s.Mode = ViewFlat
		}
		s.Anim = nil
		rebuildContent(s)

	case SelectPaneAction:
		if a.Pane >= 0 && a.Pane < PaneCount {
			s.ActivePane = a.Pane
		}

	// ===== SCROLLING =====

	case ScrollAction:
		if a.Pane < 0 || a.Pane >= PaneCount {
			return
		}
		s.Anim = nil
		s.Panes[a.Pane].Scroll.ScrollBy(a.Delta)

	case FastScrollAction:
		if a.Pane < 0 || a.Pane >= PaneCount {
			return
		}
		scroll := &s.Panes[a.Pane].Scroll
		from := scroll.Clamped()
		target := a.Target
		if target < 0 {
			target = 0
		}
		if max := scroll.MaxScroll(); target > max {
			target = max
		}
		if target == from {
			s.Anim = nil
			return
		}
		s.Anim = StartFastScroll(a.Pane, from, target, timeNow(), 0)
	}
}

// refresh reloads every report and rebuilds pane content. A report that fails
// to load leaves the previous data in place and surfaces the error on its
// pane; the other panes refresh normally.
func refresh(s *AppState) {
	now := timeNow()

	status, statusErr := report.LoadStatus(s.ReportDir)
	if statusErr == nil {
		s.reports.status = status
	}
	dirty, dirtyErr := report.LoadDirty(s.ReportDir)
	if dirtyErr == nil {
		s.reports.dirty = dirty
	}
	s.Panes[PaneStatus].Err = statusErr
	if statusErr == nil {
		s.Panes[PaneStatus].Err = dirtyErr
	}

	unpushed, unpushedErr := report.LoadUnpushed(s.ReportDir)
	if unpushedErr == nil {
		s.reports.unpushed = unpushed
	}
	s.Panes[PaneUnpushed].Err = unpushedErr

	activity, activityErr := report.LoadActivity(s.ReportDir)
	s.Panes[PaneActivity].Err = activityErr
	if activityErr == nil {
		for _, ev := range LiveActivityEvents(activity, now) {
			s.Marquees = ActivateFile(s.Marquees, ev.Path, ev.Time)
		}
	}

	rebuildContent(s)
	s.LastRefresh = now
}

// rebuildContent regenerates the display lines of panes 0 and 1 from the last
// loaded reports and re-syncs every pane's scroll bounds to the new totals.
func rebuildContent(s *AppState) {
	s.Panes[PaneStatus].Lines = BuildStatusLines(s.reports.status, s.reports.dirty, s.Mode, s.Styles)
	s.Panes[PaneUnpushed].Lines = BuildUnpushedLines(s.reports.unpushed, s.reports.status, s.Mode, s.Styles)
	for i := range s.Panes {
		total := len(s.Panes[i].Lines)
		if i == PaneActivity {
			total = len(s.Marquees)
		}
		s.Panes[i].Scroll.SetViewport(s.Panes[i].Scroll.Viewport, total)
	}
}

// SetPaneViewports records the content rows every pane has after a layout
// pass, pulling any offset back that the shrink pushed out of range.
func (s *AppState) SetPaneViewports(rows int) {
	for i := range s.Panes {
		total := len(s.Panes[i].Lines)
		if i == PaneActivity {
			total = len(s.Marquees)
		}
		s.Panes[i].Scroll.SetViewport(rows, total)
	}
}
