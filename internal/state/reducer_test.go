package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kk-code-lab/repodash/internal/report"
	"github.com/kk-code-lab/repodash/internal/style"
)

func writeReportFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func freezeTime(t *testing.T, at time.Time) {
	t.Helper()
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = time.Now })
}

func seedReports(t *testing.T, dir string, now time.Time) {
	t.Helper()
	writeReportFile(t, dir, report.StatusFile,
		`{"repos":[{"name":"alpha","dirty":true,"status":"M  main.go"}]}`)
	writeReportFile(t, dir, report.DirtyFile,
		`{"repos":[{"name":"alpha","files":["main.go"]}]}`)
	writeReportFile(t, dir, report.UnpushedFile,
		`{"repos":[{"name":"alpha","commits":[{"hash":"1234567","subject":"wip","files":["main.go"]}]}]}`)
	writeReportFile(t, dir, report.ActivityFile,
		`{"events":[{"path":"main.go","time":"`+now.Add(-5*time.Second).Format(time.RFC3339)+`"}]}`)
}

func TestReduceQuit(t *testing.T) {
	s := NewAppState(t.TempDir(), style.Default())
	Reduce(s, QuitAction{})
	if s.Running {
		t.Fatalf("still running after quit")
	}
}

func TestReduceResize(t *testing.T) {
	s := NewAppState(t.TempDir(), style.Default())
	Reduce(s, ResizeAction{Width: 120, Height: 40})
	if s.Width != 120 || s.Height != 40 {
		t.Fatalf("size = %dx%d, want 120x40", s.Width, s.Height)
	}
}

func TestReduceRefreshLoadsAllPanes(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	freezeTime(t, now)

	dir := t.TempDir()
	seedReports(t, dir, now)

	s := NewAppState(dir, style.Default())
	Reduce(s, RefreshAction{})

	for i := range s.Panes {
		if s.Panes[i].Err != nil {
			t.Fatalf("pane %d error: %v", i, s.Panes[i].Err)
		}
	}
	if len(s.Panes[PaneStatus].Lines) == 0 {
		t.Fatalf("status pane empty after refresh")
	}
	if got := s.Panes[PaneStatus].Lines[0].Text; got != "alpha [dirty]" {
		t.Fatalf("status header = %q", got)
	}
	if len(s.Panes[PaneUnpushed].Lines) != 3 {
		t.Fatalf("unpushed lines = %d, want 3", len(s.Panes[PaneUnpushed].Lines))
	}
	if len(s.Marquees) != 1 || s.Marquees[0].Path != "main.go" {
		t.Fatalf("marquees = %v, want one for main.go", s.Marquees)
	}
	if !s.LastRefresh.Equal(now) {
		t.Fatalf("LastRefresh = %v, want %v", s.LastRefresh, now)
	}
}

func TestReduceRefreshKeepsPriorDataOnLoadError(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	freezeTime(t, now)

	dir := t.TempDir()
	seedReports(t, dir, now)

	s := NewAppState(dir, style.Default())
	Reduce(s, RefreshAction{})

	if err := os.Remove(filepath.Join(dir, report.UnpushedFile)); err != nil {
		t.Fatal(err)
	}
	Reduce(s, RefreshAction{})

	if s.Panes[PaneUnpushed].Err == nil {
		t.Fatalf("missing report produced no pane error")
	}
	if len(s.Panes[PaneUnpushed].Lines) != 3 {
		t.Fatalf("prior unpushed content lost: %d lines", len(s.Panes[PaneUnpushed].Lines))
	}
}

func TestReduceRefreshSkipsExpiredActivity(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	freezeTime(t, now)

	dir := t.TempDir()
	seedReports(t, dir, now)
	writeReportFile(t, dir, report.ActivityFile,
		`{"events":[{"path":"old.go","time":"`+now.Add(-40*time.Second).Format(time.RFC3339)+`"},`+
			`{"path":"new.go","time":"`+now.Add(-10*time.Second).Format(time.RFC3339)+`"}]}`)

	s := NewAppState(dir, style.Default())
	Reduce(s, RefreshAction{})

	if len(s.Marquees) != 1 || s.Marquees[0].Path != "new.go" {
		t.Fatalf("marquees = %v, want just new.go", s.Marquees)
	}
	if want := now.Add(-10 * time.Second).Add(MarqueeLifetime); !s.Marquees[0].Expiry.Equal(want) {
		t.Fatalf("expiry anchored to %v, want event time + lifetime %v", s.Marquees[0].Expiry, want)
	}
}

func TestReduceToggleViewRebuildsAndCancelsAnimation(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	freezeTime(t, now)

	dir := t.TempDir()
	seedReports(t, dir, now)

	s := NewAppState(dir, style.Default())
	Reduce(s, RefreshAction{})
	flat := s.Panes[PaneStatus].Lines[1].Text

	s.Anim = StartFastScroll(PaneStatus, 0, 5, now, 0)
	Reduce(s, ToggleViewAction{})

	if s.Mode != ViewTree {
		t.Fatalf("mode = %v, want tree", s.Mode)
	}
	if s.Anim != nil {
		t.Fatalf("animation survived view toggle")
	}
	tree := s.Panes[PaneStatus].Lines[1].Text
	if flat == tree {
		t.Fatalf("content did not change on toggle: %q", tree)
	}

	Reduce(s, ToggleViewAction{})
	if s.Mode != ViewFlat {
		t.Fatalf("mode did not toggle back")
	}
	if got := s.Panes[PaneStatus].Lines[1].Text; got != flat {
		t.Fatalf("flat content after round trip = %q, want %q", got, flat)
	}
}

func TestReduceScrollCancelsAnimation(t *testing.T) {
	s := NewAppState(t.TempDir(), style.Default())
	s.Panes[PaneStatus].Scroll.SetViewport(10, 100)
	s.Anim = StartFastScroll(PaneStatus, 0, 50, time.Now(), 0)

	Reduce(s, ScrollAction{Pane: PaneStatus, Delta: 3})

	if s.Anim != nil {
		t.Fatalf("animation survived manual scroll")
	}
	if got := s.Panes[PaneStatus].Scroll.Offset; got != 3 {
		t.Fatalf("offset = %d, want 3", got)
	}
}

func TestReduceScrollIgnoresBadPane(t *testing.T) {
	s := NewAppState(t.TempDir(), style.Default())
	Reduce(s, ScrollAction{Pane: 7, Delta: 3})
	Reduce(s, ScrollAction{Pane: -1, Delta: 3})
	for i := range s.Panes {
		if s.Panes[i].Scroll.Offset != 0 {
			t.Fatalf("pane %d moved", i)
		}
	}
}

func TestReduceFastScrollClampsTarget(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	freezeTime(t, now)

	s := NewAppState(t.TempDir(), style.Default())
	s.Panes[PaneUnpushed].Scroll.SetViewport(10, 100)

	Reduce(s, FastScrollAction{Pane: PaneUnpushed, Target: 500})

	if s.Anim == nil {
		t.Fatalf("no animation started")
	}
	if s.Anim.To != 90 {
		t.Fatalf("target = %d, want clamped 90", s.Anim.To)
	}
	if s.Anim.Pane != PaneUnpushed || !s.Anim.Start.Equal(now) {
		t.Fatalf("animation = %+v", s.Anim)
	}
}

func TestReduceFastScrollNoopAtTarget(t *testing.T) {
	s := NewAppState(t.TempDir(), style.Default())
	s.Panes[PaneStatus].Scroll.SetViewport(10, 100)
	s.Panes[PaneStatus].Scroll.SetOffset(20)

	Reduce(s, FastScrollAction{Pane: PaneStatus, Target: 20})

	if s.Anim != nil {
		t.Fatalf("animation started for a zero-distance scroll")
	}
}

func TestReduceSelectPane(t *testing.T) {
	s := NewAppState(t.TempDir(), style.Default())
	Reduce(s, SelectPaneAction{Pane: PaneActivity})
	if s.ActivePane != PaneActivity {
		t.Fatalf("active pane = %d, want %d", s.ActivePane, PaneActivity)
	}
	Reduce(s, SelectPaneAction{Pane: 9})
	if s.ActivePane != PaneActivity {
		t.Fatalf("invalid pane accepted")
	}
}
