package input

import (
	"time"

	statepkg "github.com/kk-code-lab/repodash/internal/state"
	"github.com/kk-code-lab/repodash/internal/ui/render"
)

const (
	wheelStep = 3

	// A run of same-direction wheel events this dense is a fling and
	// switches from stepped scrolling to an animated jump.
	wheelBurstWindow    = 200 * time.Millisecond
	wheelBurstThreshold = 4
)

// Handler converts decoded terminal events to state actions.
type Handler struct {
	state *statepkg.AppState

	wheelPane  int
	wheelDir   int
	wheelCount int
	wheelLast  time.Time
}

// NewHandler creates a handler bound to the session state it reads pane
// geometry and scroll positions from.
func NewHandler(state *statepkg.AppState) *Handler {
	return &Handler{state: state}
}

// Handle maps one event to the actions it triggers. now feeds the wheel
// burst detection and nothing else.
func (h *Handler) Handle(ev Event, now time.Time) []statepkg.Action {
	switch ev.Kind {
	case EventKey:
		return h.handleKey(ev.Key)
	case EventMousePress:
		if ev.Button != ButtonLeft {
			return nil
		}
		pane := render.PaneAt(ev.X, ev.Y, h.state.Width, h.state.Height)
		if pane == 0 {
			return nil
		}
		return []statepkg.Action{statepkg.SelectPaneAction{Pane: pane - 1}}
	case EventWheel:
		return h.handleWheel(ev, now)
	}
	return nil
}

func (h *Handler) handleKey(key Key) []statepkg.Action {
	active := h.state.ActivePane
	switch key {
	case KeyQuit, KeyEscape, KeyCtrlC:
		return []statepkg.Action{statepkg.QuitAction{}}
	case KeyRefresh:
		return []statepkg.Action{statepkg.RefreshAction{}}
	case KeySpace:
		return []statepkg.Action{statepkg.ToggleViewAction{}}
	case KeyUp:
		return []statepkg.Action{statepkg.ScrollAction{Pane: active, Delta: -1}}
	case KeyDown:
		return []statepkg.Action{statepkg.ScrollAction{Pane: active, Delta: 1}}
	case KeyLeft:
		if active > 0 {
			return []statepkg.Action{statepkg.SelectPaneAction{Pane: active - 1}}
		}
	case KeyRight:
		if active < statepkg.PaneCount-1 {
			return []statepkg.Action{statepkg.SelectPaneAction{Pane: active + 1}}
		}
	case KeyPageUp:
		return []statepkg.Action{statepkg.ScrollAction{Pane: active, Delta: -h.pageSize(active)}}
	case KeyPageDown:
		return []statepkg.Action{statepkg.ScrollAction{Pane: active, Delta: h.pageSize(active)}}
	case KeyHome:
		return []statepkg.Action{statepkg.ScrollAction{Pane: active, Delta: -h.state.Panes[active].Scroll.Total}}
	case KeyEnd:
		return []statepkg.Action{statepkg.ScrollAction{Pane: active, Delta: h.state.Panes[active].Scroll.Total}}
	}
	return nil
}

func (h *Handler) handleWheel(ev Event, now time.Time) []statepkg.Action {
	pane := render.PaneAt(ev.X, ev.Y, h.state.Width, h.state.Height)
	if pane == 0 {
		return nil
	}
	idx := pane - 1

	if idx != h.wheelPane || ev.Wheel != h.wheelDir || now.Sub(h.wheelLast) > wheelBurstWindow {
		h.wheelCount = 0
	}
	h.wheelPane = idx
	h.wheelDir = ev.Wheel
	h.wheelLast = now
	h.wheelCount++

	if h.wheelCount >= wheelBurstThreshold {
		target := h.state.Panes[idx].Scroll.Clamped() + ev.Wheel*h.pageSize(idx)
		return []statepkg.Action{statepkg.FastScrollAction{Pane: idx, Target: target}}
	}
	return []statepkg.Action{statepkg.ScrollAction{Pane: idx, Delta: ev.Wheel * wheelStep}}
}

func (h *Handler) pageSize(pane int) int {
	size := h.state.Panes[pane].Scroll.Viewport
	if size < 1 {
		size = 1
	}
	return size
}
