package state

// Action is the base interface for all state mutations.
type Action interface{}

// ===== SESSION ACTIONS =====

type QuitAction struct{}
type RefreshAction struct{}
type ResizeAction struct {
	Width  int
	Height int
}

// ===== VIEW ACTIONS =====

type ToggleViewAction struct{}
type SelectPaneAction struct {
	Pane int
}

// ===== SCROLL ACTIONS =====

type ScrollAction struct {
	Pane  int
	Delta int
}

type FastScrollAction struct {
	Pane   int
	Target int
}
