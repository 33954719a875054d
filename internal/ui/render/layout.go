package render

import statepkg "github.com/kk-code-lab/repodash/internal/state"

// Chrome occupies four rows: the title bar and a separator above the panes,
// a separator and the footer below them.
const (
	MinWidth  = 45
	MinHeight = 8

	chromeRows = 4
	contentTop = 3

	// Inside a pane the rightmost two columns are reserved for the scroll
	// indicator and the gap to the next pane.
	paneReservedCols = 2
)

// Frame places the three panes on a terminal of a given size. All columns
// and rows are 1-based terminal coordinates.
type Frame struct {
	Width    int
	Height   int
	TooSmall bool

	PaneStarts  [statepkg.PaneCount]int
	PaneWidths  [statepkg.PaneCount]int
	ContentRows int
}

// ComputeFrame divides the terminal into three equal columns, handing the
// division remainder to the rightmost pane.
func ComputeFrame(width, height int) Frame {
	f := Frame{Width: width, Height: height}
	if width < MinWidth || height < MinHeight {
		f.TooSmall = true
		return f
	}

	base := width / statepkg.PaneCount
	for i := range f.PaneWidths {
		f.PaneStarts[i] = 1 + i*base
		f.PaneWidths[i] = base
	}
	f.PaneWidths[statepkg.PaneCount-1] = width - (statepkg.PaneCount-1)*base
	f.ContentRows = height - chromeRows
	return f
}

// InnerWidth is the width available to a pane's text content.
func (f Frame) InnerWidth(pane int) int {
	if pane < 0 || pane >= statepkg.PaneCount {
		return 0
	}
	w := f.PaneWidths[pane] - paneReservedCols
	if w < 0 {
		w = 0
	}
	return w
}

// PaneAt reports the pane under the 1-based terminal cell (x, y): 1 to 3
// counting from the left, or 0 when the cell lies on chrome or outside the
// frame.
func PaneAt(x, y, width, height int) int {
	f := ComputeFrame(width, height)
	if f.TooSmall || x < 1 || x > f.Width {
		return 0
	}
	if y < contentTop || y >= contentTop+f.ContentRows {
		return 0
	}
	pane := (x-1)/f.PaneWidths[0] + 1
	if pane > statepkg.PaneCount {
		pane = statepkg.PaneCount
	}
	return pane
}
