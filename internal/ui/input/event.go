package input

// EventKind separates decoded keyboard input from the two mouse event
// families the dashboard reacts to.
type EventKind int

const (
	EventKey EventKind = iota
	EventMousePress
	EventWheel
)

type Key int

const (
	KeyNone Key = iota
	KeyQuit
	KeyEscape
	KeyCtrlC
	KeyRefresh
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

// Mouse buttons as encoded in the low bits of an SGR report.
const (
	ButtonLeft   = 0
	ButtonMiddle = 1
	ButtonRight  = 2
)

// Event is one decoded terminal input. X and Y are 1-based terminal cells
// and only meaningful for mouse events; Wheel is -1 for up and +1 for down.
type Event struct {
	Kind   EventKind
	Key    Key
	X, Y   int
	Button int
	Wheel  int
}
