package app

import (
	"time"

	"github.com/kk-code-lab/repodash/internal/logger"
	statepkg "github.com/kk-code-lab/repodash/internal/state"
	"github.com/kk-code-lab/repodash/internal/style"
	inputui "github.com/kk-code-lab/repodash/internal/ui/input"
	renderui "github.com/kk-code-lab/repodash/internal/ui/render"
	termui "github.com/kk-code-lab/repodash/internal/ui/term"
)

// DefaultRefreshInterval is how often report files are re-read when no
// interval is configured.
const DefaultRefreshInterval = 2 * time.Second

// Options carries the session configuration resolved by the CLI.
type Options struct {
	ReportDir       string
	StylePath       string
	RefreshInterval time.Duration
}

// Application owns one dashboard session: the raw terminal, the state, and
// the components the loop wires together.
type Application struct {
	term     *termui.Terminal
	state    *statepkg.AppState
	renderer *renderui.Renderer
	decoder  *inputui.Decoder
	handler  *inputui.Handler

	refreshInterval time.Duration
	inputBuf        []byte
}

// NewApplication prepares a session. The terminal is switched to raw mode
// here, so the caller must guarantee Close runs on every exit path.
func NewApplication(opts Options) (*Application, error) {
	styles, err := style.Load(opts.StylePath)
	if err != nil {
		logger.Warn("style file ignored", "path", opts.StylePath, "error", err)
	}

	refresh := opts.RefreshInterval
	if refresh <= 0 {
		refresh = DefaultRefreshInterval
	}

	terminal, err := termui.Open()
	if err != nil {
		return nil, err
	}

	state := statepkg.NewAppState(opts.ReportDir, styles)
	if w, h, err := terminal.Size(); err == nil {
		state.Width = w
		state.Height = h
	}

	app := &Application{
		term:            terminal,
		state:           state,
		renderer:        renderui.NewRenderer(terminal.Writer(), renderui.NewTheme(styles)),
		decoder:         &inputui.Decoder{},
		handler:         inputui.NewHandler(state),
		refreshInterval: refresh,
		inputBuf:        make([]byte, inputBufSize),
	}
	app.layoutPanes()
	return app, nil
}

// Close restores the terminal. Safe to call more than once.
func (app *Application) Close() {
	app.term.Restore()
}

// measure re-reads the terminal size after a resize notification and keeps
// the last known size when the query fails.
func (app *Application) measure() {
	w, h, err := app.term.Size()
	if err != nil {
		logger.Warn("terminal size query failed", "error", err)
		return
	}
	statepkg.Reduce(app.state, statepkg.ResizeAction{Width: w, Height: h})
	app.layoutPanes()
}

// layoutPanes pushes the current frame geometry into every pane's scroll
// bounds, clamping offsets a shrink pushed out of range.
func (app *Application) layoutPanes() {
	frame := renderui.ComputeFrame(app.state.Width, app.state.Height)
	if frame.TooSmall {
		return
	}
	app.state.SetPaneViewports(frame.ContentRows)
}

// dispatch feeds one decoded event through the handler into the reducer and
// reports whether any action ran.
func (app *Application) dispatch(ev inputui.Event, now time.Time) bool {
	actions := app.handler.Handle(ev, now)
	for _, action := range actions {
		statepkg.Reduce(app.state, action)
	}
	return len(actions) > 0
}
