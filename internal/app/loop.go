package app

import (
	"os"
	"os/signal"
	"time"

	"github.com/kk-code-lab/repodash/internal/logger"
	statepkg "github.com/kk-code-lab/repodash/internal/state"
	inputui "github.com/kk-code-lab/repodash/internal/ui/input"
)

const (
	// animationInterval paces marquee and scroll-animation ticks.
	animationInterval = 50 * time.Millisecond

	// loopSleep bounds one idle iteration so polling never busy-waits.
	loopSleep = 5 * time.Millisecond

	inputBufSize = 64
)

// Run is the cooperative session loop. Each iteration consumes the coalesced
// resize flag, refreshes report data when the interval elapsed, polls for
// input without blocking, advances animations, and redraws when anything
// changed. All state mutation happens on this goroutine.
func (app *Application) Run() error {
	defer app.term.Restore()

	resizeCh := make(chan os.Signal, 1)
	if sigs := resizeSignals(); len(sigs) > 0 {
		signal.Notify(resizeCh, sigs...)
		defer signal.Stop(resizeCh)
	}

	// Fatal signals become quit actions; the deferred restore still runs.
	quitCh := make(chan os.Signal, 1)
	signal.Notify(quitCh, termSignals()...)
	defer signal.Stop(quitCh)

	lastTick := time.Now()
	redraw := true

	for app.state.Running {
		select {
		case <-resizeCh:
			app.measure()
			redraw = true
		case sig := <-quitCh:
			logger.Info("terminating on signal", "signal", sig)
			statepkg.Reduce(app.state, statepkg.QuitAction{})
			continue
		default:
		}

		now := time.Now()

		if now.Sub(app.state.LastRefresh) >= app.refreshInterval {
			statepkg.Reduce(app.state, statepkg.RefreshAction{})
			app.layoutPanes()
			redraw = true
		}

		if app.pollInput(now) {
			app.layoutPanes()
			redraw = true
		}

		if now.Sub(lastTick) >= animationInterval {
			lastTick = now
			if app.state.AdvanceAnimations(now) {
				redraw = true
			}
		}

		if redraw {
			app.renderer.Render(app.state, now)
			app.term.Flush()
			redraw = false
		}

		time.Sleep(loopSleep)
	}
	return nil
}

// pollInput drains whatever bytes are pending on the terminal and dispatches
// every event they complete. Partial escape sequences stay buffered in the
// decoder until a later read finishes them.
func (app *Application) pollInput(now time.Time) bool {
	n, err := inputui.PollRead(app.term.InputFd(), app.inputBuf)
	if err != nil {
		logger.Warn("input read failed", "error", err)
		return false
	}
	if n > 0 {
		app.decoder.Feed(app.inputBuf[:n])
	}

	handled := false
	for {
		ev, ok := app.decoder.Next()
		if !ok {
			break
		}
		if app.dispatch(ev, now) {
			handled = true
		}
	}
	return handled
}
