// Package term owns the terminal lifecycle for a dashboard session: raw
// mode, mouse reporting, cursor visibility and the buffered escape-sequence
// output channel, plus the restore path that must run no matter how the
// session ends.
package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	xterm "golang.org/x/term"
)

// Control sequences the dashboard toggles for the session. Mouse reporting
// uses the SGR extension so coordinates are not capped at byte range.
const (
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	mouseOn     = "\x1b[?1000h\x1b[?1006h"
	mouseOff    = "\x1b[?1006l\x1b[?1000l"
	clearScreen = "\x1b[2J"
	resetStyle  = "\x1b[0m"
)

// Terminal is the raw-mode terminal of one session.
type Terminal struct {
	input    *os.File
	output   io.Writer
	writer   *bufio.Writer
	rawState *xterm.State
	restored bool
}

// Open puts the controlling terminal into raw mode with mouse reporting and
// a hidden cursor. The caller must arrange for Restore to run on every exit
// path.
func Open() (*Terminal, error) {
	t := &Terminal{}

	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		if runtime.GOOS == "windows" {
			t.input = os.Stdin
			t.output = os.Stdout
		} else {
			return nil, fmt.Errorf("open terminal: %w", err)
		}
	} else {
		t.input = tty
		t.output = tty
	}
	if t.input == nil {
		return nil, errors.New("no tty available")
	}

	t.writer = bufio.NewWriter(t.output)

	rawState, err := xterm.MakeRaw(int(t.input.Fd()))
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	t.rawState = rawState

	t.WriteString(hideCursor)
	t.WriteString(mouseOn)
	t.WriteString(clearScreen)
	t.Flush()
	return t, nil
}

// Restore undoes every mode Open set. It is idempotent, so both the deferred
// call in the session loop and the fatal-signal path may run it.
func (t *Terminal) Restore() {
	if t.restored {
		return
	}
	t.restored = true

	t.WriteString(resetStyle)
	t.WriteString(mouseOff)
	t.WriteString(showCursor)
	t.Flush()

	if t.rawState != nil {
		_ = xterm.Restore(int(t.input.Fd()), t.rawState)
	}
	if t.input.Name() == "/dev/tty" {
		_ = t.input.Close()
	}
}

// InputFd is the descriptor the session loop polls for input bytes.
func (t *Terminal) InputFd() int {
	return int(t.input.Fd())
}

// Size queries the current terminal dimensions.
func (t *Terminal) Size() (width, height int, err error) {
	return xterm.GetSize(int(t.input.Fd()))
}

// Writer is the buffered output the renderer draws into; nothing reaches the
// terminal until Flush.
func (t *Terminal) Writer() io.Writer {
	return t.writer
}

// WriteString appends s to the pending output.
func (t *Terminal) WriteString(s string) {
	_, _ = t.writer.WriteString(s)
}

// Flush pushes all pending output to the terminal in one write.
func (t *Terminal) Flush() {
	_ = t.writer.Flush()
}
