package input

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxPendingSequence bounds how long an unterminated escape sequence may
// grow before it is treated as garbage and dropped.
const maxPendingSequence = 32

// Decoder turns the raw byte stream of a terminal in raw mode into events.
// Reads can split an escape sequence anywhere, so undecodable prefixes stay
// buffered until the following read completes them.
type Decoder struct {
	pending     []byte
	escDeferred bool
}

// Feed appends freshly read bytes to the decode buffer.
func (d *Decoder) Feed(p []byte) {
	if len(p) == 0 {
		return
	}
	d.pending = append(d.pending, p...)
	d.escDeferred = false
}

// Next decodes the next event from the buffer. It returns ok == false when
// the buffer is empty or holds only the prefix of a sequence; feeding more
// bytes and calling Next again resumes exactly where decoding stopped.
//
// A lone escape byte is ambiguous: it may be the Escape key or the start of
// a sequence whose remainder is still in flight. The first Next call on it
// reports no event; if nothing has arrived by the following call it is the
// Escape key.
func (d *Decoder) Next() (Event, bool) {
	for len(d.pending) > 0 {
		if d.pending[0] != 0x1b {
			ev, n, ok := d.decodePlain()
			d.pending = d.pending[n:]
			if ok {
				return ev, true
			}
			continue
		}

		if len(d.pending) == 1 {
			if !d.escDeferred {
				d.escDeferred = true
				return Event{}, false
			}
			d.pending = d.pending[:0]
			d.escDeferred = false
			return Event{Kind: EventKey, Key: KeyEscape}, true
		}

		ev, n, ok, complete := d.decodeEscape()
		if !complete {
			return Event{}, false
		}
		d.pending = d.pending[n:]
		if ok {
			return ev, true
		}
	}
	return Event{}, false
}

// decodePlain handles a single non-escape byte at the front of the buffer.
func (d *Decoder) decodePlain() (Event, int, bool) {
	b := d.pending[0]

	switch b {
	case 'q', 'Q':
		return Event{Kind: EventKey, Key: KeyQuit}, 1, true
	case 'r', 'R':
		return Event{Kind: EventKey, Key: KeyRefresh}, 1, true
	case ' ':
		return Event{Kind: EventKey, Key: KeySpace}, 1, true
	case 0x03:
		return Event{Kind: EventKey, Key: KeyCtrlC}, 1, true
	}

	if b < utf8.RuneSelf {
		return Event{}, 1, false
	}

	// Multibyte rune: wait for the tail if it was split across reads, then
	// swallow it whole.
	if !utf8.FullRune(d.pending) && len(d.pending) < utf8.UTFMax {
		return Event{}, 0, false
	}
	_, size := utf8.DecodeRune(d.pending)
	return Event{}, size, false
}

// decodeEscape handles an escape-led sequence of at least two bytes. The
// returned count is only meaningful when complete is true; an incomplete
// sequence stays buffered untouched.
func (d *Decoder) decodeEscape() (ev Event, n int, ok, complete bool) {
	switch d.pending[1] {
	case '[':
		return d.decodeCSI()
	case 'O':
		if len(d.pending) < 3 {
			return Event{}, 0, false, false
		}
		switch d.pending[2] {
		case 'H':
			return Event{Kind: EventKey, Key: KeyHome}, 3, true, true
		case 'F':
			return Event{Kind: EventKey, Key: KeyEnd}, 3, true, true
		}
		return Event{}, 3, false, true
	default:
		// Alt-modified byte; swallow both and treat as a plain escape.
		return Event{Kind: EventKey, Key: KeyEscape}, 2, true, true
	}
}

func (d *Decoder) decodeCSI() (ev Event, n int, ok, complete bool) {
	if len(d.pending) < 3 {
		return Event{}, 0, false, false
	}
	if d.pending[2] == '<' {
		return d.decodeSGRMouse()
	}

	// Parameter bytes run until a final in 0x40..0x7e.
	for i := 2; i < len(d.pending); i++ {
		b := d.pending[i]
		if b >= 0x40 && b <= 0x7e {
			return decodeCSIKey(d.pending[2:i], b), i + 1, true, true
		}
		if b < 0x20 || b > 0x3f {
			// Garbage inside the sequence. Drop the prefix and let the
			// offending byte decode on its own.
			return Event{}, i, false, true
		}
	}
	if len(d.pending) > maxPendingSequence {
		return Event{}, 2, false, true
	}
	return Event{}, 0, false, false
}

func decodeCSIKey(params []byte, final byte) Event {
	key := KeyNone
	switch final {
	case 'A':
		key = KeyUp
	case 'B':
		key = KeyDown
	case 'C':
		key = KeyRight
	case 'D':
		key = KeyLeft
	case 'H':
		key = KeyHome
	case 'F':
		key = KeyEnd
	case '~':
		switch string(params) {
		case "1", "7":
			key = KeyHome
		case "4", "8":
			key = KeyEnd
		case "5":
			key = KeyPageUp
		case "6":
			key = KeyPageDown
		}
	}
	return Event{Kind: EventKey, Key: key}
}

// decodeSGRMouse parses \x1b[<b;x;yM (press or wheel) and \x1b[<b;x;ym
// (release). Releases and motion reports decode to nothing.
func (d *Decoder) decodeSGRMouse() (ev Event, n int, ok, complete bool) {
	for i := 3; i < len(d.pending); i++ {
		b := d.pending[i]
		if b == 'M' || b == 'm' {
			ev, ok = parseSGRFields(d.pending[3:i], b == 'M')
			return ev, i + 1, ok, true
		}
		if (b < '0' || b > '9') && b != ';' {
			return Event{}, i, false, true
		}
	}
	if len(d.pending) > maxPendingSequence {
		return Event{}, 3, false, true
	}
	return Event{}, 0, false, false
}

func parseSGRFields(fields []byte, press bool) (Event, bool) {
	parts := strings.Split(string(fields), ";")
	if len(parts) != 3 {
		return Event{}, false
	}
	b, err1 := strconv.Atoi(parts[0])
	x, err2 := strconv.Atoi(parts[1])
	y, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil || x < 1 || y < 1 {
		return Event{}, false
	}

	const (
		wheelBit  = 64
		motionBit = 32
	)

	if b&wheelBit != 0 {
		wheel := -1
		if b&1 != 0 {
			wheel = 1
		}
		return Event{Kind: EventWheel, X: x, Y: y, Wheel: wheel}, true
	}
	if !press || b&motionBit != 0 {
		return Event{}, false
	}
	button := b & 3
	if button == 3 {
		return Event{}, false
	}
	return Event{Kind: EventMousePress, X: x, Y: y, Button: button}, true
}
