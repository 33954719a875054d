package input

import "testing"

func drain(d *Decoder) []Event {
	var events []Event
	for {
		ev, ok := d.Next()
		if !ok {
			return events
		}
		events = append(events, ev)
	}
}

func TestDecodePlainKeys(t *testing.T) {
	tests := []struct {
		in  string
		key Key
	}{
		{"q", KeyQuit},
		{"Q", KeyQuit},
		{"r", KeyRefresh},
		{"R", KeyRefresh},
		{" ", KeySpace},
		{"\x03", KeyCtrlC},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d Decoder
			d.Feed([]byte(tt.in))
			ev, ok := d.Next()
			if !ok || ev.Kind != EventKey || ev.Key != tt.key {
				t.Fatalf("decode(%q) = %+v ok=%v, want key %v", tt.in, ev, ok, tt.key)
			}
		})
	}
}

func TestDecodeSequenceKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		key  Key
	}{
		{"up", "\x1b[A", KeyUp},
		{"down", "\x1b[B", KeyDown},
		{"right", "\x1b[C", KeyRight},
		{"left", "\x1b[D", KeyLeft},
		{"home", "\x1b[H", KeyHome},
		{"end ss3", "\x1bOF", KeyEnd},
		{"page up", "\x1b[5~", KeyPageUp},
		{"page down", "\x1b[6~", KeyPageDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Decoder
			d.Feed([]byte(tt.in))
			ev, ok := d.Next()
			if !ok || ev.Key != tt.key {
				t.Fatalf("decode(%q) = %+v ok=%v, want key %v", tt.in, ev, ok, tt.key)
			}
		})
	}
}

func TestDecodeBareEscapeNeedsSecondLook(t *testing.T) {
	var d Decoder
	d.Feed([]byte{0x1b})

	if _, ok := d.Next(); ok {
		t.Fatalf("lone escape decoded immediately")
	}
	ev, ok := d.Next()
	if !ok || ev.Key != KeyEscape {
		t.Fatalf("second look = %+v ok=%v, want escape", ev, ok)
	}
	if _, ok := d.Next(); ok {
		t.Fatalf("escape decoded twice")
	}
}

func TestDecodeDeferredEscapeJoinsLateBytes(t *testing.T) {
	var d Decoder
	d.Feed([]byte{0x1b})
	if _, ok := d.Next(); ok {
		t.Fatalf("lone escape decoded immediately")
	}

	d.Feed([]byte("[B"))
	ev, ok := d.Next()
	if !ok || ev.Key != KeyDown {
		t.Fatalf("joined sequence = %+v ok=%v, want down", ev, ok)
	}
}

func TestDecodeSGRWheel(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		wheel int
	}{
		{"wheel up", "\x1b[<64;10;5M", -1},
		{"wheel down", "\x1b[<65;10;5M", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Decoder
			d.Feed([]byte(tt.in))
			ev, ok := d.Next()
			if !ok || ev.Kind != EventWheel {
				t.Fatalf("decode(%q) = %+v ok=%v, want wheel", tt.in, ev, ok)
			}
			if ev.Wheel != tt.wheel || ev.X != 10 || ev.Y != 5 {
				t.Fatalf("wheel event = %+v, want wheel=%d at (10,5)", ev, tt.wheel)
			}
		})
	}
}

func TestDecodeSGRPress(t *testing.T) {
	var d Decoder
	d.Feed([]byte("\x1b[<0;45;12M"))
	ev, ok := d.Next()
	if !ok || ev.Kind != EventMousePress {
		t.Fatalf("decode = %+v ok=%v, want press", ev, ok)
	}
	if ev.Button != ButtonLeft || ev.X != 45 || ev.Y != 12 {
		t.Fatalf("press = %+v, want left at (45,12)", ev)
	}
}

func TestDecodeSGRIgnoredReports(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"release", "\x1b[<0;10;5m"},
		{"motion", "\x1b[<32;10;5M"},
		{"button three", "\x1b[<3;10;5M"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Decoder
			d.Feed([]byte(tt.in + "q"))
			ev, ok := d.Next()
			if !ok || ev.Key != KeyQuit {
				t.Fatalf("got %+v ok=%v, want the report skipped and q decoded", ev, ok)
			}
		})
	}
}

func TestDecodeSplitMouseSequence(t *testing.T) {
	var d Decoder

	d.Feed([]byte("\x1b[<6"))
	if _, ok := d.Next(); ok {
		t.Fatalf("incomplete sequence produced an event")
	}

	d.Feed([]byte("4;10;5M"))
	ev, ok := d.Next()
	if !ok || ev.Kind != EventWheel || ev.Wheel != -1 {
		t.Fatalf("completed sequence = %+v ok=%v, want wheel up", ev, ok)
	}
}

func TestDecodeMalformedMouseRecovers(t *testing.T) {
	var d Decoder
	d.Feed([]byte("\x1b[<0;zz;5Mq"))

	ev, ok := d.Next()
	if !ok || ev.Key != KeyQuit {
		t.Fatalf("got %+v ok=%v, want garbage dropped and q decoded", ev, ok)
	}
}

func TestDecodeOverlongSequenceDiscarded(t *testing.T) {
	var d Decoder
	seq := []byte("\x1b[<")
	for i := 0; i < 40; i++ {
		seq = append(seq, '1')
	}
	d.Feed(seq)

	if ev, ok := d.Next(); ok {
		t.Fatalf("overlong sequence produced %+v", ev)
	}

	d.Feed([]byte("q"))
	ev, ok := d.Next()
	if !ok || ev.Key != KeyQuit {
		t.Fatalf("decoder stuck after overflow: %+v ok=%v", ev, ok)
	}
}

func TestDecodeInterleavedEvents(t *testing.T) {
	var d Decoder
	d.Feed([]byte("q\x1b[<64;3;4Mr"))

	events := drain(&d)
	if len(events) != 3 {
		t.Fatalf("event count = %d, want 3 (%+v)", len(events), events)
	}
	if events[0].Key != KeyQuit || events[1].Kind != EventWheel || events[2].Key != KeyRefresh {
		t.Fatalf("events = %+v", events)
	}
}

func TestDecodeSwallowsMultibyteRunes(t *testing.T) {
	var d Decoder
	d.Feed([]byte{0xc3})
	if _, ok := d.Next(); ok {
		t.Fatalf("split rune produced an event")
	}

	d.Feed([]byte{0xa9, 'q'})
	ev, ok := d.Next()
	if !ok || ev.Key != KeyQuit {
		t.Fatalf("got %+v ok=%v, want rune swallowed and q decoded", ev, ok)
	}
}
