package state

import (
	"strings"
	"time"

	"github.com/kk-code-lab/repodash/internal/textutil"
)

// MarqueeLifetime is the fixed highlight window for an activated file. A
// repeat activation inside the window does not extend it: one window per
// activation.
const MarqueeLifetime = 30 * time.Second

// MarqueeEntity is one scrolling highlight row in the activity pane.
type MarqueeEntity struct {
	Path   string
	Expiry time.Time
	Tick   int
}

// ActivateFile adds a marquee entity for path unless one is already live.
// The expiry is anchored to the activity event's own timestamp, so reloading
// a report never stretches an existing highlight.
func ActivateFile(entities []*MarqueeEntity, path string, eventTime time.Time) []*MarqueeEntity {
	for _, e := range entities {
		if e.Path == path {
			return entities
		}
	}
	return append(entities, &MarqueeEntity{
		Path:   path,
		Expiry: eventTime.Add(MarqueeLifetime),
	})
}

// TickMarquees drops entities whose expiry has passed and advances the
// survivors' scroll position one cell.
func TickMarquees(entities []*MarqueeEntity, now time.Time) []*MarqueeEntity {
	alive := entities[:0]
	for _, e := range entities {
		if !e.Expiry.After(now) {
			continue
		}
		e.Tick++
		alive = append(alive, e)
	}
	for i := len(alive); i < len(entities); i++ {
		entities[i] = nil
	}
	return alive
}

// MarqueeWindow computes the slice of text visible at the given tick and the
// content column where it starts. The pane keeps one cell of padding on each
// side; the text crosses the remaining window one cell per tick, leaves
// completely, and wraps around to cross again. Ticks where the text sits
// entirely outside the window return an empty string. Runes that would
// straddle a window edge are dropped rather than half drawn.
func MarqueeWindow(text string, tick, width int) (int, string) {
	available := width - 2
	if available <= 0 {
		return 0, ""
	}
	textWidth := textutil.DisplayWidth(text)
	if textWidth == 0 {
		return 0, ""
	}

	cycle := available + textWidth
	start := tick%cycle - textWidth

	var visible strings.Builder
	startCol := 0
	col := start
	found := false
	for _, ru := range text {
		w := textutil.RuneWidth(ru)
		if col >= 0 && col+w <= available {
			if !found {
				startCol = col
				found = true
			}
			visible.WriteRune(ru)
		}
		col += w
	}
	if !found {
		return 0, ""
	}
	return startCol, visible.String()
}
