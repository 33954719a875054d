package textutil

import "strings"

const (
	pathSeparator = "/"
	ellipsis      = "..."
	ellipsisWidth = 3
)

// Truncate fits text into maxWidth display cells.
//
// Path-shaped strings keep their root segment and basename and drop middle
// segments from the right, producing root[/middle...]/.../basename. Anything
// else keeps its right-most tail behind a leading "..." marker. Text that
// already fits is returned unchanged, so truncating twice with the same width
// is a no-op. The result never exceeds maxWidth cells for any maxWidth that
// can hold the marker.
func Truncate(text string, maxWidth int) string {
	if DisplayWidth(text) <= maxWidth {
		return text
	}
	if maxWidth <= ellipsisWidth {
		return ellipsis
	}
	if shortened, ok := truncatePath(text, maxWidth); ok {
		return shortened
	}
	return truncateTail(text, maxWidth)
}

// truncatePath collapses middle path segments: the root segment and the
// basename always survive, and middle segments are kept left to right while
// they fit alongside the "/.../<basename>" suffix.
func truncatePath(text string, maxWidth int) (string, bool) {
	segments := strings.Split(text, pathSeparator)
	if len(segments) < 2 {
		return "", false
	}

	base := segments[len(segments)-1]
	suffix := pathSeparator + ellipsis + pathSeparator + base

	kept := segments[0]
	if DisplayWidth(kept+suffix) > maxWidth {
		return "", false
	}
	for _, middle := range segments[1 : len(segments)-1] {
		trial := kept + pathSeparator + middle
		if DisplayWidth(trial+suffix) > maxWidth {
			break
		}
		kept = trial
	}
	return kept + suffix, true
}

func truncateTail(text string, maxWidth int) string {
	available := maxWidth - ellipsisWidth

	runes := []rune(text)
	width := 0
	start := len(runes)
	for i := len(runes) - 1; i >= 0; i-- {
		w := RuneWidth(runes[i])
		if width+w > available {
			break
		}
		width += w
		start = i
	}
	return ellipsis + string(runes[start:])
}
