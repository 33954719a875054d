package textutil

import "github.com/mattn/go-runewidth"

// DisplayWidth reports the printable width of text accounting for wide runes.
func DisplayWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += RuneWidth(ru)
	}
	return width
}

// RuneWidth reports the cell width of a single rune. Zero-width and
// nonprintable runes count as one cell; Sanitize replaces them before
// rendering anyway.
func RuneWidth(ru rune) int {
	w := runewidth.RuneWidth(ru)
	if w <= 0 {
		w = 1
	}
	return w
}
