package textutil

import "strings"

// Sanitize rewrites report-derived text so it cannot move the cursor or start
// an escape sequence when echoed to the terminal. Tabs, carriage returns and
// newlines become spaces, other C0/C1 controls become '?', and zero-width or
// bidi formatting runes are dropped entirely.
func Sanitize(text string) string {
	for _, ru := range text {
		if needsRewrite(ru) {
			return rewrite(text)
		}
	}
	return text
}

func needsRewrite(ru rune) bool {
	if ru < 0x20 || ru == 0x7f {
		return true
	}
	if ru >= 0x80 && ru <= 0x9f {
		return true
	}
	return isFormattingRune(ru)
}

func rewrite(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, ru := range text {
		switch {
		case ru == '\t' || ru == '\n' || ru == '\r':
			b.WriteByte(' ')
		case ru < 0x20 || ru == 0x7f || (ru >= 0x80 && ru <= 0x9f):
			b.WriteByte('?')
		case isFormattingRune(ru):
			// dropped
		default:
			b.WriteRune(ru)
		}
	}
	return b.String()
}

// isFormattingRune reports zero-width and bidi control characters. These have
// no cell width but can reorder or hide surrounding text.
func isFormattingRune(ru rune) bool {
	switch {
	case ru == 0x00ad || ru == 0x2060 || ru == 0xfeff:
		return true
	case ru >= 0x200b && ru <= 0x200f:
		return true
	case ru >= 0x202a && ru <= 0x202e:
		return true
	case ru >= 0x2066 && ru <= 0x2069:
		return true
	}
	return false
}
