package state

import (
	"math"
	"time"
)

// ScrollState owns one pane's scroll position. The offset is clamped into
// [0, MaxScroll] on every mutation.
type ScrollState struct {
	Offset   int
	Viewport int
	Total    int
}

// MaxScroll is the largest valid offset for the current content size.
func (s *ScrollState) MaxScroll() int {
	m := s.Total - s.Viewport
	if m < 0 {
		m = 0
	}
	return m
}

// SetViewport records the rows available to the pane and the total content
// size, pulling the offset back if the maximum shrank under it.
func (s *ScrollState) SetViewport(height, total int) {
	if height < 0 {
		height = 0
	}
	if total < 0 {
		total = 0
	}
	s.Viewport = height
	s.Total = total
	s.clamp()
}

// ScrollBy moves the offset by delta lines.
func (s *ScrollState) ScrollBy(delta int) {
	s.Offset += delta
	s.clamp()
}

// SetOffset jumps to offset.
func (s *ScrollState) SetOffset(offset int) {
	s.Offset = offset
	s.clamp()
}

func (s *ScrollState) clamp() {
	if s.Offset < 0 {
		s.Offset = 0
	}
	if max := s.MaxScroll(); s.Offset > max {
		s.Offset = max
	}
}

// Clamped re-checks the offset against the current bounds and returns the
// safe value. Render paths use this instead of trusting the stored offset,
// so a data shrink between mutations can never index past the content.
func (s *ScrollState) Clamped() int {
	offset := s.Offset
	if offset < 0 {
		offset = 0
	}
	if max := s.MaxScroll(); offset > max {
		offset = max
	}
	return offset
}

// FastScrollDuration is the fixed length of an eased scroll.
const FastScrollDuration = 250 * time.Millisecond

// ScrollAnimation is an eased transition of one pane's offset. At most one
// exists in the whole application; starting another replaces it, and a
// manual scroll or view-mode change cancels it.
type ScrollAnimation struct {
	Pane     int
	From     int
	To       int
	Start    time.Time
	Duration time.Duration
}

// StartFastScroll builds the animation record for an eased scroll.
func StartFastScroll(pane, from, to int, now time.Time, duration time.Duration) *ScrollAnimation {
	if duration <= 0 {
		duration = FastScrollDuration
	}
	return &ScrollAnimation{Pane: pane, From: from, To: to, Start: now, Duration: duration}
}

// Tick reports the interpolated offset at now, the progress in [0, 1], and
// whether the animation has finished.
func (a *ScrollAnimation) Tick(now time.Time) (offset int, progress float64, done bool) {
	progress = float64(now.Sub(a.Start)) / float64(a.Duration)
	if progress < 0 {
		progress = 0
	}
	if progress >= 1 {
		progress = 1
		done = true
	}
	offset = int(math.Round(float64(a.From) + (float64(a.To)-float64(a.From))*progress))
	return offset, progress, done
}
