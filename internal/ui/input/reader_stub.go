//go:build windows || plan9 || js || wasip1

package input

// PollRead has no select-based implementation on these platforms; the
// session loop degrades to keyboard-free operation driven by timers.
func PollRead(fd int, buf []byte) (int, error) {
	return 0, nil
}
