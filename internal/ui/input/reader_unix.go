//go:build !windows && !plan9 && !js && !wasip1

package input

import "golang.org/x/sys/unix"

// PollRead reads whatever input is waiting on fd without blocking. It
// returns 0 bytes when the descriptor has nothing ready, so the session loop
// can poll it once per iteration and move on.
func PollRead(fd int, buf []byte) (int, error) {
	var readfds unix.FdSet
	fdSetAdd(&readfds, fd)
	timeout := unix.Timeval{}

	n, err := unix.Select(fd+1, &readfds, nil, nil, &timeout)
	if err == unix.EINTR {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if n == 0 || !fdSetHas(&readfds, fd) {
		return 0, nil
	}

	m, err := unix.Read(fd, buf)
	if err == unix.EINTR || err == unix.EAGAIN {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if m < 0 {
		m = 0
	}
	return m, nil
}

func fdSetAdd(set *unix.FdSet, fd int) {
	if fd < 0 {
		return
	}
	set.Bits[fd/64] |= 1 << (uint(fd) % 64)
}

func fdSetHas(set *unix.FdSet, fd int) bool {
	if fd < 0 {
		return false
	}
	return set.Bits[fd/64]&(1<<(uint(fd)%64)) != 0
}
