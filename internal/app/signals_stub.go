//go:build windows || plan9 || js || wasip1

package app

import "os"

func resizeSignals() []os.Signal {
	return nil
}

func termSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
