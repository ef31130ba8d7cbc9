//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package store

import "os"

// LockSupported reports whether Open holds an advisory lock that InUse can
// observe.
const LockSupported = false

// acquire is a no-op where flock is unavailable; the bolt backend still
// locks its own file.
func acquire(string) (*os.File, error) {
	return nil, nil
}

func unlock(*os.File) error {
	return nil
}
