//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package store

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// LockSupported reports whether Open holds an advisory lock that InUse can
// observe.
const LockSupported = true

// acquire takes an exclusive, non-blocking flock on path + ".lock".
func acquire(path string) (*os.File, error) {
	f, err := os.OpenFile(path+".lock", os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, err
	}

	err = unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	if err != nil {
		_ = f.Close()

		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, ErrLocked.Fmt(path)
		}

		return nil, err
	}

	return f, nil
}

func unlock(f *os.File) error {
	if f == nil {
		return nil
	}

	err := unix.Flock(int(f.Fd()), unix.LOCK_UN)

	return errors.Join(err, f.Close())
}
