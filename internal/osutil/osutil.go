package osutil

const Windows = "windows"

type exitCode int

const ExitError exitCode = 1

const (
	DirPermission  = 0o755
	FilePermission = 0o600
)

// Code returns the exit code as an int for os.Exit.
func (e exitCode) Code() int {
	return int(e)
}
