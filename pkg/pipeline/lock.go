package pipeline

import (
	"os"
	"path/filepath"
	"syscall"
)

// sessionLockContent is the exact session.lock payload: the single UTF-8
// character SNOWMAN (U+2603), bytes E2 98 83.
var sessionLockContent = []byte{0xE2, 0x98, 0x83}

// SessionLock holds an exclusive advisory lock on a session.lock file
// inside a world directory, released by Close. Acquired with
// syscall.Flock rather than a third-party locking library: nothing in this
// codebase reaches for one, and the standard library already exposes what's
// needed for a single advisory file lock.
type SessionLock struct {
	file *os.File
}

// AcquireSessionLock creates (or opens) worldDir/session.lock and takes an
// exclusive, non-blocking lock on it. Returns a SessionLockBusy error if
// another process already holds it.
func AcquireSessionLock(worldDir string) (*SessionLock, error) {
	path := filepath.Join(worldDir, "session.lock")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, wrap(IOError, err)
	}
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		f.Close()
		return nil, wrap(SessionLockBusy, err)
	}
	if err := f.Truncate(0); err != nil {
		f.Close()
		return nil, wrap(IOError, err)
	}
	if _, err := f.WriteAt(sessionLockContent, 0); err != nil {
		f.Close()
		return nil, wrap(IOError, err)
	}
	return &SessionLock{file: f}, nil
}

// Close releases the lock and closes the underlying file.
func (l *SessionLock) Close() error {
	syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN)
	return l.file.Close()
}
