package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// ErrLocked is returned when another live process holds the data file.
var ErrLocked = errors.New("data file is in use")

// Lock is a PID lock file that keeps two processes from editing the same
// data file at once. It lives next to the data file as <file>.lock.
type Lock struct {
	path string
}

// NewLock creates a lock for the given data file.
func NewLock(dataFile string) *Lock {
	return &Lock{path: dataFile + ".lock"}
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Acquire takes the lock. A lock left behind by a dead process, or one that
// holds garbage instead of a PID, is removed and taken over once.
func (l *Lock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}

	err := l.create()
	if err == nil || !os.IsExist(err) {
		return err
	}

	pid, held, err := l.holder()
	if err != nil {
		return err
	}
	if held {
		return fmt.Errorf("%w by PID %d", ErrLocked, pid)
	}

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove stale lock file: %w", err)
	}
	if err := l.create(); err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: taken by another process during retry", ErrLocked)
		}
		return err
	}
	return nil
}

// create makes the lock file with O_EXCL and writes our PID into it. The
// returned error satisfies os.IsExist when the file is already there.
func (l *Lock) create() error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return err
		}
		return fmt.Errorf("failed to create lock file: %w", err)
	}

	_, writeErr := fmt.Fprintf(f, "%d", os.Getpid())
	f.Close()
	if writeErr != nil {
		os.Remove(l.path)
		return fmt.Errorf("failed to write lock file: %w", writeErr)
	}
	return nil
}

// holder reads the PID in the lock file and reports whether that process is alive.
func (l *Lock) holder() (int, bool, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read lock file: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false, nil
	}
	return pid, processExists(pid), nil
}

// Release removes the lock file. Releasing twice is fine.
func (l *Lock) Release() error {
	err := os.Remove(l.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}

// IsLocked reports whether a live process holds the lock.
func (l *Lock) IsLocked() (bool, error) {
	_, held, err := l.holder()
	return held, err
}

// processExists checks if a process with the given PID is running.
// Uses kill with signal 0, which checks for process existence without sending a signal.
func processExists(pid int) bool {
	if pid == os.Getpid() {
		return true
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
