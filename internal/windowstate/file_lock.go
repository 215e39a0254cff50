package windowstate

import (
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/sys/unix"
	"gopkg.in/yaml.v3"
)

const lockRetryInterval = 50 * time.Millisecond

// fileLock serializes writers of the state file across processes.
type fileLock struct {
	path string
	mu   sync.Mutex
	file *os.File
}

// lockHolder is written into the lock file while it is held.
type lockHolder struct {
	Owner    string    `yaml:"owner"`
	PID      int       `yaml:"pid"`
	LockedAt time.Time `yaml:"locked_at"`
}

func newFileLock(statePath string) *fileLock {
	return &fileLock{path: statePath + ".lock"}
}

func (l *fileLock) lock(timeout time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}

	deadline := time.Now().Add(timeout)
	for {
		err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			f.Close()
			return fmt.Errorf("lock %s: timeout after %v", l.path, timeout)
		}
		time.Sleep(lockRetryInterval)
	}

	l.file = f
	if err := l.writeHolder(); err != nil {
		l.releaseLocked()
		return fmt.Errorf("write lock holder: %w", err)
	}
	return nil
}

func (l *fileLock) unlock() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.releaseLocked()
}

func (l *fileLock) releaseLocked() error {
	if l.file == nil {
		return nil
	}

	if err := unix.Flock(int(l.file.Fd()), unix.LOCK_UN); err != nil {
		return fmt.Errorf("unlock: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("close lock file: %w", err)
	}
	l.file = nil
	os.Remove(l.path)
	return nil
}

func (l *fileLock) writeHolder() error {
	if err := l.file.Truncate(0); err != nil {
		return err
	}
	if _, err := l.file.Seek(0, 0); err != nil {
		return err
	}

	data, err := yaml.Marshal(lockHolder{
		Owner:    "vyre",
		PID:      os.Getpid(),
		LockedAt: time.Now(),
	})
	if err != nil {
		return err
	}
	if _, err := l.file.Write(data); err != nil {
		return err
	}
	return l.file.Sync()
}
