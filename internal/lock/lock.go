// Package lock implements the cross-process exclusivity gate: a lock file
// created exclusively and stamped with the owner's pid.
package lock

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// staleGrace is how long an empty or malformed lock file is assumed to be
// mid-write by its creator before it counts as stale.
const staleGrace = time.Second

// DefaultPollInterval bounds how long a waiter sleeps between stale checks
// when no file event arrives.
const DefaultPollInterval = 250 * time.Millisecond

// ErrNotHeld is returned by Release when the file does not name this process.
var ErrNotHeld = errors.New("lock not held by this process")

// Lock is a pid-stamped lock file.
type Lock struct {
	path   string
	pid    int
	logger *log.Logger

	PollInterval time.Duration
}

func New(path string, logger *log.Logger) *Lock {
	if logger == nil {
		logger = log.Default()
	}
	return &Lock{
		path:         path,
		pid:          os.Getpid(),
		logger:       logger,
		PollInterval: DefaultPollInterval,
	}
}

func (l *Lock) Path() string { return l.path }

// owner reads the pid stored in the lock file. ok is false when the file
// does not exist; a file that does not hold a pid yields pid 0.
func (l *Lock) owner() (pid int, ok bool, err error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read lock file: %w", err)
	}
	pid, err = strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, true, nil
	}
	return pid, true, nil
}

// IsLocked reports whether the lock file exists and names a live process.
// Missing, malformed and stale files all count as unlocked.
func (l *Lock) IsLocked() (bool, error) {
	pid, ok, err := l.owner()
	if err != nil || !ok {
		return false, err
	}
	return pid > 0 && processAlive(pid), nil
}

// Owned reports whether the lock file names this process.
func (l *Lock) Owned() (bool, error) {
	pid, ok, err := l.owner()
	if err != nil || !ok {
		return false, err
	}
	return pid == l.pid, nil
}

// TryAcquire takes the lock if it is free or stale. It never blocks.
func (l *Lock) TryAcquire() (bool, error) {
	for {
		f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			_, werr := f.WriteString(strconv.Itoa(l.pid))
			if err := errors.Join(werr, f.Close()); err != nil {
				os.Remove(l.path)
				return false, fmt.Errorf("write lock file: %w", err)
			}
			l.logger.Debug("lock acquired", "path", l.path, "pid", l.pid)
			return true, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return false, fmt.Errorf("create lock file: %w", err)
		}

		pid, ok, err := l.owner()
		if err != nil {
			return false, err
		}
		if !ok {
			// Released between our create and read.
			continue
		}
		if pid > 0 && processAlive(pid) {
			return false, nil
		}
		if pid == 0 && l.recentlyWritten() {
			return false, nil
		}
		l.logger.Warn("removing stale lock", "path", l.path, "pid", pid)
		if err := os.Remove(l.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("remove stale lock: %w", err)
		}
	}
}

func (l *Lock) recentlyWritten() bool {
	info, err := os.Stat(l.path)
	return err == nil && time.Since(info.ModTime()) < staleGrace
}

// Acquire blocks until the lock is taken or ctx is done. Waiters wake on
// removal of the lock file and re-check staleness every PollInterval.
func (l *Lock) Acquire(ctx context.Context) error {
	ok, err := l.TryAcquire()
	if err != nil || ok {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch lock: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(l.path)); err != nil {
		return fmt.Errorf("watch lock dir: %w", err)
	}

	interval := l.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	l.logger.Info("waiting for lock", "path", l.path)
	target := filepath.Clean(l.path)
	for {
		// The watch is armed, so a release after this check is not missed.
		ok, err := l.TryAcquire()
		if err != nil || ok {
			return err
		}
		if err := l.wait(ctx, watcher, ticker, target); err != nil {
			return err
		}
	}
}

func (l *Lock) wait(ctx context.Context, watcher *fsnotify.Watcher, ticker *time.Ticker, target string) error {
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for lock %s: %w", l.path, ctx.Err())
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				return nil
			}
		case err, ok := <-watcher.Errors:
			if ok {
				l.logger.Debug("lock watcher error", "err", err)
			}
		case <-ticker.C:
			return nil
		}
	}
}

// Release removes the lock file if this process owns it.
func (l *Lock) Release() error {
	owned, err := l.Owned()
	if err != nil {
		return err
	}
	if !owned {
		return fmt.Errorf("%w: %s", ErrNotHeld, l.path)
	}
	if err := os.Remove(l.path); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	l.logger.Debug("lock released", "path", l.path)
	return nil
}

// Run acquires the lock, calls fn and releases the lock.
func (l *Lock) Run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if err := l.Acquire(ctx); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, l.Release())
	}()
	return fn(ctx)
}
