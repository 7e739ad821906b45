// Package session runs one unit of ymsp work: take the exclusivity lock,
// snapshot the focused space, reconcile the stored master count and hand
// the result to an operation.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mj1618/ymsp/internal/config"
	"github.com/mj1618/ymsp/internal/layout"
	"github.com/mj1618/ymsp/internal/lock"
	"github.com/mj1618/ymsp/internal/model"
	"github.com/mj1618/ymsp/internal/platform"
	"github.com/mj1618/ymsp/internal/state"
)

// Options configures a Runner.
type Options struct {
	Config config.Config

	// Dir holds the state and lock files.
	Dir    string
	Logger *log.Logger

	// DryRun logs yabai writes and state saves instead of performing them.
	DryRun bool
}

// Runner opens sessions. It is safe to reuse across sessions but not to
// share between goroutines.
type Runner struct {
	cfg    config.Config
	logger *log.Logger
	dryRun bool
	lock   *lock.Lock
	store  *state.Store
}

func New(opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		cfg:    opts.Config,
		logger: logger,
		dryRun: opts.DryRun,
		lock:   lock.New(config.LockPath(opts.Dir), logger),
		store:  state.NewStore(config.StatePath(opts.Dir), logger),
	}
}

func (r *Runner) Config() config.Config { return r.cfg }

// Session is a snapshot of the focused space plus its stored master count.
type Session struct {
	layout *layout.Manager
	svc    platform.Service
	cfg    config.Config
	logger *log.Logger
	dryRun bool

	store *state.Store
	state state.State
	count int
}

// Locked runs fn with a fresh session while holding the exclusivity lock.
// Writes to yabai fail with platform.ErrLockLost if the lock file stops
// naming this process.
func (r *Runner) Locked(ctx context.Context, fn func(ctx context.Context, s *Session) error) error {
	return r.lock.Run(ctx, func(ctx context.Context) error {
		s, err := r.open(ctx, r.lock)
		if err != nil {
			return err
		}
		return fn(ctx, s)
	})
}

func (r *Runner) provider(owner platform.Owner) (platform.Service, error) {
	p, err := platform.NewProvider(platform.Options{
		YabaiPath: r.cfg.YabaiPath,
		Logger:    r.logger,
		DryRun:    r.dryRun,
		Owner:     owner,
	})
	if err != nil {
		return nil, err
	}
	return p.Service, nil
}

// snapshot loads the focused space and the state merged against the live
// spaces. The returned count is the stored count for the focused space.
func (r *Runner) snapshot(ctx context.Context, svc platform.Service) (*layout.Manager, state.State, int, error) {
	m := layout.New(svc, r.cfg.MasterPosition, r.logger)
	if err := m.Load(ctx); err != nil {
		return nil, nil, 0, err
	}
	spaces, err := svc.Spaces(ctx)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("query spaces: %w", err)
	}
	st, err := r.store.Load(spaces)
	if err != nil {
		return nil, nil, 0, err
	}
	stored, err := st.Get(m.Space().ID)
	if errors.Is(err, state.ErrUnknownSpace) {
		// The focused space was missing from the space list.
		stored = state.DefaultCount
	}
	return m, st, stored, nil
}

func (r *Runner) open(ctx context.Context, owner platform.Owner) (*Session, error) {
	svc, err := r.provider(owner)
	if err != nil {
		return nil, err
	}
	m, st, stored, err := r.snapshot(ctx, svc)
	if err != nil {
		return nil, err
	}

	s := &Session{
		layout: m,
		svc:    svc,
		cfg:    r.cfg,
		logger: r.logger,
		dryRun: r.dryRun,
		store:  r.store,
		state:  st,
	}
	s.count = m.Reconcile(stored)
	if err := st.Set(m.Space().ID, s.count); err != nil {
		return nil, err
	}
	if err := s.save(); err != nil {
		return nil, err
	}
	r.logger.Debug("session opened", "space", m.Space().ID, "windows", len(m.Windows()), "count", s.count)
	return s, nil
}

func (s *Session) save() error {
	if s.dryRun {
		s.logger.Warn("dry run, not saving state", "path", s.store.Path())
		return nil
	}
	return s.store.Save(s.state)
}

// Count is the master count of the focused space.
func (s *Session) Count() int { return s.count }

// Layout exposes the snapshot and classifier.
func (s *Session) Layout() *layout.Manager { return s.layout }

func (s *Session) Space() model.Space { return s.layout.Space() }

func (s *Session) setCount(n int) error {
	if err := s.state.Set(s.Space().ID, n); err != nil {
		return err
	}
	s.count = n
	return s.save()
}
