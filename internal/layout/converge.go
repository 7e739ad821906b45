package layout

import (
	"context"
	"errors"
	"fmt"

	"github.com/mj1618/ymsp/internal/model"
)

// MaxMiddleWindowMoves bounds the middle window loop of Converge.
const MaxMiddleWindowMoves = 10

var (
	// ErrZeroTarget is returned for a target master count of zero.
	ErrZeroTarget = errors.New("target number of master windows cannot be 0")

	// ErrDeadlock is returned when middle windows keep reappearing.
	ErrDeadlock = errors.New("deadlock detected while moving middle windows")
)

// InvalidLayoutError is returned when convergence ran all of its steps and
// the layout is still invalid.
type InvalidLayoutError struct {
	Reason string
}

func (e *InvalidLayoutError) Error() string {
	return "layout still invalid after update: " + e.Reason
}

// Converge issues warp and split commands until the focused space holds
// target master windows and no middle windows. A valid layout whose splits
// are already normalised produces no commands at all; otherwise only split
// toggles are sent for it.
//
// The master count is recounted from a fresh snapshot after every move: a
// move can shift the dividing line and reclassify windows it never touched.
func (m *Manager) Converge(ctx context.Context, target int) error {
	if target <= 0 {
		return ErrZeroTarget
	}
	prev := m.expected
	m.expected = target
	if err := m.converge(ctx, target); err != nil {
		m.expected = prev
		return err
	}
	return nil
}

func (m *Manager) converge(ctx context.Context, target int) error {
	m.logger.Info("updating windows", "target", target, "windows", len(m.windows))

	if err := m.ColumnizeMaster(ctx); err != nil {
		return err
	}
	if err := m.ColumnizeStack(ctx); err != nil {
		return err
	}

	validity := m.Validate(target)
	if validity.Valid {
		m.logger.Info("layout is valid")
		return nil
	}
	m.logger.Info("invalid layout", "reason", validity.Reason)

	n := len(m.windows)
	if target != n && !m.StackExists() {
		if err := m.CreateStack(ctx); err != nil {
			return err
		}
		if err := m.Refresh(ctx); err != nil {
			return err
		}
	}

	if target == n {
		for _, w := range m.windows {
			if w.SplitType != model.SplitVertical {
				continue
			}
			if err := m.toggleSplit(ctx, w); err != nil {
				return err
			}
		}
		if err := m.Refresh(ctx); err != nil {
			return err
		}
	}

	if n <= 1 {
		m.logger.Debug("single window, nothing to arrange")
		return nil
	}

	masters := m.MasterWindows()
	sortByYX(masters)
	current := len(masters)
	if current > target {
		m.logger.Info("too many master windows", "count", current, "target", target)
	}
	for current > target && len(masters) > 0 {
		w := masters[len(masters)-1]
		masters = masters[:len(masters)-1]
		if err := m.MoveToStack(ctx, w); err != nil {
			return err
		}
		if err := m.Refresh(ctx); err != nil {
			return err
		}
		current = len(m.MasterWindows())
	}

	if err := m.resolveMiddleWindows(ctx, target, &current); err != nil {
		return err
	}

	stack := m.StackWindows()
	sortByYX(stack)
	for current < target && len(stack) > 0 {
		m.logger.Info("not enough master windows", "count", current, "target", target)
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := m.MoveToMaster(ctx, w); err != nil {
			return err
		}
		if err := m.Refresh(ctx); err != nil {
			return err
		}
		current = len(m.MasterWindows())
	}

	if v := m.Validate(target); !v.Valid {
		return &InvalidLayoutError{Reason: v.Reason}
	}
	m.logger.Info("windows updated", "target", target)
	return nil
}

// resolveMiddleWindows moves middle windows into master while master is
// short, and into the stack otherwise.
func (m *Manager) resolveMiddleWindows(ctx context.Context, target int, current *int) error {
	moves := 0
	for middle := m.MiddleWindows(); len(middle) > 0; middle = m.MiddleWindows() {
		w := middle[0]
		m.logger.Info("middle window detected", "id", w.ID, "app", w.App)
		if *current < target {
			if err := m.MoveToMaster(ctx, w); err != nil {
				return err
			}
		} else if err := m.MoveToStack(ctx, w); err != nil {
			return err
		}

		moves++
		if moves > MaxMiddleWindowMoves {
			return fmt.Errorf("%w: %d middle windows left after %d moves", ErrDeadlock, len(middle), moves)
		}
		if err := m.Refresh(ctx); err != nil {
			return err
		}
		*current = len(m.MasterWindows())
	}
	return nil
}
