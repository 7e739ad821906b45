package layout

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrCountAtMaximum = errors.New("master window count already at maximum")
	ErrCountAtMinimum = errors.New("master window count already at minimum")
)

// PlaceNewWindow puts a freshly created window into master or stack and
// then converges on target. Nothing happens if the layout is still valid.
func (m *Manager) PlaceNewWindow(ctx context.Context, pid, id, target int, toMaster bool) error {
	if v := m.Validate(m.expected); v.Valid {
		m.logger.Info("layout is valid, no changes made")
		return nil
	}

	w, err := m.WindowByPID(pid, id)
	if err != nil {
		return err
	}
	masters := m.MasterWindows()
	sortByYX(masters)

	switch {
	case toMaster:
		if len(masters) >= target {
			if err := m.MoveToStack(ctx, masters[0]); err != nil {
				return err
			}
		}
		err = m.MoveToMaster(ctx, w)
	case len(masters) > 1 && len(masters) <= target:
		m.logger.Info("moving new window to master", "id", w.ID, "app", w.App)
		err = m.MoveToMaster(ctx, w)
	default:
		m.logger.Info("moving new window to stack", "id", w.ID, "app", w.App)
		err = m.MoveToStack(ctx, w)
	}
	if err != nil {
		return err
	}
	if err := m.Refresh(ctx); err != nil {
		return err
	}
	return m.Converge(ctx, target)
}

// IncreaseMasterCount converges on current+1 and returns the new count.
// The count must stay below the number of windows.
func (m *Manager) IncreaseMasterCount(ctx context.Context, current int) (int, error) {
	n := len(m.windows)
	if current+1 >= n {
		return current, fmt.Errorf("%w: %d master windows with %d windows open", ErrCountAtMaximum, current, n)
	}
	next := current + 1
	if err := m.Converge(ctx, next); err != nil {
		return current, err
	}
	return next, nil
}

// DecreaseMasterCount converges on current-1 and returns the new count.
func (m *Manager) DecreaseMasterCount(ctx context.Context, current int) (int, error) {
	if current <= 1 {
		return current, fmt.Errorf("%w: %d", ErrCountAtMinimum, current)
	}
	next := current - 1
	if err := m.Converge(ctx, next); err != nil {
		return current, err
	}
	return next, nil
}
