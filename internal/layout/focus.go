package layout

import (
	"context"

	"github.com/mj1618/ymsp/internal/model"
	"github.com/mj1618/ymsp/internal/platform"
)

func (m *Manager) focus(ctx context.Context, w model.Window, ok bool) error {
	if !ok {
		m.logger.Debug("no window to focus")
		return nil
	}
	m.logger.Debug("focusing window", "id", w.ID, "app", w.App)
	return m.send(ctx, platform.FocusWindow(platform.WindowID(w.ID)))
}

// FocusUp moves focus north, wrapping from the top of master to the bottom
// of the stack and from the top of the stack to the bottom of master.
func (m *Manager) FocusUp(ctx context.Context) error {
	w, ok := model.FocusedWindow(m.windows)
	if !ok {
		return m.send(ctx, platform.FocusWindow(platform.First))
	}
	masters, stack := m.MasterWindows(), m.StackWindows()
	switch {
	case m.IsMaster(w) && IsTopWindow(masters, w):
		target, ok := bottomWindow(stack)
		if !ok {
			target, ok = bottomWindow(masters)
		}
		return m.focus(ctx, target, ok)
	case m.IsStack(w) && IsTopWindow(stack, w):
		target, ok := bottomWindow(masters)
		return m.focus(ctx, target, ok)
	default:
		return m.send(ctx, platform.FocusWindow(platform.North))
	}
}

// FocusDown is the mirror of FocusUp.
func (m *Manager) FocusDown(ctx context.Context) error {
	w, ok := model.FocusedWindow(m.windows)
	if !ok {
		return m.send(ctx, platform.FocusWindow(platform.First))
	}
	masters, stack := m.MasterWindows(), m.StackWindows()
	switch {
	case m.IsMaster(w) && IsBottomWindow(masters, w):
		target, ok := topWindow(stack)
		if !ok {
			target, ok = topWindow(masters)
		}
		return m.focus(ctx, target, ok)
	case m.IsStack(w) && IsBottomWindow(stack, w):
		target, ok := topWindow(masters)
		return m.focus(ctx, target, ok)
	default:
		return m.send(ctx, platform.FocusWindow(platform.South))
	}
}

// FocusMaster focuses the top master window.
func (m *Manager) FocusMaster(ctx context.Context) error {
	target, ok := topWindow(m.MasterWindows())
	return m.focus(ctx, target, ok)
}
