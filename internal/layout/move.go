package layout

import (
	"context"

	"github.com/mj1618/ymsp/internal/model"
	"github.com/mj1618/ymsp/internal/platform"
)

// MoveToMaster warps w into the master region. Classification uses the
// snapshot, so callers refresh afterwards.
func (m *Manager) MoveToMaster(ctx context.Context, w model.Window) error {
	m.logger.Debug("moving window to master", "id", w.ID, "app", w.App)
	id := platform.WindowID(w.ID)
	if m.expected < len(m.windows) {
		if err := m.send(ctx, platform.Warp(id, platform.MasterDirection(m.position))); err != nil {
			return err
		}
	}
	if m.IsMaster(w) {
		m.logger.Debug("window already in master", "id", w.ID)
		return nil
	}

	anchor, ok := m.WidestMasterWindow()
	if !ok {
		m.logger.Debug("no master window to anchor on")
		return nil
	}
	if anchor.ID == w.ID {
		return nil
	}
	if err := m.send(ctx, platform.Warp(id, platform.WindowID(anchor.ID))); err != nil {
		return err
	}
	if current, ok := m.updatedWindow(w.ID); ok && current.SplitType == model.SplitVertical {
		return m.toggleSplit(ctx, current)
	}
	return nil
}

// MoveToStack warps w into the stack region. It does nothing when the
// space has no stack.
func (m *Manager) MoveToStack(ctx context.Context, w model.Window) error {
	n := len(m.windows)
	if m.expected == n {
		m.logger.Info("no stack, not moving window", "id", w.ID)
		return nil
	}
	m.logger.Debug("moving window to stack", "id", w.ID, "app", w.App)

	id := platform.WindowID(w.ID)
	if err := m.send(ctx, platform.Warp(id, platform.MasterDirection(m.position))); err != nil {
		return err
	}
	if err := m.ColumnizeStack(ctx); err != nil {
		return err
	}
	if n == 2 && w.SplitType == model.SplitHorizontal {
		return m.toggleSplit(ctx, w)
	}
	if m.IsStack(w) {
		m.logger.Debug("window already in stack", "id", w.ID)
		return nil
	}

	anchor, ok := m.WidestStackWindow()
	if !ok {
		m.logger.Debug("no stack window to anchor on")
		return nil
	}
	if anchor.ID == w.ID {
		return nil
	}
	if err := m.send(ctx, platform.Warp(id, platform.WindowID(anchor.ID))); err != nil {
		return err
	}
	current, ok := m.updatedWindow(w.ID)
	if !ok {
		return nil
	}
	if (n == 2 && current.SplitType == model.SplitHorizontal) || current.SplitType == model.SplitVertical {
		return m.toggleSplit(ctx, current)
	}
	return nil
}
