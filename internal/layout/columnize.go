package layout

import (
	"context"

	"github.com/mj1618/ymsp/internal/model"
)

// columnize toggles every window of ws whose split is from, using the
// snapshot's view of each window.
func (m *Manager) columnize(ctx context.Context, ws []model.Window, from model.SplitType) error {
	for _, w := range ws {
		current, ok := m.updatedWindow(w.ID)
		if !ok || current.SplitType != from {
			continue
		}
		if err := m.toggleSplit(ctx, current); err != nil {
			return err
		}
	}
	return nil
}

// ColumnizeMaster puts every master window on a vertical split.
func (m *Manager) ColumnizeMaster(ctx context.Context) error {
	masters := m.MasterWindows()
	m.logger.Debug("columnizing master windows", "count", len(masters))
	return m.columnize(ctx, masters, model.SplitHorizontal)
}

// ColumnizeStack puts every stack window on a horizontal split. Nothing is
// done when every window is a master.
func (m *Manager) ColumnizeStack(ctx context.Context) error {
	if m.expected == len(m.windows) {
		m.logger.Debug("no stack to columnize")
		return nil
	}
	stack := m.StackWindows()
	m.logger.Debug("columnizing stack windows", "count", len(stack))
	return m.columnize(ctx, stack, model.SplitVertical)
}

// StackExists uses the top-right window: with no stack, it sits at x 0.
func (m *Manager) StackExists() bool {
	top, ok := m.TopRightWindow()
	return ok && top.Frame.X != 0
}

// CreateStack splits the space into a master and a stack column.
func (m *Manager) CreateStack(ctx context.Context) error {
	m.logger.Info("creating stack")
	for _, w := range m.windows {
		if w.SplitType != model.SplitHorizontal {
			continue
		}
		if err := m.toggleSplit(ctx, w); err != nil {
			return err
		}
	}
	if err := m.ColumnizeStack(ctx); err != nil {
		return err
	}
	return m.ColumnizeMaster(ctx)
}
