// Package layout classifies windows into master and stack regions and
// drives yabai until the master/stack arrangement holds.
package layout

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mj1618/ymsp/internal/model"
	"github.com/mj1618/ymsp/internal/platform"
)

// Manager holds one snapshot of the focused space and the commands that
// act on it. Classification reads only the snapshot; it is refreshed
// explicitly after structural changes.
type Manager struct {
	svc      platform.Service
	position model.MasterPosition
	logger   *log.Logger

	display     model.Display
	space       model.Space
	leftPadding float64
	windows     []model.Window

	// expected is the master count classification works against.
	expected int
}

func New(svc platform.Service, position model.MasterPosition, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{svc: svc, position: position, logger: logger, expected: 1}
}

// Load takes a full snapshot: focused display, focused space, the layout
// left padding and the managed windows.
func (m *Manager) Load(ctx context.Context) error {
	display, err := m.svc.FocusedDisplay(ctx)
	if err != nil {
		return fmt.Errorf("query focused display: %w", err)
	}
	space, err := m.svc.FocusedSpace(ctx)
	if err != nil {
		return fmt.Errorf("query focused space: %w", err)
	}
	pad, err := m.svc.LeftPadding(ctx)
	if err != nil {
		return fmt.Errorf("query left padding: %w", err)
	}
	m.display, m.space, m.leftPadding = display, space, pad
	return m.Refresh(ctx)
}

// Refresh re-queries the windows of the snapshot's display and space.
func (m *Manager) Refresh(ctx context.Context) error {
	windows, err := m.svc.Windows(ctx)
	if err != nil {
		return fmt.Errorf("query windows: %w", err)
	}
	m.windows = model.Managed(windows, m.display, m.space)
	m.logger.Debug("snapshot", "windows", len(m.windows), "display", m.display.Index, "space", m.space.Index)
	return nil
}

func (m *Manager) Windows() []model.Window        { return m.windows }
func (m *Manager) Display() model.Display         { return m.display }
func (m *Manager) Space() model.Space             { return m.space }
func (m *Manager) Position() model.MasterPosition { return m.position }
func (m *Manager) Service() platform.Service      { return m.svc }
func (m *Manager) Expected() int                  { return m.expected }
func (m *Manager) SetExpected(n int)              { m.expected = n }

// Reconcile clamps a stored master count to the number of windows on the
// space, never below one, and makes it the expected count.
func (m *Manager) Reconcile(stored int) int {
	n := stored
	if len(m.windows) < n {
		n = len(m.windows)
	}
	if n < 1 {
		n = 1
	}
	if n != stored {
		m.logger.Debug("clamping master count", "stored", stored, "windows", len(m.windows), "count", n)
	}
	m.expected = n
	return n
}

// updatedWindow looks id up in the current snapshot. It does not query
// yabai, so the result can lag behind commands sent since the last refresh.
func (m *Manager) updatedWindow(id int) (model.Window, bool) {
	return model.FindWindow(m.windows, id)
}

// WindowByPID finds a window by id, checking that it belongs to pid.
func (m *Manager) WindowByPID(pid, id int) (model.Window, error) {
	for _, w := range m.windows {
		if w.ID == id && w.PID == pid {
			return w, nil
		}
	}
	return model.Window{}, fmt.Errorf("window %d of process %d not found on the focused space", id, pid)
}

func (m *Manager) send(ctx context.Context, msg platform.Message) error {
	m.logger.Debug("send", "command", msg.String())
	if err := m.svc.Send(ctx, msg); err != nil {
		return fmt.Errorf("%s: %w", msg.Kind, err)
	}
	return nil
}

func (m *Manager) toggleSplit(ctx context.Context, w model.Window) error {
	return m.send(ctx, platform.ToggleSplit(platform.WindowID(w.ID)))
}
