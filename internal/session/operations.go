package session

import (
	"context"

	"github.com/mj1618/ymsp/internal/layout"
)

// Display steps for the display operations.
const (
	Next     = 1
	Previous = -1
)

// Converge arranges the focused space for the stored master count. It is
// what yabai start and window-moved events trigger.
func (s *Session) Converge(ctx context.Context) error {
	return s.layout.Converge(ctx, s.count)
}

// WindowCreated places a new window reported by a yabai signal.
func (s *Session) WindowCreated(ctx context.Context, pid, id int) error {
	return s.layout.PlaceNewWindow(ctx, pid, id, s.count, s.cfg.MoveNewWindowsToMaster)
}

// IncreaseMasterCount adds one master window and stores the new count. The
// stored count is left alone when convergence fails.
func (s *Session) IncreaseMasterCount(ctx context.Context) (int, error) {
	n, err := s.layout.IncreaseMasterCount(ctx, s.count)
	if err != nil {
		return s.count, err
	}
	return n, s.setCount(n)
}

// DecreaseMasterCount removes one master window and stores the new count.
func (s *Session) DecreaseMasterCount(ctx context.Context) (int, error) {
	n, err := s.layout.DecreaseMasterCount(ctx, s.count)
	if err != nil {
		return s.count, err
	}
	return n, s.setCount(n)
}

func (s *Session) FocusUp(ctx context.Context) error     { return s.layout.FocusUp(ctx) }
func (s *Session) FocusDown(ctx context.Context) error   { return s.layout.FocusDown(ctx) }
func (s *Session) FocusMaster(ctx context.Context) error { return s.layout.FocusMaster(ctx) }

// FocusDisplay focuses the display step places away in left-to-right order.
func (s *Session) FocusDisplay(ctx context.Context, step int) error {
	return layout.FocusAdjacentDisplay(ctx, s.svc, step)
}

// MoveToDisplay sends the focused window to the display step places away.
func (s *Session) MoveToDisplay(ctx context.Context, step int) error {
	return layout.SendToAdjacentDisplay(ctx, s.svc, step)
}

// MoveToMaster swaps the focused window toward the master edge.
func (s *Session) MoveToMaster(ctx context.Context) error {
	return layout.SwapWithMaster(ctx, s.svc, s.cfg.MasterPosition)
}

func (s *Session) CloseFocused(ctx context.Context) error {
	return layout.CloseFocused(ctx, s.svc)
}
