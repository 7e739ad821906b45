package layout

import (
	"context"
	"fmt"

	"github.com/mj1618/ymsp/internal/model"
	"github.com/mj1618/ymsp/internal/platform"
)

// AdjacentDisplay returns the display step places away from current in
// left-to-right order, wrapping at both ends.
func AdjacentDisplay(displays []model.Display, current model.Display, step int) (model.Display, error) {
	sorted := append([]model.Display(nil), displays...)
	model.SortDisplaysByX(sorted)
	for i, d := range sorted {
		if d.ID != current.ID {
			continue
		}
		n := len(sorted)
		return sorted[((i+step)%n+n)%n], nil
	}
	return model.Display{}, fmt.Errorf("focused display %d not found among %d displays", current.ID, len(displays))
}

func adjacentDisplay(ctx context.Context, q platform.Querier, step int) (model.Display, error) {
	displays, err := q.Displays(ctx)
	if err != nil {
		return model.Display{}, fmt.Errorf("query displays: %w", err)
	}
	current, err := q.FocusedDisplay(ctx)
	if err != nil {
		return model.Display{}, fmt.Errorf("query focused display: %w", err)
	}
	return AdjacentDisplay(displays, current, step)
}

// FocusAdjacentDisplay focuses the next (step 1) or previous (step -1) display.
func FocusAdjacentDisplay(ctx context.Context, svc platform.Service, step int) error {
	d, err := adjacentDisplay(ctx, svc, step)
	if err != nil {
		return err
	}
	return svc.Send(ctx, platform.FocusDisplay(platform.DisplayIndex(d.Index)))
}

// SendToAdjacentDisplay moves the focused window to the next or previous display.
func SendToAdjacentDisplay(ctx context.Context, svc platform.Service, step int) error {
	d, err := adjacentDisplay(ctx, svc, step)
	if err != nil {
		return err
	}
	return svc.Send(ctx, platform.SendToDisplay(nil, platform.DisplayIndex(d.Index)))
}

// SwapWithMaster swaps the focused window toward the master edge.
func SwapWithMaster(ctx context.Context, svc platform.Service, position model.MasterPosition) error {
	return svc.Send(ctx, platform.Swap(nil, platform.MasterDirection(position)))
}

// CloseFocused closes the focused window.
func CloseFocused(ctx context.Context, svc platform.Service) error {
	return svc.Send(ctx, platform.CloseWindow(nil))
}
