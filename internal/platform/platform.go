package platform

import (
	"context"

	"github.com/mj1618/ymsp/internal/model"
)

// Querier reads the window manager's current state.
type Querier interface {
	// Windows returns every window yabai knows about, on all spaces.
	Windows(ctx context.Context) ([]model.Window, error)

	Displays(ctx context.Context) ([]model.Display, error)
	FocusedDisplay(ctx context.Context) (model.Display, error)
	Spaces(ctx context.Context) ([]model.Space, error)
	FocusedSpace(ctx context.Context) (model.Space, error)

	// LeftPadding returns the configured left padding of the tiling layout.
	LeftPadding(ctx context.Context) (float64, error)
}

// Commander sends mutation messages to the window manager.
type Commander interface {
	Send(ctx context.Context, msg Message) error
}

// Service is the full window manager port.
type Service interface {
	Querier
	Commander
}
