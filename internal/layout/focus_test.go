package layout

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mj1618/ymsp/internal/model"
	"github.com/mj1618/ymsp/internal/platform"
)

func TestFocus(t *testing.T) {
	tests := []struct {
		name    string
		focused int
		focus   func(*Manager, context.Context) error
		want    platform.Selector
	}{
		{"up from top master wraps to bottom of stack", 1, (*Manager).FocusUp, platform.WindowID(4)},
		{"up from top of stack wraps to bottom master", 3, (*Manager).FocusUp, platform.WindowID(2)},
		{"up inside master", 2, (*Manager).FocusUp, platform.North},
		{"up inside stack", 4, (*Manager).FocusUp, platform.North},
		{"down from bottom master wraps to top of stack", 2, (*Manager).FocusDown, platform.WindowID(3)},
		{"down from bottom of stack wraps to top master", 4, (*Manager).FocusDown, platform.WindowID(1)},
		{"down inside master", 1, (*Manager).FocusDown, platform.South},
		{"up with nothing focused", 0, (*Manager).FocusUp, platform.First},
		{"down with nothing focused", 0, (*Manager).FocusDown, platform.First},
		{"master", 4, (*Manager).FocusMaster, platform.WindowID(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFake(1000, 10, []int{1, 2}, []int{3, 4})
			f.focused = tt.focused
			m := loadManager(t, f, model.PositionLeft, 2)

			if err := tt.focus(m, context.Background()); err != nil {
				t.Fatal(err)
			}
			want := []platform.Message{platform.FocusWindow(tt.want)}
			if diff := cmp.Diff(want, f.sent); diff != "" {
				t.Errorf("commands mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFocusUpWithoutStack(t *testing.T) {
	f := newFake(1000, 10, []int{1, 2})
	f.focused = 1
	m := loadManager(t, f, model.PositionLeft, 2)

	if err := m.FocusUp(context.Background()); err != nil {
		t.Fatal(err)
	}
	want := []platform.Message{platform.FocusWindow(platform.WindowID(2))}
	if diff := cmp.Diff(want, f.sent); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestFocusMasterEmptySpace(t *testing.T) {
	f := newFake(1000, 10)
	m := loadManager(t, f, model.PositionLeft, 1)

	if err := m.FocusMaster(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(f.sent) != 0 {
		t.Errorf("sent %v", f.sent)
	}
}
