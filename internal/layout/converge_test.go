package layout

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mj1618/ymsp/internal/model"
	"github.com/mj1618/ymsp/internal/platform"
)

func TestConverge(t *testing.T) {
	tests := []struct {
		name        string
		position    model.MasterPosition
		width       float64
		pad         float64
		columns     [][]int
		target      int
		wantMasters []int
		wantStack   []int
	}{
		{
			name:        "right demotes the bottom master",
			position:    model.PositionRight,
			width:       600,
			columns:     [][]int{{1, 2}, {3, 4}},
			target:      1,
			wantMasters: []int{3},
			wantStack:   []int{1, 2, 4},
		},
		{
			name:        "left demotes the bottom master",
			position:    model.PositionLeft,
			width:       1000,
			pad:         10,
			columns:     [][]int{{1, 2}, {3}},
			target:      1,
			wantMasters: []int{1},
			wantStack:   []int{2, 3},
		},
		{
			name:        "left demotes several masters",
			position:    model.PositionLeft,
			width:       1000,
			pad:         10,
			columns:     [][]int{{1, 2, 3}, {4}},
			target:      1,
			wantMasters: []int{1},
			wantStack:   []int{2, 3, 4},
		},
		{
			name:        "left promotes the bottom stack window",
			position:    model.PositionLeft,
			width:       1000,
			pad:         10,
			columns:     [][]int{{1}, {2, 3}},
			target:      2,
			wantMasters: []int{1, 3},
			wantStack:   []int{2},
		},
		{
			name:        "right promotes the bottom stack window",
			position:    model.PositionRight,
			width:       600,
			columns:     [][]int{{1, 2, 3}, {4}},
			target:      2,
			wantMasters: []int{3, 4},
			wantStack:   []int{1, 2},
		},
		{
			name:        "left moves a middle window to the stack",
			position:    model.PositionLeft,
			width:       1000,
			pad:         10,
			columns:     [][]int{{1}, {2}, {3}},
			target:      1,
			wantMasters: []int{1},
			wantStack:   []int{2, 3},
		},
		{
			name:        "right moves a middle window to the stack",
			position:    model.PositionRight,
			width:       600,
			columns:     [][]int{{1}, {2}, {3}},
			target:      1,
			wantMasters: []int{3},
			wantStack:   []int{1, 2},
		},
		{
			name:        "left fills master from middle windows",
			position:    model.PositionLeft,
			width:       1000,
			pad:         10,
			columns:     [][]int{{1}, {2}, {3}, {4}},
			target:      2,
			wantMasters: []int{1, 3},
			wantStack:   []int{2, 4},
		},
		{
			name:        "every window a master",
			position:    model.PositionLeft,
			width:       1000,
			pad:         10,
			columns:     [][]int{{1}, {2}},
			target:      2,
			wantMasters: []int{1, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFake(tt.width, tt.pad, tt.columns...)
			m := loadManager(t, f, tt.position, 1)

			if err := m.Converge(context.Background(), tt.target); err != nil {
				t.Fatalf("Converge(%d) error: %v", tt.target, err)
			}
			if err := m.Refresh(context.Background()); err != nil {
				t.Fatal(err)
			}
			if v := m.Validate(tt.target); !v.Valid {
				t.Fatalf("layout %v is %v", f.columns, v)
			}
			if diff := cmp.Diff(tt.wantMasters, ids(m.MasterWindows())); diff != "" {
				t.Errorf("masters mismatch (-want +got):\n%s", diff)
			}
			if len(tt.wantStack) > 0 {
				if diff := cmp.Diff(tt.wantStack, ids(m.StackWindows())); diff != "" {
					t.Errorf("stack mismatch (-want +got):\n%s", diff)
				}
			}
			if m.Expected() != tt.target {
				t.Errorf("Expected() = %d, want %d", m.Expected(), tt.target)
			}
		})
	}
}

func TestConvergeRightRecountsAfterDividingLineShift(t *testing.T) {
	f := newFake(600, 0, []int{1}, []int{2, 3}, []int{4})
	m := loadManager(t, f, model.PositionRight, 1)

	if err := m.Converge(context.Background(), 2); err != nil {
		t.Fatalf("Converge(2) error: %v (end %v)", err, f.columns)
	}
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	if v := m.Validate(2); !v.Valid {
		t.Fatalf("layout %v is %v", f.columns, v)
	}
	if got := len(m.MasterWindows()); got != 2 {
		t.Errorf("%d master windows, want 2", got)
	}
}

// columnPartitions returns every way of placing windows 1..n into columns,
// columns ordered by their smallest window id.
func columnPartitions(n int) [][][]int {
	var result [][][]int
	var walk func(id int, cols [][]int)
	walk = func(id int, cols [][]int) {
		if id > n {
			result = append(result, cloneColumns(cols))
			return
		}
		for i := range cols {
			next := cloneColumns(cols)
			next[i] = append(next[i], id)
			walk(id+1, next)
		}
		walk(id+1, append(cloneColumns(cols), []int{id}))
	}
	walk(1, nil)
	return result
}

func cloneColumns(cols [][]int) [][]int {
	out := make([][]int, len(cols))
	for i, col := range cols {
		out[i] = append([]int(nil), col...)
	}
	return out
}

func TestConvergeReachesEveryTarget(t *testing.T) {
	geometry := map[model.MasterPosition]struct{ width, pad float64 }{
		model.PositionLeft:  {1000, 10},
		model.PositionRight: {600, 0},
	}
	for n := 2; n <= 5; n++ {
		for _, cols := range columnPartitions(n) {
			// A single column needs CreateStack, which the fake does not model.
			if len(cols) < 2 {
				continue
			}
			for _, position := range []model.MasterPosition{model.PositionLeft, model.PositionRight} {
				for target := 1; target < n; target++ {
					for _, stored := range []int{1, target} {
						name := fmt.Sprintf("%v/%v/target=%d/stored=%d", position, cols, target, stored)
						t.Run(name, func(t *testing.T) {
							g := geometry[position]
							f := newFake(g.width, g.pad, cloneColumns(cols)...)
							m := loadManager(t, f, position, stored)

							if err := m.Converge(context.Background(), target); err != nil {
								t.Fatalf("Converge(%d) error: %v (end %v)", target, err, f.columns)
							}
							if err := m.Refresh(context.Background()); err != nil {
								t.Fatal(err)
							}
							if v := m.Validate(target); !v.Valid {
								t.Fatalf("layout %v is %v", f.columns, v)
							}
						})
					}
				}
			}
		}
	}
}

func TestColumnPartitions(t *testing.T) {
	for n, want := range map[int]int{1: 1, 2: 2, 3: 5, 4: 15, 5: 52} {
		if got := len(columnPartitions(n)); got != want {
			t.Errorf("len(columnPartitions(%d)) = %d, want %d", n, got, want)
		}
	}
	want := [][][]int{{{1, 2}}, {{1}, {2}}}
	if diff := cmp.Diff(want, columnPartitions(2)); diff != "" {
		t.Errorf("columnPartitions(2) mismatch (-want +got):\n%s", diff)
	}
}

func TestConvergeRightAnchorsOnWidestStackWindow(t *testing.T) {
	f := newFake(600, 0, []int{1, 2}, []int{3, 4})
	m := loadManager(t, f, model.PositionRight, 1)

	if got := m.DividingLineX(); got != 300 {
		t.Fatalf("DividingLineX() = %v, want 300", got)
	}
	if err := m.Converge(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	want := []platform.Message{
		platform.Warp(platform.WindowID(4), platform.East),
		platform.Warp(platform.WindowID(4), platform.WindowID(1)),
	}
	if diff := cmp.Diff(want, f.warps()); diff != "" {
		t.Errorf("warps mismatch (-want +got):\n%s", diff)
	}
}

func TestConvergeValidLayoutSendsNothing(t *testing.T) {
	f := newFake(1000, 10, []int{1}, []int{2, 3})
	f.split[1] = model.SplitVertical
	f.split[2] = model.SplitHorizontal
	f.split[3] = model.SplitHorizontal
	m := loadManager(t, f, model.PositionLeft, 1)

	for i := 0; i < 2; i++ {
		if err := m.Converge(context.Background(), 1); err != nil {
			t.Fatal(err)
		}
	}
	if len(f.sent) != 0 {
		t.Errorf("sent %d commands for a valid layout: %v", len(f.sent), f.sent)
	}
}

func TestConvergeIsIdempotent(t *testing.T) {
	f := newFake(1000, 10, []int{1}, []int{2}, []int{3}, []int{4})
	m := loadManager(t, f, model.PositionLeft, 1)

	if err := m.Converge(context.Background(), 2); err != nil {
		t.Fatal(err)
	}
	before := len(f.warps())
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := m.Converge(context.Background(), 2); err != nil {
		t.Fatal(err)
	}
	if got := len(f.warps()); got != before {
		t.Errorf("second Converge sent %d warps", got-before)
	}
}

func TestConvergeNormalisesSplits(t *testing.T) {
	f := newFake(1000, 10, []int{1}, []int{2, 3})
	f.split[1] = model.SplitHorizontal
	f.split[2] = model.SplitVertical
	f.split[3] = model.SplitHorizontal
	m := loadManager(t, f, model.PositionLeft, 1)

	if err := m.Converge(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	want := []platform.Message{
		platform.ToggleSplit(platform.WindowID(1)),
		platform.ToggleSplit(platform.WindowID(2)),
	}
	if diff := cmp.Diff(want, f.sent); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestConvergeZeroTarget(t *testing.T) {
	f := newFake(1000, 10, []int{1}, []int{2})
	m := loadManager(t, f, model.PositionLeft, 1)

	err := m.Converge(context.Background(), 0)
	if !errors.Is(err, ErrZeroTarget) {
		t.Fatalf("Converge(0) error = %v, want ErrZeroTarget", err)
	}
	if len(f.sent) != 0 {
		t.Errorf("sent %d commands", len(f.sent))
	}
	if m.Expected() != 1 {
		t.Errorf("Expected() = %d, want 1", m.Expected())
	}
}

func TestConvergeSingleWindow(t *testing.T) {
	f := newFake(1000, 10, []int{1})
	m := loadManager(t, f, model.PositionLeft, 1)

	if err := m.Converge(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if len(f.warps()) != 0 {
		t.Errorf("sent warps for a single window: %v", f.warps())
	}
}

func TestConvergeEmptySpace(t *testing.T) {
	f := newFake(1000, 10)
	m := loadManager(t, f, model.PositionLeft, 1)

	if err := m.Converge(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if len(f.sent) != 0 {
		t.Errorf("sent %d commands for an empty space", len(f.sent))
	}
}

func TestConvergeDeadlock(t *testing.T) {
	f := newFake(1000, 10, []int{1}, []int{2}, []int{3})
	f.frozen = true
	m := loadManager(t, f, model.PositionLeft, 1)

	err := m.Converge(context.Background(), 1)
	if !errors.Is(err, ErrDeadlock) {
		t.Fatalf("Converge() error = %v, want ErrDeadlock", err)
	}
	if got, want := len(f.warps()), 2*(MaxMiddleWindowMoves+1); got != want {
		t.Errorf("sent %d warps, want %d", got, want)
	}
}

func TestInvalidLayoutError(t *testing.T) {
	var err error = &InvalidLayoutError{Reason: "count mismatch: 3/1"}
	var target *InvalidLayoutError
	if !errors.As(err, &target) {
		t.Fatal("errors.As failed")
	}
	if got := err.Error(); got != "layout still invalid after update: count mismatch: 3/1" {
		t.Errorf("Error() = %q", got)
	}
}

func TestCreateStack(t *testing.T) {
	f := newFake(1000, 0, []int{1, 2})
	f.split[1] = model.SplitHorizontal
	f.split[2] = model.SplitVertical
	m := loadManager(t, f, model.PositionRight, 1)

	if m.StackExists() {
		t.Fatal("expected no stack with a single column at x 0")
	}
	if err := m.CreateStack(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(f.sent) == 0 || f.sent[0] != platform.ToggleSplit(platform.WindowID(1)) {
		t.Errorf("first command = %v, want a split toggle of window 1", f.sent)
	}
}
