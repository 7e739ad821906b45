package layout

import (
	"context"
	"fmt"
	"io"
	"sort"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/mj1618/ymsp/internal/model"
	"github.com/mj1618/ymsp/internal/platform"
)

// fakeYabai simulates a space tiled as columns. Columns are laid out left
// to right after the left padding; windows in a column share its width and
// split its height evenly. Warps move windows between columns, split
// toggles only flip the reported split type.
type fakeYabai struct {
	display  model.Display
	displays []model.Display
	space    model.Space
	pad      float64
	columns  [][]int
	split    map[int]model.SplitType
	focused  int

	// frozen makes every mutation a no-op.
	frozen bool

	sent []platform.Message
}

func newFake(width, pad float64, columns ...[]int) *fakeYabai {
	f := &fakeYabai{
		display: model.Display{ID: 1, Index: 1, Frame: model.Frame{W: width, H: 800}},
		space:   model.Space{ID: 10, Index: 1, Display: 1},
		pad:     pad,
		columns: columns,
		split:   map[int]model.SplitType{},
	}
	return f
}

func (f *fakeYabai) Windows(context.Context) ([]model.Window, error) {
	var ws []model.Window
	if len(f.columns) == 0 {
		return ws, nil
	}
	colW := (f.display.Frame.W - f.pad) / float64(len(f.columns))
	for i, col := range f.columns {
		h := f.display.Frame.H / float64(len(col))
		for j, id := range col {
			ws = append(ws, model.Window{
				ID:  id,
				PID: 100 + id,
				App: fmt.Sprintf("app%d", id),
				Frame: model.Frame{
					X: f.display.Frame.X + f.pad + float64(i)*colW,
					Y: f.display.Frame.Y + float64(j)*h,
					W: colW,
					H: h,
				},
				Display:   f.display.Index,
				Space:     f.space.Index,
				SplitType: f.splitOf(id),
				HasFocus:  id == f.focused,
				IsVisible: true,
			})
		}
	}
	sort.Slice(ws, func(i, j int) bool { return ws[i].ID < ws[j].ID })
	return ws, nil
}

func (f *fakeYabai) splitOf(id int) model.SplitType {
	if s, ok := f.split[id]; ok {
		return s
	}
	return model.SplitNone
}

func (f *fakeYabai) Displays(context.Context) ([]model.Display, error) {
	if f.displays != nil {
		return f.displays, nil
	}
	return []model.Display{f.display}, nil
}

func (f *fakeYabai) FocusedDisplay(context.Context) (model.Display, error) { return f.display, nil }
func (f *fakeYabai) Spaces(context.Context) ([]model.Space, error)      { return []model.Space{f.space}, nil }
func (f *fakeYabai) FocusedSpace(context.Context) (model.Space, error)  { return f.space, nil }
func (f *fakeYabai) LeftPadding(context.Context) (float64, error)      { return f.pad, nil }

func (f *fakeYabai) Send(_ context.Context, msg platform.Message) error {
	f.sent = append(f.sent, msg)
	if f.frozen {
		return nil
	}
	switch msg.Kind {
	case platform.KindWindowWarp:
		id := int(msg.Subject.(platform.WindowID))
		switch arg := msg.Arg.(type) {
		case platform.Direction:
			f.warpToEdge(id, arg)
		case platform.WindowID:
			f.warpOnto(id, int(arg))
		}
	case platform.KindWindowToggle:
		if msg.Arg == platform.PropertySplit {
			id := int(msg.Subject.(platform.WindowID))
			f.split[id] = f.splitOf(id).Toggled()
		}
	case platform.KindWindowFocus:
		if id, ok := msg.Arg.(platform.WindowID); ok {
			f.focused = int(id)
		}
	}
	return nil
}

func (f *fakeYabai) columnOf(id int) int {
	for i, col := range f.columns {
		for _, w := range col {
			if w == id {
				return i
			}
		}
	}
	return -1
}

func (f *fakeYabai) remove(id int) {
	var cols [][]int
	for _, col := range f.columns {
		var kept []int
		for _, w := range col {
			if w != id {
				kept = append(kept, w)
			}
		}
		if len(kept) > 0 {
			cols = append(cols, kept)
		}
	}
	f.columns = cols
}

// warpToEdge moves id to the end of the first (west) or last (east) column.
func (f *fakeYabai) warpToEdge(id int, d platform.Direction) {
	target := 0
	if d == platform.East {
		target = len(f.columns) - 1
	}
	if f.columnOf(id) == target {
		return
	}
	anchor := f.columns[target][0]
	f.remove(id)
	col := f.columnOf(anchor)
	f.columns[col] = append(f.columns[col], id)
}

// warpOnto moves id into anchor's column, right after anchor.
func (f *fakeYabai) warpOnto(id, anchor int) {
	if id == anchor {
		return
	}
	f.remove(id)
	col := f.columnOf(anchor)
	var out []int
	for _, w := range f.columns[col] {
		out = append(out, w)
		if w == anchor {
			out = append(out, id)
		}
	}
	f.columns[col] = out
}

func (f *fakeYabai) warps() []platform.Message {
	var result []platform.Message
	for _, msg := range f.sent {
		if msg.Kind == platform.KindWindowWarp {
			result = append(result, msg)
		}
	}
	return result
}

func quietLogger() *log.Logger { return log.New(io.Discard) }

// loadManager snapshots f into a new Manager expecting count masters.
func loadManager(t *testing.T, f *fakeYabai, position model.MasterPosition, count int) *Manager {
	t.Helper()
	m := New(f, position, quietLogger())
	if err := m.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	m.SetExpected(count)
	return m
}

func ids(ws []model.Window) []int {
	result := make([]int, 0, len(ws))
	for _, w := range ws {
		result = append(result, w.ID)
	}
	sort.Ints(result)
	return result
}

// staticManager builds a Manager over fixed windows on a 1000x800 display.
func staticManager(position model.MasterPosition, pad float64, expected int, ws ...model.Window) *Manager {
	m := New(nil, position, quietLogger())
	m.display = model.Display{ID: 1, Index: 1, Frame: model.Frame{W: 1000, H: 800}}
	m.space = model.Space{ID: 10, Index: 1}
	m.leftPadding = pad
	m.windows = ws
	m.expected = expected
	return m
}

func win(id int, x, y, w float64) model.Window {
	return model.Window{ID: id, PID: 100 + id, Frame: model.Frame{X: x, Y: y, W: w, H: 100}, IsVisible: true}
}
