package layout

import (
	"sort"

	"github.com/mj1618/ymsp/internal/model"
)

// Role is the region a window belongs to.
type Role string

const (
	RoleMaster Role = "master"
	RoleStack  Role = "stack"
	RoleMiddle Role = "middle"
)

// All orderings break ties by window id so results do not depend on the
// order yabai reports windows in.

func sortByX(ws []model.Window) {
	sort.SliceStable(ws, func(i, j int) bool {
		if ws[i].Frame.X != ws[j].Frame.X {
			return ws[i].Frame.X < ws[j].Frame.X
		}
		return ws[i].ID < ws[j].ID
	})
}

// sortByYX orders top to bottom, then left to right.
func sortByYX(ws []model.Window) {
	sort.SliceStable(ws, func(i, j int) bool {
		a, b := ws[i].Frame, ws[j].Frame
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return ws[i].ID < ws[j].ID
	})
}

func (m *Manager) touchesLeftEdge(w model.Window) bool {
	return w.Frame.X == m.display.Frame.X+m.leftPadding
}

// AllTouchLeftEdge reports whether every window starts at the left edge.
func (m *Manager) AllTouchLeftEdge() bool {
	for _, w := range m.windows {
		if !m.touchesLeftEdge(w) {
			return false
		}
	}
	return true
}

// DividingLineX returns the x coordinate separating master from stack for
// the expected master count.
func (m *Manager) DividingLineX() float64 {
	if m.position == model.PositionLeft {
		return m.leftDividingLine()
	}
	return m.rightDividingLine()
}

// leftDividingLine is the x of the stack column. Windows sharing an x form a
// column; a column of non-left windows can still hold masters when the left
// column alone does not reach the expected count.
func (m *Manager) leftDividingLine() float64 {
	var rest []model.Window
	for _, w := range m.windows {
		if !m.touchesLeftEdge(w) {
			rest = append(rest, w)
		}
	}
	if len(rest) == 0 {
		return m.display.Frame.X
	}
	sortByX(rest)

	masters := len(m.windows) - len(rest)
	if masters >= m.expected {
		return rest[0].Frame.X
	}
	for i := 0; i+1 < len(rest); i++ {
		if rest[i].Frame.X == rest[i+1].Frame.X && masters+i+2 >= m.expected {
			return rest[i].Frame.X
		}
	}
	return rest[0].Frame.X
}

// rightDividingLine is anchored on the top-right window.
func (m *Manager) rightDividingLine() float64 {
	top, ok := m.TopRightWindow()
	if !ok {
		return m.display.Frame.X
	}
	if m.expected == 1 {
		return top.Frame.X
	}

	var nonStack, eligible []model.Window
	for _, w := range m.windows {
		if m.touchesLeftEdge(w) {
			continue
		}
		nonStack = append(nonStack, w)
		if w.Frame.X <= top.Frame.X {
			eligible = append(eligible, w)
		}
	}
	sortByX(eligible)

	right := len(nonStack) - len(eligible)
	if right >= m.expected {
		return top.Frame.X
	}
	for i := 0; i+1 < len(eligible); i++ {
		if eligible[i].Frame.X == eligible[i+1].Frame.X && right+i+2 >= m.expected {
			return eligible[i].Frame.X
		}
	}
	return top.Frame.X
}

func (m *Manager) IsMaster(w model.Window) bool {
	if m.position == model.PositionLeft {
		return m.touchesLeftEdge(w)
	}
	return w.Frame.X >= m.DividingLineX()
}

func (m *Manager) IsStack(w model.Window) bool {
	if m.position == model.PositionLeft {
		return w.Frame.X == m.DividingLineX()
	}
	return m.touchesLeftEdge(w)
}

// IsMiddle reports a window that is in neither region, which only happens
// while the layout is mid-transition.
func (m *Manager) IsMiddle(w model.Window) bool {
	return !m.IsMaster(w) && !m.IsStack(w)
}

// RoleOf classifies w. Master wins when a window matches both predicates.
func (m *Manager) RoleOf(w model.Window) Role {
	switch {
	case m.IsMaster(w):
		return RoleMaster
	case m.IsStack(w):
		return RoleStack
	default:
		return RoleMiddle
	}
}

func (m *Manager) filter(keep func(model.Window) bool) []model.Window {
	var result []model.Window
	for _, w := range m.windows {
		if keep(w) {
			result = append(result, w)
		}
	}
	return result
}

func (m *Manager) MasterWindows() []model.Window { return m.filter(m.IsMaster) }
func (m *Manager) StackWindows() []model.Window  { return m.filter(m.IsStack) }
func (m *Manager) MiddleWindows() []model.Window { return m.filter(m.IsMiddle) }

func widest(ws []model.Window) (model.Window, bool) {
	if len(ws) == 0 {
		return model.Window{}, false
	}
	best := ws[0]
	for _, w := range ws[1:] {
		if w.Frame.W > best.Frame.W || (w.Frame.W == best.Frame.W && w.ID < best.ID) {
			best = w
		}
	}
	return best, true
}

func (m *Manager) WidestMasterWindow() (model.Window, bool) { return widest(m.MasterWindows()) }
func (m *Manager) WidestStackWindow() (model.Window, bool)  { return widest(m.StackWindows()) }

// TopLeftWindow is the window with the smallest y, then smallest x.
func (m *Manager) TopLeftWindow() (model.Window, bool) {
	return pick(m.windows, func(a, b model.Window) bool {
		if a.Frame.Y != b.Frame.Y {
			return a.Frame.Y < b.Frame.Y
		}
		return a.Frame.X < b.Frame.X
	})
}

// TopRightWindow is the window with the smallest y, then largest x.
func (m *Manager) TopRightWindow() (model.Window, bool) {
	return pick(m.windows, func(a, b model.Window) bool {
		if a.Frame.Y != b.Frame.Y {
			return a.Frame.Y < b.Frame.Y
		}
		return a.Frame.X > b.Frame.X
	})
}

// pick returns the first window by better, falling back to the lower id.
func pick(ws []model.Window, better func(a, b model.Window) bool) (model.Window, bool) {
	if len(ws) == 0 {
		return model.Window{}, false
	}
	best := ws[0]
	for _, w := range ws[1:] {
		if better(w, best) || (!better(best, w) && w.ID < best.ID) {
			best = w
		}
	}
	return best, true
}

func topWindow(ws []model.Window) (model.Window, bool) {
	return pick(ws, func(a, b model.Window) bool { return a.Frame.Y < b.Frame.Y })
}

func bottomWindow(ws []model.Window) (model.Window, bool) {
	return pick(ws, func(a, b model.Window) bool { return a.Frame.Y > b.Frame.Y })
}

// IsTopWindow reports whether w is the top window of ws.
func IsTopWindow(ws []model.Window, w model.Window) bool {
	top, ok := topWindow(ws)
	return ok && top.ID == w.ID
}

// IsBottomWindow reports whether w is the bottom window of ws.
func IsBottomWindow(ws []model.Window, w model.Window) bool {
	bottom, ok := bottomWindow(ws)
	return ok && bottom.ID == w.ID
}
