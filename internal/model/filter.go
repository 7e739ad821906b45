package model

// Managed returns the windows ymsp arranges: tiled, visible windows on the
// given display and space. Display and space are matched by index since
// that is what yabai reports on a window.
func Managed(windows []Window, display Display, space Space) []Window {
	var result []Window
	for _, w := range windows {
		if w.IsFloating || w.Display != display.Index || w.Space != space.Index {
			continue
		}
		if w.IsMinimized || w.IsHidden || !w.IsVisible {
			continue
		}
		result = append(result, w)
	}
	return result
}

// FindWindow returns the window with the given id.
func FindWindow(windows []Window, id int) (Window, bool) {
	for _, w := range windows {
		if w.ID == id {
			return w, true
		}
	}
	return Window{}, false
}

// FocusedWindow returns the window that has focus, if any.
func FocusedWindow(windows []Window) (Window, bool) {
	for _, w := range windows {
		if w.HasFocus {
			return w, true
		}
	}
	return Window{}, false
}
