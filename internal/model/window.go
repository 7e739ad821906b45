package model

// Frame is a screen rectangle as reported by yabai.
type Frame struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

// SplitType is the orientation of the split a window's node sits in.
// Values other than horizontal and vertical are kept as reported.
type SplitType string

const (
	SplitNone       SplitType = "none"
	SplitHorizontal SplitType = "horizontal"
	SplitVertical   SplitType = "vertical"
)

// Toggled returns the opposite orientation. Unknown orientations are
// returned unchanged.
func (s SplitType) Toggled() SplitType {
	switch s {
	case SplitHorizontal:
		return SplitVertical
	case SplitVertical:
		return SplitHorizontal
	default:
		return s
	}
}

// Window is one window from `yabai -m query --windows`.
type Window struct {
	ID                 int       `json:"id"                   yaml:"id"`
	PID                int       `json:"pid"                  yaml:"pid"`
	App                string    `json:"app"                  yaml:"app"`
	Title              string    `json:"title"                yaml:"title"`
	Frame              Frame     `json:"frame"                yaml:"frame"`
	Role               string    `json:"role"                 yaml:"role,omitempty"`
	Subrole            string    `json:"subrole"              yaml:"subrole,omitempty"`
	Display            int       `json:"display"              yaml:"display"`
	Space              int       `json:"space"                yaml:"space"`
	SplitType          SplitType `json:"split-type"           yaml:"split-type"`
	StackIndex         int       `json:"stack-index"          yaml:"stack-index"`
	HasFocus           bool      `json:"has-focus"            yaml:"has-focus"`
	IsVisible          bool      `json:"is-visible"           yaml:"is-visible"`
	IsMinimized        bool      `json:"is-minimized"         yaml:"is-minimized"`
	IsHidden           bool      `json:"is-hidden"            yaml:"is-hidden"`
	IsFloating         bool      `json:"is-floating"          yaml:"is-floating"`
	IsSticky           bool      `json:"is-sticky"            yaml:"is-sticky,omitempty"`
	IsNativeFullscreen bool      `json:"is-native-fullscreen" yaml:"is-native-fullscreen,omitempty"`
}
