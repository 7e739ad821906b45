package platform

import "strings"

// Kind identifies the yabai command a Message carries.
type Kind int

const (
	KindQueryWindows Kind = iota
	KindQueryDisplays
	KindQueryFocusedDisplay
	KindQuerySpaces
	KindQueryFocusedSpace
	KindConfig
	KindWindowFocus
	KindWindowClose
	KindWindowMinimize
	KindWindowDeminimize
	KindWindowWarp
	KindWindowSwap
	KindWindowStack
	KindWindowInsert
	KindWindowToggle
	KindWindowDisplay
	KindWindowSpace
	KindDisplayFocus
	KindSpaceFocus
)

var kindNames = map[Kind]string{
	KindQueryWindows:        "query-windows",
	KindQueryDisplays:       "query-displays",
	KindQueryFocusedDisplay: "query-focused-display",
	KindQuerySpaces:         "query-spaces",
	KindQueryFocusedSpace:   "query-focused-space",
	KindConfig:              "config",
	KindWindowFocus:         "window-focus",
	KindWindowClose:         "window-close",
	KindWindowMinimize:      "window-minimize",
	KindWindowDeminimize:    "window-deminimize",
	KindWindowWarp:          "window-warp",
	KindWindowSwap:          "window-swap",
	KindWindowStack:         "window-stack",
	KindWindowInsert:        "window-insert",
	KindWindowToggle:        "window-toggle",
	KindWindowDisplay:       "window-display",
	KindWindowSpace:         "window-space",
	KindDisplayFocus:        "display-focus",
	KindSpaceFocus:          "space-focus",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Message is one yabai command. Subject is the window, display or space the
// command acts on; nil means the focused one. Arg is the command argument.
type Message struct {
	Kind    Kind
	Subject Selector
	Arg     Selector
	Key     string // config key, only for KindConfig
}

func QueryWindows() Message        { return Message{Kind: KindQueryWindows} }
func QueryDisplays() Message       { return Message{Kind: KindQueryDisplays} }
func QueryFocusedDisplay() Message { return Message{Kind: KindQueryFocusedDisplay} }
func QuerySpaces() Message         { return Message{Kind: KindQuerySpaces} }
func QueryFocusedSpace() Message   { return Message{Kind: KindQueryFocusedSpace} }

// GetConfig reads a yabai config value, e.g. left_padding.
func GetConfig(key string) Message { return Message{Kind: KindConfig, Key: key} }

// FocusWindow focuses the window picked by sel, relative to the focused window.
func FocusWindow(sel Selector) Message { return Message{Kind: KindWindowFocus, Arg: sel} }

func CloseWindow(w Selector) Message      { return Message{Kind: KindWindowClose, Subject: w} }
func MinimizeWindow(w Selector) Message   { return Message{Kind: KindWindowMinimize, Subject: w} }
func DeminimizeWindow(w Selector) Message { return Message{Kind: KindWindowDeminimize, Subject: w} }

// Warp re-inserts w next to target, which is a window or a direction.
func Warp(w, target Selector) Message {
	return Message{Kind: KindWindowWarp, Subject: w, Arg: target}
}

// Swap exchanges w with target, which is a window or a direction.
func Swap(w, target Selector) Message {
	return Message{Kind: KindWindowSwap, Subject: w, Arg: target}
}

func StackOnto(w, target Selector) Message {
	return Message{Kind: KindWindowStack, Subject: w, Arg: target}
}

func Insert(w Selector, d Direction) Message {
	return Message{Kind: KindWindowInsert, Subject: w, Arg: d}
}

func Toggle(w Selector, p Property) Message {
	return Message{Kind: KindWindowToggle, Subject: w, Arg: p}
}

// ToggleSplit flips the split orientation of w's parent node.
func ToggleSplit(w Selector) Message { return Toggle(w, PropertySplit) }

// SendToDisplay moves w to another display.
func SendToDisplay(w, display Selector) Message {
	return Message{Kind: KindWindowDisplay, Subject: w, Arg: display}
}

// SendToSpace moves w to another space.
func SendToSpace(w, space Selector) Message {
	return Message{Kind: KindWindowSpace, Subject: w, Arg: space}
}

func FocusDisplay(sel Selector) Message { return Message{Kind: KindDisplayFocus, Arg: sel} }
func FocusSpace(sel Selector) Message   { return Message{Kind: KindSpaceFocus, Arg: sel} }

// IsWrite reports whether the message changes window manager state.
func (m Message) IsWrite() bool {
	switch m.Kind {
	case KindQueryWindows, KindQueryDisplays, KindQueryFocusedDisplay,
		KindQuerySpaces, KindQueryFocusedSpace, KindConfig:
		return false
	default:
		return true
	}
}

// Args returns the yabai argv for the message, without the program name.
func (m Message) Args() []string {
	switch m.Kind {
	case KindQueryWindows:
		return []string{"-m", "query", "--windows"}
	case KindQueryDisplays:
		return []string{"-m", "query", "--displays"}
	case KindQueryFocusedDisplay:
		return []string{"-m", "query", "--displays", "--display"}
	case KindQuerySpaces:
		return []string{"-m", "query", "--spaces"}
	case KindQueryFocusedSpace:
		return []string{"-m", "query", "--spaces", "--space"}
	case KindConfig:
		return []string{"-m", "config", m.Key}
	case KindWindowFocus:
		return m.domainArgs("window", "--focus")
	case KindWindowClose:
		return m.domainArgs("window", "--close")
	case KindWindowMinimize:
		return m.domainArgs("window", "--minimize")
	case KindWindowDeminimize:
		return m.domainArgs("window", "--deminimize")
	case KindWindowWarp:
		return m.domainArgs("window", "--warp")
	case KindWindowSwap:
		return m.domainArgs("window", "--swap")
	case KindWindowStack:
		return m.domainArgs("window", "--stack")
	case KindWindowInsert:
		return m.domainArgs("window", "--insert")
	case KindWindowToggle:
		return m.domainArgs("window", "--toggle")
	case KindWindowDisplay:
		return m.domainArgs("window", "--display")
	case KindWindowSpace:
		return m.domainArgs("window", "--space")
	case KindDisplayFocus:
		return m.domainArgs("display", "--focus")
	case KindSpaceFocus:
		return m.domainArgs("space", "--focus")
	default:
		return nil
	}
}

func (m Message) domainArgs(domain, flag string) []string {
	args := []string{"-m", domain}
	if m.Subject != nil {
		args = append(args, m.Subject.Selector())
	}
	args = append(args, flag)
	if m.Arg != nil {
		args = append(args, m.Arg.Selector())
	}
	return args
}

func (m Message) String() string {
	return "yabai " + strings.Join(m.Args(), " ")
}
