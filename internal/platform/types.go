package platform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/ymsp/internal/model"
)

// Selector is anything yabai accepts as a window, display or space
// selector, or as the argument of a command.
type Selector interface {
	Selector() string
}

// WindowID selects a window by id.
type WindowID int

func (id WindowID) Selector() string { return strconv.Itoa(int(id)) }

// DisplayIndex selects a display by arrangement index.
type DisplayIndex int

func (i DisplayIndex) Selector() string { return strconv.Itoa(int(i)) }

// SpaceIndex selects a space by mission-control index.
type SpaceIndex int

func (i SpaceIndex) Selector() string { return strconv.Itoa(int(i)) }

// Direction is a cardinal direction selector.
type Direction string

const (
	North Direction = "north"
	East  Direction = "east"
	South Direction = "south"
	West  Direction = "west"
)

func (d Direction) Selector() string { return string(d) }

// ParseDirection converts a flag value to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(s)); d {
	case North, East, South, West:
		return d, nil
	default:
		return "", fmt.Errorf("unknown direction: %q (expected north, east, south, or west)", s)
	}
}

// MasterDirection is the direction of the master edge.
func MasterDirection(p model.MasterPosition) Direction {
	if p == model.PositionLeft {
		return West
	}
	return East
}

// Keyword is one of yabai's relative selectors.
type Keyword string

const (
	First    Keyword = "first"
	Last     Keyword = "last"
	Recent   Keyword = "recent"
	Next     Keyword = "next"
	Prev     Keyword = "prev"
	Largest  Keyword = "largest"
	Smallest Keyword = "smallest"
	Mouse    Keyword = "mouse"
)

func (k Keyword) Selector() string { return string(k) }

// Property is a window property that can be toggled.
type Property string

const (
	PropertySplit          Property = "split"
	PropertyFloat          Property = "float"
	PropertyZoomParent     Property = "zoom-parent"
	PropertyZoomFullscreen Property = "zoom-fullscreen"
	PropertySticky         Property = "sticky"
)

func (p Property) Selector() string { return string(p) }
