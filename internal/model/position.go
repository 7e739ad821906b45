package model

import (
	"fmt"
	"strings"
)

// MasterPosition is the display edge the master region is anchored to.
// The zero value is PositionRight.
type MasterPosition int

const (
	PositionRight MasterPosition = iota
	PositionLeft
)

// ParseMasterPosition converts "left" or "right" (any case) to a MasterPosition.
func ParseMasterPosition(s string) (MasterPosition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right":
		return PositionRight, nil
	case "left":
		return PositionLeft, nil
	default:
		return PositionRight, fmt.Errorf("unknown master position: %q (expected left or right)", s)
	}
}

func (p MasterPosition) String() string {
	if p == PositionLeft {
		return "left"
	}
	return "right"
}

// MarshalText implements encoding.TextMarshaler.
func (p MasterPosition) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *MasterPosition) UnmarshalText(text []byte) error {
	v, err := ParseMasterPosition(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
