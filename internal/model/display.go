package model

import (
	"sort"

	"github.com/google/uuid"
)

// Display is one monitor from `yabai -m query --displays`.
type Display struct {
	ID       int       `json:"id"        yaml:"id"`
	UUID     uuid.UUID `json:"uuid"      yaml:"uuid"`
	Index    int       `json:"index"     yaml:"index"`
	Label    string    `json:"label"     yaml:"label,omitempty"`
	Frame    Frame     `json:"frame"     yaml:"frame"`
	Spaces   []int     `json:"spaces"    yaml:"spaces"`
	HasFocus bool      `json:"has-focus" yaml:"has-focus"`
}

// Space is one virtual desktop from `yabai -m query --spaces`.
type Space struct {
	ID                 int    `json:"id"                   yaml:"id"`
	UUID               string `json:"uuid"                 yaml:"uuid,omitempty"`
	Index              int    `json:"index"                yaml:"index"`
	Label              string `json:"label"                yaml:"label,omitempty"`
	Type               string `json:"type"                 yaml:"type"`
	Display            int    `json:"display"              yaml:"display"`
	Windows            []int  `json:"windows"              yaml:"windows"`
	FirstWindow        int    `json:"first-window"         yaml:"first-window,omitempty"`
	LastWindow         int    `json:"last-window"          yaml:"last-window,omitempty"`
	HasFocus           bool   `json:"has-focus"            yaml:"has-focus"`
	IsVisible          bool   `json:"is-visible"           yaml:"is-visible"`
	IsNativeFullscreen bool   `json:"is-native-fullscreen" yaml:"is-native-fullscreen,omitempty"`
}

// SortDisplaysByX orders displays left to right by frame origin, breaking
// ties by arrangement index.
func SortDisplaysByX(displays []Display) {
	sort.SliceStable(displays, func(i, j int) bool {
		if displays[i].Frame.X != displays[j].Frame.X {
			return displays[i].Frame.X < displays[j].Frame.X
		}
		return displays[i].Index < displays[j].Index
	})
}
