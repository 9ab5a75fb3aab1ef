package render

import (
	"fmt"
	"strings"
)

// Style selects how expanded views draw individual frames.
type Style int

const (
	// LinearInterpolation joins neighbouring frames with sloped outlines.
	LinearInterpolation Style = iota
	// Boxes draws each frame as a flat bar.
	Boxes
)

// Next cycles to the next style.
func (s Style) Next() Style {
	switch s {
	case LinearInterpolation:
		return Boxes
	default:
		return LinearInterpolation
	}
}

// String returns the name of the style.
func (s Style) String() string {
	switch s {
	case Boxes:
		return "boxes"
	default:
		return "linear"
	}
}

// ParseStyle maps a style name back to a Style.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "lerp", "":
		return LinearInterpolation, nil
	case "boxes", "box":
		return Boxes, nil
	}
	return LinearInterpolation, fmt.Errorf("%q: %w", name, ErrUnknownStyle)
}
