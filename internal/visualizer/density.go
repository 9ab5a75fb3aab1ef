package visualizer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDensity is returned when a density name is not recognised.
var ErrUnknownDensity = errors.New("unknown density")

// Density selects how many raster pixels one terminal cell carries.
type Density int

const (
	// Braille packs a 2x4 dot grid into each cell.
	Braille Density = iota
	// HalfBlock packs two vertically stacked pixels into each cell.
	HalfBlock
	// ASCII maps one pixel to one character.
	ASCII
)

var densityNames = [...]string{"braille", "halfblock", "ascii"}

// DotSize returns the pixel columns and rows covered by one terminal cell.
func (d Density) DotSize() (cols, rows int) {
	switch d {
	case Braille:
		return 2, 4
	case HalfBlock:
		return 1, 2
	default:
		return 1, 1
	}
}

// Next cycles to the following density.
func (d Density) Next() Density {
	return (d + 1) % Density(len(densityNames))
}

func (d Density) String() string {
	if d < 0 || int(d) >= len(densityNames) {
		return "unknown"
	}
	return densityNames[d]
}

// ParseDensity converts a name such as "braille" into a Density. The empty
// string selects Braille.
func ParseDensity(name string) (Density, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Braille, nil
	}
	for i, n := range densityNames {
		if n == name {
			return Density(i), nil
		}
	}
	if name == "half-block" || name == "half" {
		return HalfBlock, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDensity, name)
}
