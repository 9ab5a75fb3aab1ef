package ui

import (
	"strings"

	"github.com/olivier-w/wavedraw/internal/wave"
)

// renderWindowBar marks the visible frames of a model on a bar of the given
// width: "━" inside the window, "─" outside it.
func renderWindowBar(r wave.Range, frames uint64, width int) string {
	if width < 10 {
		width = 10
	}
	if frames == 0 {
		return strings.Repeat("─", width)
	}

	total := float64(frames)
	start := int(float64(max(r.Lower, 0)) / total * float64(width))
	end := int(float64(r.Upper+1) / total * float64(width))
	start = min(max(start, 0), width-1)
	end = min(max(end, start+1), width)

	return strings.Repeat("─", start) + strings.Repeat("━", end-start) + strings.Repeat("─", width-end)
}
