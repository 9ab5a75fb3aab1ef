package visualizer

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func filled(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func plainEncoder(d Density) *Encoder {
	return &Encoder{Density: d, profile: colorNone}
}

func TestBrailleBlankCanvas(t *testing.T) {
	got := plainEncoder(Braille).Encode(filled(4, 8, black), black)
	want := "⠀⠀\n⠀⠀"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestBrailleDotPositions(t *testing.T) {
	img := filled(2, 4, black)
	img.SetRGBA(0, 0, white)
	img.SetRGBA(1, 3, white)
	got := plainEncoder(Braille).Encode(img, black)
	want := string(rune(0x2800 | 1<<0 | 1<<7))
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestBrailleFullCell(t *testing.T) {
	got := plainEncoder(Braille).Encode(filled(2, 4, white), black)
	if got != "⣿" {
		t.Fatalf("expected full cell, got %q", got)
	}
}

func TestBraillePartialCellAtEdge(t *testing.T) {
	// A 3x5 image needs a second cell column and row.
	e := plainEncoder(Braille)
	lines := strings.Split(e.Encode(filled(3, 5, white), black), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if got := []rune(lines[1]); len(got) != 2 || got[1] != 0x2800|1<<0 {
		t.Fatalf("expected corner dot only, got %q", lines[1])
	}
}

func TestHalfBlockWithoutColor(t *testing.T) {
	img := filled(4, 2, black)
	img.SetRGBA(0, 0, white)
	img.SetRGBA(1, 1, white)
	img.SetRGBA(2, 0, white)
	img.SetRGBA(2, 1, white)
	got := plainEncoder(HalfBlock).Encode(img, black)
	if got != "▀▄█ " {
		t.Fatalf("expected %q, got %q", "▀▄█ ", got)
	}
}

func TestHalfBlockTrueColor(t *testing.T) {
	img := filled(1, 2, black)
	img.SetRGBA(0, 0, white)
	e := &Encoder{Density: HalfBlock, profile: colorTrueColor}
	got := e.Encode(img, black)
	want := "\x1b[38;2;255;255;255m\x1b[48;2;0;0;0m▀" + ansiReset
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestASCIIRamp(t *testing.T) {
	img := filled(3, 1, black)
	img.SetRGBA(1, 0, white)
	img.SetRGBA(2, 0, color.RGBA{R: 1, G: 1, B: 1, A: 255})
	got := plainEncoder(ASCII).Encode(img, black)
	if got != " @." {
		t.Fatalf("expected %q, got %q", " @.", got)
	}
}

func TestEncodeEmptyImage(t *testing.T) {
	if got := plainEncoder(Braille).Encode(image.NewRGBA(image.Rect(0, 0, 0, 0)), black); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	if got := plainEncoder(Braille).Encode(nil, black); got != "" {
		t.Fatalf("expected empty output for nil image, got %q", got)
	}
}

func TestCellsAndPixels(t *testing.T) {
	e := plainEncoder(Braille)
	if c, r := e.Cells(5, 9); c != 3 || r != 3 {
		t.Fatalf("expected 3x3 cells, got %dx%d", c, r)
	}
	if w, h := e.Pixels(10, 4); w != 20 || h != 16 {
		t.Fatalf("expected 20x16 pixels, got %dx%d", w, h)
	}
	e.Density = HalfBlock
	if w, h := e.Pixels(10, 4); w != 10 || h != 8 {
		t.Fatalf("expected 10x8 pixels, got %dx%d", w, h)
	}
}

func TestColorSequences(t *testing.T) {
	red := colorRGB{R: 255}
	if got := colorSequence(colorANSI256, red, false); got != "\x1b[38;5;196m" {
		t.Fatalf("expected 256-colour red, got %q", got)
	}
	if got := colorSequence(colorANSI16, red, true); got != "\x1b[41m" {
		t.Fatalf("expected red background, got %q", got)
	}
	if got := colorSequence(colorANSI16, colorRGB{}, false); got != "\x1b[30m" {
		t.Fatalf("expected black foreground, got %q", got)
	}
}

func TestParseDensity(t *testing.T) {
	for name, want := range map[string]Density{"": Braille, "Braille": Braille, "halfblock": HalfBlock, "half-block": HalfBlock, "ascii": ASCII} {
		got, err := ParseDensity(name)
		if err != nil || got != want {
			t.Fatalf("ParseDensity(%q): expected %v, got %v (%v)", name, want, got, err)
		}
	}
	if _, err := ParseDensity("sixel"); !errors.Is(err, ErrUnknownDensity) {
		t.Fatalf("expected ErrUnknownDensity, got %v", err)
	}
	if ASCII.Next() != Braille {
		t.Fatal("expected densities to cycle")
	}
}
