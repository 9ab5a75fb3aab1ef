package render

import (
	"image/color"
	"slices"
)

// OpKind names a recorded drawing primitive.
type OpKind string

const (
	OpSetFill       OpKind = "set-fill"
	OpSetStroke     OpKind = "set-stroke"
	OpFillRect      OpKind = "fill-rect"
	OpStrokeRect    OpKind = "stroke-rect"
	OpStrokeLine    OpKind = "stroke-line"
	OpFillPolygon   OpKind = "fill-polygon"
	OpStrokePolygon OpKind = "stroke-polygon"
	OpTranslate     OpKind = "translate"
	OpSave          OpKind = "save"
	OpRestore       OpKind = "restore"
)

// Op is one recorded call. Args holds the numeric arguments in call order.
type Op struct {
	Kind   OpKind
	Color  color.Color
	Args   []float64
	Points []Point
}

// Recorder is a Surface that keeps the primitives drawn on it instead of
// rasterising them.
type Recorder struct {
	w, h float64
	ops  []Op
}

// NewRecorder returns an empty recorder reporting the given size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{w: w, h: h}
}

// Ops returns the recorded primitives in order.
func (r *Recorder) Ops() []Op { return r.ops }

// Reset drops all recorded primitives.
func (r *Recorder) Reset() { r.ops = r.ops[:0] }

// Count returns how many primitives of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) Size() (float64, float64) { return r.w, r.h }

func (r *Recorder) SetFill(c color.Color)   { r.ops = append(r.ops, Op{Kind: OpSetFill, Color: c}) }
func (r *Recorder) SetStroke(c color.Color) { r.ops = append(r.ops, Op{Kind: OpSetStroke, Color: c}) }

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.ops = append(r.ops, Op{Kind: OpFillRect, Args: []float64{x, y, w, h}})
}

func (r *Recorder) StrokeRect(x, y, w, h float64) {
	r.ops = append(r.ops, Op{Kind: OpStrokeRect, Args: []float64{x, y, w, h}})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64) {
	r.ops = append(r.ops, Op{Kind: OpStrokeLine, Args: []float64{x0, y0, x1, y1}})
}

func (r *Recorder) FillPolygon(pts []Point) {
	r.ops = append(r.ops, Op{Kind: OpFillPolygon, Points: slices.Clone(pts)})
}

func (r *Recorder) StrokePolygon(pts []Point) {
	r.ops = append(r.ops, Op{Kind: OpStrokePolygon, Points: slices.Clone(pts)})
}

func (r *Recorder) Translate(dx, dy float64) {
	r.ops = append(r.ops, Op{Kind: OpTranslate, Args: []float64{dx, dy}})
}

func (r *Recorder) Save()    { r.ops = append(r.ops, Op{Kind: OpSave}) }
func (r *Recorder) Restore() { r.ops = append(r.ops, Op{Kind: OpRestore}) }
