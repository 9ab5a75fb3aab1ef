package view

import (
	"reflect"
	"testing"

	"github.com/olivier-w/wavedraw/internal/raster"
	"github.com/olivier-w/wavedraw/internal/render"
	"github.com/olivier-w/wavedraw/internal/wave"
)

func recorders() Option {
	return WithSurfaceFactory(func(_, w, h int) render.Surface {
		return render.NewRecorder(float64(w), float64(h))
	})
}

func recorderOf(t *testing.T, ch *Channel) *render.Recorder {
	t.Helper()
	rec, ok := ch.Surface().(*render.Recorder)
	if !ok {
		t.Fatalf("expected *render.Recorder, got %T", ch.Surface())
	}
	return rec
}

func TestNewViewStartsEmpty(t *testing.T) {
	v := New()
	if v.Model() != wave.Empty {
		t.Fatalf("expected empty model, got %v", v.Model())
	}
	if got := v.Model().ChannelCount(); got != 1 {
		t.Fatalf("expected 1 channel, got %d", got)
	}
	if got := v.Range(); got != (wave.Range{}) {
		t.Fatalf("expected range [0, 0], got %v", got)
	}
	if v.Style() != render.LinearInterpolation {
		t.Fatalf("expected linear style, got %v", v.Style())
	}
	if len(v.Channels()) != 1 {
		t.Fatalf("expected one channel drawable, got %d", len(v.Channels()))
	}
}

func TestSetRangeWithinModelIsKept(t *testing.T) {
	v := New(recorders(), WithSize(600, 400))
	v.SetModel(wave.NewBuffer(2, 8192))
	v.SetRange(0, 2000)

	if got := v.Range(); got != (wave.Range{Lower: 0, Upper: 2000}) {
		t.Fatalf("expected [0, 2000], got %v", got)
	}
	if err := v.Redraw(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, ch := range v.Channels() {
		rec := recorderOf(t, ch)
		if got := rec.Count(render.OpFillRect); got != 1+2*600 {
			t.Fatalf("channel %d: expected collapsed bands, got %d rects", ch.Index(), got)
		}
	}
}

func TestSetRangeClampsAndOrders(t *testing.T) {
	v := New(recorders())
	v.SetModel(wave.NewBuffer(1, 100))

	v.SetRange(50, 10)
	if got := v.Range(); got != (wave.Range{Lower: 10, Upper: 50}) {
		t.Fatalf("expected [10, 50], got %v", got)
	}
	v.SetRange(-20, 500)
	if got := v.Range(); got != (wave.Range{Lower: 0, Upper: 99}) {
		t.Fatalf("expected [0, 99], got %v", got)
	}
}

func TestSetModelClampsRange(t *testing.T) {
	cases := []struct {
		name         string
		lower, upper int64
	}{
		{"upper past end", 0, 2000},
		{"lower past end", 1000, 2000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := New(WithSize(1, 1))
			v.SetModel(wave.NewBuffer(2, 8192))
			v.SetRange(tc.lower, tc.upper)
			v.SetModel(wave.NewBuffer(2, 128))
			if err := v.Redraw(); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got := v.Range(); got != (wave.Range{Lower: 0, Upper: 127}) {
				t.Fatalf("expected [0, 127], got %v", got)
			}
		})
	}
}

func TestSetModelRebuildsChannels(t *testing.T) {
	v := New(recorders(), WithSize(10, 10))
	v.SetModel(wave.NewBuffer(2, 10))
	first := v.Channels()
	if len(first) != 2 {
		t.Fatalf("expected 2 channels, got %d", len(first))
	}

	v.SetModel(wave.NewBuffer(2, 10))
	for i, ch := range v.Channels() {
		if ch == first[i] {
			t.Fatalf("expected channel %d to be rebuilt", i)
		}
		if ch.Index() != i {
			t.Fatalf("expected index %d, got %d", i, ch.Index())
		}
	}

	v.SetModel(nil)
	if v.Model() != wave.Empty || len(v.Channels()) != 1 {
		t.Fatalf("expected nil model to become empty with one channel, got %d channels", len(v.Channels()))
	}
}

func TestResizeSplitsRowsBetweenChannels(t *testing.T) {
	v := New(recorders())
	v.SetModel(wave.NewBuffer(3, 10))
	v.Resize(100, 10)

	var total float64
	for i, ch := range v.Channels() {
		w, h := ch.Surface().Size()
		if w != 100 {
			t.Fatalf("channel %d: expected width 100, got %g", i, w)
		}
		total += h
	}
	if total != 10 {
		t.Fatalf("expected channel heights to sum to 10, got %g", total)
	}
	if _, h := v.Channels()[2].Surface().Size(); h != 4 {
		t.Fatalf("expected last channel to take the remainder, got %g", h)
	}
}

func TestDefaultSurfacesAreCanvases(t *testing.T) {
	v := New(WithSize(32, 16))
	v.SetModel(wave.NewBuffer(1, 64))
	v.SetRange(0, 63)
	if err := v.Redraw(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := v.Channels()[0].Surface().(*raster.Canvas); !ok {
		t.Fatalf("expected *raster.Canvas, got %T", v.Channels()[0].Surface())
	}
}

func TestStyleSelectsExpandedPrimitives(t *testing.T) {
	v := New(recorders(), WithSize(600, 400), WithStyle(render.Boxes))
	v.SetModel(wave.NewBuffer(1, 8192))
	v.SetRange(0, 128)
	if err := v.Redraw(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	rec := recorderOf(t, v.Channels()[0])
	if rec.Count(render.OpStrokeRect) == 0 || rec.Count(render.OpFillPolygon) != 0 {
		t.Fatal("expected boxes without polygons")
	}

	v.SetStyle(render.LinearInterpolation)
	rec.Reset()
	if err := v.Redraw(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Count(render.OpFillPolygon) == 0 || rec.Count(render.OpStrokeRect) != 0 {
		t.Fatal("expected polygons without boxes")
	}
}

func TestRedrawIsIdempotent(t *testing.T) {
	v := New(recorders(), WithSize(300, 200))
	b := wave.NewBuffer(1, 5000)
	for i := range b.Channel(0) {
		b.Channel(0)[i] = float64(i%17)/17 - 0.5
	}
	v.SetModel(b)
	v.SetRange(100, 4000)

	rec := recorderOf(t, v.Channels()[0])
	if err := v.Redraw(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	first := append([]render.Op(nil), rec.Ops()...)
	rec.Reset()
	if err := v.Redraw(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(first, rec.Ops()) {
		t.Fatal("expected identical primitives on second redraw")
	}
}

func TestRedrawBlankRange(t *testing.T) {
	v := New(recorders(), WithSize(50, 50))
	if err := v.Redraw(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	rec := recorderOf(t, v.Channels()[0])
	if len(rec.Ops()) != 2 {
		t.Fatalf("expected background only, got %d ops", len(rec.Ops()))
	}
}

func TestNilFactoryDrawsNothing(t *testing.T) {
	v := New(WithSurfaceFactory(nil))
	if err := v.Redraw(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if v.Channels()[0].Surface() != nil {
		t.Fatal("expected no surface without a factory")
	}
}
