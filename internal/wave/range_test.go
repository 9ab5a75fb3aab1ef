package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRangeOrdersBounds(t *testing.T) {
	assert.Equal(t, Range{Lower: 3, Upper: 9}, NewRange(9, 3))
	assert.Equal(t, int64(6), NewRange(3, 9).Interval())
}

func TestClampOnSmallerModel(t *testing.T) {
	small := NewBuffer(2, 128)

	cases := []struct {
		name string
		in   Range
		want Range
	}{
		{"upper past end", Range{0, 2000}, Range{0, 127}},
		{"lower past end resets", Range{1000, 2000}, Range{0, 127}},
		{"inside", Range{10, 20}, Range{10, 20}},
		{"lower kept", Range{100, 500}, Range{100, 127}},
		{"lower at max", Range{127, 300}, Range{127, 127}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Clamp(small))
		})
	}
}

func TestClampOnEmptyModel(t *testing.T) {
	assert.Equal(t, Range{0, 0}, Range{5, 50}.Clamp(Empty))
	assert.Equal(t, Range{0, 0}, Range{0, 50}.Clamp(Empty))
}

func TestShiftKeepsIntervalInsideModel(t *testing.T) {
	m := NewBuffer(1, 100)

	assert.Equal(t, Range{10, 30}, Range{0, 20}.Shift(10, m))
	assert.Equal(t, Range{79, 99}, Range{70, 90}.Shift(50, m))
	assert.Equal(t, Range{0, 20}, Range{5, 25}.Shift(-50, m))
	assert.Equal(t, Range{0, 99}, Range{0, 500}.Shift(5, m))
}

func TestZoomAnchorsAtLower(t *testing.T) {
	m := NewBuffer(1, 100)

	assert.Equal(t, Range{10, 50}, Range{10, 20}.Zoom(40, m))
	assert.Equal(t, Range{59, 99}, Range{80, 90}.Zoom(40, m))
	assert.Equal(t, Range{0, 99}, Range{30, 40}.Zoom(1000, m))
	assert.Equal(t, Range{30, 30}, Range{30, 40}.Zoom(-4, m))
}

func TestRangeHelpersNeverInvert(t *testing.T) {
	m := NewBuffer(1, 37)
	r := Range{0, 0}
	for step := range int64(200) {
		r = r.Zoom(step%50, m).Shift(step%7-3, m)
		assert.LessOrEqual(t, r.Lower, r.Upper, "step %d", step)
		assert.GreaterOrEqual(t, r.Lower, int64(0))
		assert.LessOrEqual(t, r.Upper, int64(36))
	}
}

func TestExtent(t *testing.T) {
	b, err := BufferOf([]float64{0.1, -0.4, 0.9, 0.2, -0.1})
	assert.NoError(t, err)

	lo, hi := Extent(b, 0, Range{0, 4})
	assert.Equal(t, -0.4, lo)
	assert.Equal(t, 0.9, hi)

	lo, hi = Extent(b, 0, Range{3, 40})
	assert.Equal(t, -0.1, lo)
	assert.Equal(t, 0.2, hi)

	lo, hi = Extent(Empty, 0, Range{0, 10})
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}
