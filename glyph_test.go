package mdicon

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlyph_Layout(t *testing.T) {
	assert := assert.New(t)

	g := GlyphLayout(192)
	assert.Equal(192, g.Size)
	assert.Equal(12.0, g.Stroke)

	const delta = 1e-9
	want := []Point{
		{40.704, 124.8},
		{40.704, 55.68},
		{69.504, 93.696},
		{98.304, 55.68},
		{98.304, 124.8},
	}
	assert.Len(g.M, len(want))
	for i, p := range want {
		assert.InDelta(p.X, g.M[i].X, delta)
		assert.InDelta(p.Y, g.M[i].Y, delta)
	}

	assert.InDelta(123.648, g.Shaft[0].X, delta)
	assert.InDelta(55.68, g.Shaft[0].Y, delta)
	assert.InDelta(124.8, g.Shaft[1].Y, delta)

	assert.Len(g.Head, 3)
	assert.InDelta(123.648-20.736, g.Head[0].X, delta)
	assert.InDelta(124.8-20.736, g.Head[0].Y, delta)
	assert.Equal(g.Shaft[1], g.Head[1])
	assert.InDelta(123.648+20.736, g.Head[2].X, delta)
	assert.InDelta(g.Head[0].Y, g.Head[2].Y, delta)
}

func TestGlyph_StrokeWidth(t *testing.T) {
	tests := []struct {
		size int
		want float64
	}{
		{192, 12},
		{128, 8},
		{100, 6},
		{32, 2},
		{16, 2},
		{5, 2},
		{4, 1.696},
		{1, 0.424},
	}

	for _, tt := range tests {
		got := GlyphLayout(tt.size).Stroke
		if !assert.InDelta(t, tt.want, got, 1e-9) {
			t.Errorf("stroke width at size %d = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestGlyph_ScalesLinearly(t *testing.T) {
	small, large := GlyphLayout(32), GlyphLayout(128)
	for i, pl := range small.Strokes() {
		for j, p := range pl {
			q := large.Strokes()[i][j]
			assert.InDelta(t, p.X*4, q.X, 1e-9)
			assert.InDelta(t, p.Y*4, q.Y, 1e-9)
		}
	}
}

func TestGlyph_StrokesStayInsideTheCanvas(t *testing.T) {
	const eps = 1e-9

	for size := 1; size <= 256; size++ {
		c := &recordingCanvas{size: size}
		DrawGlyph(c, size, ForegroundColor)

		if c.count("polyline") != 3 {
			t.Fatalf("size %d: expected 3 polylines, got %d", size, c.count("polyline"))
		}
		s := float64(size)
		for _, call := range c.calls {
			for i := 1; i < len(call.pts); i++ {
				q, ok := segmentQuad(call.pts[i-1], call.pts[i], call.width/2)
				if !ok {
					t.Fatalf("size %d: degenerate segment %v", size, call.pts)
				}
				for _, p := range q {
					if p.X < -eps || p.Y < -eps || p.X > s+eps || p.Y > s+eps {
						t.Fatalf("size %d: stroke corner %v outside the canvas", size, p)
					}
				}
			}
		}
	}
}

func TestGlyph_DrawsOnlyInsideItsSquare(t *testing.T) {
	const pad = 8

	for size := 1; size <= 64; size++ {
		c := newRasterCanvas(size + pad)
		DrawGlyph(c, size, ForegroundColor)
		img := c.Image()

		for y := 0; y < size+pad; y++ {
			for x := 0; x < size+pad; x++ {
				if (x >= size || y >= size) && img.NRGBAAt(x, y).A != 0 {
					t.Fatalf("size %d: pixel (%d, %d) drawn outside the glyph square", size, x, y)
				}
			}
		}
	}
}

func TestGlyph_UsesOnlyTheForegroundColor(t *testing.T) {
	assert := assert.New(t)

	c := newRasterCanvas(96)
	DrawGlyph(c, 96, ForegroundColor)
	img := c.Image()

	var opaque int
	for y := 0; y < 96; y++ {
		for x := 0; x < 96; x++ {
			px := img.NRGBAAt(x, y)
			if px.A == 0 {
				continue
			}
			if px.A == 0xff {
				opaque++
			}
			assert.Equal(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: px.A}, px)
		}
	}
	assert.NotZero(opaque)
}

func TestGlyph_NonPositiveSize(t *testing.T) {
	c := &recordingCanvas{}
	assert.NotPanics(t, func() {
		DrawGlyph(c, 0, ForegroundColor)
		DrawGlyph(c, -5, ForegroundColor)
	})
	assert.Empty(t, c.calls)
}
