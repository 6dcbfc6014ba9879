package mdicon

import (
	"image/color"
	"math"

	"github.com/esimov/mdicon/utils"
)

// Proportions of the "M↓" mark. Values are fractions of the content box,
// which is the canvas inset by marginRatio on every side.
const (
	marginRatio = 0.2
	strokeRatio = 0.06
	minStroke   = 2.0

	mLeft   = 0.02
	mRight  = 0.52
	mTop    = 0.15
	mBottom = 0.75
	mValley = 0.55

	arrowCenter = 0.74
	arrowHead   = 0.18
)

// Glyph holds the stroke geometry of the "M↓" mark for a square canvas.
type Glyph struct {
	Size   int
	Stroke float64

	// M is the five point outline of the letter: bottom-left, top-left, valley, top-right, bottom-right.
	M []Point
	// Shaft is the vertical stroke of the arrow, from top to tip.
	Shaft []Point
	// Head is the chevron of the arrow: left barb, tip, right barb.
	Head []Point
}

// Strokes returns the polylines in drawing order.
func (g Glyph) Strokes() [][]Point {
	return [][]Point{g.M, g.Shaft, g.Head}
}

// GlyphLayout computes the mark geometry for a canvas of the given size.
// Every coordinate scales linearly with size, so the silhouette is the same at any resolution.
func GlyphLayout(size int) Glyph {
	s := float64(size)
	margin := marginRatio * s
	x0, y0 := margin, margin
	w, h := s-2*margin, s-2*margin

	mx0 := x0 + w*mLeft
	mx1 := x0 + w*mRight
	my0 := y0 + h*mTop
	my1 := y0 + h*mBottom
	mid := (mx0 + mx1) / 2
	valley := my0 + (my1-my0)*mValley

	cx := x0 + w*arrowCenter
	aw := w * arrowHead

	// On tiny canvases the minimum width would push the strokes past the edges,
	// so the width never exceeds twice the distance between the canvas edge and the M.
	stroke := utils.Max(minStroke, math.Round(strokeRatio*s))
	stroke = utils.Min(stroke, 2*mx0)

	return Glyph{
		Size:   size,
		Stroke: stroke,
		M: []Point{
			Pt(mx0, my1),
			Pt(mx0, my0),
			Pt(mid, valley),
			Pt(mx1, my0),
			Pt(mx1, my1),
		},
		Shaft: []Point{
			Pt(cx, my0),
			Pt(cx, my1),
		},
		Head: []Point{
			Pt(cx-aw, my1-aw),
			Pt(cx, my1),
			Pt(cx+aw, my1-aw),
		},
	}
}

// DrawGlyph draws the "M↓" mark in the foreground color onto a canvas of the given size.
func DrawGlyph(c Canvas, size int, fg color.Color) {
	if size <= 0 {
		return
	}
	g := GlyphLayout(size)
	for _, pl := range g.Strokes() {
		c.StrokePolyline(pl, g.Stroke, fg)
	}
}
