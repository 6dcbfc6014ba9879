package mdicon

import (
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
)

// drawCall records a single primitive issued on a recordingCanvas.
type drawCall struct {
	op    string
	box   Box
	pts   []Point
	width float64
	color color.Color
}

// recordingCanvas keeps the issued primitives instead of rasterizing them.
type recordingCanvas struct {
	size  int
	calls []drawCall
}

func (c *recordingCanvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.size, c.size) }

func (c *recordingCanvas) FillEllipse(b Box, col color.Color) {
	c.calls = append(c.calls, drawCall{op: "ellipse", box: b, color: col})
}

func (c *recordingCanvas) FillRect(b Box, col color.Color) {
	c.calls = append(c.calls, drawCall{op: "rect", box: b, color: col})
}

func (c *recordingCanvas) StrokePolyline(pts []Point, width float64, col color.Color) {
	c.calls = append(c.calls, drawCall{op: "polyline", pts: pts, width: width, color: col})
}

func (c *recordingCanvas) Image() *image.NRGBA { return image.NewNRGBA(c.Bounds()) }

func (c *recordingCanvas) count(op string) int {
	var n int
	for _, call := range c.calls {
		if call.op == op {
			n++
		}
	}
	return n
}

// recordingBackend hands out recording canvases and remembers resize requests.
type recordingBackend struct {
	canvases []*recordingCanvas
	resized  []image.Point
}

func (b *recordingBackend) NewCanvas(size int) Canvas {
	c := &recordingCanvas{size: size}
	b.canvases = append(b.canvases, c)
	return c
}

func (b *recordingBackend) Resize(img image.Image, width, height int) *image.NRGBA {
	b.resized = append(b.resized, image.Pt(width, height))
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

func (b *recordingBackend) Encode(w io.Writer, img image.Image, format imaging.Format) error {
	return imaging.Encode(w, img, format)
}

func pixelsEqual(a, b *image.NRGBA) bool {
	if a.Bounds() != b.Bounds() || len(a.Pix) != len(b.Pix) {
		return false
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}
	return true
}
