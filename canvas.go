package mdicon

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"
)

// kappa is the control point distance used to approximate a quarter ellipse with a cubic Bézier curve.
const kappa = 0.5522847498

// Point is a position in canvas coordinates. A canvas of side n spans [0, n] on both axes
// and the pixel (i, j) covers the unit square starting at (i, j).
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Box is an axis aligned bounding box in canvas coordinates.
type Box struct {
	X0, Y0, X1, Y1 float64
}

// Canon returns the box with its corners ordered so that X0 <= X1 and Y0 <= Y1.
func (b Box) Canon() Box {
	if b.X0 > b.X1 {
		b.X0, b.X1 = b.X1, b.X0
	}
	if b.Y0 > b.Y1 {
		b.Y0, b.Y1 = b.Y1, b.Y0
	}
	return b
}

// Dx returns the box width.
func (b Box) Dx() float64 { return b.X1 - b.X0 }

// Dy returns the box height.
func (b Box) Dy() float64 { return b.Y1 - b.Y0 }

// Empty reports whether the box encloses no area.
func (b Box) Empty() bool {
	b = b.Canon()
	return b.Dx() <= 0 || b.Dy() <= 0
}

// Canvas is the drawing surface the shape and glyph routines paint onto.
// Every primitive is anti-aliased and composited over the existing content.
type Canvas interface {
	// Bounds returns the pixel bounds of the canvas.
	Bounds() image.Rectangle
	// FillEllipse fills the ellipse inscribed in the box.
	FillEllipse(b Box, c color.Color)
	// FillRect fills the box.
	FillRect(b Box, c color.Color)
	// StrokePolyline strokes every segment between consecutive points with butt caps.
	StrokePolyline(pts []Point, width float64, c color.Color)
	// Image returns a copy of the pixels drawn so far.
	Image() *image.NRGBA
}

// Backend provides the raster capabilities needed to produce an icon:
// canvas creation, resampling and encoding.
type Backend interface {
	NewCanvas(size int) Canvas
	Resize(img image.Image, width, height int) *image.NRGBA
	Encode(w io.Writer, img image.Image, format imaging.Format) error
}

// RasterBackend is the default Backend. Shapes are scan converted with golang.org/x/image/vector,
// resampling and encoding are delegated to the imaging package.
type RasterBackend struct {
	Filter           imaging.ResampleFilter
	CompressionLevel png.CompressionLevel
}

var _ Backend = (*RasterBackend)(nil)

// NewRasterBackend returns a backend resampling with the Lanczos filter
// and encoding PNG files with the best compression.
func NewRasterBackend() *RasterBackend {
	return &RasterBackend{
		Filter:           imaging.Lanczos,
		CompressionLevel: png.BestCompression,
	}
}

// NewCanvas allocates a fully transparent square canvas.
func (b *RasterBackend) NewCanvas(size int) Canvas {
	return newRasterCanvas(size)
}

// Resize resamples the image to the requested dimensions using the backend filter.
func (b *RasterBackend) Resize(img image.Image, width, height int) *image.NRGBA {
	filter := b.Filter
	if filter.Support == 0 && filter.Kernel == nil {
		filter = imaging.Lanczos
	}
	return imaging.Resize(img, width, height, filter)
}

// Encode writes the image to w in the given format.
func (b *RasterBackend) Encode(w io.Writer, img image.Image, format imaging.Format) error {
	return imaging.Encode(w, img, format, imaging.PNGCompressionLevel(b.CompressionLevel))
}

// rasterCanvas paints onto a premultiplied RGBA image, which the rasterizer composites onto
// without intermediate conversions. Each primitive is accumulated into a fresh rasterizer
// path and composited in a single draw call.
type rasterCanvas struct {
	img *image.RGBA
	r   *vector.Rasterizer
}

var _ Canvas = (*rasterCanvas)(nil)

func newRasterCanvas(size int) *rasterCanvas {
	if size < 0 {
		size = 0
	}
	return &rasterCanvas{
		img: image.NewRGBA(image.Rect(0, 0, size, size)),
		r:   vector.NewRasterizer(size, size),
	}
}

func (c *rasterCanvas) Bounds() image.Rectangle { return c.img.Bounds() }

func (c *rasterCanvas) Image() *image.NRGBA { return imaging.Clone(c.img) }

func (c *rasterCanvas) FillEllipse(b Box, col color.Color) {
	b = b.Canon()
	if b.Empty() {
		return
	}
	rx, ry := b.Dx()/2, b.Dy()/2
	cx, cy := b.X0+rx, b.Y0+ry
	kx, ky := rx*kappa, ry*kappa

	c.begin()
	c.moveTo(cx+rx, cy)
	c.cubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	c.cubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	c.cubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	c.cubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	c.r.ClosePath()
	c.paint(col)
}

func (c *rasterCanvas) FillRect(b Box, col color.Color) {
	b = b.Canon()
	if b.Empty() {
		return
	}
	c.begin()
	c.moveTo(b.X0, b.Y0)
	c.lineTo(b.X1, b.Y0)
	c.lineTo(b.X1, b.Y1)
	c.lineTo(b.X0, b.Y1)
	c.r.ClosePath()
	c.paint(col)
}

func (c *rasterCanvas) StrokePolyline(pts []Point, width float64, col color.Color) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	c.begin()
	var drawn bool
	for i := 1; i < len(pts); i++ {
		q, ok := segmentQuad(pts[i-1], pts[i], width/2)
		if !ok {
			continue
		}
		c.moveTo(q[0].X, q[0].Y)
		for _, p := range q[1:] {
			c.lineTo(p.X, p.Y)
		}
		c.r.ClosePath()
		drawn = true
	}
	if drawn {
		c.paint(col)
	}
}

// segmentQuad returns the four corners of a butt capped stroke of half width hw along p0-p1.
// All quads share the same winding, so overlapping segments accumulate instead of cancelling.
func segmentQuad(p0, p1 Point, hw float64) ([4]Point, bool) {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	l := math.Hypot(dx, dy)
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return [4]Point{}, false
	}
	nx, ny := -dy/l*hw, dx/l*hw

	return [4]Point{
		{p0.X + nx, p0.Y + ny},
		{p1.X + nx, p1.Y + ny},
		{p1.X - nx, p1.Y - ny},
		{p0.X - nx, p0.Y - ny},
	}, true
}

func (c *rasterCanvas) begin() {
	size := c.img.Bounds().Size()
	c.r.Reset(size.X, size.Y)
}

func (c *rasterCanvas) paint(col color.Color) {
	c.r.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *rasterCanvas) moveTo(x, y float64) {
	c.r.MoveTo(float32(x), float32(y))
}

func (c *rasterCanvas) lineTo(x, y float64) {
	c.r.LineTo(float32(x), float32(y))
}

func (c *rasterCanvas) cubeTo(bx, by, cx, cy, dx, dy float64) {
	c.r.CubeTo(float32(bx), float32(by), float32(cx), float32(cy), float32(dx), float32(dy))
}
