package mdicon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
)

var (
	// BackgroundColor is the indigo accent (#6366F1) filling the color icon.
	BackgroundColor = color.NRGBA{R: 99, G: 102, B: 241, A: 255}
	// ForegroundColor is the color of the mark.
	ForegroundColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// ErrInvalidVariant is returned when a variant can't be rendered.
var ErrInvalidVariant = errors.New("invalid icon variant")

// Variant describes one icon asset.
type Variant struct {
	// Name is used as the output file name without extension.
	Name string
	// Size is the side of the produced square image in pixels.
	Size int
	// Scale is the supersampling factor. The icon is drawn at Size*Scale
	// and resampled down to Size. Zero means no supersampling.
	Scale int
	// Radius is the corner radius of the background at Size.
	Radius float64
	// Background fills the rounded rectangle behind the mark. Nil leaves the canvas transparent.
	Background color.Color
	// Foreground is the mark color. Nil means ForegroundColor.
	Foreground color.Color
}

var (
	// ColorIcon is the full color 192x192 icon.
	ColorIcon = Variant{
		Name:       "color",
		Size:       192,
		Scale:      1,
		Radius:     32,
		Background: BackgroundColor,
		Foreground: ForegroundColor,
	}
	// OutlineIcon is the 32x32 white mark on a transparent background, drawn at 4x.
	OutlineIcon = Variant{
		Name:       "outline",
		Size:       32,
		Scale:      4,
		Foreground: ForegroundColor,
	}
)

// Variants returns the icons produced by a default run, in generation order.
func Variants() []Variant {
	return []Variant{ColorIcon, OutlineIcon}
}

// RenderSize returns the side of the canvas the variant is drawn on.
func (v Variant) RenderSize() int {
	if v.Scale <= 1 {
		return v.Size
	}
	return v.Size * v.Scale
}

func (v Variant) validate() error {
	if v.Size <= 0 {
		return fmt.Errorf("%w: %q has size %d", ErrInvalidVariant, v.Name, v.Size)
	}
	if v.Scale < 0 {
		return fmt.Errorf("%w: %q has scale %d", ErrInvalidVariant, v.Name, v.Scale)
	}
	return nil
}

// Processor renders icon variants through a drawing Backend.
type Processor struct {
	Backend Backend
}

// NewProcessor returns a processor using the default raster backend.
func NewProcessor() *Processor {
	return &Processor{Backend: NewRasterBackend()}
}

func (p *Processor) backend() Backend {
	if p.Backend == nil {
		p.Backend = NewRasterBackend()
	}
	return p.Backend
}

// Render draws the variant and returns the final raster.
// The background, if any, is painted first, then the mark on top of it.
// Supersampled variants are resampled down to their nominal size.
func (p *Processor) Render(v Variant) (*image.NRGBA, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	b := p.backend()
	size := v.RenderSize()
	scale := float64(size) / float64(v.Size)

	c := b.NewCanvas(size)
	if v.Background != nil {
		s := float64(size)
		RoundedRect(c, Box{0, 0, s, s}, v.Radius*scale, v.Background)
	}

	fg := v.Foreground
	if fg == nil {
		fg = ForegroundColor
	}
	DrawGlyph(c, size, fg)

	img := c.Image()
	if size != v.Size {
		img = b.Resize(img, v.Size, v.Size)
	}
	return img, nil
}

// Process renders the variant and encodes it to w.
func (p *Processor) Process(w io.Writer, v Variant, format imaging.Format) error {
	img, err := p.Render(v)
	if err != nil {
		return err
	}
	if err := p.backend().Encode(w, img, format); err != nil {
		return fmt.Errorf("could not encode the %s icon: %w", v.Name, err)
	}
	return nil
}
