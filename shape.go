package mdicon

import "image/color"

// RoundedRect fills the box with a rectangle whose corners are rounded by quarter circles of the given radius.
//
// The shape is composed from four corner circles of diameter 2*radius and two rectangles,
// one spanning the full height inset horizontally by radius and one spanning the full width
// inset vertically by radius. The rectangles share their edges with the bounding boxes of the
// circles so no seam is visible between them. A radius that does not fit into the box
// produces overlapping corners; this is not checked. A zero or negative radius fills a plain rectangle.
func RoundedRect(c Canvas, box Box, radius float64, fill color.Color) {
	box = box.Canon()
	if radius <= 0 {
		c.FillRect(box, fill)
		return
	}

	r, d := radius, 2*radius
	c.FillEllipse(Box{box.X0, box.Y0, box.X0 + d, box.Y0 + d}, fill)
	c.FillEllipse(Box{box.X1 - d, box.Y0, box.X1, box.Y0 + d}, fill)
	c.FillEllipse(Box{box.X0, box.Y1 - d, box.X0 + d, box.Y1}, fill)
	c.FillEllipse(Box{box.X1 - d, box.Y1 - d, box.X1, box.Y1}, fill)

	c.FillRect(Box{box.X0 + r, box.Y0, box.X1 - r, box.Y1}, fill)
	c.FillRect(Box{box.X0, box.Y0 + r, box.X1, box.Y1 - r}, fill)
}
