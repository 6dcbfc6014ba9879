/*
Package mdicon procedurally renders the "M↓" markdown icons: a full color square icon
with the mark on an indigo rounded rectangle, and a small white outline icon on a
transparent background.

All the geometry is expressed as fractions of the canvas size, so the same mark can be
rendered at any resolution. Small icons are drawn at a multiple of their size and resampled
down with a Lanczos filter, which gives smoother edges than drawing them natively.

The package provides a command line interface writing both icons into a directory.
To check the supported flags type:

	$ mdicon --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"
		"os"

		"github.com/disintegration/imaging"
		"github.com/esimov/mdicon"
	)

	func main() {
		p := mdicon.NewProcessor()

		f, err := os.Create("color.png")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		if err := p.Process(f, mdicon.ColorIcon, imaging.PNG); err != nil {
			log.Fatalf("Error rendering the icon: %v", err)
		}
	}
*/
package mdicon

//go:generate go run ./cmd/mdicon -out manifest -mkdir
