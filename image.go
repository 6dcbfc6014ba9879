package mdicon

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrUnsupportedFormat is returned for output formats that are lossy or can't store transparency.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// FormatFromPath detects the output format from the file extension.
// Only lossless formats with an alpha channel are accepted. A path without extension is PNG.
func FormatFromPath(path string) (imaging.Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return imaging.PNG, nil
	}
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	switch format {
	case imaging.PNG, imaging.BMP, imaging.TIFF:
		return format, nil
	default:
		return 0, fmt.Errorf("%w: %s is not lossless", ErrUnsupportedFormat, format)
	}
}

// filters maps the names accepted on the command line to resampling filters.
var filters = map[string]imaging.ResampleFilter{
	"lanczos":    imaging.Lanczos,
	"catmullrom": imaging.CatmullRom,
	"mitchell":   imaging.MitchellNetravali,
	"linear":     imaging.Linear,
	"box":        imaging.Box,
}

// FilterByName returns the resampling filter registered under name.
func FilterByName(name string) (imaging.ResampleFilter, error) {
	f, ok := filters[strings.ToLower(name)]
	if !ok {
		return imaging.ResampleFilter{}, fmt.Errorf("unknown resampling filter: %q", name)
	}
	return f, nil
}
