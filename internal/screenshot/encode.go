package screenshot

import (
	"errors"
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"gocv.io/x/gocv"
)

var ErrEmptyRegion = errors.New("screenshot: region is empty")

// CropPNG cuts r out of img and encodes it as PNG.
func CropPNG(img image.Image, r image.Rectangle) ([]byte, error) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return nil, ErrEmptyRegion
	}

	mat, err := gocv.ImageToMatRGBA(img)
	if err != nil {
		return nil, fmt.Errorf("image to mat: %w", err)
	}
	defer mat.Close()

	// Mat coordinates start at zero regardless of the image's origin.
	roi := mat.Region(r.Sub(img.Bounds().Min))
	defer roi.Close()
	corner := roi.Clone()
	defer corner.Close()

	buf, err := gocv.IMEncode(gocv.PNGFileExt, corner)
	if err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	defer buf.Close()

	out := make([]byte, buf.Len())
	copy(out, buf.GetBytes())
	return out, nil
}

// Write stores data at uri through the toolkit's storage layer.
func Write(uri fyne.URI, data []byte) (err error) {
	w, err := storage.Writer(uri)
	if err != nil {
		return fmt.Errorf("open %s: %w", uri, err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", uri, cerr)
		}
	}()

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", uri, err)
	}
	return nil
}

// SaveCorner crops the top-left size×size points of img and writes it to path.
func SaveCorner(img image.Image, size int, pixelsPerPoint float32, path string) error {
	data, err := CropPNG(img, Region(img, size, pixelsPerPoint))
	if err != nil {
		return err
	}
	return Write(storage.NewFileURI(path), data)
}
