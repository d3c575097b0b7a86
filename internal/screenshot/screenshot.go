// Package screenshot exports the CHIP-8 display as a scaled PNG image.
package screenshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/vm/screen"
	"golang.org/x/image/draw"
)

// Image converts a row-major display buffer with one byte per pixel into a
// grayscale image, set pixels are white. The image is enlarged by scale
// using nearest neighbor sampling so that pixels stay sharp.
func Image(buffer []byte, scale int) (*image.Gray, error) {
	if len(buffer) != screen.Width*screen.Height {
		return nil, fmt.Errorf("display buffer has %d bytes, expected %d",
			len(buffer), screen.Width*screen.Height)
	}
	if scale < 1 {
		return nil, fmt.Errorf("invalid scale %d", scale)
	}

	src := image.NewGray(image.Rect(0, 0, screen.Width, screen.Height))
	for i, pixel := range buffer {
		if pixel != 0 {
			src.SetGray(i%screen.Width, i/screen.Width, color.Gray{Y: 0xff})
		}
	}
	if scale == 1 {
		return src, nil
	}

	dst := image.NewGray(image.Rect(0, 0, screen.Width*scale, screen.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// Encode writes the display buffer as PNG.
func Encode(w io.Writer, buffer []byte, scale int) error {
	img, err := Image(buffer, scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// Save writes the display buffer as PNG file.
func Save(path string, buffer []byte, scale int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}

	if err := Encode(file, buffer, scale); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file %s: %w", path, err)
	}
	return nil
}
