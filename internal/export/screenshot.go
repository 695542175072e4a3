package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Filename builds a timestamped file name like "prefix_2006-01-02_15-04-05.ext" in dir.
func Filename(dir, prefix, ext string, now time.Time) string {
	name := fmt.Sprintf("%s_%s.%s", prefix, now.Format("2006-01-02_15-04-05"), ext)
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// FlipRows converts bottom-up RGBA rows, as OpenGL returns them, into an image.
func FlipRows(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}
	return img, nil
}

// SavePNG writes bottom-up RGBA pixels to path as a PNG.
func SavePNG(path string, pixels []byte, width, height int) error {
	img, err := FlipRows(pixels, width, height)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
