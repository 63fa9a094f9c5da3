// Package raster implements the two rasterization engines that turn tensor
// patches into pixels: the CPU Fast Forward Differencing scanline walker
// and the subdivision-based flat-shaded triangle pipeline, plus the shared
// Framebuffer and Texture they write to and sample from.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Framebuffer is a row-major RGBA pixel buffer. Writes outside its bounds
// are silently clipped, per the rasterizer's out-of-range error policy.
type Framebuffer struct {
	Width, Height int
	Pixels        []color.RGBA
}

// NewFramebuffer allocates a cleared framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel writes a pixel at (x, y), silently doing nothing if it falls
// outside the framebuffer.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel reads a pixel, returning transparent black out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// FillRect paints a solid axis-aligned rectangle, the realization of the
// non-RGBA-mode "1x1 fill rectangle" painting path in the FFD rasterizer.
func (fb *Framebuffer) FillRect(x, y, w, h int, c color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			fb.SetPixel(px, py, c)
		}
	}
}

// ToImage converts the framebuffer to a standard Go image.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG writes the framebuffer to a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
