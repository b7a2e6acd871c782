// Package render provides software rasterization of triangle meshes.
package render

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Surface is the pixel sink the rasterizer writes into.
// Coordinates have their origin at the bottom-left corner.
type Surface interface {
	Size() (width, height int)
	Set(x, y int, c Color)
}

// Framebuffer is an in-memory Surface.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []Color // Row-major, row 0 is the bottom of the image
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (int, int) {
	return fb.Width, fb.Height
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c Color) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// Set sets a pixel at (x, y). Out of range writes are ignored.
func (fb *Framebuffer) Set(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// At returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) At(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Color{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// ToImage converts the framebuffer to an image.RGBA, flipping it
// vertically so that the bottom-left origin ends up at the bottom of the
// image.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		row := fb.Height - 1 - y
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, row, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// FromImage copies img into a new framebuffer, flipping it so that the
// bottom image row becomes row 0.
func FromImage(img image.Image) *Framebuffer {
	b := img.Bounds()
	fb := NewFramebuffer(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := b.Max.Y - 1 - y
		for x := b.Min.X; x < b.Max.X; x++ {
			fb.Pixels[row*fb.Width+x-b.Min.X] = color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
		}
	}
	return fb
}

// Scaled returns a bilinearly resampled copy of the framebuffer.
func (fb *Framebuffer) Scaled(width, height int) *Framebuffer {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	src := fb.ToImage()
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return FromImage(dst)
}
