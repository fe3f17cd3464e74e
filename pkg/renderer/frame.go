package renderer

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/lighttracing"
)

// Frame is the film: a grid of linear RGB radiance estimates with a depth
// channel holding the nearest splat distance per pixel
type Frame struct {
	width  int
	height int
	pixels []core.Vec3
	depth  []float64
}

// NewFrame creates a black frame of the given dimensions
func NewFrame(width, height int) *Frame {
	depth := make([]float64, width*height)
	for i := range depth {
		depth[i] = math.Inf(1)
	}
	return &Frame{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
		depth:  depth,
	}
}

// Width returns the frame width in pixels
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in pixels
func (f *Frame) Height() int { return f.height }

// Splat adds a scaled sample to the pixel its film position falls in
func (f *Frame) Splat(s *lighttracing.Sample, scale float64) {
	x := int(s.Position.X * float64(f.width))
	y := int(s.Position.Y * float64(f.height))
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}

	i := y*f.width + x
	f.pixels[i] = f.pixels[i].Add(s.Radiance.Multiply(scale))
	if s.Distance < f.depth[i] {
		f.depth[i] = s.Distance
	}
}

// Pixel returns the accumulated radiance at the given pixel
func (f *Frame) Pixel(x, y int) core.Vec3 {
	return f.pixels[y*f.width+x]
}

// Depth returns the nearest splat distance at the given pixel, +Inf when
// nothing landed there
func (f *Frame) Depth(x, y int) float64 {
	return f.depth[y*f.width+x]
}

// Image converts the frame to an 8-bit sRGB image
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			p := f.pixels[y*f.width+x]
			c := colorful.LinearRgb(p.X, p.Y, p.Z).Clamped()
			r, g, b := c.RGB255()
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 255
		}
	}
	return img
}

// Preview returns a downscaled copy of the developed image whose longest
// side is at most maxDim pixels
func (f *Frame) Preview(maxDim int) *image.RGBA {
	src := f.Image()
	w, h := f.width, f.height
	if w <= maxDim && h <= maxDim {
		return src
	}

	ratio := float64(maxDim) / float64(w)
	if h > w {
		ratio = float64(maxDim) / float64(h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*ratio), int(float64(h)*ratio)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// WritePNG develops the frame and writes it to the given path
func (f *Frame) WritePNG(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, f.Image()); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
