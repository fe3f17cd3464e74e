package renderer

import (
	"testing"

	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/lighttracing"
)

func TestSplatOutOfRange(t *testing.T) {
	frame := NewFrame(4, 4)
	frame.Splat(&lighttracing.Sample{
		Position: core.NewVec2(1.5, 0.5),
		Radiance: core.NewVec3(1, 1, 1),
	}, 1)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if frame.Pixel(x, y) != (core.Vec3{}) {
				t.Fatalf("out of range splat landed at (%d, %d)", x, y)
			}
		}
	}
}

func TestImageConversion(t *testing.T) {
	frame := NewFrame(2, 1)
	frame.Splat(&lighttracing.Sample{
		Position: core.NewVec2(0.25, 0.5),
		Radiance: core.NewVec3(1, 1, 1),
	}, 1)

	img := frame.Image()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("image bounds %v, want 2x1", img.Bounds())
	}

	// Linear 1.0 maps to white, linear 0.0 to black
	i := img.PixOffset(0, 0)
	if img.Pix[i] != 255 || img.Pix[i+1] != 255 || img.Pix[i+2] != 255 {
		t.Errorf("full radiance pixel is (%d, %d, %d), want white",
			img.Pix[i], img.Pix[i+1], img.Pix[i+2])
	}
	j := img.PixOffset(1, 0)
	if img.Pix[j] != 0 || img.Pix[j+1] != 0 || img.Pix[j+2] != 0 {
		t.Errorf("empty pixel is (%d, %d, %d), want black",
			img.Pix[j], img.Pix[j+1], img.Pix[j+2])
	}
}

func TestPreviewDownscale(t *testing.T) {
	frame := NewFrame(200, 100)
	preview := frame.Preview(50)

	if preview.Bounds().Dx() != 50 || preview.Bounds().Dy() != 25 {
		t.Errorf("preview bounds %v, want 50x25", preview.Bounds())
	}

	small := NewFrame(10, 10)
	if p := small.Preview(50); p.Bounds().Dx() != 10 {
		t.Errorf("small frame was rescaled to %v", p.Bounds())
	}
}
