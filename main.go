package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"os/signal"

	flag "github.com/spf13/pflag"

	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/lighttracing"
	"github.com/nasehim7/appleseed/pkg/loaders"
	"github.com/nasehim7/appleseed/pkg/material"
	"github.com/nasehim7/appleseed/pkg/renderer"
	"github.com/nasehim7/appleseed/pkg/sampling"
	"github.com/nasehim7/appleseed/pkg/scene"
)

func main() {
	width := flag.Int("width", 512, "output width in pixels")
	height := flag.Int("height", 512, "output height in pixels")
	particles := flag.Uint64("particles", 2_000_000, "number of light particles to trace")
	workers := flag.Int("workers", 0, "tracing goroutines, 0 for one per CPU")
	seed := flag.Uint64("seed", 0, "random seed")
	samplerName := flag.String("sampler", "qmc", "sampler: qmc or rng")
	caustics := flag.Bool("caustics", true, "trace caustic light paths")
	ibl := flag.Bool("ibl", true, "enable environment emission")
	maxPathLength := flag.Int("max-path-length", 0, "maximum scattering events, 0 for unbounded")
	meshPath := flag.String("mesh", "", "optional glTF mesh to place in the scene")
	out := flag.String("out", "out.png", "output image path")
	previewPath := flag.String("preview", "", "optional downscaled preview image path")
	previewSize := flag.Int("preview-size", 256, "preview longest side in pixels")
	flag.Parse()

	if err := run(*width, *height, *particles, *workers, *seed, *samplerName,
		*caustics, *ibl, *maxPathLength, *meshPath, *out, *previewPath, *previewSize); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(width, height int, particles uint64, workers int, seed uint64,
	samplerName string, caustics, ibl bool, maxPathLength int,
	meshPath, out, previewPath string, previewSize int) error {

	mode := sampling.ParseMode(samplerName)
	logger := &core.DefaultLogger{}

	sc := scene.CornellBox(float64(width) / float64(height))
	if meshPath != "" {
		if err := addMesh(sc, meshPath); err != nil {
			return err
		}
		logger.Printf("loaded mesh from %s", meshPath)
	}

	params := lighttracing.DefaultParameters()
	params.Mode = mode
	params.EnableCaustics = caustics
	params.EnableIBL = ibl
	params.MaxPathLength = maxPathLength

	lt := renderer.NewLightTracer(sc, renderer.Config{
		Workers:        workers,
		TotalParticles: particles,
		Seed:           seed,
		Params:         params,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frame, err := lt.RenderFrame(ctx, width, height)
	if err != nil {
		return err
	}

	if err := frame.WritePNG(out); err != nil {
		return err
	}
	logger.Printf("wrote %s", out)

	if previewPath != "" {
		if err := writePreview(frame, previewPath, previewSize); err != nil {
			return err
		}
		logger.Printf("wrote %s", previewPath)
	}
	return nil
}

// addMesh loads a glTF file and drops its meshes into the scene with a
// glossy surface. The scene is re-preprocessed to rebuild the BVH.
func addMesh(sc *scene.Scene, path string) error {
	meshes, err := loaders.LoadGLTF(path,
		material.NewGlossy(core.NewVec3(0.7, 0.7, 0.7), 30))
	if err != nil {
		return err
	}
	for _, m := range meshes {
		sc.AddShape(m)
	}
	sc.Preprocess()
	return nil
}

func writePreview(frame *renderer.Frame, path string, size int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, frame.Preview(size)); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
