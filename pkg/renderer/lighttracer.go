package renderer

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nasehim7/appleseed/pkg/camera"
	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/lights"
	"github.com/nasehim7/appleseed/pkg/lighttracing"
	"github.com/nasehim7/appleseed/pkg/scene"
)

// The scene, camera and lights types are the canonical implementations of
// the tracing collaborator contracts
var (
	_ lighttracing.Intersector         = (*scene.Intersector)(nil)
	_ lighttracing.TransmittanceTracer = (*scene.Tracer)(nil)
	_ lighttracing.CameraConnector     = (*camera.Pinhole)(nil)
	_ lighttracing.LightSampler        = (*lights.ImportanceSampler)(nil)
	_ lighttracing.AccumulationBuffer  = (*GlobalSampleBuffer)(nil)
)

// particleBatchSize is the number of particles a worker traces between
// merges into the shared buffer and context checks
const particleBatchSize = 1024

// Config controls a light tracing render
type Config struct {
	// Workers is the number of parallel tracing goroutines, zero for one
	// per CPU
	Workers int

	// TotalParticles is the number of light particles to emit across all
	// workers
	TotalParticles uint64

	// Seed drives all random decisions; renders with equal seeds and
	// worker counts are reproducible
	Seed uint64

	Params lighttracing.Parameters
}

// LightTracer renders a scene by tracing particles from the lights and
// connecting every path vertex to the camera
type LightTracer struct {
	scene  *scene.Scene
	config Config
	logger core.Logger
}

// NewLightTracer creates a renderer over a preprocessed scene
func NewLightTracer(s *scene.Scene, config Config, logger core.Logger) *LightTracer {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = &core.SilentLogger{}
	}
	return &LightTracer{scene: s, config: config, logger: logger}
}

// Render emits the configured number of particles and returns the filled
// sample buffer. Cancelling the context stops the render early; samples
// accumulated up to that point are returned along with the context error.
func (lt *LightTracer) Render(ctx context.Context) (*GlobalSampleBuffer, error) {
	workers := lt.config.Workers
	buffer := NewGlobalSampleBuffer(int(lt.config.TotalParticles))

	lt.logger.Printf("tracing %d particles with %d workers",
		lt.config.TotalParticles, workers)
	start := time.Now()

	generators := make([]*lighttracing.Generator, workers)
	intersectors := make([]*scene.Intersector, workers)
	group, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		quota := lt.config.TotalParticles / uint64(workers)
		if w == 0 {
			quota += lt.config.TotalParticles % uint64(workers)
		}

		intersectors[w] = scene.NewIntersector(lt.scene, lt.config.Params.ReportSelfIntersections)
		gen := lighttracing.NewGenerator(lt.generatorConfig(intersectors[w], w, workers))
		generators[w] = gen

		group.Go(func() error {
			var local []lighttracing.Sample
			var batch uint64

			flush := func() {
				buffer.Merge(local)
				buffer.IncrementSampleCount(batch)
				local = local[:0]
				batch = 0
			}

			for n := uint64(0); n < quota; n++ {
				gen.GenerateSamples(gen.SequenceIndex(n), &local)
				batch++

				if batch == particleBatchSize {
					flush()
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
				}
			}
			flush()
			return nil
		})
	}

	err := group.Wait()

	elapsed := time.Since(start)
	lt.logger.Printf("traced %d particles in %v (%d samples)",
		buffer.SampleCount(), elapsed.Round(time.Millisecond), buffer.Len())
	lt.logger.Printf("light path lengths: %s", lt.pathLengthSummary(generators))

	if lt.config.Params.ReportSelfIntersections {
		var selfHits uint64
		for _, in := range intersectors {
			selfHits += in.SelfIntersectionCount()
		}
		lt.logger.Printf("excluded %d self-intersections", selfHits)
	}

	if err != nil {
		return buffer, fmt.Errorf("render interrupted: %w", err)
	}
	return buffer, nil
}

// RenderFrame runs a full render and develops the result into a new frame
func (lt *LightTracer) RenderFrame(ctx context.Context, width, height int) (*Frame, error) {
	buffer, err := lt.Render(ctx)
	if err != nil {
		return nil, err
	}
	frame := NewFrame(width, height)
	buffer.DevelopTo(frame)
	return frame, nil
}

func (lt *LightTracer) generatorConfig(intersector *scene.Intersector, index, count int) lighttracing.Config {
	return lighttracing.Config{
		Intersector:    intersector,
		Tracer:         scene.NewTracer(intersector),
		Camera:         lt.scene.Camera(),
		Lights:         lt.scene.LightSampler(),
		Environment:    lt.scene.Environment(),
		SceneCenter:    lt.scene.Center(),
		SceneRadius:    lt.scene.Radius(),
		SafeDiameter:   lt.scene.SafeDiameter(),
		Seed:           lt.config.Seed,
		GeneratorIndex: index,
		GeneratorCount: count,
		Params:         lt.config.Params,
	}
}

func (lt *LightTracer) pathLengthSummary(generators []*lighttracing.Generator) *lighttracing.Population {
	var total lighttracing.Population
	for _, g := range generators {
		total.MergeFrom(g.PathLengths())
	}
	return &total
}
