package lighttracing

import (
	"math"

	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/lights"
	"github.com/nasehim7/appleseed/pkg/sampling"
)

// Parameters controls particle generation and path termination
type Parameters struct {
	// Mode selects the sampler driving all random decisions
	Mode sampling.Mode

	// EnableIBL enables particles emitted by the environment
	EnableIBL bool

	// EnableCaustics keeps glossy and specular continuations; disabling
	// it suppresses all caustic paths
	EnableCaustics bool

	// TransparencyThreshold is the throughput below which transparent
	// continuations are cut off
	TransparencyThreshold float64

	// MaxIterations bounds the traced segments of a single path
	MaxIterations int

	// ReportSelfIntersections counts excluded self-hits instead of
	// silently skipping them
	ReportSelfIntersections bool

	// MaxPathLength bounds the number of scattering events, zero for
	// unbounded
	MaxPathLength int

	// RRMinPathLength is the path length from which Russian roulette
	// starts terminating paths, zero to disable
	RRMinPathLength int
}

// DefaultParameters returns the production defaults
func DefaultParameters() Parameters {
	return Parameters{
		Mode:                  sampling.QMCMode,
		EnableIBL:             true,
		EnableCaustics:        true,
		TransparencyThreshold: 0.001,
		MaxIterations:         1000,
		MaxPathLength:         0,
		RRMinPathLength:       3,
	}
}

// Config wires a Generator to its collaborators. SceneRadius and
// SafeDiameter come from the scene bounding sphere; Environment may be nil.
type Config struct {
	Intersector Intersector
	Tracer      TransmittanceTracer
	Camera      CameraConnector
	Lights      LightSampler
	Environment lights.Environment

	SceneCenter  core.Vec3
	SceneRadius  float64
	SafeDiameter float64

	Seed           uint64
	GeneratorIndex int
	GeneratorCount int

	Params Parameters
}

// Generator emits light particles, traces them through the scene and
// connects every vertex to the camera. One generator serves one worker;
// generators are not safe for concurrent use, but any number of them can
// run in parallel against the same scene.
type Generator struct {
	cfg     Config
	arena   *sampling.Arena
	visitor *lightPathVisitor
	tracer  *PathTracer

	// probability density of a point on the environment emission disk
	diskPointProb float64

	pathLengths Population
}

// NewGenerator creates a particle generator over the given collaborators
func NewGenerator(cfg Config) *Generator {
	if cfg.GeneratorCount <= 0 {
		cfg.GeneratorCount = 1
	}
	g := &Generator{
		cfg:   cfg,
		arena: sampling.NewArena(64),
	}
	if cfg.SceneRadius > 0 {
		g.diskPointProb = 1.0 / (math.Pi * cfg.SceneRadius * cfg.SceneRadius)
	}
	g.visitor = newLightPathVisitor(cfg.Params, cfg.Camera, cfg.Tracer)
	g.tracer = NewPathTracer(g.visitor,
		cfg.Params.RRMinPathLength, cfg.Params.MaxPathLength, cfg.Params.MaxIterations)
	return g
}

// SequenceIndex maps a local particle counter to this generator's global
// sequence index; generators partition the sequence space by interleaving
func (g *Generator) SequenceIndex(n uint64) uint64 {
	return uint64(g.cfg.GeneratorIndex) + n*uint64(g.cfg.GeneratorCount)
}

// GenerateSamples emits the particles for the given sequence index, traces
// them and appends the resulting film samples. Each index emits at most one
// light particle plus one environment particle; an index whose particles
// never connect contributes nothing. Returns the number of samples appended.
func (g *Generator) GenerateSamples(sequenceIndex uint64, samples *[]Sample) int {
	g.arena.Reset()

	sctx := sampling.NewContext(g.cfg.Params.Mode, g.cfg.Seed, sequenceIndex)
	g.visitor.begin(sctx, samples)

	initial := len(*samples)
	if g.cfg.Lights != nil && g.cfg.Lights.HasLights() {
		g.generateLightParticle(sctx)
	}
	if g.cfg.Environment != nil && g.cfg.Params.EnableIBL {
		g.generateEnvironmentParticle(sctx)
	}
	return len(*samples) - initial
}

func (g *Generator) generateLightParticle(sctx *sampling.Context) {
	sctx.SplitInPlace(4, 1)
	timeSample := sctx.Next()
	u := sctx.Next3()

	time := lerp(g.cfg.Camera.ShutterOpen(), g.cfg.Camera.ShutterClose(), timeSample)

	ls, ok := g.cfg.Lights.Sample(time, u)
	if !ok {
		return
	}
	if ls.Area != nil {
		g.generateAreaLightParticle(sctx, &ls)
	} else {
		g.generatePointLightParticle(sctx, &ls)
	}
}

func (g *Generator) generateAreaLightParticle(sctx *sampling.Context, ls *lights.LightSample) {
	// Keep the geometric normal in the shading hemisphere so the emission
	// frame stays consistent on meshes with interpolated normals
	geometricNormal := ls.GeometricNormal.FlipToSameHemisphere(ls.ShadingNormal)

	edf := ls.Area.EDF()
	inputs := edf.EvaluateInputs(g.arena)

	basis := core.NewBasis(ls.ShadingNormal)
	direction, value, prob := edf.Sample(sctx, inputs, geometricNormal, basis)
	if prob <= 0 {
		return
	}

	// One time for the whole path, shared by every camera connection
	rayTime := g.sampleRayTime(sctx)

	// The light point itself is directly visible to the camera
	g.visitor.visitAreaLightVertex(ls, value.Multiply(1.0/ls.Probability), rayTime)

	cosTheta := direction.Dot(ls.ShadingNormal)
	if cosTheta <= 0 {
		return
	}
	flux := value.Multiply(cosTheta / (ls.Probability * prob))

	parent := ls.MakeShadingPoint()
	ray := core.NewRayAt(ls.Point, direction, rayTime)

	length := g.tracer.Trace(sctx, g.cfg.Intersector, ray, edf.NearStart(), &parent, flux)
	g.pathLengths.Insert(length)
}

func (g *Generator) generatePointLightParticle(sctx *sampling.Context, ls *lights.LightSample) {
	position, direction, value, prob := ls.Light.SampleEmission(sctx)
	if prob <= 0 {
		return
	}

	rayTime := g.sampleRayTime(sctx)

	g.visitor.visitNonPhysicalLightVertex(position, value.Multiply(1.0/ls.Probability), rayTime)

	flux := value.Multiply(1.0 / (ls.Probability * prob))
	ray := core.NewRayAt(position, direction, rayTime)

	length := g.tracer.Trace(sctx, g.cfg.Intersector, ray, 0, nil, flux)
	g.pathLengths.Insert(length)
}

func (g *Generator) generateEnvironmentParticle(sctx *sampling.Context) {
	outgoing, value, prob := g.cfg.Environment.SampleDirection(sctx)
	if prob <= 0 {
		return
	}

	// Particle propagation direction, from the sky into the scene
	direction := outgoing.Negate()
	basis := core.NewBasis(direction)

	sctx.SplitInPlace(2, 1)
	s := sctx.Next2()
	disk := sampling.SampleUniformDisk(s)

	origin := g.cfg.SceneCenter.
		Subtract(direction.Multiply(g.cfg.SafeDiameter)).
		Add(basis.TangentU.Multiply(disk.X * g.cfg.SceneRadius)).
		Add(basis.TangentV.Multiply(disk.Y * g.cfg.SceneRadius))

	flux := value.Multiply(1.0 / (g.diskPointProb * prob))
	ray := core.NewRayAt(origin, direction, g.sampleRayTime(sctx))

	length := g.tracer.Trace(sctx, g.cfg.Intersector, ray, 0, nil, flux)
	g.pathLengths.Insert(length)
}

func (g *Generator) sampleRayTime(sctx *sampling.Context) float64 {
	sctx.SplitInPlace(1, 1)
	return lerp(g.cfg.Camera.ShutterOpen(), g.cfg.Camera.ShutterClose(), sctx.Next())
}

// PathLengths returns the light path length statistics accumulated so far
func (g *Generator) PathLengths() *Population {
	return &g.pathLengths
}
