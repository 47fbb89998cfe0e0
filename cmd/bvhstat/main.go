package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/op/go-logging"
	"github.com/solarlune/trimesh"
	"github.com/urfave/cli"
)

var logger = logging.MustGetLogger("bvhstat")

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

func setupLogging(ctx *cli.Context) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	leveledBackend = logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveledBackend.SetLevel(logging.NOTICE, "")
	logging.SetBackend(leveledBackend)

	if ctx.GlobalBool("v") {
		leveledBackend.SetLevel(logging.INFO, "")
	}

	if ctx.GlobalBool("vv") {
		leveledBackend.SetLevel(logging.DEBUG, "")
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "bvhstat"
	app.Usage = "inspect the bounding-volume hierarchy built over a triangle mesh"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "stat",
			Usage: "build a hierarchy over a glTF file and report its shape",
			Description: `
Load every triangle primitive from a .gltf or .glb file, build the
bounding-volume hierarchy over the combined buffers and print node counts
and leaf depth statistics. With --rays, additionally time a batch of random
first-hit rays through the mesh bounds.`,
			ArgsUsage: "mesh.glb",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "rays",
					Value: 0,
					Usage: "number of random first-hit rays to time",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "seed for the random ray generator",
				},
			},
			Action: statMesh,
		},
	}

	app.Run(os.Args)
}

func statMesh(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return cli.NewExitError("expected exactly one mesh file argument", 1)
	}

	path := ctx.Args().First()

	loadStart := time.Now()
	vertices, elements, err := trimesh.LoadGLTFFile(path)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	logger.Infof("loaded %s in %s", path, time.Since(loadStart))

	buildStart := time.Now()
	shape := trimesh.NewTriangleMeshShape(vertices, elements)
	buildTime := time.Since(buildStart)

	numTriangles := len(elements) / 3

	fmt.Printf("mesh:           %s\n", path)
	fmt.Printf("vertices:       %d\n", len(vertices))
	fmt.Printf("triangles:      %d\n", numTriangles)
	fmt.Printf("nodes:          %d\n", len(shape.Nodes))
	fmt.Printf("build time:     %s\n", buildTime)
	fmt.Printf("min depth:      %d\n", shape.MinDepth())
	fmt.Printf("max depth:      %d\n", shape.MaxDepth())
	fmt.Printf("average depth:  %.2f\n", shape.AverageDepth())
	fmt.Printf("balanced depth: %.2f\n", shape.BalancedDepth())

	if numRays := ctx.Int("rays"); numRays > 0 {
		traceRays(shape, numRays, ctx.Int64("seed"))
	}

	return nil
}

// traceRays fires numRays random segments between points on the root bounding box's faces and
// reports the hit rate and the mean time per trace.
func traceRays(shape *trimesh.TriangleMeshShape, numRays int, seed int64) {

	bounds := shape.Nodes[shape.Root].AABB
	rng := rand.New(rand.NewSource(seed))

	randomPoint := func() trimesh.Vector3 {
		point := trimesh.NewVector3(
			bounds.Min.X+rng.Float32()*(bounds.Max.X-bounds.Min.X),
			bounds.Min.Y+rng.Float32()*(bounds.Max.Y-bounds.Min.Y),
			bounds.Min.Z+rng.Float32()*(bounds.Max.Z-bounds.Min.Z),
		)
		// Pin one axis to a box face so that rays cross the interior
		switch axis := rng.Intn(3); axis {
		case 0:
			point.X = bounds.Min.X
		case 1:
			point.Y = bounds.Min.Y
		default:
			point.Z = bounds.Max.Z
		}
		return point
	}

	starts := make([]trimesh.Vector3, numRays)
	ends := make([]trimesh.Vector3, numRays)
	for i := 0; i < numRays; i++ {
		starts[i] = randomPoint()
		ends[i] = randomPoint()
	}

	hits := 0
	traceStart := time.Now()
	for i := 0; i < numRays; i++ {
		if hit := shape.FindFirstHit(starts[i], ends[i]); hit.Triangle != -1 {
			hits++
		}
	}
	traceTime := time.Since(traceStart)

	fmt.Printf("rays traced:    %d\n", numRays)
	fmt.Printf("rays hit:       %d\n", hits)
	fmt.Printf("mean trace:     %s\n", traceTime/time.Duration(numRays))
	logger.Debugf("total trace time %s", traceTime)
}
