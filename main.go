package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// options holds the parsed command line. The set map records which flags
// were given explicitly so they can win over config file values.
type options struct {
	sceneName  string
	width      int
	samples    int
	depth      int
	seed       int64
	output     string
	configPath string
	epsilon    float64
	gamma      float64
	quiet      bool
	list       bool
	help       bool
	set        map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, *flag.FlagSet, error) {
	opts := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.sceneName, "scene", "normals", "Scene name (see -list)")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (0 keeps the scene default)")
	fs.IntVar(&opts.samples, "samples", 0, "Samples per pixel (0 keeps the scene default)")
	fs.IntVar(&opts.depth, "depth", -1, "Maximum ray bounce depth (-1 keeps the scene default)")
	fs.Int64Var(&opts.seed, "seed", 42, "Random seed for sampling and scene generation")
	fs.StringVar(&opts.output, "output", "", "Output PPM file (default stdout)")
	fs.StringVar(&opts.configPath, "config", "", "JSON file with camera and sampling overrides")
	fs.Float64Var(&opts.epsilon, "epsilon", renderer.DefaultHitEpsilon, "Minimum accepted hit distance")
	fs.Float64Var(&opts.gamma, "gamma", 0, "Output gamma (0 keeps the scene default, 1 writes linear values)")
	fs.BoolVar(&opts.quiet, "quiet", false, "Suppress progress output")
	fs.BoolVar(&opts.list, "list", false, "List available scenes")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, fs, nil
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Weekend Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options] > image.ppm")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	printScenes(w)
}

func printScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, name := range scene.Names() {
		description, _ := scene.Describe(name)
		fmt.Fprintf(w, "  %-12s %s\n", name, description)
	}
}

// createScene builds the requested scene and layers config file values and then flags over it
func createScene(opts *options) (*scene.Scene, error) {
	sceneName := opts.sceneName
	seed := opts.seed

	var cfg *scene.Config
	if opts.configPath != "" {
		var err error
		cfg, err = scene.LoadConfigFile(opts.configPath)
		if err != nil {
			return nil, err
		}
		if cfg.Scene != "" && !opts.set["scene"] {
			sceneName = cfg.Scene
		}
		if cfg.Seed != nil && !opts.set["seed"] {
			seed = *cfg.Seed
		}
	}

	s, err := scene.New(sceneName, seed)
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		cfg.Apply(s)
	}

	if opts.set["width"] {
		s.Camera.Width = opts.width
	}
	if opts.set["samples"] {
		s.Sampling.SamplesPerPixel = opts.samples
	}
	if opts.set["depth"] {
		s.Sampling.MaxDepth = opts.depth
	}
	if opts.set["epsilon"] {
		s.Sampling.HitEpsilon = opts.epsilon
	}
	if opts.set["gamma"] {
		s.Sampling.Gamma = opts.gamma
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// run renders according to args, writing the image to stdout unless -output is given
func run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opts.help {
		printHelp(stderr, fs)
		return nil
	}
	if opts.list {
		printScenes(stdout)
		return nil
	}

	s, err := createScene(opts)
	if err != nil {
		return err
	}

	var logger core.Logger = core.NopLogger{}
	if !opts.quiet {
		logger = core.NewWriterLogger(stderr)
	}
	logger.Printf("Rendering %q: %dx%d, %d samples, depth %d, %d objects\n",
		s.Name, s.Camera.Width, s.Camera.ImageHeight(),
		s.Sampling.SamplesPerPixel, s.Sampling.MaxDepth, s.GetPrimitiveCount())

	out := stdout
	if opts.output != "" {
		file, createErr := os.Create(opts.output)
		if createErr != nil {
			return fmt.Errorf("creating output file: %w", createErr)
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", closeErr)
			}
		}()
		out = file
	}

	raytracer, err := renderer.NewRaytracer(s.Camera, s.Sampling, core.NewSeededSampler(opts.seed), logger)
	if err != nil {
		return err
	}

	stats, err := raytracer.Render(ctx, s.World, out)
	if err != nil {
		return err
	}

	logger.Printf("Render completed in %v (%d samples, mean luminance %.4f)\n",
		stats.Duration, stats.TotalSamples, stats.MeanLuminance)
	if opts.output != "" {
		logger.Printf("Render saved as %s\n", opts.output)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
