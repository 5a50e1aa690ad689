// Command quadwarp draws textures onto arbitrary quadrilaterals.
//
// Single placement:
//
//	quadwarp -texture brick.png -dst "100,80 420,40 460,400 60,360" -method perspective -o out.png
//
// Batch job:
//
//	quadwarp -job poster.yaml
//
// With -backend record nothing is rasterized; a summary of the canvas calls
// is printed instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/gogpu/quadwarp"
	"github.com/gogpu/quadwarp/internal/imageio"
	"github.com/gogpu/quadwarp/internal/job"
	"github.com/gogpu/quadwarp/surface"
)

type flags struct {
	texture    string
	dst        string
	src        string
	method     string
	tiles      int
	overlap    float64
	width      int
	height     int
	background string
	output     string
	jobFile    string
	saveJob    string
	backend    string
	verbose    bool
	quiet      bool
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	fs := flag.NewFlagSet("quadwarp", flag.ContinueOnError)
	fs.SetOutput(stderr)

	f := &flags{}
	fs.StringVar(&f.texture, "texture", "", "texture image file")
	fs.StringVar(&f.dst, "dst", "", `destination quad "x,y x,y x,y x,y" (TL TR BR BL)`)
	fs.StringVar(&f.src, "src", "", "source quad in texture pixels (default: whole texture)")
	fs.StringVar(&f.method, "method", "bilinear", "mapping method: bilinear or perspective")
	fs.IntVar(&f.tiles, "tiles", quadwarp.DefaultTiles, "grid cells per edge (1-10)")
	fs.Float64Var(&f.overlap, "overlap", quadwarp.DefaultSeamOverlap, "seam overlap in cells (0-0.1)")
	fs.IntVar(&f.width, "width", job.DefaultWidth, "output width")
	fs.IntVar(&f.height, "height", job.DefaultHeight, "output height")
	fs.StringVar(&f.background, "background", "", "background color (#rrggbb or name)")
	fs.StringVar(&f.output, "o", job.DefaultOutput, "output file (.png, .jpg, .bmp, .tiff)")
	fs.StringVar(&f.jobFile, "job", "", "YAML job file; overrides the single placement flags")
	fs.StringVar(&f.saveJob, "save-job", "", "write the single placement flags as a YAML job file and exit")
	backends := surface.Available()
	fs.StringVar(&f.backend, "backend", "", fmt.Sprintf("canvas backend: %s (default %s)",
		strings.Join(backends, ", "), backends[0]))
	fs.BoolVar(&f.verbose, "v", false, "enable debug logging")
	fs.BoolVar(&f.quiet, "q", false, "hide the progress bar")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if f.backend != "" && !slices.Contains(backends, f.backend) {
		return nil, fmt.Errorf("-backend: %w", &surface.BackendNotFoundError{Name: f.backend, Known: backends})
	}
	return f, nil
}

// buildJob turns the single placement flags into a one-placement job.
func (f *flags) buildJob() (*job.Job, error) {
	if f.texture == "" || f.dst == "" {
		return nil, errors.New("either -job or both -texture and -dst are required")
	}
	dst, err := job.ParsePoints(f.dst)
	if err != nil {
		return nil, fmt.Errorf("-dst: %w", err)
	}
	var src job.Points
	if f.src != "" {
		if src, err = job.ParsePoints(f.src); err != nil {
			return nil, fmt.Errorf("-src: %w", err)
		}
	}
	overlap := f.overlap
	j := &job.Job{
		Version:    job.CurrentVersion,
		Width:      f.width,
		Height:     f.height,
		Background: f.background,
		Output:     f.output,
		Backend:    f.backend,
		Placements: []job.Placement{{
			Texture: f.texture,
			Src:     src,
			Dst:     dst,
			Method:  f.method,
			Tiles:   f.tiles,
			Overlap: &overlap,
		}},
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return j, nil
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("quadwarp: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if f.verbose {
		quadwarp.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var j *job.Job
	if f.jobFile != "" {
		j, err = job.Load(f.jobFile)
		if err != nil {
			return err
		}
		if f.backend != "" {
			j.Backend = f.backend
		}
	} else {
		j, err = f.buildJob()
		if err != nil {
			return err
		}
		if f.saveJob != "" {
			if err := job.Save(f.saveJob, j); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "job written to %s\n", f.saveJob)
			return nil
		}
	}

	return render(j, f.quiet, stdout, stderr)
}

func render(j *job.Job, quiet bool, stdout, stderr io.Writer) error {
	newTarget := surface.NewDefaultTarget
	if j.Backend != "" {
		newTarget = func(w, h int) (surface.Target, error) { return surface.NewTarget(j.Backend, w, h) }
	}
	target, err := newTarget(j.Width, j.Height)
	if err != nil {
		return err
	}
	defer func() { _ = target.Close() }()

	if j.Background != "" {
		bg, err := imageio.ParseColor(j.Background)
		if err != nil {
			return err
		}
		if s, ok := target.(*surface.ImageSurface); ok {
			s.Clear(bg)
		}
	}

	var progress job.Progress
	if !quiet {
		bar := progressbar.NewOptions(len(j.Placements),
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionSetDescription("warping"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		defer func() { _ = bar.Finish() }()
		progress = func(done, _ int) { _ = bar.Set(done) }
	}

	if err := job.Run(j, target, loadTexture, progress); err != nil {
		return err
	}

	switch t := target.(type) {
	case *surface.ImageSurface:
		out := j.OutputPath()
		if err := imageio.Save(out, t.Image()); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s (%dx%d, %d placements)\n", out, j.Width, j.Height, len(j.Placements))
	case *surface.Recorder:
		printTrace(stdout, t)
	default:
		fmt.Fprintf(stdout, "rendered %d placements on %T\n", len(j.Placements), target)
	}
	return nil
}

func loadTexture(path string) (image.Image, error) {
	img, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}
	return imageio.ToRGBA(img), nil
}

func printTrace(w io.Writer, r *surface.Recorder) {
	ops := r.Ops()
	fmt.Fprintf(w, "%d canvas calls\n", len(ops))
	for k := surface.OpBeginPath; k <= surface.OpRestore; k++ {
		if n := r.Count(k); n > 0 {
			fmt.Fprintf(w, "  %-15s %d\n", k, n)
		}
	}
}
