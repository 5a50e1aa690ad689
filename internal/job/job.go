// Package job reads batch warp descriptions from YAML files and runs them
// against a canvas.
//
// A job file looks like:
//
//	version: 1
//	width: 800
//	height: 600
//	background: "#202020"
//	output: poster.png
//	placements:
//	  - texture: brick.png
//	    dst: [[100, 80], [420, 40], [460, 400], [60, 360]]
//	    method: perspective
//	    tiles: 8
//
// Relative texture and output paths are resolved against the directory of
// the job file.
package job

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/quadwarp"
)

// Defaults applied by normalize.
const (
	CurrentVersion = 1
	DefaultWidth   = 512
	DefaultHeight  = 512
	DefaultOutput  = "out.png"
)

// ErrInvalidJob is wrapped by every validation error.
var ErrInvalidJob = errors.New("job: invalid job")

// Points is a list of [x, y] pairs.
type Points [][2]float64

// Quad converts exactly four points to a quadwarp.Quad.
func (p Points) Quad() (quadwarp.Quad, error) {
	pts := make([]quadwarp.Point, len(p))
	for i, xy := range p {
		pts[i] = quadwarp.Pt(xy[0], xy[1])
	}
	return quadwarp.QuadFromPoints(pts)
}

// PointsFromQuad converts q to Points.
func PointsFromQuad(q quadwarp.Quad) Points {
	p := make(Points, len(q))
	for i, c := range q {
		p[i] = [2]float64{c.X, c.Y}
	}
	return p
}

// ParsePoints parses "x,y x,y ..." into Points.
func ParsePoints(s string) (Points, error) {
	var p Points
	for _, field := range strings.Fields(s) {
		xs, ys, ok := strings.Cut(field, ",")
		if !ok {
			return nil, fmt.Errorf("%w: point %q is not x,y", ErrInvalidJob, field)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: point %q: %w", ErrInvalidJob, field, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: point %q: %w", ErrInvalidJob, field, err)
		}
		p = append(p, [2]float64{x, y})
	}
	return p, nil
}

// Job is one output image built from a list of placements. An empty
// Backend selects the preferred surface backend.
type Job struct {
	Version    int         `yaml:"version"`
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	Background string      `yaml:"background,omitempty"`
	Output     string      `yaml:"output"`
	Backend    string      `yaml:"backend,omitempty"`
	Placements []Placement `yaml:"placements"`

	// dir is the base for relative paths; empty means the working directory.
	dir string
}

// Placement draws one texture onto one destination quad.
type Placement struct {
	Name    string `yaml:"name,omitempty"`
	Texture string `yaml:"texture"`

	// Src is the texture-space quad. Empty means the full texture.
	Src Points `yaml:"src,omitempty"`
	Dst Points `yaml:"dst"`

	Method  string   `yaml:"method,omitempty"`
	Tiles   int      `yaml:"tiles,omitempty"`
	Overlap *float64 `yaml:"overlap,omitempty"`
}

// Label returns Name, or the texture path when Name is empty.
func (p *Placement) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Texture
}

// Config returns the warp configuration for p.
func (p *Placement) Config() (quadwarp.Config, error) {
	cfg := quadwarp.DefaultConfig()
	m, err := quadwarp.ParseMethod(p.Method)
	if err != nil {
		return cfg, err
	}
	cfg.Method = m
	if p.Tiles != 0 {
		cfg.Tiles = p.Tiles
	}
	if p.Overlap != nil {
		cfg.SeamOverlap = *p.Overlap
	}
	return cfg, cfg.Validate()
}

func (j *Job) normalize() {
	if j.Version == 0 {
		j.Version = CurrentVersion
	}
	if j.Width == 0 {
		j.Width = DefaultWidth
	}
	if j.Height == 0 {
		j.Height = DefaultHeight
	}
	if j.Output == "" {
		j.Output = DefaultOutput
	}
}

// Validate checks the job without touching the filesystem.
func (j *Job) Validate() error {
	if j.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidJob, j.Version)
	}
	if j.Width <= 0 || j.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidJob, j.Width, j.Height)
	}
	if len(j.Placements) == 0 {
		return fmt.Errorf("%w: no placements", ErrInvalidJob)
	}
	for i := range j.Placements {
		p := &j.Placements[i]
		if err := p.validate(); err != nil {
			return fmt.Errorf("%w: placement %d (%s): %w", ErrInvalidJob, i, p.Label(), err)
		}
	}
	return nil
}

func (p *Placement) validate() error {
	if p.Texture == "" {
		return errors.New("missing texture")
	}
	if _, err := p.Dst.Quad(); err != nil {
		return fmt.Errorf("dst: %w", err)
	}
	if len(p.Src) != 0 {
		if _, err := p.Src.Quad(); err != nil {
			return fmt.Errorf("src: %w", err)
		}
	}
	_, err := p.Config()
	return err
}

// Parse decodes and validates a job. Relative paths resolve against the
// working directory.
func Parse(data []byte) (*Job, error) {
	var j Job
	if err := yaml.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("job: parse: %w", err)
	}
	j.normalize()
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return &j, nil
}

// Load reads and validates the job file at path.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("job: read %s: %w", path, err)
	}
	j, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	j.dir = filepath.Dir(path)
	return j, nil
}

// createFile is replaced in tests.
var createFile = func(name string) (io.WriteCloser, error) { return os.Create(name) }

// Save writes j as YAML to path.
func Save(path string, j *Job) (err error) {
	out := *j
	out.normalize()

	f, err := createFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("job: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("job: close %s: %w", path, cerr)
		}
	}()

	return encode(f, path, &out)
}

func encode(w io.Writer, path string, j *Job) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(j); err != nil {
		return fmt.Errorf("job: encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("job: flush %s: %w", path, err)
	}
	return nil
}

// SetDir sets the base directory for relative paths.
func (j *Job) SetDir(dir string) { j.dir = dir }

// Resolve returns path relative to the job's directory unless absolute.
func (j *Job) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || j.dir == "" {
		return path
	}
	return filepath.Join(j.dir, path)
}

// OutputPath returns the resolved output path.
func (j *Job) OutputPath() string {
	return j.Resolve(j.Output)
}
