package job

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/quadwarp"
	"github.com/gogpu/quadwarp/internal/parallel"
)

// Loader reads a texture by resolved path. It is called concurrently for
// distinct paths.
type Loader func(path string) (image.Image, error)

// Progress is called after each placement with the number finished so far.
type Progress func(done, total int)

// Run draws every placement of j onto c in order.
//
// All distinct textures are loaded first, in parallel, so a missing file
// fails the job before anything is drawn. Drawing itself is sequential:
// canvases are not safe for concurrent use. The first failing placement
// stops the run.
func Run(j *Job, c quadwarp.Canvas, load Loader, progress Progress) error {
	textures, err := j.loadTextures(load)
	if err != nil {
		return err
	}

	total := len(j.Placements)
	for i := range j.Placements {
		p := &j.Placements[i]
		if err := drawPlacement(c, textures[j.Resolve(p.Texture)], p); err != nil {
			return fmt.Errorf("job: placement %d (%s): %w", i, p.Label(), err)
		}
		if progress != nil {
			progress(i+1, total)
		}
	}
	return nil
}

// loadTextures loads each distinct texture once. A failure is reported
// against the first placement that uses the texture.
func (j *Job) loadTextures(load Loader) (map[string]image.Image, error) {
	var paths []string
	first := make(map[string]int)
	for i := range j.Placements {
		path := j.Resolve(j.Placements[i].Texture)
		if _, ok := first[path]; !ok {
			first[path] = i
			paths = append(paths, path)
		}
	}

	images := make([]image.Image, len(paths))
	err := parallel.NewPool(0).ForEach(len(paths), func(k int) error {
		img, err := load(paths[k])
		if err != nil {
			i := first[paths[k]]
			return fmt.Errorf("job: placement %d (%s): %w", i, j.Placements[i].Label(), err)
		}
		images[k] = img
		return nil
	})
	if err != nil {
		return nil, err
	}

	textures := make(map[string]image.Image, len(paths))
	for k, path := range paths {
		textures[path] = images[k]
	}
	return textures, nil
}

func drawPlacement(c quadwarp.Canvas, tex image.Image, p *Placement) error {
	cfg, err := p.Config()
	if err != nil {
		return err
	}
	dst, err := p.Dst.Quad()
	if err != nil {
		return err
	}
	src := quadwarp.RectQuad(float64(tex.Bounds().Dx()), float64(tex.Bounds().Dy()))
	if len(p.Src) != 0 {
		if src, err = p.Src.Quad(); err != nil {
			return err
		}
	}

	quadwarp.Logger().Debug("job: placement",
		slog.String("texture", p.Texture),
		slog.String("method", cfg.Method.String()),
		slog.Int("tiles", cfg.Tiles))

	return quadwarp.DrawArbitraryQuadImage(c, tex, src, dst, quadwarp.WithConfig(cfg))
}
