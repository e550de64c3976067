package pipeline

import (
	"context"
	"path/filepath"
	"runtime"

	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// image is one optimized image waiting to be written.
type image struct {
	rel      string
	key      string
	artifact []byte
	hit      bool
}

func (p *Pipeline) imagesStage(ctx context.Context, cfg domain.Config) (domain.StageReport, *domain.ReloadEvent, error) {
	report := domain.StageReport{Stage: domain.StageImages}

	files, err := resolve(cfg, cfg.ImgSRC)
	if err != nil {
		return report, nil, zerr.With(err, "stage", domain.StageImages)
	}
	if len(files) == 0 {
		return report, nil, zerr.With(zerr.Wrap(domain.ErrEmptyInput, "no image matches "+cfg.ImgSRC), "stage", domain.StageImages)
	}

	images := make([]image, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, rel := range files {
		g.Go(func() error {
			img, err := p.optimizeImage(gctx, cfg, rel)
			if err != nil {
				return err
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, nil, zerr.With(err, "stage", domain.StageImages)
	}

	base := globBase(cfg, cfg.ImgSRC)
	dst := cfg.Abs(cfg.ImgDST)
	outputs := make([]output, len(images))
	for i, img := range images {
		outputs[i] = output{
			path: filepath.Join(dst, filepath.FromSlash(relativeTo(base, img.rel))),
			data: img.artifact,
		}
		if img.hit {
			report.CacheHits++
		} else {
			report.CacheMisses++
		}
	}

	report.Written, err = writeAll(cfg.Root, outputs)
	if err != nil {
		return report, nil, err
	}

	for _, img := range images {
		if img.hit {
			continue
		}
		entry := domain.CacheEntry{Key: img.key, Source: img.rel, Artifact: img.artifact}
		if err := p.cache.Put(entry); err != nil {
			p.logger.Warn("image cache write failed: " + err.Error())
		}
	}
	return report, nil, nil
}

// optimizeImage returns the cached artifact of rel, or optimizes it.
// A cache read failure counts as a miss. Concurrent misses on one key share
// a single optimizer call.
func (p *Pipeline) optimizeImage(ctx context.Context, cfg domain.Config, rel string) (image, error) {
	data, err := readSource(cfg, rel)
	if err != nil {
		return image{}, err
	}
	img := image{rel: rel, key: p.cache.Key(rel, data, p.tf.Images.Fingerprint())}

	entry, err := p.cache.Get(img.key)
	if err != nil {
		p.logger.Warn("image cache read failed, optimizing " + rel + ": " + err.Error())
	}
	if err == nil && entry != nil {
		p.metrics.CacheLookup(true)
		img.hit = true
		img.artifact = entry.Artifact
		return img, nil
	}
	p.metrics.CacheLookup(false)

	v, err, _ := p.flight.Do(img.key, func() (any, error) {
		out, err := p.tf.Images.Optimize(ctx, rel, data)
		if err != nil {
			return nil, err
		}
		if len(out) >= len(data) {
			return data, nil
		}
		return out, nil
	})
	if err != nil {
		return image{}, err
	}
	artifact, ok := v.([]byte)
	if !ok {
		return image{}, zerr.With(zerr.New("unexpected optimizer result"), "path", rel)
	}
	img.artifact = artifact
	return img, nil
}
