// Package pipeline implements the asset build stages and registers them as
// tasks of the build graph.
//
// Every stage loads a fresh configuration snapshot, computes all of its
// outputs in memory and only then writes them, so a failing stage leaves the
// previous artifacts untouched.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/wpbuild/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// Transforms groups the adapters the stages delegate to.
type Transforms struct {
	Styles      ports.StyleCompiler
	Prefixer    ports.Prefixer
	Stylesheets ports.StyleTransformer
	CSSMinifier ports.CSSMinifier
	Scripts     ports.ScriptCompiler
	Images      ports.ImageOptimizer
	Strings     ports.StringExtractor
}

// Pipeline runs the build stages of one project.
type Pipeline struct {
	loader   ports.ConfigLoader
	logger   ports.Logger
	metrics  ports.Metrics
	reloader ports.Reloader
	cache    ports.CacheStore
	tf       Transforms
	now      func() time.Time

	flight singleflight.Group
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock overrides the clock used for catalog creation dates.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// New creates a Pipeline.
func New(
	loader ports.ConfigLoader,
	logger ports.Logger,
	metrics ports.Metrics,
	reloader ports.Reloader,
	cache ports.CacheStore,
	tf Transforms,
	opts ...Option,
) *Pipeline {
	p := &Pipeline{
		loader:   loader,
		logger:   logger,
		metrics:  metrics,
		reloader: reloader,
		cache:    cache,
		tf:       tf,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Project locates the project a graph builds.
type Project struct {
	Root string
	File string
}

// stage computes and writes the outputs of one leaf task.
// The returned event, if any, is broadcast after a successful run.
type stage func(ctx context.Context, cfg domain.Config) (domain.StageReport, *domain.ReloadEvent, error)

// leaf turns a stage into a task action bound to project.
func (p *Pipeline) leaf(project Project, run stage) domain.Action {
	return func(ctx context.Context) error {
		cfg, err := p.loader.Load(project.Root, project.File)
		if err != nil {
			return domain.Classify(domain.ErrConfig, err)
		}

		report, event, err := run(ctx, cfg)
		if err != nil {
			return err
		}
		if len(report.Written)+len(report.Removed) > 0 {
			p.report(ctx, report)
		}

		if event != nil && ctx.Err() == nil {
			if event.Kind == domain.ReloadInject && !cfg.InjectChanges {
				full := domain.FullReload()
				event = &full
			}
			p.reloader.Broadcast(*event)
		}
		return nil
	}
}

// report lists the files a stage touched on the task output and falls
// back to a one line summary in the log.
func (p *Pipeline) report(ctx context.Context, report domain.StageReport) {
	out := domain.TaskOutput(ctx)
	if out == nil {
		p.logger.Info(report.String())
		return
	}
	for _, f := range report.Written {
		_, _ = fmt.Fprintln(out, "wrote "+f)
	}
	for _, f := range report.Removed {
		_, _ = fmt.Fprintln(out, "removed "+f)
	}
	_, _ = fmt.Fprintln(out, report.String())
}

// Register adds every stage and composite task to g.
func (p *Pipeline) Register(g *domain.Graph, project Project) error {
	tasks := []*domain.Task{
		domain.Leaf(domain.StageStyles, "Compile, prefix and minify stylesheets",
			p.leaf(project, p.stylesStage(false))),
		domain.Leaf(domain.StageStylesRTL, "Build right-to-left stylesheets",
			p.leaf(project, p.stylesStage(true))),
		domain.Leaf(domain.StageVendorJS, "Concatenate and minify vendor scripts",
			p.leaf(project, p.scriptsStage(vendorBundle))),
		domain.Leaf(domain.StageCustomJS, "Transpile, concatenate and minify custom scripts",
			p.leaf(project, p.scriptsStage(customBundle))),
		domain.Leaf(domain.StageImages, "Optimize images (JPEG metadata is stripped, not re-encoded)",
			p.leaf(project, p.imagesStage)),
		domain.Leaf(domain.StageClearCache, "Drop the image cache",
			p.leaf(project, p.clearCacheStage)),
		domain.Leaf(domain.StageTranslate, "Generate the translation template",
			p.leaf(project, p.translateStage)),
		domain.Leaf(domain.StageCleanDist, "Remove vendor and custom bundles",
			p.leaf(project, p.cleanStage(domain.StageCleanDist, vendorBundle, customBundle))),
		domain.Leaf(domain.StageCleanDistVendor, "Remove vendor bundles",
			p.leaf(project, p.cleanStage(domain.StageCleanDistVendor, vendorBundle))),
		domain.Leaf(domain.StageCleanDistCustom, "Remove custom bundles",
			p.leaf(project, p.cleanStage(domain.StageCleanDistCustom, customBundle))),
		domain.Leaf(domain.StageOnInstall, "Scaffold the assets directory",
			p.leaf(project, p.onInstallStage)),
		domain.Leaf(domain.StageReload, "Reload connected browsers",
			p.leaf(project, reloadStage)),

		domain.Series(TaskBuild, "Initial build",
			domain.StageStyles, domain.StageCleanDist, domain.StageVendorJS, domain.StageCustomJS, domain.StageImages),
		domain.Series(TaskWatchStyles, "Rebuild stylesheets and inject them",
			domain.StageStyles),
		domain.Series(TaskWatchVendor, "Rebuild vendor scripts and reload",
			domain.StageCleanDistVendor, domain.StageVendorJS, domain.StageReload),
		domain.Series(TaskWatchCustom, "Rebuild custom scripts and reload",
			domain.StageCleanDistCustom, domain.StageCustomJS, domain.StageReload),
		domain.Series(TaskWatchImages, "Optimize images and reload",
			domain.StageImages, domain.StageReload),
	}

	for _, t := range tasks {
		if err := g.Register(t); err != nil {
			return err
		}
	}
	return g.Validate()
}

func reloadStage(_ context.Context, _ domain.Config) (domain.StageReport, *domain.ReloadEvent, error) {
	event := domain.FullReload()
	return domain.StageReport{Stage: domain.StageReload}, &event, nil
}
