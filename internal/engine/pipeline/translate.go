package pipeline

import (
	"context"

	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// translateStage writes a fresh translation template for every PHP file
// matched by the watch pattern. Files are read in sorted order so the
// references in the template are stable.
func (p *Pipeline) translateStage(ctx context.Context, cfg domain.Config) (domain.StageReport, *domain.ReloadEvent, error) {
	report := domain.StageReport{Stage: domain.StageTranslate}

	paths, err := resolve(cfg, cfg.WatchPHP)
	if err != nil {
		return report, nil, zerr.With(err, "stage", domain.StageTranslate)
	}
	if len(paths) == 0 {
		return report, nil, zerr.With(zerr.Wrap(domain.ErrEmptyInput, "no PHP file matches "+cfg.WatchPHP), "stage", domain.StageTranslate)
	}

	sources := make([]domain.SourceFile, 0, len(paths))
	for _, rel := range paths {
		content, err := readSource(cfg, rel)
		if err != nil {
			return report, nil, zerr.With(err, "stage", domain.StageTranslate)
		}
		sources = append(sources, domain.SourceFile{Path: rel, Content: content})
	}

	catalog, err := p.tf.Strings.Extract(ctx, sources, domain.CatalogMeta{
		Domain:         cfg.TextDomain,
		Package:        cfg.PackageName,
		BugReport:      cfg.BugReport,
		LastTranslator: cfg.LastTranslator,
		Team:           cfg.Team,
		CreatedAt:      p.now(),
	})
	if err != nil {
		return report, nil, zerr.With(err, "stage", domain.StageTranslate)
	}

	report.Written, err = writeAll(cfg.Root, []output{{path: cfg.CatalogPath(), data: catalog}})
	return report, nil, err
}
