package pipeline

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// scaffoldDirs are created below the project root by onInstall.
var scaffoldDirs = []string{
	"assets/img",
	"assets/fonts",
	"assets/js/custom",
	"assets/js/vendor",
	"assets/scss",
}

const themeInfo = `
/*
* Theme Name: My Timber Starter Theme
* Description: Starter Theme to use with Timber
* Author: Upstatement and YOU!
*/
`

// scaffoldFiles are seeded only when missing.
var scaffoldFiles = []output{
	{path: "assets/scss/wp-info.scss", data: []byte(themeInfo)},
	{path: "assets/scss/style.scss", data: []byte("@import 'wp-info';\n")},
}

func (p *Pipeline) cleanStage(name string, bundles ...bundle) stage {
	return func(_ context.Context, cfg domain.Config) (domain.StageReport, *domain.ReloadEvent, error) {
		var paths []string
		for _, b := range bundles {
			paths = append(paths, b.outputs(cfg)...)
		}
		removed, err := removeAll(cfg.Root, paths)
		return domain.StageReport{Stage: name, Removed: removed}, nil, err
	}
}

func (p *Pipeline) clearCacheStage(_ context.Context, _ domain.Config) (domain.StageReport, *domain.ReloadEvent, error) {
	report := domain.StageReport{Stage: domain.StageClearCache}
	if err := p.cache.Clear(); err != nil {
		return report, nil, err
	}
	p.logger.Info("image cache cleared")
	return report, nil, nil
}

func (p *Pipeline) onInstallStage(_ context.Context, cfg domain.Config) (domain.StageReport, *domain.ReloadEvent, error) {
	report := domain.StageReport{Stage: domain.StageOnInstall}

	for _, dir := range scaffoldDirs {
		if err := os.MkdirAll(cfg.Abs(dir), domain.DirPerm); err != nil {
			return report, nil, domain.Classify(domain.ErrIO,
				zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir))
		}
	}

	for _, f := range scaffoldFiles {
		created, err := createIfMissing(cfg.Abs(f.path), f.data)
		if err != nil {
			return report, nil, domain.Classify(domain.ErrIO,
				zerr.With(zerr.Wrap(err, "failed to seed file"), "path", f.path))
		}
		if created {
			report.Written = append(report.Written, f.path)
		}
	}
	return report, nil, nil
}

// createIfMissing writes data to path unless the file already exists.
func createIfMissing(path string, data []byte) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return false, err
	}
	// #nosec G304 -- the path is a fixed scaffold location below the project root
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, domain.FilePerm)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return false, err
	}
	return true, f.Close()
}
