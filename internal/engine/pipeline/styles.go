package pipeline

import (
	"context"
	"encoding/json"
	"net/url"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/wpbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

func (p *Pipeline) stylesStage(rtl bool) stage {
	name := domain.StageStyles
	if rtl {
		name = domain.StageStylesRTL
	}
	return func(ctx context.Context, cfg domain.Config) (domain.StageReport, *domain.ReloadEvent, error) {
		report := domain.StageReport{Stage: name}

		roots, err := resolve(cfg, cfg.StyleSRC)
		if err != nil {
			return report, nil, err
		}
		roots = withoutPartials(roots)
		if len(roots) == 0 {
			return report, nil, zerr.With(zerr.Wrap(domain.ErrEmptyInput, "no stylesheet matches "+cfg.StyleSRC), "stage", name)
		}

		var outputs []output
		var injected []string
		for _, root := range roots {
			out, err := p.buildStylesheet(ctx, cfg, root, rtl)
			if err != nil {
				return report, nil, zerr.With(err, "stage", name)
			}
			outputs = append(outputs, out.full, out.minified)
			if out.sourceMap.data != nil {
				outputs = append(outputs, out.sourceMap)
			}
			injected = append(injected, filepath.Base(out.full.path), filepath.Base(out.minified.path))
		}

		report.Written, err = writeAll(cfg.Root, outputs)
		if err != nil {
			return report, nil, err
		}
		event := domain.Inject(injected...)
		return report, &event, nil
	}
}

// sheetOutputs holds the outputs of one root stylesheet.
// sourceMap has no data when the compiler produced none.
type sheetOutputs struct {
	full      output
	sourceMap output
	minified  output
}

func (p *Pipeline) buildStylesheet(ctx context.Context, cfg domain.Config, root string, rtl bool) (sheetOutputs, error) {
	base := strings.TrimSuffix(path.Base(root), path.Ext(root))
	full, mapPath, minPath := cfg.StyleOutputs(base, rtl)

	res, err := p.tf.Styles.Compile(ctx, ports.StyleRequest{
		Path:        cfg.Abs(root),
		OutputStyle: cfg.OutputStyle,
		Precision:   cfg.Precision,
		Output:      full,
	})
	if err != nil {
		return sheetOutputs{}, err
	}

	res, err = p.tf.Prefixer.Prefix(res, cfg.Browsers)
	if err != nil {
		return sheetOutputs{}, err
	}

	css := res.CSS
	if rtl {
		if css, err = p.tf.Stylesheets.Mirror(css); err != nil {
			return sheetOutputs{}, err
		}
	}

	sourceMap, err := relativizeSourceMap(res.SourceMap, filepath.Dir(full), filepath.Base(full))
	if err != nil {
		return sheetOutputs{}, err
	}

	merged, err := p.tf.Stylesheets.MergeMediaQueries(css)
	if err != nil {
		return sheetOutputs{}, err
	}
	minified, err := p.tf.CSSMinifier.MinifyCSS(merged)
	if err != nil {
		return sheetOutputs{}, err
	}

	if sourceMap != nil {
		css = slices.Concat(trimTrailingNewlines(css), []byte("\n/*# sourceMappingURL="+filepath.Base(mapPath)+" */\n"))
	}
	return sheetOutputs{
		full:      output{path: full, data: domain.ToHostLineEndings(css)},
		sourceMap: output{path: mapPath, data: sourceMap},
		minified:  output{path: minPath, data: domain.ToHostLineEndings(minified)},
	}, nil
}

// withoutPartials drops Sass partials, which are only compiled through imports.
func withoutPartials(paths []string) []string {
	out := paths[:0:0]
	for _, p := range paths {
		if !strings.HasPrefix(path.Base(p), "_") {
			out = append(out, p)
		}
	}
	return out
}

func trimTrailingNewlines(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}

// relativizeSourceMap rewrites the sources of a version 3 source map so they
// are relative to dir, the directory the map is written to.
func relativizeSourceMap(raw []byte, dir, file string) ([]byte, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, domain.Classify(domain.ErrCompile, zerr.Wrap(err, "invalid source map"))
	}

	var sources []string
	if s, ok := fields["sources"]; ok {
		if err := json.Unmarshal(s, &sources); err != nil {
			return nil, domain.Classify(domain.ErrCompile, zerr.Wrap(err, "invalid source map sources"))
		}
	}
	for i, src := range sources {
		sources[i] = relativeSource(src, dir)
	}

	var err error
	if fields["sources"], err = json.Marshal(sources); err != nil {
		return nil, zerr.Wrap(err, "failed to encode source map")
	}
	if fields["file"], err = json.Marshal(file); err != nil {
		return nil, zerr.Wrap(err, "failed to encode source map")
	}
	delete(fields, "sourceRoot")

	out, err := json.Marshal(fields)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode source map")
	}
	return out, nil
}

func relativeSource(src, dir string) string {
	p := src
	if u, err := url.Parse(src); err == nil && u.Scheme == "file" {
		p = filepath.FromSlash(u.Path)
	}
	if !filepath.IsAbs(p) {
		return src
	}
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return src
	}
	return filepath.ToSlash(rel)
}
