package pipeline

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"

	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/wpbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// bundle describes one of the two script bundles.
type bundle struct {
	stage   string
	sources func(domain.Config) []string
	outputs func(domain.Config) []string
	// wrap encloses every unit in an immediately invoked function expression.
	wrap bool
	// inlineMap appends an inline source map to the full bundle.
	inlineMap bool
	// skip is logged when the source list is empty or matches nothing.
	skip string
}

var (
	vendorBundle = bundle{
		stage:   domain.StageVendorJS,
		sources: func(c domain.Config) []string { return c.JSVendorSRC },
		outputs: domain.Config.VendorOutputs,
		skip:    "NO EXISTING VENDORS IN VENDORS ARRAY, NO VENDOR GENERATION",
	}
	customBundle = bundle{
		stage:     domain.StageCustomJS,
		sources:   func(c domain.Config) []string { return c.JSCustomSRC },
		outputs:   domain.Config.CustomOutputs,
		wrap:      true,
		inlineMap: true,
		skip:      "NO EXISTING CUSTOM IN CUSTOM ARRAY, NO CUSTOM GENERATION",
	}
)

func (p *Pipeline) scriptsStage(b bundle) stage {
	return func(ctx context.Context, cfg domain.Config) (domain.StageReport, *domain.ReloadEvent, error) {
		report := domain.StageReport{Stage: b.stage}

		paths, err := resolveList(cfg, b.sources(cfg))
		if err != nil {
			return report, nil, zerr.With(err, "stage", b.stage)
		}
		if len(paths) == 0 {
			return report, nil, zerr.With(zerr.Wrap(domain.ErrEmptyInput, b.skip), "stage", b.stage)
		}

		full, err := p.concat(ctx, cfg, b, paths)
		if err != nil {
			return report, nil, zerr.With(err, "stage", b.stage)
		}

		minified, err := p.tf.Scripts.Minify(ctx, full.code, cfg.Browsers)
		if err != nil {
			return report, nil, zerr.With(err, "stage", b.stage)
		}

		code := full.code
		if b.inlineMap {
			code = appendInlineMap(code, full.sourceMap)
		}

		outs := b.outputs(cfg)
		report.Written, err = writeAll(cfg.Root, []output{
			{path: outs[0], data: domain.ToHostLineEndings(code)},
			{path: outs[1], data: domain.ToHostLineEndings(minified)},
		})
		return report, nil, err
	}
}

// concatenated is a bundle before minification.
type concatenated struct {
	code      []byte
	sourceMap []byte
}

// concat transpiles every source and joins the units in order.
// With an inline map requested, the unit maps are combined into an index
// map whose sections start at the first line of each unit.
func (p *Pipeline) concat(ctx context.Context, cfg domain.Config, b bundle, paths []string) (concatenated, error) {
	var buf bytes.Buffer
	var sections []mapSection
	line := 0

	for i, rel := range paths {
		src, err := readSource(cfg, rel)
		if err != nil {
			return concatenated{}, err
		}

		unit, err := p.tf.Scripts.Transpile(ctx, ports.ScriptSource{Path: rel, Code: src}, ports.ScriptOptions{
			Browsers:  cfg.Browsers,
			Wrap:      b.wrap,
			SourceMap: b.inlineMap,
		})
		if err != nil {
			return concatenated{}, err
		}

		if i > 0 {
			buf.WriteByte('\n')
			line++
		}
		code := trimTrailingNewlines(unit.Code)
		if b.inlineMap && len(unit.Map) > 0 {
			sections = append(sections, mapSection{Offset: mapOffset{Line: line}, Map: unit.Map})
		}
		buf.Write(code)
		line += bytes.Count(code, []byte{'\n'})
	}
	buf.WriteByte('\n')

	out := concatenated{code: buf.Bytes()}
	if len(sections) > 0 {
		m, err := json.Marshal(indexMap{Version: 3, Sections: sections})
		if err != nil {
			return concatenated{}, zerr.Wrap(err, "failed to encode source map")
		}
		out.sourceMap = m
	}
	return out, nil
}

// indexMap is a version 3 source map made of sections.
type indexMap struct {
	Version  int          `json:"version"`
	Sections []mapSection `json:"sections"`
}

type mapSection struct {
	Offset mapOffset       `json:"offset"`
	Map    json.RawMessage `json:"map"`
}

type mapOffset struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func appendInlineMap(code, sourceMap []byte) []byte {
	if len(sourceMap) == 0 {
		return code
	}
	var buf bytes.Buffer
	buf.Grow(len(code) + base64.StdEncoding.EncodedLen(len(sourceMap)) + 64)
	buf.Write(code)
	buf.WriteString("//# sourceMappingURL=data:application/json;charset=utf8;base64,")
	buf.WriteString(base64.StdEncoding.EncodeToString(sourceMap))
	buf.WriteByte('\n')
	return buf.Bytes()
}
