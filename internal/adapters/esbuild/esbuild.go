// Package esbuild adapts the esbuild API for stylesheet bundling, vendor
// prefixing and script transpilation.
package esbuild

import (
	"context"
	"encoding/base64"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/wpbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Prefixer       = (*Engine)(nil)
	_ ports.ScriptCompiler = (*Engine)(nil)
	_ ports.StyleCompiler  = (*Engine)(nil)
)

// Engine runs esbuild in process. It is stateless and safe for concurrent use.
type Engine struct{}

// New creates an Engine.
func New() *Engine {
	return &Engine{}
}

// Compile bundles a plain CSS root stylesheet, inlining its @import rules.
func (e *Engine) Compile(ctx context.Context, req ports.StyleRequest) (ports.StyleResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.StyleResult{}, err
	}

	opts := api.BuildOptions{
		EntryPoints:   []string{req.Path},
		AbsWorkingDir: filepath.Dir(req.Path),
		Bundle:        true,
		Write:         false,
		Outfile:       req.Output,
		Sourcemap:     api.SourceMapExternal,
		LogLevel:      api.LogLevelSilent,
	}
	if req.OutputStyle == "compressed" {
		opts.MinifyWhitespace = true
		opts.MinifySyntax = true
	}

	res := api.Build(opts)
	if len(res.Errors) > 0 {
		return ports.StyleResult{}, compileError(res.Errors, req.Path)
	}

	var out ports.StyleResult
	for _, f := range res.OutputFiles {
		switch {
		case strings.HasSuffix(f.Path, ".map"):
			out.SourceMap = f.Contents
		case strings.HasSuffix(f.Path, ".css"):
			out.CSS = f.Contents
		}
	}
	return out, nil
}

// Prefix adds the vendor prefixes and lowers the syntax required by browsers.
// An input source map is chained through so the result still maps to the
// original sources.
func (e *Engine) Prefix(in ports.StyleResult, browsers []string) (ports.StyleResult, error) {
	source := string(in.CSS)
	sourcemap := api.SourceMapNone
	if len(in.SourceMap) > 0 {
		source += "\n/*# sourceMappingURL=data:application/json;base64," +
			base64.StdEncoding.EncodeToString(in.SourceMap) + " */\n"
		sourcemap = api.SourceMapExternal
	}

	res := api.Transform(source, api.TransformOptions{
		Loader:    api.LoaderCSS,
		Engines:   Targets(browsers, true),
		Sourcemap: sourcemap,
		LogLevel:  api.LogLevelSilent,
	})
	if len(res.Errors) > 0 {
		return ports.StyleResult{}, compileError(res.Errors, "")
	}
	return ports.StyleResult{CSS: res.Code, SourceMap: res.Map}, nil
}

// Transpile lowers a script to the syntax supported by the browser list.
func (e *Engine) Transpile(ctx context.Context, src ports.ScriptSource, opts ports.ScriptOptions) (ports.ScriptUnit, error) {
	if err := ctx.Err(); err != nil {
		return ports.ScriptUnit{}, err
	}

	topts := api.TransformOptions{
		Loader:     api.LoaderJS,
		Engines:    Targets(opts.Browsers, false),
		Sourcefile: filepath.ToSlash(src.Path),
		LogLevel:   api.LogLevelSilent,
	}
	if opts.Wrap {
		topts.Format = api.FormatIIFE
	}
	if opts.SourceMap {
		topts.Sourcemap = api.SourceMapExternal
		topts.SourcesContent = api.SourcesContentInclude
	}

	res := api.Transform(string(src.Code), topts)
	if len(res.Errors) > 0 {
		return ports.ScriptUnit{}, compileError(res.Errors, src.Path)
	}
	return ports.ScriptUnit{Code: res.Code, Map: res.Map}, nil
}

// Minify compresses a script bundle.
func (e *Engine) Minify(ctx context.Context, code []byte, browsers []string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := api.Transform(string(code), api.TransformOptions{
		Loader:            api.LoaderJS,
		Engines:           Targets(browsers, false),
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		LogLevel:          api.LogLevelSilent,
	})
	if len(res.Errors) > 0 {
		return nil, compileError(res.Errors, "")
	}
	return res.Code, nil
}

// compileError turns esbuild diagnostics into an ErrCompile error.
func compileError(msgs []api.Message, path string) error {
	formatted := api.FormatMessages(msgs, api.FormatMessagesOptions{Kind: api.ErrorMessage})
	err := zerr.New(strings.TrimSpace(strings.Join(formatted, "")))
	if path != "" {
		err = zerr.With(err, "path", path)
	}
	if loc := msgs[0].Location; loc != nil {
		err = zerr.With(err, "line", loc.Line)
	}
	return domain.Classify(domain.ErrCompile, err)
}
