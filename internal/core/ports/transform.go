package ports

import (
	"context"

	"go.trai.ch/wpbuild/internal/core/domain"
)

//go:generate mockgen -source=transform.go -destination=mocks/mock_transform.go -package=mocks

// StyleRequest describes a root stylesheet to compile.
type StyleRequest struct {
	// Path is the absolute path of the root stylesheet.
	Path string
	// OutputStyle is the configured output style (expanded, compact, compressed...).
	OutputStyle string
	// Precision is the number of decimal digits kept in numbers.
	Precision int
	// Output is the absolute path the CSS will be written to. Source map
	// paths are relative to its directory.
	Output string
}

// StyleResult is a compiled stylesheet.
type StyleResult struct {
	CSS       []byte
	SourceMap []byte
}

// StyleCompiler turns a root stylesheet and its imports into CSS.
type StyleCompiler interface {
	Compile(ctx context.Context, req StyleRequest) (StyleResult, error)
}

// Prefixer adds vendor prefixes needed by the given browser support list.
// The source map of in, if any, is carried over to the result.
type Prefixer interface {
	Prefix(in StyleResult, browsers []string) (StyleResult, error)
}

// StyleTransformer rewrites compiled CSS.
type StyleTransformer interface {
	// Mirror converts a left-to-right stylesheet to right-to-left.
	Mirror(css []byte) ([]byte, error)
	// MergeMediaQueries merges rules of identical media queries and moves them to the end.
	MergeMediaQueries(css []byte) ([]byte, error)
}

// CSSMinifier minifies CSS.
type CSSMinifier interface {
	MinifyCSS(css []byte) ([]byte, error)
}

// ScriptSource is a single script to transpile.
type ScriptSource struct {
	// Path is the project relative path, used in diagnostics and source maps.
	Path string
	Code []byte
}

// ScriptOptions tunes script transpilation.
type ScriptOptions struct {
	Browsers []string
	// Wrap encloses the unit in an immediately invoked function expression.
	Wrap bool
	// SourceMap requests a source map for the unit.
	SourceMap bool
}

// ScriptUnit is a transpiled script.
type ScriptUnit struct {
	Code []byte
	// Map is the unit's source map, set when ScriptOptions.SourceMap was requested.
	Map []byte
}

// ScriptCompiler transpiles and minifies scripts.
type ScriptCompiler interface {
	Transpile(ctx context.Context, src ScriptSource, opts ScriptOptions) (ScriptUnit, error)
	Minify(ctx context.Context, code []byte, browsers []string) ([]byte, error)
}

// ImageOptimizer re-encodes images.
type ImageOptimizer interface {
	// Optimize returns optimized bytes for the image called name.
	Optimize(ctx context.Context, name string, data []byte) ([]byte, error)
	// Fingerprint identifies the optimizer settings. It is part of every cache key.
	Fingerprint() string
}

// StringExtractor builds a translation template from source files.
type StringExtractor interface {
	Extract(ctx context.Context, sources []domain.SourceFile, meta domain.CatalogMeta) ([]byte, error)
}
