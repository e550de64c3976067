// Package sass compiles Sass stylesheets with the embedded Dart Sass protocol.
package sass

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bep/godartsass/v2"
	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/wpbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// EnvBinary names the variable that overrides the Dart Sass executable.
const EnvBinary = "WPBUILD_SASS_BINARY"

const executeTimeout = 30 * time.Second

var _ ports.StyleCompiler = (*Compiler)(nil)

// Compiler implements ports.StyleCompiler. Sass and SCSS sources go to a
// Dart Sass process started on first use; any other stylesheet is handed to
// the fallback compiler.
type Compiler struct {
	binary   string
	logger   ports.Logger
	fallback ports.StyleCompiler

	mu         sync.Mutex
	transpiler *godartsass.Transpiler
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithBinary sets the Dart Sass executable.
func WithBinary(path string) Option {
	return func(c *Compiler) { c.binary = path }
}

// NewCompiler creates a Compiler. Plain CSS sources are compiled by fallback.
func NewCompiler(logger ports.Logger, fallback ports.StyleCompiler, opts ...Option) *Compiler {
	c := &Compiler{
		binary:   os.Getenv(EnvBinary),
		logger:   logger,
		fallback: fallback,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile compiles req.Path and its imports.
func (c *Compiler) Compile(ctx context.Context, req ports.StyleRequest) (ports.StyleResult, error) {
	syntax, ok := sourceSyntax(req.Path)
	if !ok {
		return c.fallback.Compile(ctx, req)
	}
	if err := ctx.Err(); err != nil {
		return ports.StyleResult{}, err
	}

	// #nosec G304 -- the path comes from the project configuration
	src, err := os.ReadFile(req.Path)
	if err != nil {
		return ports.StyleResult{}, domain.Classify(domain.ErrIO,
			zerr.With(zerr.Wrap(err, "failed to read stylesheet"), "path", req.Path))
	}

	args := godartsass.Args{
		Source:                  string(src),
		URL:                     fileURL(req.Path),
		SourceSyntax:            syntax,
		OutputStyle:             godartsass.ParseOutputStyle(req.OutputStyle),
		EnableSourceMap:         true,
		SourceMapIncludeSources: true,
		IncludePaths:            []string{filepath.Dir(req.Path)},
	}

	res, err := c.execute(args)
	if err != nil {
		return ports.StyleResult{}, err
	}
	return ports.StyleResult{CSS: []byte(res.CSS), SourceMap: []byte(res.SourceMap)}, nil
}

func (c *Compiler) execute(args godartsass.Args) (godartsass.Result, error) {
	for attempt := 0; ; attempt++ {
		t, err := c.start()
		if err != nil {
			return godartsass.Result{}, err
		}

		res, err := t.Execute(args)
		if err == nil {
			return res, nil
		}

		if errors.Is(err, godartsass.ErrShutdown) && attempt == 0 {
			c.reset(t)
			continue
		}

		var sassErr godartsass.SassError
		if errors.As(err, &sassErr) {
			e := zerr.With(zerr.New(sassErr.Message), "path", strings.TrimPrefix(sassErr.Span.Url, "file://"))
			if sassErr.Span.Context != "" {
				e = zerr.With(e, "context", sassErr.Span.Context)
			}
			return godartsass.Result{}, domain.Classify(domain.ErrCompile, e)
		}
		return godartsass.Result{}, domain.Classify(domain.ErrCompile, zerr.Wrap(err, "sass compilation failed"))
	}
}

func (c *Compiler) start() (*godartsass.Transpiler, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.transpiler != nil && !c.transpiler.IsShutDown() {
		return c.transpiler, nil
	}

	t, err := godartsass.Start(godartsass.Options{
		DartSassEmbeddedFilename: c.binary,
		Timeout:                  executeTimeout,
		LogEventHandler:          c.logEvent,
	})
	if err != nil {
		e := zerr.Wrap(err, "failed to start Dart Sass, install it or set "+EnvBinary)
		return nil, domain.Classify(domain.ErrConfig, e)
	}
	c.transpiler = t
	return t, nil
}

func (c *Compiler) reset(t *godartsass.Transpiler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.transpiler == t {
		c.transpiler = nil
	}
}

func (c *Compiler) logEvent(ev godartsass.LogEvent) {
	if c.logger == nil || ev.Type == godartsass.LogEventTypeDeprecated {
		return
	}
	c.logger.Warn("sass: " + ev.Message)
}

// Close stops the Dart Sass process if it was started.
func (c *Compiler) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.transpiler == nil {
		return nil
	}
	err := c.transpiler.Close()
	c.transpiler = nil
	if err != nil && !errors.Is(err, godartsass.ErrShutdown) {
		return zerr.Wrap(err, "failed to stop Dart Sass")
	}
	return nil
}

func sourceSyntax(path string) (godartsass.SourceSyntax, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".scss":
		return godartsass.SourceSyntaxSCSS, true
	case ".sass":
		return godartsass.SourceSyntaxSASS, true
	default:
		return "", false
	}
}

func fileURL(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}
	return u.String()
}
