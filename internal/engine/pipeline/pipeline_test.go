package pipeline_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
	"go.trai.ch/wpbuild/internal/adapters/cas"
	"go.trai.ch/wpbuild/internal/adapters/telemetry"
	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/wpbuild/internal/core/ports"
	"go.trai.ch/wpbuild/internal/core/ports/mocks"
	"go.trai.ch/wpbuild/internal/engine/pipeline"
	"go.trai.ch/wpbuild/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

type harness struct {
	root      string
	cfg       domain.Config
	logger    *mocks.MockLogger
	metrics   *mocks.MockMetrics
	reloader  *mocks.MockReloader
	styles    *mocks.MockStyleCompiler
	prefixer  *mocks.MockPrefixer
	sheets    *mocks.MockStyleTransformer
	minifier  *mocks.MockCSSMinifier
	scripts   *mocks.MockScriptCompiler
	images    *mocks.MockImageOptimizer
	strings   *mocks.MockStringExtractor
	store     *cas.Store
	graph     *domain.Graph
	createdAt time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	root := t.TempDir()

	h := &harness{
		root:      root,
		logger:    mocks.NewMockLogger(ctrl),
		metrics:   mocks.NewMockMetrics(ctrl),
		reloader:  mocks.NewMockReloader(ctrl),
		styles:    mocks.NewMockStyleCompiler(ctrl),
		prefixer:  mocks.NewMockPrefixer(ctrl),
		sheets:    mocks.NewMockStyleTransformer(ctrl),
		minifier:  mocks.NewMockCSSMinifier(ctrl),
		scripts:   mocks.NewMockScriptCompiler(ctrl),
		images:    mocks.NewMockImageOptimizer(ctrl),
		strings:   mocks.NewMockStringExtractor(ctrl),
		store:     cas.NewStore(filepath.Join(root, domain.DefaultCachePath())),
		graph:     domain.NewGraph(),
		createdAt: time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC),
		cfg: domain.Config{
			Root:                   root,
			File:                   filepath.Join(root, domain.ConfigFileName),
			InjectChanges:          true,
			StyleSRC:               "./assets/scss/*.scss",
			StyleDestination:       "./",
			OutputStyle:            "expanded",
			Precision:              10,
			JSVendorDestination:    "./dist/js/vendor/",
			JSVendorFile:           "vendor",
			JSCustomSRC:            []string{"./assets/js/custom/**/*.js"},
			JSCustomDestination:    "./dist/js/custom/",
			JSCustomFile:           "custom",
			ImgSRC:                 "./assets/img/raw/**/*",
			ImgDST:                 "./assets/img/",
			WatchStyles:            "./assets/scss/**/*.scss",
			WatchJSVendor:          "./assets/js/vendor/**/*.js",
			WatchJSCustom:          "./assets/js/custom/**/*.js",
			WatchPHP:               "./**/*.php",
			TextDomain:             "WPGULP",
			TranslationFile:        "WPGULP.pot",
			TranslationDestination: "./languages",
			PackageName:            "WPGULP",
			Browsers:               []string{"last 2 version"},
			Debounce:               200 * time.Millisecond,
		},
	}
	t.Cleanup(func() { _ = h.store.Close() })

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(root, domain.ConfigFileName).DoAndReturn(func(string, string) (domain.Config, error) {
		return h.cfg, nil
	}).AnyTimes()

	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	h.metrics.EXPECT().CacheLookup(gomock.Any()).AnyTimes()

	p := pipeline.New(loader, h.logger, h.metrics, h.reloader, h.store, pipeline.Transforms{
		Styles:      h.styles,
		Prefixer:    h.prefixer,
		Stylesheets: h.sheets,
		CSSMinifier: h.minifier,
		Scripts:     h.scripts,
		Images:      h.images,
		Strings:     h.strings,
	}, pipeline.WithClock(func() time.Time { return h.createdAt }))
	require.NoError(t, p.Register(h.graph, pipeline.Project{Root: root, File: domain.ConfigFileName}))
	return h
}

func (h *harness) write(t *testing.T, rel, content string) {
	t.Helper()
	p := filepath.Join(h.root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
}

func (h *harness) read(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(h.root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func (h *harness) run(t *testing.T, name string) error {
	t.Helper()
	return h.runCtx(t, context.Background(), name)
}

func (h *harness) runCtx(t *testing.T, ctx context.Context, name string) error {
	t.Helper()
	task, ok := h.graph.Get(name)
	require.True(t, ok, "task %s is registered", name)
	require.Equal(t, domain.KindLeaf, task.Kind)
	return task.Action(ctx)
}

func (h *harness) expectStylePassthrough(mirror bool) {
	h.prefixer.EXPECT().Prefix(gomock.Any(), h.cfg.Browsers).DoAndReturn(
		func(in ports.StyleResult, _ []string) (ports.StyleResult, error) { return in, nil })
	if mirror {
		h.sheets.EXPECT().Mirror(gomock.Any()).DoAndReturn(func(css []byte) ([]byte, error) {
			return []byte(strings.ReplaceAll(string(css), "left", "right")), nil
		})
	}
	h.sheets.EXPECT().MergeMediaQueries(gomock.Any()).DoAndReturn(func(css []byte) ([]byte, error) { return css, nil })
	h.minifier.EXPECT().MinifyCSS(gomock.Any()).DoAndReturn(func(css []byte) ([]byte, error) {
		return []byte(strings.Join(strings.Fields(string(css)), "")), nil
	})
}

func TestRegister_Tasks(t *testing.T) {
	h := newHarness(t)

	for _, name := range []string{
		"styles", "stylesRTL", "vendorJS", "customJS", "images", "clearCache", "translate",
		"cleanDistFolder", "cleanDistVendor", "cleanDistCustom", "onInstall", "reload",
		"build", "watch:styles", "watch:vendor", "watch:custom", "watch:images",
	} {
		_, ok := h.graph.Get(name)
		assert.True(t, ok, name)
	}

	build, _ := h.graph.Get(pipeline.TaskBuild)
	assert.Equal(t, domain.KindSeries, build.Kind)
	assert.Equal(t,
		domain.InternAll("styles", "cleanDistFolder", "vendorJS", "customJS", "images"),
		build.Children)

	require.ErrorIs(t, pipeline.New(nil, nil, nil, nil, nil, pipeline.Transforms{}).
		Register(h.graph, pipeline.Project{}), domain.ErrTaskAlreadyExists)
}

func TestStyles_WritesOutputsAndInjects(t *testing.T) {
	h := newHarness(t)
	h.write(t, "assets/scss/style.scss", "@import 'vars';\na { margin-left: 1px; }\n")
	h.write(t, "assets/scss/_vars.scss", "$x: 1px;\n")

	sourceMap := `{"version":3,"sourceRoot":"","sources":["file://` +
		filepath.ToSlash(filepath.Join(h.root, "assets/scss/_vars.scss")) + `","file://` +
		filepath.ToSlash(filepath.Join(h.root, "assets/scss/style.scss")) + `"],"mappings":"AAAA"}`

	h.styles.EXPECT().Compile(gomock.Any(), ports.StyleRequest{
		Path:        filepath.Join(h.root, "assets", "scss", "style.scss"),
		OutputStyle: "expanded",
		Precision:   10,
		Output:      filepath.Join(h.root, "style.css"),
	}).Return(ports.StyleResult{CSS: []byte("a {\n  margin-left: 1px;\n}\n"), SourceMap: []byte(sourceMap)}, nil)
	h.expectStylePassthrough(false)
	h.reloader.EXPECT().Broadcast(domain.Inject("style.css", "style.min.css"))

	require.NoError(t, h.run(t, "styles"))

	assert.Equal(t, "a {\n  margin-left: 1px;\n}\n/*# sourceMappingURL=style.css.map */\n", h.read(t, "style.css"))
	assert.Equal(t, "a{margin-left:1px;}", h.read(t, "style.min.css"))

	var m struct {
		File    string   `json:"file"`
		Sources []string `json:"sources"`
	}
	require.NoError(t, json.Unmarshal([]byte(h.read(t, "style.css.map")), &m))
	assert.Equal(t, "style.css", m.File)
	assert.Equal(t, []string{"assets/scss/_vars.scss", "assets/scss/style.scss"}, m.Sources)

	_, err := os.Stat(filepath.Join(h.root, "_vars.css"))
	assert.ErrorIs(t, err, os.ErrNotExist, "partials are not compiled on their own")
}

func TestStyles_FullReloadWithoutInjection(t *testing.T) {
	h := newHarness(t)
	h.cfg.InjectChanges = false
	h.write(t, "assets/scss/style.scss", "a{}")

	h.styles.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(ports.StyleResult{CSS: []byte("a{}")}, nil)
	h.expectStylePassthrough(false)
	h.reloader.EXPECT().Broadcast(domain.FullReload())

	require.NoError(t, h.run(t, "styles"))
	assert.Equal(t, "a{}", h.read(t, "style.css"))
	_, err := os.Stat(filepath.Join(h.root, "style.css.map"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStyles_CompileFailureKeepsPreviousOutputs(t *testing.T) {
	h := newHarness(t)
	h.write(t, "assets/scss/style.scss", "a {")
	h.write(t, "style.css", "old")
	h.write(t, "style.min.css", "old-min")

	h.styles.EXPECT().Compile(gomock.Any(), gomock.Any()).
		Return(ports.StyleResult{}, domain.Classify(domain.ErrCompile, os.ErrInvalid))

	err := h.run(t, "styles")
	require.ErrorIs(t, err, domain.ErrCompile)
	assert.Equal(t, "old", h.read(t, "style.css"))
	assert.Equal(t, "old-min", h.read(t, "style.min.css"))
}

func TestStyles_NoMatchIsEmptyInput(t *testing.T) {
	h := newHarness(t)

	err := h.run(t, "styles")
	require.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestStages_ZeroMatchesAreSkipped(t *testing.T) {
	for _, stage := range []string{"styles", "vendorJS", "customJS", "images", "translate"} {
		t.Run(stage, func(t *testing.T) {
			h := newHarness(t)
			h.images.EXPECT().Fingerprint().Return("v1").AnyTimes()

			err := h.run(t, stage)
			require.ErrorIs(t, err, domain.ErrEmptyInput)

			ctrl := gomock.NewController(t)
			h.metrics.EXPECT().ObserveStage(stage, gomock.Any(), gomock.Any())
			boundary := scheduler.NewBoundary(h.logger, mocks.NewMockNotifier(ctrl), h.metrics)
			task, _ := h.graph.Get(stage)
			require.NoError(t, boundary.Invoke(context.Background(), task, &telemetry.NoOpSpan{}))

			entries, err := os.ReadDir(h.root)
			require.NoError(t, err)
			for _, e := range entries {
				assert.Equal(t, ".wpbuild", e.Name(), "nothing but the cache directory exists")
			}
		})
	}
}

func TestStylesRTL_MirrorsAndRenames(t *testing.T) {
	h := newHarness(t)
	h.write(t, "assets/scss/style.scss", "a{}")

	h.styles.EXPECT().Compile(gomock.Any(), gomock.Any()).
		Return(ports.StyleResult{CSS: []byte("a { float: left; }\n")}, nil)
	h.expectStylePassthrough(true)
	h.reloader.EXPECT().Broadcast(domain.Inject("style-rtl.css", "style-rtl.min.css"))

	require.NoError(t, h.run(t, "stylesRTL"))
	assert.Equal(t, "a { float: right; }\n", h.read(t, "style-rtl.css"))
	assert.Equal(t, "a{float:right;}", h.read(t, "style-rtl.min.css"))
}

func TestVendorJS_EmptyListIsSkipped(t *testing.T) {
	h := newHarness(t)

	err := h.run(t, "vendorJS")
	require.ErrorIs(t, err, domain.ErrEmptyInput)
	assert.Contains(t, err.Error(), "NO EXISTING VENDORS IN VENDORS ARRAY, NO VENDOR GENERATION")

	_, statErr := os.Stat(filepath.Join(h.root, "dist"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestVendorJS_ConcatenatesInListedOrder(t *testing.T) {
	h := newHarness(t)
	h.cfg.JSVendorSRC = []string{
		"./assets/js/vendor/z.js",
		"./assets/js/vendor/*.js",
		"./assets/js/missing/*.js",
	}
	h.write(t, "assets/js/vendor/a.js", "a")
	h.write(t, "assets/js/vendor/z.js", "z")
	h.write(t, "assets/js/vendor/m.js", "m")

	h.scripts.EXPECT().Transpile(gomock.Any(), gomock.Any(), ports.ScriptOptions{Browsers: h.cfg.Browsers}).
		DoAndReturn(func(_ context.Context, src ports.ScriptSource, _ ports.ScriptOptions) (ports.ScriptUnit, error) {
			return ports.ScriptUnit{Code: append(src.Code, ";\n"...)}, nil
		}).Times(3)
	h.scripts.EXPECT().Minify(gomock.Any(), []byte("z;\na;\nm;\n"), h.cfg.Browsers).Return([]byte("z;a;m;"), nil)

	require.NoError(t, h.run(t, "vendorJS"))
	assert.Equal(t, "z;\na;\nm;\n", h.read(t, "dist/js/vendor/vendor.js"))
	assert.Equal(t, "z;a;m;", h.read(t, "dist/js/vendor/vendor.min.js"))
}

func TestCustomJS_WrapsAndAppendsIndexMap(t *testing.T) {
	h := newHarness(t)
	h.write(t, "assets/js/custom/b.js", "b()")
	h.write(t, "assets/js/custom/a.js", "a()")

	h.scripts.EXPECT().Transpile(gomock.Any(), gomock.Any(), ports.ScriptOptions{
		Browsers: h.cfg.Browsers, Wrap: true, SourceMap: true,
	}).DoAndReturn(func(_ context.Context, src ports.ScriptSource, _ ports.ScriptOptions) (ports.ScriptUnit, error) {
		code := "(() => {\n  " + string(src.Code) + ";\n})();\n"
		return ports.ScriptUnit{Code: []byte(code), Map: []byte(`{"version":3,"sources":["` + src.Path + `"],"mappings":""}`)}, nil
	}).Times(2)
	h.scripts.EXPECT().Minify(gomock.Any(), gomock.Any(), h.cfg.Browsers).Return([]byte("a();b();"), nil)

	require.NoError(t, h.run(t, "customJS"))

	full := h.read(t, "dist/js/custom/custom.js")
	code, inline, found := strings.Cut(full, "//# sourceMappingURL=data:application/json;charset=utf8;base64,")
	require.True(t, found)
	assert.Equal(t, "(() => {\n  a();\n})();\n(() => {\n  b();\n})();\n", code)

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(inline))
	require.NoError(t, err)
	var index struct {
		Version  int `json:"version"`
		Sections []struct {
			Offset struct {
				Line int `json:"line"`
			} `json:"offset"`
			Map struct {
				Sources []string `json:"sources"`
			} `json:"map"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(raw, &index))
	assert.Equal(t, 3, index.Version)
	require.Len(t, index.Sections, 2)
	assert.Equal(t, 0, index.Sections[0].Offset.Line)
	assert.Equal(t, []string{"assets/js/custom/a.js"}, index.Sections[0].Map.Sources)
	assert.Equal(t, 3, index.Sections[1].Offset.Line)
	assert.Equal(t, []string{"assets/js/custom/b.js"}, index.Sections[1].Map.Sources)

	assert.Equal(t, "a();b();", h.read(t, "dist/js/custom/custom.min.js"))
}

func TestImages_SecondRunIsServedFromCache(t *testing.T) {
	h := newHarness(t)
	h.write(t, "assets/img/raw/logo.png", "png-original-bytes")
	h.write(t, "assets/img/raw/icons/menu.svg", "<svg>   </svg>")

	h.images.EXPECT().Fingerprint().Return("v1").AnyTimes()
	h.images.EXPECT().Optimize(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte) ([]byte, error) {
			return []byte(strings.ReplaceAll(string(data), " ", "")[:5]), nil
		}).Times(2)

	require.NoError(t, h.run(t, "images"))
	first := h.read(t, "assets/img/logo.png")
	assert.Equal(t, "png-o", first)
	assert.Equal(t, "<svg>", h.read(t, "assets/img/icons/menu.svg"))

	require.NoError(t, h.run(t, "images"))
	assert.Equal(t, first, h.read(t, "assets/img/logo.png"))

	n, err := h.store.Len()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Clearing the cache makes every image a miss again.
	require.NoError(t, h.run(t, "clearCache"))
	h.images.EXPECT().Optimize(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte) ([]byte, error) { return data[:5], nil }).
		Times(2)
	require.NoError(t, h.run(t, "images"))
}

func TestImages_CorruptCacheEntryIsAMiss(t *testing.T) {
	h := newHarness(t)
	h.write(t, "assets/img/raw/logo.png", "png-original-bytes")

	h.images.EXPECT().Fingerprint().Return("v1").AnyTimes()
	h.images.EXPECT().Optimize(gomock.Any(), "assets/img/raw/logo.png", gomock.Any()).
		Return([]byte("png-o"), nil).Times(2)
	h.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "image cache read failed")
	})

	require.NoError(t, h.run(t, "images"))

	key := cas.Signature("assets/img/raw/logo.png", []byte("png-original-bytes"), "v1")
	require.NoError(t, h.store.Close())
	db, err := bbolt.Open(filepath.Join(h.root, domain.DefaultCachePath()), 0o600, nil)
	require.NoError(t, err)
	require.NoError(t, db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte("images")).Put([]byte(key), []byte("{not json"))
	}))
	require.NoError(t, db.Close())

	require.NoError(t, h.run(t, "images"))
	assert.Equal(t, "png-o", h.read(t, "assets/img/logo.png"))

	entry, err := h.store.Get(key)
	require.NoError(t, err, "the miss rewrites the entry")
	require.NotNil(t, entry)
	assert.Equal(t, []byte("png-o"), entry.Artifact)
}

func TestImages_KeepsOriginalWhenNotSmaller(t *testing.T) {
	h := newHarness(t)
	h.write(t, "assets/img/raw/photo.jpg", "tiny")

	h.images.EXPECT().Fingerprint().Return("v1").AnyTimes()
	h.images.EXPECT().Optimize(gomock.Any(), "assets/img/raw/photo.jpg", []byte("tiny")).
		Return([]byte("much larger"), nil)

	require.NoError(t, h.run(t, "images"))
	assert.Equal(t, "tiny", h.read(t, "assets/img/photo.jpg"))
}

func TestImages_OptimizerFailure(t *testing.T) {
	h := newHarness(t)
	h.write(t, "assets/img/raw/broken.png", "not a png")

	h.images.EXPECT().Fingerprint().Return("v1").AnyTimes()
	h.images.EXPECT().Optimize(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.Classify(domain.ErrCompile, os.ErrInvalid))

	require.ErrorIs(t, h.run(t, "images"), domain.ErrCompile)
	_, err := os.Stat(filepath.Join(h.root, "assets/img/broken.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTranslate_ExtractsSortedSources(t *testing.T) {
	h := newHarness(t)
	h.write(t, "header.php", "<?php __('Header', 'WPGULP');")
	h.write(t, "footer.php", "<?php __('Footer', 'WPGULP');")
	h.write(t, "inc/setup.php", "<?php _e('Setup', 'WPGULP');")

	h.strings.EXPECT().Extract(gomock.Any(), gomock.Any(), domain.CatalogMeta{
		Domain:    "WPGULP",
		Package:   "WPGULP",
		CreatedAt: h.createdAt,
	}).DoAndReturn(func(_ context.Context, sources []domain.SourceFile, _ domain.CatalogMeta) ([]byte, error) {
		paths := make([]string, len(sources))
		for i, s := range sources {
			paths[i] = s.Path
		}
		assert.Equal(t, []string{"footer.php", "header.php", "inc/setup.php"}, paths)
		return []byte("msgid \"\"\n"), nil
	})

	require.NoError(t, h.run(t, "translate"))
	assert.Equal(t, "msgid \"\"\n", h.read(t, "languages/WPGULP.pot"))
}

func TestClean_RemovesBundles(t *testing.T) {
	h := newHarness(t)
	h.write(t, "dist/js/vendor/vendor.js", "v")
	h.write(t, "dist/js/custom/custom.min.js", "c")

	require.NoError(t, h.run(t, "cleanDistVendor"))
	_, err := os.Stat(filepath.Join(h.root, "dist/js/vendor/vendor.js"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, "c", h.read(t, "dist/js/custom/custom.min.js"))

	require.NoError(t, h.run(t, "cleanDistFolder"))
	_, err = os.Stat(filepath.Join(h.root, "dist/js/custom/custom.min.js"))
	require.ErrorIs(t, err, os.ErrNotExist)

	// Nothing left to remove is still a success.
	require.NoError(t, h.run(t, "cleanDistCustom"))
}

func TestClean_ReportsToTaskOutput(t *testing.T) {
	h := newHarness(t)
	h.write(t, "dist/js/vendor/vendor.js", "v")

	var out strings.Builder
	ctx := domain.WithTaskOutput(context.Background(), &out)
	require.NoError(t, h.runCtx(t, ctx, "cleanDistVendor"))

	assert.Equal(t,
		"removed dist/js/vendor/vendor.js\ncleanDistVendor: 0 file(s) written, 1 removed\n",
		out.String())
}

func TestOnInstall_IsIdempotent(t *testing.T) {
	h := newHarness(t)
	h.write(t, "assets/scss/style.scss", "@import 'custom';\n")

	require.NoError(t, h.run(t, "onInstall"))
	require.NoError(t, h.run(t, "onInstall"))

	for _, dir := range []string{"assets/img", "assets/fonts", "assets/js/custom", "assets/js/vendor", "assets/scss"} {
		info, err := os.Stat(filepath.Join(h.root, dir))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
	assert.Equal(t, "@import 'custom';\n", h.read(t, "assets/scss/style.scss"))
	assert.Contains(t, h.read(t, "assets/scss/wp-info.scss"), "Theme Name:")
}

func TestReload_BroadcastsFullReload(t *testing.T) {
	h := newHarness(t)
	h.reloader.EXPECT().Broadcast(domain.FullReload())

	require.NoError(t, h.run(t, "reload"))
}

func TestBindings(t *testing.T) {
	h := newHarness(t)

	bindings := pipeline.Bindings(h.cfg)
	byName := make(map[string]domain.WatchBinding, len(bindings))
	for _, b := range bindings {
		byName[b.Name] = b
		assert.Equal(t, 200*time.Millisecond, b.Debounce)
	}

	assert.Equal(t, []string{"**/*.php"}, byName["php"].Patterns)
	assert.Equal(t, "reload", byName["php"].Task)
	assert.Equal(t, []string{"assets/scss/**/*.scss"}, byName["styles"].Patterns)
	assert.Equal(t, pipeline.TaskWatchStyles, byName["styles"].Task)
	assert.Equal(t, []string{"assets/js/vendor/**/*.js", "wpbuild.yaml"}, byName["vendor"].Patterns)
	assert.Equal(t, pipeline.TaskWatchVendor, byName["vendor"].Task)
	assert.Equal(t, []string{"assets/js/custom/**/*.js", "wpbuild.yaml"}, byName["custom"].Patterns)
	assert.Equal(t, pipeline.TaskWatchImages, byName["images"].Task)
}
