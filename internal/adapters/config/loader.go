// Package config provides the configuration loader for wpbuild.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/wpbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the file.
const (
	EnvProjectURL      = "WPBUILD_PROJECT_URL"
	EnvPort            = "WPBUILD_PORT"
	EnvBrowserAutoOpen = "WPBUILD_BROWSER_AUTO_OPEN"
	EnvInjectChanges   = "WPBUILD_INJECT_CHANGES"
)

// legacyOutputStyles are the Sass output styles that Dart Sass dropped.
var legacyOutputStyles = map[string]string{
	"compact": "expanded",
	"nested":  "expanded",
}

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger

	mu     sync.Mutex
	warned map[string]bool
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, warned: make(map[string]bool)}
}

// Load reads file relative to root, applies defaults, the .env file next to
// it and WPBUILD_* environment overrides, then validates the result.
func (l *Loader) Load(root, file string) (domain.Config, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return domain.Config{}, domain.Classify(domain.ErrConfig, zerr.Wrap(err, "failed to resolve project root"))
	}
	if file == "" {
		file = domain.ConfigFileName
	}
	if !filepath.IsAbs(file) {
		file = filepath.Join(root, file)
	}

	wp := Defaults()
	if err := readAndUnmarshalYAML(file, &wp); err != nil {
		return domain.Config{}, domain.Classify(domain.ErrConfig, zerr.With(err, "file", file))
	}

	env, err := readEnvFile(filepath.Join(filepath.Dir(file), domain.EnvFileName))
	if err != nil {
		return domain.Config{}, domain.Classify(domain.ErrConfig, err)
	}
	if err := applyEnv(&wp, env); err != nil {
		return domain.Config{}, domain.Classify(domain.ErrConfig, err)
	}

	cfg, err := l.toDomain(root, file, &wp)
	if err != nil {
		return domain.Config{}, domain.Classify(domain.ErrConfig, zerr.With(err, "file", file))
	}
	return cfg, nil
}

// readAndUnmarshalYAML decodes configPath into target. A missing file leaves target untouched.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is chosen by the user
	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

// lookupFunc resolves an environment variable.
type lookupFunc func(key string) (string, bool)

// readEnvFile returns a lookup preferring the process environment over the
// values of the dotenv file at path.
func readEnvFile(path string) (lookupFunc, error) {
	values, err := godotenv.Read(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(err, "failed to read env file"), "file", path)
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

func applyEnv(wp *Wpfile, lookup lookupFunc) error {
	if v, ok := lookup(EnvProjectURL); ok {
		wp.ProjectURL = v
	}
	if v, ok := lookup(EnvPort); ok {
		port, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return zerr.With(zerr.Wrap(err, "invalid port"), "env", EnvPort)
		}
		wp.Port = port
	}
	for key, dst := range map[string]*bool{
		EnvBrowserAutoOpen: &wp.BrowserAutoOpen,
		EnvInjectChanges:   &wp.InjectChanges,
	} {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return zerr.With(zerr.Wrap(err, "invalid boolean"), "env", key)
		}
		*dst = b
	}
	return nil
}

func (l *Loader) toDomain(root, file string, wp *Wpfile) (domain.Config, error) {
	if err := validate(wp); err != nil {
		return domain.Config{}, err
	}

	style := strings.ToLower(wp.OutputStyle)
	if mapped, ok := legacyOutputStyles[style]; ok {
		l.warnOnce("outputStyle '" + style + "' is not supported by Dart Sass, using '" + mapped + "'")
		style = mapped
	}

	debounce, err := time.ParseDuration(wp.Debounce)
	if err != nil || debounce < 0 {
		return domain.Config{}, zerr.With(zerr.New("invalid debounce duration"), "debounce", wp.Debounce)
	}

	return domain.Config{
		Root:            root,
		File:            file,
		ProjectURL:      strings.TrimSpace(wp.ProjectURL),
		BrowserAutoOpen: wp.BrowserAutoOpen,
		Port:            wp.Port,
		InjectChanges:   wp.InjectChanges,

		StyleSRC:         wp.StyleSRC,
		StyleDestination: wp.StyleDestination,
		OutputStyle:      style,
		Precision:        wp.Precision,

		JSVendorSRC:         nonEmpty(wp.JSVendorSRC),
		JSVendorDestination: wp.JSVendorDestination,
		JSVendorFile:        wp.JSVendorFile,

		JSCustomSRC:         nonEmpty(wp.JSCustomSRC),
		JSCustomDestination: wp.JSCustomDestination,
		JSCustomFile:        wp.JSCustomFile,

		ImgSRC: wp.ImgSRC,
		ImgDST: wp.ImgDST,

		WatchStyles:   wp.WatchStyles,
		WatchJSVendor: wp.WatchJSVendor,
		WatchJSCustom: wp.WatchJSCustom,
		WatchPHP:      wp.WatchPHP,

		TextDomain:             wp.TextDomain,
		TranslationFile:        wp.TranslationFile,
		TranslationDestination: wp.TranslationDestination,
		PackageName:            wp.PackageName,
		BugReport:              wp.BugReport,
		LastTranslator:         wp.LastTranslator,
		Team:                   wp.Team,

		Browsers: nonEmpty(wp.Browsers),
		Debounce: debounce,
	}, nil
}

func (l *Loader) warnOnce(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.warned[msg] || l.Logger == nil {
		return
	}
	l.warned[msg] = true
	l.Logger.Warn(msg)
}

func nonEmpty(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
