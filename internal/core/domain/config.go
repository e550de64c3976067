package domain

import (
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Config is an immutable snapshot of the project configuration.
// A fresh snapshot is loaded at the start of every stage invocation and is
// owned by that invocation alone.
type Config struct {
	// Root is the absolute project directory every relative path is resolved against.
	Root string
	// File is the absolute path of the configuration file, even when it does not exist.
	File string

	ProjectURL      string
	BrowserAutoOpen bool
	Port            int
	InjectChanges   bool

	StyleSRC         string
	StyleDestination string
	OutputStyle      string
	Precision        int

	JSVendorSRC         []string
	JSVendorDestination string
	JSVendorFile        string

	JSCustomSRC         []string
	JSCustomDestination string
	JSCustomFile        string

	ImgSRC string
	ImgDST string

	WatchStyles   string
	WatchJSVendor string
	WatchJSCustom string
	WatchPHP      string

	TextDomain             string
	TranslationFile        string
	TranslationDestination string
	PackageName            string
	BugReport              string
	LastTranslator         string
	Team                   string

	Browsers []string
	Debounce time.Duration
}

// Abs resolves a configured path against the project root.
func (c Config) Abs(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(c.Root, filepath.FromSlash(p))
}

// Pattern turns a configured glob into a slash separated pattern relative to the
// project root, the form expected by the glob matcher.
func (c Config) Pattern(glob string) string {
	g := filepath.ToSlash(glob)
	if filepath.IsAbs(glob) {
		if rel, err := filepath.Rel(c.Root, glob); err == nil {
			g = filepath.ToSlash(rel)
		}
	}
	g = path.Clean(g)
	return strings.TrimPrefix(g, "/")
}

// VendorOutputs returns the full and minified vendor bundle paths.
func (c Config) VendorOutputs() []string {
	return bundleOutputs(c.Abs(c.JSVendorDestination), c.JSVendorFile)
}

// CustomOutputs returns the full and minified custom bundle paths.
func (c Config) CustomOutputs() []string {
	return bundleOutputs(c.Abs(c.JSCustomDestination), c.JSCustomFile)
}

func bundleOutputs(dir, base string) []string {
	return []string{
		filepath.Join(dir, base+".js"),
		filepath.Join(dir, base+".min.js"),
	}
}

// StyleOutputs returns the full, source map and minified stylesheet paths for
// a compiled root stylesheet named base (without extension).
func (c Config) StyleOutputs(base string, rtl bool) (full, sourceMap, minified string) {
	if rtl {
		base += "-rtl"
	}
	dir := c.Abs(c.StyleDestination)
	full = filepath.Join(dir, base+".css")
	return full, full + ".map", filepath.Join(dir, base+".min.css")
}

// CatalogPath returns the destination of the translation catalog.
func (c Config) CatalogPath() string {
	return filepath.Join(c.Abs(c.TranslationDestination), c.TranslationFile)
}
