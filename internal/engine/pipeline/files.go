package pipeline

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// resolve expands a configured glob against the project root.
// It returns project relative, slash separated file paths sorted lexically.
// A pattern that matches nothing is not an error.
func resolve(cfg domain.Config, glob string) ([]string, error) {
	pattern := cfg.Pattern(glob)
	if !fs.ValidPath(pattern) {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfig, "glob escapes the project root"), "glob", glob)
	}

	matches, err := doublestar.Glob(os.DirFS(cfg.Root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		if errors.Is(err, doublestar.ErrBadPattern) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfig, "invalid glob"), "glob", glob)
		}
		return nil, domain.Classify(domain.ErrIO, zerr.With(zerr.Wrap(err, "failed to expand glob"), "glob", glob))
	}
	slices.Sort(matches)
	return matches, nil
}

// resolveList expands globs in listed order. Matches of one glob are sorted;
// a path matched twice keeps its first position.
func resolveList(cfg domain.Config, globs []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, glob := range globs {
		matches, err := resolve(cfg, glob)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out, nil
}

// globBase returns the static directory prefix of a configured glob.
func globBase(cfg domain.Config, glob string) string {
	base, _ := doublestar.SplitPattern(cfg.Pattern(glob))
	return base
}

// relativeTo returns the slash separated path of rel below base.
func relativeTo(base, rel string) string {
	if base == "." || base == "" {
		return rel
	}
	if r, err := filepath.Rel(filepath.FromSlash(base), filepath.FromSlash(rel)); err == nil {
		return filepath.ToSlash(r)
	}
	return path.Base(rel)
}

func readSource(cfg domain.Config, rel string) ([]byte, error) {
	p := cfg.Abs(rel)
	// #nosec G304 -- the path was matched below the project root
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, domain.Classify(domain.ErrIO, zerr.With(zerr.Wrap(err, "failed to read source"), "path", rel))
	}
	return data, nil
}

// output is a fully computed artifact waiting to be written.
type output struct {
	path string
	data []byte
}

// writeAll writes every output, creating parent directories as needed.
// It returns the written paths relative to root.
func writeAll(root string, outputs []output) ([]string, error) {
	written := make([]string, 0, len(outputs))
	for _, o := range outputs {
		if err := os.MkdirAll(filepath.Dir(o.path), domain.DirPerm); err != nil {
			return written, domain.Classify(domain.ErrIO,
				zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", o.path))
		}
		if err := os.WriteFile(o.path, o.data, domain.FilePerm); err != nil {
			return written, domain.Classify(domain.ErrIO,
				zerr.With(zerr.Wrap(err, "failed to write output"), "path", o.path))
		}
		written = append(written, display(root, o.path))
	}
	return written, nil
}

// removeAll deletes paths. Missing files are not errors.
func removeAll(root string, paths []string) ([]string, error) {
	var removed []string
	for _, p := range paths {
		err := os.Remove(p)
		switch {
		case err == nil:
			removed = append(removed, display(root, p))
		case errors.Is(err, fs.ErrNotExist):
		default:
			return removed, domain.Classify(domain.ErrIO,
				zerr.With(zerr.Wrap(err, "failed to remove output"), "path", p))
		}
	}
	return removed, nil
}

func display(root, p string) string {
	if rel, err := filepath.Rel(root, p); err == nil {
		return filepath.ToSlash(rel)
	}
	return p
}
