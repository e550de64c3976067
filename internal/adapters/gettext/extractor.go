// Package gettext extracts WordPress translation calls from PHP sources and
// writes them as a gettext translation template.
package gettext

import (
	"context"

	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/wpbuild/internal/core/ports"
)

var _ ports.StringExtractor = (*Extractor)(nil)

// Extractor implements ports.StringExtractor.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract scans sources in the given order and renders every message of
// meta.Domain. Calls without a domain argument are included.
func (e *Extractor) Extract(ctx context.Context, sources []domain.SourceFile, meta domain.CatalogMeta) ([]byte, error) {
	cat := newCatalog()
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, msg := range extract(src.Path, src.Content, meta.Domain) {
			cat.add(msg)
		}
	}
	return cat.write(meta), nil
}
