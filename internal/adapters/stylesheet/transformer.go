package stylesheet

import (
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

const mediaType = "text/css"

// Transformer rewrites and minifies compiled stylesheets.
type Transformer struct {
	minifier *minify.M
}

// New creates a Transformer.
func New() *Transformer {
	m := minify.New()
	m.AddFunc(mediaType, css.Minify)
	return &Transformer{minifier: m}
}

// MinifyCSS removes whitespace and comments and shortens values.
// Comments starting with /*! are kept.
func (t *Transformer) MinifyCSS(src []byte) ([]byte, error) {
	out, err := t.minifier.Bytes(mediaType, src)
	if err != nil {
		return nil, domain.Classify(domain.ErrCompile, zerr.Wrap(err, "failed to minify stylesheet"))
	}
	return out, nil
}
