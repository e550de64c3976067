// Package imaging re-encodes raster images and minifies SVG markup.
package imaging

import (
	"bytes"
	"context"
	"image/gif"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/svg"
	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/wpbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

const svgMediaType = "image/svg+xml"

// fingerprint changes whenever the encoder settings below change, so cached
// artifacts of older settings stop matching.
const fingerprint = "png:best;jpeg:strip-app1,app3-13,app15,com;gif:all-frames;svg:minify-v2"

var _ ports.ImageOptimizer = (*Optimizer)(nil)

// Optimizer implements ports.ImageOptimizer.
type Optimizer struct {
	minifier *minify.M
	encoder  *png.Encoder
}

// New creates an Optimizer.
func New() *Optimizer {
	m := minify.New()
	m.Add(svgMediaType, &svg.Minifier{})
	m.AddFunc("text/css", css.Minify)
	return &Optimizer{
		minifier: m,
		encoder:  &png.Encoder{CompressionLevel: png.BestCompression},
	}
}

// Fingerprint identifies the optimizer settings.
func (o *Optimizer) Fingerprint() string {
	return fingerprint
}

// Optimize returns the optimized form of data. The format is chosen by the
// extension of name; unknown formats are returned unchanged. When the
// optimized form is not smaller the input is returned.
func (o *Optimizer) Optimize(ctx context.Context, name string, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		out []byte
		err error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		out, err = o.png(data)
	case ".jpg", ".jpeg":
		out, err = stripJPEG(data)
	case ".gif":
		out, err = reencodeGIF(data)
	case ".svg":
		out, err = o.minifier.Bytes(svgMediaType, data)
	default:
		return data, nil
	}
	if err != nil {
		return nil, domain.Classify(domain.ErrCompile,
			zerr.With(zerr.Wrap(err, "failed to optimize image"), "path", name))
	}

	if len(out) >= len(data) {
		return data, nil
	}
	return out, nil
}

func (o *Optimizer) png(data []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(len(data))
	if err := o.encoder.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// reencodeGIF writes every frame back with its own palette, delay and
// disposal.
func reencodeGIF(data []byte) ([]byte, error) {
	anim, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(len(data))
	if err := gif.EncodeAll(&buf, anim); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
