package config

import (
	"strings"

	"go.trai.ch/zerr"
)

var validOutputStyles = map[string]bool{
	"expanded":   true,
	"compressed": true,
	"compact":    true,
	"nested":     true,
}

// validate checks the fields every stage relies on.
func validate(wp *Wpfile) error {
	required := []struct {
		key, value string
	}{
		{"styleSRC", wp.StyleSRC},
		{"styleDestination", wp.StyleDestination},
		{"jsVendorDestination", wp.JSVendorDestination},
		{"jsVendorFile", wp.JSVendorFile},
		{"jsCustomDestination", wp.JSCustomDestination},
		{"jsCustomFile", wp.JSCustomFile},
		{"imgSRC", wp.ImgSRC},
		{"imgDST", wp.ImgDST},
		{"watchPhp", wp.WatchPHP},
		{"textDomain", wp.TextDomain},
		{"translationFile", wp.TranslationFile},
		{"translationDestination", wp.TranslationDestination},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return zerr.With(zerr.New("required field is empty"), "field", r.key)
		}
	}

	for key, name := range map[string]string{
		"jsVendorFile":    wp.JSVendorFile,
		"jsCustomFile":    wp.JSCustomFile,
		"translationFile": wp.TranslationFile,
	} {
		if strings.ContainsAny(name, `/\`) {
			return zerr.With(zerr.With(zerr.New("file name must not contain a path separator"), "field", key), "value", name)
		}
	}

	if !validOutputStyles[strings.ToLower(wp.OutputStyle)] {
		return zerr.With(zerr.New("unknown output style"), "outputStyle", wp.OutputStyle)
	}
	if wp.Precision < 0 {
		return zerr.With(zerr.New("precision must not be negative"), "precision", wp.Precision)
	}
	if wp.Port < 0 || wp.Port > 65535 {
		return zerr.With(zerr.New("port out of range"), "port", wp.Port)
	}
	if len(nonEmpty(wp.Browsers)) == 0 {
		return zerr.With(zerr.New("browser list is empty"), "field", "BROWSERS_LIST")
	}
	return nil
}
