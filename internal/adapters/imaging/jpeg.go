package imaging

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image/jpeg"
)

const (
	markerSOI  = 0xD8
	markerSOS  = 0xDA
	markerCOM  = 0xFE
	markerAPP0 = 0xE0
	markerAPP2 = 0xE2
	markerAPPE = 0xEE
	markerAPPF = 0xEF
)

var errMalformedJPEG = errors.New("malformed JPEG segment")

// stripJPEG drops comment and metadata segments (Exif, XMP, vendor APPn)
// without touching the entropy coded image data. JFIF, ICC profile and
// Adobe segments are kept because decoders need them to render colours.
func stripJPEG(data []byte) ([]byte, error) {
	if _, err := jpeg.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(data))
	out = append(out, data[:2]...)
	for i := 2; i < len(data); {
		if data[i] != 0xFF || i+1 >= len(data) {
			return nil, errMalformedJPEG
		}
		marker := data[i+1]
		switch {
		case marker == 0xFF:
			// fill byte
			i++
			continue
		case marker == 0x01, marker >= 0xD0 && marker <= markerSOI:
			out = append(out, data[i:i+2]...)
			i += 2
			continue
		case marker == markerSOS:
			return append(out, data[i:]...), nil
		}

		if i+4 > len(data) {
			return nil, errMalformedJPEG
		}
		end := i + 2 + int(binary.BigEndian.Uint16(data[i+2:i+4]))
		if end > len(data) {
			return nil, errMalformedJPEG
		}
		if !dropSegment(marker) {
			out = append(out, data[i:end]...)
		}
		i = end
	}
	return out, nil
}

func dropSegment(marker byte) bool {
	switch {
	case marker == markerCOM:
		return true
	case marker == markerAPP0, marker == markerAPP2, marker == markerAPPE:
		return false
	case marker > markerAPP0 && marker <= markerAPPF:
		return true
	}
	return false
}
