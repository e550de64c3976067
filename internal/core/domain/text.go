package domain

import "runtime"

// HostLineEnding is the canonical line terminator of the host platform.
var HostLineEnding = hostLineEnding(runtime.GOOS)

func hostLineEnding(goos string) []byte {
	if goos == "windows" {
		return []byte("\r\n")
	}
	return []byte("\n")
}

// NormalizeLineEndings rewrites every CRLF, CR and LF terminator in data to eol.
func NormalizeLineEndings(data, eol []byte) []byte {
	out := make([]byte, 0, len(data)+len(data)/32)
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\r':
			if i+1 < len(data) && data[i+1] == '\n' {
				i++
			}
			out = append(out, eol...)
		case '\n':
			out = append(out, eol...)
		default:
			out = append(out, data[i])
		}
	}
	return out
}

// ToHostLineEndings normalizes data to HostLineEnding.
func ToHostLineEndings(data []byte) []byte {
	return NormalizeLineEndings(data, HostLineEnding)
}
