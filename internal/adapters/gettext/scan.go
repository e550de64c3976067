package gettext

import (
	"bytes"
	"strings"
)

type tokenKind uint8

const (
	tokenIdent tokenKind = iota
	tokenString
	tokenPunct
	tokenComment
)

type phpToken struct {
	kind tokenKind
	text string
	line int
	// endLine is the last line of a comment.
	endLine int
	// literal is false for double quoted strings that interpolate variables.
	literal bool
}

func (t phpToken) punct(s string) bool {
	return t.kind == tokenPunct && t.text == s
}

// scanPHP splits the PHP blocks of src into tokens. Inline HTML outside of
// <?php ... ?> is skipped.
func scanPHP(src []byte) []phpToken {
	var (
		tokens []phpToken
		inPHP  bool
		line   = 1
		i      int
	)

	for i < len(src) {
		if !inPHP {
			idx := bytes.Index(src[i:], []byte("<?"))
			if idx < 0 {
				break
			}
			line += bytes.Count(src[i:i+idx], []byte("\n"))
			i += idx + 2
			switch {
			case len(src)-i >= 3 && strings.EqualFold(string(src[i:i+3]), "php"):
				i += 3
			case i < len(src) && src[i] == '=':
				i++
			}
			inPHP = true
			continue
		}

		c := src[i]
		next := byte(0)
		if i+1 < len(src) {
			next = src[i+1]
		}

		switch {
		case c == '\n':
			line++
			i++
		case c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v':
			i++
		case c == '?' && next == '>':
			inPHP = false
			i += 2
		case c == '#' && next != '[', c == '/' && next == '/':
			start := i
			for i < len(src) && src[i] != '\n' && !(src[i] == '?' && i+1 < len(src) && src[i+1] == '>') {
				i++
			}
			tokens = append(tokens, phpToken{kind: tokenComment, text: string(src[start:i]), line: line, endLine: line})
		case c == '/' && next == '*':
			start := i
			end := bytes.Index(src[i+2:], []byte("*/"))
			if end < 0 {
				i = len(src)
			} else {
				i += 2 + end + 2
			}
			text := string(src[start:i])
			startLine := line
			line += strings.Count(text, "\n")
			tokens = append(tokens, phpToken{kind: tokenComment, text: text, line: startLine, endLine: line})
		case c == '\'':
			value, n, lines := singleQuoted(src[i:])
			tokens = append(tokens, phpToken{kind: tokenString, text: value, line: line, literal: true})
			line += lines
			i += n
		case c == '"':
			value, n, lines, literal := doubleQuoted(src[i:])
			tokens = append(tokens, phpToken{kind: tokenString, text: value, line: line, literal: literal})
			line += lines
			i += n
		case isIdentStart(c):
			start := i
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			tokens = append(tokens, phpToken{kind: tokenIdent, text: string(src[start:i]), line: line})
		case c == '$':
			start := i
			i++
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			tokens = append(tokens, phpToken{kind: tokenPunct, text: string(src[start:i]), line: line})
		case c == '-' && next == '>', c == ':' && next == ':':
			tokens = append(tokens, phpToken{kind: tokenPunct, text: string(src[i : i+2]), line: line})
			i += 2
		default:
			tokens = append(tokens, phpToken{kind: tokenPunct, text: string(c), line: line})
			i++
		}
	}
	return tokens
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '\\' || c >= 0x80 || (c|0x20 >= 'a' && c|0x20 <= 'z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// singleQuoted decodes a single quoted literal at the start of src. It
// returns the value, the number of bytes consumed and the newlines crossed.
func singleQuoted(src []byte) (string, int, int) {
	var b strings.Builder
	lines := 0
	i := 1
	for ; i < len(src); i++ {
		c := src[i]
		if c == '\'' {
			return b.String(), i + 1, lines
		}
		if c == '\\' && i+1 < len(src) && (src[i+1] == '\'' || src[i+1] == '\\') {
			i++
			c = src[i]
		}
		if c == '\n' {
			lines++
		}
		b.WriteByte(c)
	}
	return b.String(), i, lines
}

var doubleEscapes = map[byte]byte{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'v':  '\v',
	'f':  '\f',
	'e':  0x1b,
	'$':  '$',
	'"':  '"',
	'\\': '\\',
}

// doubleQuoted decodes a double quoted literal. literal is false when the
// string interpolates a variable.
func doubleQuoted(src []byte) (value string, n, lines int, literal bool) {
	var b strings.Builder
	literal = true
	i := 1
	for ; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '"':
			return b.String(), i + 1, lines, literal
		case c == '\\' && i+1 < len(src):
			if r, ok := doubleEscapes[src[i+1]]; ok {
				b.WriteByte(r)
				i++
				continue
			}
		case c == '$' && i+1 < len(src) && (isIdentStart(src[i+1]) || src[i+1] == '{'):
			literal = false
		case c == '{' && i+1 < len(src) && src[i+1] == '$':
			literal = false
		case c == '\n':
			lines++
		}
		b.WriteByte(c)
	}
	return b.String(), i, lines, literal
}
