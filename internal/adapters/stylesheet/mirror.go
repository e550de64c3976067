package stylesheet

import (
	"bytes"
	"strings"

	"github.com/tdewolff/parse/v2/css"
)

// ignoreDirective placed in a comment right before a rule or declaration
// keeps it out of mirroring.
const ignoreDirective = "rtl:ignore"

// keywordProperties get left and right keywords swapped in their value.
var keywordProperties = map[string]bool{
	"float":                 true,
	"clear":                 true,
	"text-align":            true,
	"text-align-last":       true,
	"background":            true,
	"background-position":   true,
	"background-position-x": true,
}

// boxProperties take one to four values in top, right, bottom, left order.
var boxProperties = map[string]bool{
	"margin":        true,
	"padding":       true,
	"border-width":  true,
	"border-style":  true,
	"border-color":  true,
	"inset":         true,
	"scroll-margin": true,
}

var swaps = map[string]string{
	"left":      "right",
	"right":     "left",
	"ltr":       "rtl",
	"rtl":       "ltr",
	"e-resize":  "w-resize",
	"w-resize":  "e-resize",
	"ne-resize": "nw-resize",
	"nw-resize": "ne-resize",
	"se-resize": "sw-resize",
	"sw-resize": "se-resize",
}

// Mirror converts a left-to-right stylesheet to right-to-left. Only the
// tokens that change are rewritten, so line numbers stay aligned with any
// source map of the input.
func (t *Transformer) Mirror(src []byte) ([]byte, error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}

	out := make([]token, 0, len(tokens))
	depth := 0
	for i := 0; i < len(tokens); {
		tok := tokens[i]

		if depth > 0 && tok.is(css.IdentToken) && startsStatement(tokens, i) {
			end := statementEnd(tokens, i)
			ignored := hasIgnoreDirective(tokens, i)

			if end < len(tokens) && tokens[end].is(css.LeftBraceToken) {
				if ignored {
					closing := min(matching(tokens, end)+1, len(tokens))
					out = append(out, tokens[i:closing]...)
					i = closing
					continue
				}
				out = append(out, tokens[i:end]...)
				i = end
				continue
			}

			colon := nextSignificant(tokens, i+1)
			if colon < end && tokens[colon].is(css.ColonToken) {
				if ignored {
					out = append(out, tokens[i:end]...)
				} else {
					out = append(out, mirrorDeclaration(tokens[i:end], colon-i)...)
				}
				i = end
				continue
			}
		}

		if depth == 0 && !tok.is(css.WhitespaceToken) && !tok.is(css.CommentToken) && hasIgnoreDirective(tokens, i) {
			end := statementEnd(tokens, i)
			if end < len(tokens) && tokens[end].is(css.LeftBraceToken) {
				closing := min(matching(tokens, end)+1, len(tokens))
				out = append(out, tokens[i:closing]...)
				i = closing
				continue
			}
		}

		switch {
		case tok.is(css.LeftBraceToken):
			depth++
		case tok.is(css.RightBraceToken):
			depth = max(depth-1, 0)
		}
		out = append(out, tok)
		i++
	}

	return render(out), nil
}

// startsStatement reports whether the token at i begins a declaration or
// nested rule, ignoring comments in between.
func startsStatement(tokens []token, i int) bool {
	for j := i - 1; j >= 0; j-- {
		switch tokens[j].tt {
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.LeftBraceToken, css.SemicolonToken, css.RightBraceToken:
			return true
		default:
			return false
		}
	}
	return true
}

func hasIgnoreDirective(tokens []token, i int) bool {
	j := prevSignificant(tokens, i)
	return j >= 0 && tokens[j].is(css.CommentToken) && bytes.Contains(tokens[j].data, []byte(ignoreDirective))
}

// mirrorDeclaration rewrites a single declaration. colon is the index of the
// colon inside decl.
func mirrorDeclaration(decl []token, colon int) []token {
	name := strings.ToLower(string(decl[0].data))
	if strings.HasPrefix(name, "--") {
		return decl
	}

	out := make([]token, 0, len(decl)+1)
	mirrored := mirrorProperty(name)
	if mirrored != name {
		out = append(out, token{tt: css.IdentToken, data: []byte(mirrored)})
	} else {
		out = append(out, decl[0])
	}
	out = append(out, decl[1:colon+1]...)

	value := decl[colon+1:]
	switch {
	case keywordProperties[name], name == "direction", name == "cursor":
		out = append(out, swapKeywords(value)...)
	case boxProperties[name]:
		out = append(out, reorder(value, boxOrder)...)
	case name == "border-radius":
		out = append(out, reorder(value, radiusOrder)...)
	default:
		out = append(out, value...)
	}
	return out
}

// mirrorProperty swaps left and right in a hyphenated property name.
func mirrorProperty(name string) string {
	parts := strings.Split(name, "-")
	changed := false
	for i, p := range parts {
		switch p {
		case "left":
			parts[i], changed = "right", true
		case "right":
			parts[i], changed = "left", true
		}
	}
	if !changed {
		return name
	}
	return strings.Join(parts, "-")
}

func swapKeywords(value []token) []token {
	out := make([]token, len(value))
	for i, tok := range value {
		out[i] = tok
		if !tok.is(css.IdentToken) {
			continue
		}
		if to, ok := swaps[strings.ToLower(string(tok.data))]; ok {
			out[i] = token{tt: css.IdentToken, data: []byte(to)}
		}
	}
	return out
}

// boxOrder swaps the right and left edges of a four value shorthand.
func boxOrder(n int) []int {
	if n == 4 {
		return []int{0, 3, 2, 1}
	}
	return nil
}

// radiusOrder mirrors the corners of a border-radius shorthand.
func radiusOrder(n int) []int {
	switch n {
	case 2:
		return []int{1, 0}
	case 3:
		return []int{1, 0, 1, 2}
	case 4:
		return []int{1, 0, 3, 2}
	}
	return nil
}

// span is a half open token range.
type span struct{ start, end int }

// components splits a value into its space separated parts at nesting depth
// zero. A trailing !important is not a component. ok is false when the value
// holds a slash or comma at depth zero.
func components(value []token) (parts []span, ok bool) {
	depth := 0
	start := -1
	closePart := func(end int) {
		if start >= 0 {
			parts = append(parts, span{start, end})
			start = -1
		}
	}
	for i, tok := range value {
		if depth == 0 {
			switch {
			case tok.is(css.CommaToken), tok.is(css.DelimToken) && bytes.Equal(tok.data, []byte("/")):
				return nil, false
			case tok.is(css.DelimToken) && bytes.Equal(tok.data, []byte("!")):
				closePart(i)
				return parts, true
			case tok.is(css.WhitespaceToken), tok.is(css.CommentToken):
				closePart(i)
				continue
			case start < 0:
				start = i
			}
		}
		switch {
		case opens(tok):
			depth++
		case closes(tok):
			depth--
		}
	}
	closePart(len(value))
	return parts, true
}

// reorder rebuilds value with its components in the order returned by
// order. Separators between components stay where they were.
func reorder(value []token, order func(n int) []int) []token {
	parts, ok := components(value)
	if !ok {
		return value
	}
	perm := order(len(parts))
	if perm == nil {
		return value
	}

	space := token{tt: css.WhitespaceToken, data: []byte(" ")}
	out := make([]token, 0, len(value)+2)
	out = append(out, value[:parts[0].start]...)
	for k, idx := range perm {
		if k > 0 {
			if k < len(parts) {
				out = append(out, value[parts[k-1].end:parts[k].start]...)
			} else {
				out = append(out, space)
			}
		}
		p := parts[idx]
		out = append(out, value[p.start:p.end]...)
	}
	out = append(out, value[parts[len(parts)-1].end:]...)
	return out
}
