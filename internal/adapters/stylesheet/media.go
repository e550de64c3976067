package stylesheet

import (
	"bytes"

	"github.com/tdewolff/parse/v2/css"
)

// mediaGroup collects the bodies of every @media block sharing a query.
type mediaGroup struct {
	header []byte
	bodies [][]byte
}

// MergeMediaQueries merges @media blocks with identical queries into one
// block per query. Merged blocks are moved after all other rules, in the
// order their query first appears.
func (t *Transformer) MergeMediaQueries(src []byte) ([]byte, error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}

	var (
		rest   bytes.Buffer
		groups []*mediaGroup
		byKey  = make(map[string]*mediaGroup)
	)

	for i := 0; i < len(tokens); {
		start := nextSignificant(tokens, i)
		if start == len(tokens) {
			rest.Write(render(tokens[i:]))
			break
		}

		end := statementEnd(tokens, start)
		if end == len(tokens) {
			rest.Write(render(tokens[i:]))
			break
		}
		if !tokens[end].is(css.LeftBraceToken) {
			// at-rule statement, stray closing brace or declaration
			rest.Write(render(tokens[i : end+1]))
			i = end + 1
			continue
		}

		closing := matching(tokens, end)
		if closing == len(tokens) {
			rest.Write(render(tokens[i:]))
			break
		}

		if !isMedia(tokens[start]) {
			rest.Write(render(tokens[i : closing+1]))
			i = closing + 1
			continue
		}

		key := queryKey(tokens[start+1 : end])
		group, ok := byKey[key]
		if !ok {
			group = &mediaGroup{header: render(tokens[start : end+1])}
			byKey[key] = group
			groups = append(groups, group)
		}
		group.bodies = append(group.bodies, render(tokens[end+1:closing]))
		i = closing + 1
	}

	if len(groups) == 0 {
		return src, nil
	}

	out := bytes.TrimRight(rest.Bytes(), " \t\r\n")
	var buf bytes.Buffer
	buf.Write(out)
	for _, g := range groups {
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(g.header)
		for _, body := range g.bodies {
			buf.Write(body)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func isMedia(t token) bool {
	return t.is(css.AtKeywordToken) && bytes.EqualFold(t.data, []byte("@media"))
}

// queryKey normalizes a media query prelude: comments are dropped and
// whitespace runs collapse to a single space.
func queryKey(prelude []token) string {
	var buf bytes.Buffer
	space := false
	for _, t := range prelude {
		switch t.tt {
		case css.CommentToken:
			continue
		case css.WhitespaceToken:
			space = buf.Len() > 0
			continue
		}
		if space {
			buf.WriteByte(' ')
			space = false
		}
		buf.Write(bytes.ToLower(t.data))
	}
	return buf.String()
}
