package gettext

import (
	"strconv"
	"strings"
)

// keywords maps each WordPress translation function to the meaning of its
// arguments: s singular, p plural, c context, d text domain, _ ignored.
var keywords = map[string]string{
	"__":         "sd",
	"_e":         "sd",
	"esc_html__": "sd",
	"esc_html_e": "sd",
	"esc_attr__": "sd",
	"esc_attr_e": "sd",
	"_x":         "scd",
	"_ex":        "scd",
	"esc_html_x": "scd",
	"esc_attr_x": "scd",
	"_n":         "sp_d",
	"_n_noop":    "spd",
	"_nx":        "sp_cd",
	"_nx_noop":   "spcd",
}

// message is one translatable string found in the sources.
type message struct {
	context    string
	id         string
	plural     string
	references []string
	comments   []string
}

func (m *message) key() string {
	return m.context + "\x04" + m.id
}

// argument is a call argument. ok is false unless the argument is made of
// string literals only.
type argument struct {
	value string
	ok    bool
}

// extract returns the messages of one PHP file whose domain is textDomain
// or absent, in source order. Each reference is path:line.
func extract(path string, src []byte, textDomain string) []*message {
	tokens := scanPHP(src)

	var out []*message
	for i, tok := range tokens {
		if tok.kind != tokenIdent {
			continue
		}
		roles, ok := keywords[strings.TrimPrefix(tok.text, "\\")]
		if !ok || isMemberOrDeclaration(tokens, i) {
			continue
		}
		open := nextCode(tokens, i+1)
		if open >= len(tokens) || !tokens[open].punct("(") {
			continue
		}

		msg, ok := build(roles, arguments(tokens, open), textDomain)
		if !ok {
			continue
		}
		msg.references = []string{path + ":" + strconv.Itoa(tok.line)}
		if comment, ok := translatorComment(tokens, i); ok {
			msg.comments = []string{comment}
		}
		out = append(out, msg)
	}
	return out
}

func build(roles string, args []argument, textDomain string) (*message, bool) {
	msg := &message{}
	for pos, role := range roles {
		if pos >= len(args) {
			if role == 'd' {
				break
			}
			return nil, false
		}
		arg := args[pos]
		switch role {
		case 's':
			if !arg.ok || arg.value == "" {
				return nil, false
			}
			msg.id = arg.value
		case 'p':
			if !arg.ok {
				return nil, false
			}
			msg.plural = arg.value
		case 'c':
			if !arg.ok {
				return nil, false
			}
			msg.context = arg.value
		case 'd':
			if !arg.ok || arg.value != textDomain {
				return nil, false
			}
		}
	}
	return msg, true
}

// isMemberOrDeclaration reports whether the identifier at i is a method,
// a static call or the name of a function being declared.
func isMemberOrDeclaration(tokens []phpToken, i int) bool {
	for j := i - 1; j >= 0; j-- {
		switch t := tokens[j]; {
		case t.kind == tokenComment:
			continue
		case t.punct("->"), t.punct("::"):
			return true
		case t.kind == tokenIdent && strings.EqualFold(t.text, "function"):
			return true
		default:
			return false
		}
	}
	return false
}

func nextCode(tokens []phpToken, i int) int {
	for i < len(tokens) && tokens[i].kind == tokenComment {
		i++
	}
	return i
}

// arguments parses the argument list opened at index open.
func arguments(tokens []phpToken, open int) []argument {
	var (
		args    []argument
		current []phpToken
		depth   int
	)
	flush := func() {
		args = append(args, literalArgument(current))
		current = nil
	}

	for j := open; j < len(tokens); j++ {
		t := tokens[j]
		if t.kind == tokenComment {
			continue
		}
		switch {
		case t.punct("("), t.punct("["), t.punct("{"):
			depth++
			if depth == 1 {
				continue
			}
		case t.punct(")"), t.punct("]"), t.punct("}"):
			depth--
			if depth == 0 {
				if len(current) > 0 || len(args) > 0 {
					flush()
				}
				return args
			}
		case t.punct(",") && depth == 1:
			flush()
			continue
		}
		current = append(current, t)
	}
	return args
}

// literalArgument folds string literals joined with the concatenation
// operator into one value.
func literalArgument(tokens []phpToken) argument {
	if len(tokens) == 0 {
		return argument{}
	}
	var b strings.Builder
	for k, t := range tokens {
		if k%2 == 1 {
			if !t.punct(".") {
				return argument{}
			}
			continue
		}
		if t.kind != tokenString || !t.literal {
			return argument{}
		}
		b.WriteString(t.text)
	}
	if len(tokens)%2 == 0 {
		return argument{}
	}
	return argument{value: b.String(), ok: true}
}

// translatorComment returns the text of a "translators:" comment ending on
// the line of the call at i or the line before it.
func translatorComment(tokens []phpToken, i int) (string, bool) {
	for j := i - 1; j >= 0; j-- {
		t := tokens[j]
		if t.kind != tokenComment {
			if t.line < tokens[i].line-1 {
				return "", false
			}
			continue
		}
		if t.endLine < tokens[i].line-1 {
			return "", false
		}
		text := commentText(t.text)
		if strings.HasPrefix(strings.ToLower(text), "translators:") {
			return text, true
		}
		return "", false
	}
	return "", false
}

func commentText(raw string) string {
	switch {
	case strings.HasPrefix(raw, "/*"):
		raw = strings.TrimSuffix(strings.TrimPrefix(raw, "/*"), "*/")
	case strings.HasPrefix(raw, "//"):
		raw = strings.TrimPrefix(raw, "//")
	default:
		raw = strings.TrimPrefix(raw, "#")
	}

	var lines []string
	for line := range strings.SplitSeq(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "*"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, " ")
}
