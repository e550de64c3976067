// Package stylesheet rewrites compiled CSS: right-to-left mirroring, media
// query merging and minification.
package stylesheet

import (
	"bytes"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

type token struct {
	tt   css.TokenType
	data []byte
}

func (t token) is(tt css.TokenType) bool {
	return t.tt == tt
}

// lex splits src into tokens. Whitespace and comments are kept so the
// tokens concatenate back to src.
func lex(src []byte) ([]token, error) {
	l := css.NewLexer(parse.NewInputBytes(src))

	var tokens []token
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			if err := l.Err(); err != nil && err != io.EOF {
				return nil, domain.Classify(domain.ErrCompile, zerr.Wrap(err, "failed to tokenize stylesheet"))
			}
			return tokens, nil
		}
		tokens = append(tokens, token{tt: tt, data: bytes.Clone(data)})
	}
}

func render(tokens []token) []byte {
	var buf bytes.Buffer
	for _, t := range tokens {
		buf.Write(t.data)
	}
	return buf.Bytes()
}

// opens reports whether t opens a nesting level closed by ), ] or }.
func opens(t token) bool {
	switch t.tt {
	case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken, css.LeftBraceToken:
		return true
	}
	return false
}

func closes(t token) bool {
	switch t.tt {
	case css.RightParenthesisToken, css.RightBracketToken, css.RightBraceToken:
		return true
	}
	return false
}

// matching returns the index of the token closing the block opened at i,
// or len(tokens) when it is never closed.
func matching(tokens []token, i int) int {
	depth := 0
	for j := i; j < len(tokens); j++ {
		switch {
		case opens(tokens[j]):
			depth++
		case closes(tokens[j]):
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return len(tokens)
}

// statementEnd scans from i at nesting depth zero and returns the index of
// the first ;, { or } found there, or len(tokens).
func statementEnd(tokens []token, i int) int {
	depth := 0
	for j := i; j < len(tokens); j++ {
		t := tokens[j]
		if depth == 0 && (t.is(css.SemicolonToken) || t.is(css.LeftBraceToken) || t.is(css.RightBraceToken)) {
			return j
		}
		switch {
		case opens(t):
			depth++
		case closes(t):
			depth--
		}
	}
	return len(tokens)
}

// prevSignificant returns the index of the closest token before i that is
// not whitespace, or -1.
func prevSignificant(tokens []token, i int) int {
	for j := i - 1; j >= 0; j-- {
		if !tokens[j].is(css.WhitespaceToken) {
			return j
		}
	}
	return -1
}

func nextSignificant(tokens []token, i int) int {
	for j := i; j < len(tokens); j++ {
		if !tokens[j].is(css.WhitespaceToken) {
			return j
		}
	}
	return len(tokens)
}
