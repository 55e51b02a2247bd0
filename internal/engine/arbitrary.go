package engine

import (
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// IsArbitrary reports whether a captured segment uses bracket syntax.
func IsArbitrary(segment string) bool {
	return len(segment) >= 2 && segment[0] == '[' && segment[len(segment)-1] == ']'
}

// ArbitraryValue extracts the payload of a bracketed segment such as
// "[calc(100%_-_1rem)]". Underscores stand for spaces ("\_" keeps a literal
// underscore). It fails for non-bracket segments, empty payloads and
// payloads that could break out of a declaration.
func ArbitraryValue(segment string) (string, bool) {
	if !IsArbitrary(segment) {
		return "", false
	}

	payload := segment[1 : len(segment)-1]
	payload = strings.ReplaceAll(payload, `\_`, "\x00")
	payload = strings.ReplaceAll(payload, "_", " ")
	payload = strings.ReplaceAll(payload, "\x00", "_")
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return "", false
	}

	if !safeValue(payload) {
		return "", false
	}
	return payload, true
}

// safeValue lexes value as CSS and rejects anything that would end the
// declaration or open a block.
func safeValue(value string) bool {
	lexer := css.NewLexer(parse.NewInputString(value))
	depth := 0

	for {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return lexer.Err() == io.EOF && depth == 0
		case css.SemicolonToken, css.LeftBraceToken, css.RightBraceToken,
			css.BadStringToken, css.BadURLToken, css.CDOToken, css.CDCToken:
			return false
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
}
