package notation

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	r    rune
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + string(t.r) + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenOperand is a nullary token, e.g. 0 or 1.
	tokenOperand
	// tokenUnary is a prefix operator, e.g. ~.
	tokenUnary
	// tokenBinary is an infix operator, e.g. &.
	tokenBinary
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go mod tidy

// classifier decides the kind of a rune that is neither whitespace nor a
// parenthesis. The result is tokenNone if the rune is not a valid token.
type classifier interface {
	classify(r rune) tokenKind
}

type lexer struct {
	src  io.RuneScanner
	syms classifier
	rune int
	eof  bool
}

func lex(src io.RuneScanner, syms classifier) *lexer {
	return &lexer{
		src:  src,
		syms: syms,
	}
}

// next scans the next token from the input. The first time EOF is encountered,
// the result is an EOF token positioned one past the last rune with a nil
// error. Subsequent calls return an empty token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	for {
		r, _, err := l.src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.eof = true
				return lexToken{kind: tokenEOF, pos: l.rune + 1}, nil
			}
			return lexToken{}, err
		}
		l.rune++
		if unicode.IsSpace(r) {
			continue
		}
		tok := lexToken{r: r, pos: l.rune}
		switch r {
		case '(':
			tok.kind = tokenOpen
		case ')':
			tok.kind = tokenClose
		default:
			tok.kind = l.syms.classify(r)
			if tok.kind == tokenNone {
				return tok, &InvalidTokenError{Col: tok.pos, Token: r}
			}
		}
		return tok, nil
	}
}

// scanflat scans a parenthesis-free token string, as used by prefix and
// postfix notation. The second result is the position of the end of the
// input.
func scanflat(src string, syms classifier) ([]lexToken, int, error) {
	scan := lex(strings.NewReader(src), syms)
	toks := make([]lexToken, 0, len(src))
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, 0, err
		}
		switch tok.kind {
		case tokenEOF:
			return toks, tok.pos, nil
		case tokenOpen, tokenClose:
			return nil, 0, &InvalidTokenError{Col: tok.pos, Token: tok.r}
		}
		toks = append(toks, tok)
	}
}
