package notation

import (
	"strings"
)

// ToPostfix converts an infix expression to postfix notation using the
// shunting-yard algorithm. Empty input gives empty output. The result is not
// checked for operator arity, so e.g. "1&" converts to "1&" and only fails
// once evaluated.
func (a *Algebra[T]) ToPostfix(infix string) (string, error) {
	scan := lex(strings.NewReader(infix), a)
	ops := newStack[lexToken](len(infix) / 2)
	var out strings.Builder
	for {
		tok, err := scan.next()
		if err != nil {
			return "", err
		}
		switch tok.kind {
		case tokenEOF:
			for ops.len() > 0 {
				top := ops.pop()
				if top.kind == tokenOpen {
					return "", &BracketError{Col: top.pos, Unclosed: true}
				}
				out.WriteRune(top.r)
			}
			return out.String(), nil
		case tokenOperand:
			out.WriteRune(tok.r)
		case tokenOpen, tokenUnary:
			// A unary operator has no left operand, so nothing on the stack
			// can be complete yet.
			ops.push(tok)
		case tokenClose:
			for {
				if ops.len() == 0 {
					return "", &BracketError{Col: tok.pos}
				}
				top := ops.pop()
				if top.kind == tokenOpen {
					break
				}
				out.WriteRune(top.r)
			}
		case tokenBinary:
			op := a.operator(tok)
			for ops.len() > 0 {
				top := ops.top()
				if top.kind == tokenOpen || op.moreBinding(a.operator(top)) {
					break
				}
				out.WriteRune(ops.pop().r)
			}
			ops.push(tok)
		default:
			panic("notation: unknown token: " + tok.String())
		}
	}
}

// PostfixToInfix converts a postfix expression to fully parenthesized infix
// notation, e.g. "10&~" becomes "~(1&0)".
func (a *Algebra[T]) PostfixToInfix(postfix string) (string, error) {
	return a.fold(postfix, false,
		func(op rune, x string) string { return string(op) + x },
		func(op rune, x, y string) string { return "(" + x + string(op) + y + ")" },
	)
}

// PostfixToPrefix converts a postfix expression to prefix notation.
func (a *Algebra[T]) PostfixToPrefix(postfix string) (string, error) {
	return a.fold(postfix, false,
		func(op rune, x string) string { return string(op) + x },
		func(op rune, x, y string) string { return string(op) + x + y },
	)
}

// PrefixToPostfix converts a prefix expression to postfix notation.
func (a *Algebra[T]) PrefixToPostfix(prefix string) (string, error) {
	return a.fold(prefix, true,
		func(op rune, x string) string { return x + string(op) },
		func(op rune, x, y string) string { return x + y + string(op) },
	)
}

// fold rewrites a prefix or postfix expression with a stack of fragments.
// Prefix input is scanned from the right, since operators precede operands
// that have not been seen yet. In either direction, x is the left operand and
// y is the right.
func (a *Algebra[T]) fold(src string, prefix bool, unary func(op rune, x string) string, binary func(op rune, x, y string) string) (string, error) {
	toks, end, err := scanflat(src, a)
	if err != nil {
		return "", err
	}
	frags := newStack[string](len(toks))
	for i := range toks {
		tok := toks[i]
		if prefix {
			tok = toks[len(toks)-1-i]
		}
		switch tok.kind {
		case tokenOperand:
			frags.push(string(tok.r))
		case tokenUnary:
			if frags.len() < 1 {
				return "", underflow(tok, 1, frags.len())
			}
			frags.push(unary(tok.r, frags.pop()))
		case tokenBinary:
			if frags.len() < 2 {
				return "", underflow(tok, 2, frags.len())
			}
			x, y := frags.pop(), frags.pop()
			if !prefix {
				x, y = y, x
			}
			frags.push(binary(tok.r, x, y))
		default:
			panic("notation: unknown token: " + tok.String())
		}
	}
	switch frags.len() {
	case 0:
		return "", nil
	case 1:
		return frags.pop(), nil
	default:
		return "", &AmbiguousResultError{Col: end, Values: frags.len()}
	}
}

// canonical strips whitespace from a postfix expression and checks that it
// contains only operands and operators.
func (a *Algebra[T]) canonical(postfix string) (string, error) {
	toks, _, err := scanflat(postfix, a)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(len(toks))
	for _, tok := range toks {
		b.WriteRune(tok.r)
	}
	return b.String(), nil
}

// normalize converts an expression in any format to canonical postfix.
func (a *Algebra[T]) normalize(src string, f Format) (string, error) {
	switch f {
	case Infix:
		return a.ToPostfix(src)
	case Prefix:
		return a.PrefixToPostfix(src)
	case Postfix:
		return a.canonical(src)
	default:
		panic("notation: invalid format " + f.String())
	}
}

// render converts a canonical postfix expression to a format.
func (a *Algebra[T]) render(postfix string, f Format) (string, error) {
	switch f {
	case Infix:
		return a.PostfixToInfix(postfix)
	case Prefix:
		return a.PostfixToPrefix(postfix)
	case Postfix:
		return postfix, nil
	default:
		panic("notation: invalid format " + f.String())
	}
}

// Convert converts an expression from one format to another.
func (a *Algebra[T]) Convert(src string, from, to Format) (string, error) {
	p, err := a.normalize(src, from)
	if err != nil {
		return "", err
	}
	return a.render(p, to)
}

func underflow(tok lexToken, arity, have int) error {
	return &StackUnderflowError{Col: tok.pos, Op: tok.r, Arity: arity, Have: have}
}
