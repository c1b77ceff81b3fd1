package notation

import (
	"strconv"
	"strings"
)

// Algebra is a table of operand values and operator semantics over a value
// type T. Every operand and operator is a single rune. A rune may belong to at
// most one of Operands, Unary, and Binary, and no table may contain a
// parenthesis or whitespace.
//
// An Algebra must not be modified while expressions using it are in use.
type Algebra[T any] struct {
	// Identity is the operand held by an expression created with New.
	Identity rune
	// Operands contains the runes which are operands.
	Operands string
	// Operand gives the value of an operand rune.
	Operand func(r rune) T
	// Unary and Binary map operator runes to their semantics.
	Unary  map[rune]UnaryOp[T]
	Binary map[rune]BinaryOp[T]
}

// UnaryOp is a prefix operator taking one operand.
type UnaryOp[T any] struct {
	// Prec is the precedence. Higher is more binding.
	Prec int
	// Fn applies the operator.
	Fn func(x T) (T, error)
}

// BinaryOp is an infix operator taking two operands.
type BinaryOp[T any] struct {
	// Prec is the precedence. Higher is more binding.
	Prec int
	// Right indicates right-associativity. Operators are left-associative
	// otherwise.
	Right bool
	// Fn applies the operator to its left and right operands.
	Fn func(x, y T) (T, error)
}

// Precedence returns the precedence of an operator. The second result is
// false if op is not an operator in the algebra.
func (a *Algebra[T]) Precedence(op rune) (int, bool) {
	if u, ok := a.Unary[op]; ok {
		return u.Prec, true
	}
	if b, ok := a.Binary[op]; ok {
		return b.Prec, true
	}
	return 0, false
}

func (a *Algebra[T]) classify(r rune) tokenKind {
	k := tokenNone
	if strings.ContainsRune(a.Operands, r) {
		k = tokenOperand
	}
	if _, ok := a.Unary[r]; ok {
		if k != tokenNone {
			panic("notation: " + strconv.QuoteRune(r) + " is both " + k.String() + " and Unary")
		}
		k = tokenUnary
	}
	if _, ok := a.Binary[r]; ok {
		if k != tokenNone {
			panic("notation: " + strconv.QuoteRune(r) + " is both " + k.String() + " and Binary")
		}
		k = tokenBinary
	}
	return k
}

// operator gets the precedence and associativity of an operator token.
func (a *Algebra[T]) operator(tok lexToken) operator {
	switch tok.kind {
	case tokenUnary:
		// Unary operators are prefix, so they are right-associative.
		return operator{prec: a.Unary[tok.r].Prec, right: true}
	case tokenBinary:
		b := a.Binary[tok.r]
		return operator{prec: b.Prec, right: b.Right}
	default:
		panic("notation: not an operator: " + tok.String())
	}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int
	// right indicates right-associativity.
	right bool
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// Boolean is the algebra of truth values. Its operands are 0 and 1. From most
// to least binding, its operators are ~ (not), ^ (xor), & (and), and | (or).
var Boolean = &Algebra[bool]{
	Identity: '0',
	Operands: "01",
	Operand:  func(r rune) bool { return r == '1' },
	Unary: map[rune]UnaryOp[bool]{
		'~': {Prec: 3, Fn: func(x bool) (bool, error) { return !x, nil }},
	},
	Binary: map[rune]BinaryOp[bool]{
		'^': {Prec: 2, Fn: func(x, y bool) (bool, error) { return x != y, nil }},
		'&': {Prec: 1, Fn: func(x, y bool) (bool, error) { return x && y, nil }},
		'|': {Prec: 0, Fn: func(x, y bool) (bool, error) { return x || y, nil }},
	},
}
