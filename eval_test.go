package notation_test

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/zephyrtronium/notation"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want bool
	}{
		{"zero", "0", false},
		{"one", "1", true},
		{"and", "1&1", true},
		{"or", "1|0", true},
		{"xor", "1^1", false},
		{"xor-one", "1^0", true},
		{"not-group", "~(1&0)", true},
		{"groups", "(1|0)&(0|1)", true},
		{"precedence", "1&0|1", true},
		{"precedence-explicit", "(1&0)|1", true},
		{"not-binds", "~1&0", false},
		{"not-explicit", "(~1)&0", false},
		{"xor-over-or", "1|1^1", true},
		{"xor-under-not", "~1^1", true},
		{"spaces", " ~ ( 0 | 0 ) ", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := notation.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if r != c.want {
				t.Errorf("%q: want %t, got %t", c.src, c.want, r)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"empty", "", &notation.EmptyExpressionError{Col: 1}},
		{"spaces", "  ", &notation.EmptyExpressionError{Col: 3}},
		{"dangling", "1&", &notation.StackUnderflowError{Col: 2, Op: '&', Arity: 2, Have: 1}},
		{"bare-not", "~", &notation.StackUnderflowError{Col: 1, Op: '~', Arity: 1, Have: 0}},
		{"adjacent", "01", &notation.AmbiguousResultError{Col: 3, Values: 2}},
		{"excess", "110&", &notation.AmbiguousResultError{Col: 5, Values: 2}},
		{"invalid", "1x", &notation.InvalidTokenError{Col: 2, Token: 'x'}},
		{"bracket", "(1)", &notation.InvalidTokenError{Col: 1, Token: '('}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := notation.Boolean.Eval(c.src)
			if err == nil {
				t.Fatalf("%q evaluated to %t with no error", c.src, r)
			}
			if err.Error() != c.err.Error() {
				t.Errorf("%q: want error %v, got %v", c.src, c.err, err)
			}
		})
	}
}

func TestEvalMalformedInfix(t *testing.T) {
	e, err := notation.Parse("1&", notation.Infix)
	if err != nil {
		t.Fatalf("parsing: %v", err)
	}
	_, err = e.Evaluate()
	var u *notation.StackUnderflowError
	if !errors.As(err, &u) {
		t.Fatalf("%#v is not *StackUnderflowError", err)
	}
	if u.Op != '&' {
		t.Errorf("underflow on %q, want '&'", u.Op)
	}
}

func TestArithmetic(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"digit", "7", 7},
		{"add", "1+2+3", 6},
		{"sub", "9-3-2", 4},
		{"mul", "2*3*4", 24},
		{"div", "8/4/2", 1},
		{"precedence", "1+2*3", 7},
		{"group", "(1+2)*3", 9},
		{"pow", "4^3^2", 262144},
		{"pow-zero", "0^0", 1},
		{"zero-pow", "0^3", 0},
		{"neg", "~2+5", 3},
		{"neg-group", "~(2-5)", 3},
		{"div-zero", "1/0", math.Inf(1)},
		{"identity", "0", 0},
	}
	alg := notation.Arithmetic(64)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := alg.Parse(c.src, notation.Infix)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			r, err := e.Evaluate()
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if f, _ := r.Float64(); f != c.want {
				t.Errorf("%q: want %g, got %g", c.src, c.want, r)
			}
		})
	}
}

func TestArithmeticDomain(t *testing.T) {
	cases := []struct {
		name string
		src  string
		op   rune
	}{
		{"div-zero", "0/0", '/'},
		{"div-inf", "(1/0)/(1/0)", '/'},
		{"pow-neg", "~1^2", '^'},
		{"zero-pow-neg", "0^~1", '^'},
		{"inf-sub", "1/0-1/0", '-'},
		{"inf-add", "1/0+~1/0", '+'},
		{"zero-mul-inf", "0*(1/0)", '*'},
	}
	alg := notation.Arithmetic(0)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := alg.ToPostfix(c.src)
			if err != nil {
				t.Fatalf("%q failed to convert: %v", c.src, err)
			}
			r, err := alg.Eval(p)
			if err == nil {
				t.Fatalf("%q evaluated to %g with no error", c.src, r)
			}
			var oe *notation.OpError
			if !errors.As(err, &oe) {
				t.Fatalf("%#v is not *OpError", err)
			}
			if oe.Op != c.op {
				t.Errorf("%q: error on %q, want %q", c.src, oe.Op, c.op)
			}
			var de *notation.DomainError
			if !errors.As(err, &de) {
				t.Errorf("%#v does not unwrap to *DomainError", err)
			}
		})
	}
}

func TestArithmeticPrec(t *testing.T) {
	alg := notation.Arithmetic(200)
	r, err := alg.Eval("13/")
	if err != nil {
		t.Fatalf("evaluating: %v", err)
	}
	want := new(big.Float).SetPrec(200).Quo(big.NewFloat(1), big.NewFloat(3))
	if r.Cmp(want) != 0 {
		t.Errorf("want %v, got %v", want, r)
	}
}
