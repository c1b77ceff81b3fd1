package notation

import (
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Arithmetic creates an algebra of real numbers computed to prec bits. If
// prec is 0, the default is 64. Operands are the single digits 0 through 9.
// From most to least binding, operators are ~ (negation), ^ (exponentiation,
// right-associative), * and /, and + and -.
//
// Results of evaluating an Expr share storage with its cached result, so
// callers should copy a result before modifying it.
func Arithmetic(prec uint) *Algebra[*big.Float] {
	if prec == 0 {
		prec = 64
	}
	num := func() *big.Float { return new(big.Float).SetPrec(prec) }
	return &Algebra[*big.Float]{
		Identity: '0',
		Operands: "0123456789",
		Operand: func(r rune) *big.Float {
			return num().SetInt64(int64(r - '0'))
		},
		Unary: map[rune]UnaryOp[*big.Float]{
			'~': {Prec: 3, Fn: func(x *big.Float) (*big.Float, error) {
				return num().Neg(x), nil
			}},
		},
		Binary: map[rune]BinaryOp[*big.Float]{
			'^': {Prec: 2, Right: true, Fn: func(x, y *big.Float) (*big.Float, error) {
				switch {
				case x.Sign() < 0:
					// TODO: allow negative base with integer exponent
					return nil, &DomainError{X: x, Arg: 1, Func: "^"}
				case x.Sign() == 0:
					// bigfloat.Pow takes the log of the base.
					switch y.Sign() {
					case -1:
						return nil, &DomainError{X: y, Arg: 2, Func: "^"}
					case 0:
						return num().SetInt64(1), nil
					default:
						return num(), nil
					}
				}
				return bigfloat.Pow(num(), x, y), nil
			}},
			'*': {Prec: 1, Fn: func(x, y *big.Float) (*big.Float, error) {
				if x.Sign() == 0 && y.IsInf() || x.IsInf() && y.Sign() == 0 {
					return nil, &DomainError{X: y, Arg: 2, Func: "*"}
				}
				return num().Mul(x, y), nil
			}},
			'/': {Prec: 1, Fn: func(x, y *big.Float) (*big.Float, error) {
				// Guard against invalid divisions, 0/0 or inf/inf.
				if x.Sign() == 0 && y.Sign() == 0 || x.IsInf() && y.IsInf() {
					return nil, &DomainError{X: y, Arg: 2, Func: "/"}
				}
				return num().Quo(x, y), nil
			}},
			'+': {Prec: 0, Fn: func(x, y *big.Float) (*big.Float, error) {
				if x.IsInf() && y.IsInf() && x.Signbit() != y.Signbit() {
					return nil, &DomainError{X: y, Arg: 2, Func: "+"}
				}
				return num().Add(x, y), nil
			}},
			'-': {Prec: 0, Fn: func(x, y *big.Float) (*big.Float, error) {
				if x.IsInf() && y.IsInf() && x.Signbit() == y.Signbit() {
					return nil, &DomainError{X: y, Arg: 2, Func: "-"}
				}
				return num().Sub(x, y), nil
			}},
		},
	}
}

// DomainError is an error returned when an operator is applied to operands
// outside its domain.
type DomainError struct {
	// X is the out-of-domain operand.
	X *big.Float
	// Arg is the 1-based index of the operand.
	Arg int
	// Func is a name identifying the operator.
	Func string
}

func (err *DomainError) Error() string {
	r := err.X.String() + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}
