package notation

// Eval evaluates a postfix expression. Every operator must have enough
// operands, and exactly one value must remain once all operators are applied;
// otherwise the result is a *StackUnderflowError or *AmbiguousResultError.
// Errors from operator semantics are returned as *OpError.
func (a *Algebra[T]) Eval(postfix string) (T, error) {
	var zero T
	toks, end, err := scanflat(postfix, a)
	if err != nil {
		return zero, err
	}
	if len(toks) == 0 {
		return zero, &EmptyExpressionError{Col: end}
	}
	vals := newStack[T](len(toks))
	for _, tok := range toks {
		switch tok.kind {
		case tokenOperand:
			vals.push(a.Operand(tok.r))
		case tokenUnary:
			if vals.len() < 1 {
				return zero, underflow(tok, 1, vals.len())
			}
			r, err := a.Unary[tok.r].Fn(vals.pop())
			if err != nil {
				return zero, &OpError{Col: tok.pos, Op: tok.r, Err: err}
			}
			vals.push(r)
		case tokenBinary:
			if vals.len() < 2 {
				return zero, underflow(tok, 2, vals.len())
			}
			y := vals.pop()
			x := vals.pop()
			r, err := a.Binary[tok.r].Fn(x, y)
			if err != nil {
				return zero, &OpError{Col: tok.pos, Op: tok.r, Err: err}
			}
			vals.push(r)
		default:
			panic("notation: unknown token: " + tok.String())
		}
	}
	if vals.len() != 1 {
		return zero, &AmbiguousResultError{Col: end, Values: vals.len()}
	}
	return vals.pop(), nil
}

// EvalString is a shortcut to evaluate an infix Boolean expression.
func EvalString(src string) (bool, error) {
	e, err := Parse(src, Infix)
	if err != nil {
		return false, err
	}
	return e.Evaluate()
}
