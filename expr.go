package notation

// Expr is an expression over an algebra. It holds the expression in postfix
// notation along with the result of evaluating it, once computed. It is not
// safe to modify an Expr concurrently.
type Expr[T any] struct {
	alg     *Algebra[T]
	postfix string
	// val is the result of evaluating postfix; ok tells whether it is set.
	val T
	ok  bool
}

// New creates an expression holding the algebra's identity operand.
func (a *Algebra[T]) New() *Expr[T] {
	e := Expr[T]{alg: a}
	if a.Identity != 0 {
		e.postfix = string(a.Identity)
	}
	return &e
}

// Parse parses an expression written in the given format.
func (a *Algebra[T]) Parse(src string, f Format) (*Expr[T], error) {
	p, err := a.normalize(src, f)
	if err != nil {
		return nil, err
	}
	return &Expr[T]{alg: a, postfix: p}, nil
}

// Parse parses a Boolean expression written in the given format.
func Parse(src string, f Format) (*Expr[bool], error) {
	return Boolean.Parse(src, f)
}

// Set replaces the expression and discards any cached result. If src does not
// parse, the expression is unchanged.
func (e *Expr[T]) Set(src string, f Format) error {
	p, err := e.alg.normalize(src, f)
	if err != nil {
		return err
	}
	var zero T
	e.postfix, e.val, e.ok = p, zero, false
	return nil
}

// Text writes the expression in the given format. Infix text is fully
// parenthesized.
func (e *Expr[T]) Text(f Format) (string, error) {
	return e.alg.render(e.postfix, f)
}

// Postfix returns the expression in postfix notation.
func (e *Expr[T]) Postfix() string {
	return e.postfix
}

// String returns the expression in infix notation. If the expression cannot
// be written in infix notation, e.g. because an operator lacks operands, the
// result is the postfix text.
func (e *Expr[T]) String() string {
	s, err := e.Text(Infix)
	if err != nil {
		return e.postfix
	}
	return s
}

// Evaluate computes the value of the expression. The result is cached until
// the expression is replaced with Set. Failed evaluations are not cached.
func (e *Expr[T]) Evaluate() (T, error) {
	if e.ok {
		return e.val, nil
	}
	r, err := e.alg.Eval(e.postfix)
	if err != nil {
		return r, err
	}
	e.val, e.ok = r, true
	return r, nil
}

// Clone creates a copy of the expression, including its cached result.
func (e *Expr[T]) Clone() *Expr[T] {
	c := *e
	return &c
}
