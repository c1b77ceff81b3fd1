package notation

import "strconv"

// InvalidTokenError is an error indicating a rune that is not an operand,
// operator, parenthesis, or whitespace in the algebra in use. It implements
// InputError.
type InvalidTokenError struct {
	// Col is the position of the rune.
	Col int
	// Token is the rune that was not understood.
	Token rune
}

func (err *InvalidTokenError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.QuoteRune(err.Token))
}

func (err *InvalidTokenError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses in infix input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Unclosed is true if the parenthesis is an open parenthesis that was
	// never closed, and false if it is a close parenthesis with no open one.
	Unclosed bool
}

func (err *BracketError) Error() string {
	if err.Unclosed {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "close bracket ) with no open bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// StackUnderflowError is an error indicating an operator with fewer operands
// than it requires. It implements InputError.
type StackUnderflowError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator.
	Op rune
	// Arity is the number of operands the operator requires.
	Arity int
	// Have is the number of operands that were available.
	Have int
}

func (err *StackUnderflowError) Error() string {
	return errpos(err.Col, "operator "+strconv.QuoteRune(err.Op)+" needs "+strconv.Itoa(err.Arity)+" operands but has "+strconv.Itoa(err.Have))
}

func (err *StackUnderflowError) Pos() int {
	return err.Col
}

// AmbiguousResultError is an error indicating that an expression left more
// than one value after all of its operators were applied, e.g. "01". It
// implements InputError.
type AmbiguousResultError struct {
	// Col is the position of the end of the expression.
	Col int
	// Values is the number of values that remained.
	Values int
}

func (err *AmbiguousResultError) Error() string {
	return errpos(err.Col, strconv.Itoa(err.Values)+" values remain at end of expression")
}

func (err *AmbiguousResultError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an attempt to evaluate an
// expression with no tokens. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the end of the input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// OpError is an error returned by an operator's semantics during evaluation,
// annotated with the operator's position. It implements InputError and
// unwraps to the operator's error.
type OpError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator.
	Op rune
	// Err is the error the operator returned.
	Err error
}

func (err *OpError) Error() string {
	return errpos(err.Col, "operator "+strconv.QuoteRune(err.Op)+": "+err.Err.Error())
}

func (err *OpError) Pos() int {
	return err.Col
}

func (err *OpError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*InvalidTokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*StackUnderflowError)(nil)
	_ InputError = (*AmbiguousResultError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*OpError)(nil)
)
