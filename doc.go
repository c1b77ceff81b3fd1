// Package notation converts expressions among infix, prefix, and postfix
// notation and evaluates them.
//
// An expression is a string of single-rune tokens. The Boolean algebra uses
// the operands 0 and 1, the unary operator ~ (not), and the binary operators
// ^ (xor), & (and), and | (or), listed from most to least binding. So
// "~1&0|1" is the same as "((~1)&0)|1". Parentheses group terms in infix
// notation, and whitespace is ignored everywhere.
//
// Expressions are stored in postfix notation. Parsing an expression in any
// notation converts it to postfix immediately, and other notations are
// produced on demand. Evaluation results are cached until the expression is
// replaced.
//
// Other value domains plug in as an Algebra, a table of operands and operator
// semantics. Arithmetic is one such algebra over single decimal digits.
package notation
