package notation

// stack is a LIFO used by conversion and evaluation.
type stack[T any] struct {
	v []T
}

func newStack[T any](n int) *stack[T] {
	return &stack[T]{v: make([]T, 0, n)}
}

func (s *stack[T]) push(x T) {
	s.v = append(s.v, x)
}

// pop removes the top from the stack and returns it. Panics if the stack is
// empty; callers check len first.
func (s *stack[T]) pop() T {
	r := s.v[len(s.v)-1]
	var zero T
	s.v[len(s.v)-1] = zero
	s.v = s.v[:len(s.v)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (s *stack[T]) top() T {
	return s.v[len(s.v)-1]
}

func (s *stack[T]) len() int {
	return len(s.v)
}
