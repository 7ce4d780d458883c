package lazy

// scalar broadcasts one value at every index.
type scalar[T any] struct {
	v T
}

// Const lifts a single value into an expression that yields v at every
// index. It reports [AnyLen], so it never constrains materialization
// length, and it is the way to use a plain value as the right-hand side
// of a compound assignment:
//
//	lazy.AddAssign(d, lazy.Const(5)) // d[i] += 5 for every i
func Const[T any](v T) Expr[T] {
	return scalar[T]{v: v}
}

func (s scalar[T]) At(int) T { return s.v }

func (s scalar[T]) Len() int { return AnyLen }
