package lazy

// Wrap is a non-owning adapter giving an existing [Collection] lazy
// operator support. It holds the caller's collection by reference and
// never copies elements; copying a Wrap copies the reference.
//
// A Wrap is both a leaf operand in an expression tree (it implements
// [Expr]) and a materialization target (see [Wrap.Assign] and the
// compound-assignment functions). The wrapped collection must outlive
// the wrapper's use and keep a fixed length — both are the caller's
// obligations, as is serializing concurrent mutation.
type Wrap[T any] struct {
	col Collection[T]
}

// WrapCollection wraps an existing collection. O(1); no elements are
// copied. Returns [ErrNilCollection] when col is nil.
func WrapCollection[T any](col Collection[T]) (Wrap[T], error) {
	if col == nil {
		return Wrap[T]{}, ErrNilCollection
	}
	return Wrap[T]{col: col}, nil
}

// WrapSlice wraps a plain slice via the [Slice] adapter. Writes during
// materialization go straight into the slice's backing array.
func WrapSlice[T any](s []T) Wrap[T] {
	return Wrap[T]{col: Slice[T](s)}
}

// Collection returns the wrapped collection.
func (w Wrap[T]) Collection() Collection[T] { return w.col }

// At returns the element at index i, forwarding to the wrapped
// collection. It makes Wrap a leaf [Expr].
func (w Wrap[T]) At(i int) T { return w.col.At(i) }

// Len returns the wrapped collection's length.
func (w Wrap[T]) Len() int { return w.col.Len() }

// Set replaces the element at index i in the wrapped collection.
func (w Wrap[T]) Set(i int, v T) { w.col.Set(i, v) }
