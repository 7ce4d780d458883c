package lazy

import "github.com/hasbyte1/go-lazy-collections/ops"

// AnyLen is the length reported by operands that impose no bound on
// materialization, such as broadcast scalars.
const AnyLen = -1

// Expr is a deferred elementwise computation: anything that can produce
// an element value for an index.
//
// Leaves are collection wrappers ([Wrap]) and broadcast scalars ([Const]);
// interior nodes are [Binary] operations over two sub-expressions. At
// must be pure — it never mutates a source collection and allocates
// nothing beyond what the element operation itself requires.
type Expr[T any] interface {
	// At evaluates the expression at index i. The materializer guarantees
	// 0 <= i < the destination length, which Len has vetted.
	At(i int) T

	// Len returns the number of indices this expression can serve:
	// the wrapped collection's length for leaves, the minimum across
	// sized operands for interior nodes, or [AnyLen] when unbounded.
	Len() int
}

// temporary is implemented by interior nodes: their At results are
// freshly constructed values owned by the evaluator, safe for a reuse
// variant to overwrite. Leaves never implement it — their At results
// alias caller-owned data for reference-like element types.
type temporary interface {
	temporary()
}

func isTemporary(e any) bool {
	_, ok := e.(temporary)
	return ok
}

// Binary is an immutable deferred binary operation: two operand
// expressions, the operator tag, and the element function resolved at
// construction. It forms a strictly binary tree; nesting Binary nodes
// gives arbitrary chain depth.
//
// Evaluating index i computes fn(left.At(i), right.At(i)) recursively —
// the whole tree collapses to one element value per index, which is what
// makes single-pass materialization possible.
type Binary[T, R any] struct {
	left  Expr[T]
	right Expr[T]
	op    ops.Op
	fn    ops.BinaryFunc[T, R]
}

// Combine builds a deferred node applying fn, tagged with op, over two
// operand expressions. O(1); no element data is touched.
//
// fn must be pure. For element functions that can profitably overwrite a
// disposable operand, use [CombineReuse].
func Combine[T, R any](left, right Expr[T], op ops.Op, fn ops.BinaryFunc[T, R]) *Binary[T, R] {
	return &Binary[T, R]{left: left, right: right, op: op, fn: fn}
}

// CombineReuse is [Combine] for element types with expensive copies.
//
// fn is the pure variant. reuseLeft (resp. reuseRight) may overwrite its
// first (resp. second) argument and return it; it is installed instead of
// fn only when the corresponding operand is an interior node, whose
// values are disposable temporaries. Operand values coming from wrapped
// collections or scalars are never passed to a reuse variant, so
// caller-owned data is never mutated. Either reuse variant may be nil.
//
// The choice is made once, at composition time; evaluation stays a plain
// function call per index.
func CombineReuse[T any](left, right Expr[T], op ops.Op, fn, reuseLeft, reuseRight ops.BinaryFunc[T, T]) *Binary[T, T] {
	chosen := fn
	switch {
	case reuseLeft != nil && isTemporary(left):
		chosen = reuseLeft
	case reuseRight != nil && isTemporary(right):
		chosen = reuseRight
	}
	return &Binary[T, T]{left: left, right: right, op: op, fn: chosen}
}

// Left returns the left operand expression.
func (b *Binary[T, R]) Left() Expr[T] { return b.left }

// Right returns the right operand expression.
func (b *Binary[T, R]) Right() Expr[T] { return b.right }

// Op returns the operator tag this node applies.
func (b *Binary[T, R]) Op() ops.Op { return b.op }

// At evaluates the node at index i.
func (b *Binary[T, R]) At(i int) R {
	return b.fn(b.left.At(i), b.right.At(i))
}

// Len returns the minimum length across sized operands, or [AnyLen] when
// both operands are unbounded.
func (b *Binary[T, R]) Len() int {
	return minLen(b.left.Len(), b.right.Len())
}

func (b *Binary[T, R]) temporary() {}

func minLen(a, b int) int {
	if a == AnyLen {
		return b
	}
	if b == AnyLen {
		return a
	}
	if b < a {
		return b
	}
	return a
}
