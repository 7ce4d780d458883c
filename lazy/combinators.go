package lazy

import (
	"cmp"

	"github.com/hasbyte1/go-lazy-collections/ops"
)

// Operator constructors. Each is O(1): it resolves the element function
// from the ops dispatch once and allocates a single tree node. Nest calls
// to chain — Add(Add(a, b), c) is the tree for a + b + c.
//
// These are package-level generic functions rather than methods because
// each operator needs its own element constraint, and Go methods cannot
// introduce constraints beyond the receiver's. The [Num], [Bits],
// [Logical] and [Text] facades offer method chaining where one constraint
// family covers a whole chain.

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic
// ─────────────────────────────────────────────────────────────────────────────

// Add defers l + r elementwise. Defined over [ops.Addable], so string
// expressions concatenate.
func Add[T ops.Addable](l, r Expr[T]) *Binary[T, T] {
	return Combine(l, r, ops.OpAdd, ops.Plus[T]())
}

// Sub defers l - r elementwise.
func Sub[T ops.Number](l, r Expr[T]) *Binary[T, T] {
	return Combine(l, r, ops.OpSub, ops.Arith[T](ops.OpSub))
}

// Mul defers l * r elementwise.
func Mul[T ops.Number](l, r Expr[T]) *Binary[T, T] {
	return Combine(l, r, ops.OpMul, ops.Arith[T](ops.OpMul))
}

// Div defers l / r elementwise.
func Div[T ops.Number](l, r Expr[T]) *Binary[T, T] {
	return Combine(l, r, ops.OpDiv, ops.Arith[T](ops.OpDiv))
}

// ─────────────────────────────────────────────────────────────────────────────
// Bitwise & shifts
// ─────────────────────────────────────────────────────────────────────────────

// BitAnd defers l & r elementwise.
func BitAnd[T ops.Integer](l, r Expr[T]) *Binary[T, T] {
	return Combine(l, r, ops.OpBitAnd, ops.Bitwise[T](ops.OpBitAnd))
}

// BitOr defers l | r elementwise.
func BitOr[T ops.Integer](l, r Expr[T]) *Binary[T, T] {
	return Combine(l, r, ops.OpBitOr, ops.Bitwise[T](ops.OpBitOr))
}

// BitXor defers l ^ r elementwise.
func BitXor[T ops.Integer](l, r Expr[T]) *Binary[T, T] {
	return Combine(l, r, ops.OpBitXor, ops.Bitwise[T](ops.OpBitXor))
}

// Shl defers l << r elementwise.
func Shl[T ops.Integer](l, r Expr[T]) *Binary[T, T] {
	return Combine(l, r, ops.OpShl, ops.Bitwise[T](ops.OpShl))
}

// Shr defers l >> r elementwise.
func Shr[T ops.Integer](l, r Expr[T]) *Binary[T, T] {
	return Combine(l, r, ops.OpShr, ops.Bitwise[T](ops.OpShr))
}

// ─────────────────────────────────────────────────────────────────────────────
// Relational
// ─────────────────────────────────────────────────────────────────────────────
//
// Relational constructors yield Expr[bool]; materialize them into a
// bool-element collection. They never mutate operands.

// Eq defers l == r elementwise over any comparable element type.
func Eq[T comparable](l, r Expr[T]) *Binary[T, bool] {
	return Combine(l, r, ops.OpEq, ops.Equality[T](ops.OpEq))
}

// Neq defers l != r elementwise over any comparable element type.
func Neq[T comparable](l, r Expr[T]) *Binary[T, bool] {
	return Combine(l, r, ops.OpNeq, ops.Equality[T](ops.OpNeq))
}

// Lt defers l < r elementwise.
func Lt[T cmp.Ordered](l, r Expr[T]) *Binary[T, bool] {
	return Combine(l, r, ops.OpLt, ops.Compare[T](ops.OpLt))
}

// Le defers l <= r elementwise.
func Le[T cmp.Ordered](l, r Expr[T]) *Binary[T, bool] {
	return Combine(l, r, ops.OpLe, ops.Compare[T](ops.OpLe))
}

// Gt defers l > r elementwise.
func Gt[T cmp.Ordered](l, r Expr[T]) *Binary[T, bool] {
	return Combine(l, r, ops.OpGt, ops.Compare[T](ops.OpGt))
}

// Ge defers l >= r elementwise.
func Ge[T cmp.Ordered](l, r Expr[T]) *Binary[T, bool] {
	return Combine(l, r, ops.OpGe, ops.Compare[T](ops.OpGe))
}

// ─────────────────────────────────────────────────────────────────────────────
// Logical
// ─────────────────────────────────────────────────────────────────────────────

// And defers l && r elementwise over bool expressions. Both operands are
// evaluated at every index; there is no short-circuiting.
func And(l, r Expr[bool]) *Binary[bool, bool] {
	return Combine(l, r, ops.OpLogicalAnd, ops.Logic(ops.OpLogicalAnd))
}

// Or defers l || r elementwise over bool expressions.
func Or(l, r Expr[bool]) *Binary[bool, bool] {
	return Combine(l, r, ops.OpLogicalOr, ops.Logic(ops.OpLogicalOr))
}
