package lazy

import "github.com/hasbyte1/go-lazy-collections/ops"

// Fluent chain facades. Each wraps an expression and offers the operator
// methods its constraint family supports, so a left-associated chain
// reads the way the arithmetic does:
//
//	lazy.NumOf[int](a).Add(b).Sub(c).Expr() // a + b - c
//
// The constraint on the type parameter is the capability gate: a facade
// simply cannot be instantiated over an element type lacking its
// operators. Every method is O(1) and defers all element work.

// ─────────────────────────────────────────────────────────────────────────────
// Num
// ─────────────────────────────────────────────────────────────────────────────

// Num chains arithmetic and relational operators over numeric
// expressions.
type Num[T ops.Number] struct {
	e Expr[T]
}

// NumOf starts a numeric chain from any expression (wrapper, scalar, or
// composed tree).
func NumOf[T ops.Number](e Expr[T]) Num[T] { return Num[T]{e: e} }

// Expr returns the underlying expression tree.
func (n Num[T]) Expr() Expr[T] { return n.e }

// Add appends + rhs to the chain.
func (n Num[T]) Add(rhs Expr[T]) Num[T] { return Num[T]{e: Add(n.e, rhs)} }

// Sub appends - rhs to the chain.
func (n Num[T]) Sub(rhs Expr[T]) Num[T] { return Num[T]{e: Sub(n.e, rhs)} }

// Mul appends * rhs to the chain.
func (n Num[T]) Mul(rhs Expr[T]) Num[T] { return Num[T]{e: Mul(n.e, rhs)} }

// Div appends / rhs to the chain.
func (n Num[T]) Div(rhs Expr[T]) Num[T] { return Num[T]{e: Div(n.e, rhs)} }

// Eq compares the chain == rhs, yielding a boolean chain.
func (n Num[T]) Eq(rhs Expr[T]) Logical { return Logical{e: Eq(n.e, rhs)} }

// Neq compares the chain != rhs, yielding a boolean chain.
func (n Num[T]) Neq(rhs Expr[T]) Logical { return Logical{e: Neq(n.e, rhs)} }

// Lt compares the chain < rhs, yielding a boolean chain.
func (n Num[T]) Lt(rhs Expr[T]) Logical { return Logical{e: Lt(n.e, rhs)} }

// Le compares the chain <= rhs, yielding a boolean chain.
func (n Num[T]) Le(rhs Expr[T]) Logical { return Logical{e: Le(n.e, rhs)} }

// Gt compares the chain > rhs, yielding a boolean chain.
func (n Num[T]) Gt(rhs Expr[T]) Logical { return Logical{e: Gt(n.e, rhs)} }

// Ge compares the chain >= rhs, yielding a boolean chain.
func (n Num[T]) Ge(rhs Expr[T]) Logical { return Logical{e: Ge(n.e, rhs)} }

// ─────────────────────────────────────────────────────────────────────────────
// Bits
// ─────────────────────────────────────────────────────────────────────────────

// Bits chains bitwise, shift and arithmetic operators over integer
// expressions. Integer types satisfy [ops.Number], so the arithmetic
// methods are available alongside the bit operations.
type Bits[T ops.Integer] struct {
	e Expr[T]
}

// BitsOf starts an integer chain from any expression.
func BitsOf[T ops.Integer](e Expr[T]) Bits[T] { return Bits[T]{e: e} }

// Expr returns the underlying expression tree.
func (b Bits[T]) Expr() Expr[T] { return b.e }

// And appends & rhs to the chain.
func (b Bits[T]) And(rhs Expr[T]) Bits[T] { return Bits[T]{e: BitAnd(b.e, rhs)} }

// Or appends | rhs to the chain.
func (b Bits[T]) Or(rhs Expr[T]) Bits[T] { return Bits[T]{e: BitOr(b.e, rhs)} }

// Xor appends ^ rhs to the chain.
func (b Bits[T]) Xor(rhs Expr[T]) Bits[T] { return Bits[T]{e: BitXor(b.e, rhs)} }

// Shl appends << rhs to the chain.
func (b Bits[T]) Shl(rhs Expr[T]) Bits[T] { return Bits[T]{e: Shl(b.e, rhs)} }

// Shr appends >> rhs to the chain.
func (b Bits[T]) Shr(rhs Expr[T]) Bits[T] { return Bits[T]{e: Shr(b.e, rhs)} }

// Add appends + rhs to the chain.
func (b Bits[T]) Add(rhs Expr[T]) Bits[T] { return Bits[T]{e: Add(b.e, rhs)} }

// Sub appends - rhs to the chain.
func (b Bits[T]) Sub(rhs Expr[T]) Bits[T] { return Bits[T]{e: Sub(b.e, rhs)} }

// ─────────────────────────────────────────────────────────────────────────────
// Logical
// ─────────────────────────────────────────────────────────────────────────────

// Logical chains && and || over boolean expressions, typically produced
// by the relational methods of [Num] or [Text].
type Logical struct {
	e Expr[bool]
}

// LogicalOf starts a boolean chain from any bool expression.
func LogicalOf(e Expr[bool]) Logical { return Logical{e: e} }

// Expr returns the underlying expression tree.
func (l Logical) Expr() Expr[bool] { return l.e }

// And appends && rhs to the chain.
func (l Logical) And(rhs Expr[bool]) Logical { return Logical{e: And(l.e, rhs)} }

// Or appends || rhs to the chain.
func (l Logical) Or(rhs Expr[bool]) Logical { return Logical{e: Or(l.e, rhs)} }

// ─────────────────────────────────────────────────────────────────────────────
// Text
// ─────────────────────────────────────────────────────────────────────────────

// Text chains concatenation and comparisons over string expressions.
type Text[T ~string] struct {
	e Expr[T]
}

// TextOf starts a string chain from any expression.
func TextOf[T ~string](e Expr[T]) Text[T] { return Text[T]{e: e} }

// Expr returns the underlying expression tree.
func (t Text[T]) Expr() Expr[T] { return t.e }

// Concat appends + rhs (string concatenation) to the chain.
func (t Text[T]) Concat(rhs Expr[T]) Text[T] { return Text[T]{e: Add(t.e, rhs)} }

// Eq compares the chain == rhs, yielding a boolean chain.
func (t Text[T]) Eq(rhs Expr[T]) Logical { return Logical{e: Eq(t.e, rhs)} }

// Neq compares the chain != rhs, yielding a boolean chain.
func (t Text[T]) Neq(rhs Expr[T]) Logical { return Logical{e: Neq(t.e, rhs)} }

// Lt compares the chain < rhs lexicographically, yielding a boolean chain.
func (t Text[T]) Lt(rhs Expr[T]) Logical { return Logical{e: Lt(t.e, rhs)} }
