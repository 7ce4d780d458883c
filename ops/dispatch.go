package ops

import (
	"cmp"
	"fmt"
)

// BinaryFunc computes the result of one elementwise binary operation.
type BinaryFunc[T, R any] func(a, b T) R

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic
// ─────────────────────────────────────────────────────────────────────────────

// Arith returns the element function for an arithmetic operator
// (OpAdd, OpSub, OpMul, OpDiv) over a numeric element type.
//
// Division by a zero element behaves exactly as the / operator does for T
// (panic for integers, ±Inf/NaN for floats); the dispatcher adds no checks.
func Arith[T Number](op Op) BinaryFunc[T, T] {
	switch op {
	case OpAdd:
		return func(a, b T) T { return a + b }
	case OpSub:
		return func(a, b T) T { return a - b }
	case OpMul:
		return func(a, b T) T { return a * b }
	case OpDiv:
		return func(a, b T) T { return a / b }
	default:
		panic(fmt.Sprintf("ops: %v is not an arithmetic operator", op))
	}
}

// Plus returns the element function for OpAdd over any [Addable] type.
//
// It exists alongside [Arith] because + is the one arithmetic operator Go
// also defines for strings; string-valued expressions use this entry point
// while the other arithmetic operators remain numeric-only.
func Plus[T Addable]() BinaryFunc[T, T] {
	return func(a, b T) T { return a + b }
}

// ─────────────────────────────────────────────────────────────────────────────
// Bitwise & shifts
// ─────────────────────────────────────────────────────────────────────────────

// Bitwise returns the element function for a bitwise or shift operator
// (OpBitAnd, OpBitOr, OpBitXor, OpShl, OpShr) over an integer element type.
func Bitwise[T Integer](op Op) BinaryFunc[T, T] {
	switch op {
	case OpBitAnd:
		return func(a, b T) T { return a & b }
	case OpBitOr:
		return func(a, b T) T { return a | b }
	case OpBitXor:
		return func(a, b T) T { return a ^ b }
	case OpShl:
		return func(a, b T) T { return a << b }
	case OpShr:
		return func(a, b T) T { return a >> b }
	default:
		panic(fmt.Sprintf("ops: %v is not a bitwise operator", op))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Relational
// ─────────────────────────────────────────────────────────────────────────────

// Compare returns the element function for a relational operator
// (OpEq, OpNeq, OpLt, OpLe, OpGt, OpGe) over an ordered element type.
// The result element type is bool regardless of T.
func Compare[T cmp.Ordered](op Op) BinaryFunc[T, bool] {
	switch op {
	case OpEq:
		return func(a, b T) bool { return a == b }
	case OpNeq:
		return func(a, b T) bool { return a != b }
	case OpLt:
		return func(a, b T) bool { return a < b }
	case OpLe:
		return func(a, b T) bool { return a <= b }
	case OpGt:
		return func(a, b T) bool { return a > b }
	case OpGe:
		return func(a, b T) bool { return a >= b }
	default:
		panic(fmt.Sprintf("ops: %v is not a relational operator", op))
	}
}

// Equality returns the element function for OpEq or OpNeq over any
// comparable element type. Use [Compare] when T is also ordered.
func Equality[T comparable](op Op) BinaryFunc[T, bool] {
	switch op {
	case OpEq:
		return func(a, b T) bool { return a == b }
	case OpNeq:
		return func(a, b T) bool { return a != b }
	default:
		panic(fmt.Sprintf("ops: %v is not an equality operator", op))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Logical
// ─────────────────────────────────────────────────────────────────────────────

// Logic returns the element function for a logical operator
// (OpLogicalAnd, OpLogicalOr) over bool elements.
//
// Both operands are already-evaluated values, so there is no
// short-circuiting; both sides of an elementwise && are computed for
// every index, matching the eager per-element semantics of the library.
func Logic(op Op) BinaryFunc[bool, bool] {
	switch op {
	case OpLogicalAnd:
		return func(a, b bool) bool { return a && b }
	case OpLogicalOr:
		return func(a, b bool) bool { return a || b }
	default:
		panic(fmt.Sprintf("ops: %v is not a logical operator", op))
	}
}
