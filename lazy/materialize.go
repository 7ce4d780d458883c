package lazy

import (
	"fmt"

	"github.com/hasbyte1/go-lazy-collections/ops"
)

// This file holds the only element loops in the package. Everything else
// composes in O(1); these functions run the single fused pass that
// replaces one full-collection pass per operator in a naive rendition.

// Into binds dst and materializes e into it in one fused pass:
// dst[i] = e.At(i) for every index of dst. It is the
// construction-from-expression form; the returned wrapper stays usable
// afterwards. Returns [ErrNilCollection] or [ErrLengthMismatch] without
// writing any element.
func Into[T any](dst Collection[T], e Expr[T]) (Wrap[T], error) {
	w, err := WrapCollection(dst)
	if err != nil {
		return Wrap[T]{}, err
	}
	if err := w.Assign(e); err != nil {
		return Wrap[T]{}, err
	}
	return w, nil
}

// Assign overwrites the wrapped collection from e in one fused pass:
// w[i] = e.At(i) for every index of w. Returns [ErrLengthMismatch]
// before writing anything when e cannot serve every index of w.
func (w Wrap[T]) Assign(e Expr[T]) error {
	n := w.Len()
	if err := checkLen(e.Len(), n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		w.col.Set(i, e.At(i))
	}
	return nil
}

// checkLen enforces the length policy: an expression must be able to
// serve every destination index. Longer operands are allowed; their
// extra elements are never read.
func checkLen(exprLen, dstLen int) error {
	if exprLen != AnyLen && exprLen < dstLen {
		return fmt.Errorf("%w: expression yields %d elements, destination needs %d",
			ErrLengthMismatch, exprLen, dstLen)
	}
	return nil
}

// assignWith folds rhs into dst elementwise with fn, in one fused pass.
func assignWith[T any](dst Wrap[T], rhs Expr[T], fn ops.BinaryFunc[T, T]) error {
	n := dst.Len()
	if err := checkLen(rhs.Len(), n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		dst.col.Set(i, fn(dst.col.At(i), rhs.At(i)))
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Compound assignment
// ─────────────────────────────────────────────────────────────────────────────
//
// Each function applies dst[i] op= rhs.At(i) in a single pass without
// materializing rhs. Broadcast a plain value with [Const]. These are
// package-level because Go methods cannot carry the element constraints
// the operators need.

// AddAssign performs dst[i] += rhs.At(i) for every index of dst.
func AddAssign[T ops.Addable](dst Wrap[T], rhs Expr[T]) error {
	return assignWith(dst, rhs, ops.Plus[T]())
}

// SubAssign performs dst[i] -= rhs.At(i) for every index of dst.
func SubAssign[T ops.Number](dst Wrap[T], rhs Expr[T]) error {
	return assignWith(dst, rhs, ops.Arith[T](ops.OpSub))
}

// MulAssign performs dst[i] *= rhs.At(i) for every index of dst.
func MulAssign[T ops.Number](dst Wrap[T], rhs Expr[T]) error {
	return assignWith(dst, rhs, ops.Arith[T](ops.OpMul))
}

// DivAssign performs dst[i] /= rhs.At(i) for every index of dst.
func DivAssign[T ops.Number](dst Wrap[T], rhs Expr[T]) error {
	return assignWith(dst, rhs, ops.Arith[T](ops.OpDiv))
}

// AndAssign performs dst[i] &= rhs.At(i) for every index of dst.
func AndAssign[T ops.Integer](dst Wrap[T], rhs Expr[T]) error {
	return assignWith(dst, rhs, ops.Bitwise[T](ops.OpBitAnd))
}

// OrAssign performs dst[i] |= rhs.At(i) for every index of dst.
func OrAssign[T ops.Integer](dst Wrap[T], rhs Expr[T]) error {
	return assignWith(dst, rhs, ops.Bitwise[T](ops.OpBitOr))
}

// XorAssign performs dst[i] ^= rhs.At(i) for every index of dst.
func XorAssign[T ops.Integer](dst Wrap[T], rhs Expr[T]) error {
	return assignWith(dst, rhs, ops.Bitwise[T](ops.OpBitXor))
}

// ShlAssign performs dst[i] <<= rhs.At(i) for every index of dst.
func ShlAssign[T ops.Integer](dst Wrap[T], rhs Expr[T]) error {
	return assignWith(dst, rhs, ops.Bitwise[T](ops.OpShl))
}

// ShrAssign performs dst[i] >>= rhs.At(i) for every index of dst.
func ShrAssign[T ops.Integer](dst Wrap[T], rhs Expr[T]) error {
	return assignWith(dst, rhs, ops.Bitwise[T](ops.OpShr))
}
