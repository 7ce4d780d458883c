// Package lazy gives existing sized, indexable collections deferred,
// loop-fused elementwise operator support.
//
// # Overview
//
// Chaining operators over wrapped collections builds a deferred binary
// expression tree — no element is touched and no intermediate collection
// is allocated. The tree is evaluated exactly once, index by index, when
// it is materialized into a destination collection:
//
//	a := lazy.WrapSlice([]int{1, 2, 3})
//	b := lazy.WrapSlice([]int{10, 20, 30})
//	c := lazy.WrapSlice([]int{100, 200, 300})
//	d := lazy.WrapSlice(make([]int, 3))
//
//	// d += a + b + c, as one fused pass
//	err := lazy.AddAssign(d, lazy.Add[int](lazy.Add[int](a, b), c))
//	// d is now [111, 222, 333]
//
// A naive rendition would make one full pass per operator, materializing
// a temporary collection after each; the fused pass evaluates the whole
// tree per index instead, reading each source element exactly once.
//
// # Wrapping
//
// Any type satisfying the [Collection] capability set (Len/At/Set) can be
// wrapped; [Slice] adapts a plain []T. A [Wrap] never copies or owns the
// underlying data — copying a Wrap copies the reference. The wrapped
// collection's length must stay fixed while the wrapper is in use, and
// the caller must not mutate it concurrently with a materialization.
//
// # Composing
//
// Operator constructors are package-level generic functions, constrained
// to the element capabilities each operator requires ([Add] over
// [ops.Addable], [Shl] over [ops.Integer], [Lt] over [cmp.Ordered], …).
// Go methods cannot introduce their own constraints, so the package-level
// form is the primary surface. Constructors take operands as [Expr]
// values, which concrete wrappers and nodes satisfy but do not let the
// compiler infer T from, so call sites instantiate explicitly
// (lazy.Add[int](a, b)). The [Num], [Bits], [Logical] and [Text] facades
// layer fluent chaining on top, needing the type argument only once per
// chain:
//
//	expr := lazy.NumOf[int](a).Add(b).Sub(c).Expr()
//
// Every constructor is O(1): it allocates one tree node and touches no
// element data. [Const] lifts a scalar into an expression that broadcasts
// the same value at every index.
//
// # Materializing
//
// [Wrap.Assign] overwrites the wrapped collection from an expression;
// [Into] binds a fresh destination and assigns in one call; the compound
// family ([AddAssign], [XorAssign], …) folds an expression or broadcast
// scalar into the destination in place. Each is a single sequential pass.
//
// Expressions report the length they can serve ([Expr.Len]); a
// materialization whose destination is longer fails fast with
// [ErrLengthMismatch] before any element is written. Operands longer than
// the destination are allowed — extra elements are simply never read.
//
// # Custom element operations
//
// [Combine] builds a node from any element-level function. For element
// types with expensive copies, [CombineReuse] additionally accepts reuse
// variants that may overwrite a disposable temporary operand (one
// produced by an interior node, never a wrapped element or scalar):
//
//	cat := func(a, b []byte) []byte { out := make([]byte, 0, len(a)+len(b)); ... }
//	catInto := func(a, b []byte) []byte { return append(a, b...) } // a is disposable
//	inner := lazy.CombineReuse[[]byte](x, y, ops.OpAdd, cat, catInto, nil)
//	e := lazy.CombineReuse[[]byte](inner, z, ops.OpAdd, cat, catInto, nil)
//
// # Concurrency
//
// The package performs no locking. Expressions and wrappers are safe for
// concurrent reads of distinct collections, but mutating a wrapped
// collection while a materialization over it is running is the caller's
// race to prevent.
package lazy
