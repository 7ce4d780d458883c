// Package ops defines the elementwise binary operators used by the lazy
// package, as a single [Op] enumeration plus one generic dispatch function
// per operator family.
//
// # Why an enumeration
//
// A lazy expression tree needs to know *which* operator a node applies
// (for diagnostics and introspection) and *how* to apply it to two element
// values (for evaluation). Instead of one hand-written type per operator,
// this package keys everything off [Op] and resolves the element-level
// function once, through a generic dispatch:
//
//	add := ops.Arith[int](ops.OpAdd) // func(int, int) int
//	lt  := ops.Compare[int](ops.OpLt) // func(int, int) bool
//
// # Operator families
//
// Go's generic constraints split the operator set into families — the `/`
// arm of a switch cannot compile when T may be a string, so each family
// gets its own dispatch over the same enumeration:
//
//   - [Arith]: + - * / over [Number]
//   - [Plus]: + over [Addable] (the one arithmetic operator Go also
//     defines for strings)
//   - [Bitwise]: & | ^ << >> over [Integer]
//   - [Compare]: == != < <= > >= over [cmp.Ordered]
//   - [Equality]: == != over any comparable type
//   - [Logic]: && || over bool
//
// # Purity
//
// Every function returned by a dispatcher is pure: it computes a result
// from its two arguments and mutates nothing. Reuse of disposable
// temporaries for element types with expensive copies is handled one
// level up, by the lazy package's CombineReuse.
//
// Requesting an operator outside a family's domain (e.g. Arith with
// [OpShl]) panics: the tag set is closed and such a call is a programming
// error, the runtime counterpart of an expression that fails to compile.
package ops
