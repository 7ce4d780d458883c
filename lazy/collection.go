package lazy

// Collection is the capability set a type must satisfy to be wrapped:
// a fixed element count plus indexed read and write access.
//
// It is checked structurally — any type with these three methods
// qualifies, and wrapping anything else fails to compile. The adapter
// [Slice] satisfies it for plain slices.
//
// Implementations must keep Len stable while a wrapper over them is in
// use; materialization iterates exactly [0, Len) of the destination.
type Collection[T any] interface {
	// Len returns the number of elements.
	Len() int

	// At returns the element at index i. 0 <= i < Len is the caller's
	// obligation, as with built-in indexing.
	At(i int) T

	// Set replaces the element at index i.
	Set(i int, v T)
}

// Slice adapts a plain []T to the [Collection] interface.
//
// The adapter is a slice header: copying it copies the reference, not the
// elements, and writes through Set are visible to every alias of the
// backing array.
type Slice[T any] []T

// Len returns len(s).
func (s Slice[T]) Len() int { return len(s) }

// At returns s[i].
func (s Slice[T]) At(i int) T { return s[i] }

// Set assigns s[i] = v.
func (s Slice[T]) Set(i int, v T) { s[i] = v }
