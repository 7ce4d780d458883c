package ops

// Constraint sets shared by the dispatch functions and by the lazy
// package's operator constructors. They follow the usual Go union
// spelling; ~ allows user-defined types whose underlying type matches.

// Signed is any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is any integer type; the domain of the bitwise and shift
// operators.
type Integer interface {
	Signed | Unsigned
}

// Float is any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Number is any built-in numeric type; the domain of the arithmetic
// operators.
type Number interface {
	Integer | Float
}

// Addable is any type supporting the + operator: numbers and strings.
type Addable interface {
	Number | ~string
}
