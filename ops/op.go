package ops

import "fmt"

// Op identifies one elementwise binary operator.
//
// The zero value is [OpAdd]; there is deliberately no "invalid" member —
// every Op value names an operator, and family membership is checked by
// the dispatch functions.
type Op uint8

const (
	// Arithmetic
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv

	// Bitwise
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShl
	OpShr

	// Logical
	OpLogicalAnd
	OpLogicalOr

	// Relational
	OpEq
	OpNeq
	OpLt
	OpLe
	OpGt
	OpGe
)

var opNames = [...]string{
	OpAdd:        "+",
	OpSub:        "-",
	OpMul:        "*",
	OpDiv:        "/",
	OpBitAnd:     "&",
	OpBitOr:      "|",
	OpBitXor:     "^",
	OpShl:        "<<",
	OpShr:        ">>",
	OpLogicalAnd: "&&",
	OpLogicalOr:  "||",
	OpEq:         "==",
	OpNeq:        "!=",
	OpLt:         "<",
	OpLe:         "<=",
	OpGt:         ">",
	OpGe:         ">=",
}

// String returns the operator's Go spelling ("+", "<<", "!=", …).
// It implements [fmt.Stringer].
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// IsRelational reports whether o yields a boolean result
// (==, !=, <, <=, >, >=, &&, ||).
func (o Op) IsRelational() bool {
	return o >= OpLogicalAnd && o <= OpGe
}
