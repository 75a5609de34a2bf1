// Package offset implements the position of an item within a node: either
// an index in [0, item_count] or the sentinel "before-first" position that
// sorts strictly before index 0.
package offset

import (
	"fmt"

	"github.com/flier/gbtree/pkg/opt"
)

const before = -1

// Offset is a position within a node's item list. The zero value is
// position 0, not "before-first" — use Before() to get the sentinel.
type Offset struct {
	v int
}

// Of wraps a non-negative index as an Offset.
func Of(n int) Offset {
	if n < 0 {
		panic("offset: negative index")
	}
	return Offset{n}
}

// Before returns the "before-first" sentinel offset.
func Before() Offset { return Offset{before} }

// IsBefore reports whether this is the "before-first" sentinel.
func (o Offset) IsBefore() bool { return o.v == before }

// Value returns the integer index, or None if this is "before-first".
func (o Offset) Value() opt.Option[int] {
	if o.IsBefore() {
		return opt.None[int]()
	}
	return opt.Some(o.v)
}

// Unwrap returns the integer index. Panics if this is "before-first".
func (o Offset) Unwrap() int {
	if o.IsBefore() {
		panic("offset: unwrap of before-first")
	}
	return o.v
}

// Incr returns the next offset. Incrementing "before-first" yields 0.
func (o Offset) Incr() Offset {
	if o.IsBefore() {
		return Offset{0}
	}
	return Offset{o.v + 1}
}

// Decr returns the previous offset. Decrementing 0 yields "before-first";
// decrementing "before-first" is idempotent and yields "before-first" again.
func (o Offset) Decr() Offset {
	if o.IsBefore() {
		return o
	}
	if o.v == 0 {
		return Offset{before}
	}
	return Offset{o.v - 1}
}

// Add returns o shifted right by n. Panics if o is "before-first", matching
// the source contract that before+n is never a meaningful position.
func (o Offset) Add(n int) Offset {
	if o.IsBefore() {
		panic("offset: add on before-first")
	}
	return Offset{o.v + n}
}

// Sub returns o shifted left by n, saturating to "before-first" once n
// exceeds o's value (so n == o.v yields 0, and n == o.v+1 yields the
// sentinel rather than a negative index).
func (o Offset) Sub(n int) Offset {
	if o.IsBefore() || n > o.v {
		return Offset{before}
	}
	return Offset{o.v - n}
}

// Cmp orders "before-first" strictly below every integer offset, and
// integer offsets by their value.
func (o Offset) Cmp(other Offset) int {
	switch {
	case o.v == other.v:
		return 0
	case o.v < other.v:
		return -1
	default:
		return 1
	}
}

// Lt reports whether this offset is strictly less than the integer n.
// "before-first" is less than every n >= 0.
func (o Offset) Lt(n int) bool {
	if o.IsBefore() {
		return true
	}
	return o.v < n
}

// Le reports whether this offset is less than or equal to n.
func (o Offset) Le(n int) bool { return o.Lt(n) || (!o.IsBefore() && o.v == n) }

// Eq reports whether two offsets denote the same position.
func (o Offset) Eq(other Offset) bool { return o.v == other.v }

func (o Offset) String() string {
	if o.IsBefore() {
		return "before"
	}
	return fmt.Sprintf("%d", o.v)
}
